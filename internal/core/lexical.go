// ABOUTME: LexicalMatcher scores chunks against a query by token overlap
// ABOUTME: Fallback retrieval tier when semantic search yields nothing
package core

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultTopMatches is the number of ranked chunks returned
const DefaultTopMatches = 5

// domainTerms are financial/contractual vocabulary that earn a bonus when
// present in both the query and a chunk. Currency symbols are included
// because amounts are what document questions most often chase.
var domainTerms = []string{
	"balance", "payment", "amount", "due", "rate",
	"monthly", "interest", "fee", "penalty", "deposit", "$", "€", "£",
}

// LexicalMatcher ranks chunks by literal token overlap with a query
type LexicalMatcher struct {
	TopN int
}

// NewLexicalMatcher creates a matcher returning the default number of results
func NewLexicalMatcher() *LexicalMatcher {
	return &LexicalMatcher{TopN: DefaultTopMatches}
}

// Rank scores every chunk against the query and returns the top N chunk
// texts, best first. Chunks scoring zero are excluded. Ties keep original
// chunk order.
func (m *LexicalMatcher) Rank(query string, chunks []string) []string {
	queryLower := strings.ToLower(query)
	queryTokens := strings.Fields(queryLower)
	if len(queryTokens) == 0 || len(chunks) == 0 {
		return nil
	}
	querySet := tokenSet(queryLower)

	type scored struct {
		index int
		text  string
		score int
	}

	var results []scored
	for i, chunk := range chunks {
		chunkLower := strings.ToLower(chunk)
		chunkTokens := tokenSet(chunkLower)

		score := 0
		for _, token := range queryTokens {
			bare := strings.TrimFunc(token, func(r rune) bool {
				return !unicode.IsLetter(r) && !unicode.IsDigit(r)
			})
			if bare == "" {
				continue
			}
			if chunkTokens[bare] {
				score++
			}
			// Numbers match as substrings too: amounts sit next to currency
			// symbols and punctuation, so whole-token matching misses them.
			if isNumericToken(bare) && strings.Contains(chunkLower, bare) {
				score += 2
			}
		}

		// Word terms match as whole tokens so "rate" stays out of
		// "corporate"; currency symbols are stripped by tokenization and
		// keep the substring check.
		for _, term := range domainTerms {
			if wordTerm(term) {
				if querySet[term] && chunkTokens[term] {
					score++
				}
			} else if strings.Contains(queryLower, term) && strings.Contains(chunkLower, term) {
				score++
			}
		}

		if score > 0 {
			results = append(results, scored{index: i, text: chunk, score: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].score > results[j].score
	})

	topN := m.TopN
	if topN <= 0 {
		topN = DefaultTopMatches
	}
	if len(results) > topN {
		results = results[:topN]
	}

	if len(results) == 0 {
		return nil
	}
	ranked := make([]string, len(results))
	for i, r := range results {
		ranked[i] = r.text
	}
	return ranked
}

// tokenSet splits text into whole tokens on non-alphanumeric boundaries
func tokenSet(text string) map[string]bool {
	tokens := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	set := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		set[t] = true
	}
	return set
}

// wordTerm reports whether a domain term survives tokenization as a word
func wordTerm(term string) bool {
	r, _ := utf8.DecodeRuneInString(term)
	return unicode.IsLetter(r)
}

// isNumericToken reports whether a token carries at least one digit
func isNumericToken(token string) bool {
	for _, r := range token {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
