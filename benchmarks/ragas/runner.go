// ABOUTME: Test runner for RAGAS benchmarks - executes scenarios and collects results
// ABOUTME: Runs the real retrieval pipeline offline with a deterministic extractive generator

package ragas

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
	"unicode"

	"github.com/harper/docagent-standalone/internal/core"
)

// benchmarkChunkSize keeps the fixture documents multi-chunk so retrieval
// actually has to choose between passages.
const (
	benchmarkChunkSize    = 300
	benchmarkChunkOverlap = 60
)

// BenchmarkRunner executes RAGAS benchmark tests
type BenchmarkRunner struct {
	metrics *MetricsCalculator
	verbose bool
}

// NewBenchmarkRunner creates a new benchmark runner. The benchmark is fully
// offline: no vector service and no LLM, so retrieval exercises the lexical
// and term-expansion tiers and answers come from an extractive generator.
func NewBenchmarkRunner(verbose bool) *BenchmarkRunner {
	return &BenchmarkRunner{
		metrics: NewMetricsCalculator(),
		verbose: verbose,
	}
}

// RunTest executes a single benchmark test against a fresh agent
func (r *BenchmarkRunner) RunTest(scenario TestScenario) (TestResult, error) {
	if r.verbose {
		fmt.Printf("\n========================================\n")
		fmt.Printf("RUNNING: %s\n", scenario.Name)
		fmt.Printf("========================================\n")
		fmt.Printf("Description: %s\n\n", scenario.Description)
	}

	ctx := context.Background()

	// Fresh agent per scenario: nil index disables the semantic tier, so
	// retrieval walks the same fallback chain it would during an outage.
	agent := core.NewAgent(nil, &extractiveGenerator{}, core.NewChunker(benchmarkChunkSize, benchmarkChunkOverlap))
	agent.DefaultModel = "extractive"

	doc, err := agent.Ingest(ctx, scenario.DocumentName, scenario.DocumentText)
	if err != nil {
		return TestResult{}, fmt.Errorf("ingest failed: %w", err)
	}
	if r.verbose {
		fmt.Printf("✓ Ingested %s as %s (%d chunks)\n\n", scenario.DocumentName, doc.DocumentID, len(doc.Chunks))
	}

	// Ask every question in order; only the final answer is evaluated, the
	// earlier ones exist to populate conversation history.
	var finalResponse string
	var retrievedContext []string
	var strategy string

	for i, question := range scenario.Questions {
		if r.verbose {
			fmt.Printf("[Q%d] User: %s\n", i+1, question)
		}

		result, err := agent.Query(ctx, "", question, "")
		if err != nil {
			return TestResult{}, fmt.Errorf("question %d failed: %w", i+1, err)
		}

		if r.verbose {
			preview := result.Answer
			if len(preview) > 150 {
				preview = preview[:150]
			}
			fmt.Printf("[Q%d] AI (%s, %d passages): %s\n\n", i+1, result.Context.Strategy, len(result.Context.Chunks), preview)
		}

		finalResponse = result.Answer
		retrievedContext = result.Context.Chunks
		strategy = string(result.Context.Strategy)
	}

	result := r.metrics.EvaluateTest(scenario, finalResponse, retrievedContext, strategy)

	if r.verbose {
		fmt.Printf("\n========================================\n")
		fmt.Printf("RESULTS: %s\n", scenario.Name)
		fmt.Printf("========================================\n")
		fmt.Printf("Faithfulness: %.2f\n", result.FaithfulnessScore)
		fmt.Printf("Context Recall: %.2f\n", result.ContextRecallScore)
		fmt.Printf("Overall Score: %.2f\n", result.OverallScore)
		fmt.Printf("Strategy: %s\n", result.Strategy)
		fmt.Printf("Status: %s\n", result.Status)
		fmt.Printf("========================================\n\n")
	}

	return result, nil
}

// RunAllTests executes all benchmark tests
func (r *BenchmarkRunner) RunAllTests() ([]TestResult, error) {
	scenarios := GetAllTests()
	results := make([]TestResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		result, err := r.RunTest(scenario)
		if err != nil {
			return nil, fmt.Errorf("test %s failed: %w", scenario.ID, err)
		}
		results = append(results, result)
	}

	return results, nil
}

// ExportResults exports test results to JSON
func (r *BenchmarkRunner) ExportResults(results []TestResult, outputPath string) error {
	summary := map[string]interface{}{
		"timestamp":   time.Now().Format(time.RFC3339),
		"total_tests": len(results),
		"passed":      0,
		"failed":      0,
		"results":     results,
	}

	for _, result := range results {
		if result.Status == "PASS" {
			summary["passed"] = summary["passed"].(int) + 1
		} else {
			summary["failed"] = summary["failed"].(int) + 1
		}
	}

	jsonData, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}

	if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write results file: %w", err)
	}

	fmt.Printf("✓ Results exported to: %s\n", outputPath)
	return nil
}

const noAnswerResponse = "The document does not appear to address that question."

// extractiveGenerator answers prompts deterministically by returning the
// context sentence with the highest token overlap with the question. It keeps
// the benchmark offline while still depending on what retrieval surfaced.
type extractiveGenerator struct{}

func (g *extractiveGenerator) Generate(_ context.Context, prompt, _ string) (string, error) {
	contextText := promptSection(prompt, "DOCUMENT CONTEXT:")
	question := promptSection(prompt, "CURRENT QUESTION:")

	if contextText == "" || strings.Contains(contextText, "(no relevant passages were retrieved)") {
		return noAnswerResponse, nil
	}

	questionTokens := answerTokens(question)

	best := ""
	bestScore := 0
	for _, sentence := range splitSentences(contextText) {
		score := 0
		sentenceTokens := answerTokens(sentence)
		for _, qt := range questionTokens {
			for _, st := range sentenceTokens {
				if tokensMatch(qt, st) {
					score++
					break
				}
			}
		}
		if score > bestScore {
			best = sentence
			bestScore = score
		}
	}

	if best == "" {
		return noAnswerResponse, nil
	}
	return best, nil
}

// promptSection returns the body of one labeled prompt section, up to the
// next section header or the end of the prompt.
func promptSection(prompt, header string) string {
	start := strings.Index(prompt, header)
	if start == -1 {
		return ""
	}
	body := prompt[start+len(header):]

	for _, next := range []string{"\n\nCONVERSATION SO FAR:", "\n\nCURRENT QUESTION:"} {
		if i := strings.Index(body, next); i != -1 {
			body = body[:i]
		}
	}
	return strings.TrimSpace(body)
}

// splitSentences breaks text on sentence terminals, keeping the terminal
func splitSentences(text string) []string {
	var sentences []string
	var sb strings.Builder
	for _, r := range text {
		sb.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			if s := strings.TrimSpace(sb.String()); s != "" {
				sentences = append(sentences, s)
			}
			sb.Reset()
		}
	}
	if s := strings.TrimSpace(sb.String()); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

// answerTokens lowercases and splits on non-alphanumeric boundaries
func answerTokens(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// tokensMatch accepts exact matches, plus a shared-prefix match for longer
// tokens so "termination" still finds "terminate".
func tokensMatch(a, b string) bool {
	if a == b {
		return true
	}
	if len(a) < 6 || len(b) < 6 {
		return false
	}
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i >= 6
		}
	}
	return n >= 6
}
