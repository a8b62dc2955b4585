// ABOUTME: Tests for ConversationStore append-only log and recency window
// ABOUTME: Verifies ordering, truncation, clearing, and copy semantics

package storage

import (
	"fmt"
	"testing"
)

func TestConversationStore_AppendAndWindow(t *testing.T) {
	s := NewConversationStore()

	for i := 1; i <= 3; i++ {
		if _, err := s.Append("doc_1", fmt.Sprintf("question %d", i), fmt.Sprintf("answer %d", i)); err != nil {
			t.Fatalf("Append() error = %v", err)
		}
	}

	window := s.RecentWindow("doc_1", 5)
	if len(window) != 3 {
		t.Fatalf("len(window) = %d, want 3", len(window))
	}
	for i, ex := range window {
		want := fmt.Sprintf("question %d", i+1)
		if ex.UserMessage != want {
			t.Errorf("window[%d].UserMessage = %q, want %q", i, ex.UserMessage, want)
		}
	}
}

func TestConversationStore_WindowTruncatesFromRecentEnd(t *testing.T) {
	s := NewConversationStore()
	for i := 1; i <= 8; i++ {
		if _, err := s.Append("doc_1", fmt.Sprintf("question %d", i), "answer"); err != nil {
			t.Fatalf("Append() error = %v", err)
		}
	}

	window := s.RecentWindow("doc_1", 5)
	if len(window) != 5 {
		t.Fatalf("len(window) = %d, want 5", len(window))
	}
	if window[0].UserMessage != "question 4" {
		t.Errorf("window[0] = %q, want question 4", window[0].UserMessage)
	}
	if window[4].UserMessage != "question 8" {
		t.Errorf("window[4] = %q, want question 8 (most-recent-last)", window[4].UserMessage)
	}
}

func TestConversationStore_DefaultWindowSize(t *testing.T) {
	s := NewConversationStore()
	for i := 0; i < 10; i++ {
		if _, err := s.Append("doc_1", "question", "answer"); err != nil {
			t.Fatalf("Append() error = %v", err)
		}
	}

	if got := s.RecentWindow("doc_1", 0); len(got) != DefaultHistoryWindow {
		t.Errorf("len(window) = %d, want %d", len(got), DefaultHistoryWindow)
	}
}

func TestConversationStore_UnknownDocument(t *testing.T) {
	s := NewConversationStore()
	if got := s.RecentWindow("doc_unknown", 5); got != nil {
		t.Errorf("RecentWindow(unknown) = %v, want nil", got)
	}
}

func TestConversationStore_Clear(t *testing.T) {
	s := NewConversationStore()
	if _, err := s.Append("doc_1", "question", "answer"); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if _, err := s.Append("doc_2", "question", "answer"); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	s.Clear("doc_1")

	if got := s.RecentWindow("doc_1", 5); got != nil {
		t.Errorf("cleared document still has %d exchanges", len(got))
	}
	if got := s.RecentWindow("doc_2", 5); len(got) != 1 {
		t.Errorf("unrelated document lost its history")
	}
}

func TestConversationStore_AppendValidation(t *testing.T) {
	s := NewConversationStore()

	if _, err := s.Append("", "question", "answer"); err == nil {
		t.Error("expected error for empty document ID")
	}
	if _, err := s.Append("doc_1", "  ", "answer"); err == nil {
		t.Error("expected error for blank message")
	}
	if s.Count("doc_1") != 0 {
		t.Error("failed append must leave no partial exchange")
	}
}

func TestConversationStore_WindowIsCopy(t *testing.T) {
	s := NewConversationStore()
	if _, err := s.Append("doc_1", "original question", "answer"); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	window := s.RecentWindow("doc_1", 5)
	window[0].UserMessage = "mutated"

	if again := s.RecentWindow("doc_1", 5); again[0].UserMessage != "original question" {
		t.Error("RecentWindow exposed internal state to mutation")
	}
}
