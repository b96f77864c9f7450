package feed

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestCollapseWhitespace(t *testing.T) {
	got := CollapseWhitespace("  Hello \n\t world  \r\n again ")
	if got != "Hello world again" {
		t.Errorf("Expected 'Hello world again', got '%s'", got)
	}
}

func TestSummarizer_ShortText(t *testing.T) {
	summarizer := NewSummarizer(180)

	inputs := []string{
		"",
		"Short sentence.",
		"  spaced   out\ttext \n",
		strings.Repeat("a", 180),
	}

	for _, input := range inputs {
		got := summarizer.Run(input)
		if got != CollapseWhitespace(input) {
			t.Errorf("Expected '%s', got '%s'", CollapseWhitespace(input), got)
		}
		if strings.HasSuffix(got, Ellipsis) {
			t.Errorf("Short text should not be truncated: '%s'", got)
		}
	}
}

func TestSummarizer_SentenceBoundary(t *testing.T) {
	summarizer := NewSummarizer(180)

	first := strings.Repeat("x", 99) + "."
	input := first + " " + strings.Repeat("y", 200)

	got := summarizer.Run(input)
	if got != first {
		t.Errorf("Expected cut at sentence boundary (%d chars), got %d chars: '%s'", len(first), len(got), got)
	}
	if strings.HasSuffix(got, Ellipsis) {
		t.Error("Sentence boundary cut should not carry an ellipsis")
	}
}

func TestSummarizer_LastBoundaryWins(t *testing.T) {
	summarizer := NewSummarizer(180)

	input := strings.Repeat("a", 70) + ". " + strings.Repeat("b", 50) + ". " + strings.Repeat("c", 100)

	got := summarizer.Run(input)
	expected := strings.Repeat("a", 70) + ". " + strings.Repeat("b", 50) + "."
	if got != expected {
		t.Errorf("Expected last boundary cut, got '%s'", got)
	}
}

func TestSummarizer_EarlyBoundaryIgnored(t *testing.T) {
	summarizer := NewSummarizer(180)

	input := strings.Repeat("a", 40) + ". " + strings.Repeat("b", 200)

	got := summarizer.Run(input)
	if !strings.HasSuffix(got, Ellipsis) {
		t.Fatalf("Expected ellipsis, got '%s'", got)
	}
	if utf8.RuneCountInString(got) != 181 {
		t.Errorf("Expected 181 characters, got %d", utf8.RuneCountInString(got))
	}
	if strings.TrimSuffix(got, Ellipsis) != input[:180] {
		t.Error("Expected the first 180 characters before the ellipsis")
	}
}

func TestSummarizer_BoundaryAtOffset60Ignored(t *testing.T) {
	summarizer := NewSummarizer(180)

	input := strings.Repeat("a", 60) + ". " + strings.Repeat("b", 200)

	got := summarizer.Run(input)
	if !strings.HasSuffix(got, Ellipsis) {
		t.Errorf("Expected hard cut for boundary at offset 60, got '%s'", got)
	}
}

func TestSummarizer_NoBoundary(t *testing.T) {
	summarizer := NewSummarizer(180)

	input := strings.Repeat("word ", 60)

	got := summarizer.Run(input)
	expected := CollapseWhitespace(input)[:180] + Ellipsis
	if got != expected {
		t.Errorf("Expected '%s', got '%s'", expected, got)
	}
}

func TestSummarizer_CountsCharactersNotBytes(t *testing.T) {
	summarizer := NewSummarizer(10)

	input := "éééééééééééé"

	got := summarizer.Run(input)
	if got != "éééééééééé"+Ellipsis {
		t.Errorf("Expected 10 characters plus ellipsis, got '%s'", got)
	}
}
