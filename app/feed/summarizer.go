package feed

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

const (
	Ellipsis = "…"

	// A sentence break earlier than this is too short to stand as a summary.
	minSentenceOffset = 60
)

type Summarizer struct {
	maxLength int
}

func NewSummarizer(maxLength int) *Summarizer {
	return &Summarizer{maxLength: maxLength}
}

// Run reduces text to a single bounded sentence-like preview. Lengths are
// counted in characters.
func (s *Summarizer) Run(text string) string {
	collapsed := CollapseWhitespace(text)

	runes := []rune(collapsed)
	if len(runes) <= s.maxLength {
		return collapsed
	}

	cut := runes[:s.maxLength]
	if end := lastSentenceEnd(cut); end > minSentenceOffset {
		return string(cut[:end+1])
	}

	return string(cut) + Ellipsis
}

// CollapseWhitespace normalizes text to NFC, replaces every whitespace run
// with a single space and trims the ends.
func CollapseWhitespace(text string) string {
	return strings.Join(strings.Fields(norm.NFC.String(text)), " ")
}

// lastSentenceEnd returns the index of the last period followed by a space,
// or -1.
func lastSentenceEnd(runes []rune) int {
	for i := len(runes) - 2; i >= 0; i-- {
		if runes[i] == '.' && runes[i+1] == ' ' {
			return i
		}
	}
	return -1
}
