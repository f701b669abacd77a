package source

import (
	"bytes"

	"github.com/go-enry/go-enry/v2"
)

//nolint:gochecknoglobals // Classifier candidates.
var candidates = []string{"HTML", "Markdown"}

// DetectKind guesses whether content is HTML or Markdown.
// Content that cannot be classified is treated as HTML.
func DetectKind(content []byte) Kind {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 {
		return KindHTML
	}

	if looksLikeHTML(trimmed) {
		return KindHTML
	}
	if looksLikeMarkdown(trimmed) {
		return KindMarkdown
	}

	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe && lang == "Markdown" {
		return KindMarkdown
	}

	return KindHTML
}

// looksLikeHTML checks for document-level HTML or a leading tag.
func looksLikeHTML(trimmed []byte) bool {
	lower := bytes.ToLower(trimmed)
	if bytes.Contains(lower, []byte("<!doctype html")) ||
		bytes.Contains(lower, []byte("<html")) ||
		bytes.Contains(lower, []byte("<body")) {
		return true
	}
	return len(lower) > 1 && lower[0] == '<' && isASCIILetter(lower[1])
}

// looksLikeMarkdown checks for an ATX heading, list item or fence on the
// first line.
func looksLikeMarkdown(trimmed []byte) bool {
	first, _, _ := bytes.Cut(trimmed, []byte("\n"))
	switch {
	case bytes.HasPrefix(first, []byte("# ")), bytes.HasPrefix(first, []byte("## ")):
		return true
	case bytes.HasPrefix(first, []byte("- ")), bytes.HasPrefix(first, []byte("* ")):
		return true
	case bytes.HasPrefix(first, []byte("```")):
		return true
	}
	return false
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
