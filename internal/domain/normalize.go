package domain

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// innermostParens matches a parenthesized group that contains no other
// parenthesis, so repeated replacement peels nested groups from the inside.
var innermostParens = regexp.MustCompile(`\([^()]*\)`)

// NormalizeText prepares a graded form or natural key for comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - composes to NFC
//   - collapses whitespace runs into one space
//
// Parenthesized text is kept.
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	return collapseSpaces(norm.NFC.String(strings.ToLower(text)))
}

// NormalizeTranslation is NormalizeText with every parenthesized remark
// removed first: "време (навън)" becomes "време". An unmatched
// parenthesis is left in place.
func NormalizeTranslation(text string) string {
	for {
		stripped := innermostParens.ReplaceAllString(text, " ")
		if stripped == text {
			break
		}
		text = stripped
	}
	return NormalizeText(text)
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
