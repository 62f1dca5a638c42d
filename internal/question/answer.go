package question

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// normalizeShortAnswer reduces a short answer to its comparable form.
//
// Normalization rules:
// - Surrounding whitespace is trimmed
// - Text is composed to NFC so precomposed and combining forms agree
// - Text is lower-cased unless caseSensitive is set
// - Every rune other than letters, numbers, '_' and whitespace is dropped
func normalizeShortAnswer(text string, caseSensitive bool) string {
	text = norm.NFC.String(strings.TrimSpace(text))
	if !caseSensitive {
		text = cases.Lower(language.Und).String(text)
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_' || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, text)
}

// parseTrueFalse interprets learner input for a true/false question.
func parseTrueFalse(input string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "true", "t":
		return true, nil
	case "false", "f":
		return false, nil
	}
	return false, &InputError{Input: input, Reason: "answer must be true/false"}
}
