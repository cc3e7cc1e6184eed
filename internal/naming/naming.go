package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Style is a naming convention an identifier can be rendered in.
type Style int

const (
	// Camel renders "userName".
	Camel Style = iota
	// Pascal renders "UserName".
	Pascal
	// Snake renders "user_name".
	Snake
	// ScreamingSnake renders "USER_NAME".
	ScreamingSnake
	// AllCaps renders "USER_NAME"; it differs from ScreamingSnake only by name.
	AllCaps
)

// String returns the conventional spelling of the style.
func (s Style) String() string {
	switch s {
	case Camel:
		return "camelCase"
	case Pascal:
		return "PascalCase"
	case Snake:
		return "snake_case"
	case ScreamingSnake:
		return "SCREAMING_SNAKE_CASE"
	case AllCaps:
		return "ALLCAPS"
	default:
		return "unknown"
	}
}

// Convert renders s in the given style. The result is a fixpoint:
// Convert(Convert(s, style), style) == Convert(s, style).
// Example: Convert("user_profile", Pascal) -> "UserProfile"
// Example: Convert("userName", ScreamingSnake) -> "USER_NAME"
func Convert(s string, style Style) string {
	words := Words(s)
	if len(words) == 0 {
		return ""
	}

	switch style {
	case Camel, Pascal:
		caser := cases.Title(language.English, cases.NoLower)
		lowerFirst := style == Camel
		words = rejoin(caser, mergeSingles(words), lowerFirst)

		var result strings.Builder
		for i, w := range words {
			if i == 0 && lowerFirst {
				result.WriteString(w)
				continue
			}
			first, size := utf8.DecodeRuneInString(w)
			result.WriteRune(capitalize(caser, first))
			result.WriteString(w[size:])
		}
		return result.String()
	case Snake:
		return strings.Join(words, "_")
	case ScreamingSnake, AllCaps:
		return strings.ToUpper(strings.Join(words, "_"))
	default:
		return s
	}
}

// Words splits s into lowercase words.
// Boundaries are '_' and '-', and an uppercase letter that follows a
// lowercase letter or is itself followed by one ("userName", "APIClient",
// "user2Name"). Digits never start a word, so "v2api" and "V1BETA" are
// single words.
func Words(s string) []string {
	runes := []rune(s)
	var words []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			words = append(words, strings.ToLower(current.String()))
			current.Reset()
		}
	}

	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}
		if i > 0 && isUpper(r) && !isSeparator(runes[i-1]) {
			if isLower(runes[i-1]) || (i+1 < len(runes) && isLower(runes[i+1])) {
				flush()
			}
		}
		current.WriteRune(r)
	}
	flush()

	return words
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-'
}

// isUpper and isLower classify by case mapping rather than by category, so
// letters with no counterpart in the other case (ß, digits, CJK) are neither.
func isUpper(r rune) bool {
	return unicode.ToLower(r) != r
}

func isLower(r rune) bool {
	return !isUpper(r) && unicode.ToUpper(r) != r
}

// capitalize title-cases r, falling back to the simple uppercase mapping
// when the title case is more than one rune ("ß" -> "Ss").
func capitalize(caser cases.Caser, r rune) rune {
	t := caser.String(string(r))
	if utf8.RuneCountInString(t) != 1 {
		return unicode.ToUpper(r)
	}
	first, _ := utf8.DecodeRuneInString(t)
	return first
}

// mergeSingles joins runs of single-rune words, so "a_b_c" renders as "Abc"
// rather than "ABC".
func mergeSingles(words []string) []string {
	merged := make([]string, 0, len(words))
	inRun := false
	for _, w := range words {
		single := utf8.RuneCountInString(w) == 1
		if single && inRun {
			merged[len(merged)-1] += w
			continue
		}
		merged = append(merged, w)
		inRun = single
	}
	return merged
}

// rejoin appends a word to its predecessor when the capital that would start
// it is not a boundary Words can see in the unseparated rendering. "x", "y2"
// would render "XY2", which reads back as one word, so it becomes "xy2".
func rejoin(caser cases.Caser, words []string, lowerFirst bool) []string {
	out := []string{words[0]}
	for _, w := range words[1:] {
		last := out[len(out)-1]
		if boundaryVisible(caser, lastRendered(caser, last, lowerFirst && len(out) == 1), w) {
			out = append(out, w)
			continue
		}
		out[len(out)-1] = last + w
	}
	return out
}

// lastRendered returns the final rune of w as it appears in the output.
// Only a single-rune word ends in its capital.
func lastRendered(caser cases.Caser, w string, lowerFirst bool) rune {
	last, _ := utf8.DecodeLastRuneInString(w)
	if lowerFirst || utf8.RuneCountInString(w) > 1 {
		return last
	}
	return capitalize(caser, last)
}

// boundaryVisible mirrors the split rule of Words for a capitalized w placed
// right after the rune prev.
func boundaryVisible(caser cases.Caser, prev rune, w string) bool {
	first, size := utf8.DecodeRuneInString(w)
	if !isUpper(capitalize(caser, first)) {
		return false
	}
	if isLower(prev) {
		return true
	}
	next, n := utf8.DecodeRuneInString(w[size:])
	return n > 0 && isLower(next)
}
