package quiz

import (
	"strconv"
	"strings"
	"unicode"
)

// CheckAnswer compares the player's input against the correct answer.
//
// Normalization rules:
// - Whitespace is trimmed and comparison is case-insensitive
// - Multiple choice matches the option text, its letter (A-F) or its index (1-6)
// - True-false accepts true/false, t/f, yes/no and y/n
// - Short answer ignores punctuation, repeated spaces and a leading article
func CheckAnswer(q Question, given string) bool {
	given = strings.TrimSpace(given)
	if given == "" {
		return false
	}

	switch q.Type {
	case TypeMultipleChoice:
		return checkMultipleChoice(q, given)
	case TypeTrueFalse:
		want, ok := parseBool(q.CorrectAnswer)
		if !ok {
			return false
		}
		got, ok := parseBool(given)
		return ok && got == want
	default:
		return normalizeText(given) == normalizeText(q.CorrectAnswer)
	}
}

// ResolveChoice maps input to the option text. An exact (case-insensitive)
// option match wins, so numeric options are never read as an index. Only
// then is a letter or index tried. Other input is returned unchanged.
func ResolveChoice(q Question, given string) string {
	given = strings.TrimSpace(given)
	for _, opt := range q.Options {
		if strings.EqualFold(strings.TrimSpace(opt), given) {
			return opt
		}
	}
	if idx, ok := choiceIndex(given, len(q.Options)); ok {
		return q.Options[idx]
	}
	return given
}

func checkMultipleChoice(q Question, given string) bool {
	return strings.EqualFold(ResolveChoice(q, given), strings.TrimSpace(q.CorrectAnswer))
}

// choiceIndex parses a 1-based index or a single letter into a 0-based
// option index.
func choiceIndex(s string, n int) (int, bool) {
	if idx, err := strconv.Atoi(s); err == nil {
		if idx >= 1 && idx <= n {
			return idx - 1, true
		}
		return 0, false
	}
	if len(s) == 1 {
		c := unicode.ToUpper(rune(s[0]))
		if c >= 'A' && int(c-'A') < n {
			return int(c - 'A'), true
		}
	}
	return 0, false
}

// parseBool accepts the spellings a player is likely to type.
func parseBool(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "t", "yes", "y":
		return true, true
	case "false", "f", "no", "n":
		return false, true
	}
	return false, false
}

func boolText(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// normalizeText lowercases s, replaces punctuation with spaces, collapses
// whitespace and drops a leading article.
func normalizeText(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			return ' '
		}
		return unicode.ToLower(r)
	}, s)
	fields := strings.Fields(s)
	if len(fields) > 1 {
		switch fields[0] {
		case "a", "an", "the":
			fields = fields[1:]
		}
	}
	return strings.Join(fields, " ")
}
