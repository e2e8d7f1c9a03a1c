package quiz

import (
	"regexp"
	"strings"
)

// Принимаемые глифы галочки перед правильным вариантом.
var checkGlyphs = []string{"✓", "✔"}

var (
	bracketTagPattern = regexp.MustCompile(`(?i)\[correct\]`)
	parenTagPattern   = regexp.MustCompile(`(?i)\(correct\)`)
)

// stripAnswerMarker ищет в тексте варианта маркер правильного ответа.
// Порядок проверки: обрамляющие звёздочки, ведущая галочка,
// тег [CORRECT], тег (correct). Возвращает текст без маркера.
func stripAnswerMarker(option string) (string, bool) {
	if len(option) >= 2 && strings.HasPrefix(option, "*") && strings.HasSuffix(option, "*") {
		return strings.TrimSpace(option[1 : len(option)-1]), true
	}

	for _, glyph := range checkGlyphs {
		if strings.HasPrefix(option, glyph) {
			return strings.TrimSpace(strings.TrimPrefix(option, glyph)), true
		}
	}

	if loc := bracketTagPattern.FindStringIndex(option); loc != nil {
		return strings.TrimSpace(option[:loc[0]] + option[loc[1]:]), true
	}

	if loc := parenTagPattern.FindStringIndex(option); loc != nil {
		return strings.TrimSpace(option[:loc[0]] + option[loc[1]:]), true
	}

	return option, false
}
