package index

import (
	"errors"
	"fmt"
	"strings"
	"text/template"
)

// ErrGridMissing возвращается, когда в index.html нет контейнера карточек.
var ErrGridMissing = errors.New("quiz-grid section not found")

const (
	gridOpen = `<div class="quiz-grid">`
	divOpen  = "<div "
	divClose = "</div>"
)

var cardTemplate = template.Must(template.New("card").Parse(
	`        <a href="{{.Filename}}" class="quiz-card">
            <div class="quiz-icon">{{.Icon}}</div>
            <h2 class="quiz-title">{{.Title}}</h2>
            <p class="quiz-description">
                {{.Description}}
            </p>
            <div class="quiz-meta">
                <span>⏱️ ~{{.EstimatedMin}} minutes</span>
                <span>❓ {{.QuestionCount}} questions</span>
            </div>
            <button class="btn-start">Start Quiz →</button>
        </a>
`))

// Cards рендерит карточки для всех сводок. Пустой срез даёт пустую строку.
func Cards(summaries []Summary) (string, error) {
	var b strings.Builder
	for i, s := range summaries {
		if i > 0 {
			b.WriteString("\n")
		}
		if err := cardTemplate.Execute(&b, s); err != nil {
			return "", fmt.Errorf("render card for %s: %w", s.Filename, err)
		}
	}
	return b.String(), nil
}

// ReplaceGrid заменяет содержимое контейнера quiz-grid на новые карточки.
// Закрывающий div ищется подсчётом вложенности: первая попавшаяся
// закрывающая метка не годится, карточки сами содержат вложенные div.
func ReplaceGrid(content, cards string) (string, error) {
	start := strings.Index(content, gridOpen)
	if start == -1 {
		return "", ErrGridMissing
	}

	depth := 1
	end := -1
	for pos := start + len(gridOpen); pos < len(content); pos++ {
		switch {
		case strings.HasPrefix(content[pos:], divOpen):
			depth++
		case strings.HasPrefix(content[pos:], divClose):
			depth--
			if depth == 0 {
				end = pos
			}
		}
		if end != -1 {
			break
		}
	}
	if end == -1 {
		return "", fmt.Errorf("%w: container is not terminated", ErrGridMissing)
	}

	var b strings.Builder
	b.WriteString(content[:start])
	b.WriteString(gridOpen)
	b.WriteString("\n")
	b.WriteString(cards)
	b.WriteString("\n    ")
	b.WriteString(divClose)
	b.WriteString(content[end+len(divClose):])
	return b.String(), nil
}
