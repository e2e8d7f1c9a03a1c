// Package render собирает автономную интерактивную страницу квиза.
package render

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"

	"github.com/letsssgooo/quizSite/internal/quiz"
)

//go:embed template.html
var pageTemplate string

var page = template.Must(template.New("quiz").Parse(pageTemplate))

type pageData struct {
	Title         string
	QuizID        string
	QuestionCount int
	Email         string
	QuizData      template.JS
}

// Page рендерит квиз в текст страницы. Сетевых вызовов нет:
// адрес получателя попадает только в action формы отправки результатов.
// Либо рендерится вся страница целиком, либо возвращается ошибка.
func Page(q *quiz.Quiz, email string) (string, error) {
	if err := q.Validate(); err != nil {
		return "", fmt.Errorf("can not render quiz: %w", err)
	}

	// json.MarshalIndent экранирует <, > и &,
	// поэтому встраивание в <script> не ломает разметку.
	data, err := json.MarshalIndent(q.Questions, "        ", "    ")
	if err != nil {
		return "", fmt.Errorf("marshal quiz data: %w", err)
	}

	var buf bytes.Buffer
	err = page.Execute(&buf, pageData{
		Title:         q.Title,
		QuizID:        q.ID,
		QuestionCount: len(q.Questions),
		Email:         email,
		QuizData:      template.JS(data),
	})
	if err != nil {
		return "", fmt.Errorf("render quiz page: %w", err)
	}

	return buf.String(), nil
}
