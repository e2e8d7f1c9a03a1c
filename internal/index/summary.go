// Package index собирает сводки по сгенерированным квизам
// и переписывает список карточек в index.html.
package index

import (
	"encoding/json"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/letsssgooo/quizSite/internal/quiz"
)

// Summary — метаданные одного квиза для карточки в списке.
type Summary struct {
	Filename      string
	Title         string
	Description   string
	QuestionCount int
	EstimatedMin  int
	Icon          string
}

// fallbackQuestionCount подставляется, когда quizData страницы не читается.
const fallbackQuestionCount = 10

var (
	titlePattern    = regexp.MustCompile(`<title>(.*?)</title>`)
	quizDataPattern = regexp.MustCompile(`(?s)const quizData = (\[.*?\]);`)
)

// Summarize извлекает сводку из текста сгенерированной страницы.
// Не возвращает ошибок: нечитаемые части заменяются значениями по умолчанию.
func Summarize(filename, content string) Summary {
	title := stem(filename)
	if m := titlePattern.FindStringSubmatch(content); m != nil {
		title = m[1]
	}

	count := fallbackQuestionCount
	if questions, ok := Questions(content); ok {
		count = len(questions)
	}

	return Summary{
		Filename:      filename,
		Title:         title,
		Description:   descriptionFor(title),
		QuestionCount: count,
		EstimatedMin:  estimateMinutes(count),
		Icon:          iconFor(title),
	}
}

// Fallback — сводка для страницы, которую не удалось прочитать.
func Fallback(filename string) Summary {
	return Summary{
		Filename:      filename,
		Title:         stem(filename),
		Description:   defaultDescription,
		QuestionCount: fallbackQuestionCount,
		EstimatedMin:  estimateMinutes(fallbackQuestionCount),
		Icon:          defaultIcon,
	}
}

// Questions достаёт встроенный массив вопросов из текста страницы.
func Questions(content string) ([]quiz.Question, bool) {
	m := quizDataPattern.FindStringSubmatch(content)
	if m == nil {
		return nil, false
	}

	var questions []quiz.Question
	if err := json.Unmarshal([]byte(m[1]), &questions); err != nil {
		return nil, false
	}
	return questions, true
}

// estimateMinutes оценивает время прохождения: два вопроса в минуту, но не меньше пяти.
func estimateMinutes(questionCount int) int {
	minutes := (questionCount + 1) / 2
	if minutes < 5 {
		minutes = 5
	}
	return minutes
}

func stem(filename string) string {
	return strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
}
