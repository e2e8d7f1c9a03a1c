package index

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/letsssgooo/quizSite/internal/quiz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pageWith(t *testing.T, title string, count int) string {
	t.Helper()

	questions := make([]quiz.Question, count)
	for i := range questions {
		questions[i] = quiz.Question{
			Text:    fmt.Sprintf("Question %d", i+1),
			Options: []string{"a", "b", "c", "d"},
		}
	}
	data, err := json.Marshal(questions)
	require.NoError(t, err)

	return fmt.Sprintf(
		"<html><head><title>%s</title></head><body><script>\n    const quizData = %s;\n</script></body></html>",
		title, data)
}

func TestSummarize(t *testing.T) {
	s := Summarize("vocab_builder.html", pageWith(t, "Vocabulary Builder", 12))

	assert.Equal(t, "vocab_builder.html", s.Filename)
	assert.Equal(t, "Vocabulary Builder", s.Title)
	assert.Equal(t, 12, s.QuestionCount)
	assert.Equal(t, 6, s.EstimatedMin)
	assert.Equal(t, "📖", s.Icon)
	assert.Equal(t, "Expand your vocabulary and test your understanding of key terms and expressions.", s.Description)
}

func TestSummarize_BadQuizData(t *testing.T) {
	content := "<title>Broken Quiz</title><script>const quizData = [not json];</script>"

	s := Summarize("broken.html", content)
	assert.Equal(t, "Broken Quiz", s.Title)
	assert.Equal(t, 10, s.QuestionCount)
	assert.Equal(t, 5, s.EstimatedMin)
}

func TestSummarize_NoTitleFallsBackToStem(t *testing.T) {
	s := Summarize("history_of_rome.html", "<html></html>")
	assert.Equal(t, "history_of_rome", s.Title)
}

func TestFallback(t *testing.T) {
	s := Fallback("mystery.html")

	assert.Equal(t, "mystery", s.Title)
	assert.Equal(t, 10, s.QuestionCount)
	assert.Equal(t, 5, s.EstimatedMin)
	assert.Equal(t, "📚", s.Icon)
	assert.Equal(t, defaultDescription, s.Description)
}

func TestEstimateMinutes(t *testing.T) {
	assert.Equal(t, 5, estimateMinutes(1))
	assert.Equal(t, 5, estimateMinutes(9))
	assert.Equal(t, 5, estimateMinutes(10))
	assert.Equal(t, 10, estimateMinutes(20))
	assert.Equal(t, 11, estimateMinutes(21))
}

func TestIconFor(t *testing.T) {
	assert.Equal(t, "📊", iconFor("Describing Graph Trends"))
	assert.Equal(t, "📝", iconFor("IELTS Preparation"))
	assert.Equal(t, "📖", iconFor("Word Power"))
	assert.Equal(t, "✍️", iconFor("English GRAMMAR Basics"))
	assert.Equal(t, "🧬", iconFor("MASLD Essentials"))
	assert.Equal(t, "🔬", iconFor("Science Facts"))
	assert.Equal(t, "🔢", iconFor("Mental Math"))
	assert.Equal(t, "📚", iconFor("General Knowledge"))
	// Данные побеждают науку: таблица упорядочена, первое совпадение главнее
	assert.Equal(t, "📊", iconFor("Data Science"))
}

func TestDescriptionFor(t *testing.T) {
	// Первое правило требует оба слова сразу
	assert.Contains(t, descriptionFor("Graph Trends"), "terminology")
	assert.Equal(t, defaultDescription, descriptionFor("Graph Basics"))
	assert.Contains(t, descriptionFor("IELTS Writing"), "IELTS")
	assert.Equal(t, defaultDescription, descriptionFor("General Knowledge"))
}

func TestCards(t *testing.T) {
	cards, err := Cards([]Summary{
		{
			Filename:      "vocab.html",
			Title:         "Vocabulary Builder",
			Description:   "Words.",
			QuestionCount: 12,
			EstimatedMin:  6,
			Icon:          "📖",
		},
	})
	require.NoError(t, err)

	assert.Contains(t, cards, `<a href="vocab.html" class="quiz-card">`)
	assert.Contains(t, cards, `<div class="quiz-icon">📖</div>`)
	assert.Contains(t, cards, "~6 minutes")
	assert.Contains(t, cards, "12 questions")
}

func TestCards_Empty(t *testing.T) {
	cards, err := Cards(nil)
	require.NoError(t, err)
	assert.Equal(t, "", cards)
}

const indexPage = `<html><body>
<h1>Quizzes</h1>
<div class="quiz-grid">
        <a href="old.html" class="quiz-card">
            <div class="quiz-icon">📚</div>
            <div class="quiz-meta"><span>old</span></div>
        </a>
    </div>
<footer>kept</footer>
</body></html>`

func TestReplaceGrid_NestedContainers(t *testing.T) {
	updated, err := ReplaceGrid(indexPage, "NEW CARDS")
	require.NoError(t, err)

	assert.Contains(t, updated, "<div class=\"quiz-grid\">\nNEW CARDS\n    </div>")
	assert.NotContains(t, updated, "old.html")
	// Всё после настоящего закрывающего div нетронуто
	assert.Contains(t, updated, "<footer>kept</footer>")
}

func TestReplaceGrid_EmptyCards(t *testing.T) {
	updated, err := ReplaceGrid(indexPage, "")
	require.NoError(t, err)

	assert.NotContains(t, updated, "quiz-card")
	assert.Contains(t, updated, "<footer>kept</footer>")
}

func TestReplaceGrid_MissingMarker(t *testing.T) {
	_, err := ReplaceGrid("<html><body>no grid here</body></html>", "cards")
	assert.ErrorIs(t, err, ErrGridMissing)
}

func TestReplaceGrid_Unterminated(t *testing.T) {
	_, err := ReplaceGrid(`<div class="quiz-grid"><div class="inner"></div>`, "cards")
	assert.ErrorIs(t, err, ErrGridMissing)
}

func TestQuestions_NotFound(t *testing.T) {
	_, ok := Questions("<html>no data</html>")
	assert.False(t, ok)
}

func TestQuestions_StopsAtArrayEnd(t *testing.T) {
	content := pageWith(t, "T", 2) + "\n<script>const other = [1];</script>"

	questions, ok := Questions(content)
	require.True(t, ok)
	assert.Len(t, questions, 2)
}
