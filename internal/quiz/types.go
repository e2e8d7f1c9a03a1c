package quiz

import "fmt"

// OptionCount — число вариантов ответа в каждом вопросе.
const OptionCount = 4

// Question описывает один вопрос квиза.
// JSON-теги совпадают с форматом массива quizData в сгенерированной странице.
type Question struct {
	Text    string   `json:"q"`
	Options []string `json:"options"`
	Correct int      `json:"answer"`
	Hint    string   `json:"hint"`
}

// Quiz описывает распарсенный документ квиза.
type Quiz struct {
	ID        string
	Title     string
	Questions []Question

	// Unmarked — число вопросов, в которых маркер правильного ответа
	// не найден и ответ по умолчанию выставлен на первый вариант.
	Unmarked int
}

// Validate проверяет на корректность структуру квиза.
func (q *Quiz) Validate() error {
	if q.Title == "" {
		return fmt.Errorf("missing quiz title")
	}

	if len(q.Questions) == 0 {
		return fmt.Errorf("need at least one question")
	}

	for i, question := range q.Questions {
		if question.Text == "" {
			return fmt.Errorf("missing text of %d question", i)
		}

		if len(question.Options) != OptionCount {
			return fmt.Errorf("amount of options must be exactly %d in %d question", OptionCount, i)
		}

		if question.Correct < 0 {
			return fmt.Errorf("index of correct answer must not be negative in %d question", i)
		}

		if question.Correct >= len(question.Options) {
			return fmt.Errorf("index of correct answer in %d question is out of range", i)
		}
	}

	return nil
}
