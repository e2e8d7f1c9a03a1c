package quiz

import (
	"errors"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// ErrNoQuestions возвращается, когда из документа не удалось извлечь ни одного вопроса.
var ErrNoQuestions = errors.New("no questions found in document")

var (
	separatorPattern = regexp.MustCompile(`^\d+\s*/\s*\d+$`)
	blankPattern     = regexp.MustCompile(`_{2,}`)
)

// blankPlaceholder — единая ширина пропуска в вопросах с заполнением.
const blankPlaceholder = "___________"

var optionMarkers = map[string]struct{}{
	"A.": {},
	"B.": {},
	"C.": {},
	"D.": {},
}

// Parse разбирает извлечённый из документа текст в квиз.
// Блоки вопросов разделены строками-счётчиками вида "3 / 10".
// Блок, в котором не нашлось текста вопроса или четырёх вариантов,
// молча пропускается; ошибка только если не распознан ни один вопрос.
func Parse(text, title string) (*Quiz, error) {
	q := &Quiz{
		ID:    uuid.NewString(),
		Title: title,
	}

	for _, block := range splitBlocks(text) {
		question, marked, ok := parseBlock(block)
		if !ok {
			continue
		}
		if !marked {
			q.Unmarked++
		}
		q.Questions = append(q.Questions, question)
	}

	if len(q.Questions) == 0 {
		return nil, ErrNoQuestions
	}

	return q, nil
}

func splitBlocks(text string) [][]string {
	var blocks [][]string
	var current []string

	for _, line := range strings.Split(text, "\n") {
		if separatorPattern.MatchString(strings.TrimSpace(line)) {
			if len(current) > 0 {
				blocks = append(blocks, current)
			}
			current = nil
			continue
		}
		current = append(current, line)
	}

	if len(current) > 0 {
		blocks = append(blocks, current)
	}

	return blocks
}

// Состояния классификатора строк внутри блока.
type parseState int

const (
	seekQuestion parseState = iota
	seekOption
	skipHintHeader
	seekHint
)

// parseBlock прогоняет строки блока через классификатор состояний.
// Возвращает ok=false, если блок не похож на вопрос,
// и marked=false, если источник не пометил правильный ответ.
func parseBlock(lines []string) (question Question, marked, ok bool) {
	var (
		state   = seekQuestion
		buf     []string
		text    string
		options []string
	)

	flushOption := func() {
		opt := strings.TrimSpace(strings.Join(buf, "\n"))
		buf = nil
		if opt != "" {
			options = append(options, opt)
		}
	}

	var hintLines []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		switch state {
		case seekQuestion:
			if trimmed == "A." {
				text = strings.TrimSpace(strings.Join(buf, "\n"))
				buf = nil
				state = seekOption
				continue
			}
			buf = append(buf, line)

		case seekOption:
			if _, ok := optionMarkers[trimmed]; ok {
				flushOption()
				continue
			}
			if strings.HasPrefix(trimmed, "Hint") {
				flushOption()
				state = skipHintHeader
				continue
			}
			buf = append(buf, line)

		case skipHintHeader:
			// Первая строка после маркера Hint не относится к подсказке.
			state = seekHint

		case seekHint:
			hintLines = append(hintLines, line)
		}
	}

	if state == seekOption {
		flushOption()
	}

	if text == "" || len(options) < OptionCount {
		return Question{}, false, false
	}

	text = blankPattern.ReplaceAllString(text, blankPlaceholder)
	text = unescape(text)

	options = options[:OptionCount]
	correct := -1
	for i, opt := range options {
		stripped, hasMarker := stripAnswerMarker(opt)
		if hasMarker && correct == -1 {
			correct = i
		}
		options[i] = unescape(stripped)
	}

	marked = correct != -1
	if !marked {
		// Источник не пометил правильный ответ: оставляем первый вариант,
		// вызывающий считает такие вопросы через Quiz.Unmarked.
		correct = 0
	}

	hint := unescape(strings.TrimSpace(strings.Join(hintLines, "\n")))

	return Question{
		Text:    text,
		Options: options,
		Correct: correct,
		Hint:    hint,
	}, marked, true
}

// unescape убирает экранирование апострофов, оставшееся от внешнего конвертера.
func unescape(s string) string {
	return strings.ReplaceAll(s, `\'`, "'")
}
