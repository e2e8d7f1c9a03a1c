package index

import "strings"

// Подбор иконки и описания по ключевым словам заголовка:
// упорядоченные таблицы (предикат, значение), побеждает первое совпадение.

type rule struct {
	match func(title string) bool
	value string
}

func anyOf(words ...string) func(string) bool {
	return func(title string) bool {
		for _, w := range words {
			if strings.Contains(title, w) {
				return true
			}
		}
		return false
	}
}

func allOf(words ...string) func(string) bool {
	return func(title string) bool {
		for _, w := range words {
			if !strings.Contains(title, w) {
				return false
			}
		}
		return true
	}
}

const (
	defaultIcon        = "📚"
	defaultDescription = "Test your knowledge with this interactive quiz."
)

var iconRules = []rule{
	{anyOf("graph", "trends", "data"), "📊"},
	{anyOf("ielts", "preparation"), "📝"},
	{anyOf("vocabulary", "word"), "📖"},
	{anyOf("grammar"), "✍️"},
	{anyOf("sweetener", "nutrition"), "🍬"},
	{anyOf("masld", "liver"), "🧬"},
	{anyOf("science"), "🔬"},
	{anyOf("math"), "🔢"},
}

var descriptionRules = []rule{
	{allOf("graph", "trends"), "Master the terminology used to describe data trends, patterns, and changes in graphs and visualizations."},
	{anyOf("ielts", "preparation"), "Test your knowledge of IELTS Task 1 structure, vocabulary, and writing techniques for academic reports."},
	{anyOf("vocabulary"), "Expand your vocabulary and test your understanding of key terms and expressions."},
	{anyOf("grammar"), "Practice essential grammar rules and improve your language skills."},
}

func firstMatch(rules []rule, title, fallback string) string {
	lower := strings.ToLower(title)
	for _, r := range rules {
		if r.match(lower) {
			return r.value
		}
	}
	return fallback
}

func iconFor(title string) string {
	return firstMatch(iconRules, title, defaultIcon)
}

func descriptionFor(title string) string {
	return firstMatch(descriptionRules, title, defaultDescription)
}
