package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/letsssgooo/quizSite/internal/config"
	"github.com/letsssgooo/quizSite/internal/extract"
	"github.com/letsssgooo/quizSite/internal/index"
	"github.com/letsssgooo/quizSite/internal/lib/slogcustom"
	"github.com/letsssgooo/quizSite/internal/quiz"
	"github.com/letsssgooo/quizSite/internal/render"
	"github.com/letsssgooo/quizSite/internal/site"
	"github.com/spf13/pflag"
)

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	switch args[0] {
	case "convert":
		runConvert(args[1:])
	case "update-index":
		runUpdateIndex(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", args[0])
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `usage:
  quizsite convert <document.docx> [title] [flags]
      convert a Word quiz export into a standalone HTML quiz

  quizsite update-index [flags]
      regenerate the quiz cards in index.html

flags:
      --config string   path to quizsite.yaml
      --email string    recipient of quiz result submissions (convert)
      --dir string      site directory (update-index, default ".")
  -v, --verbose         enable debug output
`)
}

func setupLogger(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slogcustom.NewCustomHandler(os.Stderr, level))
	slog.SetDefault(log)
}

func fatal(msg string, args ...any) {
	slog.Error(msg, args...)
	os.Exit(1)
}

func runConvert(args []string) {
	fs := pflag.NewFlagSet("convert", pflag.ExitOnError)
	flagEmail := fs.String("email", "", "recipient of quiz result submissions")
	flagConfig := fs.String("config", "", "path to quizsite.yaml")
	flagVerbose := fs.BoolP("verbose", "v", false, "enable debug output")
	fs.Parse(args)

	setupLogger(*flagVerbose)

	docPath := fs.Arg(0)
	if docPath == "" {
		usage()
		os.Exit(1)
	}

	title := fs.Arg(1)
	if title == "" {
		title = titleFromStem(docPath)
	}

	cfg, err := config.Load(*flagConfig)
	if err != nil {
		fatal("can not load config", "err", err)
	}
	if *flagEmail != "" {
		cfg.Email = *flagEmail
	}

	if _, err := os.Stat(docPath); err != nil {
		fatal("file not found", "path", docPath)
	}

	slog.Info("reading quiz document", "path", docPath)
	text, err := extract.Text(cfg.Converter, docPath)
	if err != nil {
		if errors.Is(err, extract.ErrToolUnavailable) {
			fatal("converter tool not found, please install it", "converter", cfg.Converter)
		}
		fatal("can not extract text", "err", err)
	}

	q, err := quiz.Parse(text, title)
	if err != nil {
		if errors.Is(err, quiz.ErrNoQuestions) {
			slog.Error("no questions found in the document")
			slog.Error("expected NotebookLM quiz format: counter lines like '1 / 10', options labeled A-D, an optional Hint section")
			os.Exit(1)
		}
		fatal("can not parse quiz", "err", err)
	}

	slog.Info("parsed questions", "count", len(q.Questions))
	preview(q)

	if q.Unmarked > 0 {
		slog.Warn("questions without an answer marker default to the first option, please review", "count", q.Unmarked)
	}

	html, err := render.Page(q, cfg.Email)
	if err != nil {
		fatal("can not render quiz", "err", err)
	}

	outName := stem(docPath) + ".html"
	dir := site.New(filepath.Dir(docPath))
	if err := dir.Write(outName, html); err != nil {
		fatal("can not write quiz page", "err", err)
	}

	slog.Info("quiz saved", "file", filepath.Join(filepath.Dir(docPath), outName), "title", q.Title)
}

// preview показывает первые три вопроса для быстрой проверки глазами.
func preview(q *quiz.Quiz) {
	const shown = 3
	for i, question := range q.Questions {
		if i == shown {
			slog.Info("more questions elided", "count", len(q.Questions)-shown)
			break
		}
		slog.Info("question", "n", i+1, "text", truncate(question.Text, 60))
		for j, opt := range question.Options {
			slog.Debug("option", "letter", string(rune('A'+j)), "text", truncate(opt, 40))
		}
	}
}

func runUpdateIndex(args []string) {
	fs := pflag.NewFlagSet("update-index", pflag.ExitOnError)
	flagDir := fs.String("dir", ".", "site directory")
	flagConfig := fs.String("config", "", "path to quizsite.yaml")
	flagVerbose := fs.BoolP("verbose", "v", false, "enable debug output")
	fs.Parse(args)

	setupLogger(*flagVerbose)

	cfg, err := config.Load(*flagConfig)
	if err != nil {
		fatal("can not load config", "err", err)
	}

	dir := site.New(*flagDir)

	files, err := dir.QuizFiles(cfg.Reserved)
	if err != nil {
		fatal("can not scan for quiz files", "err", err)
	}
	slog.Info("found quiz files", "count", len(files))

	summaries := make([]index.Summary, 0, len(files))
	for _, name := range files {
		content, err := dir.Read(name)
		if err != nil {
			slog.Warn("can not read quiz page, using fallback summary", "file", name, "err", err)
			summaries = append(summaries, index.Fallback(name))
			continue
		}
		s := index.Summarize(name, content)
		slog.Debug("quiz summary", "file", name, "title", s.Title, "questions", s.QuestionCount)
		summaries = append(summaries, s)
	}

	cards, err := index.Cards(summaries)
	if err != nil {
		fatal("can not render quiz cards", "err", err)
	}

	content, err := dir.Read(site.IndexFile)
	if err != nil {
		fatal("can not read index page", "err", err)
	}

	updated, err := index.ReplaceGrid(content, cards)
	if err != nil {
		fatal("can not update index page", "err", err)
	}

	if err := dir.Write(site.IndexFile, updated); err != nil {
		fatal("can not write index page", "err", err)
	}

	slog.Info("index updated", "quizzes", len(summaries))
	for _, s := range summaries {
		slog.Info("listed quiz", "title", s.Title, "questions", s.QuestionCount)
	}
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// titleFromStem делает заголовок из имени файла: my_quiz.docx -> "My Quiz".
func titleFromStem(path string) string {
	words := strings.Fields(strings.ReplaceAll(stem(path), "_", " "))
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
