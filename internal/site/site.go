// Package site отвечает за хранение сгенерированных страниц:
// плоская директория с html-файлами квизов и одним index.html.
// Файлы читаются и пишутся целиком, потоковой записи нет.
package site

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// IndexFile — имя страницы-списка.
const IndexFile = "index.html"

// Dir — директория сайта с квизами.
type Dir struct {
	path string
}

// New открывает директорию сайта. Сама директория не проверяется:
// любые проблемы всплывут при первом чтении или записи.
func New(path string) Dir {
	return Dir{path: path}
}

// QuizFiles возвращает имена страниц квизов, отсортированные по имени.
// Зарезервированные имена (index.html и подобные) исключаются.
func (d Dir) QuizFiles(reserved []string) ([]string, error) {
	entries, err := os.ReadDir(d.path)
	if err != nil {
		return nil, fmt.Errorf("read site directory: %w", err)
	}

	skip := make(map[string]struct{}, len(reserved))
	for _, name := range reserved {
		skip[name] = struct{}{}
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".html") {
			continue
		}
		if _, ok := skip[entry.Name()]; ok {
			continue
		}
		files = append(files, entry.Name())
	}

	sort.Strings(files)
	return files, nil
}

// Read читает страницу целиком.
func (d Dir) Read(name string) (string, error) {
	data, err := os.ReadFile(filepath.Join(d.path, name))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", name, err)
	}
	return string(data), nil
}

// Write пишет страницу целиком.
func (d Dir) Write(name, content string) error {
	if err := os.WriteFile(filepath.Join(d.path, name), []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
