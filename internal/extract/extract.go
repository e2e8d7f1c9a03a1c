// Package extract извлекает простой текст из документов Word
// через внешний конвертер (pandoc), запускаемый как подпроцесс.
package extract

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrToolUnavailable возвращается, когда внешний конвертер не установлен.
var ErrToolUnavailable = errors.New("converter tool not found")

// Text запускает конвертер и возвращает его stdout.
// Любой ненулевой код выхода фатален для конвертации.
func Text(converter, path string) (string, error) {
	cmd := exec.Command(converter, path, "-o", "-", "--to=plain")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", fmt.Errorf("%w: %s", ErrToolUnavailable, converter)
		}
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return "", fmt.Errorf("%s failed: %w: %s", converter, err, msg)
		}
		return "", fmt.Errorf("%s failed: %w", converter, err)
	}

	return stdout.String(), nil
}
