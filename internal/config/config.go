// Package config читает необязательный файл quizsite.yaml.
// Без файла работают значения по умолчанию, флаги CLI главнее файла.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName — имя файла настроек, которое ищется в текущей директории.
const FileName = "quizsite.yaml"

const (
	// DefaultEmail — адрес получателя результатов по умолчанию.
	DefaultEmail = "lena.lubnina@gmail.com"

	// DefaultConverter — внешний конвертер документов в текст.
	DefaultConverter = "pandoc"
)

// Config задаёт настройки генератора.
type Config struct {
	// Email — получатель отправляемых из квиза результатов.
	Email string `yaml:"email"`

	// Converter — команда конвертера документов (pandoc).
	Converter string `yaml:"converter"`

	// Reserved — имена html-файлов, не являющихся квизами.
	Reserved []string `yaml:"reserved"`
}

// Default возвращает настройки по умолчанию.
func Default() Config {
	return Config{
		Email:     DefaultEmail,
		Converter: DefaultConverter,
		Reserved:  []string{"index.html", "uploader.html"},
	}
}

// Load читает и нормализует файл настроек.
// Пустой path означает "quizsite.yaml, если он есть": отсутствие
// файла в этом случае не ошибка, явно заданный файл обязан существовать.
func Load(path string) (Config, error) {
	optional := path == ""
	if optional {
		path = FileName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if optional && os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Config{}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	normalize(&cfg)
	return cfg, nil
}

// normalize заполняет незаданные поля значениями по умолчанию.
func normalize(cfg *Config) {
	def := Default()
	if cfg.Email == "" {
		cfg.Email = def.Email
	}
	if cfg.Converter == "" {
		cfg.Converter = def.Converter
	}
	if cfg.Reserved == nil {
		cfg.Reserved = def.Reserved
	}
}
