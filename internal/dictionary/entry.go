package dictionary

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Entry - словарная статья.
type Entry struct {
	Word     string    `json:"word"`
	Phonetic string    `json:"phonetic,omitempty"`
	Meanings []Meaning `json:"meanings"`
}

// Meaning - группа определений для одной части речи.
type Meaning struct {
	PartOfSpeech string       `json:"partOfSpeech"`
	Definitions  []Definition `json:"definitions"`
}

// Definition - одно определение с необязательным примером.
type Definition struct {
	Definition string `json:"definition"`
	Example    string `json:"example,omitempty"`
}

// Definitions возвращает все определения в виде "(часть речи) определение".
func (e *Entry) Definitions() []string {
	var defs []string
	for _, m := range e.Meanings {
		for _, d := range m.Definitions {
			defs = append(defs, fmt.Sprintf("(%s) %s", m.PartOfSpeech, d.Definition))
		}
	}
	return defs
}

// FirstExample возвращает первый непустой пример использования.
func (e *Entry) FirstExample() (string, error) {
	for _, m := range e.Meanings {
		for _, d := range m.Definitions {
			if d.Example != "" {
				return d.Example, nil
			}
		}
	}
	return "", fmt.Errorf("пример не найден")
}

// Save записывает статью в JSON-файл внутри dir.
// Имя файла - очищенное слово; повторное сохранение перезаписывает файл.
func (e *Entry) Save(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("не удалось создать директорию: %w", err)
	}

	name := SanitizeName(e.Word)
	if name == "" {
		name = "entry"
	}
	path := filepath.Join(dir, name+".json")

	data, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal entry: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("не удалось записать файл: %w", err)
	}

	return path, nil
}

// SanitizeName оставляет в имени файла только буквы, цифры, пробелы и '_'.
func SanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'а' && r <= 'я', r >= 'А' && r <= 'Я', r == 'ё', r == 'Ё':
			b.WriteRune(r)
		case r == ' ', r == '_':
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
