package rickmorty

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
)

// SaveImage записывает изображение персонажа в dir под очищенным именем.
// Повторное сохранение того же персонажа перезаписывает файл.
func SaveImage(ch *Character, data []byte, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("не удалось создать директорию: %w", err)
	}

	name := sanitizeName(ch.Name)
	if name == "" {
		name = fmt.Sprintf("character_%d", ch.ID)
	}
	path := filepath.Join(dir, name+".jpg")

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("не удалось записать файл: %w", err)
	}

	return path, nil
}

// Resolution возвращает размеры изображения в виде "ШxВ".
func Resolution(data []byte) (string, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("не удалось разобрать изображение: %w", err)
	}
	return fmt.Sprintf("%dx%d", cfg.Width, cfg.Height), nil
}

// sanitizeName оставляет в имени файла только буквы, цифры, пробелы и '_'.
func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '_':
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
