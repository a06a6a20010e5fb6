package models

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// Ensure проверяет наличие модели по пути и при необходимости скачивает
// её. Автоматически скачиваются только известные модели из Registry;
// для незнакомых путей отсутствие - фатальная ошибка.
func Ensure(ctx context.Context, path string) (string, error) {
	if stat, err := os.Stat(path); err == nil && stat.IsDir() {
		return path, nil
	}

	info, ok := Find(filepath.Base(path))
	if !ok {
		return "", fmt.Errorf("модель не найдена: %s", path)
	}

	log.Printf("модель %s отсутствует, скачиваем %s", info.Dir, info.URL)

	parent := filepath.Dir(path)
	if parent == "" {
		parent = "."
	}
	if err := os.MkdirAll(parent, 0755); err != nil {
		return "", fmt.Errorf("не удалось создать директорию моделей: %w", err)
	}

	archivePath, err := download(ctx, info.URL)
	if err != nil {
		return "", fmt.Errorf("не удалось скачать модель: %w", err)
	}
	defer os.Remove(archivePath)

	if err := unzip(archivePath, parent); err != nil {
		return "", fmt.Errorf("не удалось распаковать модель: %w", err)
	}

	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("архив модели не содержит %s: %w", info.Dir, err)
	}

	log.Printf("модель %s готова", info.Dir)

	return path, nil
}

// download скачивает файл во временный архив и возвращает его путь.
func download(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("сервер вернул %s", resp.Status)
	}

	tmp, err := os.CreateTemp("", "govorun-model-*.zip")
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", err
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}

	return tmp.Name(), nil
}

// unzip распаковывает архив в destDir.
func unzip(src, destDir string) error {
	reader, err := zip.OpenReader(src)
	if err != nil {
		return err
	}
	defer reader.Close()

	for _, file := range reader.File {
		target := filepath.Join(destDir, file.Name)

		// Защита от выхода за пределы destDir
		if !strings.HasPrefix(target, filepath.Clean(destDir)+string(os.PathSeparator)) {
			return fmt.Errorf("недопустимый путь в архиве: %s", file.Name)
		}

		if file.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0755); err != nil {
				return err
			}
			continue
		}

		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return err
		}

		if err := extractFile(file, target); err != nil {
			return err
		}
	}

	return nil
}

func extractFile(file *zip.File, target string) error {
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(target)
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}
