// Package config предоставляет конфигурацию приложения.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config хранит настройки сессии. Значения читаются один раз при
// старте: файл config.json рядом с бинарником, затем переменные
// окружения (включая .env).
type Config struct {
	// ModelPath - путь к модели Vosk (может быть переопределён
	// позиционным аргументом командной строки).
	ModelPath string `json:"model_path"`

	// SampleRate и FrameSize задают формат захвата аудио.
	SampleRate int `json:"sample_rate"`
	FrameSize  int `json:"frame_size"`

	// Locale - язык озвучиваемых сообщений ("ru" или "en").
	Locale string `json:"locale"`
	// VoiceID - явный голос Edge TTS; пустой = первый голос локали.
	VoiceID string `json:"voice_id"`

	// Адреса внешних источников данных.
	DictionaryURL string `json:"dictionary_url"`
	CharacterURL  string `json:"character_url"`

	// CharacterCount - запасное количество персонажей для случайного
	// выбора, если живой запрос количества не удался.
	CharacterCount int `json:"character_count"`

	// Директории для сохраняемых статей и изображений.
	EntriesDir string `json:"entries_dir"`
	ImagesDir  string `json:"images_dir"`

	// Notifications включает системные уведомления о побочных действиях.
	Notifications bool `json:"notifications"`
}

// Default возвращает конфигурацию по умолчанию.
func Default() Config {
	return Config{
		ModelPath:      "vosk-model-small-ru-0.22",
		SampleRate:     16000,
		FrameSize:      4000,
		Locale:         "en",
		CharacterCount: 826,
		EntriesDir:     "dictionary_entries",
		ImagesDir:      "images",
		Notifications:  true,
	}
}

// Load собирает конфигурацию: defaults -> config.json -> окружение.
func Load() Config {
	cfg := Default()

	// .env рядом с процессом; отсутствие файла не ошибка
	_ = godotenv.Load()

	cfg.loadFile()
	cfg.loadEnv()

	return cfg
}

// loadFile подмешивает config.json рядом с бинарником, если он есть.
func (c *Config) loadFile() {
	execPath, err := os.Executable()
	if err != nil {
		return
	}
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return
	}

	data, err := os.ReadFile(filepath.Join(filepath.Dir(execPath), "config.json"))
	if err != nil {
		return // Файл не существует, используем defaults
	}

	// Битый файл игнорируем целиком
	var fileCfg Config
	if err := json.Unmarshal(data, &fileCfg); err != nil {
		return
	}

	c.merge(fileCfg)
}

// merge подмешивает непустые значения другой конфигурации.
func (c *Config) merge(other Config) {
	if other.ModelPath != "" {
		c.ModelPath = other.ModelPath
	}
	if other.SampleRate > 0 {
		c.SampleRate = other.SampleRate
	}
	if other.FrameSize > 0 {
		c.FrameSize = other.FrameSize
	}
	if other.Locale != "" {
		c.Locale = other.Locale
	}
	if other.VoiceID != "" {
		c.VoiceID = other.VoiceID
	}
	if other.DictionaryURL != "" {
		c.DictionaryURL = other.DictionaryURL
	}
	if other.CharacterURL != "" {
		c.CharacterURL = other.CharacterURL
	}
	if other.CharacterCount > 0 {
		c.CharacterCount = other.CharacterCount
	}
	if other.EntriesDir != "" {
		c.EntriesDir = other.EntriesDir
	}
	if other.ImagesDir != "" {
		c.ImagesDir = other.ImagesDir
	}
}

// loadEnv подмешивает переменные окружения GOVORUN_*.
func (c *Config) loadEnv() {
	if v := os.Getenv("GOVORUN_MODEL"); v != "" {
		c.ModelPath = v
	}
	if v := os.Getenv("GOVORUN_LOCALE"); v != "" {
		c.Locale = v
	}
	if v := os.Getenv("GOVORUN_VOICE"); v != "" {
		c.VoiceID = v
	}
	if v := os.Getenv("GOVORUN_DICTIONARY_URL"); v != "" {
		c.DictionaryURL = v
	}
	if v := os.Getenv("GOVORUN_CHARACTER_URL"); v != "" {
		c.CharacterURL = v
	}
	if v := os.Getenv("GOVORUN_CHARACTER_COUNT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.CharacterCount = n
		}
	}
	if v := os.Getenv("GOVORUN_NOTIFICATIONS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Notifications = b
		}
	}
}
