// Package models управляет моделями распознавания речи.
package models

// ModelInfo информация о модели Vosk.
type ModelInfo struct {
	ID     string // Уникальный идентификатор: "vosk-small-ru"
	Locale string // Язык модели: "ru" или "en"
	Dir    string // Имя директории после распаковки
	URL    string // URL для скачивания
	Size   int64  // Примерный размер архива в байтах
}

// Registry все известные модели.
var Registry = []ModelInfo{
	{
		ID:     "vosk-small-ru",
		Locale: "ru",
		Dir:    "vosk-model-small-ru-0.22",
		URL:    "https://alphacephei.com/vosk/models/vosk-model-small-ru-0.22.zip",
		Size:   45 * 1024 * 1024,
	},
	{
		ID:     "vosk-small-en",
		Locale: "en",
		Dir:    "vosk-model-small-en-us-0.15",
		URL:    "https://alphacephei.com/vosk/models/vosk-model-small-en-us-0.15.zip",
		Size:   40 * 1024 * 1024,
	},
}

// Find возвращает известную модель по имени директории.
func Find(dir string) (ModelInfo, bool) {
	for _, m := range Registry {
		if m.Dir == dir {
			return m, true
		}
	}
	return ModelInfo{}, false
}

// ForLocale возвращает первую известную модель для языка.
func ForLocale(locale string) (ModelInfo, bool) {
	for _, m := range Registry {
		if m.Locale == locale {
			return m, true
		}
	}
	return ModelInfo{}, false
}
