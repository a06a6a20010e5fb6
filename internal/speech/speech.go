// Package speech предоставляет потоковое распознавание речи.
package speech

// Utterance - законченная реплика, выделенная детектором конца речи.
// Промежуточные гипотезы наружу не выдаются.
type Utterance struct {
	Text  string
	Final bool
}

// Transcriber - интерфейс потокового распознавателя.
type Transcriber interface {
	// Feed скармливает распознавателю один кадр аудио.
	// ok=true возвращается только когда детектор конца речи
	// финализировал гипотезу с непустым текстом.
	Feed(frame []int16) (Utterance, bool)

	// Close освобождает ресурсы распознавателя.
	Close()

	// Name возвращает название движка (для логирования).
	Name() string
}

// Config содержит настройки создания распознавателя.
type Config struct {
	// ModelPath - путь к модели Vosk.
	ModelPath string

	// SampleRate - частота дискретизации входного аудио.
	SampleRate int
}
