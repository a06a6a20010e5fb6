package speech

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	vosk "github.com/alphacep/vosk-api/go"
)

// VoskTranscriber реализует Transcriber через Vosk.
// Распознаёт инкрементально: кадры накапливаются внутри движка,
// текст возвращается только по срабатыванию детектора конца речи.
type VoskTranscriber struct {
	mu         sync.Mutex
	model      *vosk.VoskModel
	recognizer *vosk.VoskRecognizer
}

// voskResult структура для парсинга JSON результата от Vosk.
type voskResult struct {
	Text string `json:"text"`
}

// NewVosk создаёт VoskTranscriber из пути к модели.
// Путь проверяется как есть, затем относительно рабочей директории;
// отсутствие модели - фатальная ошибка конструирования.
func NewVosk(cfg Config) (*VoskTranscriber, error) {
	modelPath := resolveModelPath(cfg.ModelPath)
	if modelPath == "" {
		return nil, fmt.Errorf("модель Vosk не найдена: %s", cfg.ModelPath)
	}

	model, err := vosk.NewModel(modelPath)
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки модели Vosk: %w", err)
	}

	sampleRate := cfg.SampleRate
	if sampleRate <= 0 {
		sampleRate = 16000
	}

	rec, err := vosk.NewRecognizer(model, float64(sampleRate))
	if err != nil {
		model.Free()
		return nil, fmt.Errorf("ошибка создания распознавателя: %w", err)
	}

	return &VoskTranscriber{
		model:      model,
		recognizer: rec,
	}, nil
}

// resolveModelPath возвращает существующий путь к модели или "".
func resolveModelPath(path string) string {
	if path == "" {
		return ""
	}
	if _, err := os.Stat(path); err == nil {
		return path
	}

	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	relative := filepath.Join(wd, path)
	if _, err := os.Stat(relative); err == nil {
		return relative
	}
	return ""
}

// Name возвращает название движка.
func (v *VoskTranscriber) Name() string {
	return "vosk"
}

// Feed скармливает один кадр PCM16 и возвращает реплику,
// если детектор конца речи финализировал непустую гипотезу.
// Пустые финализации подавляются.
func (v *VoskTranscriber) Feed(frame []int16) (Utterance, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.recognizer == nil || len(frame) == 0 {
		return Utterance{}, false
	}

	// Vosk принимает little-endian PCM16 байты
	pcm := make([]byte, len(frame)*2)
	for i, sample := range frame {
		binary.LittleEndian.PutUint16(pcm[i*2:], uint16(sample))
	}

	if v.recognizer.AcceptWaveform(pcm) == 0 {
		// Конец реплики ещё не обнаружен
		return Utterance{}, false
	}

	var result voskResult
	if err := json.Unmarshal([]byte(v.recognizer.Result()), &result); err != nil {
		log.Printf("ошибка разбора результата Vosk: %v", err)
		return Utterance{}, false
	}

	text := strings.TrimSpace(result.Text)
	if text == "" {
		return Utterance{}, false
	}

	return Utterance{Text: text, Final: true}, true
}

// Close освобождает ресурсы.
func (v *VoskTranscriber) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.recognizer != nil {
		v.recognizer.Free()
		v.recognizer = nil
	}

	if v.model != nil {
		v.model.Free()
		v.model = nil
	}
}
