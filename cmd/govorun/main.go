// Govorun - двуязычный голосовой ассистент.
//
// Слушает микрофон, распознаёт команды через Vosk и отвечает речью.
// Источники данных: словарь (dictionaryapi.dev) и база персонажей
// (rickandmortyapi.com).
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"govorun/internal/assistant"
	"govorun/internal/audio"
	"govorun/internal/config"
	"govorun/internal/dictionary"
	"govorun/internal/models"
	"govorun/internal/output"
	"govorun/internal/rickmorty"
	"govorun/internal/speech"
	"govorun/internal/tts"
)

// Version устанавливается при сборке через -ldflags.
var Version = "dev"

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)
	log.Printf("Govorun %s запускается...", Version)

	if err := run(); err != nil {
		log.Printf("Ошибка: %v", err)
		os.Exit(1)
	}
}

// run - единственная точка конструирования сессии;
// никаких глобальных распознавателей и синтезаторов.
func run() error {
	cfg := config.Load()

	// Единственный позиционный аргумент - путь к модели
	if len(os.Args) > 1 {
		cfg.ModelPath = os.Args[1]
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Известные модели скачиваются при первом запуске
	modelPath, err := models.Ensure(ctx, cfg.ModelPath)
	if err != nil {
		return err
	}
	cfg.ModelPath = modelPath

	source, err := audio.NewSource(cfg.SampleRate, cfg.FrameSize)
	if err != nil {
		return err
	}

	transcriber, err := speech.NewVosk(speech.Config{
		ModelPath:  cfg.ModelPath,
		SampleRate: cfg.SampleRate,
	})
	if err != nil {
		// Устройство освобождается и при фатальной ошибке модели
		source.Close()
		return err
	}

	player, err := audio.NewPlayer()
	if err != nil {
		transcriber.Close()
		source.Close()
		return err
	}
	defer player.Close()

	speaker := tts.NewSpeaker(tts.Voice{Locale: cfg.Locale, VoiceID: cfg.VoiceID}, player)

	a := assistant.New(cfg, assistant.Deps{
		Source:      source,
		Transcriber: transcriber,
		Renderer:    output.NewRenderer(speaker, cfg.Notifications),
		Dictionary:  dictionary.New(dictionary.Config{BaseURL: cfg.DictionaryURL}),
		Characters: rickmorty.New(rickmorty.Config{
			BaseURL:        cfg.CharacterURL,
			CharacterCount: cfg.CharacterCount,
		}),
	})
	defer a.Close()

	log.Printf("Сессия запущена: модель %s, голос %s", cfg.ModelPath, speaker.Voice().VoiceID)

	return a.Run(ctx)
}
