// Package output озвучивает результаты команд и выполняет побочные действия.
package output

import (
	"context"
	"fmt"
	"log"
	"os/exec"
	"runtime"

	"govorun/internal/command"
	"govorun/internal/notify"
)

// Speaker произносит текст.
type Speaker interface {
	Speak(ctx context.Context, text string) error
}

// Renderer выводит результат обработчика: сначала сообщение
// (печать + речь), затем побочное действие. Такой порядок гарантирует,
// что сбой побочного действия не заглушит сообщение.
type Renderer struct {
	speaker  Speaker
	notifier *notify.Notifier
}

// NewRenderer создаёт Renderer.
func NewRenderer(speaker Speaker, notifications bool) *Renderer {
	return &Renderer{
		speaker:  speaker,
		notifier: notify.New(notifications),
	}
}

// Say печатает и произносит произвольное сообщение.
// Ошибки синтеза не фатальны: текст уже напечатан.
func (r *Renderer) Say(ctx context.Context, message string) {
	if message == "" {
		return
	}

	fmt.Printf("> %s\n", message)

	if err := r.speaker.Speak(ctx, message); err != nil {
		log.Printf("ошибка озвучивания: %v", err)
	}
}

// Render выводит результат команды и выполняет его побочное действие.
// Сбои побочных действий логируются и не прерывают сессию.
func (r *Renderer) Render(ctx context.Context, res command.Result) {
	r.Say(ctx, res.Message)

	switch res.Effect {
	case command.EffectNone:
	case command.EffectOpenLink:
		if err := openPath(res.Payload); err != nil {
			log.Printf("не удалось открыть ссылку %q: %v", res.Payload, err)
		}
	case command.EffectDisplayImage:
		if err := openPath(res.Payload); err != nil {
			log.Printf("не удалось показать изображение %q: %v", res.Payload, err)
		}
	case command.EffectSaveFile:
		r.notifier.Saved(res.Payload)
	}
}

// openPath открывает URL или файл системным обработчиком.
func openPath(path string) error {
	if path == "" {
		return fmt.Errorf("пустой путь")
	}

	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", path).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", path).Start()
	default:
		return exec.Command("xdg-open", path).Start()
	}
}
