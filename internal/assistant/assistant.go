// Package assistant содержит основную логику голосовой сессии.
package assistant

import (
	"context"

	"govorun/internal/command"
	"govorun/internal/config"
	"govorun/internal/dictionary"
	"govorun/internal/i18n"
	"govorun/internal/output"
	"govorun/internal/rickmorty"
	"govorun/internal/speech"
)

// FrameSource - блокирующий источник аудиокадров.
type FrameSource interface {
	Read() ([]int16, error)
	Close() error
}

// Deps - внешние составляющие сессии. Конструируются явно
// в точке входа, без глобальных синглтонов.
type Deps struct {
	Source      FrameSource
	Transcriber speech.Transcriber
	Renderer    *output.Renderer
	Dictionary  *dictionary.Client
	Characters  *rickmorty.Client
}

// Assistant ведёт голосовую сессию: цикл
// захват -> распознавание -> разбор -> выполнение -> озвучивание.
type Assistant struct {
	cfg      config.Config
	locale   i18n.Locale
	source   FrameSource
	trans    speech.Transcriber
	renderer *output.Renderer
	router   *command.Router
	registry *command.Registry
	aliases  []command.AliasEntry
	dict     *dictionary.Client
	chars    *rickmorty.Client

	// Состояние сессии. Владелец один - цикл Run; обработчики
	// выполняются строго последовательно, поэтому мьютекс не нужен.
	// Выбрана всегда максимум одна сущность: слово или персонаж.
	selEntry *dictionary.Entry
	selChar  *rickmorty.Character
}

// New создаёт ассистента и регистрирует обработчики команд.
func New(cfg config.Config, deps Deps) *Assistant {
	aliases := command.DefaultAliases()

	a := &Assistant{
		cfg:      cfg,
		locale:   i18n.Locale(cfg.Locale),
		source:   deps.Source,
		trans:    deps.Transcriber,
		renderer: deps.Renderer,
		router:   command.NewRouter(aliases),
		registry: command.NewRegistry(),
		aliases:  aliases,
		dict:     deps.Dictionary,
		chars:    deps.Characters,
	}

	a.registerHandlers()

	return a
}

func (a *Assistant) registerHandlers() {
	// Словарь
	a.registry.Register(command.CmdLookup, a.handleLookup)
	a.registry.Register(command.CmdMeaning, a.handleMeaning)
	a.registry.Register(command.CmdExample, a.handleExample)
	a.registry.Register(command.CmdLink, a.handleLink)

	// Персонажи
	a.registry.Register(command.CmdRandom, a.handleRandom)
	a.registry.Register(command.CmdShow, a.handleShow)
	a.registry.Register(command.CmdResolution, a.handleResolution)
	a.registry.Register(command.CmdOrigin, a.handleOrigin)
	a.registry.Register(command.CmdLocation, a.handleLocation)
	a.registry.Register(command.CmdEpisode, a.handleEpisode)
	a.registry.Register(command.CmdEpisodes, a.handleEpisodes)

	// Общие
	a.registry.Register(command.CmdSave, a.handleSave)
	a.registry.Register(command.CmdExit, a.handleExit)
}

// selectEntry делает статью текущим выбором, сбрасывая персонажа.
func (a *Assistant) selectEntry(e *dictionary.Entry) {
	a.selEntry = e
	a.selChar = nil
}

// selectCharacter делает персонажа текущим выбором, сбрасывая статью.
func (a *Assistant) selectCharacter(ch *rickmorty.Character) {
	a.selChar = ch
	a.selEntry = nil
}

// fail - неуспешный результат с локализованным сообщением.
func (a *Assistant) fail(key string) command.Result {
	return command.Result{OK: false, Message: i18n.T(a.locale, key)}
}

// failErr - неуспешный результат из ошибки внешнего источника.
// Ошибки никогда не пересекают границу обработчика сырыми.
func (a *Assistant) failErr(err error) command.Result {
	return command.Result{OK: false, Message: i18n.F(a.locale, "error", err.Error())}
}

// handleSave сохраняет текущий выбор: статью в JSON,
// персонажа - изображением.
func (a *Assistant) handleSave(ctx context.Context, _ string) command.Result {
	switch {
	case a.selEntry != nil:
		path, err := a.selEntry.Save(a.cfg.EntriesDir)
		if err != nil {
			return a.failErr(err)
		}
		return command.Result{
			OK:      true,
			Message: i18n.F(a.locale, "saved", path),
			Effect:  command.EffectSaveFile,
			Payload: path,
		}

	case a.selChar != nil:
		data, err := a.chars.FetchImage(ctx, a.selChar.Image)
		if err != nil {
			return a.failErr(err)
		}
		path, err := rickmorty.SaveImage(a.selChar, data, a.cfg.ImagesDir)
		if err != nil {
			return a.failErr(err)
		}
		return command.Result{
			OK:      true,
			Message: i18n.F(a.locale, "saved", path),
			Effect:  command.EffectSaveFile,
			Payload: path,
		}

	default:
		return a.fail("no_word_selected")
	}
}

func (a *Assistant) handleExit(_ context.Context, _ string) command.Result {
	return command.Result{OK: true, Message: i18n.T(a.locale, "goodbye")}
}

// Close освобождает ресурсы сессии. Источник аудио закрывается
// ровно один раз на любом пути завершения.
func (a *Assistant) Close() {
	if a.source != nil {
		a.source.Close()
	}
	if a.trans != nil {
		a.trans.Close()
	}
}
