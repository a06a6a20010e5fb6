package assistant

import (
	"context"
	"log"
	"strings"

	"govorun/internal/command"
	"govorun/internal/i18n"
)

// Run ведёт цикл сессии до команды выхода, фатальной ошибки потока
// или отмены контекста (внешнее прерывание).
//
// Цикл строго последовательный: следующий кадр не читается, пока не
// закончилось озвучивание предыдущего результата - захват и вывод
// речи делят один аудиоконвейер.
func (a *Assistant) Run(ctx context.Context) error {
	a.renderer.Say(ctx, i18n.T(a.locale, "greet_ready"))
	a.renderer.Say(ctx, i18n.F(a.locale, "greet_commands", a.commandSummary()))

	for {
		// Прерывание проверяется между кадрами: само чтение
		// блокируется без таймаута до накопления кадра
		if ctx.Err() != nil {
			return nil
		}

		frame, err := a.source.Read()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}

		utt, ok := a.trans.Feed(frame)
		if !ok {
			continue
		}

		log.Printf("распознано: %q", utt.Text)

		cmd, ok := a.router.Route(utt.Text, string(a.locale))
		if !ok {
			// Нераспознанные фразы до реестра не доходят
			a.renderer.Say(ctx, i18n.T(a.locale, "unknown_command"))
			continue
		}

		res := a.registry.Dispatch(ctx, cmd)
		a.renderer.Render(ctx, res)

		if cmd.Canonical == command.CmdExit {
			return nil
		}
	}
}

// commandSummary перечисляет фразы текущей локали для приветствия.
func (a *Assistant) commandSummary() string {
	var phrases []string
	for _, e := range a.aliases {
		if e.Locale != string(a.locale) {
			continue
		}
		if e.TakesParameter {
			phrases = append(phrases, e.Phrase+" ...")
			continue
		}
		phrases = append(phrases, e.Phrase)
	}
	return strings.Join(phrases, ", ")
}
