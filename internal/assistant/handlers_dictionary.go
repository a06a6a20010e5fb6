package assistant

import (
	"context"
	"strings"

	"govorun/internal/command"
	"govorun/internal/i18n"
)

// handleLookup ищет слово и делает его текущим выбором.
func (a *Assistant) handleLookup(ctx context.Context, param string) command.Result {
	word := strings.TrimSpace(param)
	if word == "" {
		return a.fail("word_not_given")
	}

	entry, err := a.dict.Lookup(ctx, word)
	if err != nil {
		return a.failErr(err)
	}

	a.selectEntry(entry)

	return command.Result{
		OK:      true,
		Message: i18n.F(a.locale, "word_found", entry.Word),
	}
}

// handleMeaning озвучивает определения выбранного слова.
func (a *Assistant) handleMeaning(_ context.Context, _ string) command.Result {
	if a.selEntry == nil {
		return a.fail("no_word_selected")
	}

	defs := a.selEntry.Definitions()
	if len(defs) == 0 {
		return a.fail("no_definitions")
	}

	return command.Result{
		OK:      true,
		Message: strings.Join(defs, "; "),
	}
}

// handleExample озвучивает первый пример использования слова.
func (a *Assistant) handleExample(_ context.Context, _ string) command.Result {
	if a.selEntry == nil {
		return a.fail("no_word_selected")
	}

	example, err := a.selEntry.FirstExample()
	if err != nil {
		return a.fail("no_example")
	}

	return command.Result{OK: true, Message: example}
}

// handleLink открывает каноническую ссылку на статью.
func (a *Assistant) handleLink(_ context.Context, _ string) command.Result {
	if a.selEntry == nil {
		return a.fail("no_word_selected")
	}

	url := a.dict.Link(a.selEntry)

	return command.Result{
		OK:      true,
		Message: i18n.F(a.locale, "link_opened", url),
		Effect:  command.EffectOpenLink,
		Payload: url,
	}
}
