package assistant

import (
	"context"
	"errors"
	"os"
	"strings"

	"govorun/internal/command"
	"govorun/internal/i18n"
	"govorun/internal/rickmorty"
)

var errNoEpisodes = errors.New("у персонажа нет эпизодов")

// handleRandom выбирает случайного персонажа и делает его текущим.
func (a *Assistant) handleRandom(ctx context.Context, _ string) command.Result {
	ch, err := a.chars.Random(ctx)
	if err != nil {
		return a.failErr(err)
	}

	a.selectCharacter(ch)

	return command.Result{
		OK:      true,
		Message: i18n.F(a.locale, "character_found", ch.Name),
	}
}

// handleShow скачивает изображение персонажа во временный файл
// и показывает его системным просмотрщиком.
func (a *Assistant) handleShow(ctx context.Context, _ string) command.Result {
	if a.selChar == nil {
		return a.fail("no_character_selected")
	}

	data, err := a.chars.FetchImage(ctx, a.selChar.Image)
	if err != nil {
		return a.failErr(err)
	}

	tmp, err := os.CreateTemp("", "govorun-*.jpg")
	if err != nil {
		return a.failErr(err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return a.failErr(err)
	}
	tmp.Close()

	return command.Result{
		OK:      true,
		Message: i18n.T(a.locale, "image_displayed"),
		Effect:  command.EffectDisplayImage,
		Payload: tmp.Name(),
	}
}

// handleResolution озвучивает размеры изображения персонажа.
func (a *Assistant) handleResolution(ctx context.Context, _ string) command.Result {
	if a.selChar == nil {
		return a.fail("no_character_selected")
	}

	data, err := a.chars.FetchImage(ctx, a.selChar.Image)
	if err != nil {
		return a.failErr(err)
	}

	res, err := rickmorty.Resolution(data)
	if err != nil {
		return a.failErr(err)
	}

	return command.Result{
		OK:      true,
		Message: i18n.F(a.locale, "resolution", res),
	}
}

// handleOrigin озвучивает место происхождения персонажа.
func (a *Assistant) handleOrigin(_ context.Context, _ string) command.Result {
	if a.selChar == nil {
		return a.fail("no_character_selected")
	}
	return command.Result{OK: true, Message: a.selChar.Origin.Name}
}

// handleLocation озвучивает текущую локацию персонажа.
func (a *Assistant) handleLocation(_ context.Context, _ string) command.Result {
	if a.selChar == nil {
		return a.fail("no_character_selected")
	}
	return command.Result{OK: true, Message: a.selChar.Location.Name}
}

// handleEpisode озвучивает название первого эпизода с персонажем.
func (a *Assistant) handleEpisode(ctx context.Context, _ string) command.Result {
	if a.selChar == nil {
		return a.fail("no_character_selected")
	}
	if len(a.selChar.Episode) == 0 {
		return a.failErr(errNoEpisodes)
	}

	name, err := a.chars.EpisodeName(ctx, a.selChar.Episode[0])
	if err != nil {
		return a.failErr(err)
	}

	return command.Result{OK: true, Message: name}
}

// handleEpisodes озвучивает список всех эпизодов с персонажем.
func (a *Assistant) handleEpisodes(ctx context.Context, _ string) command.Result {
	if a.selChar == nil {
		return a.fail("no_character_selected")
	}
	if len(a.selChar.Episode) == 0 {
		return a.failErr(errNoEpisodes)
	}

	names := make([]string, 0, len(a.selChar.Episode))
	for _, url := range a.selChar.Episode {
		name, err := a.chars.EpisodeName(ctx, url)
		if err != nil {
			return a.failErr(err)
		}
		names = append(names, name)
	}

	return command.Result{OK: true, Message: strings.Join(names, ", ")}
}
