package command

import "strings"

// trigger - параметризованная команда-префикс ("find ", "найти ").
// Префикс всегда заканчивается пробелом, чтобы обычный алиас,
// начинающийся с того же слова, не разбирался как параметр.
type trigger struct {
	prefix    string
	locale    string
	canonical string
}

// Router сопоставляет распознанную фразу с командой.
// Алиасы всех локалей активны одновременно: в одной сессии можно
// смешивать русские и английские команды.
type Router struct {
	triggers []trigger
	aliases  map[string]string
}

// NewRouter строит маршрутизатор из таблицы алиасов.
func NewRouter(entries []AliasEntry) *Router {
	r := &Router{
		aliases: make(map[string]string, len(entries)),
	}

	for _, e := range entries {
		phrase := strings.ToLower(strings.TrimSpace(e.Phrase))
		if phrase == "" {
			continue
		}

		if e.TakesParameter {
			r.triggers = append(r.triggers, trigger{
				prefix:    phrase + " ",
				locale:    e.Locale,
				canonical: e.Canonical,
			})
			continue
		}

		r.aliases[phrase] = e.Canonical
	}

	return r
}

// Route разбирает фразу. ok=false означает нераспознанную команду;
// текст фразы при этом сохраняется в Parameter для сообщения пользователю.
// sessionLocale влияет только на порядок проверки триггеров:
// триггеры текущей локали проверяются первыми.
func (r *Router) Route(utterance, sessionLocale string) (Command, bool) {
	text := strings.ToLower(strings.TrimSpace(utterance))

	// Триггеры имеют приоритет над точными алиасами
	for _, pass := range []bool{true, false} {
		for _, t := range r.triggers {
			if (t.locale == sessionLocale) != pass {
				continue
			}
			if strings.HasPrefix(text, t.prefix) {
				return Command{
					Canonical: t.canonical,
					Parameter: strings.TrimSpace(strings.TrimPrefix(text, t.prefix)),
				}, true
			}
		}
	}

	if canonical, ok := r.aliases[text]; ok {
		return Command{Canonical: canonical}, true
	}

	return Command{Parameter: utterance}, false
}
