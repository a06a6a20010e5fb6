package command

// DefaultAliases - встроенная двуязычная таблица команд.
// Загружается один раз при старте; поиск нечувствителен к регистру.
func DefaultAliases() []AliasEntry {
	return []AliasEntry{
		// Поиск слова (параметризованные триггеры)
		{Phrase: "find", Locale: "en", Canonical: CmdLookup, TakesParameter: true},
		{Phrase: "найти", Locale: "ru", Canonical: CmdLookup, TakesParameter: true},

		// Персонажи
		{Phrase: "random", Locale: "en", Canonical: CmdRandom},
		{Phrase: "случайный", Locale: "ru", Canonical: CmdRandom},
		{Phrase: "show", Locale: "en", Canonical: CmdShow},
		{Phrase: "показать", Locale: "ru", Canonical: CmdShow},
		{Phrase: "resolution", Locale: "en", Canonical: CmdResolution},
		{Phrase: "разрешение", Locale: "ru", Canonical: CmdResolution},
		{Phrase: "origin", Locale: "en", Canonical: CmdOrigin},
		{Phrase: "происхождение", Locale: "ru", Canonical: CmdOrigin},
		{Phrase: "location", Locale: "en", Canonical: CmdLocation},
		{Phrase: "локация", Locale: "ru", Canonical: CmdLocation},
		{Phrase: "episode", Locale: "en", Canonical: CmdEpisode},
		{Phrase: "эпизод", Locale: "ru", Canonical: CmdEpisode},
		{Phrase: "episode list", Locale: "en", Canonical: CmdEpisodes},
		{Phrase: "список эпизодов", Locale: "ru", Canonical: CmdEpisodes},

		// Словарь
		{Phrase: "save", Locale: "en", Canonical: CmdSave},
		{Phrase: "сохранить", Locale: "ru", Canonical: CmdSave},
		{Phrase: "meaning", Locale: "en", Canonical: CmdMeaning},
		{Phrase: "значение", Locale: "ru", Canonical: CmdMeaning},
		{Phrase: "example", Locale: "en", Canonical: CmdExample},
		{Phrase: "пример", Locale: "ru", Canonical: CmdExample},
		{Phrase: "link", Locale: "en", Canonical: CmdLink},
		{Phrase: "ссылка", Locale: "ru", Canonical: CmdLink},

		// Выход
		{Phrase: "exit", Locale: "en", Canonical: CmdExit},
		{Phrase: "quit", Locale: "en", Canonical: CmdExit},
		{Phrase: "выход", Locale: "ru", Canonical: CmdExit},
		{Phrase: "закрыть", Locale: "ru", Canonical: CmdExit},
		{Phrase: "прощаюсь", Locale: "ru", Canonical: CmdExit},
	}
}
