// Package i18n provides localized phrases for the spoken output.
package i18n

import "fmt"

// Locale represents an output language.
type Locale string

const (
	RU Locale = "ru"
	EN Locale = "en"
)

// Translations for all supported locales. The table is immutable;
// callers pass the locale explicitly instead of switching a global.
var translations = map[Locale]map[string]string{
	EN: {
		// Greeting
		"greet_ready":    "Voice assistant activated. Say 'find <word>' or 'random'.",
		"greet_commands": "Commands: %s.",

		// Routing
		"unknown_command": "Command not recognized. Please try again.",

		// Dictionary
		"word_found":       "Word '%s' found.",
		"word_not_given":   "Say a word after the command.",
		"no_word_selected": "No word selected.",
		"no_definitions":   "No definitions found.",
		"no_example":       "No example found.",
		"link_opened":      "Opened link: %s",

		// Characters
		"character_found":       "Character '%s' found.",
		"no_character_selected": "No character selected.",
		"image_displayed":       "Image displayed.",
		"resolution":            "Resolution: %s.",

		// Common
		"saved":   "Saved to %s.",
		"error":   "Error: %s.",
		"goodbye": "Goodbye!",
	},

	RU: {
		// Приветствие
		"greet_ready":    "Голосовой ассистент активирован. Скажите 'найти <слово>' или 'случайный'.",
		"greet_commands": "Команды: %s.",

		// Маршрутизация
		"unknown_command": "Команда не распознана. Попробуйте снова.",

		// Словарь
		"word_found":       "Слово '%s' найдено.",
		"word_not_given":   "Скажите слово после команды.",
		"no_word_selected": "Слово не выбрано.",
		"no_definitions":   "Определения не найдены.",
		"no_example":       "Пример не найден.",
		"link_opened":      "Ссылка открыта: %s",

		// Персонажи
		"character_found":       "Персонаж '%s' найден.",
		"no_character_selected": "Персонаж не выбран.",
		"image_displayed":       "Изображение показано.",
		"resolution":            "Разрешение: %s.",

		// Общее
		"saved":   "Сохранено: %s.",
		"error":   "Ошибка: %s.",
		"goodbye": "До скорых встреч!",
	},
}

// T returns the translation for the given locale and key.
// Unknown locales fall back to English; unknown keys fall back to the key itself.
func T(loc Locale, key string) string {
	strings, ok := translations[loc]
	if !ok {
		strings = translations[EN]
	}
	if s, ok := strings[key]; ok {
		return s
	}
	if s, ok := translations[EN][key]; ok {
		return s
	}
	return key
}

// F returns the translation formatted with the given arguments.
func F(loc Locale, key string, args ...any) string {
	return fmt.Sprintf(T(loc, key), args...)
}

// AvailableLocales returns the list of supported locales.
func AvailableLocales() []Locale {
	return []Locale{RU, EN}
}
