package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestT(t *testing.T) {
	assert.Equal(t, "Goodbye!", T(EN, "goodbye"))
	assert.Equal(t, "До скорых встреч!", T(RU, "goodbye"))
}

func TestTFallbacks(t *testing.T) {
	// Unknown locale falls back to English
	assert.Equal(t, "Goodbye!", T(Locale("de"), "goodbye"))
	// Unknown key falls back to the key itself
	assert.Equal(t, "no_such_key", T(EN, "no_such_key"))
}

func TestF(t *testing.T) {
	assert.Equal(t, "Word 'hello' found.", F(EN, "word_found", "hello"))
	assert.Equal(t, "Слово 'привет' найдено.", F(RU, "word_found", "привет"))
}

func TestEveryKeyPresentInBothLocales(t *testing.T) {
	for key := range translations[EN] {
		_, ok := translations[RU][key]
		assert.True(t, ok, "missing Russian translation for %q", key)
	}
	for key := range translations[RU] {
		_, ok := translations[EN][key]
		assert.True(t, ok, "missing English translation for %q", key)
	}
}
