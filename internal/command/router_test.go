package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouterRoute(t *testing.T) {
	router := NewRouter(DefaultAliases())

	tests := []struct {
		name      string
		utterance string
		locale    string
		wantOK    bool
		canonical string
		parameter string
	}{
		{
			name:      "parameterized english trigger",
			utterance: "find hello",
			locale:    "en",
			wantOK:    true,
			canonical: CmdLookup,
			parameter: "hello",
		},
		{
			name:      "parameterized russian trigger",
			utterance: "найти слово",
			locale:    "ru",
			wantOK:    true,
			canonical: CmdLookup,
			parameter: "слово",
		},
		{
			name:      "multiword parameter",
			utterance: "find ice cream",
			locale:    "en",
			wantOK:    true,
			canonical: CmdLookup,
			parameter: "ice cream",
		},
		{
			name:      "exact alias",
			utterance: "meaning",
			locale:    "en",
			wantOK:    true,
			canonical: CmdMeaning,
		},
		{
			name:      "cross-locale alias in english session",
			utterance: "сохранить",
			locale:    "en",
			wantOK:    true,
			canonical: CmdSave,
		},
		{
			name:      "case insensitive with padding",
			utterance: "  EXIT  ",
			locale:    "en",
			wantOK:    true,
			canonical: CmdExit,
		},
		{
			name:      "multiword alias",
			utterance: "список эпизодов",
			locale:    "ru",
			wantOK:    true,
			canonical: CmdEpisodes,
		},
		{
			name:      "trigger from another locale still matches",
			utterance: "найти hello",
			locale:    "en",
			wantOK:    true,
			canonical: CmdLookup,
			parameter: "hello",
		},
		{
			name:      "unknown phrase",
			utterance: "blah blah",
			locale:    "en",
			wantOK:    false,
		},
		{
			name:      "trigger word without delimiter is not a trigger",
			utterance: "findings",
			locale:    "en",
			wantOK:    false,
		},
		{
			name:      "bare trigger word without parameter",
			utterance: "find",
			locale:    "en",
			wantOK:    false,
		},
		{
			name:      "empty utterance",
			utterance: "",
			locale:    "en",
			wantOK:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, ok := router.Route(tt.utterance, tt.locale)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.canonical, cmd.Canonical)
				assert.Equal(t, tt.parameter, cmd.Parameter)
			} else {
				// Исходный текст сохраняется для сообщения пользователю
				assert.Equal(t, tt.utterance, cmd.Parameter)
			}
		})
	}
}

func TestRouterTriggerBeatsAlias(t *testing.T) {
	// Алиас, начинающийся со слова триггера, не должен
	// разбираться как параметризованная команда
	router := NewRouter([]AliasEntry{
		{Phrase: "find", Locale: "en", Canonical: CmdLookup, TakesParameter: true},
		{Phrase: "find everything", Locale: "en", Canonical: "special"},
	})

	cmd, ok := router.Route("find everything", "en")
	require.True(t, ok)
	assert.Equal(t, CmdLookup, cmd.Canonical)
	assert.Equal(t, "everything", cmd.Parameter)

	// А точный алиас без совпадения с префиксом триггера работает как раньше
	cmd, ok = router.Route("find", "en")
	require.False(t, ok)
	assert.Empty(t, cmd.Canonical)
}

func TestDefaultAliasesExitEveryLocale(t *testing.T) {
	locales := map[string]bool{}
	for _, e := range DefaultAliases() {
		if e.Canonical == CmdExit {
			locales[e.Locale] = true
		}
	}
	assert.True(t, locales["en"], "нет английского алиаса выхода")
	assert.True(t, locales["ru"], "нет русского алиаса выхода")
}

func TestRegistryDispatch(t *testing.T) {
	reg := NewRegistry()

	calls := 0
	reg.Register(CmdMeaning, func(_ context.Context, param string) Result {
		calls++
		return Result{OK: true, Message: "ok:" + param}
	})

	res := reg.Dispatch(context.Background(), Command{Canonical: CmdMeaning, Parameter: "x"})
	require.True(t, res.OK)
	assert.Equal(t, "ok:x", res.Message)
	assert.Equal(t, 1, calls)

	// Команда без обработчика - неуспех, не паника
	res = reg.Dispatch(context.Background(), Command{Canonical: "no-such"})
	assert.False(t, res.OK)
}
