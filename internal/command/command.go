// Package command выполняет разбор распознанных фраз и диспетчеризацию команд.
package command

// Канонические имена команд.
const (
	CmdLookup     = "lookup"
	CmdRandom     = "random"
	CmdSave       = "save"
	CmdMeaning    = "meaning"
	CmdExample    = "example"
	CmdLink       = "link"
	CmdShow       = "show"
	CmdResolution = "resolution"
	CmdOrigin     = "origin"
	CmdLocation   = "location"
	CmdEpisode    = "episode"
	CmdEpisodes   = "episodes"
	CmdExit       = "exit"
)

// AliasEntry связывает произносимую фразу с канонической командой.
type AliasEntry struct {
	Phrase         string `json:"phrase"`
	Locale         string `json:"locale"`
	Canonical      string `json:"canonical"`
	TakesParameter bool   `json:"takes_parameter"`
}

// Command - результат успешного разбора фразы.
type Command struct {
	Canonical string
	Parameter string
}

// SideEffect - дополнительное действие после произнесения сообщения.
type SideEffect int

const (
	EffectNone SideEffect = iota
	// EffectOpenLink - открыть ссылку в браузере.
	EffectOpenLink
	// EffectDisplayImage - показать сохранённое изображение.
	EffectDisplayImage
	// EffectSaveFile - подтвердить запись файла.
	EffectSaveFile
)

// Result - результат выполнения обработчика команды.
// Message всегда произносится; Payload уточняет побочное действие
// (URL для EffectOpenLink, путь к файлу для остальных).
type Result struct {
	OK      bool
	Message string
	Effect  SideEffect
	Payload string
}
