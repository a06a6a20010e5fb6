// Package notify предоставляет системные уведомления.
package notify

import (
	"github.com/gen2brain/beeep"
)

const appName = "Govorun"

// Notifier отправляет системные уведомления о побочных действиях.
type Notifier struct {
	enabled bool
}

// New создаёт новый Notifier.
func New(enabled bool) *Notifier {
	return &Notifier{enabled: enabled}
}

// SetEnabled включает/выключает уведомления.
func (n *Notifier) SetEnabled(enabled bool) {
	n.enabled = enabled
}

// Saved показывает уведомление о сохранённом файле.
func (n *Notifier) Saved(path string) {
	n.notify("Сохранено", path)
}

// Opened показывает уведомление об открытой ссылке или изображении.
func (n *Notifier) Opened(target string) {
	n.notify("Открыто", target)
}

// Error показывает уведомление об ошибке.
func (n *Notifier) Error(msg string) {
	if len(msg) > 100 {
		msg = msg[:100] + "..."
	}
	n.notify("Ошибка", msg)
}

func (n *Notifier) notify(title, message string) {
	if !n.enabled {
		return
	}
	// Игнорируем ошибки уведомлений - они не критичны
	_ = beeep.Notify(appName+": "+title, message, "")
}
