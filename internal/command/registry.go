package command

import (
	"context"
	"log"
	"sync"
)

// Handler выполняет одну каноническую команду.
// param - свободный текст после параметризованного триггера (иначе пустой).
type Handler func(ctx context.Context, param string) Result

// Registry сопоставляет канонические команды с обработчиками.
// Нераспознанные фразы сюда не попадают - их отсекает Router.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Handler
}

// NewRegistry создаёт пустой реестр обработчиков.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]Handler),
	}
}

// Register привязывает обработчик к канонической команде.
func (r *Registry) Register(canonical string, h Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[canonical] = h
}

// Dispatch выполняет обработчик команды.
// Команда без обработчика - ошибка конфигурации таблицы алиасов,
// не ошибка пользователя: логируем и возвращаем неуспех.
func (r *Registry) Dispatch(ctx context.Context, cmd Command) Result {
	r.mu.RLock()
	h, ok := r.handlers[cmd.Canonical]
	r.mu.RUnlock()

	if !ok {
		log.Printf("нет обработчика для команды %q", cmd.Canonical)
		return Result{OK: false, Message: cmd.Canonical}
	}

	return h(ctx, cmd.Parameter)
}
