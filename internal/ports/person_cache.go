package ports

import (
	"context"

	"github.com/Gunvolt24/person_sync/internal/domain"
)

// PersonCache — интерфейс кэша персон.
// Требования к реализации: потокобезопасность; доступ по ключу не хуже O(1); возврат копий сущности.
type PersonCache interface {
	// Get — вернуть персону по id; (person, true) при попадании, (nil, false) при промахе/истечении.
	Get(ctx context.Context, id string) (*domain.Person, bool)

	// Set — сохранить/обновить персону в кэше.
	Set(ctx context.Context, person *domain.Person) error

	// WarmUp — массовая загрузка кэша (например, при старте).
	// Реализация должна поддерживать отмену контекста.
	WarmUp(ctx context.Context, persons []*domain.Person) error
}
