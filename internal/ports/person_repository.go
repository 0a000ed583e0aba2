package ports

import (
	"context"

	"github.com/Gunvolt24/person_sync/internal/domain"
)

type PersonRepository interface {
	// Save — идемпотентный upsert по id. Перед обращением к БД проверяет
	// обязательные поля и возвращает validate.ErrInvalidPerson, если их нет.
	Save(ctx context.Context, person *domain.Person) error
	GetByID(ctx context.Context, id string) (*domain.Person, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Person, error)
	LastN(ctx context.Context, n int) ([]*domain.Person, error)
}
