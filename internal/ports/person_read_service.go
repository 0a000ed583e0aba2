package ports

import (
	"context"

	"github.com/Gunvolt24/person_sync/internal/domain"
)

// PersonReadService — сервис чтения персон для HTTP-слоя.
type PersonReadService interface {
	GetPerson(ctx context.Context, id string) (*domain.Person, error)
	ListPersons(ctx context.Context, limit, offset int) ([]*domain.Person, error)
}
