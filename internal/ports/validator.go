package ports

import (
	"context"

	"github.com/Gunvolt24/person_sync/internal/domain"
)

type PersonValidator interface {
	Validate(ctx context.Context, person *domain.Person) error
}
