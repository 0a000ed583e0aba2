package validate_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Gunvolt24/person_sync/internal/domain"
	"github.com/Gunvolt24/person_sync/pkg/validate"
)

func validPerson() *domain.Person {
	return &domain.Person{ID: "p-1", Name: "Alice", Email: "a@x.com"}
}

func TestValidate_OK(t *testing.T) {
	v := validate.NewPersonValidator()
	if err := v.Validate(context.Background(), validPerson()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_RequiredFields(t *testing.T) {
	v := validate.NewPersonValidator()

	cases := []struct {
		name   string
		mutate func(*domain.Person)
	}{
		{"empty id", func(p *domain.Person) { p.ID = "" }},
		{"empty name", func(p *domain.Person) { p.Name = "" }},
		{"empty email", func(p *domain.Person) { p.Email = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validPerson()
			tc.mutate(p)
			err := v.Validate(context.Background(), p)
			if !errors.Is(err, validate.ErrInvalidPerson) {
				t.Fatalf("want ErrInvalidPerson, got %v", err)
			}
		})
	}
}

func TestValidate_NilPerson(t *testing.T) {
	v := validate.NewPersonValidator()
	if err := v.Validate(context.Background(), nil); !errors.Is(err, validate.ErrInvalidPerson) {
		t.Fatalf("want ErrInvalidPerson, got %v", err)
	}
}

// Формат email не проверяется: запись с кривым адресом должна пройти.
func TestValidate_EmailFormatNotChecked(t *testing.T) {
	v := validate.NewPersonValidator()
	p := validPerson()
	p.Email = "not-an-email"
	if err := v.Validate(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
