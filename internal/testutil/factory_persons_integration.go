//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/Gunvolt24/person_sync/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// NewPerson — валидная персона с заданным id и уникальным email.
func NewPerson(id string, opts ...func(*domain.Person)) *domain.Person {
	now := time.Now().UTC().Truncate(time.Second)

	p := &domain.Person{
		ID:        id,
		Name:      "John Smith",
		Email:     "john-" + UniqSuffix() + "@example.com",
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, fn := range opts {
		fn(p)
	}
	return p
}

// MakePerson — персона с уникальным id.
func MakePerson(opts ...func(*domain.Person)) *domain.Person {
	return NewPerson("person-"+UniqSuffix(), opts...)
}

func WithName(name string) func(*domain.Person) {
	return func(p *domain.Person) { p.Name = name }
}

func WithEmail(email string) func(*domain.Person) {
	return func(p *domain.Person) { p.Email = email }
}

// WithoutTimestamps — сбрасывает метки времени (их должен подставить хранитель).
func WithoutTimestamps() func(*domain.Person) {
	return func(p *domain.Person) {
		p.CreatedAt = time.Time{}
		p.UpdatedAt = time.Time{}
	}
}
