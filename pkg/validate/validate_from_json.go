package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Gunvolt24/person_sync/internal/domain"
	"github.com/Gunvolt24/person_sync/internal/ports"
)

// ValidatePersonFromJSON — валидация персоны из JSON (каноническая плоская форма).
// В отличие от консьюмера здесь декодирование строгое: файл с полями вне
// структуры — это ошибка данных, а не историческая форма сообщения.
func ValidatePersonFromJSON(ctx context.Context, validator ports.PersonValidator, raw []byte) (*domain.Person, error) {
	var person domain.Person
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&person); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	// гарантируем отсутствие полей вне структуры
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return nil, fmt.Errorf("invalid json: trailing data")
	}
	if err := validator.Validate(ctx, &person); err != nil {
		return nil, err
	}
	return &person, nil
}
