package validate

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/person_sync/internal/domain"
	"github.com/Gunvolt24/person_sync/internal/ports"
)

// Проверка, что PersonValidator удовлетворяет интерфейсу PersonValidator.
var _ ports.PersonValidator = (*PersonValidator)(nil)

// ErrInvalidPerson — базовая (sentinel error) ошибка валидации.
var ErrInvalidPerson = errors.New("person validation failed")

// PersonValidator — структура для валидации персоны.
// Правило приёма: id, name и email присутствуют и непусты.
// Формат email сознательно не проверяется — запись с кривым адресом
// всё равно должна синхронизироваться в таблицу.
type PersonValidator struct{}

// NewPersonValidator — конструктор PersonValidator.
func NewPersonValidator() *PersonValidator { return &PersonValidator{} }

// Validate — проверяет обязательные поля персоны.
// Возвращает ErrInvalidPerson (с обёрнутой причиной) при любой проблеме.
func (v *PersonValidator) Validate(_ context.Context, person *domain.Person) error {
	if person == nil {
		return fmt.Errorf("%w: персона не может быть nil", ErrInvalidPerson)
	}
	if person.ID == "" {
		return fmt.Errorf("%w: id обязателен", ErrInvalidPerson)
	}
	if person.Name == "" {
		return fmt.Errorf("%w: name обязателен", ErrInvalidPerson)
	}
	if person.Email == "" {
		return fmt.Errorf("%w: email обязателен", ErrInvalidPerson)
	}
	return nil
}
