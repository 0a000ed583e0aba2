package normalize

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Gunvolt24/person_sync/internal/domain"
)

// ErrBadMessage — базовая (sentinel error) ошибка разбора сообщения.
// Консьюмер по ней отличает «мусор в очереди» от ошибок БД.
var ErrBadMessage = errors.New("person message parse failed")

// envelope — верхний уровень сообщения. Историческая «обёрнутая» форма
// несёт сущность в eventData и может дублировать метки времени сверху.
type envelope struct {
	EventData json.RawMessage `json:"eventData"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// record — поля сущности; совпадает и с плоской формой, и с содержимым eventData.
type record struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Person — нормализация сырого сообщения в каноническую запись.
// Порядок: сначала пробуем обёрнутую форму (eventData-объект),
// иначе читаем весь объект как плоскую форму. Метки времени берём из
// сущности, при их отсутствии — с верхнего уровня; если нет нигде,
// остаётся нулевое время (его подставит слой записи).
// Обязательность id/name/email здесь НЕ проверяется — это зона
// ответственности writer'а, чтобы ошибки разбора и валидации различались.
func Person(raw []byte) (*domain.Person, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadMessage, err)
	}

	body := raw
	if isJSONObject(env.EventData) {
		body = env.EventData
	}

	var rec record
	if err := json.Unmarshal(body, &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadMessage, err)
	}

	person := &domain.Person{
		ID:        rec.ID,
		Name:      rec.Name,
		Email:     rec.Email,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
	if person.CreatedAt.IsZero() {
		person.CreatedAt = env.CreatedAt
	}
	if person.UpdatedAt.IsZero() {
		person.UpdatedAt = env.UpdatedAt
	}
	return person, nil
}

// isJSONObject — true, если raw — непустой JSON-объект.
// eventData со значением null/строкой/числом считается отсутствующим.
func isJSONObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}
