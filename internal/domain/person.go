package domain

import "time"

// Person — каноническая запись персоны после нормализации сообщения.
// Нулевое время в CreatedAt/UpdatedAt означает «не было в сообщении» —
// слой записи подставит время обработки.
type Person struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
