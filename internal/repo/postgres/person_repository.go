package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Gunvolt24/person_sync/internal/domain"
	"github.com/Gunvolt24/person_sync/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что PersonRepository удовлетворяет интерфейсу PersonRepository.
var _ ports.PersonRepository = (*PersonRepository)(nil)

// PersonRepository — реализация репозитория персон на Postgres (pgxpool).
type PersonRepository struct {
	pool      *pgxpool.Pool
	validator ports.PersonValidator
}

// NewPersonRepository - конструктор PersonRepository.
func NewPersonRepository(pool *pgxpool.Pool, validator ports.PersonValidator) *PersonRepository {
	return &PersonRepository{pool: pool, validator: validator}
}

// Save — идемпотентный upsert персоны по id.
// Порядок:
//  1. проверка обязательных полей — до обращения к БД (validate.ErrInvalidPerson);
//  2. отсутствующие метки времени -> время обработки (UTC);
//  3. один атомарный INSERT ... ON CONFLICT: при конфликте обновляются
//     name/email/updated_at, created_at первой вставки не трогаем.
//
// Отдельного чтения перед записью нет — именно это даёт идемпотентность и
// безопасность при конкурентных доставках одного id (last-writer-wins).
func (r *PersonRepository) Save(ctx context.Context, person *domain.Person) error {
	if err := r.validator.Validate(ctx, person); err != nil {
		return err
	}

	now := time.Now().UTC()
	createdAt := person.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}
	updatedAt := person.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = now
	}

	if _, err := r.pool.Exec(ctx, `
		INSERT INTO persons (id, name, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			updated_at = EXCLUDED.updated_at
	`, person.ID, person.Name, person.Email, createdAt, updatedAt); err != nil {
		return fmt.Errorf("upsert person: %w", err)
	}
	return nil
}

// GetByID — получить персону по id. Если не нашли, возвращает (nil, nil).
func (r *PersonRepository) GetByID(ctx context.Context, id string) (*domain.Person, error) {
	var person domain.Person

	err := r.pool.QueryRow(ctx, `
		SELECT id, name, email, created_at, updated_at
		FROM persons WHERE id = $1
	`, id).Scan(&person.ID, &person.Name, &person.Email, &person.CreatedAt, &person.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select person: %w", err)
	}
	return &person, nil
}

// List — постраничный список персон (свежие сверху).
func (r *PersonRepository) List(ctx context.Context, limit, offset int) ([]*domain.Person, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, name, email, created_at, updated_at
		FROM persons
		ORDER BY updated_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("select persons: %w", err)
	}
	defer rows.Close()

	persons := make([]*domain.Person, 0, limit)
	for rows.Next() {
		person := &domain.Person{}
		if err := rows.Scan(&person.ID, &person.Name, &person.Email, &person.CreatedAt, &person.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan person: %w", err)
		}
		persons = append(persons, person)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("persons rows: %w", err)
	}
	return persons, nil
}

// LastN — последние N персон по updated_at (для прогрева кэша).
func (r *PersonRepository) LastN(ctx context.Context, n int) ([]*domain.Person, error) {
	if n <= 0 {
		return nil, nil
	}
	return r.List(ctx, n, 0)
}
