package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Gunvolt24/person_sync/internal/domain"
	"github.com/Gunvolt24/person_sync/internal/ports"
	"github.com/Gunvolt24/person_sync/pkg/normalize"
)

// PersonService — прикладная логика синхронизации персон (без знаний о транспорте).
type PersonService struct {
	repo  ports.PersonRepository // прямой доступ к хранилищу
	cache ports.PersonCache      // прямой доступ к кэшу
	log   ports.Logger           // прямой доступ к логгеру
}

// NewPersonService — DI-конструктор.
func NewPersonService(
	repo ports.PersonRepository,
	cache ports.PersonCache,
	log ports.Logger,
) *PersonService {
	return &PersonService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// GetPerson — получить персону по id: сначала из кэша, при промахе — из БД с записью в кэш.
// Возвращает (*Person, nil) или (nil, nil), если записи нет.
func (s *PersonService) GetPerson(ctx context.Context, id string) (*domain.Person, error) {
	if person, found := s.cache.Get(ctx, id); found {
		s.log.Infof(ctx, "cache hit for person=%s", id)
		return person, nil
	}
	s.log.Infof(ctx, "cache miss for person=%s", id)

	start := time.Now()
	person, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.log.Errorf(ctx, "repo.GetByID failed id=%s err=%v", id, err)
		return nil, err
	}

	if person != nil {
		// Кэшируем результат
		if setErr := s.cache.Set(ctx, person); setErr != nil {
			s.log.Warnf(ctx, "cache.Set failed id=%s err=%v", id, setErr)
		}
	}

	s.log.Infof(ctx, "db fetch id=%s took=%s", id, time.Since(start))
	return person, nil
}

// ListPersons — проксирование в репозиторий (пагинация уже валидирована на верхнем уровне).
func (s *PersonService) ListPersons(ctx context.Context, limit, offset int) ([]*domain.Person, error) {
	return s.repo.List(ctx, limit, offset)
}

// SaveFromMessage — сохранить персону, пришедшую из брокера (raw JSON).
// Шаги:
//  1. нормализация: обёрнутая и плоская формы события приводятся к domain.Person
//     (вернёт normalize.ErrBadMessage на мусоре);
//  2. идемпотентный upsert в БД; обязательные поля проверяются на этом шаге
//     (validate.ErrInvalidPerson при проблемах);
//  3. положить запись в кэш.
func (s *PersonService) SaveFromMessage(ctx context.Context, raw []byte) error {
	person, err := normalize.Person(raw)
	if err != nil {
		s.log.Warnf(ctx, "normalize failed err=%v", err)
		return fmt.Errorf("normalize message: %w", err)
	}

	if err := s.repo.Save(ctx, person); err != nil {
		s.log.Errorf(ctx, "repo.Save failed id=%s err=%v", person.ID, err)
		return fmt.Errorf("save person: %w", err)
	}

	// Обновление кэша; БД уже обновлена, промах не страшен.
	if err := s.cache.Set(ctx, person); err != nil {
		s.log.Warnf(ctx, "cache.Set failed id=%s err=%v", person.ID, err)
	}

	s.log.Infof(ctx, "person saved id=%s email=%s", person.ID, person.Email)
	return nil
}

// WarmUpCache — прогрев кэша последними N персонами из БД.
// Если n <= 0, прогрев не выполняется (но это не ошибка).
func (s *PersonService) WarmUpCache(ctx context.Context, n int) error {
	if n <= 0 {
		s.log.Warnf(ctx, "cache warm-up skipped: n <= 0 (n=%d)", n)
		return nil
	}

	start := time.Now()
	list, err := s.repo.LastN(ctx, n)
	if err != nil {
		s.log.Errorf(ctx, "repo.LastN failed n=%d err=%v", n, err)
		return err
	}
	if warmUpErr := s.cache.WarmUp(ctx, list); warmUpErr != nil {
		s.log.Warnf(ctx, "cache.WarmUp failed err=%v", warmUpErr)
	}
	s.log.Infof(ctx, "cache warmed with %d persons in %s", len(list), time.Since(start))
	return nil
}
