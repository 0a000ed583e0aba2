package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/Gunvolt24/person_sync/internal/domain"
	"github.com/Gunvolt24/person_sync/internal/ports/mocks"
	"github.com/Gunvolt24/person_sync/internal/usecase"
	"github.com/Gunvolt24/person_sync/pkg/normalize"
	"github.com/Gunvolt24/person_sync/pkg/validate"
)

const personID = "person-1"

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

func TestGetPerson_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockPersonRepository(ctrl)
	cache := mocks.NewMockPersonCache(ctrl)
	log := noopLogger{}

	p := &domain.Person{ID: personID}

	cache.EXPECT().Get(gomock.Any(), personID).Return(p, true)

	svc := usecase.NewPersonService(repo, cache, log)

	got, err := svc.GetPerson(context.Background(), personID)
	if err != nil || got == nil || got.ID != personID {
		t.Fatalf("expected hit, got err=%v, person=%+v", err, got)
	}
}

func TestGetPerson_CacheMiss_FetchAndCache(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockPersonRepository(ctrl)
	cache := mocks.NewMockPersonCache(ctrl)
	log := noopLogger{}

	p := &domain.Person{ID: personID}

	gomock.InOrder(
		cache.EXPECT().Get(gomock.Any(), personID).Return(nil, false),
		repo.EXPECT().GetByID(gomock.Any(), personID).Return(p, nil),
		cache.EXPECT().Set(gomock.Any(), p),
	)

	svc := usecase.NewPersonService(repo, cache, log)

	got, err := svc.GetPerson(context.Background(), personID)
	if err != nil || got == nil || got.ID != personID {
		t.Fatalf("expected miss, got err=%v, person=%+v", err, got)
	}
}

func TestGetPerson_CacheMiss_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockPersonRepository(ctrl)
	cache := mocks.NewMockPersonCache(ctrl)
	log := noopLogger{}

	cache.EXPECT().Get(gomock.Any(), personID).Return(nil, false)
	repoErr := errors.New("DB down")
	repo.EXPECT().GetByID(gomock.Any(), personID).Return(nil, repoErr)

	svc := usecase.NewPersonService(repo, cache, log)
	got, err := svc.GetPerson(context.Background(), personID)
	if err == nil || !errors.Is(err, repoErr) {
		t.Fatalf("expected repo error, got person=%v, err=%+v", got, err)
	}
}

func TestGetPerson_CacheMiss_NotFound_NoCache(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockPersonRepository(ctrl)
	cache := mocks.NewMockPersonCache(ctrl)
	log := noopLogger{}

	cache.EXPECT().Get(gomock.Any(), personID).Return(nil, false)
	repo.EXPECT().GetByID(gomock.Any(), personID).Return(nil, nil)
	cache.EXPECT().Set(gomock.Any(), gomock.Any()).Times(0)

	svc := usecase.NewPersonService(repo, cache, log)
	got, err := svc.GetPerson(context.Background(), personID)
	if err != nil || got != nil {
		t.Fatalf("expected not found, got person=%v, err=%+v", got, err)
	}
}

func TestGetPerson_CacheMiss_CacheSetWarnOnly(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockPersonRepository(ctrl)
	cache := mocks.NewMockPersonCache(ctrl)
	log := noopLogger{}

	p := &domain.Person{ID: personID}

	gomock.InOrder(
		cache.EXPECT().Get(gomock.Any(), personID).Return(nil, false),
		repo.EXPECT().GetByID(gomock.Any(), personID).Return(p, nil),
		cache.EXPECT().Set(gomock.Any(), p).Return(errors.New("cache set failed")),
	)

	svc := usecase.NewPersonService(repo, cache, log)
	got, err := svc.GetPerson(context.Background(), personID)
	if err != nil || got == nil || got.ID != personID {
		t.Fatalf("expected miss, got err=%v, person=%+v", err, got)
	}
}

func TestSaveFromMessage_BadMessage(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockPersonRepository(ctrl)
	cache := mocks.NewMockPersonCache(ctrl)
	log := noopLogger{}

	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)

	svc := usecase.NewPersonService(repo, cache, log)

	err := svc.SaveFromMessage(context.Background(), []byte("{"))
	if err == nil || !errors.Is(err, normalize.ErrBadMessage) {
		t.Fatalf("want wrapped ErrBadMessage, got err=%v", err)
	}
}

func TestSaveFromMessage_ValidationFailed(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockPersonRepository(ctrl)
	cache := mocks.NewMockPersonCache(ctrl)
	log := noopLogger{}

	// обязательные поля проверяет репозиторий перед upsert'ом
	repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(&domain.Person{})).Return(validate.ErrInvalidPerson)
	cache.EXPECT().Set(gomock.Any(), gomock.Any()).Times(0)

	svc := usecase.NewPersonService(repo, cache, log)

	raw := []byte(`{"id":"person-1","name":"","email":"a@b"}`)
	err := svc.SaveFromMessage(context.Background(), raw)
	if err == nil || !errors.Is(err, validate.ErrInvalidPerson) {
		t.Fatalf("want wrapped ErrInvalidPerson, got %v", err)
	}
}

func TestSaveFromMessage_Success(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockPersonRepository(ctrl)
	cache := mocks.NewMockPersonCache(ctrl)
	log := noopLogger{}

	gomock.InOrder(
		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(&domain.Person{})).Return(nil),
		cache.EXPECT().Set(gomock.Any(), gomock.AssignableToTypeOf(&domain.Person{})).Return(nil),
	)

	svc := usecase.NewPersonService(repo, cache, log)

	raw := []byte(`{"id":"person-1","name":"Alice","email":"alice@example.com"}`)
	if err := svc.SaveFromMessage(context.Background(), raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSaveFromMessage_WrappedShape(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockPersonRepository(ctrl)
	cache := mocks.NewMockPersonCache(ctrl)
	log := noopLogger{}

	var saved *domain.Person
	gomock.InOrder(
		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(&domain.Person{})).
			DoAndReturn(func(_ context.Context, p *domain.Person) error {
				saved = p
				return nil
			}),
		cache.EXPECT().Set(gomock.Any(), gomock.Any()).Return(nil),
	)

	svc := usecase.NewPersonService(repo, cache, log)

	raw := []byte(`{"eventData":{"id":"person-1","name":"Alice","email":"alice@example.com"}}`)
	if err := svc.SaveFromMessage(context.Background(), raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved == nil || saved.ID != personID || saved.Name != "Alice" {
		t.Fatalf("unexpected saved person: %+v", saved)
	}
}

func TestSaveFromMessage_RepoErr(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockPersonRepository(ctrl)
	cache := mocks.NewMockPersonCache(ctrl)
	log := noopLogger{}

	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))
	cache.EXPECT().Set(gomock.Any(), gomock.Any()).Times(0)

	svc := usecase.NewPersonService(repo, cache, log)

	raw := []byte(`{"id":"person-1","name":"Alice","email":"alice@example.com"}`)
	err := svc.SaveFromMessage(context.Background(), raw)
	if err == nil || !strings.Contains(err.Error(), "save person") {
		t.Fatalf("want wrapped save error, got %v", err)
	}
}

func TestWarmUpCache_SkipWhenLessThanZero(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockPersonRepository(ctrl)
	cache := mocks.NewMockPersonCache(ctrl)
	log := noopLogger{}

	svc := usecase.NewPersonService(repo, cache, log)
	if err := svc.WarmUpCache(context.Background(), 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestWarmUpCache_RepoErr(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockPersonRepository(ctrl)
	cache := mocks.NewMockPersonCache(ctrl)
	log := noopLogger{}

	repo.EXPECT().LastN(gomock.Any(), 3).Return(nil, errors.New("DB down"))
	cache.EXPECT().WarmUp(gomock.Any(), gomock.Any()).Times(0)

	svc := usecase.NewPersonService(repo, cache, log)
	if err := svc.WarmUpCache(context.Background(), 3); err == nil {
		t.Fatalf("want wrapped repo error, got %v", err)
	}
}

func TestWarmUpCache_WarnOnly(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockPersonRepository(ctrl)
	cache := mocks.NewMockPersonCache(ctrl)
	log := noopLogger{}

	list := []*domain.Person{{ID: personID}}
	gomock.InOrder(
		repo.EXPECT().LastN(gomock.Any(), 2).Return(list, nil),
		cache.EXPECT().WarmUp(gomock.Any(), list).Return(errors.New("cache warm up failed")),
	)

	svc := usecase.NewPersonService(repo, cache, log)
	if err := svc.WarmUpCache(context.Background(), 2); err != nil {
		t.Fatalf("warmup warning must not fail, got %v", err)
	}
}

func TestListPersons_Proxy(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockPersonRepository(ctrl)
	cache := mocks.NewMockPersonCache(ctrl)
	log := noopLogger{}

	want := []*domain.Person{{ID: "a"}, {ID: "b"}}
	repo.EXPECT().List(gomock.Any(), 10, 20).Return(want, nil)

	svc := usecase.NewPersonService(repo, cache, log)
	got, err := svc.ListPersons(context.Background(), 10, 20)
	if err != nil || len(got) != 2 || got[0].ID != "a" || got[1].ID != "b" {
		t.Fatalf("unexpected result: %+v, err=%v", got, err)
	}
}
