package delivery_test

import (
	"context"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Gunvolt24/warpy_users/internal/delivery"
	"github.com/Gunvolt24/warpy_users/internal/domain"
	"github.com/Gunvolt24/warpy_users/internal/ports/mocks"
	"github.com/Gunvolt24/warpy_users/internal/usecase"
	"github.com/Gunvolt24/warpy_users/pkg/validate"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

type acks struct {
	mu      sync.Mutex
	acked   int
	dropped int
}

func (a *acks) Ack(uint64, bool) error { a.mu.Lock(); a.acked++; a.mu.Unlock(); return nil }
func (a *acks) Nack(_ uint64, _ bool, requeue bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !requeue {
		a.dropped++
	}
	return nil
}
func (a *acks) Reject(tag uint64, requeue bool) error { return a.Nack(tag, false, requeue) }

func newHandler(t *testing.T) (*delivery.Persisting, *mocks.MockUserRepository, *mocks.MockUserCache, *mocks.MockPasswordHasher) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepository(ctrl)
	cache := mocks.NewMockUserCache(ctrl)
	hasher := mocks.NewMockPasswordHasher(ctrl)

	svc := usecase.NewUserService(repo, cache, noopLogger{}, validate.NewUserValidator(), hasher)
	return delivery.NewPersisting(svc, noopLogger{}, delivery.Options{Queue: "user.request"}), repo, cache, hasher
}

// Доставка Ada Lovelace → ровно один AddUser с шестью полями запроса
func TestPipeline_AdaLovelace_ExactlyOneAddUser(t *testing.T) {
	h, repo, cache, hasher := newHandler(t)
	a := &acks{}

	hasher.EXPECT().Hash("x").Return("$2a$10$ada", nil)
	repo.EXPECT().AddUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec *domain.UserRecord) (string, error) {
			if rec.FirstName != "Ada" || rec.LastName != "Lovelace" || rec.Username != "ada" ||
				rec.Avatar != "a.png" || rec.Email != "ada@example.com" {
				t.Errorf("unexpected record fields: %+v", rec)
			}
			if rec.Password != "$2a$10$ada" {
				t.Errorf("password must be hashed, got %q", rec.Password)
			}
			return "65a1b2c3d4e5f60718293a4b", nil
		}).Times(1)
	cache.EXPECT().Set(gomock.Any(), gomock.Any()).Return(nil)

	body := `{"first_name":"Ada","last_name":"Lovelace","username":"ada","password":"x","avatar":"a.png","email":"ada@example.com"}`
	h.HandleDelivery(context.Background(), amqp.Delivery{Acknowledger: a, DeliveryTag: 1, Body: []byte(body)})

	if a.acked != 1 || a.dropped != 0 {
		t.Fatalf("want one ack, got acked=%d dropped=%d", a.acked, a.dropped)
	}
}

// Невалидные тела не доходят до хранилища, а следующая валидная доставка обрабатывается
func TestPipeline_InvalidBodies_NeverReachStore(t *testing.T) {
	h, repo, cache, hasher := newHandler(t)
	a := &acks{}

	hasher.EXPECT().Hash(gomock.Any()).Return("h", nil).Times(1)
	repo.EXPECT().AddUser(gomock.Any(), gomock.Any()).Return("id", nil).Times(1)
	cache.EXPECT().Set(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	bodies := []string{
		`garbage`,
		`{"first_name":"Ada"}`,
		`{"first_name":"Ada","last_name":"Lovelace","username":"ada","password":"x","avatar":"a.png","email":"ada@example.com"}`,
	}
	for i, b := range bodies {
		h.HandleDelivery(context.Background(), amqp.Delivery{Acknowledger: a, DeliveryTag: uint64(i + 1), Body: []byte(b)})
	}

	if a.acked != 1 || a.dropped != 2 {
		t.Fatalf("want acked=1 dropped=2, got acked=%d dropped=%d", a.acked, a.dropped)
	}
}
