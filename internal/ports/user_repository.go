package ports

import (
	"context"

	"github.com/Gunvolt24/warpy_users/internal/domain"
)

// UserRepository — шлюз сохранения пользователей.
// AddUser возвращает присвоенный хранилищем идентификатор.
// GetUser возвращает (nil, nil), если записи нет.
type UserRepository interface {
	AddUser(ctx context.Context, user *domain.UserRecord) (string, error)
	GetUser(ctx context.Context, id string) (*domain.UserRecord, error)
	// ListRecent — последние созданные пользователи (по убыванию created_at).
	ListRecent(ctx context.Context, limit, offset int) ([]*domain.UserRecord, error)
}
