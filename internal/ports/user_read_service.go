package ports

import (
	"context"

	"github.com/Gunvolt24/warpy_users/internal/domain"
)

// UserReadService — сервис чтения пользователей.
type UserReadService interface {
	GetUser(ctx context.Context, id string) (*domain.UserRecord, error)
	ListRecent(ctx context.Context, limit, offset int) ([]*domain.UserRecord, error)
}
