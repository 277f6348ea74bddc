package ports

import (
	"context"

	"github.com/Gunvolt24/warpy_users/internal/domain"
)

// UserCache — интерфейс кэша пользователей.
// Требования к реализации: потокобезопасность; доступ по ключу не хуже O(1); возврат копий сущности.
type UserCache interface {
	// Get — вернуть пользователя по ID; (user, true) при попадании, (nil, false) при промахе/истечении.
	Get(ctx context.Context, id string) (*domain.UserRecord, bool)

	// Set — сохранить/обновить пользователя в кэше.
	Set(ctx context.Context, user *domain.UserRecord) error
}
