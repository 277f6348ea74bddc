package ports

import (
	"context"

	"github.com/Gunvolt24/warpy_users/internal/domain"
)

// UserValidator — проверка декодированного запроса на создание пользователя;
// ошибка должна оборачивать validate.ErrInvalidUser, чтобы доставка не возвращалась в очередь.
type UserValidator interface {
	Validate(ctx context.Context, req *domain.UserCreationRequest) error
}
