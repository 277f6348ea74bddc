package validate

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/Gunvolt24/warpy_users/internal/domain"
	"github.com/Gunvolt24/warpy_users/internal/ports"
	"github.com/go-playground/validator/v10"
)

// Проверка, что UserValidator удовлетворяет интерфейсу UserValidator.
var _ ports.UserValidator = (*UserValidator)(nil)

// ErrInvalidUser — базовая (sentinel error) ошибка декодирования/валидации запроса.
// Это ошибка качества данных конкретного сообщения, а не фатальная ошибка процесса.
var ErrInvalidUser = errors.New("user validation failed")

// UserValidator — проверка обязательных полей запроса на создание пользователя.
// Правила описаны тегами `validate` в domain.UserCreationRequest.
type UserValidator struct {
	v *validator.Validate
}

// NewUserValidator — конструктор UserValidator.
// В сообщениях об ошибках используются имена полей из json-тегов (first_name, email, ...).
func NewUserValidator() *UserValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	return &UserValidator{v: v}
}

// Validate — возвращает ErrInvalidUser (с обёрнутой причиной) при любой проблеме.
func (uv *UserValidator) Validate(_ context.Context, req *domain.UserCreationRequest) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidUser)
	}

	err := uv.v.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidUser, err)
	}

	missing := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		missing = append(missing, fe.Field())
	}
	return fmt.Errorf("%w: required fields missing: %s", ErrInvalidUser, strings.Join(missing, ", "))
}
