package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Gunvolt24/warpy_users/internal/domain"
	"github.com/Gunvolt24/warpy_users/internal/ports"
)

// DecodeUserRequest — декодирование тела сообщения в UserCreationRequest.
// Неизвестные поля игнорируются, данные после JSON-объекта запрещены.
// Любая ошибка оборачивает ErrInvalidUser.
func DecodeUserRequest(raw []byte) (*domain.UserCreationRequest, error) {
	var req domain.UserCreationRequest
	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(&req); err != nil {
		return nil, fmt.Errorf("%w: invalid json: %v", ErrInvalidUser, err)
	}
	// гарантируем отсутствие данных после объекта
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return nil, fmt.Errorf("%w: invalid json: trailing data", ErrInvalidUser)
	}
	return &req, nil
}

// ValidateUserFromJSON — декодирование и валидация запроса из JSON.
func ValidateUserFromJSON(ctx context.Context, validator ports.UserValidator, raw []byte) (*domain.UserCreationRequest, error) {
	req, err := DecodeUserRequest(raw)
	if err != nil {
		return nil, err
	}
	if err := validator.Validate(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}
