package domain

import "time"

// UserCreationRequest — полезная нагрузка сообщения из очереди user.request.
// Все поля обязательны, значений по умолчанию нет.
type UserCreationRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Username  string `json:"username" validate:"required"`
	Password  string `json:"password" validate:"required"`
	Avatar    string `json:"avatar" validate:"required"`
	Email     string `json:"email" validate:"required"`
}

// UserRecord — сохраняемая сущность пользователя.
// ID присваивается хранилищем при вставке; Password — bcrypt-хеш.
type UserRecord struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	Avatar    string    `json:"avatar"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
