//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/Gunvolt24/warpy_users/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// MakeRequest — валидный запрос на создание пользователя с уникальными username/email.
func MakeRequest(opts ...func(*domain.UserCreationRequest)) domain.UserCreationRequest {
	sfx := UniqSuffix()
	r := domain.UserCreationRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Username:  "ada-" + sfx,
		Password:  "x",
		Avatar:    "a.png",
		Email:     "ada-" + sfx + "@example.com",
	}
	for _, fn := range opts {
		fn(&r)
	}
	return r
}

// MakeRecord — готовая к вставке запись (пароль уже «захеширован»).
func MakeRecord() domain.UserRecord {
	r := MakeRequest()
	return domain.UserRecord{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Username:  r.Username,
		Password:  "$2a$04$" + randHex(16),
		Avatar:    r.Avatar,
		Email:     r.Email,
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
}

// RequestJSON — тело сообщения для очереди.
func RequestJSON(r domain.UserCreationRequest) []byte {
	raw, _ := json.Marshal(r)
	return raw
}
