package password_test

import (
	"errors"
	"testing"

	"github.com/Gunvolt24/warpy_users/pkg/password"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCompare(t *testing.T) {
	t.Parallel()

	h := password.NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("s3cret")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if hash == "s3cret" {
		t.Fatal("hash must differ from the plain password")
	}
	if !h.Compare(hash, "s3cret") {
		t.Fatal("Compare: want true for the right password")
	}
	if h.Compare(hash, "wrong") {
		t.Fatal("Compare: want false for a wrong password")
	}
}

func TestBcryptHasher_EmptyPassword(t *testing.T) {
	t.Parallel()

	h := password.NewBcryptHasher(bcrypt.MinCost)
	if _, err := h.Hash(""); !errors.Is(err, password.ErrEmptyPassword) {
		t.Fatalf("want ErrEmptyPassword, got %v", err)
	}
}

func TestNewBcryptHasher_CostBounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cost int
		want int
	}{
		{"below_min", 1, bcrypt.DefaultCost},
		{"above_max", 99, bcrypt.DefaultCost},
		{"min", bcrypt.MinCost, bcrypt.MinCost},
		{"twelve", 12, 12},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := password.NewBcryptHasher(tt.cost).Cost(); got != tt.want {
				t.Fatalf("cost=%d: got %d, want %d", tt.cost, got, tt.want)
			}
		})
	}
}
