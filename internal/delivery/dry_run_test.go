package delivery

import (
	"context"
	"testing"

	"github.com/Gunvolt24/warpy_users/pkg/validate"
)

func TestDryRun_ValidAndInvalid(t *testing.T) {
	h := NewDryRun(validate.NewUserValidator(), nopLogger{}, Options{Queue: queue})
	ack := &ackRecorder{}

	valid := `{"first_name":"Ada","last_name":"Lovelace","username":"ada","password":"x","avatar":"a.png","email":"ada@example.com"}`
	h.HandleDelivery(context.Background(), newDelivery(ack, 1, valid))
	h.HandleDelivery(context.Background(), newDelivery(ack, 2, `{"first_name":"Ada"}`))
	h.HandleDelivery(context.Background(), newDelivery(ack, 3, `not json`))

	if len(ack.acks) != 1 || ack.acks[0] != 1 {
		t.Fatalf("want ack of tag 1 only, got %v", ack.acks)
	}
	want := []nackCall{{tag: 2}, {tag: 3}}
	if len(ack.nacks) != len(want) || ack.nacks[0] != want[0] || ack.nacks[1] != want[1] {
		t.Fatalf("want nacks %v without requeue, got %v", want, ack.nacks)
	}
}
