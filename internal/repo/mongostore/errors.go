package mongostore

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/x/mongo/driver/topology"
)

// ErrAddUser — единый (sentinel) вид ошибки AddUser для вызывающих.
// errors.Is(err, ErrAddUser) истинно для любой ошибки, возвращённой AddUser.
var ErrAddUser = errors.New("add user failed")

// ErrInit — ошибка инициализации подключения к хранилищу (фатальна на старте).
var ErrInit = errors.New("document store init failed")

// ErrorKind — внутренняя классификация ошибки хранилища.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindDuplicateKey
	KindConnectionLost
	KindTimeout
	KindInvalidRecord
	KindCanceled
)

func (k ErrorKind) String() string {
	switch k {
	case KindDuplicateKey:
		return "duplicate_key"
	case KindConnectionLost:
		return "connection_lost"
	case KindTimeout:
		return "timeout"
	case KindInvalidRecord:
		return "invalid_record"
	case KindCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// Transient — true для видов, при которых повтор той же записи может пройти.
// KindCanceled — операция прервана остановкой процесса, запись не отвергнута хранилищем.
func (k ErrorKind) Transient() bool {
	return k == KindConnectionLost || k == KindTimeout || k == KindCanceled
}

// AddUserError — ошибка AddUser: вид + исходная причина.
type AddUserError struct {
	Kind ErrorKind
	Err  error
}

func (e *AddUserError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s (%s)", ErrAddUser, e.Kind)
	}
	return fmt.Sprintf("%s (%s): %v", ErrAddUser, e.Kind, e.Err)
}

func (e *AddUserError) Unwrap() error { return e.Err }

func (e *AddUserError) Is(target error) bool { return target == ErrAddUser }

// KindOf — вид ошибки AddUser; для прочих ошибок — KindUnknown.
func KindOf(err error) ErrorKind {
	var aue *AddUserError
	if errors.As(err, &aue) {
		return aue.Kind
	}
	return KindUnknown
}

// InitError — ошибка построения клиента хранилища; не смешивается с AddUserError.
type InitError struct {
	Op  string
	Err error
}

func (e *InitError) Error() string { return fmt.Sprintf("%s: %s: %v", ErrInit, e.Op, e.Err) }

func (e *InitError) Unwrap() error { return e.Err }

func (e *InitError) Is(target error) bool { return target == ErrInit }

// classify — сопоставление ошибки драйвера виду.
func classify(err error) ErrorKind {
	var sse topology.ServerSelectionError
	switch {
	case err == nil:
		return KindUnknown
	case mongo.IsDuplicateKeyError(err):
		return KindDuplicateKey
	case errors.Is(err, context.DeadlineExceeded), mongo.IsTimeout(err):
		return KindTimeout
	case errors.Is(err, context.Canceled):
		return KindCanceled
	case errors.Is(err, mongo.ErrClientDisconnected), mongo.IsNetworkError(err):
		return KindConnectionLost
	case errors.As(err, &sse):
		// драйвер не смог выбрать сервер — хранилище недоступно
		return KindConnectionLost
	default:
		return KindUnknown
	}
}

func newAddUserError(err error) *AddUserError {
	return &AddUserError{Kind: classify(err), Err: err}
}
