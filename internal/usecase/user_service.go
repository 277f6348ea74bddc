package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Gunvolt24/warpy_users/internal/domain"
	"github.com/Gunvolt24/warpy_users/internal/ports"
	"github.com/Gunvolt24/warpy_users/pkg/validate"
)

// Проверка, что UserService удовлетворяет интерфейсу чтения для HTTP-слоя.
var _ ports.UserReadService = (*UserService)(nil)

// UserService — прикладная логика создания и чтения пользователей (без знаний о транспорте).
type UserService struct {
	repo      ports.UserRepository
	cache     ports.UserCache
	log       ports.Logger
	validator ports.UserValidator
	hasher    ports.PasswordHasher
}

// NewUserService — DI-конструктор.
func NewUserService(
	repo ports.UserRepository,
	cache ports.UserCache,
	log ports.Logger,
	validator ports.UserValidator,
	hasher ports.PasswordHasher,
) *UserService {
	return &UserService{
		repo:      repo,
		cache:     cache,
		log:       log,
		validator: validator,
		hasher:    hasher,
	}
}

// CreateFromMessage — создать пользователя из тела сообщения (raw JSON).
// Шаги:
//  1. декодирование JSON (неизвестные поля игнорируются, хвост после объекта запрещён);
//  2. проверка обязательных полей (validate.ErrInvalidUser при проблемах);
//  3. преобразование в UserRecord: bcrypt-хеш пароля, CreatedAt в UTC;
//  4. вставка в хранилище и запись в кэш.
//
// Ошибки хранилища возвращаются как есть (*mongostore.AddUserError), чтобы
// транспорт мог решить, повторять ли доставку.
func (s *UserService) CreateFromMessage(ctx context.Context, raw []byte) (string, error) {
	req, err := validate.ValidateUserFromJSON(ctx, s.validator, raw)
	if err != nil {
		s.log.Warnf(ctx, "invalid user request: %v", err)
		return "", err
	}

	rec, err := s.toRecord(req)
	if err != nil {
		s.log.Warnf(ctx, "transform failed username=%s err=%v", req.Username, err)
		return "", err
	}

	id, err := s.repo.AddUser(ctx, rec)
	if err != nil {
		s.log.Errorf(ctx, "repo.AddUser failed username=%s err=%v", rec.Username, err)
		return "", err
	}
	rec.ID = id

	if err := s.cache.Set(ctx, rec); err != nil {
		s.log.Warnf(ctx, "cache.Set failed id=%s err=%v", id, err)
	}

	s.log.Infof(ctx, "user created id=%s username=%s", id, rec.Username)
	return id, nil
}

// toRecord — запрос → сохраняемая запись. Пароль в открытом виде дальше не передаётся.
func (s *UserService) toRecord(req *domain.UserCreationRequest) (*domain.UserRecord, error) {
	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: password: %v", validate.ErrInvalidUser, err)
	}

	return &domain.UserRecord{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Password:  hash,
		Avatar:    req.Avatar,
		Email:     req.Email,
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}, nil
}

// GetUser — получить пользователя по id: сначала из кэша, при промахе — из хранилища с записью в кэш.
// Возвращает (nil, nil), если записи нет.
func (s *UserService) GetUser(ctx context.Context, id string) (*domain.UserRecord, error) {
	if user, found := s.cache.Get(ctx, id); found {
		s.log.Infof(ctx, "cache hit for user=%s", id)
		return user, nil
	}
	s.log.Infof(ctx, "cache miss for user=%s", id)

	start := time.Now()
	user, err := s.repo.GetUser(ctx, id)
	if err != nil {
		s.log.Errorf(ctx, "repo.GetUser failed id=%s err=%v", id, err)
		return nil, err
	}

	if user != nil {
		if setErr := s.cache.Set(ctx, user); setErr != nil {
			s.log.Warnf(ctx, "cache.Set failed id=%s err=%v", id, setErr)
		}
	}

	s.log.Infof(ctx, "store fetch id=%s took=%s", id, time.Since(start))
	return user, nil
}

// ListRecent — проксирование в хранилище (пагинация уже ограничена на верхнем уровне).
func (s *UserService) ListRecent(ctx context.Context, limit, offset int) ([]*domain.UserRecord, error) {
	return s.repo.ListRecent(ctx, limit, offset)
}

// WarmUpCache — прогрев кэша последними N пользователями из хранилища.
// Если n <= 0, прогрев не выполняется (но это не ошибка).
func (s *UserService) WarmUpCache(ctx context.Context, n int) error {
	if n <= 0 {
		s.log.Warnf(ctx, "cache warm-up skipped: n <= 0 (n=%d)", n)
		return nil
	}

	start := time.Now()
	list, err := s.repo.ListRecent(ctx, n, 0)
	if err != nil {
		s.log.Errorf(ctx, "repo.ListRecent failed n=%d err=%v", n, err)
		return err
	}
	for _, u := range list {
		if setErr := s.cache.Set(ctx, u); setErr != nil {
			s.log.Warnf(ctx, "cache.Set failed id=%s err=%v", u.ID, setErr)
		}
	}
	s.log.Infof(ctx, "cache warmed with %d users in %s", len(list), time.Since(start))
	return nil
}
