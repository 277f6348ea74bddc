package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Gunvolt24/warpy_users/internal/domain"
	"github.com/Gunvolt24/warpy_users/internal/ports"
	"github.com/Gunvolt24/warpy_users/pkg/metrics"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Проверка, что UserRepository удовлетворяет интерфейсу UserRepository.
var _ ports.UserRepository = (*UserRepository)(nil)

const defaultOpTimeout = 5 * time.Second

// userDocument — форма документа в коллекции users: поля UserRecord + _id от хранилища.
type userDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	FirstName string             `bson:"first_name"`
	LastName  string             `bson:"last_name"`
	Username  string             `bson:"username"`
	Password  string             `bson:"password"`
	Avatar    string             `bson:"avatar"`
	Email     string             `bson:"email"`
	CreatedAt time.Time          `bson:"created_at"`
}

// UserRepository — шлюз сохранения пользователей на MongoDB.
// Хэндл коллекции неизменяем после создания и безопасен для конкурентного использования.
type UserRepository struct {
	coll      *mongo.Collection
	opTimeout time.Duration
}

// NewUserRepository — конструктор. opTimeout ограничивает каждую операцию,
// чтобы недоступное хранилище давало ошибку, а не бесконечное ожидание.
func NewUserRepository(coll *mongo.Collection, opTimeout time.Duration) *UserRepository {
	if opTimeout <= 0 {
		opTimeout = defaultOpTimeout
	}
	return &UserRepository{coll: coll, opTimeout: opTimeout}
}

// EnsureIndexes — уникальные индексы по username и email (источник DuplicateKey).
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_username")},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_email")},
	})
	if err != nil {
		return fmt.Errorf("create indexes: %w", err)
	}
	return nil
}

// AddUser — вставляет запись и возвращает присвоенный хранилищем идентификатор (hex ObjectID).
// Любая ошибка — *AddUserError.
func (r *UserRepository) AddUser(ctx context.Context, user *domain.UserRecord) (string, error) {
	if err := checkComplete(user); err != nil {
		metrics.AddUserErrors.WithLabelValues(KindInvalidRecord.String()).Inc()
		return "", &AddUserError{Kind: KindInvalidRecord, Err: err}
	}

	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	start := time.Now()
	res, err := r.coll.InsertOne(ctx, toDocument(user))
	metrics.AddUserDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		aue := newAddUserError(err)
		metrics.AddUserErrors.WithLabelValues(aue.Kind.String()).Inc()
		return "", aue
	}

	metrics.UsersPersisted.Inc()
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprint(res.InsertedID), nil
}

// GetUser — поиск по идентификатору; (nil, nil), если записи нет или id не является ObjectID.
func (r *UserRepository) GetUser(ctx context.Context, id string) (*domain.UserRecord, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	var doc userDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user id=%s: %w", id, err)
	}
	return fromDocument(&doc), nil
}

// ListRecent — последние пользователи по убыванию created_at, с пагинацией.
func (r *UserRepository) ListRecent(ctx context.Context, limit, offset int) ([]*domain.UserRecord, error) {
	if limit <= 0 {
		return []*domain.UserRecord{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(int64(limit)).
		SetSkip(int64(offset))

	cur, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find recent users: %w", err)
	}
	defer cur.Close(ctx)

	var docs []userDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode recent users: %w", err)
	}

	out := make([]*domain.UserRecord, 0, len(docs))
	for i := range docs {
		out = append(out, fromDocument(&docs[i]))
	}
	return out, nil
}

// checkComplete — запись должна содержать все обязательные поля (без подстановки значений по умолчанию).
func checkComplete(user *domain.UserRecord) error {
	if user == nil {
		return errors.New("user record is nil")
	}
	switch {
	case user.FirstName == "":
		return errors.New("first_name is required")
	case user.LastName == "":
		return errors.New("last_name is required")
	case user.Username == "":
		return errors.New("username is required")
	case user.Password == "":
		return errors.New("password is required")
	case user.Avatar == "":
		return errors.New("avatar is required")
	case user.Email == "":
		return errors.New("email is required")
	}
	return nil
}

func toDocument(user *domain.UserRecord) *userDocument {
	return &userDocument{
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Username:  user.Username,
		Password:  user.Password,
		Avatar:    user.Avatar,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

func fromDocument(doc *userDocument) *domain.UserRecord {
	return &domain.UserRecord{
		ID:        doc.ID.Hex(),
		FirstName: doc.FirstName,
		LastName:  doc.LastName,
		Username:  doc.Username,
		Password:  doc.Password,
		Avatar:    doc.Avatar,
		Email:     doc.Email,
		CreatedAt: doc.CreatedAt,
	}
}
