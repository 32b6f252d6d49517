package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/academia/users-service/internal/core/domain"
)

const usersCollection = "users"

// UserRepository persists staff user records in a single collection. The
// flat document model keeps every write on one document, so each insert or
// update is atomic without a multi-table transaction.
type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

type userDoc struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty"`
	Name               string             `bson:"name"`
	FirstLastname      string             `bson:"first_lastname"`
	SecondLastname     string             `bson:"second_lastname,omitempty"`
	DateBirth          *time.Time         `bson:"date_birth,omitempty"`
	CI                 string             `bson:"ci"`
	Role               string             `bson:"role"`
	HireDate           *time.Time         `bson:"hire_date,omitempty"`
	MonthlySalary      *float64           `bson:"monthly_salary,omitempty"`
	Specialization     string             `bson:"specialization,omitempty"`
	Email              string             `bson:"email"`
	PasswordHash       string             `bson:"password_hash"`
	MustChangePassword bool               `bson:"must_change_password"`
	IsActive           bool               `bson:"is_active"`
	CreatedAt          time.Time          `bson:"created_at"`
	LastModification   time.Time          `bson:"last_modification"`
	Token              string             `bson:"jwt_token,omitempty"`
	TokenExpiresAt     *time.Time         `bson:"token_expires_at,omitempty"`
}

func (d *userDoc) toDomain() *domain.User {
	return &domain.User{
		ID:                 d.ID.Hex(),
		Name:               d.Name,
		FirstLastname:      d.FirstLastname,
		SecondLastname:     d.SecondLastname,
		DateBirth:          d.DateBirth,
		CI:                 d.CI,
		Role:               d.Role,
		HireDate:           d.HireDate,
		MonthlySalary:      d.MonthlySalary,
		Specialization:     d.Specialization,
		Email:              d.Email,
		PasswordHash:       d.PasswordHash,
		MustChangePassword: d.MustChangePassword,
		IsActive:           d.IsActive,
		CreatedAt:          d.CreatedAt,
		LastModification:   d.LastModification,
		Token:              d.Token,
		TokenExpiresAt:     d.TokenExpiresAt,
	}
}

func fromDomain(u *domain.User) *userDoc {
	return &userDoc{
		Name:               u.Name,
		FirstLastname:      u.FirstLastname,
		SecondLastname:     u.SecondLastname,
		DateBirth:          u.DateBirth,
		CI:                 u.CI,
		Role:               u.Role,
		HireDate:           u.HireDate,
		MonthlySalary:      u.MonthlySalary,
		Specialization:     u.Specialization,
		Email:              u.Email,
		PasswordHash:       u.PasswordHash,
		MustChangePassword: u.MustChangePassword,
		IsActive:           u.IsActive,
		CreatedAt:          u.CreatedAt,
		LastModification:   u.LastModification,
		Token:              u.Token,
		TokenExpiresAt:     u.TokenExpiresAt,
	}
}

// FindAllActive returns every record that has not been soft-deleted.
func (r *UserRepository) FindAllActive(ctx context.Context) ([]domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"is_active": true})
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []domain.User
	for cursor.Next(ctx) {
		var doc userDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode user: %w", err)
		}
		users = append(users, *doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc userDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return doc.toDomain(), nil
}

// FindByEmail resolves only active records; deactivated users cannot log in.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc userDoc
	if err := r.coll.FindOne(ctx, bson.M{"email": email, "is_active": true}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) Insert(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	user.CreatedAt = now
	user.LastModification = now

	res, err := r.coll.InsertOne(ctx, fromDomain(user))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	created := *user
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

// Update rewrites the profile fields of an existing record. Credential,
// forced-change flag, and session fields are owned by their dedicated writes.
func (r *UserRepository) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":              user.Name,
		"first_lastname":    user.FirstLastname,
		"second_lastname":   user.SecondLastname,
		"date_birth":        user.DateBirth,
		"ci":                user.CI,
		"role":              user.Role,
		"hire_date":         user.HireDate,
		"monthly_salary":    user.MonthlySalary,
		"specialization":    user.Specialization,
		"email":             user.Email,
		"last_modification": time.Now().UTC(),
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrUserNotFound
	}

	return r.FindByID(ctx, user.ID)
}

func (r *UserRepository) SoftDelete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"is_active":         false,
		"last_modification": time.Now().UTC(),
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("deactivate user: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"password_hash":        passwordHash,
		"must_change_password": false,
		"last_modification":    time.Now().UTC(),
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) UpdateToken(ctx context.Context, id, token string, expiresAt time.Time) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"jwt_token":        token,
		"token_expires_at": expiresAt,
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("update token: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// EnsureIndexes creates the unique indexes backing email and CI uniqueness.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "ci", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "is_active", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
