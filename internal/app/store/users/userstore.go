package userstore

import (
	"context"
	"errors"

	"github.com/dalemusser/communityhub/internal/app/store/docstore"
	"github.com/dalemusser/communityhub/internal/app/system/normalize"
	"github.com/dalemusser/communityhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const Collection = "users"

type Store struct {
	docs *docstore.Collection[models.User]
}

func New(db *mongo.Database) *Store {
	return &Store{docs: docstore.New[models.User](db, Collection)}
}

// GetByID loads a user by ObjectID. Returns models.ErrNotFound if missing.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return s.docs.FindByID(ctx, id)
}

// GetByEmail looks up a user by case-insensitive email.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.docs.FindOne(ctx, bson.M{"email": normalize.Email(email)})
}

// Create inserts u after normalizing email and name. Role defaults to user.
// A taken email yields models.ErrDuplicateEmail.
func (s *Store) Create(ctx context.Context, u models.User) (models.User, error) {
	u.ID = primitive.NilObjectID
	u.Email = normalize.Email(u.Email)
	u.FullName = normalize.Name(u.FullName)
	u.FullNameCI = text.Fold(u.FullName)
	u.Interests = normalize.List(u.Interests)
	if u.Role == "" {
		u.Role = models.RoleUser
	}
	if !models.ValidRole(u.Role) {
		return models.User{}, errBadRole
	}

	if err := s.docs.Insert(ctx, &u); err != nil {
		if errors.Is(err, docstore.ErrDuplicate) {
			return models.User{}, models.ErrDuplicateEmail
		}
		return models.User{}, err
	}
	return u, nil
}

var errBadRole = errors.New(`role must be "admin"|"editor"|"user"`)

// List returns users newest first.
func (s *Store) List(ctx context.Context, skip, limit int64) ([]models.User, error) {
	return s.docs.Find(ctx, nil, docstore.ListOptions{
		Skip:  skip,
		Limit: limit,
		Sort:  bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}},
	})
}

// ProfileUpdate carries the user-editable fields. Nil means unchanged.
type ProfileUpdate struct {
	FullName  *string
	Avatar    *string
	Bio       *string
	Location  *string
	Interests []string // nil = unchanged
	IsActive  *bool
	Role      *string
}

// Fields lists the names of the fields set on p, for audit details.
func (p ProfileUpdate) Fields() []string {
	var out []string
	if p.FullName != nil {
		out = append(out, "full_name")
	}
	if p.Avatar != nil {
		out = append(out, "avatar")
	}
	if p.Bio != nil {
		out = append(out, "bio")
	}
	if p.Location != nil {
		out = append(out, "location")
	}
	if p.Interests != nil {
		out = append(out, "interests")
	}
	if p.IsActive != nil {
		out = append(out, "is_active")
	}
	if p.Role != nil {
		out = append(out, "role")
	}
	return out
}

// Update applies the non-nil fields of upd and returns the stored user.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, upd ProfileUpdate) (*models.User, error) {
	set := bson.M{}
	if upd.FullName != nil {
		name := normalize.Name(*upd.FullName)
		set["full_name"] = name
		set["full_name_ci"] = text.Fold(name)
	}
	if upd.Avatar != nil {
		set["avatar"] = *upd.Avatar
	}
	if upd.Bio != nil {
		set["bio"] = *upd.Bio
	}
	if upd.Location != nil {
		set["location"] = *upd.Location
	}
	if upd.Interests != nil {
		set["interests"] = normalize.List(upd.Interests)
	}
	if upd.IsActive != nil {
		set["is_active"] = *upd.IsActive
	}
	if upd.Role != nil {
		role := normalize.Role(*upd.Role)
		if !models.ValidRole(role) {
			return nil, errBadRole
		}
		set["role"] = role
	}
	return s.docs.Update(ctx, bson.M{"_id": id}, set)
}

// SetRole changes a user's role and returns the updated user.
func (s *Store) SetRole(ctx context.Context, id primitive.ObjectID, role string) (*models.User, error) {
	role = normalize.Role(role)
	if !models.ValidRole(role) {
		return nil, errBadRole
	}
	return s.docs.Update(ctx, bson.M{"_id": id}, bson.M{"role": role})
}

// Delete removes the user. Returns models.ErrNotFound if nothing was deleted.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	ok, err := s.docs.Delete(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if !ok {
		return models.ErrNotFound
	}
	return nil
}

// Count returns the number of users.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.docs.Count(ctx, nil)
}

// EnsureAdmin makes sure an active admin+superuser account exists for email.
// An existing account is promoted and reactivated; its password is left
// alone. created reports whether a new account was inserted.
func (s *Store) EnsureAdmin(ctx context.Context, email, fullName, hashedPassword string) (u *models.User, created bool, err error) {
	existing, err := s.GetByEmail(ctx, email)
	switch {
	case err == nil:
		u, err = s.docs.Update(ctx, bson.M{"_id": existing.ID}, bson.M{
			"role":         models.RoleAdmin,
			"is_superuser": true,
			"is_active":    true,
		})
		return u, false, err
	case !errors.Is(err, models.ErrNotFound):
		return nil, false, err
	}

	nu, err := s.Create(ctx, models.User{
		Email:          email,
		FullName:       fullName,
		Role:           models.RoleAdmin,
		IsActive:       true,
		IsSuperuser:    true,
		HashedPassword: hashedPassword,
	})
	if err != nil {
		return nil, false, err
	}
	return &nu, true, nil
}
