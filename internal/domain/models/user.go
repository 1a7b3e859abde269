// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles. Role decides permission scope for every other resource.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleUser   = "user"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r string) bool {
	switch r {
	case RoleAdmin, RoleEditor, RoleUser:
		return true
	}
	return false
}

// User is a platform account. Email is unique across users (unique index
// uniq_users_email). HashedPassword is never serialized to JSON.
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email          string             `bson:"email" json:"email"`
	FullName       string             `bson:"full_name" json:"full_name"`
	FullNameCI     string             `bson:"full_name_ci" json:"-"` // folded for sorting/search
	Role           string             `bson:"role" json:"role"`
	IsActive       bool               `bson:"is_active" json:"is_active"`
	IsSuperuser    bool               `bson:"is_superuser" json:"is_superuser"`
	HashedPassword string             `bson:"hashed_password" json:"-"`

	Avatar    string   `bson:"avatar,omitempty" json:"avatar,omitempty"`
	Bio       string   `bson:"bio,omitempty" json:"bio,omitempty"`
	Location  string   `bson:"location,omitempty" json:"location,omitempty"`
	Interests []string `bson:"interests" json:"interests"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

func (u *User) PrepareInsert(now time.Time) {
	stamp(&u.ID, &u.CreatedAt, &u.UpdatedAt, now)
	if u.Interests == nil {
		u.Interests = []string{}
	}
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool { return u != nil && u.Role == RoleAdmin }
