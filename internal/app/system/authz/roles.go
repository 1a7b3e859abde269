// internal/app/system/authz/roles.go
package authz

import (
	"github.com/dalemusser/communityhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Rule decides one policy cell. u is never nil.
type Rule func(u *models.User, owner primitive.ObjectID) bool

// Authenticated allows any signed-in user.
func Authenticated(*models.User, primitive.ObjectID) bool { return true }

// Owner allows the user whose id equals owner.
func Owner(u *models.User, owner primitive.ObjectID) bool {
	return !owner.IsZero() && u.ID == owner
}

// Superuser allows accounts flagged is_superuser.
func Superuser(u *models.User, _ primitive.ObjectID) bool { return u.IsSuperuser }

// Roles allows any of the listed roles.
func Roles(roles ...string) Rule {
	set := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		set[r] = struct{}{}
	}
	return func(u *models.User, _ primitive.ObjectID) bool {
		_, ok := set[u.Role]
		return ok
	}
}

// Any allows when at least one rule allows.
func Any(rules ...Rule) Rule {
	return func(u *models.User, owner primitive.ObjectID) bool {
		for _, r := range rules {
			if r(u, owner) {
				return true
			}
		}
		return false
	}
}
