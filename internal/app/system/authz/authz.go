// internal/app/system/authz/authz.go
package authz

import (
	"errors"
	"net/http"

	"github.com/dalemusser/communityhub/internal/app/system/auth"
	"github.com/dalemusser/communityhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrForbidden is returned when the policy denies an action.
var ErrForbidden = errors.New("not enough permissions")

type Resource string

const (
	Events     Resource = "events"
	Articles   Resource = "articles"
	Volunteers Resource = "volunteers"
	Sponsors   Resource = "sponsors"
	Users      Resource = "users"
)

type Action string

const (
	Create     Action = "create"
	Update     Action = "update"
	Delete     Action = "delete"
	List       Action = "list"
	View       Action = "view"
	ChangeRole Action = "change_role"
	Register   Action = "register"
	Like       Action = "like"
	Apply      Action = "apply"
	Inquire    Action = "inquire"
)

// policy is the whole permission model. owner is the id the rule compares
// the caller against: the content's creator, or the target user for Users.
// Public reads are not listed; they never reach Authorize.
var policy = map[Resource]map[Action]Rule{
	Events: {
		Create:   Roles(models.RoleAdmin, models.RoleEditor),
		Update:   Any(Roles(models.RoleAdmin, models.RoleEditor), Owner),
		Delete:   Any(Roles(models.RoleAdmin, models.RoleEditor), Owner),
		Register: Authenticated,
	},
	Articles: {
		Create: Roles(models.RoleAdmin, models.RoleEditor),
		Update: Any(Roles(models.RoleAdmin, models.RoleEditor), Owner),
		Delete: Any(Roles(models.RoleAdmin, models.RoleEditor), Owner),
		Like:   Authenticated,
	},
	Volunteers: {
		Create: Roles(models.RoleAdmin, models.RoleEditor),
		Update: Any(Roles(models.RoleAdmin, models.RoleEditor), Owner),
		Delete: Any(Roles(models.RoleAdmin, models.RoleEditor), Owner),
		Apply:  Authenticated,
	},
	Sponsors: {
		Create:  Roles(models.RoleAdmin),
		Update:  Roles(models.RoleAdmin),
		Delete:  Roles(models.RoleAdmin),
		Inquire: Authenticated,
	},
	Users: {
		List:       Roles(models.RoleAdmin),
		View:       Any(Roles(models.RoleAdmin), Owner),
		Update:     Any(Roles(models.RoleAdmin), Owner),
		Delete:     Roles(models.RoleAdmin),
		ChangeRole: Any(Roles(models.RoleAdmin), Superuser),
	},
}

// Allowed reports whether u may perform act on res. Pairs missing from the
// policy are denied, as is a nil user.
func Allowed(u *models.User, res Resource, act Action, owner primitive.ObjectID) bool {
	if u == nil {
		return false
	}
	rule, ok := policy[res][act]
	if !ok {
		return false
	}
	return rule(u, owner)
}

// Authorize is Allowed as an error: nil or ErrForbidden.
func Authorize(u *models.User, res Resource, act Action, owner primitive.ObjectID) error {
	if !Allowed(u, res, act, owner) {
		return ErrForbidden
	}
	return nil
}

// AuthorizeRequest applies Authorize to the request's authenticated user.
func AuthorizeRequest(r *http.Request, res Resource, act Action, owner primitive.ObjectID) error {
	u, _ := auth.CurrentUser(r)
	return Authorize(u, res, act, owner)
}
