// internal/app/features/users/types.go
package users

import (
	userstore "github.com/dalemusser/communityhub/internal/app/store/users"
	"github.com/dalemusser/communityhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/communityhub/internal/app/system/normalize"
)

type updateInput struct {
	FullName  *string  `json:"full_name" validate:"omitempty,min=1,max=100" label:"Full name"`
	Avatar    *string  `json:"avatar" validate:"omitempty,max=500" label:"Avatar"`
	Bio       *string  `json:"bio" validate:"omitempty,max=1000" label:"Bio"`
	Location  *string  `json:"location" validate:"omitempty,max=100" label:"Location"`
	Interests []string `json:"interests" validate:"omitempty,max=20,dive,max=50" label:"Interests"`
	IsActive  *bool    `json:"is_active" label:"Active"`
	Role      *string  `json:"role" validate:"omitempty,oneof=admin editor user" label:"Role"`
}

// profileUpdate converts the request into a store update, sanitizing text.
func (in updateInput) profileUpdate() userstore.ProfileUpdate {
	upd := userstore.ProfileUpdate{
		Interests: in.Interests,
		IsActive:  in.IsActive,
	}
	if in.FullName != nil {
		s := normalize.Name(htmlsanitize.StripTags(*in.FullName))
		upd.FullName = &s
	}
	if in.Avatar != nil {
		s := normalize.QueryParam(*in.Avatar)
		upd.Avatar = &s
	}
	if in.Bio != nil {
		s := htmlsanitize.StripTags(*in.Bio)
		upd.Bio = &s
	}
	if in.Location != nil {
		s := normalize.Name(htmlsanitize.StripTags(*in.Location))
		upd.Location = &s
	}
	if in.Role != nil {
		s := normalize.Role(*in.Role)
		upd.Role = &s
	}
	return upd
}

// adminOnly reports whether the update touches fields only an admin may set.
func (in updateInput) adminOnly() bool {
	return in.Role != nil || in.IsActive != nil
}

type roleInput struct {
	Role string `json:"role" validate:"required,oneof=admin editor user" label:"Role"`
}
