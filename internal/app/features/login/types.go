// internal/app/features/login/types.go
package login

import (
	"github.com/dalemusser/communityhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/communityhub/internal/app/system/normalize"
	"github.com/dalemusser/communityhub/internal/domain/models"
)

type registerInput struct {
	Email           string   `json:"email" validate:"required,email" label:"Email"`
	Password        string   `json:"password" validate:"required,min=8,max=128" label:"Password"`
	ConfirmPassword string   `json:"confirm_password" validate:"omitempty,eqfield=Password" label:"Password confirmation"`
	FullName        string   `json:"full_name" validate:"required,max=100" label:"Full name"`
	Avatar          string   `json:"avatar" validate:"max=500" label:"Avatar"`
	Bio             string   `json:"bio" validate:"max=1000" label:"Bio"`
	Location        string   `json:"location" validate:"max=100" label:"Location"`
	Interests       []string `json:"interests" validate:"max=20,dive,max=50" label:"Interests"`
}

func (in *registerInput) clean() {
	in.Email = normalize.Email(in.Email)
	in.FullName = normalize.Name(htmlsanitize.StripTags(in.FullName))
	in.Avatar = normalize.QueryParam(in.Avatar)
	in.Bio = htmlsanitize.StripTags(in.Bio)
	in.Location = normalize.Name(htmlsanitize.StripTags(in.Location))
	in.Interests = normalize.List(in.Interests)
}

type credentials struct {
	Email    string `json:"email" validate:"required" label:"Email"`
	Password string `json:"password" validate:"required" label:"Password"`
}

// tokenResponse is the body of a successful login.
type tokenResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        models.User `json:"user"`
}
