// internal/app/features/sponsors/types.go
package sponsors

import (
	"github.com/dalemusser/communityhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/communityhub/internal/app/system/normalize"
	"github.com/dalemusser/communityhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
)

type contactInput struct {
	Name     string `json:"name" validate:"required,max=100" label:"Contact name"`
	Email    string `json:"email" validate:"required,email" label:"Contact email"`
	Phone    string `json:"phone" validate:"max=30" label:"Contact phone"`
	Position string `json:"position" validate:"max=100" label:"Contact position"`
}

func (c contactInput) model() models.SponsorContact {
	return models.SponsorContact{
		Name:     normalize.Name(c.Name),
		Email:    normalize.Email(c.Email),
		Phone:    normalize.QueryParam(c.Phone),
		Position: normalize.Name(c.Position),
	}
}

type createInput struct {
	Name        string       `json:"name" validate:"required,max=200" label:"Name"`
	Description string       `json:"description" validate:"required,max=5000" label:"Description"`
	LogoURL     string       `json:"logo_url" validate:"required,httpurl" label:"Logo URL"`
	WebsiteURL  string       `json:"website_url" validate:"required,httpurl" label:"Website URL"`
	Tier        string       `json:"tier" validate:"required,oneof=platinum gold silver bronze" label:"Tier"`
	Contact     contactInput `json:"contact" validate:"required" label:"Contact"`
	Status      string       `json:"status" validate:"omitempty,oneof=active inactive" label:"Status"`
}

func (in *createInput) clean() {
	in.Name = htmlsanitize.StripTags(in.Name)
	in.Description = htmlsanitize.StripTags(in.Description)
	in.LogoURL = normalize.QueryParam(in.LogoURL)
	in.WebsiteURL = normalize.QueryParam(in.WebsiteURL)
	in.Tier = normalize.Role(in.Tier)
	in.Contact.Email = normalize.Email(in.Contact.Email)
	in.Status = normalize.QueryParam(in.Status)
}

// updateInput is a partial update; a present contact replaces the stored one.
type updateInput struct {
	Name        *string       `json:"name" validate:"omitempty,min=1,max=200" label:"Name"`
	Description *string       `json:"description" validate:"omitempty,min=1,max=5000" label:"Description"`
	LogoURL     *string       `json:"logo_url" validate:"omitempty,httpurl" label:"Logo URL"`
	WebsiteURL  *string       `json:"website_url" validate:"omitempty,httpurl" label:"Website URL"`
	Tier        *string       `json:"tier" validate:"omitempty,oneof=platinum gold silver bronze" label:"Tier"`
	Contact     *contactInput `json:"contact" label:"Contact"`
	Status      *string       `json:"status" validate:"omitempty,oneof=active inactive" label:"Status"`
}

func (in updateInput) set() bson.M {
	set := bson.M{}
	if in.Name != nil {
		set["name"] = htmlsanitize.StripTags(*in.Name)
	}
	if in.Description != nil {
		set["description"] = htmlsanitize.StripTags(*in.Description)
	}
	if in.LogoURL != nil {
		set["logo_url"] = normalize.QueryParam(*in.LogoURL)
	}
	if in.WebsiteURL != nil {
		set["website_url"] = normalize.QueryParam(*in.WebsiteURL)
	}
	if in.Tier != nil {
		set["tier"] = *in.Tier
	}
	if in.Contact != nil {
		set["contact"] = in.Contact.model()
	}
	if in.Status != nil {
		set["status"] = *in.Status
	}
	return set
}

type inquiryInput struct {
	CompanyName string `json:"company_name" validate:"required,max=200" label:"Company name"`
	ContactName string `json:"contact_name" validate:"required,max=100" label:"Contact name"`
	Email       string `json:"email" validate:"required,email" label:"Email"`
	Phone       string `json:"phone" validate:"required,max=30" label:"Phone"`
	Message     string `json:"message" validate:"required,max=5000" label:"Message"`
	DesiredTier string `json:"desired_tier" validate:"required,oneof=platinum gold silver bronze" label:"Desired tier"`
}

func (in *inquiryInput) clean() {
	in.CompanyName = htmlsanitize.StripTags(in.CompanyName)
	in.ContactName = normalize.Name(htmlsanitize.StripTags(in.ContactName))
	in.Email = normalize.Email(in.Email)
	in.Phone = normalize.QueryParam(in.Phone)
	in.Message = htmlsanitize.StripTags(in.Message)
	in.DesiredTier = normalize.Role(in.DesiredTier)
}
