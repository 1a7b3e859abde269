// internal/app/features/volunteers/types.go
package volunteers

import (
	"github.com/dalemusser/communityhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/communityhub/internal/app/system/normalize"
	"go.mongodb.org/mongo-driver/bson"
)

type createInput struct {
	Title        string   `json:"title" validate:"required,max=200" label:"Title"`
	Description  string   `json:"description" validate:"required,max=5000" label:"Description"`
	Requirements []string `json:"requirements" validate:"max=50,dive,max=300" label:"Requirements"`
	Category     string   `json:"category" validate:"required,max=100" label:"Category"`
	Location     string   `json:"location" validate:"required,max=200" label:"Location"`
	Commitment   string   `json:"commitment" validate:"required,max=200" label:"Commitment"`
	Capacity     int      `json:"capacity" validate:"gte=1" label:"Capacity"`
	Status       string   `json:"status" validate:"omitempty,oneof=open closed" label:"Status"`
}

func (in *createInput) clean() {
	in.Title = htmlsanitize.StripTags(in.Title)
	in.Description = htmlsanitize.StripTags(in.Description)
	in.Requirements = normalize.List(in.Requirements)
	in.Category = normalize.Name(in.Category)
	in.Location = normalize.Name(in.Location)
	in.Commitment = normalize.Name(in.Commitment)
	in.Status = normalize.QueryParam(in.Status)
}

// updateInput is a partial update; nil fields are left as stored.
type updateInput struct {
	Title        *string  `json:"title" validate:"omitempty,min=1,max=200" label:"Title"`
	Description  *string  `json:"description" validate:"omitempty,min=1,max=5000" label:"Description"`
	Requirements []string `json:"requirements" validate:"omitempty,max=50,dive,max=300" label:"Requirements"`
	Category     *string  `json:"category" validate:"omitempty,min=1,max=100" label:"Category"`
	Location     *string  `json:"location" validate:"omitempty,min=1,max=200" label:"Location"`
	Commitment   *string  `json:"commitment" validate:"omitempty,min=1,max=200" label:"Commitment"`
	Capacity     *int     `json:"capacity" validate:"omitempty,gte=1" label:"Capacity"`
	Status       *string  `json:"status" validate:"omitempty,oneof=open closed" label:"Status"`
}

func (in updateInput) set() bson.M {
	set := bson.M{}
	if in.Title != nil {
		set["title"] = htmlsanitize.StripTags(*in.Title)
	}
	if in.Description != nil {
		set["description"] = htmlsanitize.StripTags(*in.Description)
	}
	if in.Requirements != nil {
		set["requirements"] = normalize.List(in.Requirements)
	}
	if in.Category != nil {
		set["category"] = normalize.Name(*in.Category)
	}
	if in.Location != nil {
		set["location"] = normalize.Name(*in.Location)
	}
	if in.Commitment != nil {
		set["commitment"] = normalize.Name(*in.Commitment)
	}
	if in.Capacity != nil {
		set["capacity"] = *in.Capacity
	}
	if in.Status != nil {
		set["status"] = normalize.QueryParam(*in.Status)
	}
	return set
}

// applyInput is the optional body of POST /volunteers/{id}/apply.
type applyInput struct {
	Message      string              `json:"message" validate:"max=5000" label:"Message"`
	Availability string              `json:"availability" validate:"max=500" label:"Availability"`
	ResumeURL    string              `json:"resume_url" validate:"omitempty,httpurl" label:"Resume URL"`
	PortfolioURL string              `json:"portfolio_url" validate:"omitempty,httpurl" label:"Portfolio URL"`
	References   []map[string]string `json:"references" validate:"max=10" label:"References"`
}

func (in *applyInput) clean() {
	in.Message = htmlsanitize.StripTags(in.Message)
	in.Availability = htmlsanitize.StripTags(in.Availability)
	in.ResumeURL = normalize.QueryParam(in.ResumeURL)
	in.PortfolioURL = normalize.QueryParam(in.PortfolioURL)
}
