// internal/app/features/events/types.go
package events

import (
	"github.com/dalemusser/communityhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/communityhub/internal/app/system/normalize"
	"go.mongodb.org/mongo-driver/bson"
)

type createInput struct {
	Title       string `json:"title" validate:"required,max=200" label:"Title"`
	Description string `json:"description" validate:"required,max=5000" label:"Description"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02" label:"Date"`
	Time        string `json:"time" validate:"required,max=20" label:"Time"`
	Location    string `json:"location" validate:"required,max=200" label:"Location"`
	Capacity    int    `json:"capacity" validate:"gte=0" label:"Capacity"`
	Category    string `json:"category" validate:"required,max=100" label:"Category"`
	Status      string `json:"status" validate:"omitempty,oneof=upcoming ongoing completed cancelled" label:"Status"`
}

func (in *createInput) clean() {
	in.Title = htmlsanitize.StripTags(in.Title)
	in.Description = htmlsanitize.StripTags(in.Description)
	in.Date = normalize.QueryParam(in.Date)
	in.Time = normalize.QueryParam(in.Time)
	in.Location = normalize.Name(in.Location)
	in.Category = normalize.Name(in.Category)
	in.Status = normalize.QueryParam(in.Status)
}

// updateInput is a partial update; nil fields are left as stored.
type updateInput struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=200" label:"Title"`
	Description *string `json:"description" validate:"omitempty,min=1,max=5000" label:"Description"`
	Date        *string `json:"date" validate:"omitempty,datetime=2006-01-02" label:"Date"`
	Time        *string `json:"time" validate:"omitempty,min=1,max=20" label:"Time"`
	Location    *string `json:"location" validate:"omitempty,min=1,max=200" label:"Location"`
	Capacity    *int    `json:"capacity" validate:"omitempty,gte=0" label:"Capacity"`
	Category    *string `json:"category" validate:"omitempty,min=1,max=100" label:"Category"`
	Status      *string `json:"status" validate:"omitempty,oneof=upcoming ongoing completed cancelled" label:"Status"`
}

func (in *updateInput) clean() {
	strip := func(p *string) {
		if p != nil {
			*p = htmlsanitize.StripTags(*p)
		}
	}
	trim := func(p *string) {
		if p != nil {
			*p = normalize.Name(*p)
		}
	}
	strip(in.Title)
	strip(in.Description)
	trim(in.Date)
	trim(in.Time)
	trim(in.Location)
	trim(in.Category)
	if in.Status != nil {
		*in.Status = normalize.QueryParam(*in.Status)
	}
}

func (in updateInput) set() bson.M {
	set := bson.M{}
	if in.Title != nil {
		set["title"] = *in.Title
	}
	if in.Description != nil {
		set["description"] = *in.Description
	}
	if in.Date != nil {
		set["date"] = *in.Date
	}
	if in.Time != nil {
		set["time"] = *in.Time
	}
	if in.Location != nil {
		set["location"] = *in.Location
	}
	if in.Capacity != nil {
		set["capacity"] = *in.Capacity
	}
	if in.Category != nil {
		set["category"] = *in.Category
	}
	if in.Status != nil {
		set["status"] = *in.Status
	}
	return set
}
