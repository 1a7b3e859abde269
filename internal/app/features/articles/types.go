// internal/app/features/articles/types.go
package articles

import (
	"unicode/utf8"

	"github.com/dalemusser/communityhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/communityhub/internal/app/system/normalize"
	"go.mongodb.org/mongo-driver/bson"
)

// excerptLen is the rune length of an excerpt derived from the content.
const excerptLen = 200

type createInput struct {
	Title    string   `json:"title" validate:"required,max=200" label:"Title"`
	Excerpt  string   `json:"excerpt" validate:"max=500" label:"Excerpt"`
	Content  string   `json:"content" validate:"required,max=100000" label:"Content"`
	ImageURL string   `json:"image_url" validate:"omitempty,httpurl" label:"Image URL"`
	Tags     []string `json:"tags" validate:"max=20,dive,max=50" label:"Tags"`
	Status   string   `json:"status" validate:"omitempty,oneof=draft published archived" label:"Status"`
}

func (in *createInput) clean() {
	in.Title = htmlsanitize.StripTags(in.Title)
	in.Content = htmlsanitize.Sanitize(in.Content)
	in.Excerpt = htmlsanitize.StripTags(in.Excerpt)
	if in.Excerpt == "" {
		in.Excerpt = excerptOf(in.Content)
	}
	in.ImageURL = normalize.QueryParam(in.ImageURL)
	in.Tags = normalize.List(in.Tags)
	in.Status = normalize.QueryParam(in.Status)
}

// excerptOf returns the leading text of sanitized HTML content.
func excerptOf(content string) string {
	text := normalize.Name(htmlsanitize.StripTags(content))
	if utf8.RuneCountInString(text) <= excerptLen {
		return text
	}
	runes := []rune(text)
	return string(runes[:excerptLen]) + "…"
}

// updateInput is a partial update; nil fields are left as stored.
type updateInput struct {
	Title    *string  `json:"title" validate:"omitempty,min=1,max=200" label:"Title"`
	Excerpt  *string  `json:"excerpt" validate:"omitempty,max=500" label:"Excerpt"`
	Content  *string  `json:"content" validate:"omitempty,min=1,max=100000" label:"Content"`
	ImageURL *string  `json:"image_url" validate:"omitempty,httpurl" label:"Image URL"`
	Tags     []string `json:"tags" validate:"omitempty,max=20,dive,max=50" label:"Tags"`
	Status   *string  `json:"status" validate:"omitempty,oneof=draft published archived" label:"Status"`
}

func (in updateInput) set() bson.M {
	set := bson.M{}
	if in.Title != nil {
		set["title"] = htmlsanitize.StripTags(*in.Title)
	}
	if in.Excerpt != nil {
		set["excerpt"] = htmlsanitize.StripTags(*in.Excerpt)
	}
	if in.Content != nil {
		set["content"] = htmlsanitize.Sanitize(*in.Content)
	}
	if in.ImageURL != nil {
		set["image_url"] = normalize.QueryParam(*in.ImageURL)
	}
	if in.Tags != nil {
		set["tags"] = normalize.List(in.Tags)
	}
	if in.Status != nil {
		set["status"] = normalize.QueryParam(*in.Status)
	}
	return set
}

type likeResponse struct {
	Message    string `json:"message"`
	Liked      bool   `json:"liked"`
	LikesCount int    `json:"likes_count"`
}
