// internal/domain/models/article.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const ArticleStatusPublished = "published"

// Author is a snapshot of the writing user taken at creation time.
type Author struct {
	ID     primitive.ObjectID `bson:"id" json:"id"`
	Name   string             `bson:"name" json:"name"`
	Avatar string             `bson:"avatar" json:"avatar"`
}

// Article is a published post. LikesCount always equals len(LikedBy).
type Article struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title    string             `bson:"title" json:"title"`
	Excerpt  string             `bson:"excerpt" json:"excerpt"`
	Content  string             `bson:"content" json:"content"`
	ImageURL string             `bson:"image_url" json:"image_url"`
	Tags     []string           `bson:"tags" json:"tags"`
	Status   string             `bson:"status" json:"status"`

	Author      Author    `bson:"author" json:"author"`
	PublishedAt time.Time `bson:"published_at" json:"published_at"`

	LikesCount    int                  `bson:"likes_count" json:"likes_count"`
	ViewsCount    int                  `bson:"views_count" json:"views_count"`
	CommentsCount int                  `bson:"comments_count" json:"comments_count"`
	LikedBy       []primitive.ObjectID `bson:"liked_by" json:"liked_by"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

func (a *Article) PrepareInsert(now time.Time) {
	stamp(&a.ID, &a.CreatedAt, &a.UpdatedAt, now)
	if a.PublishedAt.IsZero() {
		a.PublishedAt = now
	}
	if a.Tags == nil {
		a.Tags = []string{}
	}
	if a.LikedBy == nil {
		a.LikedBy = []primitive.ObjectID{}
	}
	if a.Status == "" {
		a.Status = ArticleStatusPublished
	}
}

func (a *Article) OwnerID() primitive.ObjectID { return a.Author.ID }

// LikedByUser reports whether userID is in LikedBy.
func (a *Article) LikedByUser(userID primitive.ObjectID) bool {
	for _, id := range a.LikedBy {
		if id == userID {
			return true
		}
	}
	return false
}
