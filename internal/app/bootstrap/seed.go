// internal/app/bootstrap/seed.go
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"time"

	articlestore "github.com/dalemusser/communityhub/internal/app/store/articles"
	eventstore "github.com/dalemusser/communityhub/internal/app/store/events"
	sponsorstore "github.com/dalemusser/communityhub/internal/app/store/sponsors"
	userstore "github.com/dalemusser/communityhub/internal/app/store/users"
	volunteerstore "github.com/dalemusser/communityhub/internal/app/store/volunteers"
	"github.com/dalemusser/communityhub/internal/app/system/auth"
	"github.com/dalemusser/communityhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const (
	demoUsers         = 5
	demoEvents        = 10
	demoArticles      = 10
	demoOpportunities = 5
)

// seedDemoData fills each empty collection with sample content owned by
// admin. Collections that already hold documents are left alone, so running
// it on every start is safe.
func seedDemoData(ctx context.Context, db *mongo.Database, admin models.User, bcryptCost int, logger *zap.Logger) error {
	now := time.Now().UTC()

	users := userstore.New(db)
	if n, err := users.Count(ctx); err != nil {
		return err
	} else if n <= 1 {
		for i := 1; i <= demoUsers; i++ {
			digest, err := auth.HashPassword(fmt.Sprintf("password%d", i), bcryptCost)
			if err != nil {
				return err
			}
			_, err = users.Create(ctx, models.User{
				Email:          fmt.Sprintf("user%d@example.com", i),
				FullName:       fmt.Sprintf("User %d", i),
				Role:           models.RoleUser,
				IsActive:       true,
				HashedPassword: digest,
			})
			if err != nil && !errors.Is(err, models.ErrDuplicateEmail) {
				return err
			}
		}
		logger.Info("seeded demo users", zap.Int("count", demoUsers))
	}

	events := eventstore.New(db)
	if n, err := events.Count(ctx); err != nil {
		return err
	} else if n == 0 {
		categories := []string{"Cultural", "Educational", "Social", "Professional"}
		for i := 0; i < demoEvents; i++ {
			_, err := events.Create(ctx, models.Event{
				Title:       fmt.Sprintf("Event %d", i+1),
				Description: fmt.Sprintf("Description for Event %d", i+1),
				Date:        now.AddDate(0, 0, i*7).Format("2006-01-02"),
				Time:        "18:00",
				Location:    "San Francisco, CA",
				Capacity:    50,
				Category:    categories[i%len(categories)],
				Status:      models.EventStatusUpcoming,
				Organizer:   models.Organizer{ID: admin.ID, Name: admin.FullName},
			})
			if err != nil {
				return err
			}
		}
		logger.Info("seeded demo events", zap.Int("count", demoEvents))
	}

	articles := articlestore.New(db)
	if n, err := articles.Count(ctx); err != nil {
		return err
	} else if n == 0 {
		tags := []string{"Culture", "Community", "Education", "Technology"}
		for i := 0; i < demoArticles; i++ {
			_, err := articles.Create(ctx, models.Article{
				Title:       fmt.Sprintf("Article %d", i+1),
				Excerpt:     fmt.Sprintf("Excerpt for Article %d", i+1),
				Content:     fmt.Sprintf("Content for Article %d...", i+1),
				ImageURL:    fmt.Sprintf("https://picsum.photos/800/400?random=%d", i+1),
				Tags:        []string{tags[i%len(tags)]},
				Status:      models.ArticleStatusPublished,
				Author:      models.Author{ID: admin.ID, Name: admin.FullName, Avatar: admin.Avatar},
				PublishedAt: now.AddDate(0, 0, -i),
			})
			if err != nil {
				return err
			}
		}
		logger.Info("seeded demo articles", zap.Int("count", demoArticles))
	}

	opps := volunteerstore.New(db)
	if n, err := opps.Count(ctx); err != nil {
		return err
	} else if n == 0 {
		categories := []string{"Teaching", "Event Planning", "Technical", "Community Service"}
		for i := 0; i < demoOpportunities; i++ {
			_, err := opps.Create(ctx, models.Opportunity{
				Title:        fmt.Sprintf("Volunteer Opportunity %d", i+1),
				Description:  fmt.Sprintf("Description for Opportunity %d", i+1),
				Requirements: []string{"Requirement 1", "Requirement 2"},
				Location:     "San Francisco Bay Area",
				Commitment:   "5 hours per week",
				Category:     categories[i%len(categories)],
				Capacity:     10,
				Status:       models.OpportunityOpen,
				CreatedBy:    admin.ID,
			})
			if err != nil {
				return err
			}
		}
		logger.Info("seeded demo volunteer opportunities", zap.Int("count", demoOpportunities))
	}

	sponsors := sponsorstore.New(db)
	if n, err := sponsors.Count(ctx); err != nil {
		return err
	} else if n == 0 {
		tiers := []string{"platinum", "gold", "silver", "bronze"}
		for i, tier := range tiers {
			_, err := sponsors.Create(ctx, models.Sponsor{
				Name:        fmt.Sprintf("Sponsor %d", i+1),
				Description: fmt.Sprintf("Description for Sponsor %d", i+1),
				LogoURL:     fmt.Sprintf("https://picsum.photos/200/100?random=%d", i+1),
				WebsiteURL:  "https://example.com",
				Tier:        tier,
				Contact: models.SponsorContact{
					Name:  "Sponsor Contact",
					Email: "sponsor@example.com",
					Phone: "123-456-7890",
				},
				CreatedBy: admin.ID,
			})
			if err != nil {
				return err
			}
		}
		logger.Info("seeded demo sponsors", zap.Int("count", len(tiers)))
	}

	return nil
}
