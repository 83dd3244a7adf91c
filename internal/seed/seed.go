package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/yigit/learnsphere/internal/app/models"
	appRepos "github.com/yigit/learnsphere/internal/app/repositories"
	"github.com/yigit/learnsphere/internal/pkg/apperrors"
)

// CreateDemoData seeds a small demo catalog so a fresh install has something
// to browse. Every step is idempotent, so re-running on an already seeded
// database is a no-op.
func CreateDemoData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	repos := appRepos.NewRepositories(dbPool)

	lgr.Info().Msg("Checking/Creating demo catalog data...")
	var finalErr error

	// --- Categories --- //
	categoryIDs := make(map[string]int64)
	for _, name := range []string{"Programming", "Design", "Business"} {
		category, err := repos.CategoryRepository.GetOrCreate(ctx, name)
		if err != nil {
			lgr.Error().Err(err).Str("category", name).Msg("Error creating demo category")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		categoryIDs[name] = category.ID
	}

	// --- Courses --- //
	courses := []struct {
		name          string
		instructor    string
		durationHours int
		categories    []string
	}{
		{"Java Fundamentals", "Alice Johnson", 24, []string{"Programming"}},
		{"Creative Marketing", "Bob Lee", 18, []string{"Business", "Design"}},
	}
	for _, c := range courses {
		existing, err := repos.CourseRepository.SearchByName(ctx, c.name)
		if err != nil {
			lgr.Error().Err(err).Str("course", c.name).Msg("Error checking demo course")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if len(existing) > 0 {
			continue
		}

		course := &appModels.Course{
			Name:          c.name,
			Instructor:    c.instructor,
			DurationHours: c.durationHours,
		}
		if err := repos.CourseRepository.Create(ctx, course); err != nil {
			lgr.Error().Err(err).Str("course", c.name).Msg("Error creating demo course")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		for _, categoryName := range c.categories {
			categoryID, ok := categoryIDs[categoryName]
			if !ok {
				continue
			}
			if err := repos.CourseRepository.AddCategory(ctx, course.ID, categoryID); err != nil {
				lgr.Error().Err(err).Str("course", c.name).Str("category", categoryName).Msg("Error linking demo course category")
				finalErr = errors.Join(finalErr, err)
			}
		}
		lgr.Info().Str("course", c.name).Int64("id", course.ID).Msg("Demo course created")
	}

	// --- Demo user --- //
	const demoEmail = "test@learnsphere.io"
	exists, err := repos.UserRepository.EmailExists(ctx, demoEmail)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking demo user")
		finalErr = errors.Join(finalErr, err)
	} else if !exists {
		user := &appModels.User{Name: "Test User", Email: demoEmail}
		if err := repos.UserRepository.Create(ctx, user); err != nil && !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			lgr.Error().Err(err).Msg("Error creating demo user")
			finalErr = errors.Join(finalErr, err)
		} else if err == nil {
			lgr.Info().Int64("userID", user.ID).Msg("Demo user created")
		}
	}

	lgr.Info().Msg("Demo data check/creation finished.")
	return finalErr
}
