package main

import (
	"context"
	"os"

	"github.com/yigit/learnsphere/internal/bootstrap"
	"github.com/yigit/learnsphere/internal/console"
	"github.com/yigit/learnsphere/internal/pkg/logger"
)

func main() {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}

	database, err := bootstrap.SetupDatabase(cfg, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to setup database")
		os.Exit(1)
	}
	defer database.Close()

	deps, err := bootstrap.BuildDependencies(cfg, database, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to setup dependencies")
		os.Exit(1)
	}

	ui := console.New(os.Stdin, os.Stdout, console.Services{
		Categories:  deps.CategoryService,
		Courses:     deps.CourseService,
		Users:       deps.UserService,
		Enrollments: deps.EnrollmentService,
		Reviews:     deps.ReviewService,
	})

	if err := ui.Run(context.Background()); err != nil {
		lgr.Error().Err(err).Msg("Console session failed")
		os.Exit(1)
	}
}
