package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/dsatracker/internal/cli"
	"github.com/alexanderramin/dsatracker/internal/config"
	"github.com/alexanderramin/dsatracker/internal/db"
	"github.com/alexanderramin/dsatracker/internal/repository"
	"github.com/alexanderramin/dsatracker/internal/service"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	app := &cli.App{
		Bootstrap: bootstrap,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}
	return cli.NewRootCmd(app).Execute()
}

// bootstrap loads configuration once flags are parsed and wires the
// services over a fresh in-memory store.
func bootstrap(cmd *cobra.Command, app *cli.App) error {
	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(config.Options{ConfigFile: configFile, Flags: cmd.Flags()})
	if err != nil {
		return err
	}
	logger := config.SetupLogger(os.Stderr, cfg.App.LogLevel, cfg.App.LogFormat)

	loc, err := cfg.Calendar.Location()
	if err != nil {
		return err
	}
	weekStart, err := cfg.Calendar.WeekStartDay()
	if err != nil {
		return err
	}
	now, err := cfg.Now()
	if err != nil {
		return err
	}

	// The store lives for the process; nothing is written to disk.
	database, err := db.OpenDB(db.MemoryPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	cobra.OnFinalize(func() { database.Close() })

	uow := db.NewSQLiteUnitOfWork(database)
	if cfg.Seed.Demo {
		if err := service.SeedDemo(context.Background(), uow, loc); err != nil {
			return fmt.Errorf("seeding demo data: %w", err)
		}
		logger.Debug("demo data loaded", "anchor", service.DemoToday.Key())
	}

	cal := service.Calendar{
		Now:       now,
		Location:  loc,
		WeekStart: weekStart,
		WalkLimit: cfg.Calendar.StreakWalkLimit,
	}
	observer := service.NewSlogUseCaseObserver(logger)
	questions := repository.NewSQLiteQuestionRepo(database, loc)
	activity := repository.NewSQLiteActivityRepo(database)

	app.Questions = service.NewQuestionService(questions, uow, cal, observer)
	app.Activity = service.NewActivityService(activity, observer)
	app.Dashboard = service.NewDashboardService(questions, activity, cal)
	app.Bank = service.NewQuestionBankService(questions, observer)
	app.Config = cfg
	app.Location = loc
	app.Logger = logger
	return nil
}
