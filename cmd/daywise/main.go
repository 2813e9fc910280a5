package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/corvidae/daywise/internal/app"
	"github.com/corvidae/daywise/internal/cli"
	"github.com/corvidae/daywise/internal/config"
	"github.com/corvidae/daywise/internal/db"
	"github.com/corvidae/daywise/internal/llm"
	"github.com/corvidae/daywise/internal/obslog"
	"github.com/corvidae/daywise/internal/repository"
	"github.com/corvidae/daywise/internal/repository/sqlite"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("finding home directory: %w", err)
	}

	dbPath := os.Getenv("DAYWISE_DB")
	if dbPath == "" {
		dbPath = filepath.Join(home, ".daywise", "daywise.db")
	}

	profilePath := os.Getenv("DAYWISE_PROFILE")
	if profilePath == "" {
		profilePath = filepath.Join(home, ".daywise", "daywise.yaml")
	}

	logPath := os.Getenv("DAYWISE_LOG")
	if logPath == "" {
		logPath = filepath.Join(home, ".daywise", "daywise.log")
	}
	if err := obslog.Init(obslog.Config{FilePath: logPath, Debug: os.Getenv("DAYWISE_DEBUG") != ""}); err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}

	conn, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer conn.Close()

	profile, err := config.LoadProfile(profilePath)
	if err != nil {
		return fmt.Errorf("loading scheduler profile: %w", err)
	}

	// Wire repositories
	itemRepo := sqlite.NewItemRepo(conn)
	goalRepo := sqlite.NewGoalRepo(conn)
	occupationRepo := sqlite.NewOccupationRepo(conn)
	depRepo := sqlite.NewDependencyRepo(conn)
	blockRepo := sqlite.NewPlacedBlockRepo(conn)

	uow := db.NewSQLiteUnitOfWork(conn)
	observer := obslog.LogUseCaseObserver{}

	newStore := func(tx db.DBTX) (repository.GoalRepo, repository.ItemRepo, repository.OccupationRepo, repository.DependencyRepo) {
		return sqlite.NewGoalRepo(tx), sqlite.NewItemRepo(tx), sqlite.NewOccupationRepo(tx), sqlite.NewDependencyRepo(tx)
	}

	a := &cli.App{
		Schedule:    app.NewScheduleService(itemRepo, occupationRepo, depRepo, blockRepo, profile.SchedulerConfig(), observer, time.Now),
		Items:       app.NewItemService(itemRepo, depRepo, observer),
		Occupations: app.NewOccupationService(occupationRepo),
		Goals:       app.NewGoalService(goalRepo),
		Import:      app.NewImportService(goalRepo, itemRepo, occupationRepo, depRepo, uow, newStore),
	}

	llmCfg := llm.LoadConfig()
	if profile.LLMEnabled {
		llmCfg.Enabled = true
	}
	if llmCfg.Enabled {
		var llmObserver llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			llmObserver = llm.NewLogObserver(os.Stderr)
		}
		llmClient := llm.NewOllamaClient(llmCfg, llmObserver)
		a.Draft = app.NewDraftGoalService(llmClient)
	}

	rootCmd := cli.NewRootCmd(a)
	return rootCmd.Execute()
}
