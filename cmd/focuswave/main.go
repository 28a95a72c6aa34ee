package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"focuswave/internal/cli"
	"focuswave/internal/coach"
	"focuswave/internal/config"
	"focuswave/internal/db"
	"focuswave/internal/domain"
	"focuswave/internal/gamification"
	"focuswave/internal/httpapi"
	"focuswave/internal/repository"
	"focuswave/internal/service"
	"focuswave/internal/timer"
)

// localUserID is the account the CLI commands operate as. The HTTP API
// serves registered multi-user accounts; the terminal is single-user.
const localUserID = "local"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := os.Getenv("FOCUSWAVE_CONFIG")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	dbPath := cfg.Database.Path
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".focuswave", "focuswave.db")
	}
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}
	}

	database, err := db.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	// Wire repositories
	taskRepo := repository.NewSQLiteTaskRepo(database)
	moodRepo := repository.NewSQLiteMoodLogRepo(database)
	sessionRepo := repository.NewSQLiteSessionRepo(database)
	profileRepo := repository.NewSQLiteProfileRepo(database)
	userRepo := repository.NewSQLiteUserRepo(database)

	// The local CLI user and its gamification engine. The engine loads
	// lazily: a fresh database has no profile row yet, which is fine.
	if err := ensureLocalUser(userRepo, profileRepo); err != nil {
		return err
	}
	profile := gamification.New(localUserID, profileRepo, gamification.WithLogger(logger))
	if err := profile.Load(context.Background()); err != nil {
		logger.Warn("loading gamification profile", "error", err)
	}

	// Wire services
	observer := service.NewSlogUseCaseObserver(logger)
	sessionSvc := service.NewSessionService(sessionRepo)
	taskSvc := service.NewTaskService(taskRepo, profile)
	moodSvc := service.NewMoodService(moodRepo)
	analyticsSvc := service.NewAnalyticsService(taskRepo, moodRepo, sessionRepo, observer)
	authSvc := service.NewAuthService(userRepo, profileRepo, cfg.Server.JWTSecret, cfg.TokenLifetime(), observer)

	// Wire the coaching model client
	mlCfg := coach.LoadConfig()
	var mlObserver coach.Observer = coach.NoopObserver{}
	if mlCfg.LogCalls {
		mlObserver = coach.NewLogObserver(os.Stderr)
	}
	coachSvc := coach.NewService(coach.NewHTTPClient(mlCfg, mlObserver), mlCfg.Enabled)

	// The timer engine records sessions and awards focus points for the
	// local user.
	durations := timer.Durations{
		Work:       cfg.Timer.WorkMinutes * 60,
		ShortBreak: cfg.Timer.ShortBreakMinutes * 60,
		LongBreak:  cfg.Timer.LongBreakMinutes * 60,
	}
	engine := timer.New(localUserID, durations, sessionSvc, profile, timer.WithLogger(logger))

	gin.SetMode(gin.ReleaseMode)
	router := httpapi.NewRouter(authSvc, httpapi.Handlers{
		Health:       httpapi.NewHealthHandler(database, coachSvc),
		Auth:         httpapi.NewAuthHandler(authSvc),
		Tasks:        httpapi.NewTaskHandler(taskSvc),
		Moods:        httpapi.NewMoodHandler(moodSvc),
		Timer:        httpapi.NewTimerHandler(sessionSvc),
		Gamification: httpapi.NewGamificationHandler(profileRepo),
		Analytics:    httpapi.NewAnalyticsHandler(analyticsSvc),
		ML:           httpapi.NewMLHandler(coachSvc, sessionSvc, analyticsSvc),
	}, cfg.Server.CORSOrigins)

	app := &cli.App{
		Tasks:     taskSvc,
		Moods:     moodSvc,
		Sessions:  sessionSvc,
		Analytics: analyticsSvc,
		Coach:     coachSvc,
		Timer:     engine,
		Profile:   profile,
		UserID:    localUserID,
		Handler:   router,
		Addr:      cfg.Server.Addr,
	}

	defer func() {
		engine.Stop()
		profile.Flush()
	}()

	return cli.NewRootCmd(app).Execute()
}

// ensureLocalUser creates the CLI user row on first run so foreign keys
// on tasks, sessions and mood logs are satisfied.
func ensureLocalUser(users repository.UserRepo, profiles repository.ProfileRepo) error {
	ctx := context.Background()
	_, err := users.GetByID(ctx, localUserID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	now := time.Now().UTC()
	if err := users.Create(ctx, &domain.User{
		ID:        localUserID,
		Email:     "local@focuswave",
		CreatedAt: now,
		UpdatedAt: now,
	}); err != nil {
		return fmt.Errorf("creating local user: %w", err)
	}
	if err := profiles.UpsertProfile(ctx, &domain.GamificationProfile{UserID: localUserID}); err != nil {
		return fmt.Errorf("seeding local profile: %w", err)
	}
	return nil
}
