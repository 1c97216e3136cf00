package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"email-qa-backend/internal/agents"
	"email-qa-backend/internal/checks"
	"email-qa-backend/internal/emails"
	"email-qa-backend/internal/qa"
	"email-qa-backend/internal/reports"
	"email-qa-backend/internal/rules"
	"email-qa-backend/internal/shared/config"
	"email-qa-backend/internal/shared/server"
	"email-qa-backend/internal/shared/storage/db"
)

// App holds shared dependencies for one running process.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB

	EmailsRepo  emails.Repo
	ReportsRepo reports.Repo
	RulesStore  rules.Store

	EmailsService *emails.Service
	RulesService  *rules.Service
	QAService     *qa.Service
	Orchestrator  *qa.Orchestrator

	EmailHandler  *emails.Handler
	QAHandler     *qa.Handler
	ReportHandler *reports.Handler
	RuleHandler   *rules.Handler
}

// Build prepares all dependencies and the wired router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{Config: cfg, DB: sqlDB}
	if err := buildServices(ctx, app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:        app.Config,
		EmailHandler:  app.EmailHandler,
		QAHandler:     app.QAHandler,
		ReportHandler: app.ReportHandler,
		RuleHandler:   app.RuleHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory stores")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory stores: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory stores: %v", err)
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
}

func buildServices(ctx context.Context, app *App) error {
	if app.DB != nil {
		app.EmailsRepo = &emails.PGRepo{DB: app.DB}
		app.ReportsRepo = &reports.PGRepo{DB: app.DB}
		app.RulesStore = &rules.PGStore{DB: app.DB}
	} else {
		app.EmailsRepo = emails.NewMemoryRepo()
		app.ReportsRepo = reports.NewMemoryRepo()
		app.RulesStore = rules.NewMemoryStore()
	}

	app.RulesService = rules.NewService(app.RulesStore)
	if err := app.RulesService.EnsureDefaults(ctx); err != nil {
		return fmt.Errorf("seed rule defaults: %w", err)
	}

	var connector emails.Connector
	if app.Config.ProofingAPIKey != "" {
		connector = emails.NewHTTPConnector(
			app.Config.ProofingAPIURL,
			app.Config.ProofingAPIKey,
			app.Config.ProofingSecret,
		)
	}
	app.EmailsService = &emails.Service{Repo: app.EmailsRepo, Connector: connector}

	brand := agents.BrandRules{
		FontFamily:    app.Config.BrandFontFamily,
		CTAColor:      app.Config.BrandCTAColor,
		HeaderLogo:    app.Config.BrandHeaderLogo,
		TopPadding:    app.Config.BrandTopPadding,
		BottomPadding: app.Config.BrandBottomPad,
	}
	adapters := []*agents.Adapter{
		agents.NewAdapter(agents.NewComplianceAgent(brand), app.Config.AgentTimeout),
		agents.NewAdapter(agents.NewToneAgent(), app.Config.AgentTimeout),
		agents.NewAdapter(agents.NewAccessibilityAgent(), app.Config.AgentTimeout),
	}

	app.Orchestrator = qa.NewOrchestrator(
		checks.DefaultRunner(),
		adapters,
		app.RulesService,
		qa.NewScorer(qa.DefaultPolicy()),
	)
	app.QAService = qa.NewService(app.EmailsService, app.ReportsRepo, app.Orchestrator)

	app.EmailHandler = emails.NewHandler(app.EmailsService)
	app.QAHandler = qa.NewHandler(app.QAService)
	app.ReportHandler = reports.NewHandler(app.ReportsRepo)
	app.RuleHandler = rules.NewHandler(app.RulesService)

	return nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
