package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"email-qa-backend/internal/emails"
	"email-qa-backend/internal/qa"
	"email-qa-backend/internal/reports"
	"email-qa-backend/internal/rules"
	"email-qa-backend/internal/shared/config"
	"email-qa-backend/internal/shared/metrics"
	"email-qa-backend/internal/shared/server/middleware"
	"email-qa-backend/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config        config.Config
	EmailHandler  *emails.Handler
	QAHandler     *qa.Handler
	ReportHandler *reports.Handler
	RuleHandler   *rules.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	deps.EmailHandler.RegisterRoutes(api)
	deps.QAHandler.RegisterRoutes(api)
	deps.ReportHandler.RegisterRoutes(api)
	deps.RuleHandler.RegisterRoutes(api)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
