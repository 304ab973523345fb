package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/sharath018/temple-donation-docs/config"
	"github.com/sharath018/temple-donation-docs/internal/auditlog"
	"github.com/sharath018/temple-donation-docs/internal/documents"
	"github.com/sharath018/temple-donation-docs/middleware"
)

// Deps are the services the routes are wired to. Audit and Redis may be nil.
type Deps struct {
	Documents *documents.Service
	Audit     auditlog.Service
	Redis     *redis.Client
}

// CORS allows the donation front end to read the attachment headers.
func CORS(cfg *config.Config) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS", "HEAD"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "Content-Length", "X-Requested-With", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Content-Disposition", "X-Cache", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}

func Setup(r *gin.Engine, cfg *config.Config, deps Deps) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimiter(cfg.RateLimitPerMinute, deps.Redis))
	api.Use(middleware.AuditMiddleware()) // Audit middleware to capture IP
	api.Use(middleware.AuthMiddleware(cfg.JWTAccessSecret))

	// ========== Documents ==========
	docs := documents.NewHandler(deps.Documents)

	api.POST("/documents/receipt", docs.RenderReceipt)
	api.POST("/documents/report", middleware.RBACMiddleware(middleware.StaffRoles...), docs.RenderReport)
	api.GET("/donations/:transaction_id/receipt", docs.GetReceipt)
	api.GET("/donors/:email/report", middleware.RequireDonorAccess("email"), docs.GetDonorReport)

	// ========== Audit Logs ==========
	if deps.Audit != nil {
		auditHandler := auditlog.NewHandler(deps.Audit)
		api.GET("/auditlogs", middleware.RBACMiddleware(middleware.RoleSuperAdmin), auditHandler.GetAuditLogs)
	}
}
