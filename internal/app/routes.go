package app

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jawa-agence/core/internal/middleware"
	"github.com/jawa-agence/core/internal/modules/auth"
	"github.com/jawa-agence/core/internal/modules/content/category"
	"github.com/jawa-agence/core/internal/modules/content/comment"
	"github.com/jawa-agence/core/internal/modules/content/company"
	"github.com/jawa-agence/core/internal/modules/content/contact"
	"github.com/jawa-agence/core/internal/modules/content/faq"
	"github.com/jawa-agence/core/internal/modules/content/newsletter"
	"github.com/jawa-agence/core/internal/modules/content/partner"
	"github.com/jawa-agence/core/internal/modules/content/post"
	"github.com/jawa-agence/core/internal/modules/content/pricing"
	"github.com/jawa-agence/core/internal/modules/content/process"
	"github.com/jawa-agence/core/internal/modules/content/project"
	"github.com/jawa-agence/core/internal/modules/content/service"
	"github.com/jawa-agence/core/internal/modules/content/team"
	"github.com/jawa-agence/core/internal/modules/content/testimonial"
	"github.com/jawa-agence/core/internal/modules/storage/asset"
	pkgredis "github.com/jawa-agence/core/internal/pkg/redis"
	"github.com/jawa-agence/core/internal/pkg/response"
)

const apiPrefix = "/api/v2"

func (a *App) registerRoutes(rc *pkgredis.Client, store asset.Store) {
	r := a.router
	db := a.db
	authMW := middleware.Auth()

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	// Rate limiting and idempotence run on every route (requires Redis).
	r.Use(middleware.RateLimit(rc.Raw()))
	r.Use(middleware.Idempotence(rc))

	r.GET("/healthz", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.Ping()
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group(apiPrefix)
	api.Use(middleware.OptionalAuth())

	api.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"data": "pong"}) })
	api.GET("/uptime", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"timestamp": time.Since(processStart).Milliseconds()})
	})

	auth.NewHandler(auth.NewService(db)).RegisterRoutes(api, authMW)

	service.NewHandler(service.NewService(db)).RegisterRoutes(api, authMW)
	pricing.NewHandler(pricing.NewService(db)).RegisterRoutes(api, authMW)
	project.NewHandler(project.NewService(db)).RegisterRoutes(api, authMW)
	process.NewHandler(process.NewService(db)).RegisterRoutes(api, authMW)
	faq.NewHandler(faq.NewService(db)).RegisterRoutes(api, authMW)
	team.NewHandler(team.NewService(db)).RegisterRoutes(api, authMW)
	partner.NewHandler(partner.NewService(db)).RegisterRoutes(api, authMW)
	testimonial.NewHandler(testimonial.NewService(db)).RegisterRoutes(api, authMW)

	category.NewHandler(category.NewService(db)).RegisterRoutes(api, authMW)
	post.NewHandler(post.NewService(db)).RegisterRoutes(api, authMW)
	comment.NewHandler(comment.NewService(db)).RegisterRoutes(api, authMW)

	newsletter.NewHandler(newsletter.NewService(db)).RegisterRoutes(api, authMW)
	company.NewHandler(company.NewService(db)).RegisterRoutes(api, authMW)
	contact.NewHandler(contact.NewService(db)).RegisterRoutes(api, authMW)

	if store != nil {
		asset.NewHandler(store, a.cfg.S3).RegisterRoutes(api, authMW)
	}
}

var processStart = time.Now()
