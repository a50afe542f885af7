package app

import (
	"github.com/LudyPitra/AI-Diary-App/internal/auth"
	"github.com/LudyPitra/AI-Diary-App/internal/cache"
	"github.com/LudyPitra/AI-Diary-App/internal/config"
	"github.com/LudyPitra/AI-Diary-App/internal/handlers"
	"github.com/LudyPitra/AI-Diary-App/internal/repo"
	"github.com/LudyPitra/AI-Diary-App/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, tokens *auth.TokenManager, db *pgxpool.Pool, rdb *redis.Client) {
	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
		ginSwagger.PersistAuthorization(true),
	))

	userRepo := repo.NewPGUserRepo(db)
	userSvc := service.NewUserService(userRepo)

	entryRepo := repo.NewPGEntryRepo(db)
	entryCache := cache.NewEntryCache(rdb, cfg.Redis.DefaultTTL.Duration())
	entrySvc := service.NewEntryService(entryRepo, entryCache)

	authHandler := handlers.NewAuthHandler(userSvc, entrySvc, tokens)
	r.POST("/users/", authHandler.Register)
	r.POST("/token", authHandler.Token)

	protected := r.Group("", auth.RequireToken(tokens, userSvc))
	protected.GET("/users/me", authHandler.Me)

	entryHandler := handlers.NewEntryHandler(entrySvc)
	protected.GET("/entries", entryHandler.List)
	protected.POST("/entries/", entryHandler.Create)
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "AI Diary backend is running",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"spec":    "/swagger-doc.json",
			"health":  "/health",
		})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}
