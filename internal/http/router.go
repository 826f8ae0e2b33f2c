package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"webshop-seo/internal/service"
)

// NewRouter configures the Gin router with middlewares and routes.
func NewRouter(
	logger *zap.Logger,
	authH *AuthHandler,
	scoreH *ScoreHandler,
	jwtSvc *service.JWTService,
	pool *pgxpool.Pool,
) *gin.Engine {
	r := gin.New()

	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		if err := pool.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "db unreachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/auth/token", authH.IssueToken)

	// Reads are open to the dashboard; recalculation mutates stored rows
	// and requires a token.
	r.GET("/products/:id/score", scoreH.GetProductScore)
	r.GET("/scores/worst", scoreH.ListWorstScores)

	protected := r.Group("", JWTAuthMiddleware(jwtSvc))
	protected.POST("/products/:id/score", scoreH.RecalculateProduct)
	protected.POST("/scores/recalculate", scoreH.RecalculateBulk)

	return r
}

// zapLoggerMiddleware is a small request logging middleware on zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware forces Content-Type: application/json on responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
