package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"employee-records/internal/repo"
	"employee-records/internal/transport/http/handler"
	mdw "employee-records/internal/transport/http/middleware"
)

// NewAPIEngine assembles the records API: middleware stack, health/metrics,
// and the employee routes under /api.
func NewAPIEngine(l *zap.Logger, db *gorm.DB, requestTimeout time.Duration) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(requestTimeout),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		mdw.AccessLog(l),
		cors.Default(), // browser form may be served from anywhere
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	reg := NewRegistry()
	reg.Register(handler.NewEmployeeHandler(repo.NewEmployeeRepo(db), l))
	reg.MountAll(api)

	return r
}
