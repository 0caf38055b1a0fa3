package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	return NewAPIEngine(zap.NewNop(), db, 5*time.Second)
}

func TestHealth(t *testing.T) {
	r := newEngine(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":1}`, rec.Body.String())
}

func TestMetricsExposed(t *testing.T) {
	r := newEngine(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_requests_total")
}

func TestCORSHeadersPresent(t *testing.T) {
	r := newEngine(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/employees", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRegistryMountOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := NewRegistry()

	var order []string
	reg.Register(mountFunc(func(*gin.RouterGroup) { order = append(order, "second") }))
	reg.Register(priorityMount{fn: func(*gin.RouterGroup) { order = append(order, "first") }, p: 1})

	r := gin.New()
	reg.MountAll(r.Group("/api"))

	assert.Equal(t, []string{"first", "second"}, order)
}

type mountFunc func(*gin.RouterGroup)

func (f mountFunc) MountAPI(g *gin.RouterGroup) { f(g) }

type priorityMount struct {
	fn func(*gin.RouterGroup)
	p  int
}

func (m priorityMount) MountAPI(g *gin.RouterGroup) { m.fn(g) }
func (m priorityMount) Priority() int               { return m.p }
