package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRouterSetup(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	guard := func(c *gin.Context) {
		c.AbortWithStatus(http.StatusUnauthorized)
	}

	r := NewRouter(engine, WithAPIVersion("v1")).Use(guard)
	r.RegisterPublic(RegistrarFunc(func(rg *gin.RouterGroup) {
		rg.GET("/open", func(c *gin.Context) { c.Status(http.StatusOK) })
	}))
	r.Register(RegistrarFunc(func(rg *gin.RouterGroup) {
		rg.GET("/guarded", func(c *gin.Context) { c.Status(http.StatusOK) })
	}))
	r.Setup()

	t.Run("public route skips protected middleware", func(t *testing.T) {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/open", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("protected route runs middleware", func(t *testing.T) {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/guarded", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("routes live under the version prefix", func(t *testing.T) {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/open", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
