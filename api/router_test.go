package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/beka-birhanu/vinom-maze3d/api/i"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type pingController struct{}

func (pingController) RegisterPublic(r *gin.RouterGroup) {
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
}

func (pingController) RegisterProtected(r *gin.RouterGroup) {
	r.GET("/secret", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
}

func TestRouterHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	deny := func(c *gin.Context) { c.AbortWithStatus(http.StatusUnauthorized) }
	handler := NewRouter(Config{
		BaseURL:                 "/api",
		Controllers:             []i.Controller{pingController{}},
		AuthorizationMiddleware: deny,
	}).Handler()

	get := func(path string) int {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, get("/api/v1/ping"))
	assert.Equal(t, http.StatusUnauthorized, get("/api/v1/secret"))
	assert.Equal(t, http.StatusNotFound, get("/ping"))
}

func TestRouterWithoutMiddlewareSkipsProtectedRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := NewRouter(Config{BaseURL: "/api", Controllers: []i.Controller{pingController{}}}).Handler()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/secret", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
