package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func okHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func perform(engine *gin.Engine, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestRouter_DefaultVersion(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	group := NewDomainGroup("shifts", "/shifts")
	group.GET("", okHandler)
	r.Register(group).Setup()

	rec := perform(engine, http.MethodGet, "/api/v1/shifts")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_WithAPIVersion(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine, WithAPIVersion("v2"))

	group := NewDomainGroup("shifts", "/shifts")
	group.GET("", okHandler)
	r.Register(group).Setup()

	assert.Equal(t, http.StatusOK, perform(engine, http.MethodGet, "/api/v2/shifts").Code)
	assert.Equal(t, http.StatusNotFound, perform(engine, http.MethodGet, "/api/v1/shifts").Code)
}

func TestRouter_Middleware(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	called := false
	r.Use(func(c *gin.Context) {
		called = true
		c.Next()
	})

	group := NewDomainGroup("pumps", "/pumps")
	group.GET("", okHandler)
	r.Register(group).Setup()

	rec := perform(engine, http.MethodGet, "/api/v1/pumps")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}

func TestDomainGroup_AllMethods(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	group := NewDomainGroup("customers", "/customers")
	group.GET("", okHandler).
		POST("", okHandler).
		PUT("/:id", okHandler).
		PATCH("/:id", okHandler).
		DELETE("/:id", okHandler)
	r.Register(group).Setup()

	assert.Equal(t, http.StatusOK, perform(engine, http.MethodGet, "/api/v1/customers").Code)
	assert.Equal(t, http.StatusOK, perform(engine, http.MethodPost, "/api/v1/customers").Code)
	assert.Equal(t, http.StatusOK, perform(engine, http.MethodPut, "/api/v1/customers/42").Code)
	assert.Equal(t, http.StatusOK, perform(engine, http.MethodPatch, "/api/v1/customers/42").Code)
	assert.Equal(t, http.StatusOK, perform(engine, http.MethodDelete, "/api/v1/customers/42").Code)
}

func TestDomainGroup_GroupMiddleware(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	group := NewDomainGroup("reports", "/reports")
	group.Use(func(c *gin.Context) {
		c.AbortWithStatus(http.StatusForbidden)
	})
	group.GET("/sales", okHandler)

	open := NewDomainGroup("fuels", "/fuels")
	open.GET("", okHandler)

	r.Register(group).Register(open).Setup()

	assert.Equal(t, http.StatusForbidden, perform(engine, http.MethodGet, "/api/v1/reports/sales").Code)
	assert.Equal(t, http.StatusOK, perform(engine, http.MethodGet, "/api/v1/fuels").Code)
}

func TestDomainGroup_RouteMiddleware(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	deny := func(c *gin.Context) {
		c.AbortWithStatus(http.StatusForbidden)
	}

	group := NewDomainGroup("users", "/users")
	group.GET("", okHandler)
	group.POST("", deny, okHandler)
	r.Register(group).Setup()

	assert.Equal(t, http.StatusOK, perform(engine, http.MethodGet, "/api/v1/users").Code)
	assert.Equal(t, http.StatusForbidden, perform(engine, http.MethodPost, "/api/v1/users").Code)
}

func TestDomainGroup_Subgroups(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	group := NewDomainGroup("station", "/station")
	sub := group.Group("logo", "/logo")
	sub.POST("/prepare", okHandler)
	r.Register(group).Setup()

	assert.Equal(t, http.StatusOK, perform(engine, http.MethodPost, "/api/v1/station/logo/prepare").Code)
}

func TestDomainGroup_Accessors(t *testing.T) {
	group := NewDomainGroup("indents", "/indents")

	assert.Equal(t, "indents", group.Name())
	assert.Equal(t, "/indents", group.Prefix())
}
