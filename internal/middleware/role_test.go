package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

// roleEcho wires a route behind RequireRole with the role claim injected
// directly, standing in for the JWT middleware.
func roleEcho(role interface{}, allowed ...string) *echo.Echo {
	e := echo.New()
	inject := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("role", role)
			return next(c)
		}
	}
	g := e.Group("", inject, RequireRole(allowed...))
	g.POST("/pitches", func(c echo.Context) error {
		return c.String(http.StatusCreated, "created")
	})
	return e
}

func TestRequireRoleAllows(t *testing.T) {
	e := roleEcho("ADMIN", "ADMIN")

	req := httptest.NewRequest(http.MethodPost, "/pitches", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRequireRoleRejectsOtherRole(t *testing.T) {
	e := roleEcho("MEMBER", "ADMIN")

	req := httptest.NewRequest(http.MethodPost, "/pitches", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "not authorized")
}

func TestRequireRoleRejectsMissingRole(t *testing.T) {
	e := roleEcho(nil, "ADMIN")

	req := httptest.NewRequest(http.MethodPost, "/pitches", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
