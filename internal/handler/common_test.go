package handler

import (
	"database/sql"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"

	"github.com/kipkoech-dev/pitch-hire/internal/config"
)

var testCfg = config.Config{
	JWTSecret:    "test-secret",
	AccessTTLMin: 24 * 60,
	BcryptCost:   4,
}

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

// jsonContext builds an echo.Context carrying a JSON body, mimicking what
// the router produces for a handler.
func jsonContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req = httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// asUser injects the context values the JWT middleware would set.
func asUser(c echo.Context, id uint64, role string) {
	c.Set("user_id", float64(id)) // numeric JWT claims decode as float64
	c.Set("role", role)
	c.Set("jti", "test-jti")
	c.Set("token_exp", time.Now().UTC().Add(time.Hour))
}

func userRows(id uint64, username, email, hash string, isAdmin bool) *sqlmock.Rows {
	now := time.Now().UTC()
	return sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "is_admin", "created_at", "updated_at"}).
		AddRow(id, username, email, hash, isAdmin, now, now)
}
