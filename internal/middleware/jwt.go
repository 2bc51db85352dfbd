package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
	"net/http" // HTTP status codes for responses
	"strings" // string utilities for prefix checking and trimming
	"time" // expiry extraction for the deny-list check

	"github.com/golang-jwt/jwt/v5" // JWT library for parsing and validating tokens
	"github.com/labstack/echo/v4"  // Echo framework used for defining middleware and handlers

	"github.com/kipkoech-dev/pitch-hire/internal/repository" // deny-list of revoked token identifiers
)

// JWTAuth returns an Echo middleware that validates a Bearer identity token
// and injects its claims into the request context.  The provided secret must
// match the one used when issuing tokens.  Tokens whose jti has been through
// logout are rejected even when not expired.  This middleware should wrap
// protected routes so that handlers can access authenticated user
// information via `c.Get("user_id")` and `c.Get("role")`; logout
// additionally reads `c.Get("jti")` and `c.Get("token_exp")`.
func JWTAuth(secret string, deny *repository.DenyList) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Read the Authorization header.  A valid header should start
			// with "Bearer " followed by the JWT.
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			// Parse the token using the HS256 signing method and our secret.
			// The callback supplies the signing key and ensures that the
			// algorithm matches what we expect.
			tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, echo.ErrUnauthorized
				}
				return []byte(secret), nil
			})
			if err != nil || !tok.Valid {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}

			claims, ok := tok.Claims.(jwt.MapClaims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid claims"})
			}

			// Reject tokens whose identifier has been revoked via logout.
			jti, _ := claims["jti"].(string)
			if deny != nil && deny.IsRevoked(c.Request().Context(), jti) {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "token has been revoked"})
			}

			// Store the subject (user ID), role and token identity claims in
			// the context.  Handlers and downstream middleware access these
			// values via c.Get().  We leave numeric type assertions to
			// downstream consumers.
			c.Set("user_id", claims["sub"])
			c.Set("role", claims["role"])
			c.Set("jti", jti)
			if exp, errExp := claims.GetExpirationTime(); errExp == nil && exp != nil {
				c.Set("token_exp", exp.Time)
			} else {
				c.Set("token_exp", time.Time{})
			}
			return next(c)
		}
	}
}
