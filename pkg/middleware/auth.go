package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

// JWT validates the Authorization bearer token and puts the user id on the
// context as uint under "uid".
func JWT(secret string) echo.MiddlewareFunc {
	key := []byte(secret)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			raw := strings.TrimPrefix(header, "Bearer ")
			if raw == "" || raw == header {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			claims := jwt.MapClaims{}
			tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return key, nil
			})
			if err != nil || !tok.Valid {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}
			uid, ok := claims["uid"].(float64)
			if !ok || uid <= 0 {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}
			c.Set("uid", uint(uid))
			return next(c)
		}
	}
}

// DevLogin impersonates a user via ?uid= or the BEET_UID cookie, defaulting
// to user 1. Local development only.
func DevLogin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid := ""
			if ck, err := c.Cookie("BEET_UID"); err == nil {
				uid = ck.Value
			}
			if q := c.QueryParam("uid"); q != "" {
				uid = q
				c.SetCookie(&http.Cookie{Name: "BEET_UID", Value: q, Path: "/"})
			}
			id, err := strconv.ParseUint(uid, 10, 64)
			if err != nil || id == 0 {
				id = 1
			}
			c.Set("uid", uint(id))
			return next(c)
		}
	}
}
