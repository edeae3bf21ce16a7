package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionCookie names the signed browser-session cookie that keys a
// visitor's cart in the durable store.
const SessionCookie = "quickbite_session"

const sessionContextKey = "sessionID"

const sessionTTL = 30 * 24 * time.Hour

func signSession(secret []byte, sessionID string) (string, error) {
	claims := jwt.MapClaims{
		"sid": sessionID,
		"exp": time.Now().Add(sessionTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func parseSession(secret []byte, tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid session token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid session claims")
	}

	sid, _ := claims["sid"].(string)
	if sid == "" {
		return "", errors.New("missing session id")
	}
	return sid, nil
}

// Session attaches a stable browser-session ID to every request. A missing
// or invalid cookie mints a fresh ID, which starts with an empty cart.
func Session(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sessionID string

		if cookie, err := c.Cookie(SessionCookie); err == nil {
			if sid, err := parseSession(secret, cookie); err == nil {
				sessionID = sid
			}
		}

		if sessionID == "" {
			sessionID = uuid.New().String()
			signed, err := signSession(secret, sessionID)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
				c.Abort()
				return
			}
			c.SetCookie(SessionCookie, signed, int(sessionTTL.Seconds()), "/", "", false, true)
		}

		c.Set(sessionContextKey, sessionID)
		c.Next()
	}
}

// SessionID returns the browser-session ID attached by Session.
func SessionID(c *gin.Context) string {
	return c.GetString(sessionContextKey)
}
