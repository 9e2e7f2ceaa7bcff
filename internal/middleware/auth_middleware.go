package middleware

import (
	"context"
	"net/http"
	"strings"

	"go-yourtask/internal/session"
	sessionerrors "go-yourtask/internal/session/errors"
	"go-yourtask/internal/shared/apperror"
	"go-yourtask/internal/shared/contextutil"
	"go-yourtask/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// SessionCookie adalah nama cookie token session.
const SessionCookie = "session_token"

type TokenParser interface {
	Parse(token string) (string, error)
}

type SessionLoader interface {
	Load(ctx context.Context, sid string) (*session.Session, error)
}

// AuthMiddleware menerima token dari header Bearer atau cookie, lalu memuat session dari store.
// Keberadaan session saja sudah cukup; sheet akun tidak dicek ulang.
// onSessionGone dipanggil dengan sid bila token valid tapi session sudah tidak ada di store.
func AuthMiddleware(tokens TokenParser, store SessionLoader, onSessionGone ...func(sid string)) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie(SessionCookie); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Token not found", nil)
			c.Abort()
			return
		}

		sid, err := tokens.Parse(tokenString)
		if err != nil {
			errObj := sessionerrors.ErrInvalidToken
			response.Error(c, errObj.HTTPStatus, errObj.Code, errObj.Message, nil)
			c.Abort()
			return
		}

		sess, err := store.Load(c.Request.Context(), sid)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, apperror.CodeInternalError, "Failed to load session", nil)
			c.Abort()
			return
		}
		if sess == nil {
			for _, fn := range onSessionGone {
				fn(sid)
			}
			errObj := sessionerrors.ErrSessionNotFound
			response.Error(c, errObj.HTTPStatus, errObj.Code, errObj.Message, nil)
			c.Abort()
			return
		}

		c.Set("session_id", sid)
		c.Set("username", sess.Username)
		c.Set("name", sess.Name)
		c.Set("role", string(sess.Role))

		ctx := contextutil.WithSessionID(c.Request.Context(), sid)
		ctx = contextutil.WithUsername(ctx, sess.Username)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func RoleMiddleware(allowedRoles ...session.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := c.GetString("role")
		if userRole == "" {
			response.Error(c, apperror.ErrForbidden.HTTPStatus, apperror.ErrForbidden.Code, apperror.ErrForbidden.Message, nil)
			c.Abort()
			return
		}

		isAllowed := false
		for _, role := range allowedRoles {
			if userRole == string(role) {
				isAllowed = true
				break
			}
		}

		if !isAllowed {
			response.Error(c, apperror.ErrForbidden.HTTPStatus, apperror.ErrForbidden.Code, apperror.ErrForbidden.Message, nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
