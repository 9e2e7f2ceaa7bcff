package auth

import (
	"errors"
	"net/http"
	"time"

	autherrors "go-yourtask/internal/auth/errors"
	"go-yourtask/internal/middleware"
	"go-yourtask/internal/shared/apperror"
	"go-yourtask/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const SessionCookie = middleware.SessionCookie

type CookieConfig struct {
	Secure bool
	// MaxAge 0 berarti cookie session browser
	MaxAge time.Duration
}

type Handler struct {
	service Service
	cookie  CookieConfig
	logger  *zap.Logger
}

func NewHandler(s Service, cookie CookieConfig, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{service: s, cookie: cookie, logger: l}
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", err.Error())
		return
	}

	result, err := h.service.Login(c.Request.Context(), req.Username)
	if err != nil {
		// handle kosong diabaikan tanpa pesan
		if errors.Is(err, autherrors.ErrEmptyUsername) {
			c.Status(http.StatusNoContent)
			return
		}
		httpErr := apperror.ToHTTP(err)
		var details any = httpErr.Details
		if errors.Is(err, autherrors.ErrUsernameNotRegistered) || errors.Is(err, autherrors.ErrNoActiveTask) {
			details = gin.H{"username": req.Username}
		}
		h.logger.Info("login failed", zap.String("code", httpErr.Code), zap.Int("status", httpErr.Status))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, details)
		return
	}

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     SessionCookie,
		Value:    result.Token,
		Path:     "/",
		MaxAge:   int(h.cookie.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	response.Success(c, http.StatusOK, LoginResponse{User: result.Session, Token: result.Token}, nil)
}

func (h *Handler) Me(c *gin.Context) {
	sess, err := h.service.Me(c.Request.Context(), c.GetString("session_id"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, sess, nil)
}

func (h *Handler) Logout(c *gin.Context) {
	if err := h.service.Logout(c.Request.Context(), c.GetString("session_id")); err != nil {
		h.logger.Error("logout failed", zap.Error(err))
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	response.Success(c, http.StatusOK, gin.H{"message": "Logout successful"}, nil)
}
