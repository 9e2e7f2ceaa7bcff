package dashboard

import (
	"net/http"
	"strconv"
	"strings"

	"go-yourtask/internal/session"
	"go-yourtask/internal/shared/apperror"
	"go-yourtask/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("dashboard.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("dashboard request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// currentSession membaca identitas yang dipasang AuthMiddleware.
func currentSession(c *gin.Context) (string, session.Session) {
	return c.GetString("session_id"), session.Session{
		Username: c.GetString("username"),
		Name:     c.GetString("name"),
		Role:     session.Role(c.GetString("role")),
	}
}

func (h *Handler) View(c *gin.Context) {
	sid, sess := currentSession(c)
	resp, err := h.service.View(c.Request.Context(), sid, sess)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Refresh(c *gin.Context) {
	sid, sess := currentSession(c)
	resp, err := h.service.Refresh(c.Request.Context(), sid, sess)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		// data lama tetap dikirim bersama pesan error
		h.logger.Warn("dashboard refresh failed", zap.String("code", httpErr.Code), zap.Error(err))
		response.Error(c, httpErr.Status, httpErr.Code, CloudErrorPrefix+httpErr.Message, resp)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) UpdateFilters(c *gin.Context) {
	var req UpdateFiltersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http update filters validation failed", zap.Error(err))
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, err.Error())
		return
	}

	sid, sess := currentSession(c)
	resp, err := h.service.SetFilters(c.Request.Context(), sid, sess, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ResetFilters(c *gin.Context) {
	sid, sess := currentSession(c)
	resp, err := h.service.ResetFilters(c.Request.Context(), sid, sess)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) SetTab(c *gin.Context) {
	var req TabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http set tab validation failed", zap.Error(err))
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, err.Error())
		return
	}

	sid, sess := currentSession(c)
	resp, err := h.service.SetTab(c.Request.Context(), sid, sess, Tab(req.Tab))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Tasks(c *gin.Context) {
	sid, sess := currentSession(c)
	groups, err := h.service.Tasks(c.Request.Context(), sid, sess)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, groups, nil)
}

func (h *Handler) FinishTask(c *gin.Context) {
	taskID := strings.TrimSpace(c.Param("taskId"))
	sid, sess := currentSession(c)
	h.logger.Debug("http finish task", zap.String("task_id", taskID), zap.String("username", sess.Username))

	t, err := h.service.FinishTask(c.Request.Context(), sid, sess, taskID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, t, nil)
}

func (h *Handler) Attendance(c *gin.Context) {
	sid, sess := currentSession(c)
	resp, err := h.service.Attendance(c.Request.Context(), sid, sess)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if pageSize < 1 {
		pageSize = 10
	}

	start, end := pageBounds(len(resp), page, pageSize)
	meta := response.NewPaginationMeta(int64(len(resp)), page, pageSize)
	response.Success(c, http.StatusOK, resp[start:end], &meta)
}

// pageBounds menghitung potongan [start:end) dari n item tanpa perkalian
// yang bisa overflow untuk page / pageSize yang sangat besar.
func pageBounds(n, page, pageSize int) (int, int) {
	if page-1 > n/pageSize {
		return n, n
	}
	start := (page - 1) * pageSize
	if start > n {
		start = n
	}
	if n-start <= pageSize {
		return start, n
	}
	return start, start + pageSize
}
