package sheetcheck_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-yourtask/internal/rbac"
	"go-yourtask/internal/rbac/infra"
	"go-yourtask/internal/sheet"
	sheeterrors "go-yourtask/internal/sheet/errors"
	sheetmock "go-yourtask/internal/sheet/mock"
	"go-yourtask/internal/sheetcheck"
	"go-yourtask/internal/sheetcheck/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func taskRow(taskID, courierID string) []string {
	row := make([]string, 22)
	row[0] = taskID
	row[21] = courierID
	return row
}

func TestSheetcheckService_Summary(t *testing.T) {
	layout, err := sheet.DefaultLayout()
	assert.NoError(t, err)

	ctrl := gomock.NewController(t)
	fetcher := sheetmock.NewMockFetcher(ctrl)
	svc := sheetcheck.NewService(fetcher, layout, zap.NewNop())

	couriers, _ := layout.Table(sheet.TableCourierAccounts)
	ops, _ := layout.Table(sheet.TableOpsAccounts)
	tasks, _ := layout.Table(sheet.TableTasks)
	att, _ := layout.Table(sheet.TableAttendance)

	t.Run("counts rows and records", func(t *testing.T) {
		fetcher.EXPECT().Fetch(gomock.Any(), couriers.GID).Return([][]string{
			{"no", "nama", "", "", "", "username"},
			{"1", "Budi", "", "", "", "BUDI2"},
			{"2", "Tanpa Username"},
		}, nil)
		fetcher.EXPECT().Fetch(gomock.Any(), ops.GID).Return([][]string{
			{"header"},
			{"1", "Rudi", "", "", "rudi1"},
		}, nil)
		fetcher.EXPECT().Fetch(gomock.Any(), tasks.GID).Return([][]string{
			taskRow("Task ID", "Courier ID"),
			taskRow("T1", "BUDI2"),
			taskRow("T2", ""),
			taskRow("", "BUDI2"),
		}, nil)
		fetcher.EXPECT().Fetch(gomock.Any(), att.GID).Return([][]string{
			{"header"},
		}, nil)

		got, err := svc.Summary(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, []sheetcheck.TableSummary{
			{Table: sheet.TableAttendance, GID: att.GID, Rows: 0, Records: 0},
			{Table: sheet.TableCourierAccounts, GID: couriers.GID, Rows: 2, Records: 1},
			{Table: sheet.TableOpsAccounts, GID: ops.GID, Rows: 1, Records: 1},
			{Table: sheet.TableTasks, GID: tasks.GID, Rows: 3, Records: 1},
		}, got)
	})

	t.Run("any fetch failure fails the summary", func(t *testing.T) {
		fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(nil, sheeterrors.FetchFailed(errors.New("503"))).MinTimes(1).MaxTimes(4)

		_, err := svc.Summary(context.Background())
		assert.Error(t, err)
	})
}

func TestSheetcheckHandler_Summary(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := mock.NewMockService(ctrl)
	h := sheetcheck.NewHandler(svc)

	r := gin.New()
	r.GET("/sheets/summary", h.Summary)

	svc.EXPECT().Summary(gomock.Any()).Return([]sheetcheck.TableSummary{{Table: "tasks", GID: "1", Rows: 3, Records: 2}}, nil)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/sheets/summary", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"records":2`)

	svc.EXPECT().Summary(gomock.Any()).Return(nil, sheeterrors.FetchFailed(errors.New("503")))
	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/sheets/summary", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestSheetcheckRoutes_OpsOnly(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := mock.NewMockService(ctrl)
	h := sheetcheck.NewHandler(svc)

	enforcer, err := infra.NewEnforcer()
	assert.NoError(t, err)
	rbacService, err := rbac.NewService(enforcer, rbac.DefaultPolicy)
	assert.NoError(t, err)

	newRouter := func(role string) *gin.Engine {
		r := gin.New()
		g := r.Group("", func(c *gin.Context) {
			c.Set("session_id", "sid-"+role)
			c.Set("role", role)
			c.Next()
		})
		sheetcheck.RegisterRoutes(g, h, rbacService)
		return r
	}

	for _, role := range []string{"kurir", ""} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/sheets/summary", nil)
		newRouter(role).ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code, role)
	}

	svc.EXPECT().Summary(gomock.Any()).Return([]sheetcheck.TableSummary{}, nil)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/sheets/summary", nil)
	newRouter("ops").ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
