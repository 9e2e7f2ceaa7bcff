package task_test

import (
	"context"
	"testing"

	"go-yourtask/internal/sheet"
	sheetMock "go-yourtask/internal/sheet/mock"
	"go-yourtask/internal/task"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

// taskRow membangun baris 22 kolom sesuai layout bawaan.
func taskRow(taskID, fmsID, pkg, operator, hub, name, courierID string) []string {
	row := make([]string, 22)
	row[0] = taskID
	row[2] = fmsID
	row[9] = pkg
	row[11] = operator
	row[19] = hub
	row[20] = name
	row[21] = courierID
	return row
}

func tasksTable(t *testing.T) sheet.Table {
	t.Helper()
	l, err := sheet.DefaultLayout()
	assert.NoError(t, err)
	tbl, ok := l.Table(sheet.TableTasks)
	assert.True(t, ok)
	return tbl
}

func TestMapTasks(t *testing.T) {
	rows := [][]string{
		taskRow("Task ID", "FMS", "Jumlah", "Operator", "Station", "Nama Kurir", "Id Kurir"),
		taskRow("T-1", "F-1", "12", "Sari", "HUB A", "Budi", "budi2"),
		taskRow("", "F-1", "3", "", "HUB A", "Budi", "budi2"),
		taskRow("T-3", "F-2", "4", "", "HUB B", "Andi", ""),
	}

	got := task.MapTasks(rows, tasksTable(t))

	assert.Equal(t, []task.Task{{
		TaskID:       "T-1",
		FmsID:        "F-1",
		OperatorName: "Sari",
		Hub:          "HUB A",
		Name:         "Budi",
		CourierID:    "budi2",
		PackageCount: 12,
		Status:       task.StatusPending,
	}}, got)
}

func TestMapTasks_MissingPackageCount(t *testing.T) {
	rows := [][]string{
		{"header"},
		taskRow("T-1", "", "", "", "", "", "budi2"),
		taskRow("T-2", "", "lima", "", "", "", "budi2"),
	}

	got := task.MapTasks(rows, tasksTable(t))

	assert.Len(t, got, 2)
	assert.Equal(t, 0, got[0].PackageCount)
	assert.Equal(t, 0, got[1].PackageCount)
}

func TestMapTasks_ShortRowWithoutCourierDropped(t *testing.T) {
	rows := [][]string{{"header"}, {"T-1", "x", "F-1"}}
	assert.Empty(t, task.MapTasks(rows, tasksTable(t)))
}

func TestEffectiveStatus(t *testing.T) {
	assert.Equal(t, task.StatusPending, task.Task{}.EffectiveStatus())
	assert.Equal(t, task.StatusFinished, task.Task{Status: task.StatusFinished}.EffectiveStatus())
}

func TestRepository_FindAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	l, _ := sheet.DefaultLayout()
	fetcher := sheetMock.NewMockFetcher(ctrl)
	repo, err := task.NewRepository(fetcher, l, zap.NewNop())
	assert.NoError(t, err)

	ctx := context.Background()
	fetcher.EXPECT().
		Fetch(ctx, "1818009061").
		Return([][]string{{"header"}, taskRow("T-1", "F-1", "2", "", "HUB A", "Budi", "budi2")}, nil)

	got, err := repo.FindAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "budi2", got[0].CourierID)
}
