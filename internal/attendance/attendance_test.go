package attendance_test

import (
	"context"
	"testing"

	"go-yourtask/internal/attendance"
	"go-yourtask/internal/sheet"
	sheetMock "go-yourtask/internal/sheet/mock"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestMapAttendance(t *testing.T) {
	l, err := sheet.DefaultLayout()
	assert.NoError(t, err)
	table, _ := l.Table(sheet.TableAttendance)

	rows := [][]string{
		{"No", "Nama", "Jabatan", "Tgl", "Hub", "Shift", "Keterangan"},
		{"1", "Sari", "Admin", "01", "HUB A", "Pagi", "Masuk"},
		{"2", "", "Kurir", "01", "HUB A", "Malam", ""},
		{"3", "Joko", "Kurir"},
	}

	got := attendance.MapAttendance(rows, table)

	assert.Equal(t, []attendance.Attendance{
		{StaffName: "Sari", Jabatan: "Admin", Shift: "Pagi", Description: "Masuk"},
		{StaffName: "Joko", Jabatan: "Kurir"},
	}, got)
}

func TestRepository_FindAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	l, _ := sheet.DefaultLayout()
	fetcher := sheetMock.NewMockFetcher(ctrl)
	repo, err := attendance.NewRepository(fetcher, l)
	assert.NoError(t, err)

	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		fetcher.EXPECT().
			Fetch(ctx, "961433836").
			Return([][]string{{"h"}, {"1", "Sari", "Admin", "", "", "Pagi", ""}}, nil)

		got, err := repo.FindAll(ctx)
		assert.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("fetch error", func(t *testing.T) {
		fetcher.EXPECT().Fetch(ctx, gomock.Any()).Return(nil, assert.AnError)

		_, err := repo.FindAll(ctx)
		assert.ErrorIs(t, err, assert.AnError)
	})
}
