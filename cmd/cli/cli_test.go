package main

import (
	"bytes"
	"context"
	"testing"

	"go-yourtask/internal/account"
	accountmock "go-yourtask/internal/account/mock"
	autherrors "go-yourtask/internal/auth/errors"
	"go-yourtask/internal/sheet"
	"go-yourtask/internal/sheetcheck"
	"go-yourtask/internal/task"
	taskmock "go-yourtask/internal/task/mock"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	err := printSummary(&buf, []sheetcheck.TableSummary{
		{Table: "tasks", GID: "1818009061", Rows: 10, Records: 8},
	})
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "TABLE")
	assert.Contains(t, buf.String(), "1818009061")
}

func TestPrintLayout(t *testing.T) {
	layout, err := sheet.DefaultLayout()
	assert.NoError(t, err)

	var buf bytes.Buffer
	assert.NoError(t, printLayout(&buf, layout))
	assert.Contains(t, buf.String(), "courier_id")

	parsed, err := sheet.ParseLayout(buf.Bytes())
	assert.NoError(t, err)
	assert.Equal(t, layout.SheetID, parsed.SheetID)
}

func TestRunResolve(t *testing.T) {
	ctrl := gomock.NewController(t)
	accounts := accountmock.NewMockRepository(ctrl)
	tasks := taskmock.NewMockRepository(ctrl)

	expect := func() {
		accounts.EXPECT().FindOps(gomock.Any()).Return([]account.Account{{Username: "rudi1", Name: "Rudi"}}, nil)
		accounts.EXPECT().FindCouriers(gomock.Any()).Return([]account.Account{{Username: "BUDI2", Name: "Budi"}}, nil)
		tasks.EXPECT().FindAll(gomock.Any()).Return([]task.Task{
			{TaskID: "T1", FmsID: "FMS-1", CourierID: "BUDI2", PackageCount: 2},
			{TaskID: "T2", FmsID: "FMS-2", CourierID: "OTHER", PackageCount: 1},
		}, nil)
	}

	t.Run("courier", func(t *testing.T) {
		expect()
		var buf bytes.Buffer
		err := runResolve(context.Background(), &buf, accounts, tasks, "budi2")
		assert.NoError(t, err)
		assert.Contains(t, buf.String(), "role:     kurir")
		assert.Contains(t, buf.String(), "tasks:    1 in 1 FMS group(s)")
		assert.Contains(t, buf.String(), "FMS-1 (2 paket)")
	})

	t.Run("unknown handle", func(t *testing.T) {
		expect()
		var buf bytes.Buffer
		err := runResolve(context.Background(), &buf, accounts, tasks, "nouser")
		assert.ErrorIs(t, err, autherrors.ErrUsernameNotRegistered)
	})
}
