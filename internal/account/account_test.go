package account_test

import (
	"context"
	"testing"

	"go-yourtask/internal/account"
	"go-yourtask/internal/sheet"
	sheetMock "go-yourtask/internal/sheet/mock"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func defaultLayout(t *testing.T) sheet.Layout {
	t.Helper()
	l, err := sheet.DefaultLayout()
	assert.NoError(t, err)
	return l
}

func TestMapAccounts(t *testing.T) {
	l := defaultLayout(t)
	couriers, _ := l.Table(sheet.TableCourierAccounts)

	rows := [][]string{
		{"No", "Nama", "HP", "Hub", "Email", "Username"},
		{"1", "Budi", "0812", "HUB A", "b@x.id", "budi2"},
		{"2", "", "0813", "HUB A", "", "tanpanama"},
		{"3", "Kosong", "0814", "HUB B", "", ""},
		{"4", "Pendek"},
	}

	got := account.MapAccounts(rows, couriers)

	assert.Equal(t, []account.Account{
		{Username: "budi2", Name: "Budi"},
		{Username: "tanpanama", Name: "tanpanama"},
	}, got)
}

func TestMapAccounts_OpsColumn(t *testing.T) {
	l := defaultLayout(t)
	ops, _ := l.Table(sheet.TableOpsAccounts)

	rows := [][]string{
		{"No", "Nama", "Jabatan", "Hub", "Username"},
		{"1", "Rudi", "SPV", "HUB A", "rudi1"},
	}

	assert.Equal(t, []account.Account{{Username: "rudi1", Name: "Rudi"}}, account.MapAccounts(rows, ops))
}

func TestMapAccounts_HeaderOnly(t *testing.T) {
	l := defaultLayout(t)
	ops, _ := l.Table(sheet.TableOpsAccounts)
	assert.Empty(t, account.MapAccounts([][]string{{"header"}}, ops))
	assert.Empty(t, account.MapAccounts(nil, ops))
}

func TestFindByUsername(t *testing.T) {
	accounts := []account.Account{
		{Username: "Budi2", Name: "Budi"},
		{Username: "budi2", Name: "Budi Duplikat"},
	}

	a, ok := account.FindByUsername(accounts, "BUDI2")
	assert.True(t, ok)
	assert.Equal(t, "Budi", a.Name)

	_, ok = account.FindByUsername(accounts, "nouser")
	assert.False(t, ok)
}

func TestRepository(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	l := defaultLayout(t)
	fetcher := sheetMock.NewMockFetcher(ctrl)
	repo, err := account.NewRepository(fetcher, l)
	assert.NoError(t, err)
	ctx := context.Background()

	courierTable, _ := l.Table(sheet.TableCourierAccounts)
	opsTable, _ := l.Table(sheet.TableOpsAccounts)

	t.Run("couriers", func(t *testing.T) {
		fetcher.EXPECT().
			Fetch(ctx, courierTable.GID).
			Return([][]string{{"h"}, {"1", "Budi", "", "", "", "budi2"}}, nil)

		got, err := repo.FindCouriers(ctx)
		assert.NoError(t, err)
		assert.Equal(t, []account.Account{{Username: "budi2", Name: "Budi"}}, got)
	})

	t.Run("ops fetch error", func(t *testing.T) {
		fetcher.EXPECT().
			Fetch(ctx, opsTable.GID).
			Return(nil, assert.AnError)

		got, err := repo.FindOps(ctx)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, assert.AnError)
	})
}
