package account

import (
	"context"

	"go-yourtask/internal/sheet"
	sheeterrors "go-yourtask/internal/sheet/errors"
)

//go:generate mockgen -source=account_repo.go -destination=mock/account_repo_mock.go -package=mock
type Repository interface {
	FindCouriers(ctx context.Context) ([]Account, error)
	FindOps(ctx context.Context) ([]Account, error)
}

type repository struct {
	fetcher  sheet.Fetcher
	couriers sheet.Table
	ops      sheet.Table
}

func NewRepository(fetcher sheet.Fetcher, layout sheet.Layout) (Repository, error) {
	couriers, ok := layout.Table(sheet.TableCourierAccounts)
	if !ok {
		return nil, sheeterrors.ErrUnknownTable
	}
	ops, ok := layout.Table(sheet.TableOpsAccounts)
	if !ok {
		return nil, sheeterrors.ErrUnknownTable
	}
	return &repository{fetcher: fetcher, couriers: couriers, ops: ops}, nil
}

func (r *repository) FindCouriers(ctx context.Context) ([]Account, error) {
	rows, err := r.fetcher.Fetch(ctx, r.couriers.GID)
	if err != nil {
		return nil, err
	}
	return MapAccounts(rows, r.couriers), nil
}

func (r *repository) FindOps(ctx context.Context) ([]Account, error) {
	rows, err := r.fetcher.Fetch(ctx, r.ops.GID)
	if err != nil {
		return nil, err
	}
	return MapAccounts(rows, r.ops), nil
}
