package attendance

import (
	"context"

	"go-yourtask/internal/sheet"
	sheeterrors "go-yourtask/internal/sheet/errors"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context) ([]Attendance, error)
}

type repository struct {
	fetcher sheet.Fetcher
	table   sheet.Table
}

func NewRepository(fetcher sheet.Fetcher, layout sheet.Layout) (Repository, error) {
	t, ok := layout.Table(sheet.TableAttendance)
	if !ok {
		return nil, sheeterrors.ErrUnknownTable
	}
	return &repository{fetcher: fetcher, table: t}, nil
}

func (r *repository) FindAll(ctx context.Context) ([]Attendance, error) {
	rows, err := r.fetcher.Fetch(ctx, r.table.GID)
	if err != nil {
		return nil, err
	}
	return MapAttendance(rows, r.table), nil
}
