package task

import (
	"context"

	"go-yourtask/internal/sheet"
	sheeterrors "go-yourtask/internal/sheet/errors"
	"go-yourtask/internal/shared/contextutil"

	"go.uber.org/zap"
)

//go:generate mockgen -source=task_repo.go -destination=mock/task_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context) ([]Task, error)
}

type repository struct {
	fetcher sheet.Fetcher
	table   sheet.Table
	logger  *zap.Logger
}

func NewRepository(fetcher sheet.Fetcher, layout sheet.Layout, logger ...*zap.Logger) (Repository, error) {
	t, ok := layout.Table(sheet.TableTasks)
	if !ok {
		return nil, sheeterrors.ErrUnknownTable
	}
	l := zap.L().Named("task.repository")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("task.repository")
	}
	return &repository{fetcher: fetcher, table: t, logger: l}, nil
}

func (r *repository) FindAll(ctx context.Context) ([]Task, error) {
	rows, err := r.fetcher.Fetch(ctx, r.table.GID)
	if err != nil {
		return nil, err
	}
	tasks := MapTasks(rows, r.table)
	contextutil.GetLogger(ctx, r.logger).Info("tasks loaded from sheet", zap.Int("total", len(tasks)))
	return tasks, nil
}
