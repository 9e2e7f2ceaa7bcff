package sheetcheck

import (
	"context"
	"sort"

	"go-yourtask/internal/account"
	"go-yourtask/internal/attendance"
	"go-yourtask/internal/sheet"
	"go-yourtask/internal/task"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// TableSummary: Rows adalah jumlah baris data (tanpa header), Records yang lolos mapper.
type TableSummary struct {
	Table   string `json:"table"`
	GID     string `json:"gid"`
	Rows    int    `json:"rows"`
	Records int    `json:"records"`
}

//go:generate mockgen -source=sheetcheck_service.go -destination=mock/sheetcheck_service_mock.go -package=mock
type Service interface {
	Summary(ctx context.Context) ([]TableSummary, error)
}

type service struct {
	fetcher sheet.Fetcher
	layout  sheet.Layout
	logger  *zap.Logger
}

func NewService(fetcher sheet.Fetcher, layout sheet.Layout, logger ...*zap.Logger) Service {
	l := zap.L().Named("sheetcheck.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("sheetcheck.service")
	}
	return &service{fetcher: fetcher, layout: layout, logger: l}
}

func countRecords(name string, rows [][]string, t sheet.Table) int {
	switch name {
	case sheet.TableCourierAccounts, sheet.TableOpsAccounts:
		return len(account.MapAccounts(rows, t))
	case sheet.TableTasks:
		return len(task.MapTasks(rows, t))
	case sheet.TableAttendance:
		return len(attendance.MapAttendance(rows, t))
	}
	return 0
}

func (s *service) Summary(ctx context.Context) ([]TableSummary, error) {
	names := make([]string, 0, len(s.layout.Tables))
	for name := range s.layout.Tables {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]TableSummary, len(names))
	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		t := s.layout.Tables[name]
		g.Go(func() error {
			rows, err := s.fetcher.Fetch(gctx, t.GID)
			if err != nil {
				return err
			}
			out[i] = TableSummary{
				Table:   name,
				GID:     t.GID,
				Rows:    len(sheet.Body(rows)),
				Records: countRecords(name, rows, t),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Warn("sheet summary failed", zap.Error(err))
		return nil, err
	}
	return out, nil
}
