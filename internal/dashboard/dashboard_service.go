package dashboard

import (
	"context"
	"errors"
	"time"

	"go-yourtask/internal/attendance"
	dashboarderrors "go-yourtask/internal/dashboard/errors"
	"go-yourtask/internal/session"
	"go-yourtask/internal/shared/apperror"
	"go-yourtask/internal/shared/contextutil"
	"go-yourtask/internal/task"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// CloudErrorPrefix diletakkan di depan pesan error refresh.
const CloudErrorPrefix = "Cloud Error: "

//go:generate mockgen -source=dashboard_service.go -destination=mock/dashboard_service_mock.go -package=mock
type Service interface {
	// Open membuat state baru untuk session yang baru login lalu memuat data.
	Open(ctx context.Context, sid string, sess session.Session) error
	Refresh(ctx context.Context, sid string, sess session.Session) (ViewResponse, error)
	View(ctx context.Context, sid string, sess session.Session) (ViewResponse, error)
	Tasks(ctx context.Context, sid string, sess session.Session) ([]TaskGroup, error)
	Attendance(ctx context.Context, sid string, sess session.Session) ([]attendance.Attendance, error)
	SetFilters(ctx context.Context, sid string, sess session.Session, req UpdateFiltersRequest) (ViewResponse, error)
	ResetFilters(ctx context.Context, sid string, sess session.Session) (ViewResponse, error)
	SetTab(ctx context.Context, sid string, sess session.Session, tab Tab) (ViewResponse, error)
	FinishTask(ctx context.Context, sid string, sess session.Session, taskID string) (task.Task, error)
	Close(sid string)
}

type service struct {
	registry       *Registry
	taskRepo       task.Repository
	attendanceRepo attendance.Repository
	logger         *zap.Logger
	now            func() time.Time
}

func NewService(
	registry *Registry,
	taskRepo task.Repository,
	attendanceRepo attendance.Repository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	return &service{
		registry:       registry,
		taskRepo:       taskRepo,
		attendanceRepo: attendanceRepo,
		logger:         l,
		now:            time.Now,
	}
}

func (s *service) Open(ctx context.Context, sid string, sess session.Session) error {
	s.registry.Drop(sid)
	st, _ := s.registry.GetOrCreate(sid, sess)
	// fetch tetap jalan walau request login sudah selesai
	return s.load(context.WithoutCancel(ctx), st)
}

func (s *service) Refresh(ctx context.Context, sid string, sess session.Session) (ViewResponse, error) {
	st, err := s.state(ctx, sid, sess)
	if err != nil {
		return ViewResponse{}, err
	}
	if err := s.load(ctx, st); err != nil {
		return BuildView(st.Snapshot()), err
	}
	return BuildView(st.Snapshot()), nil
}

func (s *service) View(ctx context.Context, sid string, sess session.Session) (ViewResponse, error) {
	st, err := s.state(ctx, sid, sess)
	if err != nil {
		return ViewResponse{}, err
	}
	return BuildView(st.Snapshot()), nil
}

func (s *service) Tasks(ctx context.Context, sid string, sess session.Session) ([]TaskGroup, error) {
	st, err := s.state(ctx, sid, sess)
	if err != nil {
		return nil, err
	}
	snap := st.Snapshot()
	scoped := ScopeTasks(snap.Session, snap.Tasks)
	return GroupByFms(FilterTasks(scoped, snap.Filters, snap.Tab)), nil
}

func (s *service) Attendance(ctx context.Context, sid string, sess session.Session) ([]attendance.Attendance, error) {
	st, err := s.state(ctx, sid, sess)
	if err != nil {
		return nil, err
	}
	snap := st.Snapshot()
	return FilterAttendance(snap.Attendance, snap.Filters, snap.Tab), nil
}

func (s *service) SetFilters(ctx context.Context, sid string, sess session.Session, req UpdateFiltersRequest) (ViewResponse, error) {
	st, err := s.state(ctx, sid, sess)
	if err != nil {
		return ViewResponse{}, err
	}
	st.updateFilters(func(f *Filters) {
		if req.Status != nil {
			f.Status = normalizeFilter(*req.Status)
		}
		if req.Hub != nil {
			f.Hub = normalizeFilter(*req.Hub)
		}
		if req.Courier != nil {
			f.Courier = normalizeFilter(*req.Courier)
		}
		if req.Shift != nil {
			f.Shift = normalizeFilter(*req.Shift)
		}
		if req.Search != nil {
			f.Search = *req.Search
		}
	})
	return BuildView(st.Snapshot()), nil
}

func (s *service) ResetFilters(ctx context.Context, sid string, sess session.Session) (ViewResponse, error) {
	st, err := s.state(ctx, sid, sess)
	if err != nil {
		return ViewResponse{}, err
	}
	st.updateFilters(func(f *Filters) { *f = DefaultFilters() })
	return BuildView(st.Snapshot()), nil
}

func (s *service) SetTab(ctx context.Context, sid string, sess session.Session, tab Tab) (ViewResponse, error) {
	if tab != TabTasks && tab != TabOps {
		return ViewResponse{}, dashboarderrors.ErrInvalidTab
	}
	st, err := s.state(ctx, sid, sess)
	if err != nil {
		return ViewResponse{}, err
	}
	st.setTab(tab)
	return BuildView(st.Snapshot()), nil
}

func (s *service) FinishTask(ctx context.Context, sid string, sess session.Session, taskID string) (task.Task, error) {
	st, err := s.state(ctx, sid, sess)
	if err != nil {
		return task.Task{}, err
	}
	t, ok := st.finish(taskID)
	if !ok {
		return task.Task{}, dashboarderrors.ErrTaskNotFound
	}
	contextutil.GetLogger(ctx, s.logger).Info("task finished",
		zap.String("task_id", taskID),
		zap.String("username", sess.Username),
	)
	return t, nil
}

func (s *service) Close(sid string) {
	s.registry.Drop(sid)
}

// state mengambil state session; state yang belum ada (mis. setelah restart) dibuat lalu dimuat.
func (s *service) state(ctx context.Context, sid string, sess session.Session) (*State, error) {
	if sid == "" || !sess.Valid() {
		return nil, dashboarderrors.ErrNoSession
	}
	st, created := s.registry.GetOrCreate(sid, sess)
	if !created {
		st.setSession(sess)
		return st, nil
	}
	// error sudah tercatat di state
	_ = s.load(ctx, st)
	return st, nil
}

func (s *service) load(ctx context.Context, st *State) error {
	log := contextutil.GetLogger(ctx, s.logger)
	st.beginLoad()

	var (
		tasks []task.Task
		att   []attendance.Attendance
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tasks, err = s.taskRepo.FindAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		att, err = s.attendanceRepo.FindAll(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		st.failLoad(CloudErrorPrefix + errorMessage(err))
		log.Warn("dashboard refresh failed", zap.Error(err))
		return err
	}

	st.applyLoad(tasks, att, s.now())
	log.Debug("dashboard refreshed",
		zap.Int("tasks", len(tasks)),
		zap.Int("attendance", len(att)),
	)
	return nil
}

func errorMessage(err error) string {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

func normalizeFilter(v string) string {
	if v == "" {
		return FilterAll
	}
	return v
}
