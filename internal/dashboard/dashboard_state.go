package dashboard

import (
	"context"
	"sync"
	"time"

	"go-yourtask/internal/attendance"
	"go-yourtask/internal/session"
	"go-yourtask/internal/task"

	"go.uber.org/zap"
)

type Tab string

const (
	TabTasks Tab = "tasks"
	TabOps   Tab = "ops"
)

// FilterAll berarti filter tidak aktif.
const FilterAll = "all"

type Filters struct {
	Status  string `json:"status"`
	Hub     string `json:"hub"`
	Courier string `json:"courier"`
	Shift   string `json:"shift"`
	Search  string `json:"search"`
}

func DefaultFilters() Filters {
	return Filters{
		Status:  FilterAll,
		Hub:     FilterAll,
		Courier: FilterAll,
		Shift:   FilterAll,
	}
}

func isAll(v string) bool {
	return v == "" || v == FilterAll
}

// State adalah state dashboard milik satu session login.
// Dibangun ulang dari sheet setiap refresh; status finished hanya hidup di sini.
type State struct {
	mu         sync.RWMutex
	session    session.Session
	tasks      []task.Task
	attendance []attendance.Attendance
	tab        Tab
	filters    Filters
	loading    bool
	err        string
	loadedAt   time.Time
}

func NewState(sess session.Session) *State {
	return &State{
		session: sess,
		tab:     TabTasks,
		filters: DefaultFilters(),
	}
}

// Snapshot adalah salinan read-only State untuk membangun view.
type Snapshot struct {
	Session    session.Session
	Tasks      []task.Task
	Attendance []attendance.Attendance
	Tab        Tab
	Filters    Filters
	Loading    bool
	Err        string
	LoadedAt   time.Time
}

func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		Session:    s.session,
		Tasks:      append([]task.Task(nil), s.tasks...),
		Attendance: append([]attendance.Attendance(nil), s.attendance...),
		Tab:        s.tab,
		Filters:    s.filters,
		Loading:    s.loading,
		Err:        s.err,
		LoadedAt:   s.loadedAt,
	}
}

func (s *State) beginLoad() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = true
	s.err = ""
}

// applyLoad mengganti data. Status finished otomatis kembali ke pending karena data baru.
func (s *State) applyLoad(tasks []task.Task, att []attendance.Attendance, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = tasks
	s.attendance = att
	s.loading = false
	s.err = ""
	s.loadedAt = at
}

// failLoad mencatat error tanpa menyentuh data sebelumnya.
func (s *State) failLoad(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.err = msg
}

func (s *State) setSession(sess session.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = sess
}

func (s *State) updateFilters(fn func(f *Filters)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.filters)
}

func (s *State) setTab(tab Tab) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tab = tab
	s.filters = DefaultFilters()
}

// finish menandai semua task dengan id tersebut yang terlihat oleh session.
func (s *State) finish(taskID string) (task.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		first task.Task
		found bool
	)
	for i := range s.tasks {
		t := &s.tasks[i]
		if t.TaskID != taskID || !visibleTo(s.session, *t) {
			continue
		}
		t.Status = task.StatusFinished
		if !found {
			first = *t
			found = true
		}
	}
	return first, found
}

// Registry memegang State per session id. State yang tidak disentuh lebih
// lama dari idleTTL dibuang oleh Sweep; akses berikutnya memuat ulang dari sheet.
type Registry struct {
	mu      sync.Mutex
	states  map[string]*registryEntry
	idleTTL time.Duration
	now     func() time.Time
	logger  *zap.Logger
}

type registryEntry struct {
	state    *State
	lastSeen time.Time
}

// NewRegistry membuat registry; idleTTL <= 0 mematikan eviction.
func NewRegistry(idleTTL time.Duration, logger ...*zap.Logger) *Registry {
	l := zap.L().Named("dashboard.registry")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.registry")
	}
	return &Registry{
		states:  make(map[string]*registryEntry),
		idleTTL: idleTTL,
		now:     time.Now,
		logger:  l,
	}
}

// GetOrCreate mengembalikan state yang ada, atau membuat yang baru (created = true).
func (r *Registry) GetOrCreate(sid string, sess session.Session) (*State, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	if e, ok := r.states[sid]; ok {
		e.lastSeen = now
		return e.state, false
	}
	st := NewState(sess)
	r.states[sid] = &registryEntry{state: st, lastSeen: now}
	return st, true
}

func (r *Registry) Drop(sid string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.states, sid)
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.states)
}

// Sweep membuang state yang terakhir disentuh lebih dari idleTTL sebelum now.
func (r *Registry) Sweep(now time.Time) int {
	if r.idleTTL <= 0 {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	evicted := 0
	for sid, e := range r.states {
		if now.Sub(e.lastSeen) > r.idleTTL {
			delete(r.states, sid)
			evicted++
		}
	}
	return evicted
}

// Run menjalankan Sweep setiap interval sampai ctx selesai.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	if r.idleTTL <= 0 || interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Sweep(r.now()); n > 0 {
				r.logger.Info("idle dashboard states evicted",
					zap.Int("evicted", n),
					zap.Int("remaining", r.Len()),
				)
			}
		}
	}
}
