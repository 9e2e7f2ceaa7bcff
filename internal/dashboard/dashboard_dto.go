package dashboard

import (
	"time"

	"go-yourtask/internal/attendance"
	"go-yourtask/internal/session"
	"go-yourtask/internal/task"
)

// UpdateFiltersRequest hanya mengubah field yang dikirim.
type UpdateFiltersRequest struct {
	Status  *string `json:"status" binding:"omitempty,oneof=all pending finished"`
	Hub     *string `json:"hub" binding:"omitempty,max=100"`
	Courier *string `json:"courier" binding:"omitempty,max=100"`
	Shift   *string `json:"shift" binding:"omitempty,max=100"`
	Search  *string `json:"search" binding:"omitempty,max=100"`
}

type TabRequest struct {
	Tab string `json:"tab" binding:"required,oneof=tasks ops"`
}

type Summary struct {
	TotalTasks    int `json:"total_tasks"`
	PendingTasks  int `json:"pending_tasks"`
	FinishedTasks int `json:"finished_tasks"`
	TotalPackages int `json:"total_packages"`
	Attendance    int `json:"attendance"`
}

type ViewResponse struct {
	User       session.Session         `json:"user"`
	Tab        Tab                     `json:"tab"`
	Filters    Filters                 `json:"filters"`
	Options    FilterOptions           `json:"options"`
	TaskGroups []TaskGroup             `json:"task_groups"`
	Attendance []attendance.Attendance `json:"attendance"`
	Summary    Summary                 `json:"summary"`
	IsLoading  bool                    `json:"is_loading"`
	Error      string                  `json:"error,omitempty"`
	LoadedAt   *time.Time              `json:"loaded_at,omitempty"`
}

// BuildView menyusun view-model dari snapshot state.
func BuildView(snap Snapshot) ViewResponse {
	scoped := ScopeTasks(snap.Session, snap.Tasks)
	filtered := FilterTasks(scoped, snap.Filters, snap.Tab)
	att := FilterAttendance(snap.Attendance, snap.Filters, snap.Tab)

	var sum Summary
	sum.TotalTasks = len(scoped)
	for _, t := range scoped {
		if t.EffectiveStatus() == task.StatusFinished {
			sum.FinishedTasks++
		} else {
			sum.PendingTasks++
		}
		sum.TotalPackages += t.PackageCount
	}
	sum.Attendance = len(att)

	view := ViewResponse{
		User:       snap.Session,
		Tab:        snap.Tab,
		Filters:    snap.Filters,
		Options:    BuildOptions(snap.Tasks, snap.Attendance),
		TaskGroups: GroupByFms(filtered),
		Attendance: att,
		Summary:    sum,
		IsLoading:  snap.Loading,
		Error:      snap.Err,
	}
	if !snap.LoadedAt.IsZero() {
		at := snap.LoadedAt
		view.LoadedAt = &at
	}
	return view
}
