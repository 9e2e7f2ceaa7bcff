package dashboard

import (
	"sort"
	"strings"

	"go-yourtask/internal/attendance"
	"go-yourtask/internal/session"
	"go-yourtask/internal/task"
)

// NoFmsGroup adalah key grup untuk task tanpa FMS ID.
const NoFmsGroup = "TANPA-FMS"

type FilterOptions struct {
	Hubs     []string `json:"hubs"`
	Couriers []string `json:"couriers"`
	Shifts   []string `json:"shifts"`
}

type TaskGroup struct {
	FmsID        string      `json:"fms_id"`
	CourierID    string      `json:"courier_id"`
	PackageCount int         `json:"package_count"`
	Tasks        []task.Task `json:"tasks"`
}

// BuildOptions menghitung pilihan filter dari seluruh data yang termuat.
func BuildOptions(tasks []task.Task, att []attendance.Attendance) FilterOptions {
	hubs := make([]string, 0, len(tasks))
	couriers := make([]string, 0, len(tasks))
	for _, t := range tasks {
		hubs = append(hubs, t.Hub)
		couriers = append(couriers, t.Name)
	}
	shifts := make([]string, 0, len(att))
	for _, a := range att {
		shifts = append(shifts, a.Shift)
	}
	return FilterOptions{
		Hubs:     distinctSorted(hubs),
		Couriers: distinctSorted(couriers),
		Shifts:   distinctSorted(shifts),
	}
}

func distinctSorted(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func visibleTo(sess session.Session, t task.Task) bool {
	if sess.Role == session.RoleOps {
		return true
	}
	return strings.EqualFold(t.CourierID, sess.Username)
}

// ScopeTasks: ops melihat semua task, kurir hanya task miliknya.
func ScopeTasks(sess session.Session, tasks []task.Task) []task.Task {
	out := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		if visibleTo(sess, t) {
			out = append(out, t)
		}
	}
	return out
}

// FilterTasks menerapkan status, hub, kurir dan pencarian (hanya di tab tasks).
func FilterTasks(tasks []task.Task, f Filters, tab Tab) []task.Task {
	search := strings.ToLower(f.Search)
	out := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		if !isAll(f.Status) && string(t.EffectiveStatus()) != f.Status {
			continue
		}
		if !isAll(f.Hub) && t.Hub != f.Hub {
			continue
		}
		if !isAll(f.Courier) && t.Name != f.Courier {
			continue
		}
		if search != "" && tab == TabTasks &&
			!strings.Contains(strings.ToLower(t.TaskID), search) &&
			!strings.Contains(strings.ToLower(t.FmsID), search) &&
			!strings.Contains(strings.ToLower(t.Name), search) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// GroupByFms mengelompokkan task per FMS ID dengan urutan kemunculan pertama.
func GroupByFms(tasks []task.Task) []TaskGroup {
	groups := make([]TaskGroup, 0)
	index := make(map[string]int)
	for _, t := range tasks {
		key := t.FmsID
		if key == "" {
			key = NoFmsGroup
		}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, TaskGroup{FmsID: key, CourierID: t.CourierID})
		}
		groups[i].Tasks = append(groups[i].Tasks, t)
		groups[i].PackageCount += t.PackageCount
	}
	return groups
}

// FilterAttendance menerapkan filter shift dan pencarian (hanya di tab ops).
func FilterAttendance(att []attendance.Attendance, f Filters, tab Tab) []attendance.Attendance {
	search := strings.ToLower(f.Search)
	out := make([]attendance.Attendance, 0, len(att))
	for _, a := range att {
		if !isAll(f.Shift) && a.Shift != f.Shift {
			continue
		}
		if search != "" && tab == TabOps &&
			!strings.Contains(strings.ToLower(a.StaffName), search) &&
			!strings.Contains(strings.ToLower(a.Jabatan), search) {
			continue
		}
		out = append(out, a)
	}
	return out
}
