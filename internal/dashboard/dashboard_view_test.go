package dashboard_test

import (
	"testing"

	"go-yourtask/internal/attendance"
	"go-yourtask/internal/dashboard"
	"go-yourtask/internal/session"
	"go-yourtask/internal/task"

	"github.com/stretchr/testify/assert"
)

func sampleTasks() []task.Task {
	return []task.Task{
		{TaskID: "T1", FmsID: "FMS-A", Hub: "Cakung", Name: "Budi", CourierID: "BUDI2", PackageCount: 3},
		{TaskID: "T2", FmsID: "", Hub: "Cakung", Name: "Budi", CourierID: "BUDI2", PackageCount: 1},
		{TaskID: "T3", FmsID: "FMS-B", Hub: "Bekasi", Name: "Sari", CourierID: "SARI7", PackageCount: 5},
		{TaskID: "T4", FmsID: "FMS-A", Hub: "Cakung", Name: "Sari", CourierID: "SARI7", PackageCount: 2, Status: task.StatusFinished},
		{TaskID: "T5", FmsID: "", Hub: "Bekasi", Name: "Budi", CourierID: "budi2", PackageCount: 4},
	}
}

func sampleAttendance() []attendance.Attendance {
	return []attendance.Attendance{
		{StaffName: "Andi", Jabatan: "Admin", Shift: "Pagi"},
		{StaffName: "Wati", Jabatan: "Sorter", Shift: "Malam"},
		{StaffName: "Joko", Jabatan: "Admin", Shift: ""},
	}
}

func TestBuildOptions(t *testing.T) {
	opts := dashboard.BuildOptions(sampleTasks(), sampleAttendance())

	assert.Equal(t, []string{"Bekasi", "Cakung"}, opts.Hubs)
	assert.Equal(t, []string{"Budi", "Sari"}, opts.Couriers)
	assert.Equal(t, []string{"Malam", "Pagi"}, opts.Shifts)
}

func TestBuildOptions_Empty(t *testing.T) {
	opts := dashboard.BuildOptions(nil, nil)

	assert.NotNil(t, opts.Hubs)
	assert.Empty(t, opts.Hubs)
	assert.Empty(t, opts.Couriers)
	assert.Empty(t, opts.Shifts)
}

func TestScopeTasks(t *testing.T) {
	t.Run("ops sees everything", func(t *testing.T) {
		got := dashboard.ScopeTasks(session.Session{Username: "rudi1", Role: session.RoleOps}, sampleTasks())
		assert.Len(t, got, 5)
	})

	t.Run("kurir sees own tasks case-insensitively", func(t *testing.T) {
		got := dashboard.ScopeTasks(session.Session{Username: "Budi2", Role: session.RoleKurir}, sampleTasks())
		ids := make([]string, 0, len(got))
		for _, tk := range got {
			ids = append(ids, tk.TaskID)
		}
		assert.Equal(t, []string{"T1", "T2", "T5"}, ids)
	})
}

func TestFilterTasks(t *testing.T) {
	tasks := sampleTasks()

	t.Run("all filters pass everything", func(t *testing.T) {
		got := dashboard.FilterTasks(tasks, dashboard.DefaultFilters(), dashboard.TabTasks)
		assert.Len(t, got, len(tasks))
	})

	t.Run("status pending includes empty status", func(t *testing.T) {
		f := dashboard.DefaultFilters()
		f.Status = "pending"
		got := dashboard.FilterTasks(tasks, f, dashboard.TabTasks)
		assert.Len(t, got, 4)
	})

	t.Run("status finished", func(t *testing.T) {
		f := dashboard.DefaultFilters()
		f.Status = "finished"
		got := dashboard.FilterTasks(tasks, f, dashboard.TabTasks)
		assert.Len(t, got, 1)
		assert.Equal(t, "T4", got[0].TaskID)
	})

	t.Run("hub and courier", func(t *testing.T) {
		f := dashboard.DefaultFilters()
		f.Hub = "Cakung"
		f.Courier = "Sari"
		got := dashboard.FilterTasks(tasks, f, dashboard.TabTasks)
		assert.Len(t, got, 1)
		assert.Equal(t, "T4", got[0].TaskID)
	})

	t.Run("search matches fms id case-insensitively", func(t *testing.T) {
		f := dashboard.DefaultFilters()
		f.Search = "fms-b"
		got := dashboard.FilterTasks(tasks, f, dashboard.TabTasks)
		assert.Len(t, got, 1)
		assert.Equal(t, "T3", got[0].TaskID)
	})

	t.Run("search ignored on ops tab", func(t *testing.T) {
		f := dashboard.DefaultFilters()
		f.Search = "zzz"
		got := dashboard.FilterTasks(tasks, f, dashboard.TabOps)
		assert.Len(t, got, len(tasks))
	})

	t.Run("no match returns empty non-nil", func(t *testing.T) {
		f := dashboard.DefaultFilters()
		f.Hub = "Depok"
		got := dashboard.FilterTasks(tasks, f, dashboard.TabTasks)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestGroupByFms(t *testing.T) {
	tasks := sampleTasks()
	groups := dashboard.GroupByFms(tasks)

	keys := make([]string, 0, len(groups))
	for _, g := range groups {
		keys = append(keys, g.FmsID)
	}
	assert.Equal(t, []string{"FMS-A", dashboard.NoFmsGroup, "FMS-B"}, keys)

	assert.Equal(t, 5, groups[0].PackageCount)
	assert.Equal(t, "BUDI2", groups[0].CourierID)
	assert.Equal(t, 5, groups[1].PackageCount)

	// gabungan semua grup sama dengan input
	var total int
	seen := map[string]int{}
	for _, g := range groups {
		for _, tk := range g.Tasks {
			seen[tk.TaskID]++
			total++
		}
	}
	assert.Equal(t, len(tasks), total)
	for _, tk := range tasks {
		assert.Equal(t, 1, seen[tk.TaskID])
	}
}

func TestGroupByFms_Empty(t *testing.T) {
	groups := dashboard.GroupByFms(nil)
	assert.NotNil(t, groups)
	assert.Empty(t, groups)
}

func TestFilterAttendance(t *testing.T) {
	att := sampleAttendance()

	t.Run("shift", func(t *testing.T) {
		f := dashboard.DefaultFilters()
		f.Shift = "Pagi"
		got := dashboard.FilterAttendance(att, f, dashboard.TabOps)
		assert.Len(t, got, 1)
		assert.Equal(t, "Andi", got[0].StaffName)
	})

	t.Run("search on jabatan in ops tab", func(t *testing.T) {
		f := dashboard.DefaultFilters()
		f.Search = "admin"
		got := dashboard.FilterAttendance(att, f, dashboard.TabOps)
		assert.Len(t, got, 2)
	})

	t.Run("search ignored on tasks tab", func(t *testing.T) {
		f := dashboard.DefaultFilters()
		f.Search = "admin"
		got := dashboard.FilterAttendance(att, f, dashboard.TabTasks)
		assert.Len(t, got, 3)
	})
}

func TestBuildView(t *testing.T) {
	snap := dashboard.Snapshot{
		Session:    session.Session{Username: "BUDI2", Name: "Budi", Role: session.RoleKurir},
		Tasks:      sampleTasks(),
		Attendance: sampleAttendance(),
		Tab:        dashboard.TabTasks,
		Filters:    dashboard.DefaultFilters(),
	}

	view := dashboard.BuildView(snap)

	assert.Equal(t, 3, view.Summary.TotalTasks)
	assert.Equal(t, 3, view.Summary.PendingTasks)
	assert.Equal(t, 8, view.Summary.TotalPackages)
	// opsi dihitung dari seluruh task, bukan hanya milik kurir
	assert.Equal(t, []string{"Budi", "Sari"}, view.Options.Couriers)
	assert.Len(t, view.TaskGroups, 2)
	assert.Nil(t, view.LoadedAt)
}
