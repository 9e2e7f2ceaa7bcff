package task

import "go-yourtask/internal/sheet"

// MapTasks memetakan sheet tugas. Baris tanpa task id atau courier id dibuang.
func MapTasks(rows [][]string, table sheet.Table) []Task {
	body := sheet.Body(rows)
	out := make([]Task, 0, len(body))
	for _, cells := range body {
		r := table.Bind(cells)
		if !r.HasKeys() {
			continue
		}
		out = append(out, Task{
			TaskID:       r.String(sheet.FieldTaskID),
			FmsID:        r.String(sheet.FieldFmsID),
			OperatorName: r.String(sheet.FieldOperatorName),
			Hub:          r.String(sheet.FieldHub),
			Name:         r.String(sheet.FieldCourierName),
			CourierID:    r.String(sheet.FieldCourierID),
			PackageCount: r.Int(sheet.FieldPackageCount),
			Status:       StatusPending,
		})
	}
	return out
}
