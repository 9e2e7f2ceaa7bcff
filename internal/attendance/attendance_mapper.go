package attendance

import "go-yourtask/internal/sheet"

func MapAttendance(rows [][]string, table sheet.Table) []Attendance {
	body := sheet.Body(rows)
	out := make([]Attendance, 0, len(body))
	for _, cells := range body {
		r := table.Bind(cells)
		if !r.HasKeys() {
			continue
		}
		out = append(out, Attendance{
			StaffName:   r.String(sheet.FieldStaffName),
			Jabatan:     r.String(sheet.FieldJabatan),
			Shift:       r.String(sheet.FieldShift),
			Description: r.String(sheet.FieldDescription),
		})
	}
	return out
}
