package attendance

// Attendance adalah satu baris jadwal shift. Tidak punya key selain posisi baris.
type Attendance struct {
	StaffName   string `json:"staff_name"`
	Jabatan     string `json:"jabatan"`
	Shift       string `json:"shift"`
	Description string `json:"description"`
}
