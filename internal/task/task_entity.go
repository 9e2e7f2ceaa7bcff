package task

type Status string

const (
	StatusPending  Status = "pending"
	StatusFinished Status = "finished"
)

// Task adalah satu baris penugasan kurir. TaskID dan CourierID selalu terisi.
type Task struct {
	TaskID       string `json:"task_id"`
	FmsID        string `json:"fms_id"`
	OperatorName string `json:"operator_name,omitempty"`
	Hub          string `json:"hub"`
	Name         string `json:"name"`
	CourierID    string `json:"courier_id"`
	PackageCount int    `json:"package_count"`
	Status       Status `json:"status"`
}

// EffectiveStatus menganggap status kosong sebagai pending.
func (t Task) EffectiveStatus() Status {
	if t.Status == "" {
		return StatusPending
	}
	return t.Status
}
