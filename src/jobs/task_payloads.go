package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeMonthlyRollup = "attendance:rollup"

type MonthlyRollupPayload struct {
	FacultyID string `json:"faculty_id"`
	Month     string `json:"month"` // "2006-01"
}

// NewMonthlyRollupTask สร้าง task คำนวณสรุปรายเดือนใหม่แล้วอุ่น cache
func NewMonthlyRollupTask(facultyID, month string) (*asynq.Task, error) {
	payload, err := json.Marshal(MonthlyRollupPayload{FacultyID: facultyID, Month: month})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeMonthlyRollup, payload), nil
}
