package models

// สถานะรายวันของอาจารย์
const (
	StatusPresent  = "present"
	StatusAbsent   = "absent"
	StatusLeave    = "leave"
	StatusWeekend  = "weekend"
	StatusHoliday  = "holiday"
	StatusUpcoming = "upcoming"
)

// DayStatus ผลการ resolve หนึ่งวัน ไม่ persist ลง DB คำนวณใหม่ทุกครั้ง
type DayStatus struct {
	Date             string  `json:"date"` // "2006-01-02"
	Weekday          string  `json:"weekday"`
	Status           string  `json:"status"`
	TeachingHours    float64 `json:"teachingHours"`
	NonTeachingHours float64 `json:"nonTeachingHours"`
	TotalHours       float64 `json:"totalHours"`
	OvertimeHours    float64 `json:"overtimeHours"`
	Notes            string  `json:"notes,omitempty"`
}

// MonthlySummary สรุปรายเดือน derive จากลำดับ DayStatus
type MonthlySummary struct {
	Month                string  `json:"month"` // "2006-01"
	PresentDays          int     `json:"presentDays"`
	LeaveDays            int     `json:"leaveDays"`
	AbsentDays           int     `json:"absentDays"`
	WeekendDays          int     `json:"weekendDays"`
	HolidayDays          int     `json:"holidayDays"`
	UpcomingDays         int     `json:"upcomingDays"`
	TotalWorkingDays     int     `json:"totalWorkingDays"`
	AttendancePercentage int     `json:"attendancePercentage"`
	TotalTeachingHours   float64 `json:"totalTeachingHours"`
	TotalNonTeaching     float64 `json:"totalNonTeachingHours"`
	TotalHours           float64 `json:"totalHours"`
	TotalOvertimeHours   float64 `json:"totalOvertimeHours"`
}

// Holiday วันหยุดราชการ/วันหยุดสถาบัน
type Holiday struct {
	Date string `bson:"date" json:"date"` // "2006-01-02"
	Name string `bson:"name" json:"name"`
}
