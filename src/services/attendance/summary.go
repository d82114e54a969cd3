package attendance

import (
	"math"

	"Backend-CampusPortal/src/models"
)

// SummarizeMonth ยุบลำดับ DayStatus ของเดือนเป็นสรุปรายเดือน
// totalWorkingDays = วันที่ไม่ใช่ weekend/holiday/upcoming
// attendancePercentage = round(present/totalWorkingDays*100) และเป็น 0 เมื่อไม่มีวันทำงาน
func SummarizeMonth(month string, days []models.DayStatus) models.MonthlySummary {
	sum := models.MonthlySummary{Month: month}

	for _, d := range days {
		switch d.Status {
		case models.StatusPresent:
			sum.PresentDays++
		case models.StatusLeave:
			sum.LeaveDays++
		case models.StatusAbsent:
			sum.AbsentDays++
		case models.StatusWeekend:
			sum.WeekendDays++
		case models.StatusHoliday:
			sum.HolidayDays++
		case models.StatusUpcoming:
			sum.UpcomingDays++
		}

		sum.TotalTeachingHours += d.TeachingHours
		sum.TotalNonTeaching += d.NonTeachingHours
		sum.TotalHours += d.TotalHours
		sum.TotalOvertimeHours += d.OvertimeHours
	}

	sum.TotalWorkingDays = sum.PresentDays + sum.LeaveDays + sum.AbsentDays

	if sum.TotalWorkingDays > 0 {
		sum.AttendancePercentage = int(math.Round(float64(sum.PresentDays) / float64(sum.TotalWorkingDays) * 100))
	}

	return sum
}
