package attendance

import (
	"testing"
	"time"

	"Backend-CampusPortal/src/models"
	"Backend-CampusPortal/src/services/attendance"
	"Backend-CampusPortal/test"

	"github.com/stretchr/testify/assert"
)

func repeatStatus(status string, n int) []models.DayStatus {
	out := make([]models.DayStatus, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, models.DayStatus{Status: status})
	}
	return out
}

func TestSummarizeMonth(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("Monthly Summary Tests")
	defer suiteResult.PrintSummary()

	// เดือน 31 วัน: present 20, leave 3, absent 6, weekend 2
	t.Run("TestAttendancePercentageRounding", func(t *testing.T) {
		timer := test.NewTestTimer("Attendance Percentage Rounding")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Attendance Percentage Rounding",
				Duration: duration,
				Passed:   true,
			})
			test.PerformanceAssertion(t, "Attendance Percentage Rounding", duration, 10*time.Millisecond)
		}()

		var days []models.DayStatus
		days = append(days, repeatStatus(models.StatusPresent, 20)...)
		days = append(days, repeatStatus(models.StatusLeave, 3)...)
		days = append(days, repeatStatus(models.StatusAbsent, 6)...)
		days = append(days, repeatStatus(models.StatusWeekend, 2)...)

		sum := attendance.SummarizeMonth("2025-12", days)

		assert.Equal(t, "2025-12", sum.Month)
		assert.Equal(t, 20, sum.PresentDays)
		assert.Equal(t, 3, sum.LeaveDays)
		assert.Equal(t, 6, sum.AbsentDays)
		assert.Equal(t, 2, sum.WeekendDays)
		// working days = present + leave + absent (weekend/holiday/upcoming ไม่นับ)
		assert.Equal(t, 29, sum.TotalWorkingDays)
		// 20/29 = 68.97 → ปัดเป็น 69
		assert.Equal(t, 69, sum.AttendancePercentage)
	})

	// เดือนที่ยังไม่มีวันทำงานเลย (ต้นเดือน / เดือนอนาคต) ห้ามหารศูนย์
	t.Run("TestZeroWorkingDays", func(t *testing.T) {
		timer := test.NewTestTimer("Zero Working Days")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Zero Working Days",
				Duration: duration,
				Passed:   true,
			})
		}()

		var days []models.DayStatus
		days = append(days, repeatStatus(models.StatusUpcoming, 22)...)
		days = append(days, repeatStatus(models.StatusWeekend, 8)...)
		days = append(days, repeatStatus(models.StatusHoliday, 1)...)

		sum := attendance.SummarizeMonth("2026-03", days)

		assert.Equal(t, 0, sum.TotalWorkingDays)
		assert.Equal(t, 0, sum.AttendancePercentage)
		assert.Equal(t, 22, sum.UpcomingDays)
		assert.Equal(t, 8, sum.WeekendDays)
		assert.Equal(t, 1, sum.HolidayDays)
	})

	t.Run("TestHourTotals", func(t *testing.T) {
		timer := test.NewTestTimer("Hour Totals")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Hour Totals",
				Duration: duration,
				Passed:   true,
			})
		}()

		days := []models.DayStatus{
			{Status: models.StatusPresent, TeachingHours: 4.5, NonTeachingHours: 2, TotalHours: 6.5},
			{Status: models.StatusPresent, TeachingHours: 6, NonTeachingHours: 3.5, TotalHours: 9.5, OvertimeHours: 1.5},
			{Status: models.StatusWeekend},
		}

		sum := attendance.SummarizeMonth("2025-11", days)

		assert.InDelta(t, 10.5, sum.TotalTeachingHours, 0.0001)
		assert.InDelta(t, 5.5, sum.TotalNonTeaching, 0.0001)
		assert.InDelta(t, 16.0, sum.TotalHours, 0.0001)
		assert.InDelta(t, 1.5, sum.TotalOvertimeHours, 0.0001)
	})

	// ผลรวม status ทุกประเภทต้องเท่าจำนวนวันในเดือนเสมอ
	t.Run("TestStatusCountsSumToMonthLength", func(t *testing.T) {
		timer := test.NewTestTimer("Status Counts Sum To Month Length")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Status Counts Sum To Month Length",
				Duration: duration,
				Passed:   true,
			})
		}()

		days := attendance.MonthDays(2025, time.December)
		statuses := attendance.ResolveDays(days, attendance.ResolveInput{
			Today:    "2025-12-15",
			Holidays: map[string]string{"2025-12-05": "วันพ่อแห่งชาติ", "2025-12-10": "วันรัฐธรรมนูญ"},
		})

		sum := attendance.SummarizeMonth("2025-12", statuses)

		counted := sum.PresentDays + sum.LeaveDays + sum.AbsentDays +
			sum.WeekendDays + sum.HolidayDays + sum.UpcomingDays
		assert.Equal(t, len(days), counted)
		assert.GreaterOrEqual(t, sum.AttendancePercentage, 0)
		assert.LessOrEqual(t, sum.AttendancePercentage, 100)
	})

	t.Run("TestFullAttendanceIs100Percent", func(t *testing.T) {
		timer := test.NewTestTimer("Full Attendance Is 100 Percent")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Full Attendance Is 100 Percent",
				Duration: duration,
				Passed:   true,
			})
		}()

		sum := attendance.SummarizeMonth("2025-10", repeatStatus(models.StatusPresent, 22))

		assert.Equal(t, 22, sum.TotalWorkingDays)
		assert.Equal(t, 100, sum.AttendancePercentage)
	})
}
