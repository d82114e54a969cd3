package attendance

import (
	"testing"
	"time"

	"Backend-CampusPortal/src/models"
	"Backend-CampusPortal/src/services/attendance"
	"Backend-CampusPortal/test"

	"github.com/stretchr/testify/assert"
)

func day(date string, weekday time.Weekday) attendance.CalendarDay {
	return attendance.CalendarDay{Date: date, Weekday: weekday}
}

func TestResolveDayStatus(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("Day Status Resolver Tests")
	defer suiteResult.PrintSummary()

	checkInAt := time.Date(2025, 12, 30, 8, 45, 0, 0, time.UTC)
	checkOutAt := time.Date(2025, 12, 30, 17, 10, 0, 0, time.UTC)

	// Check-in wins over everything else
	t.Run("TestCheckInGivesPresent", func(t *testing.T) {
		timer := test.NewTestTimer("Check-In Gives Present")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Check-In Gives Present",
				Duration: duration,
				Passed:   true,
			})
			test.PerformanceAssertion(t, "Check-In Gives Present", duration, 10*time.Millisecond)
		}()

		in := attendance.ResolveInput{
			Today: "2025-12-31",
			CheckIns: map[string]models.CheckInRecord{
				"2025-12-30": {Date: "2025-12-30", CheckInTime: &checkInAt, CheckOutTime: &checkOutAt},
			},
		}

		ds := attendance.ResolveDayStatus(day("2025-12-30", time.Tuesday), in)

		assert.Equal(t, models.StatusPresent, ds.Status)
		assert.Empty(t, ds.Notes)
	})

	// เช็คอินแล้วยังไม่เช็คเอาท์ ต้อง present พร้อม note
	t.Run("TestCheckInWithoutCheckOut", func(t *testing.T) {
		timer := test.NewTestTimer("Check-In Without Check-Out")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Check-In Without Check-Out",
				Duration: duration,
				Passed:   true,
			})
		}()

		in := attendance.ResolveInput{
			Today: "2025-12-30",
			CheckIns: map[string]models.CheckInRecord{
				"2025-12-30": {Date: "2025-12-30", CheckInTime: &checkInAt},
			},
		}

		ds := attendance.ResolveDayStatus(day("2025-12-30", time.Tuesday), in)

		assert.Equal(t, models.StatusPresent, ds.Status)
		assert.NotEmpty(t, ds.Notes)
	})

	// เช็คอินชนะใบลาที่อนุมัติแล้วในวันเดียวกัน
	t.Run("TestCheckInBeatsApprovedLeave", func(t *testing.T) {
		timer := test.NewTestTimer("Check-In Beats Approved Leave")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Check-In Beats Approved Leave",
				Duration: duration,
				Passed:   true,
			})
		}()

		in := attendance.ResolveInput{
			Today: "2025-12-31",
			CheckIns: map[string]models.CheckInRecord{
				"2025-12-30": {Date: "2025-12-30", CheckInTime: &checkInAt, CheckOutTime: &checkOutAt},
			},
			Leaves: []models.LeaveRecord{
				{StartDate: "2025-12-29", EndDate: "2025-12-31", Status: models.LeaveApproved, Reason: "ลาป่วย"},
			},
		}

		ds := attendance.ResolveDayStatus(day("2025-12-30", time.Tuesday), in)
		assert.Equal(t, models.StatusPresent, ds.Status)
	})

	t.Run("TestApprovedLeaveCoversDay", func(t *testing.T) {
		timer := test.NewTestTimer("Approved Leave Covers Day")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Approved Leave Covers Day",
				Duration: duration,
				Passed:   true,
			})
		}()

		in := attendance.ResolveInput{
			Today: "2025-12-31",
			Leaves: []models.LeaveRecord{
				{StartDate: "2025-12-29", EndDate: "2025-12-31", Status: models.LeaveApproved, Reason: "ลาป่วย"},
			},
		}

		// ขอบช่วงทั้งสองด้านต้องนับเป็นวันลา (inclusive)
		for _, d := range []string{"2025-12-29", "2025-12-30", "2025-12-31"} {
			ds := attendance.ResolveDayStatus(day(d, time.Monday), in)
			assert.Equal(t, models.StatusLeave, ds.Status, "date %s", d)
			assert.Equal(t, "ลาป่วย", ds.Notes)
		}

		// นอกช่วงต้องไม่ติดลา
		ds := attendance.ResolveDayStatus(day("2026-01-01", time.Thursday), in)
		assert.NotEqual(t, models.StatusLeave, ds.Status)
	})

	// ใบลา pending / rejected ต้องไม่มีผล
	t.Run("TestNonApprovedLeaveIgnored", func(t *testing.T) {
		timer := test.NewTestTimer("Non-Approved Leave Ignored")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Non-Approved Leave Ignored",
				Duration: duration,
				Passed:   true,
			})
		}()

		in := attendance.ResolveInput{
			Today: "2025-12-31",
			Leaves: []models.LeaveRecord{
				{StartDate: "2025-12-30", EndDate: "2025-12-30", Status: models.LeavePending},
				{StartDate: "2025-12-30", EndDate: "2025-12-30", Status: models.LeaveRejected},
			},
		}

		ds := attendance.ResolveDayStatus(day("2025-12-30", time.Tuesday), in)
		assert.Equal(t, models.StatusAbsent, ds.Status)
	})

	t.Run("TestHolidayBeatsWeekendRules", func(t *testing.T) {
		timer := test.NewTestTimer("Holiday Beats Weekend Rules")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Holiday Beats Weekend Rules",
				Duration: duration,
				Passed:   true,
			})
		}()

		in := attendance.ResolveInput{
			Today:    "2026-01-05",
			Holidays: map[string]string{"2026-01-01": "วันขึ้นปีใหม่"},
		}

		ds := attendance.ResolveDayStatus(day("2026-01-01", time.Thursday), in)
		assert.Equal(t, models.StatusHoliday, ds.Status)
		assert.Equal(t, "วันขึ้นปีใหม่", ds.Notes)
	})

	t.Run("TestWeekendStatus", func(t *testing.T) {
		timer := test.NewTestTimer("Weekend Status")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Weekend Status",
				Duration: duration,
				Passed:   true,
			})
		}()

		in := attendance.ResolveInput{Today: "2025-12-31"}

		sat := attendance.ResolveDayStatus(day("2025-12-27", time.Saturday), in)
		sun := attendance.ResolveDayStatus(day("2025-12-28", time.Sunday), in)

		assert.Equal(t, models.StatusWeekend, sat.Status)
		assert.Equal(t, models.StatusWeekend, sun.Status)
	})

	// วันทำงานในอนาคตต้องเป็น upcoming ไม่ใช่ absent
	t.Run("TestFutureWeekdayIsUpcoming", func(t *testing.T) {
		timer := test.NewTestTimer("Future Weekday Is Upcoming")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Future Weekday Is Upcoming",
				Duration: duration,
				Passed:   true,
			})
		}()

		in := attendance.ResolveInput{Today: "2025-12-15"}

		future := attendance.ResolveDayStatus(day("2025-12-16", time.Tuesday), in)
		today := attendance.ResolveDayStatus(day("2025-12-15", time.Monday), in)
		past := attendance.ResolveDayStatus(day("2025-12-12", time.Friday), in)

		assert.Equal(t, models.StatusUpcoming, future.Status)
		assert.Equal(t, models.StatusAbsent, today.Status, "today without check-in counts as absent")
		assert.Equal(t, models.StatusAbsent, past.Status)
	})
}

func TestResolveDays(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("Resolve Days Tests")
	defer suiteResult.PrintSummary()

	// หนึ่ง input วันต้องได้หนึ่ง output วันเสมอ ไม่มีวันหาย
	t.Run("TestOneStatusPerDay", func(t *testing.T) {
		timer := test.NewTestTimer("One Status Per Day")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "One Status Per Day",
				Duration: duration,
				Passed:   true,
			})
		}()

		days := attendance.MonthDays(2025, time.December)
		statuses := attendance.ResolveDays(days, attendance.ResolveInput{Today: "2025-12-31"})

		assert.Len(t, statuses, len(days))
		for i, ds := range statuses {
			assert.Equal(t, days[i].Date, ds.Date)
			assert.NotEmpty(t, ds.Status)
		}
	})
}
