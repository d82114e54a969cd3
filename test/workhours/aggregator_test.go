package workhours

import (
	"testing"
	"time"

	"Backend-CampusPortal/src/models"
	"Backend-CampusPortal/src/services/workhours"
	"Backend-CampusPortal/test"

	"github.com/stretchr/testify/assert"
)

func floatPtr(f float64) *float64 { return &f }

func TestAggregateDaily(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("Work Hour Aggregation Tests")
	defer suiteResult.PrintSummary()

	cfg := workhours.Config{SessionHours: 1.5, StandardDayHours: 8}

	// 3 คาบ = 4.5 ชม. สอน + log 2 ชม. = 6.5 รวม ไม่มี overtime
	t.Run("TestSessionAndLogSameDay", func(t *testing.T) {
		timer := test.NewTestTimer("Session And Log Same Day")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Session And Log Same Day",
				Duration: duration,
				Passed:   true,
			})
			test.PerformanceAssertion(t, "Session And Log Same Day", duration, 10*time.Millisecond)
		}()

		sessions := []models.TeachingSessionRecord{
			{Date: "2025-12-15", Subject: "คณิตศาสตร์"},
			{Date: "2025-12-15", Subject: "ฟิสิกส์"},
			{Date: "2025-12-15", Subject: "เคมี"},
		}
		logs := []models.WorkLogRecord{
			{Date: "2025-12-15", ActivityType: models.ActivityMeeting, DurationHours: 2},
		}

		out := workhours.AggregateDaily(sessions, logs, nil, cfg)

		assert.Len(t, out, 1)
		assert.Equal(t, "2025-12-15", out[0].Date)
		assert.Equal(t, 3, out[0].SessionCount)
		assert.InDelta(t, 4.5, out[0].TeachingHours, 0.0001)
		assert.InDelta(t, 2.0, out[0].NonTeachingHours, 0.0001)
		assert.InDelta(t, 6.5, out[0].TotalHours, 0.0001)
		assert.InDelta(t, 0.0, out[0].OvertimeHours, 0.0001)
	})

	// คาบที่ระบุ duration เองต้องใช้ค่านั้นแทนค่า config
	t.Run("TestExplicitSessionDuration", func(t *testing.T) {
		timer := test.NewTestTimer("Explicit Session Duration")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Explicit Session Duration",
				Duration: duration,
				Passed:   true,
			})
		}()

		sessions := []models.TeachingSessionRecord{
			{Date: "2025-12-16", DurationHours: floatPtr(3)},
			{Date: "2025-12-16"},
		}

		out := workhours.AggregateDaily(sessions, nil, nil, cfg)

		assert.Len(t, out, 1)
		assert.InDelta(t, 4.5, out[0].TeachingHours, 0.0001)
	})

	// เกิน 8 ชม. ส่วนเกินเป็น overtime
	t.Run("TestOvertimeAboveStandardDay", func(t *testing.T) {
		timer := test.NewTestTimer("Overtime Above Standard Day")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Overtime Above Standard Day",
				Duration: duration,
				Passed:   true,
			})
		}()

		sessions := []models.TeachingSessionRecord{
			{Date: "2025-12-17"}, {Date: "2025-12-17"}, {Date: "2025-12-17"}, {Date: "2025-12-17"},
		}
		logs := []models.WorkLogRecord{
			{Date: "2025-12-17", ActivityType: models.ActivityResearch, DurationHours: 3.5},
		}

		out := workhours.AggregateDaily(sessions, logs, nil, cfg)

		assert.Len(t, out, 1)
		assert.InDelta(t, 9.5, out[0].TotalHours, 0.0001)
		assert.InDelta(t, 1.5, out[0].OvertimeHours, 0.0001)
	})

	// ส่ง days มาต้องได้ครบทุกวัน วันว่างเป็นศูนย์ ไม่หาย
	t.Run("TestDenseOutputWithDays", func(t *testing.T) {
		timer := test.NewTestTimer("Dense Output With Days")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Dense Output With Days",
				Duration: duration,
				Passed:   true,
			})
		}()

		days := []string{"2025-12-15", "2025-12-16", "2025-12-17"}
		sessions := []models.TeachingSessionRecord{{Date: "2025-12-16"}}

		out := workhours.AggregateDaily(sessions, nil, days, cfg)

		assert.Len(t, out, 3)
		assert.Equal(t, "2025-12-15", out[0].Date)
		assert.InDelta(t, 0.0, out[0].TotalHours, 0.0001)
		assert.InDelta(t, 1.5, out[1].TeachingHours, 0.0001)
		assert.InDelta(t, 0.0, out[2].TotalHours, 0.0001)
	})

	// ไม่ส่ง days ได้เฉพาะวันที่มี record เรียงตามวันที่
	t.Run("TestSparseOutputSorted", func(t *testing.T) {
		timer := test.NewTestTimer("Sparse Output Sorted")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Sparse Output Sorted",
				Duration: duration,
				Passed:   true,
			})
		}()

		logs := []models.WorkLogRecord{
			{Date: "2025-12-20", ActivityType: models.ActivityMentoring, DurationHours: 1},
			{Date: "2025-12-10", ActivityType: models.ActivityMeeting, DurationHours: 2},
		}

		out := workhours.AggregateDaily(nil, logs, nil, cfg)

		assert.Len(t, out, 2)
		assert.Equal(t, "2025-12-10", out[0].Date)
		assert.Equal(t, "2025-12-20", out[1].Date)
	})

	// log เก่าที่ duration ไม่บวกต้องถูกข้าม ไม่ทำยอดพัง
	t.Run("TestNonPositiveLogSkipped", func(t *testing.T) {
		timer := test.NewTestTimer("Non-Positive Log Skipped")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Non-Positive Log Skipped",
				Duration: duration,
				Passed:   true,
			})
		}()

		logs := []models.WorkLogRecord{
			{Date: "2025-12-18", ActivityType: models.ActivityOther, DurationHours: 0},
			{Date: "2025-12-18", ActivityType: models.ActivityOther, DurationHours: -2},
			{Date: "2025-12-18", ActivityType: models.ActivityOther, DurationHours: 1.5},
		}

		out := workhours.AggregateDaily(nil, logs, nil, cfg)

		assert.Len(t, out, 1)
		assert.InDelta(t, 1.5, out[0].NonTeachingHours, 0.0001)
	})
}

func TestLoadConfig(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("Work Hour Config Tests")
	defer suiteResult.PrintSummary()

	t.Run("TestDefaultConfig", func(t *testing.T) {
		timer := test.NewTestTimer("Default Config")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Default Config",
				Duration: duration,
				Passed:   true,
			})
		}()

		cfg := workhours.DefaultConfig()

		assert.InDelta(t, 1.5, cfg.SessionHours, 0.0001)
		assert.InDelta(t, 8.0, cfg.StandardDayHours, 0.0001)
	})

	t.Run("TestEnvOverride", func(t *testing.T) {
		timer := test.NewTestTimer("Env Override")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Env Override",
				Duration: duration,
				Passed:   true,
			})
		}()

		t.Setenv("SESSION_HOURS", "2")
		t.Setenv("STANDARD_DAY_HOURS", "7")

		cfg := workhours.LoadConfig()

		assert.InDelta(t, 2.0, cfg.SessionHours, 0.0001)
		assert.InDelta(t, 7.0, cfg.StandardDayHours, 0.0001)
	})

	t.Run("TestInvalidEnvFallsBack", func(t *testing.T) {
		timer := test.NewTestTimer("Invalid Env Falls Back")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Invalid Env Falls Back",
				Duration: duration,
				Passed:   true,
			})
		}()

		t.Setenv("SESSION_HOURS", "abc")
		t.Setenv("STANDARD_DAY_HOURS", "-1")

		cfg := workhours.LoadConfig()

		assert.InDelta(t, 1.5, cfg.SessionHours, 0.0001)
		assert.InDelta(t, 8.0, cfg.StandardDayHours, 0.0001)
	})
}
