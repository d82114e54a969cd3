package workhours

import (
	"context"
	"errors"
	"testing"

	"Backend-CampusPortal/src/models"
	"Backend-CampusPortal/src/services/workhours"
	"Backend-CampusPortal/test"

	"github.com/stretchr/testify/assert"
)

func TestWorkLogValidation(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("Work Log Validation Tests")
	defer suiteResult.PrintSummary()

	ctx := context.Background()

	base := workhours.LogHoursRequest{
		FacultyID:     "64a1f0c2e8b4a53d9c1e7b20",
		Date:          "2025-12-15",
		ActivityType:  models.ActivityMeeting,
		DurationHours: 2,
		Description:   "ประชุมหลักสูตร",
	}

	// duration ศูนย์ต้องโดน validation ก่อนถึงชั้นรวมยอด
	t.Run("TestZeroDurationRejected", func(t *testing.T) {
		timer := test.NewTestTimer("Zero Duration Rejected")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Zero Duration Rejected",
				Duration: duration,
				Passed:   true,
			})
		}()

		req := base
		req.DurationHours = 0

		_, err := workhours.LogHours(ctx, req)

		var appErr *models.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, models.ErrKindValidation, appErr.Kind)
	})

	t.Run("TestNegativeDurationRejected", func(t *testing.T) {
		timer := test.NewTestTimer("Negative Duration Rejected")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Negative Duration Rejected",
				Duration: duration,
				Passed:   true,
			})
		}()

		req := base
		req.DurationHours = -1.5

		_, err := workhours.LogHours(ctx, req)

		var appErr *models.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, models.ErrKindValidation, appErr.Kind)
	})

	t.Run("TestUnknownActivityTypeRejected", func(t *testing.T) {
		timer := test.NewTestTimer("Unknown Activity Type Rejected")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Unknown Activity Type Rejected",
				Duration: duration,
				Passed:   true,
			})
		}()

		req := base
		req.ActivityType = "Vacation"

		_, err := workhours.LogHours(ctx, req)

		var appErr *models.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, models.ErrKindValidation, appErr.Kind)
	})

	t.Run("TestBadDateFormatRejected", func(t *testing.T) {
		timer := test.NewTestTimer("Bad Date Format Rejected")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Bad Date Format Rejected",
				Duration: duration,
				Passed:   true,
			})
		}()

		req := base
		req.Date = "15/12/2025"

		_, err := workhours.LogHours(ctx, req)

		var appErr *models.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, models.ErrKindValidation, appErr.Kind)
	})
}
