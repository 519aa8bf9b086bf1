//go:build unit
// +build unit

package tutoring

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPendingRequest(created time.Time) *Request {
	return &Request{
		ID:              uuid.NewString(),
		StudentID:       uuid.NewString(),
		InstructorID:    uuid.NewString(),
		SubjectID:       uuid.NewString(),
		PreferredDate:   "2025-05-20",
		PreferredTime:   "15:00",
		Message:         "Necesito ayuda con integrales",
		UrgencyLevel:    UrgencyMedium,
		Status:          RequestPending,
		DateTimeCreated: created,
		ExpiresAt:       created.Add(7 * 24 * time.Hour),
	}
}

func TestRequest_Validate(t *testing.T) {
	now := time.Now()
	require.NoError(t, newPendingRequest(now).Validate())

	r := newPendingRequest(now)
	r.PreferredTime = "3pm"
	require.Error(t, r.Validate())

	r = newPendingRequest(now)
	r.UrgencyLevel = "critical"
	require.Error(t, r.Validate())

	r = newPendingRequest(now)
	r.ExpiresAt = now.Add(-time.Hour)
	require.Error(t, r.Validate(), "expiry must follow creation")
}

func TestRequest_IsExpired(t *testing.T) {
	created := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	r := newPendingRequest(created)

	assert.False(t, r.IsExpired(created.Add(time.Hour)))
	assert.True(t, r.IsExpired(r.ExpiresAt))
	assert.True(t, r.IsExpired(r.ExpiresAt.Add(time.Minute)))

	r.Status = RequestAccepted
	assert.False(t, r.IsExpired(r.ExpiresAt.Add(time.Minute)), "only pending requests expire")
}

func TestAcceptInput_Validate(t *testing.T) {
	in := AcceptInput{
		RequestID:       uuid.NewString(),
		Title:           "Integrales por partes",
		ScheduledDate:   "2025-05-21",
		StartTime:       "15:00",
		EndTime:         "16:00",
		DurationMinutes: 60,
		Price:           25,
	}
	require.NoError(t, in.Validate())

	in.LocationType = "moon"
	require.Error(t, in.Validate())

	in.LocationType = LocationInPerson
	in.DurationMinutes = 0
	require.Error(t, in.Validate())
}

func TestAcceptInput_EndBeforeStart(t *testing.T) {
	in := AcceptInput{
		RequestID:       uuid.NewString(),
		Title:           "Integrales",
		ScheduledDate:   "2025-05-21",
		StartTime:       "16:00",
		EndTime:         "15:00",
		DurationMinutes: 60,
	}
	err := in.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "EndTime")
}
