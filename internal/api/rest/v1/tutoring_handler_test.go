//go:build unit
// +build unit

package v1

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/OscarMeza24/SistemaDeTurorias/internal/domain/accounts"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/domain/tutoring"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testTeacherID    = "6f1c2b9a-2d3e-4c5f-8a7b-9e0d1c2b3a04"
	testInstructorID = "7c2d3e4f-5a6b-4c7d-8e9f-0a1b2c3d4e5f"
	testSubjectID    = "5d1e2f3a-4b5c-4d6e-8f70-8192a3b4c5d6"
	testRequestID    = "3e4f5a6b-7c8d-4e9f-a0b1-c2d3e4f5a6b7"
)

func testRequest(status string) *tutoring.Request {
	now := time.Now()
	return &tutoring.Request{
		ID:              testRequestID,
		StudentID:       testUserID,
		InstructorID:    testInstructorID,
		SubjectID:       testSubjectID,
		PreferredDate:   "2026-11-03",
		PreferredTime:   "10:00",
		Message:         "Necesito repasar integrales",
		UrgencyLevel:    tutoring.UrgencyMedium,
		Status:          status,
		DateTimeCreated: now,
		ExpiresAt:       now.Add(7 * 24 * time.Hour),
	}
}

func TestTutoringHandler_Request(t *testing.T) {
	payload := TutoringRequestPayload{
		InstructorID:  testInstructorID,
		SubjectID:     testSubjectID,
		PreferredDate: "2026-11-03",
		PreferredTime: "10:00",
		Message:       "Necesito repasar integrales",
	}

	t.Run("filed for the session user", func(t *testing.T) {
		s := newTestServices()
		s.withSession("student", testUserID, accounts.RoleStudent)
		s.tutoring.On("Request", mock.Anything, testUserID, mock.MatchedBy(func(in *tutoring.RequestInput) bool {
			return in.InstructorID == testInstructorID && in.PreferredTime == "10:00"
		})).Return(testRequest(tutoring.RequestPending), nil)
		r := newTestRouter(t, s)

		w := serve(r, withBearer(testutil.NewJSONRequest(t, http.MethodPost, "/pedir_tutoria/", payload), "student"))

		require.Equal(t, http.StatusCreated, w.Code)
		var body TutoringRequestResponse
		testutil.DecodeJSON(t, w, &body)
		assert.Equal(t, tutoring.RequestPending, body.Status)
		s.tutoring.AssertExpectations(t)
	})

	t.Run("subject not taught", func(t *testing.T) {
		s := newTestServices()
		s.withSession("student", testUserID, accounts.RoleStudent)
		s.tutoring.On("Request", mock.Anything, mock.Anything, mock.Anything).Return(nil, tutoring.ErrSubjectNotTaught)
		r := newTestRouter(t, s)

		w := serve(r, withBearer(testutil.NewJSONRequest(t, http.MethodPost, "/pedir_tutoria/", payload), "student"))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTutoringHandler_ListOwn(t *testing.T) {
	s := newTestServices()
	s.withSession("student", testUserID, accounts.RoleStudent)
	s.tutoring.On("ListForStudent", mock.Anything, testUserID).
		Return([]*tutoring.Request{testRequest(tutoring.RequestAccepted), testRequest(tutoring.RequestPending)}, nil)
	r := newTestRouter(t, s)

	w := serve(r, withBearer(testutil.NewJSONRequest(t, http.MethodGet, "/pedir_tutoria/", nil), "student"))

	require.Equal(t, http.StatusOK, w.Code)
	var body []TutoringRequestResponse
	testutil.DecodeJSON(t, w, &body)
	assert.Len(t, body, 2)
}

func TestTutoringHandler_ListPending(t *testing.T) {
	s := newTestServices()
	s.withSession("teacher", testTeacherID, accounts.RoleTeacher)
	s.tutoring.On("ListPendingForInstructor", mock.Anything, testTeacherID).
		Return([]*tutoring.Request{testRequest(tutoring.RequestPending)}, nil)
	r := newTestRouter(t, s)

	w := serve(r, withBearer(testutil.NewJSONRequest(t, http.MethodGet, "/aceptar_tutoria/", nil), "teacher"))

	require.Equal(t, http.StatusOK, w.Code)
	var body []TutoringRequestResponse
	testutil.DecodeJSON(t, w, &body)
	require.Len(t, body, 1)
	assert.Equal(t, testRequestID, body[0].ID)
}

func TestTutoringHandler_Accept(t *testing.T) {
	payload := AcceptTutoringPayload{
		RequestID:       testRequestID,
		Title:           "Repaso de integrales",
		ScheduledDate:   "2026-11-03",
		StartTime:       "10:00",
		EndTime:         "11:00",
		DurationMinutes: 60,
	}

	t.Run("session scheduled", func(t *testing.T) {
		s := newTestServices()
		s.withSession("teacher", testTeacherID, accounts.RoleTeacher)
		s.tutoring.On("Accept", mock.Anything, testTeacherID, mock.MatchedBy(func(in *tutoring.AcceptInput) bool {
			return in.RequestID == testRequestID && in.EndTime == "11:00"
		})).Return(&tutoring.Session{
			ID:              "8f9a0b1c-2d3e-4f5a-8b7c-8d9e0f1a2b3c",
			RequestID:       testRequestID,
			StudentID:       testUserID,
			InstructorID:    testInstructorID,
			SubjectID:       testSubjectID,
			Title:           payload.Title,
			ScheduledDate:   payload.ScheduledDate,
			StartTime:       payload.StartTime,
			EndTime:         payload.EndTime,
			DurationMinutes: 60,
			Status:          tutoring.SessionConfirmed,
			LocationType:    tutoring.LocationVirtual,
		}, nil)
		r := newTestRouter(t, s)

		w := serve(r, withBearer(testutil.NewJSONRequest(t, http.MethodPost, "/aceptar_tutoria/", payload), "teacher"))

		require.Equal(t, http.StatusCreated, w.Code)
		var body TutoringSessionResponse
		testutil.DecodeJSON(t, w, &body)
		assert.Equal(t, tutoring.SessionConfirmed, body.Status)
		assert.Equal(t, tutoring.LocationVirtual, body.LocationType)
	})

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"addressed to another instructor", tutoring.ErrForbidden, http.StatusForbidden},
		{"unknown request", fmt.Errorf("request %s: %w", testRequestID, tutoring.ErrNotFound), http.StatusNotFound},
		{"already answered", tutoring.ErrInvalidState, http.StatusConflict},
		{"expired", tutoring.ErrExpired, http.StatusConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServices()
			s.withSession("teacher", testTeacherID, accounts.RoleTeacher)
			s.tutoring.On("Accept", mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err)
			r := newTestRouter(t, s)

			w := serve(r, withBearer(testutil.NewJSONRequest(t, http.MethodPost, "/aceptar_tutoria/", payload), "teacher"))

			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestTutoringHandler_Reject(t *testing.T) {
	t.Run("rejected", func(t *testing.T) {
		s := newTestServices()
		s.withSession("teacher", testTeacherID, accounts.RoleTeacher)
		s.tutoring.On("Reject", mock.Anything, testTeacherID, testRequestID).Return(testRequest(tutoring.RequestRejected), nil)
		r := newTestRouter(t, s)

		w := serve(r, withBearer(testutil.NewJSONRequest(t, http.MethodPost, "/rechazar_tutoria/", RequestIDPayload{RequestID: testRequestID}), "teacher"))

		require.Equal(t, http.StatusOK, w.Code)
		var body TutoringRequestResponse
		testutil.DecodeJSON(t, w, &body)
		assert.Equal(t, tutoring.RequestRejected, body.Status)
	})

	t.Run("malformed request id", func(t *testing.T) {
		s := newTestServices()
		s.withSession("teacher", testTeacherID, accounts.RoleTeacher)
		r := newTestRouter(t, s)

		w := serve(r, withBearer(testutil.NewJSONRequest(t, http.MethodPost, "/rechazar_tutoria/", RequestIDPayload{RequestID: "42"}), "teacher"))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		s.tutoring.AssertNotCalled(t, "Reject", mock.Anything, mock.Anything, mock.Anything)
	})
}
