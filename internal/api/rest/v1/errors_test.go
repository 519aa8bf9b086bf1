//go:build unit
// +build unit

package v1

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/OscarMeza24/SistemaDeTurorias/internal/domain/accounts"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/domain/catalog"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/domain/notifications"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/domain/tutoring"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/pkg/validators"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: [Field: Name, Tag: required]", validators.ErrValidation), http.StatusBadRequest},
		{tutoring.ErrSubjectNotTaught, http.StatusBadRequest},
		{accounts.ErrInvalidCredentials, http.StatusUnauthorized},
		{fmt.Errorf("parse: %w", accounts.ErrInvalidToken), http.StatusUnauthorized},
		{accounts.ErrRevokedToken, http.StatusUnauthorized},
		{accounts.ErrInactiveUser, http.StatusForbidden},
		{tutoring.ErrForbidden, http.StatusForbidden},
		{fmt.Errorf("program %s: %w", "x", catalog.ErrNotFound), http.StatusNotFound},
		{accounts.ErrNotFound, http.StatusNotFound},
		{tutoring.ErrNotFound, http.StatusNotFound},
		{notifications.ErrNotFound, http.StatusNotFound},
		{catalog.ErrConflict, http.StatusConflict},
		{accounts.ErrEmailExists, http.StatusConflict},
		{tutoring.ErrInvalidState, http.StatusConflict},
		{tutoring.ErrExpired, http.StatusConflict},
		{errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}
