//go:build unit
// +build unit

package app

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/OscarMeza24/SistemaDeTurorias/internal/domain/accounts"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/domain/catalog"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/pkg/testutil"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/pkg/validators"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type accountFixture struct {
	users       *MockUserRepository
	instructors *MockInstructorRepository
	svc         accounts.AccountService
}

func newAccountFixture(t *testing.T) *accountFixture {
	t.Helper()
	f := &accountFixture{
		users:       new(MockUserRepository),
		instructors: new(MockInstructorRepository),
	}
	svc, err := NewAccountService(f.users, f.instructors, 25, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	svc.(*accountService).hashCost = bcrypt.MinCost
	f.svc = svc
	return f
}

func studentInput() *accounts.RegisterInput {
	return &accounts.RegisterInput{
		Email:       "Ana@ULEAM.edu.ec",
		Password:    "s3cure-pass",
		FirstName:   "Ana",
		LastName:    "Cedeño",
		Role:        accounts.RoleStudent,
		StudentCode: "E1234",
		Semester:    3,
	}
}

func teacherInput() *accounts.RegisterInput {
	return &accounts.RegisterInput{
		Email:      "luis@uleam.edu.ec",
		Password:   "s3cure-pass",
		FirstName:  "Luis",
		LastName:   "Mendoza",
		Role:       accounts.RoleTeacher,
		Department: "Física",
	}
}

func TestAccountService_RegisterStudent(t *testing.T) {
	f := newAccountFixture(t)
	ctx := context.Background()

	f.users.On("GetByEmail", ctx, "ana@uleam.edu.ec").Return(nil, accounts.ErrNotFound)
	f.users.On("Create", ctx, mock.AnythingOfType("*accounts.User")).Return(nil)

	user, err := f.svc.Register(ctx, studentInput())
	require.NoError(t, err)

	assert.Equal(t, "ana@uleam.edu.ec", user.Email)
	assert.Equal(t, accounts.RoleStudent, user.Role)
	assert.Equal(t, "E1234", user.StudentCode)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "s3cure-pass", user.PasswordHash)
	assert.True(t, checkPassword(user.PasswordHash, "s3cure-pass"))
	f.instructors.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
}

func TestAccountService_RegisterDuplicateEmail(t *testing.T) {
	f := newAccountFixture(t)
	ctx := context.Background()

	f.users.On("GetByEmail", ctx, "ana@uleam.edu.ec").Return(&accounts.User{ID: uuid.NewString()}, nil)

	_, err := f.svc.Register(ctx, studentInput())
	assert.ErrorIs(t, err, accounts.ErrEmailExists)
	f.users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAccountService_RegisterRejectsAdminRole(t *testing.T) {
	f := newAccountFixture(t)

	in := studentInput()
	in.Role = accounts.RoleAdmin

	_, err := f.svc.Register(context.Background(), in)
	assert.Error(t, err)
	f.users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAccountService_RegisterPasswordLimitCountsBytes(t *testing.T) {
	f := newAccountFixture(t)

	in := studentInput()
	in.Password = strings.Repeat("ñ", 40)

	_, err := f.svc.Register(context.Background(), in)
	require.Error(t, err)
	assert.ErrorIs(t, err, validators.ErrValidation)
	assert.Contains(t, err.Error(), "Tag: bcrypt_password")
	f.users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAccountService_RegisterMultibytePasswordWithinLimit(t *testing.T) {
	f := newAccountFixture(t)
	ctx := context.Background()

	f.users.On("GetByEmail", ctx, "ana@uleam.edu.ec").Return(nil, accounts.ErrNotFound)
	f.users.On("Create", ctx, mock.AnythingOfType("*accounts.User")).Return(nil)

	in := studentInput()
	in.Password = strings.Repeat("ñ", 36)

	user, err := f.svc.Register(ctx, in)
	require.NoError(t, err)
	assert.True(t, checkPassword(user.PasswordHash, in.Password))
}

func TestHashPassword_TooLongIsValidationError(t *testing.T) {
	_, err := hashPassword(strings.Repeat("a", 73), bcrypt.MinCost)
	assert.ErrorIs(t, err, validators.ErrValidation)
}

func TestAccountService_RegisterTeacherCreatesProfile(t *testing.T) {
	f := newAccountFixture(t)
	ctx := context.Background()

	f.users.On("GetByEmail", ctx, "luis@uleam.edu.ec").Return(nil, accounts.ErrNotFound)
	f.users.On("Create", ctx, mock.AnythingOfType("*accounts.User")).Return(nil)
	f.instructors.On("GetByEmail", ctx, "luis@uleam.edu.ec").Return(nil, catalog.ErrNotFound)

	var created *catalog.Instructor
	f.instructors.On("Create", ctx, mock.AnythingOfType("*catalog.Instructor")).
		Run(func(args mock.Arguments) { created = args.Get(1).(*catalog.Instructor) }).
		Return(nil)

	user, err := f.svc.Register(ctx, teacherInput())
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.Equal(t, 25.0, created.HourlyRate)
	assert.Equal(t, "Física", created.Department)
	assert.True(t, created.IsOwnedBy(user.ID))
}

func TestAccountService_RegisterTeacherLinksExistingProfile(t *testing.T) {
	f := newAccountFixture(t)
	ctx := context.Background()

	existing := &catalog.Instructor{ID: uuid.NewString(), Email: "luis@uleam.edu.ec", HourlyRate: 40}

	f.users.On("GetByEmail", ctx, "luis@uleam.edu.ec").Return(nil, accounts.ErrNotFound)
	f.users.On("Create", ctx, mock.AnythingOfType("*accounts.User")).Return(nil)
	f.instructors.On("GetByEmail", ctx, "luis@uleam.edu.ec").Return(existing, nil)
	f.instructors.On("UpdateByID", ctx, existing).Return(nil)

	user, err := f.svc.Register(ctx, teacherInput())
	require.NoError(t, err)

	assert.True(t, existing.IsOwnedBy(user.ID))
	assert.Equal(t, 40.0, existing.HourlyRate)
	f.instructors.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAccountService_RegisterTeacherRollsBackUser(t *testing.T) {
	f := newAccountFixture(t)
	ctx := context.Background()

	f.users.On("GetByEmail", ctx, "luis@uleam.edu.ec").Return(nil, accounts.ErrNotFound)
	f.users.On("Create", ctx, mock.AnythingOfType("*accounts.User")).Return(nil)
	f.users.On("DeleteByID", ctx, mock.AnythingOfType("string")).Return(nil)
	f.instructors.On("GetByEmail", ctx, "luis@uleam.edu.ec").Return(nil, catalog.ErrNotFound)
	f.instructors.On("Create", ctx, mock.Anything).Return(errors.New("db down"))

	_, err := f.svc.Register(ctx, teacherInput())
	require.Error(t, err)
	f.users.AssertCalled(t, "DeleteByID", ctx, mock.AnythingOfType("string"))
}

func TestAccountService_Authenticate(t *testing.T) {
	ctx := context.Background()
	hash, err := hashPassword("s3cure-pass", bcrypt.MinCost)
	require.NoError(t, err)

	active := &accounts.User{ID: uuid.NewString(), Email: "ana@uleam.edu.ec", PasswordHash: hash, IsActive: true}
	inactive := &accounts.User{ID: uuid.NewString(), Email: "old@uleam.edu.ec", PasswordHash: hash}

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{"success", " ANA@uleam.edu.ec", "s3cure-pass", nil},
		{"wrong password", "ana@uleam.edu.ec", "nope-nope", accounts.ErrInvalidCredentials},
		{"unknown email", "ghost@uleam.edu.ec", "s3cure-pass", accounts.ErrInvalidCredentials},
		{"inactive", "old@uleam.edu.ec", "s3cure-pass", accounts.ErrInactiveUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAccountFixture(t)
			f.users.On("GetByEmail", ctx, "ana@uleam.edu.ec").Return(active, nil).Maybe()
			f.users.On("GetByEmail", ctx, "old@uleam.edu.ec").Return(inactive, nil).Maybe()
			f.users.On("GetByEmail", ctx, "ghost@uleam.edu.ec").Return(nil, accounts.ErrNotFound).Maybe()

			user, err := f.svc.Authenticate(ctx, tt.email, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				assert.Equal(t, active.ID, user.ID)
			}
		})
	}
}

func TestAccountService_CreateAdmin(t *testing.T) {
	f := newAccountFixture(t)
	ctx := context.Background()

	f.users.On("GetByEmail", ctx, "root@uleam.edu.ec").Return(nil, accounts.ErrNotFound)
	f.users.On("Create", ctx, mock.AnythingOfType("*accounts.User")).Return(nil)

	admin, err := f.svc.CreateAdmin(ctx, "Root@uleam.edu.ec", "admin-pass", "Admin", "Tutorías")
	require.NoError(t, err)
	assert.Equal(t, accounts.RoleAdmin, admin.Role)
	assert.True(t, checkPassword(admin.PasswordHash, "admin-pass"))

	_, err = f.svc.CreateAdmin(ctx, "root2@uleam.edu.ec", "short", "Admin", "Tutorías")
	assert.Error(t, err)
}
