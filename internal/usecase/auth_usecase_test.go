package usecase_test

import (
	"context"
	"testing"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepoMock) FindByID(ctx context.Context, userID int64) (*model.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

type stubIssuer struct{ token string }

func (i stubIssuer) Issue(userID int64, now time.Time) (string, time.Time, error) {
	return i.token, now.Add(time.Hour), nil
}

func newAuthUsecase(users *UserRepoMock) *usecase.AuthUsecase {
	return usecase.NewAuthUsecase(
		users,
		usecase.NewBcryptHasher(bcrypt.MinCost),
		stubIssuer{token: "signed-token"},
		fixedClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)},
	)
}

func TestNormalizeEmail(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		// only the domain part is lower-cased
		{"Test1@EXAMPLE.com", "Test1@example.com"},
		{"user@Example.COM", "user@example.com"},
		{"UPPER@lower.org", "UPPER@lower.org"},
		{"  padded@Example.com  ", "padded@example.com"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, usecase.NormalizeEmail(tc.in))
	}
}

func TestAuthUsecase_Register_NormalizesEmailDomain(t *testing.T) {
	ctx := context.Background()

	users := new(UserRepoMock)
	uc := newAuthUsecase(users)

	users.On("FindByEmail", mock.Anything, "Test1@example.com").Return(nil, repo.ErrUserNotFound)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.Email == "Test1@example.com" && u.IsActive && u.PasswordHash != "password123"
	})).Return(nil)

	out, err := uc.Register(ctx, usecase.RegisterInput{
		Email:    "Test1@EXAMPLE.com",
		Name:     "Test",
		Password: "password123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Test1@example.com", out.Email)
	users.AssertExpectations(t)
}

func TestAuthUsecase_Register_EmptyEmail(t *testing.T) {
	ctx := context.Background()

	users := new(UserRepoMock)
	uc := newAuthUsecase(users)

	_, err := uc.Register(ctx, usecase.RegisterInput{Email: "", Password: "password123"})

	assertErrContains(t, err, "user must have an email address.")
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthUsecase_Register_ShortPassword(t *testing.T) {
	ctx := context.Background()

	users := new(UserRepoMock)
	uc := newAuthUsecase(users)

	_, err := uc.Register(ctx, usecase.RegisterInput{Email: "a@example.com", Password: "short"})

	assertErrContains(t, err, "password too short")
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthUsecase_Register_DuplicateEmail(t *testing.T) {
	ctx := context.Background()

	users := new(UserRepoMock)
	uc := newAuthUsecase(users)

	users.On("FindByEmail", mock.Anything, "a@example.com").Return(&model.User{ID: 1, Email: "a@example.com"}, nil)

	_, err := uc.Register(ctx, usecase.RegisterInput{Email: "a@example.com", Password: "password123"})

	assertErrContains(t, err, "email already used")
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthUsecase_Login_Success(t *testing.T) {
	ctx := context.Background()

	users := new(UserRepoMock)
	uc := newAuthUsecase(users)

	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	users.On("FindByEmail", mock.Anything, "a@example.com").Return(&model.User{
		ID: 1, Email: "a@example.com", PasswordHash: string(hash), IsActive: true,
	}, nil)

	out, err := uc.Login(ctx, usecase.LoginInput{Email: "a@Example.COM", Password: "password123"})

	assert.NoError(t, err)
	assert.Equal(t, "signed-token", out.Token)
}

func TestAuthUsecase_Login_WrongPassword(t *testing.T) {
	ctx := context.Background()

	users := new(UserRepoMock)
	uc := newAuthUsecase(users)

	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	users.On("FindByEmail", mock.Anything, "a@example.com").Return(&model.User{
		ID: 1, Email: "a@example.com", PasswordHash: string(hash), IsActive: true,
	}, nil)

	_, err := uc.Login(ctx, usecase.LoginInput{Email: "a@example.com", Password: "wrong-password"})

	assertErrContains(t, err, "unable to authenticate with provided credentials")
}

func TestAuthUsecase_Login_UnknownEmailSharesWrongPasswordMessage(t *testing.T) {
	ctx := context.Background()

	users := new(UserRepoMock)
	uc := newAuthUsecase(users)

	users.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, repo.ErrUserNotFound)

	_, err := uc.Login(ctx, usecase.LoginInput{Email: "ghost@example.com", Password: "password123"})

	assertErrContains(t, err, "unable to authenticate with provided credentials")
}

func TestAuthUsecase_Login_InactiveUser(t *testing.T) {
	ctx := context.Background()

	users := new(UserRepoMock)
	uc := newAuthUsecase(users)

	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	users.On("FindByEmail", mock.Anything, "a@example.com").Return(&model.User{
		ID: 1, Email: "a@example.com", PasswordHash: string(hash), IsActive: false,
	}, nil)

	_, err := uc.Login(ctx, usecase.LoginInput{Email: "a@example.com", Password: "password123"})

	assertErrContains(t, err, "unable to authenticate with provided credentials")
}

func TestAuthUsecase_UpdateMe_EmailStaysImmutable(t *testing.T) {
	ctx := context.Background()

	users := new(UserRepoMock)
	uc := newAuthUsecase(users)

	users.On("FindByID", mock.Anything, int64(1)).Return(&model.User{
		ID: 1, Email: "a@example.com", Name: "Old",
	}, nil)
	users.On("Update", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.Email == "a@example.com" && u.Name == "New"
	})).Return(nil)

	name := "New"
	out, err := uc.UpdateMe(ctx, 1, usecase.UpdateMeInput{Name: &name})

	assert.NoError(t, err)
	assert.Equal(t, "a@example.com", out.Email)
	assert.Equal(t, "New", out.Name)
	users.AssertExpectations(t)
}

func TestJWTIssuer_IssueAndExpiry(t *testing.T) {
	issuer := usecase.NewJWTIssuer("test-secret", 24*time.Hour)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	token, expiresAt, err := issuer.Issue(42, now)

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, now.Add(24*time.Hour), expiresAt)
}
