package usecase

import (
	"context"
	"net/http"
	"net/mail"
	"strconv"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// 平文パスワードからハッシュへ。
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(hash string, plain string) error
}

type BcryptHasher struct {
	cost int
}

func NewBcryptHasher(cost int) *BcryptHasher {
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (h *BcryptHasher) Verify(hash string, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}

// 現在の時間
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// TokenIssuer turns a user id into a signed access token.
type TokenIssuer interface {
	Issue(userID int64, now time.Time) (string, time.Time, error)
}

type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTIssuer(secret string, ttl time.Duration) *JWTIssuer {
	return &JWTIssuer{secret: []byte(secret), ttl: ttl}
}

func (i *JWTIssuer) Issue(userID int64, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.ttl)

	claims := jwt.MapClaims{
		"sub": strconv.FormatInt(userID, 10),
		"iat": now.Unix(),
		"exp": expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// AuthUsecase は会員登録・トークン発行・プロフィール管理。
type AuthUsecase struct {
	userRepo repo.UserRepository
	hasher   PasswordHasher
	issuer   TokenIssuer
	clock    Clock
}

// DI
func NewAuthUsecase(
	userRepo repo.UserRepository,
	hasher PasswordHasher,
	issuer TokenIssuer,
	clock Clock,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo: userRepo,
		hasher:   hasher,
		issuer:   issuer,
		clock:    clock,
	}
}

type RegisterInput struct {
	Email    string
	Name     string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type UserOutput struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type TokenOutput struct {
	Token string `json:"token"`
}

type UpdateMeInput struct {
	Name     *string
	Password *string
}

// NormalizeEmail lower-cases the domain part only; the local part is
// case-sensitive by the mail RFCs and is kept as given.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at] + "@" + strings.ToLower(email[at+1:])
}

func (u *AuthUsecase) Register(ctx context.Context, in RegisterInput) (UserOutput, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" {
		return UserOutput{}, NewHTTPError(http.StatusBadRequest, "user must have an email address.")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return UserOutput{}, NewHTTPError(http.StatusBadRequest, "invalid email")
	}
	if len(in.Password) < 8 {
		return UserOutput{}, NewHTTPError(http.StatusBadRequest, "password too short")
	}

	email = NormalizeEmail(email)

	existing, err := u.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return UserOutput{}, NewHTTPError(http.StatusBadRequest, "email already used")
	}
	if err != nil && err != repo.ErrUserNotFound {
		return UserOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return UserOutput{}, NewHTTPError(http.StatusInternalServerError, "hash error")
	}

	user := &model.User{
		Email:        email,
		Name:         in.Name,
		PasswordHash: hashed,
		IsActive:     true,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return UserOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return UserOutput{ID: user.ID, Email: user.Email, Name: user.Name}, nil
}

// Login checks credentials and returns a signed token. All failure
// modes share one message so callers cannot probe which emails exist.
func (u *AuthUsecase) Login(ctx context.Context, in LoginInput) (TokenOutput, error) {
	email := NormalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return TokenOutput{}, NewHTTPError(http.StatusBadRequest, "unable to authenticate with provided credentials")
	}

	user, err := u.userRepo.FindByEmail(ctx, email)
	if err == repo.ErrUserNotFound {
		return TokenOutput{}, NewHTTPError(http.StatusBadRequest, "unable to authenticate with provided credentials")
	}
	if err != nil {
		return TokenOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !user.IsActive {
		return TokenOutput{}, NewHTTPError(http.StatusBadRequest, "unable to authenticate with provided credentials")
	}

	if err := u.hasher.Verify(user.PasswordHash, in.Password); err != nil {
		return TokenOutput{}, NewHTTPError(http.StatusBadRequest, "unable to authenticate with provided credentials")
	}

	token, _, err := u.issuer.Issue(user.ID, u.clock.Now())
	if err != nil {
		return TokenOutput{}, NewHTTPError(http.StatusInternalServerError, "token error")
	}

	return TokenOutput{Token: token}, nil
}

func (u *AuthUsecase) Me(ctx context.Context, userID int64) (UserOutput, error) {
	if userID <= 0 {
		return UserOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	user, err := u.userRepo.FindByID(ctx, userID)
	if err == repo.ErrUserNotFound {
		return UserOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return UserOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return UserOutput{ID: user.ID, Email: user.Email, Name: user.Name}, nil
}

// UpdateMe changes name and/or password. Email is the identifier and
// stays immutable.
func (u *AuthUsecase) UpdateMe(ctx context.Context, userID int64, in UpdateMeInput) (UserOutput, error) {
	if userID <= 0 {
		return UserOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	user, err := u.userRepo.FindByID(ctx, userID)
	if err == repo.ErrUserNotFound {
		return UserOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return UserOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Password != nil {
		if len(*in.Password) < 8 {
			return UserOutput{}, NewHTTPError(http.StatusBadRequest, "password too short")
		}
		hashed, err := u.hasher.Hash(*in.Password)
		if err != nil {
			return UserOutput{}, NewHTTPError(http.StatusInternalServerError, "hash error")
		}
		user.PasswordHash = hashed
	}

	if err := u.userRepo.Update(ctx, user); err != nil {
		return UserOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return UserOutput{ID: user.ID, Email: user.Email, Name: user.Name}, nil
}
