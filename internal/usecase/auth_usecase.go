package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"careerhub/internal/domain/admin"
	"careerhub/internal/pkg/jwt"
	"careerhub/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)

type LoginInput struct {
	Email    string
	Password string

	// Request metadata for the best-effort activity log.
	IP        string
	UserAgent string
}

// Profile is an authenticated admin together with its marking permission.
// Categories is empty for full admins, who are not restricted.
type Profile struct {
	Admin      admin.Admin
	Categories []string
}

type AuthUsecase interface {
	Login(ctx context.Context, in LoginInput) (admin.Admin, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
	Me(ctx context.Context, adminID uuid.UUID) (Profile, error)
}

type Auth struct {
	admins   admin.Repository
	activity repository.ActivityRepository
	jwt      jwt.Service
	logger   *log.Logger
}

func NewAuthUsecase(admins admin.Repository, activity repository.ActivityRepository, jwtSvc jwt.Service, logger *log.Logger) *Auth {
	return &Auth{admins: admins, activity: activity, jwt: jwtSvc, logger: logger}
}

func (u *Auth) Login(ctx context.Context, in LoginInput) (admin.Admin, string, string, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return admin.Admin{}, "", "", ErrInvalidCredentials
	}

	a, err := u.admins.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, admin.ErrNotFound) {
			return admin.Admin{}, "", "", ErrInvalidCredentials
		}
		return admin.Admin{}, "", "", ErrInternal
	}

	if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(in.Password)) != nil {
		return admin.Admin{}, "", "", ErrInvalidCredentials
	}

	access, err := u.jwt.GenerateAccessToken(a.ID, a.Email, string(a.Role))
	if err != nil {
		return admin.Admin{}, "", "", ErrInternal
	}
	refresh, err := u.jwt.GenerateRefreshToken(a.ID)
	if err != nil {
		return admin.Admin{}, "", "", ErrInternal
	}

	// Activity logging is a side channel; its failure never fails the login.
	if err := u.activity.RecordLogin(ctx, a.ID, in.IP, in.UserAgent); err != nil && u.logger != nil {
		u.logger.Printf("login activity log failed: admin=%s err=%v", a.ID, err)
	}

	return a, access, refresh, nil
}

func (u *Auth) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	if refreshToken == "" {
		return "", "", ErrUnauthorized
	}

	claims, err := u.jwt.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", ErrRefreshTokenExpired
		}
		return "", "", ErrInvalidRefreshToken
	}

	if !u.jwt.IsRefreshToken(claims) {
		return "", "", ErrInvalidRefreshToken
	}

	a, err := u.admins.GetByID(ctx, claims.AdminID)
	if err != nil {
		return "", "", ErrInternal
	}

	access, err := u.jwt.GenerateAccessToken(a.ID, a.Email, string(a.Role))
	if err != nil {
		return "", "", ErrInternal
	}
	newRefresh, err := u.jwt.GenerateRefreshToken(a.ID)
	if err != nil {
		return "", "", ErrInternal
	}

	return access, newRefresh, nil
}

// EnsureInitialAdmin creates the first dashboard credential from the
// environment so a fresh install is not locked out of the admin surface.
// It is a no-op when the env pair is unset or the email already exists.
func (u *Auth) EnsureInitialAdmin(ctx context.Context, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil
	}

	_, err := u.admins.GetByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, admin.ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	a := admin.Admin{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         admin.RoleAdmin,
	}
	if err := u.admins.Create(ctx, a); err != nil {
		return err
	}
	if u.logger != nil {
		u.logger.Printf("initial admin seeded: email=%s", email)
	}
	return nil
}

func (u *Auth) Me(ctx context.Context, adminID uuid.UUID) (Profile, error) {
	a, err := u.admins.GetByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, admin.ErrNotFound) {
			return Profile{}, ErrUnauthorized
		}
		return Profile{}, ErrInternal
	}

	p := Profile{Admin: a}
	if a.Role == admin.RoleInterview {
		perm, err := u.admins.GetMarkingPermission(ctx, a.ID)
		if err != nil {
			return Profile{}, ErrInternal
		}
		p.Categories = perm.Categories
	}
	return p, nil
}
