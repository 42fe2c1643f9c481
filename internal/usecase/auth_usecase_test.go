package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"careerhub/internal/domain/admin"
	"careerhub/internal/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type mockAdminRepo struct {
	admins      map[string]admin.Admin
	permissions map[uuid.UUID]admin.MarkingPermission
	permErr     error
}

func (m *mockAdminRepo) Create(ctx context.Context, a admin.Admin) error {
	m.admins[a.Email] = a
	return nil
}

func (m *mockAdminRepo) GetByID(ctx context.Context, id uuid.UUID) (admin.Admin, error) {
	for _, a := range m.admins {
		if a.ID == id {
			return a, nil
		}
	}
	return admin.Admin{}, admin.ErrNotFound
}

func (m *mockAdminRepo) GetByEmail(ctx context.Context, email string) (admin.Admin, error) {
	a, ok := m.admins[email]
	if !ok {
		return admin.Admin{}, admin.ErrNotFound
	}
	return a, nil
}

func (m *mockAdminRepo) GetMarkingPermission(ctx context.Context, adminID uuid.UUID) (admin.MarkingPermission, error) {
	if m.permErr != nil {
		return admin.MarkingPermission{}, m.permErr
	}
	if p, ok := m.permissions[adminID]; ok {
		return p, nil
	}
	return admin.MarkingPermission{AdminID: adminID}, nil
}

type mockActivityRepo struct {
	recorded int
	err      error
}

func (m *mockActivityRepo) RecordLogin(ctx context.Context, adminID uuid.UUID, ip, userAgent string) error {
	if m.err != nil {
		return m.err
	}
	m.recorded++
	return nil
}

func seedAdmin(t *testing.T, repo *mockAdminRepo, email, password string, role admin.Role) admin.Admin {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	a := admin.Admin{ID: uuid.New(), Email: email, PasswordHash: string(hash), Role: role}
	repo.admins[email] = a
	return a
}

func newTestAuth(admins *mockAdminRepo, activity *mockActivityRepo) *Auth {
	svc := jwt.NewHMACService("access-secret", "refresh-secret", time.Minute, time.Hour)
	return NewAuthUsecase(admins, activity, svc, nil)
}

func TestLoginIssuesTokensAndRecordsActivity(t *testing.T) {
	admins := &mockAdminRepo{admins: map[string]admin.Admin{}}
	activity := &mockActivityRepo{}
	seedAdmin(t, admins, "hr@example.com", "s3cret", admin.RoleAdmin)

	uc := newTestAuth(admins, activity)
	a, access, refresh, err := uc.Login(context.Background(), LoginInput{
		Email:    " HR@example.com ",
		Password: "s3cret",
		IP:       "10.0.0.1",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if a.Email != "hr@example.com" {
		t.Fatalf("admin email = %q", a.Email)
	}
	if access == "" || refresh == "" {
		t.Fatal("expected both tokens")
	}
	if activity.recorded != 1 {
		t.Fatalf("activity recorded = %d, want 1", activity.recorded)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	admins := &mockAdminRepo{admins: map[string]admin.Admin{}}
	activity := &mockActivityRepo{}
	seedAdmin(t, admins, "hr@example.com", "s3cret", admin.RoleAdmin)

	uc := newTestAuth(admins, activity)
	_, _, _, err := uc.Login(context.Background(), LoginInput{Email: "hr@example.com", Password: "wrong"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
	if activity.recorded != 0 {
		t.Fatal("failed login must not be recorded")
	}
}

func TestLoginSurvivesActivityLogFailure(t *testing.T) {
	admins := &mockAdminRepo{admins: map[string]admin.Admin{}}
	activity := &mockActivityRepo{err: errors.New("activity table missing")}
	seedAdmin(t, admins, "hr@example.com", "s3cret", admin.RoleAdmin)

	uc := newTestAuth(admins, activity)
	_, access, _, err := uc.Login(context.Background(), LoginInput{Email: "hr@example.com", Password: "s3cret"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if access == "" {
		t.Fatal("expected access token despite activity failure")
	}
}

func TestEnsureInitialAdminSeedsFreshInstall(t *testing.T) {
	admins := &mockAdminRepo{admins: map[string]admin.Admin{}}
	uc := newTestAuth(admins, &mockActivityRepo{})

	if err := uc.EnsureInitialAdmin(context.Background(), " HR@example.com ", "s3cret"); err != nil {
		t.Fatalf("ensure: %v", err)
	}

	a, err := admins.GetByEmail(context.Background(), "hr@example.com")
	if err != nil {
		t.Fatalf("seeded admin missing: %v", err)
	}
	if a.Role != admin.RoleAdmin {
		t.Fatalf("role = %q, want %q", a.Role, admin.RoleAdmin)
	}
	if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte("s3cret")) != nil {
		t.Fatal("stored hash does not match the seeded password")
	}

	// The seeded credential must be able to log in.
	if _, access, _, err := uc.Login(context.Background(), LoginInput{Email: "hr@example.com", Password: "s3cret"}); err != nil || access == "" {
		t.Fatalf("login with seeded credential failed: %v", err)
	}
}

func TestEnsureInitialAdminLeavesExistingAlone(t *testing.T) {
	admins := &mockAdminRepo{admins: map[string]admin.Admin{}}
	existing := seedAdmin(t, admins, "hr@example.com", "original", admin.RoleAdmin)

	uc := newTestAuth(admins, &mockActivityRepo{})
	if err := uc.EnsureInitialAdmin(context.Background(), "hr@example.com", "different"); err != nil {
		t.Fatalf("ensure: %v", err)
	}

	a, _ := admins.GetByEmail(context.Background(), "hr@example.com")
	if a.ID != existing.ID || a.PasswordHash != existing.PasswordHash {
		t.Fatal("existing admin must not be overwritten")
	}
}

func TestEnsureInitialAdminSkipsWhenUnconfigured(t *testing.T) {
	admins := &mockAdminRepo{admins: map[string]admin.Admin{}}
	uc := newTestAuth(admins, &mockActivityRepo{})

	if err := uc.EnsureInitialAdmin(context.Background(), "", ""); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if err := uc.EnsureInitialAdmin(context.Background(), "hr@example.com", ""); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if len(admins.admins) != 0 {
		t.Fatalf("expected no admins seeded, got %d", len(admins.admins))
	}
}

func TestMeInterviewAdminCarriesCategories(t *testing.T) {
	admins := &mockAdminRepo{admins: map[string]admin.Admin{}, permissions: map[uuid.UUID]admin.MarkingPermission{}}
	a := seedAdmin(t, admins, "panel@example.com", "s3cret", admin.RoleInterview)
	admins.permissions[a.ID] = admin.MarkingPermission{AdminID: a.ID, Categories: []string{"technical", "communication"}}

	uc := newTestAuth(admins, &mockActivityRepo{})
	p, err := uc.Me(context.Background(), a.ID)
	if err != nil {
		t.Fatalf("me: %v", err)
	}
	if len(p.Categories) != 2 {
		t.Fatalf("categories = %v, want 2 entries", p.Categories)
	}
}

func TestMeFullAdminSkipsPermissionLookup(t *testing.T) {
	admins := &mockAdminRepo{admins: map[string]admin.Admin{}, permErr: errors.New("must not be called")}
	a := seedAdmin(t, admins, "hr@example.com", "s3cret", admin.RoleAdmin)

	uc := newTestAuth(admins, &mockActivityRepo{})
	p, err := uc.Me(context.Background(), a.ID)
	if err != nil {
		t.Fatalf("me: %v", err)
	}
	if len(p.Categories) != 0 {
		t.Fatalf("categories = %v, want none", p.Categories)
	}
}

func TestMeUnknownAdmin(t *testing.T) {
	admins := &mockAdminRepo{admins: map[string]admin.Admin{}}
	uc := newTestAuth(admins, &mockActivityRepo{})
	_, err := uc.Me(context.Background(), uuid.New())
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
}
