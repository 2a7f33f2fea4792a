package auth

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/smart-finance/backend/internal/application/adapter"
	"github.com/smart-finance/backend/internal/domain/entity"
	domainerror "github.com/smart-finance/backend/internal/domain/error"
)

type stubUserRepo struct {
	adapter.UserRepository
	byEmail map[string]*entity.User
	created *entity.User
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	if u, ok := r.byEmail[email]; ok {
		return u, nil
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *stubUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := r.byEmail[email]
	return ok, nil
}

func (r *stubUserRepo) Create(_ context.Context, user *entity.User) error {
	r.created = user
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

type stubPasswordService struct {
	verifyErr error
}

func (s *stubPasswordService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (s *stubPasswordService) VerifyPassword(hashed, password string) error {
	if s.verifyErr != nil {
		return s.verifyErr
	}
	if hashed != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

func (s *stubPasswordService) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return domainerror.ErrWeakPassword
	}
	return nil
}

type stubTokenService struct {
	adapter.TokenService
	pairs       int
	invalidated []string
}

func (s *stubTokenService) GenerateTokenPair(_ context.Context, user *entity.User) (*adapter.TokenPair, error) {
	s.pairs++
	return &adapter.TokenPair{AccessToken: "access", RefreshToken: "refresh"}, nil
}

func (s *stubTokenService) ValidateRefreshToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	if !strings.HasPrefix(token, "refresh-for:") {
		return nil, domainerror.ErrInvalidToken
	}
	id, err := uuid.Parse(strings.TrimPrefix(token, "refresh-for:"))
	if err != nil {
		return nil, domainerror.ErrInvalidToken
	}
	return &adapter.TokenClaims{UserID: id}, nil
}

func (s *stubTokenService) InvalidateRefreshToken(_ context.Context, token string) error {
	s.invalidated = append(s.invalidated, token)
	return nil
}

func activeUser(email, password string) *entity.User {
	return entity.NewUser("Ada", email, "hashed:"+password)
}

func TestLogin(t *testing.T) {
	user := activeUser("ada@example.com", "sup3rsecret")
	repo := &stubUserRepo{byEmail: map[string]*entity.User{user.Email: user}}
	tokens := &stubTokenService{}
	uc := NewLoginUseCase(repo, &stubPasswordService{}, tokens)

	t.Run("successful login", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), LoginInput{
			Email:    "  ADA@example.com ", // normalized
			Password: "sup3rsecret",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.User != user {
			t.Error("expected the stored user returned")
		}
		if out.Tokens.AccessToken == "" || out.Tokens.RefreshToken == "" {
			t.Error("expected a token pair")
		}
	})

	t.Run("wrong password and unknown email are indistinguishable", func(t *testing.T) {
		_, wrongPassErr := uc.Execute(context.Background(), LoginInput{
			Email:    "ada@example.com",
			Password: "nope",
		})
		_, unknownErr := uc.Execute(context.Background(), LoginInput{
			Email:    "ghost@example.com",
			Password: "whatever",
		})
		if wrongPassErr == nil || unknownErr == nil {
			t.Fatal("expected both logins to fail")
		}
		if wrongPassErr.Error() != unknownErr.Error() {
			t.Errorf("expected identical errors, got %q and %q", wrongPassErr, unknownErr)
		}
	})

	t.Run("deactivated account is rejected", func(t *testing.T) {
		user.IsActive = false
		defer func() { user.IsActive = true }()

		_, err := uc.Execute(context.Background(), LoginInput{
			Email:    "ada@example.com",
			Password: "sup3rsecret",
		})
		if !errors.Is(err, domainerror.ErrAccountDeactivated) {
			t.Errorf("expected deactivated-account error, got %v", err)
		}
	})
}

func TestRegister(t *testing.T) {
	t.Run("creates user and queues welcome email", func(t *testing.T) {
		repo := &stubUserRepo{byEmail: map[string]*entity.User{}}
		emails := &welcomeRecorder{}
		uc := NewRegisterUseCase(repo, &stubPasswordService{}, &stubTokenService{}, emails)

		out, err := uc.Execute(context.Background(), RegisterInput{
			Name:     " Ada ",
			Email:    "Ada@Example.com",
			Password: "sup3rsecret",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.User.Email != "ada@example.com" {
			t.Errorf("expected normalized email, got %q", out.User.Email)
		}
		if out.User.Name != "Ada" {
			t.Errorf("expected trimmed name, got %q", out.User.Name)
		}
		if out.User.PasswordHash != "hashed:sup3rsecret" {
			t.Errorf("expected hashed password stored, got %q", out.User.PasswordHash)
		}
		if out.User.Role != entity.RoleUser {
			t.Errorf("expected default user role, got %q", out.User.Role)
		}
		if emails.queued != 1 {
			t.Errorf("expected one welcome email queued, got %d", emails.queued)
		}
		if repo.created != out.User {
			t.Error("expected user persisted via repository")
		}
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		existing := activeUser("ada@example.com", "pw")
		repo := &stubUserRepo{byEmail: map[string]*entity.User{existing.Email: existing}}
		uc := NewRegisterUseCase(repo, &stubPasswordService{}, &stubTokenService{}, nil)

		_, err := uc.Execute(context.Background(), RegisterInput{
			Name:     "Ada",
			Email:    "ada@example.com",
			Password: "sup3rsecret",
		})
		if !errors.Is(err, domainerror.ErrEmailAlreadyRegistered) {
			t.Errorf("expected duplicate-email error, got %v", err)
		}
	})

	t.Run("weak password is rejected", func(t *testing.T) {
		repo := &stubUserRepo{byEmail: map[string]*entity.User{}}
		uc := NewRegisterUseCase(repo, &stubPasswordService{}, &stubTokenService{}, nil)

		_, err := uc.Execute(context.Background(), RegisterInput{
			Name:     "Ada",
			Email:    "ada@example.com",
			Password: "short",
		})
		if err == nil {
			t.Fatal("expected weak-password error")
		}
		if repo.created != nil {
			t.Error("expected no user persisted")
		}
	})
}

func TestRefresh(t *testing.T) {
	user := activeUser("ada@example.com", "pw")
	repo := &stubUserRepo{byEmail: map[string]*entity.User{user.Email: user}}
	tokens := &stubTokenService{}
	uc := NewRefreshUseCase(repo, tokens)

	t.Run("rotates a valid token", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), RefreshInput{
			RefreshToken: "refresh-for:" + user.ID.String(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Tokens == nil {
			t.Fatal("expected a new token pair")
		}
		if len(tokens.invalidated) != 1 {
			t.Errorf("expected old token invalidated, got %d invalidations", len(tokens.invalidated))
		}
	})

	t.Run("rejects a malformed token", func(t *testing.T) {
		if _, err := uc.Execute(context.Background(), RefreshInput{RefreshToken: "garbage"}); err == nil {
			t.Fatal("expected invalid-token error")
		}
	})

	t.Run("rejects a deactivated user's token", func(t *testing.T) {
		user.IsActive = false
		defer func() { user.IsActive = true }()

		_, err := uc.Execute(context.Background(), RefreshInput{
			RefreshToken: "refresh-for:" + user.ID.String(),
		})
		if !errors.Is(err, domainerror.ErrAccountDeactivated) {
			t.Errorf("expected deactivated-account error, got %v", err)
		}
	})
}

type welcomeRecorder struct {
	queued int
}

func (r *welcomeRecorder) QueueWelcomeEmail(_ context.Context, _, _ string) error {
	r.queued++
	return nil
}

func (r *welcomeRecorder) QueueBudgetAlertEmail(_ context.Context, _ adapter.QueueBudgetAlertInput) error {
	return nil
}

func (r *welcomeRecorder) QueueGoalAchievedEmail(_ context.Context, _ adapter.QueueGoalAchievedInput) error {
	return nil
}

func (r *welcomeRecorder) QueueMonthlyReportEmail(_ context.Context, _ adapter.QueueMonthlyReportInput) error {
	return nil
}
