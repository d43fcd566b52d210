package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/deskware/helpdesk-system/internal/auth"
	"github.com/deskware/helpdesk-system/internal/core/domain"
	"github.com/deskware/helpdesk-system/internal/core/ports"
)

// dummyHash absorbs a bcrypt comparison when the email is unknown, so a login
// against a missing account costs the same as one against a wrong password.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("helpdesk.dummy.credential"), bcrypt.DefaultCost)

// AuthService implements registration with the role request workflow, login,
// and profile self-service.
type AuthService struct {
	repo       ports.UserRepository
	issuer     *auth.Issuer
	adminCodes []string
	limiter    ports.LoginLimiter
	audit      ports.AuditSink
	logger     zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, issuer *auth.Issuer, adminCodes []string, limiter ports.LoginLimiter, audit ports.AuditSink, logger zerolog.Logger) *AuthService {
	return &AuthService{
		repo:       repo,
		issuer:     issuer,
		adminCodes: adminCodes,
		limiter:    limiter,
		audit:      audit,
		logger:     logger,
	}
}

// Register creates a new account, resolving its role through the signup state
// machine, and returns a token for immediate use.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.RegisterResult, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if _, err := s.repo.FindByEmail(ctx, in.Email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	count, err := s.repo.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	// Unknown requested roles register as plain end users.
	requested, _ := domain.ParseRole(in.RequestedRole)

	decision, err := domain.DecideSignupRole(domain.SignupRequest{
		RequestedRole:      requested,
		AgentJustification: in.AgentJustification,
		AdminCode:          in.AdminCode,
	}, count, s.adminCodes, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		DisplayName:        in.Name,
		Email:              in.Email,
		PasswordHash:       string(hash),
		Role:               decision.Role,
		RequestedRole:      decision.RequestedRole,
		RoleStatus:         decision.Status,
		AgentJustification: decision.Justification,
		RoleRequestedAt:    decision.RequestedAt,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	token, err := s.issuer.Issue(created)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("user_id", created.ID).
		Str("role", string(created.Role)).
		Str("role_status", string(created.RoleStatus)).
		Msg("user registered")

	s.recordSignupAudit(created)

	return &ports.RegisterResult{
		Token:      token,
		User:       created,
		RoleStatus: created.RoleStatus,
		Message:    registrationMessage(created),
	}, nil
}

func (s *AuthService) recordSignupAudit(u *domain.User) {
	if s.audit == nil {
		return
	}
	s.audit.Record(domain.AuditEvent{
		Action:    domain.AuditUserRegistered,
		SubjectID: u.ID,
		Detail:    fmt.Sprintf("role=%s status=%s", u.Role, u.RoleStatus),
		At:        time.Now().UTC(),
	})
	if u.RoleStatus == domain.RoleStatusPending {
		s.audit.Record(domain.AuditEvent{
			Action:    domain.AuditRoleRequested,
			SubjectID: u.ID,
			Detail:    string(u.RequestedRole),
			At:        time.Now().UTC(),
		})
	}
}

func registrationMessage(u *domain.User) string {
	switch {
	case u.RoleStatus == domain.RoleStatusPending:
		return "Account created! Your agent request is pending admin approval."
	case u.RequestedRole == domain.RoleSupportAgent:
		return "Account created with agent access!"
	default:
		return "Account created successfully!"
	}
}

// Login verifies the credentials and returns a fresh token. An unknown email
// and a wrong password produce the same error.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	if s.limiter != nil && s.limiter.TooManyAttempts(ctx, email) {
		return "", nil, domain.ErrTooManyAttempts
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			s.failLogin(ctx, email)
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.failLogin(ctx, email)
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

func (s *AuthService) failLogin(ctx context.Context, email string) {
	if s.limiter != nil {
		s.limiter.RecordFailure(ctx, email)
	}
}

// Profile returns the caller's own record.
func (s *AuthService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.FindByID(ctx, userID)
}

// UpdateProfile applies a partial edit of the non-role fields. Changing the
// email to one owned by another account fails.
func (s *AuthService) UpdateProfile(ctx context.Context, userID string, in ports.UpdateProfileInput) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if in.Email != nil && *in.Email != user.Email {
		if _, err := s.repo.FindByEmail(ctx, *in.Email); err == nil {
			return nil, domain.ErrEmailTaken
		} else if !errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		user.Email = *in.Email
	}
	if in.DisplayName != nil {
		user.DisplayName = *in.DisplayName
	}
	if in.Bio != nil {
		user.Bio = *in.Bio
	}
	if in.Avatar != nil {
		user.Avatar = *in.Avatar
	}
	user.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, user)
}
