package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Ta1kunjms/GensanWorks/internal/models"
	"github.com/Ta1kunjms/GensanWorks/internal/repositories"
	"github.com/Ta1kunjms/GensanWorks/internal/utils"
)

// Roles carried in access tokens.
const (
	RoleApplicant = "applicant"
	RoleEmployer  = "employer"
	RoleAdmin     = "admin"
)

type Credentials struct {
	Email    string
	Password string
}

type AuthService interface {
	SignupApplicant(ctx context.Context, a *models.Applicant, password string) (token string, err error)
	SignupEmployer(ctx context.Context, e *models.Employer, password string) (token string, err error)
	LoginApplicant(ctx context.Context, creds Credentials) (token string, applicant *models.Applicant, err error)
	LoginEmployer(ctx context.Context, creds Credentials) (token string, employer *models.Employer, err error)
	LoginAdmin(ctx context.Context, creds Credentials) (token string, admin *models.Admin, err error)
}

type authService struct {
	applicants repositories.ApplicantRepository
	employers  repositories.EmployerRepository
	admins     repositories.AdminRepository
}

func NewAuthService(
	applicants repositories.ApplicantRepository,
	employers repositories.EmployerRepository,
	admins repositories.AdminRepository,
) AuthService {
	return &authService{applicants: applicants, employers: employers, admins: admins}
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func (s *authService) SignupApplicant(ctx context.Context, a *models.Applicant, password string) (string, error) {
	const op = "AuthService.SignupApplicant"

	a.Email = normalizeEmail(a.Email)
	if a.Email == "" || password == "" {
		return "", utils.E(utils.CodeInvalidArgument, op, "email and password are required", nil)
	}
	if _, err := s.applicants.GetByEmail(ctx, a.Email); err == nil {
		return "", utils.E(utils.CodeConflict, op, "email is already registered", nil)
	} else if !errors.Is(err, utils.ErrNotFound) {
		return "", utils.E(utils.CodeInternal, op, "failed to check email", err)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return "", utils.E(utils.CodeInternal, op, "failed to hash password", err)
	}

	now := time.Now().UTC()
	a.ID = uuid.NewString()
	a.PasswordHash = hash
	a.CreatedAt = now
	a.UpdatedAt = now

	if err := s.applicants.Create(ctx, a); err != nil {
		return "", utils.E(utils.CodeInternal, op, "failed to create applicant", err)
	}
	token, err := utils.IssueToken(a.ID, RoleApplicant)
	if err != nil {
		return "", utils.E(utils.CodeInternal, op, "failed to issue token", err)
	}
	return token, nil
}

func (s *authService) SignupEmployer(ctx context.Context, e *models.Employer, password string) (string, error) {
	const op = "AuthService.SignupEmployer"

	e.Email = normalizeEmail(e.Email)
	if e.Email == "" || password == "" {
		return "", utils.E(utils.CodeInvalidArgument, op, "email and password are required", nil)
	}
	if e.EstablishmentName == "" {
		return "", utils.E(utils.CodeInvalidArgument, op, "establishment name is required", nil)
	}
	if _, err := s.employers.GetByEmail(ctx, e.Email); err == nil {
		return "", utils.E(utils.CodeConflict, op, "email is already registered", nil)
	} else if !errors.Is(err, utils.ErrNotFound) {
		return "", utils.E(utils.CodeInternal, op, "failed to check email", err)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return "", utils.E(utils.CodeInternal, op, "failed to hash password", err)
	}

	now := time.Now().UTC()
	e.ID = uuid.NewString()
	e.PasswordHash = hash
	e.AccountStatus = models.EmployerStatusPending
	e.CreatedAt = now
	e.UpdatedAt = now

	if err := s.employers.Create(ctx, e); err != nil {
		return "", utils.E(utils.CodeInternal, op, "failed to create employer", err)
	}
	token, err := utils.IssueToken(e.ID, RoleEmployer)
	if err != nil {
		return "", utils.E(utils.CodeInternal, op, "failed to issue token", err)
	}
	return token, nil
}

func (s *authService) LoginApplicant(ctx context.Context, creds Credentials) (string, *models.Applicant, error) {
	const op = "AuthService.LoginApplicant"

	a, err := s.applicants.GetByEmail(ctx, normalizeEmail(creds.Email))
	if err != nil {
		return "", nil, invalidLogin(op, err)
	}
	if utils.CheckPassword(a.PasswordHash, creds.Password) != nil {
		return "", nil, invalidLogin(op, nil)
	}
	token, err := utils.IssueToken(a.ID, RoleApplicant)
	if err != nil {
		return "", nil, utils.E(utils.CodeInternal, op, "failed to issue token", err)
	}
	return token, a, nil
}

func (s *authService) LoginEmployer(ctx context.Context, creds Credentials) (string, *models.Employer, error) {
	const op = "AuthService.LoginEmployer"

	e, err := s.employers.GetByEmail(ctx, normalizeEmail(creds.Email))
	if err != nil {
		return "", nil, invalidLogin(op, err)
	}
	if utils.CheckPassword(e.PasswordHash, creds.Password) != nil {
		return "", nil, invalidLogin(op, nil)
	}
	token, err := utils.IssueToken(e.ID, RoleEmployer)
	if err != nil {
		return "", nil, utils.E(utils.CodeInternal, op, "failed to issue token", err)
	}
	return token, e, nil
}

func (s *authService) LoginAdmin(ctx context.Context, creds Credentials) (string, *models.Admin, error) {
	const op = "AuthService.LoginAdmin"

	a, err := s.admins.GetByEmail(ctx, normalizeEmail(creds.Email))
	if err != nil {
		return "", nil, invalidLogin(op, err)
	}
	if utils.CheckPassword(a.PasswordHash, creds.Password) != nil {
		return "", nil, invalidLogin(op, nil)
	}
	token, err := utils.IssueToken(a.ID, RoleAdmin)
	if err != nil {
		return "", nil, utils.E(utils.CodeInternal, op, "failed to issue token", err)
	}
	return token, a, nil
}

// invalidLogin hides whether the account exists.
func invalidLogin(op string, err error) error {
	if err != nil && !errors.Is(err, utils.ErrNotFound) {
		return utils.E(utils.CodeInternal, op, "failed to load account", err)
	}
	return utils.E(utils.CodeUnauthorized, op, "invalid email or password", nil)
}
