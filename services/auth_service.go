package services

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"backend/repository"
	"backend/utils"
)

// AuthService handles login and token verification across the three account
// tables. Lookup order is pilots, then editors, then users; the first table
// with a matching email answers, so a wrong password there is a failed login
// even if a later table also carries the email.
type AuthService struct {
	users     *repository.UserRepository
	pilots    *repository.PilotRepository
	editors   *repository.EditorRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(users *repository.UserRepository, pilots *repository.PilotRepository, editors *repository.EditorRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		users:     users,
		pilots:    pilots,
		editors:   editors,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

// LoginResult carries everything the login endpoint returns.
type LoginResult struct {
	Token   string `json:"token"`
	Role    string `json:"role"`
	Account any    `json:"account"`
}

func (s *AuthService) Login(email, password string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if pilot, err := s.pilots.FindByEmail(email); err == nil {
		if pilot.Status != "active" && pilot.Status != "approved" {
			return nil, ErrPendingApproval
		}
		if bcrypt.CompareHashAndPassword([]byte(pilot.Password), []byte(password)) != nil {
			return nil, ErrInvalidCredentials
		}
		return s.issue(pilot.ID, "pilot", pilot)
	}

	if editor, err := s.editors.FindByEmail(email); err == nil {
		if editor.Status != "active" && editor.Status != "approved" {
			return nil, ErrPendingApproval
		}
		if bcrypt.CompareHashAndPassword([]byte(editor.Password), []byte(password)) != nil {
			return nil, ErrInvalidCredentials
		}
		return s.issue(editor.ID, "editor", editor)
	}

	user, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if user.ApprovalStatus == "pending" {
		return nil, ErrPendingApproval
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issue(user.ID, user.Role, user)
}

func (s *AuthService) issue(id uint, role string, account any) (*LoginResult, error) {
	token, err := utils.GenerateToken(id, role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return nil, errors.New("cannot generate token")
	}
	return &LoginResult{Token: token, Role: role, Account: account}, nil
}

// Verify re-fetches the live account behind a valid token; a deleted account
// yields gorm.ErrRecordNotFound.
func (s *AuthService) Verify(userID uint, role string) (any, error) {
	switch role {
	case "pilot":
		return s.pilots.FindByID(userID)
	case "editor":
		return s.editors.FindByID(userID)
	default:
		return s.users.FindByID(userID)
	}
}

// ChangePassword verifies the current password before setting a new one.
func (s *AuthService) ChangePassword(userID uint, role, current, next string) error {
	if len(next) < 6 {
		return ErrValidation
	}

	var stored string
	switch role {
	case "pilot":
		p, err := s.pilots.FindByID(userID)
		if err != nil {
			return err
		}
		stored = p.Password
	case "editor":
		e, err := s.editors.FindByID(userID)
		if err != nil {
			return err
		}
		stored = e.Password
	default:
		u, err := s.users.FindByID(userID)
		if err != nil {
			return err
		}
		stored = u.Password
	}

	if bcrypt.CompareHashAndPassword([]byte(stored), []byte(current)) != nil {
		return ErrInvalidCredentials
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	updates := map[string]any{"password": string(hashed)}
	switch role {
	case "pilot":
		return s.pilots.Update(userID, updates)
	case "editor":
		return s.editors.Update(userID, updates)
	default:
		return s.users.Update(userID, updates)
	}
}

// IsNotFound reports whether err means the account no longer exists.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
