package services

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/skosovan/data-analyzer/internal/logger"
	"github.com/skosovan/data-analyzer/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// AdminUsername is the reserved bootstrap account. It can never be deleted.
const AdminUsername = "admin"

// Error variables
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrUserAlreadyExists  = errors.New("username already exists")
	ErrUserNotFound       = errors.New("username does not exist")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// AccountReader defines read-only operations for accounts.
type AccountReader interface {
	List(ctx context.Context) (map[string]models.Account, error)
	Find(ctx context.Context, username string) (*models.Account, error)
}

// AccountWriter defines write operations for accounts.
type AccountWriter interface {
	Append(ctx context.Context, acct models.Account) error
	Update(ctx context.Context, acct models.Account) (bool, error)
	Delete(ctx context.Context, username string) (bool, error)
}

// TokenIssuer defines an interface for issuing session tokens.
type TokenIssuer interface {
	Generate(ctx context.Context, username, role string) (token string, sessionID string, err error)
}

// SessionStore records live sessions so logout actually invalidates tokens.
type SessionStore interface {
	Save(ctx context.Context, sessionID, username string) error
	Delete(ctx context.Context, sessionID string) error
}

// AuthService owns the username → credential mapping and the login flow.
type AuthService struct {
	reader   AccountReader
	writer   AccountWriter
	tokens   TokenIssuer
	sessions SessionStore
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader AccountReader, writer AccountWriter, tokens TokenIssuer, sessions SessionStore) *AuthService {
	return &AuthService{
		reader:   reader,
		writer:   writer,
		tokens:   tokens,
		sessions: sessions,
	}
}

// Register creates a new account with a bcrypt-hashed password.
// A racing duplicate registration is not prevented here: the append can land
// a second row for the username, which List rejects on the next read.
func (svc *AuthService) Register(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(password) == "" {
		return ErrInvalidInput
	}

	existing, err := svc.reader.Find(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return err
	}
	if existing != nil {
		logger.Log.Warnw("user already exists", "username", username)
		return ErrUserAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	acct := models.Account{
		Username:     username,
		PasswordHash: string(hashed),
		Role:         models.RoleUser,
	}
	if err := svc.writer.Append(ctx, acct); err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return err
	}

	return nil
}

// Login authenticates a user and returns a session token.
// Unknown username and wrong password both surface as ErrInvalidCredentials
// so callers cannot enumerate usernames; the log records the real cause.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	acct, err := svc.reader.Find(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if acct == nil {
		logger.Log.Warnw("login for unknown user", "username", username)
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)); err != nil {
		logger.Log.Warnw("wrong password", "username", username)
		return "", ErrInvalidCredentials
	}

	token, sessionID, err := svc.tokens.Generate(ctx, acct.Username, acct.Role)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", err
	}
	if err := svc.sessions.Save(ctx, sessionID, acct.Username); err != nil {
		logger.Log.Errorw("failed to save session", "err", err)
		return "", err
	}

	return token, nil
}

// Logout ends the session identified by sessionID.
func (svc *AuthService) Logout(ctx context.Context, sessionID string) error {
	return svc.sessions.Delete(ctx, sessionID)
}

// Delete removes an account. The reserved admin username is never deletable;
// asking to delete it is a no-op that returns false. Returns false as well
// when no such account exists.
func (svc *AuthService) Delete(ctx context.Context, username string) (bool, error) {
	if username == AdminUsername {
		logger.Log.Warnw("refusing to delete reserved account", "username", username)
		return false, nil
	}
	return svc.writer.Delete(ctx, username)
}

// ResetPassword replaces the stored hash for a username.
func (svc *AuthService) ResetPassword(ctx context.Context, username, newPassword string) error {
	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(newPassword) == "" {
		return ErrInvalidInput
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	found, err := svc.writer.Update(ctx, models.Account{
		Username:     username,
		PasswordHash: string(hashed),
	})
	if err != nil {
		logger.Log.Errorw("failed to update user", "err", err)
		return err
	}
	if !found {
		return ErrUserNotFound
	}
	return nil
}

// ListUsernames returns all known usernames, sorted.
func (svc *AuthService) ListUsernames(ctx context.Context) ([]string, error) {
	accounts, err := svc.reader.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(accounts))
	for name := range accounts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Bootstrap provisions the admin account with the admin role when no such
// account exists yet. Called once at startup.
func (svc *AuthService) Bootstrap(ctx context.Context, adminPassword string) error {
	if strings.TrimSpace(adminPassword) == "" {
		return ErrInvalidInput
	}

	existing, err := svc.reader.Find(ctx, AdminUsername)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	logger.Log.Infow("provisioning admin account")
	return svc.writer.Append(ctx, models.Account{
		Username:     AdminUsername,
		PasswordHash: string(hashed),
		Role:         models.RoleAdmin,
	})
}
