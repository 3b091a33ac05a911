package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Aravind-ihub855/Mom-Automation/internal/logger"
	"github.com/Aravind-ihub855/Mom-Automation/internal/middleware"
	"github.com/Aravind-ihub855/Mom-Automation/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	db     *gorm.DB
	secret []byte
}

func NewAuthService(db *gorm.DB, secret []byte) *AuthService {
	return &AuthService{db: db, secret: secret}
}

// Login verifies the credential and returns a signed session token. Unknown
// emails, wrong passwords and broken stored hashes all collapse into the same
// unauthorized error so the caller learns nothing about which it was.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	var admin model.Admin
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&admin).Error; err != nil {
		return "", fmt.Errorf("%w: invalid email or password", ErrUnauthorized)
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)) != nil {
		return "", fmt.Errorf("%w: invalid email or password", ErrUnauthorized)
	}
	token, err := middleware.IssueSession(s.secret, admin.Email)
	if err != nil {
		return "", fmt.Errorf("sign session: %w", err)
	}
	return token, nil
}

// AdminExists backs the session middleware's lookup step.
func (s *AuthService) AdminExists(ctx context.Context, email string) error {
	var admin model.Admin
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&admin).Error; err != nil {
		return fmt.Errorf("%w: unknown admin %q", ErrUnauthorized, email)
	}
	return nil
}

// Bootstrap seeds the first admin account from configuration. It is a no-op
// when any admin already exists or when no credential was configured.
func (s *AuthService) Bootstrap(ctx context.Context, email, password string) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.Admin{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count admins: %w", err)
	}
	if count > 0 {
		return nil
	}
	if email == "" || password == "" {
		logger.Warn("no admin account exists and no bootstrap credential configured; admin routes are unreachable")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash bootstrap password: %w", err)
	}
	err = s.db.WithContext(ctx).Create(&model.Admin{Email: email, Password: string(hash)}).Error
	if err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("seed admin: %w", err)
	}
	logger.Info("bootstrap admin seeded", "email", email)
	return nil
}
