package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"freshcart/internal/domain/model"
	"freshcart/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const adminRole = "ADMIN"

type AuthConfig struct {
	JWTSecret string
	AccessTTL time.Duration
}

// JWTの中身
type AdminClaims struct {
	Role         string `json:"role"`
	TokenVersion int    `json:"tv"`
	jwt.RegisteredClaims
}

// AdminID は sub をint64にしたもの
func (c AdminClaims) AdminID() (int64, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid sub")
	}
	return id, nil
}

type AdminDTO struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

type LoginResponse struct {
	Admin       AdminDTO  `json:"admin"`
	AccessToken string    `json:"access_token"`
	ExpiresIn   int       `json:"expires_in"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type AuthUsecase struct {
	cfg    AuthConfig
	admins repository.AdminUserRepository
	events *SignOutEvents
	log    *zap.Logger
	now    func() time.Time
}

func NewAuthUsecase(cfg AuthConfig, admins repository.AdminUserRepository, events *SignOutEvents, log *zap.Logger) *AuthUsecase {
	if log == nil {
		log = zap.NewNop()
	}
	if events == nil {
		events = NewSignOutEvents()
	}
	return &AuthUsecase{
		cfg:    cfg,
		admins: admins,
		events: events,
		log:    log,
		now:    time.Now,
	}
}

func (u *AuthUsecase) Events() *SignOutEvents {
	return u.events
}

// SeedAdmin は起動時に管理者が居なければ作る
func (u *AuthUsecase) SeedAdmin(ctx context.Context, email, password string) error {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil
	}

	_, err := u.admins.FindByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("find admin: %w", err)
	}

	//パスワードは必ずハッシュ化して保存
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if _, err := u.admins.Create(ctx, model.AdminUser{
		Email:        email,
		PasswordHash: string(hash),
		IsActive:     true,
	}); err != nil {
		return fmt.Errorf("create admin: %w", err)
	}

	u.log.Info("admin user seeded", zap.String("email", email))
	return nil
}

func (u *AuthUsecase) Login(ctx context.Context, email, password string) (LoginResponse, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return LoginResponse{}, NewHTTPError(http.StatusBadRequest, "email and password required")
	}

	admin, err := u.admins.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return LoginResponse{}, NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}
	if err != nil {
		return LoginResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !admin.IsActive {
		return LoginResponse{}, NewHTTPError(http.StatusForbidden, "forbidden")
	}

	//パスワード照合（bcrypt）
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		u.log.Warn("admin login failed", zap.String("email", email))
		return LoginResponse{}, NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}

	now := u.now()
	_ = u.admins.UpdateLastLogin(ctx, admin.ID, now)

	token, exp, err := u.issueAccessToken(admin, now)
	if err != nil {
		return LoginResponse{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	u.log.Info("admin logged in", zap.Int64("admin_id", admin.ID))
	return LoginResponse{
		Admin:       AdminDTO{ID: admin.ID, Email: admin.Email},
		AccessToken: token,
		ExpiresIn:   int(u.cfg.AccessTTL.Seconds()),
		ExpiresAt:   exp,
	}, nil
}

// Logout は token_version を上げて発行済みのJWTを全部無効にし、購読者に通知する
func (u *AuthUsecase) Logout(ctx context.Context, adminID int64) error {
	if adminID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	tv, err := u.admins.IncrementTokenVersion(ctx, adminID)
	if errors.Is(err, repository.ErrNotFound) {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.events.Publish(SignOutEvent{AdminID: adminID, At: u.now()})
	u.log.Info("admin logged out", zap.Int64("admin_id", adminID), zap.Int("token_version", tv))
	return nil
}

// Verify は署名と期限だけを見る。token_versionの照合はTokenVersionGuard
func (u *AuthUsecase) Verify(raw string) (AdminClaims, error) {
	var claims AdminClaims
	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(u.cfg.JWTSecret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(u.now),
	)
	if err != nil || token == nil || !token.Valid {
		return AdminClaims{}, errors.New("invalid token")
	}
	if claims.Role != adminRole {
		return AdminClaims{}, errors.New("invalid role")
	}
	if _, err := claims.AdminID(); err != nil {
		return AdminClaims{}, err
	}
	return claims, nil
}

// jwt発行
func (u *AuthUsecase) issueAccessToken(admin model.AdminUser, now time.Time) (string, time.Time, error) {
	exp := now.Add(u.cfg.AccessTTL)
	claims := AdminClaims{
		Role:         adminRole,
		TokenVersion: admin.TokenVersion,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(admin.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(u.cfg.JWTSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
