package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/Neruaka/jana-distrib-ecommerce/internal/mailer"
	"github.com/Neruaka/jana-distrib-ecommerce/internal/modules/admins"
)

var (
	// One error for unknown email and wrong password, to avoid user enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrWeakPassword       = errors.New("password too short")
)

const (
	minPasswordLen  = 6
	resetBcryptCost = 12
	resetTokenTTL   = time.Hour
)

// AdminStore is the slice of the admins repo the auth service needs.
type AdminStore interface {
	FindByEmail(ctx context.Context, email string) (admins.Admin, error)
	FindByResetToken(ctx context.Context, tokenHash string) (admins.Admin, error)
	UpdatePassword(ctx context.Context, adminID int64, passwordHash string) error
	UpdateResetToken(ctx context.Context, adminID int64, tokenHash *string, expiry *time.Time) error
}

type Service struct {
	store     AdminStore
	mail      mailer.Service
	secret    []byte
	ttl       time.Duration
	clientURL string
	from      string
	fromName  string
}

func NewService(store AdminStore, mail mailer.Service, secret string, ttl time.Duration, clientURL, from, fromName string) *Service {
	return &Service{
		store:     store,
		mail:      mail,
		secret:    []byte(secret),
		ttl:       ttl,
		clientURL: strings.TrimRight(clientURL, "/"),
		from:      from,
		fromName:  fromName,
	}
}

type LoginResult struct {
	Token string          `json:"token"`
	Admin admins.Identity `json:"admin"`
}

func (s *Service) Login(ctx context.Context, email, password string) (LoginResult, error) {
	a, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, admins.ErrNotFound) {
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)); err != nil {
		return LoginResult{}, ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"id":    a.ID,
		"email": a.Email,
		"exp":   time.Now().Add(s.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return LoginResult{}, err
	}

	return LoginResult{Token: signed, Admin: a.Identity()}, nil
}

// ParseToken validates signature and expiry and returns the embedded identity.
// Satisfies middleware.TokenParser.
func (s *Service) ParseToken(raw string) (int64, string, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !tok.Valid {
		return 0, "", ErrInvalidToken
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", ErrInvalidToken
	}
	idf, ok := claims["id"].(float64)
	if !ok {
		return 0, "", ErrInvalidToken
	}
	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return 0, "", ErrInvalidToken
	}
	return int64(idf), email, nil
}

type VerifyResult struct {
	Valid bool             `json:"valid"`
	Admin *admins.Identity `json:"admin,omitempty"`
}

// VerifyToken never fails toward the HTTP caller: any bad token is just
// valid=false. A valid signature still requires the signing admin to exist.
func (s *Service) VerifyToken(ctx context.Context, raw string) (VerifyResult, error) {
	_, email, err := s.ParseToken(raw)
	if err != nil {
		return VerifyResult{Valid: false}, nil
	}

	a, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, admins.ErrNotFound) {
			return VerifyResult{Valid: false}, nil
		}
		return VerifyResult{}, err
	}

	id := a.Identity()
	return VerifyResult{Valid: true, Admin: &id}, nil
}

// ForgotPassword always reports success so callers cannot probe which emails
// exist. When the admin is known, a one-hour reset link is emailed; only the
// sha256 of the token is stored.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	a, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, admins.ErrNotFound) {
			return nil
		}
		return err
	}

	rawToken, err := randomToken(32)
	if err != nil {
		return err
	}
	hash := hashToken(rawToken)
	expiry := time.Now().Add(resetTokenTTL)

	if err := s.store.UpdateResetToken(ctx, a.ID, &hash, &expiry); err != nil {
		return err
	}

	resetURL := s.clientURL + "/admin/reset-password?token=" + rawToken
	html, text := buildResetPasswordEmail(resetURL)
	return s.mail.Send(ctx, mailer.Email{
		FromName: s.fromName,
		From:     s.from,
		To:       []string{a.Email},
		Subject:  "Réinitialisation de votre mot de passe - Jana Distrib",
		HTMLBody: html,
		TextBody: text,
	})
}

func (s *Service) ResetPassword(ctx context.Context, rawToken, newPassword string) error {
	if len(newPassword) < minPasswordLen {
		return ErrWeakPassword
	}

	a, err := s.store.FindByResetToken(ctx, hashToken(rawToken))
	if err != nil {
		if errors.Is(err, admins.ErrNotFound) {
			return ErrInvalidToken
		}
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), resetBcryptCost)
	if err != nil {
		return err
	}

	if err := s.store.UpdatePassword(ctx, a.ID, string(hashed)); err != nil {
		return err
	}
	return s.store.UpdateResetToken(ctx, a.ID, nil, nil)
}

func randomToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
