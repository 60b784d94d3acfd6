// Package auth implements the access gate: a single shared till password and
// the session tokens issued once it has been verified.
package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/SSG3800/Retail-POS-System/internal/repo"
)

// ErrWrongPassword is returned when a candidate password does not verify.
var ErrWrongPassword = errors.New("wrong password")

// ErrEmptyPassword is returned when a new password is empty.
var ErrEmptyPassword = errors.New("password cannot be empty")

// Gate guards mutating operations behind the shared till password.
type Gate struct {
	settings repo.SettingsRepository
}

func NewGate(settings repo.SettingsRepository) *Gate {
	return &Gate{settings: settings}
}

// HashPassword produces the bcrypt hash stored in the settings row.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether candidate matches the stored credential.
func (g *Gate) Verify(candidate string) (bool, error) {
	settings, err := g.settings.Get()
	if err != nil {
		return false, err
	}
	return bcrypt.CompareHashAndPassword([]byte(settings.PasswordHash), []byte(candidate)) == nil, nil
}

// MustChange reports whether the factory-default password is still in place.
func (g *Gate) MustChange() (bool, error) {
	settings, err := g.settings.Get()
	if err != nil {
		return false, err
	}
	return settings.MustChange, nil
}

// ChangePassword replaces the stored hash after verifying the old password.
// A successful change clears the first-run must-change state.
func (g *Gate) ChangePassword(old, new string) error {
	ok, err := g.Verify(old)
	if err != nil {
		return err
	}
	if !ok {
		return ErrWrongPassword
	}
	if new == "" {
		return ErrEmptyPassword
	}

	hash, err := HashPassword(new)
	if err != nil {
		return err
	}
	return g.settings.UpdatePasswordHash(hash, false)
}
