package repo

import (
	"errors"

	"github.com/SSG3800/Retail-POS-System/internal/models"
)

// SettingsRepository manages the single till credential row.
type SettingsRepository interface {
	Get() (models.Settings, error)
	UpdatePasswordHash(hash string, mustChange bool) error
}

// ErrSettingsNotFound is returned when the credential row has not been seeded.
var ErrSettingsNotFound = errors.New("settings not found")
