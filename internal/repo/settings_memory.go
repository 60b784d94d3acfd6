package repo

import (
	"github.com/SSG3800/Retail-POS-System/internal/models"
)

type InMemorySettingsRepository struct {
	settings models.Settings
}

// NewInMemorySettingsRepository seeds the single credential row, mirroring the
// first-run bootstrap of the durable store.
func NewInMemorySettingsRepository(passwordHash string, mustChange bool) *InMemorySettingsRepository {
	return &InMemorySettingsRepository{
		settings: models.Settings{ID: 1, PasswordHash: passwordHash, MustChange: mustChange},
	}
}

func (r *InMemorySettingsRepository) Get() (models.Settings, error) {
	return r.settings, nil
}

func (r *InMemorySettingsRepository) UpdatePasswordHash(hash string, mustChange bool) error {
	r.settings.PasswordHash = hash
	r.settings.MustChange = mustChange
	return nil
}
