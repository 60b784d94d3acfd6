package repo

import (
	"github.com/SSG3800/Retail-POS-System/internal/models"
)

type MovementRepository interface {
	Log(productID, delta int, reason string) error
	GetByProductID(productID int, mf MovementFilter) ([]models.Movement, int, error)
}
