package handlers

import (
	"github.com/SSG3800/Retail-POS-System/internal/auth"
	"github.com/SSG3800/Retail-POS-System/internal/export"
	"github.com/SSG3800/Retail-POS-System/internal/http/lockout"
	"github.com/SSG3800/Retail-POS-System/internal/pos"
	repo "github.com/SSG3800/Retail-POS-System/internal/repo"
)

var (
	productRepo  repo.ProductRepository
	movementRepo repo.MovementRepository
	saleRepo     repo.SaleRepository
	metricsRepo  repo.MetricsRepository

	gate         *auth.Gate
	till         *pos.Service
	exporter     *export.Exporter
	lockoutStore lockout.Store
	exportDir    = "."
)

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}

func SetMovementRepo(r repo.MovementRepository) {
	movementRepo = r
}

func SetSaleRepo(r repo.SaleRepository) {
	saleRepo = r
}

func SetMetricsRepo(r repo.MetricsRepository) {
	metricsRepo = r
}

func SetGate(g *auth.Gate) {
	gate = g
}

func SetTill(s *pos.Service) {
	till = s
}

func SetExporter(e *export.Exporter) {
	exporter = e
}

func SetLockoutStore(s lockout.Store) {
	lockoutStore = s
}

func SetExportDir(dir string) {
	exportDir = dir
}
