package repository

import (
	"github.com/diillson/payments-dashboard-go/internal/domain/entity"
)

// ExportRepository writes dashboard reports to files and returns their absolute paths.
type ExportRepository interface {
	ExportToCSV(rows []entity.Record, filename, outputDir string) (string, error)
	ExportToJSON(view entity.DashboardView, filename, outputDir string) (string, error)
	ExportToPDF(view entity.DashboardView, filename, outputDir string) (string, error)
}
