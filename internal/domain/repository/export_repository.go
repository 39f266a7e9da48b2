package repository

import (
	"github.com/diillson/aws-cost-dashboard-go/internal/domain/entity"
)

// ExportRepository writes the dashboard snapshot to report files.
type ExportRepository interface {
	ExportToCSV(snapshot *entity.DashboardSnapshot, filename string, outputDir string) (string, error)
	ExportToJSON(snapshot *entity.DashboardSnapshot, filename string, outputDir string) (string, error)
	ExportToPDF(snapshot *entity.DashboardSnapshot, filename string, outputDir string) (string, error)
}
