package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/diillson/aws-cost-dashboard-go/internal/domain/entity"
	"github.com/diillson/aws-cost-dashboard-go/internal/domain/repository"
	"github.com/diillson/aws-cost-dashboard-go/pkg/money"
	"github.com/jung-kurt/gofpdf"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

// metricRows devolve as quatro métricas na ordem da página.
func metricRows(m entity.MetricsSnapshot) [][2]string {
	return [][2]string{
		{"Total Cost (Dec 2024 - May 2025)", money.Fixed2(m.TotalCost)},
		{"Monthly Average Cost", money.Fixed2(m.MonthlyAverage)},
		{"Projected Annual Cost", money.Fixed2(m.ProjectedAnnual)},
		{"Annual Savings from Deletion", money.Fixed2(m.Savings)},
	}
}

func dataSourceLabel(o entity.LoadOutcome) string {
	if o.Sample {
		return fmt.Sprintf("sample data (%s: %s)", o.Source, o.Failure)
	}
	return o.Source
}

// ExportToCSV grava três blocos separados por linha em branco: métricas,
// custos mensais e custos por conta.
func (r *ExportRepositoryImpl) ExportToCSV(snapshot *entity.DashboardSnapshot, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	records := [][]string{
		{"Data Source", dataSourceLabel(snapshot.Data.Outcome)},
		{},
		{"Metric", "Value ($)"},
	}
	for _, m := range metricRows(snapshot.Metrics) {
		records = append(records, []string{m[0], m[1]})
	}

	records = append(records, []string{}, []string{"Month", "Cost ($)"})
	for _, mc := range snapshot.Monthly {
		records = append(records, []string{mc.Month, money.Fixed2(mc.Cost)})
	}

	records = append(records, []string{}, []string{"Account", "Cost ($)"})
	for _, a := range snapshot.Data.Accounts {
		records = append(records, []string{a.Account, money.Fixed2(a.Cost)})
	}

	if err := writer.WriteAll(records); err != nil {
		return "", fmt.Errorf("error writing CSV file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportToJSON(snapshot *entity.DashboardSnapshot, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(roundedSnapshot(snapshot)); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportToPDF(snapshot *entity.DashboardSnapshot, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{220, 53, 69}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	sectionTitle := func(title string) {
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(7)
		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)
	}

	twoColumnTable := func(left, right string, rows [][2]string) {
		pdf.SetFont("Arial", "B", 10)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.CellFormat(120, 7, tr(left), "B", 0, "L", false, 0, "")
		pdf.CellFormat(70, 7, tr(right), "B", 1, "R", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		for _, row := range rows {
			pdf.CellFormat(120, 6, tr(row[0]), "", 0, "L", false, 0, "")
			pdf.CellFormat(70, 6, tr(row[1]), "", 1, "R", false, 0, "")
		}
		pdf.Ln(8)
	}

	pdf.AddPage()

	// Cabeçalho
	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr("  AWS Cost Analysis Dashboard"), "", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("  Data source: %s", dataSourceLabel(snapshot.Data.Outcome))), "", 1, "L", true, 0, "")
	pdf.Ln(10)

	sectionTitle("Executive Summary")
	metrics := make([][2]string, 0, 4)
	for _, m := range metricRows(snapshot.Metrics) {
		metrics = append(metrics, [2]string{m[0], "$" + m[1]})
	}
	twoColumnTable("Metric", "Value", metrics)

	pdf.SetFont("Arial", "B", 11)
	pdf.SetTextColor(0, 128, 0)
	pdf.MultiCell(190, 6, tr(fmt.Sprintf("Deleting the account saves approximately %s per year.",
		money.FormatUSD(snapshot.Metrics.Savings))), "", "L", false)
	pdf.Ln(8)

	sectionTitle("Monthly Costs")
	monthly := make([][2]string, 0, len(snapshot.Monthly))
	for _, mc := range snapshot.Monthly {
		monthly = append(monthly, [2]string{mc.Month, money.FormatUSD(mc.Cost)})
	}
	twoColumnTable("Month", "Cost", monthly)

	sectionTitle("Cost by Account")
	accounts := make([][2]string, 0, len(snapshot.Data.Accounts))
	for _, a := range snapshot.Data.Accounts {
		accounts = append(accounts, [2]string{a.Account, money.FormatUSD(a.Cost)})
	}
	twoColumnTable("Account", "Cost", accounts)

	// Rodapé
	pdf.SetY(-15)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(128, 128, 128)
	footerText := fmt.Sprintf("Generated by AWS Cost Dashboard | %s", snapshot.GeneratedAt.Format("2006-01-02 15:04 MST"))
	pdf.CellFormat(0, 10, tr(footerText), "", 0, "L", false, 0, "")

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// roundedSnapshot devolve uma cópia com métricas, meses e contas arredondados
// para centavos. Os gráficos seguem com os valores originais.
func roundedSnapshot(s *entity.DashboardSnapshot) *entity.DashboardSnapshot {
	out := *s
	out.Metrics = entity.MetricsSnapshot{
		TotalCost:       money.Round2(s.Metrics.TotalCost),
		MonthlyAverage:  money.Round2(s.Metrics.MonthlyAverage),
		ProjectedAnnual: money.Round2(s.Metrics.ProjectedAnnual),
		Savings:         money.Round2(s.Metrics.Savings),
	}

	out.Monthly = make([]entity.MonthlyCost, len(s.Monthly))
	for i, mc := range s.Monthly {
		out.Monthly[i] = entity.MonthlyCost{Month: mc.Month, Cost: money.Round2(mc.Cost)}
	}

	out.Data.Accounts = make([]entity.AccountCost, len(s.Data.Accounts))
	for i, a := range s.Data.Accounts {
		out.Data.Accounts[i] = entity.AccountCost{Account: a.Account, Cost: money.Round2(a.Cost)}
	}
	return &out
}

// generateFilename cria um nome de arquivo único com timestamp e garante que o diretório exista.
func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}
