package usecase

import (
	"context"
	"fmt"

	"github.com/diillson/aws-cost-dashboard-go/internal/domain/entity"
	"github.com/diillson/aws-cost-dashboard-go/internal/shared/types"
)

type fakeSource struct {
	table entity.RawTable
	err   error
}

func (f *fakeSource) ReadTable(ctx context.Context, source, sheet string) (entity.RawTable, error) {
	return f.table, f.err
}

type fakeConsole struct {
	warnings []string
	errors   []string
	success  []string
	trend    []types.MonthlyCost
}

func (c *fakeConsole) Print(a ...interface{})                 {}
func (c *fakeConsole) Printf(format string, a ...interface{}) {}
func (c *fakeConsole) Println(a ...interface{})               {}
func (c *fakeConsole) LogInfo(format string, a ...interface{}) {}
func (c *fakeConsole) LogWarning(format string, a ...interface{}) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) LogError(format string, a ...interface{}) {
	c.errors = append(c.errors, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) LogSuccess(format string, a ...interface{}) {
	c.success = append(c.success, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) LogDebugFields(msg string, kv ...interface{}) {}
func (c *fakeConsole) LogInfoFields(msg string, kv ...interface{})  {}
func (c *fakeConsole) LogWarningFields(msg string, kv ...interface{}) {
	c.warnings = append(c.warnings, msg)
}
func (c *fakeConsole) Status(message string) types.StatusHandle { return fakeStatus{} }
func (c *fakeConsole) CreateTable() types.TableInterface        { return &fakeTable{} }
func (c *fakeConsole) DisplayTrendBars(monthlyCosts []types.MonthlyCost) {
	c.trend = monthlyCosts
}

type fakeStatus struct{}

func (fakeStatus) Update(message string) {}
func (fakeStatus) Stop()                 {}

type fakeTable struct {
	rows [][]interface{}
}

func (t *fakeTable) AddColumn(name string, options ...interface{}) {}
func (t *fakeTable) AddRow(cells ...interface{})                   { t.rows = append(t.rows, cells) }
func (t *fakeTable) Render() string                                { return "" }

type fakeExport struct {
	calls []string
	err   error
}

func (f *fakeExport) record(kind string) (string, error) {
	f.calls = append(f.calls, kind)
	if f.err != nil {
		return "", f.err
	}
	return "/tmp/report." + kind, nil
}

func (f *fakeExport) ExportToCSV(s *entity.DashboardSnapshot, filename, dir string) (string, error) {
	return f.record("csv")
}

func (f *fakeExport) ExportToJSON(s *entity.DashboardSnapshot, filename, dir string) (string, error) {
	return f.record("json")
}

func (f *fakeExport) ExportToPDF(s *entity.DashboardSnapshot, filename, dir string) (string, error) {
	return f.record("pdf")
}

func rawTable(columns []string, rows ...[]string) entity.RawTable {
	return entity.RawTable{Columns: columns, Rows: rows}
}
