package entity

import "time"

// CostRecord represents one cleaned row of the billing spreadsheet.
type CostRecord struct {
	Date    time.Time          `json:"date"`
	Account string             `json:"account,omitempty"`
	Service string             `json:"service,omitempty"`
	Costs   map[string]float64 `json:"costs"`
}

// Cost devolve o valor da coluna de custo; colunas ausentes contam como zero.
func (r CostRecord) Cost(column string) float64 {
	return r.Costs[column]
}

// CostTable is the in-memory table produced by the loader.
type CostTable struct {
	Records []CostRecord `json:"records"`
	// HasAccountColumn indica se a origem trouxe a coluna de identificação da conta.
	HasAccountColumn bool `json:"has_account_column"`
}

// Len returns the number of rows in the table.
func (t CostTable) Len() int {
	return len(t.Records)
}

// Empty reports whether the table has no rows.
func (t CostTable) Empty() bool {
	return len(t.Records) == 0
}

// AccountCost represents the summed cost of one account over the window.
type AccountCost struct {
	Account string  `json:"account"`
	Cost    float64 `json:"cost"`
}

// MonthlyCost represents the cost for a specific month, used for trend analysis.
type MonthlyCost struct {
	Month string  `json:"month"`
	Cost  float64 `json:"cost"`
}
