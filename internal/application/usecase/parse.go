package usecase

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Formatos aceitos na coluna de data, na ordem em que são tentados.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"1/2/06",
	"02-Jan-2006",
	"Jan 2, 2006",
}

// excelEpoch é o dia zero dos seriais de data do Excel (sistema 1900).
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// parseDate converte a célula em data. Células que não são datas devolvem ok=false
// e a linha é descartada, nunca gera erro.
func parseDate(cell string) (time.Time, bool) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, cell); err == nil {
			// mantém a data do relógio local da célula; o offset é descartado
			return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC), true
		}
	}

	// Planilhas lidas sem formatação trazem datas como serial (ex.: 45627).
	if serial, err := strconv.ParseFloat(cell, 64); err == nil {
		if math.IsNaN(serial) || serial < 1 || serial > 2958465 {
			return time.Time{}, false
		}
		days := math.Floor(serial)
		secs := math.Round((serial - days) * 86400)
		return excelEpoch.AddDate(0, 0, int(days)).Add(time.Duration(secs) * time.Second), true
	}

	return time.Time{}, false
}

// parseCost lê um valor monetário; aceita "$" e separadores de milhar.
// Valores inválidos são tratados como ausentes.
func parseCost(cell string) (float64, bool) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return 0, false
	}
	cell = strings.NewReplacer("$", "", ",", "", " ", "").Replace(cell)
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
