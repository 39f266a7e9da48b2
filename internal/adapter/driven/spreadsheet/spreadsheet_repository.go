package spreadsheet

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/diillson/aws-cost-dashboard-go/internal/domain/entity"
	"github.com/diillson/aws-cost-dashboard-go/internal/domain/repository"
	"github.com/diillson/aws-cost-dashboard-go/internal/shared/types"
	"github.com/xuri/excelize/v2"
)

// SpreadsheetRepositoryImpl implementa o CostSourceRepository para arquivos
// .xlsx e .csv, locais ou no S3.
type SpreadsheetRepositoryImpl struct {
	fetcher repository.ObjectFetcher
}

// NewSpreadsheetRepository cria uma nova implementação do CostSourceRepository.
// fetcher pode ser nil quando não há fontes remotas.
func NewSpreadsheetRepository(fetcher repository.ObjectFetcher) repository.CostSourceRepository {
	return &SpreadsheetRepositoryImpl{fetcher: fetcher}
}

// ReadTable lê a planilha inteira como texto.
func (r *SpreadsheetRepositoryImpl) ReadTable(ctx context.Context, source, sheet string) (entity.RawTable, error) {
	data, err := r.readSource(ctx, source)
	if err != nil {
		return entity.RawTable{}, err
	}

	var rows [][]string
	switch ext := strings.ToLower(filepath.Ext(source)); ext {
	case ".xlsx", ".xlsm":
		rows, err = readXLSX(data, sheet)
	case ".csv":
		rows, err = readCSV(data)
	default:
		return entity.RawTable{}, fmt.Errorf("%w: %q", types.ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return entity.RawTable{}, err
	}

	return toRawTable(rows)
}

func (r *SpreadsheetRepositoryImpl) readSource(ctx context.Context, source string) ([]byte, error) {
	if strings.HasPrefix(source, "s3://") {
		if r.fetcher == nil {
			return nil, fmt.Errorf("%w: no fetcher configured for %s", types.ErrSourceUnreadable, source)
		}
		return r.fetcher.Fetch(ctx, source)
	}

	fileInfo, err := os.Stat(source)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", types.ErrSourceNotFound, source)
		}
		return nil, fmt.Errorf("%w: %w", types.ErrSourceUnreadable, err)
	}
	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory, not a file", types.ErrSourceUnreadable, source)
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrSourceUnreadable, err)
	}
	return data, nil
}

// readXLSX devolve os valores crus das células, sem formatação de número/data,
// para que datas cheguem como serial do Excel e custos sem separadores.
func readXLSX(data []byte, sheet string) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrSourceUnreadable, err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%w: workbook has no sheets", types.ErrSchemaMismatch)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: sheet %q: %w", types.ErrSchemaMismatch, sheet, err)
	}
	return rows, nil
}

func readCSV(data []byte) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", types.ErrSourceUnreadable, err)
		}
		rows = append(rows, record)
	}
	return rows, nil
}

func toRawTable(rows [][]string) (entity.RawTable, error) {
	if len(rows) == 0 {
		return entity.RawTable{}, fmt.Errorf("%w: no header row", types.ErrSchemaMismatch)
	}

	columns := make([]string, len(rows[0]))
	for i, c := range rows[0] {
		// Remove BOM que alguns exports de CSV deixam na primeira célula
		columns[i] = strings.TrimSpace(strings.TrimPrefix(c, "\ufeff"))
	}

	return entity.RawTable{
		Columns: columns,
		Rows:    rows[1:],
	}, nil
}
