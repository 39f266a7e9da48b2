package repository

import (
	"context"

	"github.com/diillson/aws-cost-dashboard-go/internal/domain/entity"
)

// CostSourceRepository reads the billing spreadsheet into a raw table.
type CostSourceRepository interface {
	// ReadTable reads the first sheet (or the named one) of source.
	// source is a local path or an s3:// URI.
	ReadTable(ctx context.Context, source string, sheet string) (entity.RawTable, error)
}

// ObjectFetcher downloads a remote object, e.g. from S3.
type ObjectFetcher interface {
	Fetch(ctx context.Context, uri string) ([]byte, error)
}
