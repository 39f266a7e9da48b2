package types

import "errors"

var (
	ErrSourceNotFound        = errors.New("cost source not found")
	ErrSourceUnreadable      = errors.New("cost source could not be read")
	ErrSchemaMismatch        = errors.New("cost source does not match the expected schema")
	ErrUnsupportedFormat     = errors.New("unsupported cost source format")
	ErrInvalidS3URI          = errors.New("invalid S3 URI, expected s3://bucket/key")
	ErrUnsupportedReportType = errors.New("unsupported report type")
)
