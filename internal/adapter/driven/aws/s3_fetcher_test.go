package aws

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3Types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/diillson/aws-cost-dashboard-go/internal/shared/types"
)

type fakeS3 struct {
	body  string
	err   error
	input *s3.GetObjectInput
}

func (f *fakeS3) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(f.body))}, nil
}

func TestParseS3URI(t *testing.T) {
	tests := []struct {
		uri        string
		wantBucket string
		wantKey    string
		wantErr    bool
	}{
		{"s3://billing/costs.xlsx", "billing", "costs.xlsx", false},
		{"s3://billing/2025/may/costs.csv", "billing", "2025/may/costs.csv", false},
		{"s3://billing", "", "", true},
		{"s3://billing/", "", "", true},
		{"s3:///costs.xlsx", "", "", true},
		{"https://billing/costs.xlsx", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			bucket, key, err := ParseS3URI(tt.uri)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseS3URI() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, types.ErrInvalidS3URI) {
				t.Errorf("error = %v, want ErrInvalidS3URI", err)
			}
			if bucket != tt.wantBucket || key != tt.wantKey {
				t.Errorf("got (%q, %q), want (%q, %q)", bucket, key, tt.wantBucket, tt.wantKey)
			}
		})
	}
}

func TestS3Fetcher_Fetch(t *testing.T) {
	client := &fakeS3{body: "Service,Total costs($)\n"}
	fetcher := newS3FetcherWithClient(client)

	data, err := fetcher.Fetch(context.Background(), "s3://billing/exports/costs.csv")
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if string(data) != "Service,Total costs($)\n" {
		t.Errorf("data = %q", data)
	}
	if *client.input.Bucket != "billing" || *client.input.Key != "exports/costs.csv" {
		t.Errorf("GetObject called with bucket=%q key=%q", *client.input.Bucket, *client.input.Key)
	}
}

func TestS3Fetcher_FetchErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{"no such key", &s3Types.NoSuchKey{}, types.ErrSourceNotFound},
		{"no such bucket", &s3Types.NoSuchBucket{}, types.ErrSourceNotFound},
		{"access denied", errors.New("AccessDenied"), types.ErrSourceUnreadable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fetcher := newS3FetcherWithClient(&fakeS3{err: tt.err})
			_, err := fetcher.Fetch(context.Background(), "s3://billing/costs.xlsx")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Fetch() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	fetcher := newS3FetcherWithClient(&fakeS3{})
	if _, err := fetcher.Fetch(context.Background(), "s3://billing"); !errors.Is(err, types.ErrInvalidS3URI) {
		t.Errorf("Fetch() error = %v, want ErrInvalidS3URI", err)
	}
}
