package aws

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3Types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/diillson/aws-cost-dashboard-go/internal/domain/repository"
	"github.com/diillson/aws-cost-dashboard-go/internal/shared/types"
)

// s3GetObjectAPI é o subconjunto do cliente S3 usado pelo fetcher.
type s3GetObjectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3FetcherImpl implementa o ObjectFetcher com um cliente S3 criado sob demanda.
type S3FetcherImpl struct {
	profile string
	region  string

	mu     sync.Mutex
	client s3GetObjectAPI
}

// NewS3Fetcher cria um ObjectFetcher para URIs s3://. profile e region são opcionais.
func NewS3Fetcher(profile, region string) repository.ObjectFetcher {
	return &S3FetcherImpl{profile: profile, region: region}
}

func newS3FetcherWithClient(client s3GetObjectAPI) *S3FetcherImpl {
	return &S3FetcherImpl{client: client}
}

func (f *S3FetcherImpl) getClient(ctx context.Context) (s3GetObjectAPI, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.client != nil {
		return f.client, nil
	}

	var opts []func(*config.LoadOptions) error
	if f.profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(f.profile))
	}
	if f.region != "" {
		opts = append(opts, config.WithRegion(f.region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config for profile %s: %w", f.profile, err)
	}

	f.client = s3.NewFromConfig(cfg)
	return f.client, nil
}

// ParseS3URI divide s3://bucket/key em bucket e key.
func ParseS3URI(uri string) (string, string, error) {
	rest, ok := strings.CutPrefix(uri, "s3://")
	if !ok {
		return "", "", fmt.Errorf("%w: %s", types.ErrInvalidS3URI, uri)
	}
	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("%w: %s", types.ErrInvalidS3URI, uri)
	}
	return bucket, key, nil
}

// Fetch baixa o objeto inteiro para a memória.
func (f *S3FetcherImpl) Fetch(ctx context.Context, uri string) ([]byte, error) {
	bucket, key, err := ParseS3URI(uri)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrSourceUnreadable, err)
	}

	client, err := f.getClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrSourceUnreadable, err)
	}

	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noKey *s3Types.NoSuchKey
		var noBucket *s3Types.NoSuchBucket
		if errors.As(err, &noKey) || errors.As(err, &noBucket) {
			return nil, fmt.Errorf("%w: %s", types.ErrSourceNotFound, uri)
		}
		return nil, fmt.Errorf("%w: error getting %s: %w", types.ErrSourceUnreadable, uri, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: error reading %s: %w", types.ErrSourceUnreadable, uri, err)
	}
	return data, nil
}
