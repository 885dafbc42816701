package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"context"
	"fmt"
	"io"
	"strings"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/shared/constant"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

const (
	otelAttrKey    = "s3.key"
	otelAttrBucket = "s3.bucket"
)

// S3 stores public room images in the configured bucket. Objects are addressed
// by key, e.g. "room/3f2c.png", and served from EXTERNAL_S3_PUBLIC_URL.
type S3 interface {
	Put(ctx context.Context, key string, body io.ReadSeeker, size int64, contentType string) (url string, err error)
	Delete(ctx context.Context, key string) error
	// KeyFromURL returns the object key behind a URL produced by Put, or empty
	// when the URL points somewhere else.
	KeyFromURL(url string) string
}

type s3Impl struct {
	client    *s3.Client
	bucket    string
	publicURL string
	endpoint  string
	otel      otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) S3 {
	settings := cfg.External.S3

	awsCfg, err := awsConfig.LoadDefaultConfig(context.Background(),
		awsConfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(settings.AccessKeyID, settings.SecretAccessKey, "")),
		awsConfig.WithRegion(settings.Region),
	)
	if err != nil {
		log.Error().Err(err).Msg("Error loading AWS configuration")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if settings.Endpoint != constant.Empty {
			o.BaseEndpoint = aws.String(settings.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &s3Impl{
		client:    client,
		bucket:    settings.BucketName,
		publicURL: strings.TrimSuffix(settings.PublicURL, "/"),
		endpoint:  strings.TrimSuffix(settings.Endpoint, "/"),
		otel:      otel,
	}
}

func (svc *s3Impl) Put(ctx context.Context, key string, body io.ReadSeeker, size int64, contentType string) (url string, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".Put")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttributes(map[string]any{otelAttrKey: key, otelAttrBucket: svc.bucket})

	_, err = svc.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(svc.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to upload %s: %w", key, err)
	}

	return svc.publicURL + "/" + key, nil
}

func (svc *s3Impl) Delete(ctx context.Context, key string) (err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttributes(map[string]any{otelAttrKey: key, otelAttrBucket: svc.bucket})

	_, err = svc.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(svc.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}

	return nil
}

func (svc *s3Impl) KeyFromURL(url string) string {
	return keyFromURL(url, svc.publicURL, svc.endpoint+"/"+svc.bucket)
}

func keyFromURL(url string, bases ...string) string {
	for _, base := range bases {
		if base == constant.Empty || base == "/" {
			continue
		}

		if key, ok := strings.CutPrefix(url, base+"/"); ok && key != constant.Empty {
			return key
		}
	}

	return constant.Empty
}
