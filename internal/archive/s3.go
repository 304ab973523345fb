// Package archive keeps a copy of every generated document in S3.
package archive

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const uploadTimeout = 30 * time.Second

type putObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Saver uploads documents under Prefix in Bucket. It satisfies
// pdfdoc.Saver, so the renderers can write straight to the archive.
type S3Saver struct {
	client putObjectAPI
	Bucket string
	Prefix string
}

// NewS3Saver loads the default AWS credential chain for region.
func NewS3Saver(ctx context.Context, region, bucket, prefix string) (*S3Saver, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return &S3Saver{client: s3.NewFromConfig(cfg), Bucket: bucket, Prefix: prefix}, nil
}

// Key is the object key a document name is stored under.
func (s *S3Saver) Key(name string) string {
	return path.Join(strings.Trim(s.Prefix, "/"), path.Base(name))
}

func (s *S3Saver) Save(name string, data []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), uploadTimeout)
	defer cancel()

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.Bucket),
		Key:         aws.String(s.Key(name)),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType(name)),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s to S3: %w", name, err)
	}
	return nil
}

func contentType(name string) string {
	switch path.Ext(name) {
	case ".pdf":
		return "application/pdf"
	case ".xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "application/octet-stream"
}
