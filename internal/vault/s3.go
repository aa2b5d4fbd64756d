package vault

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"profilekit/internal/config"
	"profilekit/internal/profile"
)

// Static S3 credentials, for S3-compatible servers outside the AWS
// credential chain. When unset the default chain applies.
const (
	EnvS3AccessKeyID     = "PROFILEKIT_S3_ACCESS_KEY_ID"
	EnvS3SecretAccessKey = "PROFILEKIT_S3_SECRET_ACCESS_KEY"
)

// S3API is the subset of the S3 client used by S3Vault.
type S3API interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	HeadBucket(ctx context.Context, in *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
}

// Uploader streams an object to S3.
type Uploader interface {
	Upload(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

// s3RequestTimeout bounds each bucket request.
const s3RequestTimeout = time.Minute

// S3Vault stores media as objects named <prefix>/<id>. The media type is
// kept as the object's Content-Type.
type S3Vault struct {
	client   S3API
	uploader Uploader
	bucket   string
	prefix   string
}

var _ profile.MediaVault = (*S3Vault)(nil)

// NewS3Vault creates an S3Vault over an existing client and uploader.
func NewS3Vault(client S3API, uploader Uploader, bucket, prefix string) *S3Vault {
	return &S3Vault{client: client, uploader: uploader, bucket: bucket, prefix: prefix}
}

// NewS3VaultFromConfig loads AWS configuration for cfg.S3Region and builds
// the client. A custom endpoint switches to path-style addressing.
func NewS3VaultFromConfig(ctx context.Context, cfg config.VaultConfig) (*S3Vault, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.S3Region)}
	if id, secret := os.Getenv(EnvS3AccessKeyID), os.Getenv(EnvS3SecretAccessKey); id != "" && secret != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(id, secret, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})
	return NewS3Vault(client, manager.NewUploader(client), cfg.S3Bucket, cfg.S3Prefix), nil
}

func (v *S3Vault) key(id string) (string, error) {
	if id == "" || id == "." || id == ".." || path.Base(id) != id {
		return "", fmt.Errorf("invalid media id: %q", id)
	}
	if v.prefix == "" {
		return id, nil
	}
	return path.Join(v.prefix, id), nil
}

// PutMedia uploads size bytes from r.
func (v *S3Vault) PutMedia(id string, r io.Reader, size int64, mimeType string) error {
	key, err := v.key(id)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), s3RequestTimeout)
	defer cancel()

	_, err = v.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(v.bucket),
		Key:           aws.String(key),
		Body:          r,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(mimeType),
	})
	if err != nil {
		return fmt.Errorf("uploading %s: %w", key, err)
	}
	return nil
}

// GetMedia downloads the object behind id into w.
func (v *S3Vault) GetMedia(id string, w io.Writer) (string, error) {
	key, err := v.key(id)
	if err != nil {
		return "", err
	}
	ctx, cancel := context.WithTimeout(context.Background(), s3RequestTimeout)
	defer cancel()

	out, err := v.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(v.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var missing *types.NoSuchKey
		if errors.As(err, &missing) {
			return "", fmt.Errorf("%w: %s", profile.ErrMediaNotFound, id)
		}
		return "", fmt.Errorf("downloading %s: %w", key, err)
	}
	defer out.Body.Close()

	if _, err := io.Copy(w, out.Body); err != nil {
		return "", fmt.Errorf("failed to write media: %w", err)
	}
	mimeType := aws.ToString(out.ContentType)
	if mimeType == "" {
		mimeType = defaultMIMEType
	}
	return mimeType, nil
}

// ValidateSetup checks that the bucket exists and is reachable.
func (v *S3Vault) ValidateSetup() error {
	ctx, cancel := context.WithTimeout(context.Background(), s3RequestTimeout)
	defer cancel()

	if _, err := v.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(v.bucket)}); err != nil {
		return fmt.Errorf("bucket %s not accessible: %w", v.bucket, err)
	}
	return nil
}
