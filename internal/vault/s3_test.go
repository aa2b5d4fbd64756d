package vault

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"profilekit/internal/profile"
)

type fakeObject struct {
	data        []byte
	contentType string
}

// fakeBucket implements S3API and Uploader over an in-memory map.
type fakeBucket struct {
	name    string
	objects map[string]fakeObject
	failPut bool
	calls   []callContext
}

// callContext records the state of the context a request was made with.
type callContext struct {
	hasDeadline bool
	err         error
}

func (b *fakeBucket) record(ctx context.Context) {
	_, ok := ctx.Deadline()
	b.calls = append(b.calls, callContext{hasDeadline: ok, err: ctx.Err()})
}

func newFakeBucket(name string) *fakeBucket {
	return &fakeBucket{name: name, objects: make(map[string]fakeObject)}
}

func (b *fakeBucket) Upload(ctx context.Context, in *s3.PutObjectInput, _ ...func(*manager.Uploader)) (*manager.UploadOutput, error) {
	b.record(ctx)
	if b.failPut {
		return nil, errors.New("access denied")
	}
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	b.objects[aws.ToString(in.Key)] = fakeObject{data: data, contentType: aws.ToString(in.ContentType)}
	return &manager.UploadOutput{}, nil
}

func (b *fakeBucket) GetObject(ctx context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	b.record(ctx)
	obj, ok := b.objects[aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	out := &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(obj.data))}
	if obj.contentType != "" {
		out.ContentType = aws.String(obj.contentType)
	}
	return out, nil
}

func (b *fakeBucket) HeadBucket(ctx context.Context, in *s3.HeadBucketInput, _ ...func(*s3.Options)) (*s3.HeadBucketOutput, error) {
	b.record(ctx)
	if aws.ToString(in.Bucket) != b.name {
		return nil, &types.NotFound{}
	}
	return &s3.HeadBucketOutput{}, nil
}

func TestS3Vault_PutGet(t *testing.T) {
	bucket := newFakeBucket("media")
	v := NewS3Vault(bucket, bucket, "media", "profilekit/device-1")

	data := []byte("png bytes")
	if err := v.PutMedia("abc", bytes.NewReader(data), int64(len(data)), "image/png"); err != nil {
		t.Fatalf("PutMedia() error = %v", err)
	}
	if _, ok := bucket.objects["profilekit/device-1/abc"]; !ok {
		t.Fatalf("object not stored under prefix: %v", bucket.objects)
	}

	var buf bytes.Buffer
	mime, err := v.GetMedia("abc", &buf)
	if err != nil {
		t.Fatalf("GetMedia() error = %v", err)
	}
	if mime != "image/png" {
		t.Errorf("GetMedia() mime = %q, want %q", mime, "image/png")
	}
	if !bytes.Equal(buf.Bytes(), data) {
		t.Errorf("GetMedia() data = %q, want %q", buf.Bytes(), data)
	}
}

func TestS3Vault_GetMedia_Missing(t *testing.T) {
	bucket := newFakeBucket("media")
	v := NewS3Vault(bucket, bucket, "media", "")

	_, err := v.GetMedia("nope", io.Discard)
	if !errors.Is(err, profile.ErrMediaNotFound) {
		t.Errorf("GetMedia() error = %v, want ErrMediaNotFound", err)
	}
}

func TestS3Vault_GetMedia_DefaultMIME(t *testing.T) {
	bucket := newFakeBucket("media")
	bucket.objects["raw"] = fakeObject{data: []byte("x")}
	v := NewS3Vault(bucket, bucket, "media", "")

	mime, err := v.GetMedia("raw", io.Discard)
	if err != nil {
		t.Fatalf("GetMedia() error = %v", err)
	}
	if mime != defaultMIMEType {
		t.Errorf("GetMedia() mime = %q, want %q", mime, defaultMIMEType)
	}
}

func TestS3Vault_RejectsUnsafeIDs(t *testing.T) {
	bucket := newFakeBucket("media")
	v := NewS3Vault(bucket, bucket, "media", "p")

	for _, id := range []string{"", ".", "..", "a/b", "../x"} {
		if err := v.PutMedia(id, strings.NewReader("x"), 1, "text/plain"); err == nil {
			t.Errorf("PutMedia(%q) expected error", id)
		}
	}
	if len(bucket.objects) != 0 {
		t.Errorf("unexpected objects stored: %v", bucket.objects)
	}
}

func TestS3Vault_UploadFailure(t *testing.T) {
	bucket := newFakeBucket("media")
	bucket.failPut = true
	v := NewS3Vault(bucket, bucket, "media", "")

	if err := v.PutMedia("a", strings.NewReader("x"), 1, "text/plain"); err == nil {
		t.Fatal("PutMedia() expected error")
	}
}

func TestS3Vault_ValidateSetup(t *testing.T) {
	bucket := newFakeBucket("media")

	if err := NewS3Vault(bucket, bucket, "media", "").ValidateSetup(); err != nil {
		t.Errorf("ValidateSetup() error = %v", err)
	}
	if err := NewS3Vault(bucket, bucket, "other", "").ValidateSetup(); err == nil {
		t.Error("ValidateSetup() expected error for missing bucket")
	}
}

func TestS3Vault_EachRequestGetsFreshDeadline(t *testing.T) {
	bucket := newFakeBucket("media")
	v := NewS3Vault(bucket, bucket, "media", "")

	if err := v.ValidateSetup(); err != nil {
		t.Fatalf("ValidateSetup() error = %v", err)
	}
	if err := v.PutMedia("a", strings.NewReader("x"), 1, "image/png"); err != nil {
		t.Fatalf("PutMedia() error = %v", err)
	}
	if _, err := v.GetMedia("a", io.Discard); err != nil {
		t.Fatalf("GetMedia() error = %v", err)
	}

	if len(bucket.calls) != 3 {
		t.Fatalf("got %d requests, want 3", len(bucket.calls))
	}
	for i, c := range bucket.calls {
		if !c.hasDeadline {
			t.Errorf("request %d has no deadline", i)
		}
		if c.err != nil {
			t.Errorf("request %d started with a finished context: %v", i, c.err)
		}
	}
}
