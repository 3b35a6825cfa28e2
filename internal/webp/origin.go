package webp

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/cookstemma/edge/internal/observability"
)

// ErrNotFound is returned when neither the requested object nor its source exists.
var ErrNotFound = errors.New("image not found")

// ObjectStore is the subset of the S3 client used by Origin.
type ObjectStore interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Object is an image ready to be streamed to the client.
type Object struct {
	Body          io.ReadCloser
	ContentType   string
	ContentLength int64
	ETag          string
	// Fallback is set when a WebP variant was requested but the JPEG source is served instead.
	Fallback bool
}

// Origin serves image variants out of an S3 bucket.
type Origin struct {
	store      ObjectStore
	bucket     string
	transcoder *Transcoder
}

// NewOrigin creates an Origin. A nil transcoder disables on-demand WebP generation.
func NewOrigin(store ObjectStore, bucket string, transcoder *Transcoder) *Origin {
	return &Origin{store: store, bucket: bucket, transcoder: transcoder}
}

// Fetch loads the object named by sel.URI. When a rewritten WebP variant is missing it is
// generated from the JPEG source and written back to the bucket.
func (o *Origin) Fetch(ctx context.Context, sel Selection) (*Object, error) {
	obj, err := o.get(ctx, objectKey(sel.URI))
	if err == nil {
		return obj, nil
	}
	if !errors.Is(err, ErrNotFound) || !sel.Rewritten {
		return nil, err
	}

	source, err := o.get(ctx, objectKey(sel.SourceURI))
	if err != nil {
		return nil, err
	}
	if o.transcoder == nil {
		source.Fallback = true
		return source, nil
	}

	defer source.Body.Close()
	raw, err := io.ReadAll(source.Body)
	if err != nil {
		return nil, fmt.Errorf("read source image: %w", err)
	}

	encoded, err := o.transcoder.JPEGToWebP(bytes.NewReader(raw))
	if err != nil {
		observability.GlobalLogger.WarnContext(ctx, "webp transcode failed, serving source",
			slog.String("key", objectKey(sel.SourceURI)),
			slog.String("error", err.Error()),
		)
		return &Object{
			Body:          io.NopCloser(bytes.NewReader(raw)),
			ContentType:   source.ContentType,
			ContentLength: int64(len(raw)),
			Fallback:      true,
		}, nil
	}

	if err := o.put(ctx, objectKey(sel.URI), encoded, "image/webp"); err != nil {
		observability.GlobalLogger.WarnContext(ctx, "failed to store generated webp variant",
			slog.String("key", objectKey(sel.URI)),
			slog.String("error", err.Error()),
		)
	}
	observability.WebPTranscodes.Inc()

	return &Object{
		Body:          io.NopCloser(bytes.NewReader(encoded)),
		ContentType:   "image/webp",
		ContentLength: int64(len(encoded)),
	}, nil
}

func (o *Origin) get(ctx context.Context, key string) (*Object, error) {
	out, err := o.store.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(o.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get object %s: %w", key, err)
	}

	obj := &Object{
		Body:        out.Body,
		ContentType: aws.ToString(out.ContentType),
		ETag:        aws.ToString(out.ETag),
	}
	if out.ContentLength != nil {
		obj.ContentLength = *out.ContentLength
	}
	if obj.ContentType == "" {
		obj.ContentType = contentTypeFor(key)
	}
	return obj, nil
}

func (o *Origin) put(ctx context.Context, key string, data []byte, contentType string) error {
	_, err := o.store.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(o.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("put object %s: %w", key, err)
	}
	return nil
}

func objectKey(uri string) string {
	return strings.TrimPrefix(uri, "/")
}

func isNotFound(err error) bool {
	var nsk *s3types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}
	var nf *s3types.NotFound
	if errors.As(err, &nf) {
		return true
	}
	var re *awshttp.ResponseError
	return errors.As(err, &re) && re.HTTPStatusCode() == http.StatusNotFound
}

func contentTypeFor(key string) string {
	lower := strings.ToLower(key)
	switch {
	case strings.HasSuffix(lower, ".webp"):
		return "image/webp"
	case strings.HasSuffix(lower, ".jpg"), strings.HasSuffix(lower, ".jpeg"):
		return "image/jpeg"
	case strings.HasSuffix(lower, ".png"):
		return "image/png"
	default:
		return "application/octet-stream"
	}
}
