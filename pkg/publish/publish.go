// Package publish uploads rendered documents to S3 or an S3-compatible
// store.
//
// Example usage:
//
//	client := publish.NewClient("eu-west-1", "")
//	p, err := publish.New(client, publish.Config{Bucket: "my-site", Prefix: "pages/"})
//	res, err := p.PublishFile(ctx, "docs/index.yaml", document.Options{})
//	// res.Key == "pages/docs/index.html"
package publish

import (
	"context"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vango-dev/html5el/internal/errors"
	"github.com/vango-dev/html5el/pkg/document"
	"github.com/vango-dev/html5el/pkg/metrics"
)

// ContentType is the content type of published objects.
const ContentType = "text/html; charset=utf-8"

// ObjectPutter is the part of *s3.Client used by Publisher.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Config configures a Publisher.
type Config struct {
	// Bucket is the destination bucket. Required.
	Bucket string

	// Prefix is prepended to every key, e.g. "site/".
	Prefix string

	// Metrics records each publish as a render. May be nil.
	Metrics *metrics.Recorder

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Result describes an uploaded object.
type Result struct {
	Bucket string
	Key    string
	Bytes  int
	ETag   string
}

// Publisher renders documents and uploads them.
type Publisher struct {
	client  ObjectPutter
	bucket  string
	prefix  string
	metrics *metrics.Recorder
	logger  *slog.Logger
}

// New creates a Publisher. It fails with E060 when no bucket is set.
func New(client ObjectPutter, cfg Config) (*Publisher, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("E060").
			WithSuggestion("Pass --bucket or set publish.bucket in html5el.json")
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Publisher{
		client:  client,
		bucket:  cfg.Bucket,
		prefix:  cfg.Prefix,
		metrics: cfg.Metrics,
		logger:  cfg.Logger.With("component", "publish"),
	}, nil
}

// Publish uploads the rendering of doc under the key derived from name.
func (p *Publisher) Publish(ctx context.Context, name string, doc *document.Document) (Result, error) {
	body := doc.Render()
	key := Key(p.prefix, name)

	out, err := p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		Body:        strings.NewReader(body),
		ContentType: aws.String(ContentType),
		Metadata: map[string]string{
			"source": name,
			"kinds":  strings.Join(doc.Kinds(), ","),
		},
	})
	if err != nil {
		return Result{}, errors.New("E061").
			WithDetailf("s3://%s/%s", p.bucket, key).
			Wrap(err)
	}

	res := Result{Bucket: p.bucket, Key: key, Bytes: len(body)}
	if out != nil && out.ETag != nil {
		res.ETag = *out.ETag
	}
	p.logger.Info("published", "source", name, "bucket", p.bucket, "key", key, "bytes", res.Bytes)
	return res, nil
}

// PublishFile loads the description at file and publishes it.
func (p *Publisher) PublishFile(ctx context.Context, file string, opts document.Options) (Result, error) {
	var res Result
	err := p.metrics.Observe(ctx, file, func(ctx context.Context) (metrics.Result, error) {
		doc, err := document.Load(file, opts)
		if err != nil {
			return metrics.Result{}, err
		}
		res, err = p.Publish(ctx, file, doc)
		if err != nil {
			return metrics.Result{}, err
		}
		return metrics.Result{Bytes: res.Bytes, Nodes: doc.Count()}, nil
	})
	return res, err
}

// Key returns the object key of a document: prefix, then name with its
// extension replaced by ".html", slash separated.
func Key(prefix, name string) string {
	name = filepath.ToSlash(name)
	name = strings.TrimSuffix(name, path.Ext(name)) + ".html"
	name = strings.TrimPrefix(path.Clean("/"+name), "/")
	return prefix + name
}

// NewClient builds an S3 client for region from the standard AWS
// environment credentials (AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY,
// AWS_SESSION_TOKEN). A non-empty endpoint selects an S3-compatible store
// with path-style addressing.
func NewClient(region, endpoint string) *s3.Client {
	return s3.New(s3.Options{
		Region:      region,
		Credentials: aws.NewCredentialsCache(aws.CredentialsProviderFunc(envCredentials)),
	}, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})
}

func envCredentials(context.Context) (aws.Credentials, error) {
	id := os.Getenv("AWS_ACCESS_KEY_ID")
	secret := os.Getenv("AWS_SECRET_ACCESS_KEY")
	if id == "" || secret == "" {
		return aws.Credentials{}, errors.New("E061").
			WithDetail("AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY are not set")
	}
	return aws.Credentials{
		AccessKeyID:     id,
		SecretAccessKey: secret,
		SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
		Source:          "Environment",
	}, nil
}
