package s3_test

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	s3aws "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/staticserve/core/loader"
	"github.com/dmitrymomot/staticserve/integration/storage/s3"
)

type mockClient struct {
	headFunc func(ctx context.Context, params *s3aws.HeadObjectInput) (*s3aws.HeadObjectOutput, error)
	getFunc  func(ctx context.Context, params *s3aws.GetObjectInput) (*s3aws.GetObjectOutput, error)

	headKeys []string
	getKeys  []string
}

func (m *mockClient) HeadObject(ctx context.Context, params *s3aws.HeadObjectInput, _ ...func(*s3aws.Options)) (*s3aws.HeadObjectOutput, error) {
	m.headKeys = append(m.headKeys, aws.ToString(params.Key))
	return m.headFunc(ctx, params)
}

func (m *mockClient) GetObject(ctx context.Context, params *s3aws.GetObjectInput, _ ...func(*s3aws.Options)) (*s3aws.GetObjectOutput, error) {
	m.getKeys = append(m.getKeys, aws.ToString(params.Key))
	return m.getFunc(ctx, params)
}

func newTestLoader(t *testing.T, client *mockClient, cfg s3.Config) *s3.Loader {
	t.Helper()

	if cfg.Bucket == "" {
		cfg.Bucket = "test-bucket"
	}

	l, err := s3.New(context.Background(), cfg, s3.WithClient(client))
	require.NoError(t, err)
	return l
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("missing_bucket", func(t *testing.T) {
		t.Parallel()

		_, err := s3.New(context.Background(), s3.Config{}, s3.WithClient(&mockClient{}))
		assert.Error(t, err)
	})
}

func TestStat(t *testing.T) {
	t.Parallel()

	t.Run("existing_object", func(t *testing.T) {
		t.Parallel()

		modTime := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
		client := &mockClient{
			headFunc: func(_ context.Context, _ *s3aws.HeadObjectInput) (*s3aws.HeadObjectOutput, error) {
				return &s3aws.HeadObjectOutput{
					ContentLength: aws.Int64(42),
					LastModified:  aws.Time(modTime),
				}, nil
			},
		}

		l := newTestLoader(t, client, s3.Config{})

		meta, err := l.Stat(context.Background(), "assets/app.css")
		require.NoError(t, err)
		assert.True(t, meta.Exists)
		assert.False(t, meta.IsDir)
		assert.Equal(t, int64(42), meta.Size)
		assert.True(t, meta.ModTime.Equal(modTime))
		assert.Equal(t, []string{"assets/app.css"}, client.headKeys)
	})

	t.Run("missing_object", func(t *testing.T) {
		t.Parallel()

		client := &mockClient{
			headFunc: func(_ context.Context, _ *s3aws.HeadObjectInput) (*s3aws.HeadObjectOutput, error) {
				return nil, &types.NotFound{}
			},
		}

		l := newTestLoader(t, client, s3.Config{})

		meta, err := l.Stat(context.Background(), "missing.txt")
		require.NoError(t, err)
		assert.False(t, meta.Exists)
	})

	t.Run("storage_fault", func(t *testing.T) {
		t.Parallel()

		client := &mockClient{
			headFunc: func(_ context.Context, _ *s3aws.HeadObjectInput) (*s3aws.HeadObjectOutput, error) {
				return nil, &smithy.GenericAPIError{Code: "AccessDenied", Message: "access denied"}
			},
		}

		l := newTestLoader(t, client, s3.Config{})

		_, err := l.Stat(context.Background(), "forbidden.txt")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "AccessDenied")
	})

	t.Run("key_prefix", func(t *testing.T) {
		t.Parallel()

		client := &mockClient{
			headFunc: func(_ context.Context, _ *s3aws.HeadObjectInput) (*s3aws.HeadObjectOutput, error) {
				return &s3aws.HeadObjectOutput{}, nil
			},
		}

		l := newTestLoader(t, client, s3.Config{KeyPrefix: "/public/"})

		_, err := l.Stat(context.Background(), "app.js")
		require.NoError(t, err)
		assert.Equal(t, []string{"public/app.js"}, client.headKeys)
	})
}

func TestOpen(t *testing.T) {
	t.Parallel()

	t.Run("existing_object", func(t *testing.T) {
		t.Parallel()

		client := &mockClient{
			getFunc: func(_ context.Context, _ *s3aws.GetObjectInput) (*s3aws.GetObjectOutput, error) {
				return &s3aws.GetObjectOutput{
					Body: io.NopCloser(strings.NewReader("body{margin:0}")),
				}, nil
			},
		}

		l := newTestLoader(t, client, s3.Config{})

		rc, err := l.Open(context.Background(), "assets/app.css")
		require.NoError(t, err)
		defer rc.Close()

		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, "body{margin:0}", string(data))
	})

	t.Run("missing_object", func(t *testing.T) {
		t.Parallel()

		client := &mockClient{
			getFunc: func(_ context.Context, _ *s3aws.GetObjectInput) (*s3aws.GetObjectOutput, error) {
				return nil, &types.NoSuchKey{}
			},
		}

		l := newTestLoader(t, client, s3.Config{})

		_, err := l.Open(context.Background(), "missing.txt")
		assert.ErrorIs(t, err, loader.ErrNotExist)
	})

	t.Run("storage_fault", func(t *testing.T) {
		t.Parallel()

		client := &mockClient{
			getFunc: func(_ context.Context, _ *s3aws.GetObjectInput) (*s3aws.GetObjectOutput, error) {
				return nil, &smithy.GenericAPIError{Code: "SlowDown", Message: "reduce request rate"}
			},
		}

		l := newTestLoader(t, client, s3.Config{})

		_, err := l.Open(context.Background(), "busy.txt")
		require.Error(t, err)
		assert.NotErrorIs(t, err, loader.ErrNotExist)
	})
}
