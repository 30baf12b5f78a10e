package source

import (
	"context"
	"io"
	"strings"
	"testing"

	"shopzada-etl/core/source/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func objectChan(infos ...minio.ObjectInfo) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(infos))
	for _, info := range infos {
		ch <- info
	}
	close(ch)
	return ch
}

func TestBucketList(t *testing.T) {
	t.Run("Bucket Missing", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "raw").Return(false, nil)

		b := &Bucket{Client: client, Name: "raw"}
		_, err := b.List(context.Background())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "does not exist")
	})

	t.Run("Sorted And Placeholder Keys Skipped", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "raw").Return(true, nil)
		client.On("ListObjects", mock.Anything, "raw", mock.Anything).Return(objectChan(
			minio.ObjectInfo{Key: "b.csv"},
			minio.ObjectInfo{Key: "drops/"},
			minio.ObjectInfo{Key: "a.json"},
		))

		b := &Bucket{Client: client, Name: "raw"}
		names, err := b.List(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"a.json", "b.csv"}, names)
	})

	t.Run("Listing Error Propagates", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "raw").Return(true, nil)
		client.On("ListObjects", mock.Anything, "raw", mock.Anything).Return(objectChan(
			minio.ObjectInfo{Err: assert.AnError},
		))

		b := &Bucket{Client: client, Name: "raw"}
		_, err := b.List(context.Background())
		assert.Error(t, err)
	})
}

func TestBucketOpen(t *testing.T) {
	t.Run("Prefix Joined", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "raw", "drops/a.csv", mock.Anything).
			Return(io.NopCloser(strings.NewReader("data")), nil)

		b := &Bucket{Client: client, Name: "raw", Prefix: "drops"}
		rc, err := b.Open(context.Background(), "a.csv")
		require.NoError(t, err)
		defer rc.Close()

		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, "data", string(data))
	})

	t.Run("Already Prefixed Key Untouched", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "raw", "drops/a.csv", mock.Anything).
			Return(io.NopCloser(strings.NewReader("data")), nil)

		b := &Bucket{Client: client, Name: "raw", Prefix: "drops"}
		rc, err := b.Open(context.Background(), "drops/a.csv")
		require.NoError(t, err)
		rc.Close()
		client.AssertExpectations(t)
	})
}
