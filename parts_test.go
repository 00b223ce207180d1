package gemcore

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText(t *testing.T) {
	part := Text("hello")
	assert.Equal(t, "hello", part.Text)
	assert.Nil(t, part.InlineData)
}

func TestPartFromBytes(t *testing.T) {
	t.Run("wraps bytes with mime type", func(t *testing.T) {
		part, err := PartFromBytes([]byte{0x89, 0x50}, "image/png")
		require.NoError(t, err)
		require.NotNil(t, part.InlineData)
		assert.Equal(t, "image/png", part.InlineData.MIMEType)
		assert.Equal(t, []byte{0x89, 0x50}, part.InlineData.Data)
	})

	t.Run("requires mime type", func(t *testing.T) {
		_, err := PartFromBytes([]byte{1}, "")
		assert.ErrorContains(t, err, "mime type must be provided")
	})
}

func TestPartFromFile(t *testing.T) {
	t.Run("guesses mime type from extension", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "pic.png")
		require.NoError(t, os.WriteFile(path, []byte("png-bytes"), 0o600))

		part, err := PartFromFile(path, "")
		require.NoError(t, err)
		require.NotNil(t, part.InlineData)
		assert.Equal(t, "image/png", part.InlineData.MIMEType)
		assert.Equal(t, []byte("png-bytes"), part.InlineData.Data)
	})

	t.Run("explicit mime type wins", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "pic.png")
		require.NoError(t, os.WriteFile(path, []byte("data"), 0o600))

		part, err := PartFromFile(path, "image/webp")
		require.NoError(t, err)
		assert.Equal(t, "image/webp", part.InlineData.MIMEType)
	})

	t.Run("unguessable extension is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "blob.zzz9")
		require.NoError(t, os.WriteFile(path, []byte("data"), 0o600))

		_, err := PartFromFile(path, "")
		assert.ErrorContains(t, err, "could not guess mime type")
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := PartFromFile(filepath.Join(t.TempDir(), "nope.png"), "")
		assert.Error(t, err)
	})
}

func TestPartFromURL(t *testing.T) {
	t.Run("gs uri becomes file data", func(t *testing.T) {
		part, err := PartFromURL(context.Background(), "gs://bucket/cat.jpg", "")
		require.NoError(t, err)
		require.NotNil(t, part.FileData)
		assert.Equal(t, "gs://bucket/cat.jpg", part.FileData.FileURI)
		assert.True(t, strings.HasPrefix(part.FileData.MIMEType, "image/jpeg"))
	})

	t.Run("http url is fetched and inlined", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "image/png")
			w.Write([]byte("png-bytes"))
		}))
		defer srv.Close()

		part, err := PartFromURL(context.Background(), srv.URL+"/cat", "")
		require.NoError(t, err)
		require.NotNil(t, part.InlineData)
		assert.Equal(t, "image/png", part.InlineData.MIMEType)
		assert.Equal(t, []byte("png-bytes"), part.InlineData.Data)
	})

	t.Run("explicit mime type overrides header", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/octet-stream")
			w.Write([]byte("data"))
		}))
		defer srv.Close()

		part, err := PartFromURL(context.Background(), srv.URL+"/blob", "image/webp")
		require.NoError(t, err)
		assert.Equal(t, "image/webp", part.InlineData.MIMEType)
	})

	t.Run("non-200 status is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}))
		defer srv.Close()

		_, err := PartFromURL(context.Background(), srv.URL+"/missing", "")
		assert.ErrorContains(t, err, "status 404")
	})
}
