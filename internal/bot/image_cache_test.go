package bot

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noisyPNG encodes random pixels so the image stays above the minimum size.
func noisyPNG(t *testing.T) []byte {
	t.Helper()
	rnd := rand.New(rand.NewSource(1))
	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	for x := 0; x < 32; x++ {
		for y := 0; y < 32; y++ {
			img.Set(x, y, color.RGBA{uint8(rnd.Intn(256)), uint8(rnd.Intn(256)), uint8(rnd.Intn(256)), 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func newPosterServer(t *testing.T, hits *atomic.Int32, pngData []byte) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		switch r.URL.Path {
		case "/poster.png":
			w.Header().Set("Content-Type", "image/png")
			_, _ = w.Write(pngData)
		case "/page.html":
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write(bytes.Repeat([]byte("<p>"), 400))
		case "/broken.png":
			w.Header().Set("Content-Type", "image/png")
			_, _ = w.Write(bytes.Repeat([]byte{0x42}, 1024))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func writeFallback(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "not-found.png")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestPosterCache_DownloadsAndCaches(t *testing.T) {
	var hits atomic.Int32
	pngData := noisyPNG(t)
	server := newPosterServer(t, &hits, pngData)
	posters := NewPosterCache(writeFallback(t, []byte("fallback")), 8, time.Minute)

	for i := 0; i < 3; i++ {
		file, ok := posters.Get(server.URL + "/poster.png").(tgbotapi.FileBytes)
		require.True(t, ok)
		assert.Equal(t, "poster.png", file.Name)
		assert.Equal(t, pngData, file.Bytes)
	}
	assert.Equal(t, int32(1), hits.Load())
	assert.Equal(t, 1, posters.Len())
}

func TestPosterCache_FallbackOnInvalidImages(t *testing.T) {
	var hits atomic.Int32
	server := newPosterServer(t, &hits, noisyPNG(t))
	posters := NewPosterCache(writeFallback(t, []byte("fallback")), 8, time.Minute)

	for _, path := range []string{"/page.html", "/broken.png", "/missing.png"} {
		file, ok := posters.Get(server.URL + path).(tgbotapi.FileBytes)
		require.True(t, ok, path)
		assert.Equal(t, "not-found.png", file.Name, path)
		assert.Equal(t, []byte("fallback"), file.Bytes, path)
	}

	// failures are remembered
	posters.Get(server.URL + "/missing.png")
	assert.Equal(t, int32(3), hits.Load())
}

func TestPosterCache_EmptyURL(t *testing.T) {
	posters := NewPosterCache(writeFallback(t, []byte("fallback")), 8, time.Minute)

	file, ok := posters.Get("").(tgbotapi.FileBytes)
	require.True(t, ok)
	assert.Equal(t, []byte("fallback"), file.Bytes)
}

func TestPosterCache_MissingFallbackFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.png")
	posters := NewPosterCache(path, 8, time.Minute)

	assert.Equal(t, tgbotapi.FilePath(path), posters.Get(""))
}

func TestPosterCache_LoadAllKeepsOrder(t *testing.T) {
	var hits atomic.Int32
	server := newPosterServer(t, &hits, noisyPNG(t))
	posters := NewPosterCache(writeFallback(t, []byte("fallback")), 8, time.Minute)

	files := posters.LoadAll([]string{server.URL + "/poster.png", "", server.URL + "/missing.png"})

	require.Len(t, files, 3)
	assert.Equal(t, "poster.png", files[0].(tgbotapi.FileBytes).Name)
	assert.Equal(t, "not-found.png", files[1].(tgbotapi.FileBytes).Name)
	assert.Equal(t, "not-found.png", files[2].(tgbotapi.FileBytes).Name)
}

func TestGetExtensionFromContentType(t *testing.T) {
	assert.Equal(t, ".jpg", getExtensionFromContentType("image/jpeg"))
	assert.Equal(t, ".webp", getExtensionFromContentType("image/webp"))
	assert.Equal(t, ".jpg", getExtensionFromContentType("application/octet-stream"))
}
