package bot

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/sourcegraph/conc/iter"

	"moviehub-bot/internal/config"
)

const (
	maxImageSize = 5 << 20
	minImageSize = 512
)

var validMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// posterEntry is a downloaded image or the reason it could not be used.
// Failures are cached too so a broken URL is not fetched for every page.
type posterEntry struct {
	data        []byte
	contentType string
	err         error
}

// PosterCache downloads posters, checks that they really are images and
// keeps them for a while. Anything unusable is replaced by a fallback image.
type PosterCache struct {
	client       *http.Client
	images       *expirable.LRU[string, posterEntry]
	fallbackPath string

	fallbackOnce sync.Once
	fallback     []byte
	fallbackErr  error
}

func NewPosterCache(fallbackPath string, size int, ttl time.Duration) *PosterCache {
	if size <= 0 {
		size = 512
	}
	return &PosterCache{
		client:       &http.Client{Timeout: 10 * time.Second},
		images:       expirable.NewLRU[string, posterEntry](size, nil, ttl),
		fallbackPath: fallbackPath,
	}
}

func (p *PosterCache) Get(url string) tgbotapi.RequestFileData {
	if url == "" {
		return p.fallbackImage()
	}

	entry, ok := p.images.Get(url)
	if !ok {
		data, contentType, err := p.downloadAndValidateImage(url)
		entry = posterEntry{data: data, contentType: contentType, err: err}
		p.images.Add(url, entry)
	}

	if entry.err != nil {
		if !ok {
			logger := config.GetLogger()
			logger.Warn().Err(entry.err).Str("url", url).Msg("Failed to download image")
		}
		return p.fallbackImage()
	}

	return tgbotapi.FileBytes{
		Name:  "poster" + getExtensionFromContentType(entry.contentType),
		Bytes: entry.data,
	}
}

// LoadAll fetches the posters of urls concurrently, keeping their order.
func (p *PosterCache) LoadAll(urls []string) []tgbotapi.RequestFileData {
	return iter.Map(urls, func(url *string) tgbotapi.RequestFileData {
		return p.Get(*url)
	})
}

func (p *PosterCache) Len() int {
	return p.images.Len()
}

func (p *PosterCache) downloadAndValidateImage(url string) ([]byte, string, error) {
	resp, err := p.client.Get(url)
	if err != nil {
		return nil, "", fmt.Errorf("http get failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("invalid status code: %d", resp.StatusCode)
	}

	imgData, err := io.ReadAll(io.LimitReader(resp.Body, maxImageSize))
	if err != nil {
		return nil, "", fmt.Errorf("read failed: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(imgData)
	}
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = strings.TrimSpace(contentType[:i])
	}

	if !validMimeTypes[contentType] {
		return nil, "", fmt.Errorf("invalid content type: %s", contentType)
	}

	if len(imgData) < minImageSize {
		return nil, "", fmt.Errorf("image too small: %d bytes", len(imgData))
	}

	// webp has no decoder in the standard library; Telegram accepts it as is.
	if contentType != "image/webp" {
		if _, _, err := image.DecodeConfig(bytes.NewReader(imgData)); err != nil {
			return nil, "", fmt.Errorf("invalid image format: %w", err)
		}
	}

	return imgData, contentType, nil
}

func getExtensionFromContentType(contentType string) string {
	switch {
	case strings.Contains(contentType, "jpeg"):
		return ".jpg"
	case strings.Contains(contentType, "png"):
		return ".png"
	case strings.Contains(contentType, "gif"):
		return ".gif"
	case strings.Contains(contentType, "webp"):
		return ".webp"
	default:
		return ".jpg"
	}
}

func (p *PosterCache) fallbackImage() tgbotapi.RequestFileData {
	p.fallbackOnce.Do(func() {
		p.fallback, p.fallbackErr = os.ReadFile(p.fallbackPath)
		if p.fallbackErr != nil {
			logger := config.GetLogger()
			logger.Error().Err(p.fallbackErr).Str("path", p.fallbackPath).Msg("Failed to load fallback image")
		}
	})

	if p.fallbackErr != nil {
		return tgbotapi.FilePath(p.fallbackPath)
	}
	return tgbotapi.FileBytes{
		Name:  "not-found.png",
		Bytes: p.fallback,
	}
}
