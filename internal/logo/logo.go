// Package logo handles business-logo uploads: sniffing the file type,
// re-encoding the image as an embeddable data URL, and a local
// background-removal pass that keys out the background color.
package logo

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"strings"
	"time"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/matchers"

	"invoiceflash/internal/cache"
)

var (
	ErrNotImage = errors.New("file is not an image")
	ErrTooLarge = errors.New("file is too large")
)

// Service converts uploads to data URLs and removes logo backgrounds.
// Background removal results are memoized by content hash: re-running it
// on the same logo is common (the user toggling back and forth) and the
// pixel pass is the most expensive thing this app does.
type Service struct {
	maxBytes  int64
	processed *cache.LRUCache[string]
}

func NewService(maxBytes int64) *Service {
	return &Service{
		maxBytes:  maxBytes,
		processed: cache.NewLRUCache[string](32, 30*time.Minute),
	}
}

// EncodeUpload validates an uploaded file and returns it as a
// data:<mime>;base64 string. Non-image files are rejected; the caller's
// prior logo stays untouched on error.
func (s *Service) EncodeUpload(data []byte) (string, error) {
	if int64(len(data)) > s.maxBytes {
		return "", fmt.Errorf("%w: %d bytes", ErrTooLarge, len(data))
	}
	kind, err := filetype.Match(data)
	if err != nil || kind == filetype.Unknown {
		return "", ErrNotImage
	}
	switch kind {
	case matchers.TypePng, matchers.TypeJpeg, matchers.TypeGif, matchers.TypeWebp:
	default:
		return "", ErrNotImage
	}
	return "data:" + kind.MIME.Value + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// RemoveBackground decodes the current logo, makes pixels close to the
// background color fully transparent, and returns the result as a PNG
// data URL. The background color is estimated from the image corners.
func (s *Service) RemoveBackground(dataURL string) (string, error) {
	raw, err := decodeDataURL(dataURL)
	if err != nil {
		return "", err
	}

	key := contentKey(raw)
	if cached, ok := s.processed.Get(key); ok {
		return cached, nil
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("decode logo image: %w", err)
	}

	out := keyOutBackground(img)

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return "", fmt.Errorf("encode processed logo: %w", err)
	}

	result := "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
	s.processed.Set(key, result)
	return result, nil
}

// keyOutBackground returns a copy of img with pixels near the estimated
// background color made transparent.
func keyOutBackground(img image.Image) *image.NRGBA {
	bounds := img.Bounds()
	bg := cornerAverage(img)

	// Squared distance threshold in 8-bit RGB space. Tolerant enough for
	// JPEG artifacts around a flat background, tight enough to keep
	// low-contrast logo strokes.
	const threshold = 40 * 40 * 3

	out := image.NewNRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if colorDistanceSq(c, bg) < threshold {
				c = color.NRGBA{}
			}
			out.SetNRGBA(x, y, c)
		}
	}
	return out
}

func cornerAverage(img image.Image) color.NRGBA {
	b := img.Bounds()
	corners := []image.Point{
		{b.Min.X, b.Min.Y},
		{b.Max.X - 1, b.Min.Y},
		{b.Min.X, b.Max.Y - 1},
		{b.Max.X - 1, b.Max.Y - 1},
	}
	var r, g, bl int
	for _, p := range corners {
		c := color.NRGBAModel.Convert(img.At(p.X, p.Y)).(color.NRGBA)
		r += int(c.R)
		g += int(c.G)
		bl += int(c.B)
	}
	n := len(corners)
	return color.NRGBA{R: uint8(r / n), G: uint8(g / n), B: uint8(bl / n), A: 255}
}

func colorDistanceSq(a, b color.NRGBA) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}

func decodeDataURL(dataURL string) ([]byte, error) {
	idx := strings.Index(dataURL, ";base64,")
	if !strings.HasPrefix(dataURL, "data:") || idx < 0 {
		return nil, errors.New("not a base64 data URL")
	}
	raw, err := base64.StdEncoding.DecodeString(dataURL[idx+len(";base64,"):])
	if err != nil {
		return nil, fmt.Errorf("decode data URL: %w", err)
	}
	return raw, nil
}

func contentKey(raw []byte) string {
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}
