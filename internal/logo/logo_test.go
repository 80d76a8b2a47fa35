package logo

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
)

// testPNG builds a small logo-like image: white background, red square in
// the middle.
func testPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}
	for y := 5; y < 11; y++ {
		for x := 5; x < 11; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test image: %v", err)
	}
	return buf.Bytes()
}

func TestEncodeUpload(t *testing.T) {
	svc := NewService(1 << 20)

	dataURL, err := svc.EncodeUpload(testPNG(t))
	if err != nil {
		t.Fatalf("valid png rejected: %v", err)
	}
	if !strings.HasPrefix(dataURL, "data:image/png;base64,") {
		t.Fatalf("unexpected data URL prefix: %.40s", dataURL)
	}
}

func TestEncodeUploadRejectsNonImage(t *testing.T) {
	svc := NewService(1 << 20)
	if _, err := svc.EncodeUpload([]byte("just some text, definitely not pixels")); !errors.Is(err, ErrNotImage) {
		t.Fatalf("expected ErrNotImage, got %v", err)
	}
}

func TestEncodeUploadRejectsOversized(t *testing.T) {
	svc := NewService(16)
	if _, err := svc.EncodeUpload(testPNG(t)); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}
}

func TestRemoveBackground(t *testing.T) {
	svc := NewService(1 << 20)
	dataURL, err := svc.EncodeUpload(testPNG(t))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	processed, err := svc.RemoveBackground(dataURL)
	if err != nil {
		t.Fatalf("remove background: %v", err)
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(processed, "data:image/png;base64,"))
	if err != nil {
		t.Fatalf("result is not a base64 png data URL: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("decode processed png: %v", err)
	}

	// Background corner goes transparent, logo pixel survives.
	if _, _, _, a := img.At(0, 0).RGBA(); a != 0 {
		t.Fatalf("corner pixel should be transparent, alpha=%d", a)
	}
	if _, _, _, a := img.At(8, 8).RGBA(); a == 0 {
		t.Fatalf("logo pixel should be opaque")
	}

	// Second run hits the memoized result.
	again, err := svc.RemoveBackground(dataURL)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if again != processed {
		t.Fatalf("memoized result differs")
	}
}

func TestRemoveBackgroundBadInput(t *testing.T) {
	svc := NewService(1 << 20)
	if _, err := svc.RemoveBackground("not-a-data-url"); err == nil {
		t.Fatalf("expected error for malformed data URL")
	}
	if _, err := svc.RemoveBackground("data:image/png;base64,!!!"); err == nil {
		t.Fatalf("expected error for invalid base64")
	}
}
