package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func testJPEG(w, h int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{200, 120, 40, 255})
		}
	}
	var buf bytes.Buffer
	jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90})
	return buf.Bytes()
}

func testPNG(w, h int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{40, 120, 200, 255})
		}
	}
	var buf bytes.Buffer
	png.Encode(&buf, img)
	return buf.Bytes()
}

func TestProcessJPEG(t *testing.T) {
	photo, err := Process(bytes.NewReader(testJPEG(100, 100)))
	if err != nil {
		t.Fatalf("Process JPEG: %v", err)
	}
	if photo.MIME != "image/jpeg" {
		t.Errorf("expected image/jpeg, got %s", photo.MIME)
	}
	if len(photo.Data) == 0 {
		t.Error("expected non-empty data")
	}
}

func TestProcessPNGConvertedToJPEG(t *testing.T) {
	photo, err := Process(bytes.NewReader(testPNG(100, 100)))
	if err != nil {
		t.Fatalf("Process PNG: %v", err)
	}
	if photo.MIME != "image/jpeg" {
		t.Errorf("expected image/jpeg (always outputs JPEG), got %s", photo.MIME)
	}
}

func TestProcessDownscales(t *testing.T) {
	photo, err := Process(bytes.NewReader(testJPEG(2000, 1000)))
	if err != nil {
		t.Fatalf("Process large photo: %v", err)
	}

	img, _, err := image.Decode(bytes.NewReader(photo.Data))
	if err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() > MaxDimension || bounds.Dy() > MaxDimension {
		t.Errorf("expected max %dx%d, got %dx%d", MaxDimension, MaxDimension, bounds.Dx(), bounds.Dy())
	}
	// Aspect ratio preserved: 2:1 input stays 2:1.
	if bounds.Dx() != 2*bounds.Dy() {
		t.Errorf("aspect ratio not preserved: %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestProcessSmallPhotoNotUpscaled(t *testing.T) {
	photo, err := Process(bytes.NewReader(testJPEG(60, 40)))
	if err != nil {
		t.Fatalf("Process small photo: %v", err)
	}

	img, _, err := image.Decode(bytes.NewReader(photo.Data))
	if err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 60 || bounds.Dy() != 40 {
		t.Errorf("small photo should not be resized: got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestProcessRejectsNonImages(t *testing.T) {
	if _, err := Process(bytes.NewReader([]byte("not a photo"))); err == nil {
		t.Error("expected error for invalid format")
	}
}

func TestProcessRejectsGIF(t *testing.T) {
	// GIF magic bytes.
	if _, err := Process(bytes.NewReader([]byte("GIF89a..."))); err == nil {
		t.Error("expected error for GIF")
	}
}
