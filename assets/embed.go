package assets

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// CursorPNG contains the raw PNG bytes of the bouncing scan cursor sprite.
//
//go:embed barcode_scan_cursor.png
var CursorPNG []byte

// FocusFramePNG contains the raw PNG bytes of the framing-rectangle decoration.
//
//go:embed barcode_scan_frame.png
var FocusFramePNG []byte

// CursorImage decodes the embedded cursor sprite.
func CursorImage() (image.Image, error) { return decode("barcode_scan_cursor.png", CursorPNG) }

// FocusFrameImage decodes the embedded focus frame.
func FocusFrameImage() (image.Image, error) { return decode("barcode_scan_frame.png", FocusFramePNG) }

// LoadImage decodes a PNG, BMP or WebP file. An empty path returns fallback.
func LoadImage(path string, fallback func() (image.Image, error)) (image.Image, error) {
	if path == "" {
		if fallback == nil {
			return nil, nil
		}
		return fallback()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read asset: %w", err)
	}
	return decode(path, data)
}

func decode(name string, data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("asset %s is empty", name)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return img, nil
}
