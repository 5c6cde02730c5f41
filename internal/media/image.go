// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package media

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
	_ "golang.org/x/image/webp" // WebP decoder
)

// decodeImage decodes data and applies its EXIF orientation.
func decodeImage(data []byte) (image.Image, string, error) {
	format := detectFormat(data)
	if format == "" {
		return nil, "", ErrUnsupportedType
	}
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrUnsupportedType, err)
	}
	return applyOrientation(img, readExifOrientation(bytes.NewReader(data))), format, nil
}

// thumbnail crops img from the centre to the gallery thumbnail size.
func thumbnail(img image.Image) image.Image {
	return imaging.Fill(img, ThumbWidth, ThumbHeight, imaging.Center, imaging.Lanczos)
}

// readExifOrientation returns 1 when the tag is missing or unreadable.
func readExifOrientation(r io.Reader) int {
	x, err := exif.Decode(r)
	if err != nil {
		return 1
	}
	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return 1
	}
	orientation, err := tag.Int(0)
	if err != nil {
		return 1
	}
	return orientation
}

// applyOrientation undoes EXIF orientation 2-8 so pixels are stored upright.
func applyOrientation(img image.Image, orientation int) image.Image {
	switch orientation {
	case 2:
		return imaging.FlipH(img)
	case 3:
		return imaging.Rotate180(img)
	case 4:
		return imaging.FlipV(img)
	case 5:
		return imaging.FlipH(imaging.Rotate270(img))
	case 6:
		return imaging.Rotate270(img)
	case 7:
		return imaging.FlipH(imaging.Rotate90(img))
	case 8:
		return imaging.Rotate90(img)
	default:
		return img
	}
}

// encodeImage re-encodes img, dropping metadata. WebP has no pure Go
// encoder and is written as JPEG. It returns the file extension to use.
func encodeImage(img image.Image, format string, quality int) ([]byte, string, error) {
	var buf bytes.Buffer
	switch format {
	case "png":
		if err := png.Encode(&buf, img); err != nil {
			return nil, "", err
		}
		return buf.Bytes(), ".png", nil
	case "gif":
		if err := gif.Encode(&buf, img, nil); err != nil {
			return nil, "", err
		}
		return buf.Bytes(), ".gif", nil
	default:
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return nil, "", err
		}
		return buf.Bytes(), ".jpg", nil
	}
}

// detectFormat sniffs the image format. TIFF is refused outright
// (CVE-2023-36308 in disintegration/imaging).
func detectFormat(data []byte) string {
	ct := sniff(data)
	switch {
	case strings.Contains(ct, "tiff"):
		return ""
	case ct == "image/jpeg":
		return "jpeg"
	case ct == "image/png":
		return "png"
	case ct == "image/gif":
		return "gif"
	case ct == "image/webp":
		return "webp"
	default:
		return ""
	}
}

func formatToMimeType(format string) string {
	switch format {
	case "png":
		return "image/png"
	case "gif":
		return "image/gif"
	default:
		return "image/jpeg"
	}
}
