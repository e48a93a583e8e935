package output

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
)

// ErrInvalidS3URL is returned for s3:// destinations without an object key
var ErrInvalidS3URL = errors.New("invalid S3 destination: expected s3://bucket/key")

// Options controls how a rendered frame is written
type Options struct {
	Scale       float64 // Resample factor applied before encoding (0 or 1 = unchanged)
	JPEGQuality int     // JPEG quality 1-100 (0 = encoder default)
}

// DefaultOptions returns sensible default values
func DefaultOptions() Options {
	return Options{Scale: 1, JPEGQuality: 95}
}

// Prepare applies the post-render resampling. A non-positive or unit scale
// returns the image unchanged.
func Prepare(img image.Image, opts Options) image.Image {
	if opts.Scale <= 0 || opts.Scale == 1 {
		return img
	}

	bounds := img.Bounds()
	width := uint(max(1, math.Round(float64(bounds.Dx())*opts.Scale)))
	height := uint(max(1, math.Round(float64(bounds.Dy())*opts.Scale)))
	return resize.Resize(width, height, img, resize.Lanczos3)
}

// Encode writes the image in the given format to w
func Encode(w io.Writer, img image.Image, format imaging.Format, opts Options) error {
	if err := imaging.Encode(w, Prepare(img, opts), format, encodeOptions(opts)...); err != nil {
		return fmt.Errorf("failed to encode %s: %w", format, err)
	}
	return nil
}

// Save writes the image to a local file. The format is chosen from the extension.
func Save(img image.Image, filename string, opts Options) error {
	if _, err := imaging.FormatFromFilename(filename); err != nil {
		return fmt.Errorf("unsupported output file %s: %w", filename, err)
	}

	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := imaging.Save(Prepare(img, opts), filename, encodeOptions(opts)...); err != nil {
		return fmt.Errorf("failed to save %s: %w", filename, err)
	}
	return nil
}

// Write sends the image to dest, which is either a local path or an
// s3://bucket/key URL. Uploader may be nil when no S3 destination is used.
func Write(ctx context.Context, img image.Image, dest string, opts Options, uploader *S3Uploader) (string, error) {
	if bucket, key, ok := ParseS3URL(dest); ok {
		if uploader == nil {
			return "", fmt.Errorf("cannot write %s: S3 is not configured", dest)
		}
		if err := uploader.Upload(ctx, img, bucket, key, opts); err != nil {
			return "", err
		}
		return dest, nil
	}
	if strings.HasPrefix(dest, "s3://") {
		return "", fmt.Errorf("%w: %s", ErrInvalidS3URL, dest)
	}

	if err := Save(img, dest, opts); err != nil {
		return "", err
	}
	return dest, nil
}

// ParseS3URL splits an s3://bucket/key URL. An empty bucket means the
// uploader's configured default bucket.
func ParseS3URL(dest string) (bucket, key string, ok bool) {
	rest, found := strings.CutPrefix(dest, "s3://")
	if !found {
		return "", "", false
	}

	bucket, key, _ = strings.Cut(rest, "/")
	if key == "" {
		return "", "", false
	}
	return bucket, key, true
}

func encodeOptions(opts Options) []imaging.EncodeOption {
	if opts.JPEGQuality <= 0 {
		return nil
	}
	return []imaging.EncodeOption{imaging.JPEGQuality(opts.JPEGQuality)}
}

// contentType returns the MIME type for an encoded format
func contentType(format imaging.Format) string {
	switch format {
	case imaging.JPEG:
		return "image/jpeg"
	case imaging.GIF:
		return "image/gif"
	case imaging.TIFF:
		return "image/tiff"
	case imaging.BMP:
		return "image/bmp"
	default:
		return "image/png"
	}
}
