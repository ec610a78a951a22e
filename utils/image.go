package utils

import (
	"bytes"
	"io"

	"github.com/disintegration/imaging"
)

// Phone photos of PODs routinely run 5-10 MB; anything wider than this gets
// scaled down before upload.
const maxPODWidth = 1600

// NormalizePODImage decodes an uploaded POD image, scales it down to a
// sensible width and re-encodes it as JPEG for storage.
func NormalizePODImage(r io.Reader) ([]byte, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, err
	}

	if img.Bounds().Dx() > maxPODWidth {
		img = imaging.Resize(img, maxPODWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
