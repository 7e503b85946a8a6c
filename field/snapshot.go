package field

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"time"

	"github.com/tfriedel6/canvas"
	"github.com/tfriedel6/canvas/backend/softwarebackend"
)

// ErrNoFrame reports that no frame can be rendered at the current dimensions.
var ErrNoFrame = errors.New("field: no frame to snapshot")

// Snapshot renders the current frame into an offscreen surface at the
// field's pixel dimensions and returns it PNG-encoded.
func (f *Field) Snapshot() ([]byte, error) {
	w, h := f.Size()
	if w <= 0 || h <= 0 {
		return nil, ErrNoFrame
	}

	back := softwarebackend.New(w, h)
	cv := canvas.New(back)
	f.Render(cv)

	var buf bytes.Buffer
	if err := png.Encode(&buf, cv.GetImageData(0, 0, w, h)); err != nil {
		return nil, fmt.Errorf("field: encoding snapshot: %w", err)
	}
	return buf.Bytes(), nil
}

// SnapshotFilename returns a download filename embedding the capture time.
func SnapshotFilename(t time.Time) string {
	return "nebula-" + t.Format("20060102-150405") + ".png"
}
