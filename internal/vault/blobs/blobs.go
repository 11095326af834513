// Package blobs turns image blobs stored in the vault into short-lived
// files on disk that a viewer can open. Every handle owns exactly one file
// and must be closed to release it.
package blobs

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"github.com/pumpkin2800/zarqon/internal/common"
	"github.com/pumpkin2800/zarqon/internal/filex"
)

// ThumbnailWidth is the width thumbnails are resized to; height follows
// the aspect ratio.
const ThumbnailWidth = 200

// Handle is a materialized blob. Path stays valid until Close.
type Handle struct {
	Path string

	once sync.Once
	err  error
}

// Close removes the materialized file. Safe to call more than once.
func (h *Handle) Close() error {
	h.once.Do(func() {
		h.err = os.Remove(h.Path)
	})
	return h.err
}

// Renderer writes materialized blobs into its own directory.
type Renderer struct {
	dir string
}

// NewRenderer stores materialized files under dir, creating it if needed.
func NewRenderer(dir string) (*Renderer, error) {
	if _, err := filex.EnsureDir(dir); err != nil {
		return nil, err
	}
	return &Renderer{dir: dir}, nil
}

// Render writes blob to a uniquely named file and returns its handle.
// The blob is stored verbatim; no decoding happens.
func (r *Renderer) Render(blob []byte) (*Handle, error) {
	if len(blob) == 0 {
		return nil, fmt.Errorf("%w: empty blob", common.ErrInvalidFormat)
	}
	return r.write(blob)
}

// RenderThumbnail decodes the blob as an image, scales it down to
// ThumbnailWidth and materializes the result as a JPEG.
func (r *Renderer) RenderThumbnail(blob []byte) (*Handle, error) {
	img, err := imaging.Decode(bytes.NewReader(blob))
	if err != nil {
		return nil, fmt.Errorf("%w: decode image: %v", common.ErrInvalidFormat, err)
	}

	thumbnail := imaging.Resize(img, ThumbnailWidth, 0, imaging.Lanczos)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumbnail, imaging.JPEG); err != nil {
		return nil, fmt.Errorf("encode thumbnail: %w", err)
	}
	return r.write(buf.Bytes())
}

func (r *Renderer) write(data []byte) (*Handle, error) {
	path := filepath.Join(r.dir, uuid.New().String())
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return nil, fmt.Errorf("materialize blob: %w", err)
	}
	return &Handle{Path: path}, nil
}
