package export

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path"

	"github.com/onur-cay/comingsoon/internal/rendering"
	"github.com/onur-cay/comingsoon/internal/storage"
	"github.com/onur-cay/comingsoon/web/src/templates/pages"
)

// Exporter writes the rendered site to a Store so it can be served by any
// static host.
type Exporter struct {
	store    storage.Store
	renderer rendering.Renderer
	assets   fs.FS
}

// New creates an Exporter. assets is copied under <dir>/ keeping its layout,
// so passing web.FS yields <dir>/static/....
func New(store storage.Store, renderer rendering.Renderer, assets fs.FS) *Exporter {
	return &Exporter{store: store, renderer: renderer, assets: assets}
}

// Export renders index.html and copies every asset into dir. It returns the
// written paths in the order they were saved.
func (x *Exporter) Export(ctx context.Context, dir string) ([]string, error) {
	page, err := x.renderer.RenderComponent(ctx, pages.ComingSoonPage())
	if err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}

	index := path.Join(dir, "index.html")
	if _, err := x.store.Save(ctx, index, bytes.NewReader(page)); err != nil {
		return nil, err
	}
	written := []string{index}

	err = fs.WalkDir(x.assets, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		f, err := x.assets.Open(p)
		if err != nil {
			return err
		}
		defer f.Close()

		dst := path.Join(dir, p)
		if _, err := x.store.Save(ctx, dst, f); err != nil {
			return err
		}
		written = append(written, dst)
		return nil
	})
	if err != nil {
		return written, fmt.Errorf("copy assets: %w", err)
	}

	slog.Info("Site exported", "dir", dir, "files", len(written))
	return written, nil
}
