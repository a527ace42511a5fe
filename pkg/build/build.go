// Package build writes the homepage as a static site: index.html, every
// static asset under a fingerprinted name, and the manifest.json mapping
// logical names to those files.
package build

import (
	"bytes"
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gdgoc-ctf/site/internal/errors"
	"github.com/gdgoc-ctf/site/pkg/assets"
	"github.com/gdgoc-ctf/site/pkg/site"
)

// ManifestFile is the manifest's name inside the output directory.
const ManifestFile = "manifest.json"

// Options configures a build.
type Options struct {
	// Output is the directory to write into. It is created if missing.
	Output string

	// Clean removes Output before writing.
	Clean bool

	// Logger receives progress logs. Defaults to slog.Default().
	Logger *slog.Logger
}

// Result describes a finished build.
type Result struct {
	// Files lists written files relative to the output directory, in
	// write order.
	Files []string

	// Manifest maps logical asset names to fingerprinted ones.
	Manifest *assets.Manifest
}

// Run builds st into opts.Output.
func Run(ctx context.Context, st *site.Site, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Clean {
		if err := os.RemoveAll(opts.Output); err != nil {
			return nil, errors.New("E301").WithDetail(opts.Output).Wrap(err)
		}
	}

	if err := os.MkdirAll(opts.Output, 0o755); err != nil {
		return nil, errors.New("E301").WithDetail(opts.Output).Wrap(err)
	}

	res := &Result{Manifest: assets.NewManifest()}
	assetDir := filepath.Join(opts.Output, filepath.FromSlash(strings.Trim(st.Config().Static.Prefix, "/")))

	err := fs.WalkDir(st.Static(), ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		data, err := fs.ReadFile(st.Static(), name)
		if err != nil {
			return err
		}
		hashed := assets.Fingerprint(name, data)
		if err := writeFile(filepath.Join(assetDir, filepath.FromSlash(hashed)), data); err != nil {
			return err
		}

		res.Manifest.Set(name, hashed)
		res.Files = append(res.Files, relTo(opts.Output, filepath.Join(assetDir, filepath.FromSlash(hashed))))
		logger.Debug("asset written", "source", name, "file", hashed)
		return nil
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, errors.New("E301").WithDetail("copying static assets").Wrap(err)
	}

	manifestPath := filepath.Join(opts.Output, ManifestFile)
	if err := res.Manifest.Save(manifestPath); err != nil {
		return nil, errors.New("E301").WithDetail(manifestPath).Wrap(err)
	}
	res.Files = append(res.Files, ManifestFile)

	var page bytes.Buffer
	fingerprinted := st.WithResolver(assets.NewResolver(res.Manifest, st.Config().Static.Prefix))
	if err := fingerprinted.WritePage(&page); err != nil {
		return nil, err
	}
	if err := writeFile(filepath.Join(opts.Output, "index.html"), page.Bytes()); err != nil {
		return nil, errors.New("E301").WithDetail("index.html").Wrap(err)
	}
	res.Files = append(res.Files, "index.html")

	logger.Info("build complete", "output", opts.Output, "files", len(res.Files))
	return res, nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func relTo(base, path string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}
