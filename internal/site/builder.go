package site

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/tuxprint/tds-website/internal/logger"
)

const indexFile = "index.html"

// ErrUnsafeOutputDir is returned when cleaning the output directory would
// remove source files or the working directory.
var ErrUnsafeOutputDir = errors.New("unsafe output directory")

// Builder exports the site as static files.
type Builder struct {
	renderer *Renderer
	assets   fs.FS
	sources  []string
	log      *slog.Logger
}

// BuildResult lists what a build wrote, relative to the output directory.
type BuildResult struct {
	OutputDir string
	Files     []string
	Bytes     int64
}

// NewBuilder creates a builder. sources are on-disk directories backing assets
// (such as MEDIA_DIR); the output directory may neither contain nor sit inside
// any of them.
func NewBuilder(renderer *Renderer, assets fs.FS, log *slog.Logger, sources ...string) *Builder {
	return &Builder{
		renderer: renderer,
		assets:   assets,
		sources:  sources,
		log:      log.With(logger.Scope("site.builder")),
	}
}

// Build cleans outDir, renders index.html and copies every asset into it.
func (b *Builder) Build(ctx context.Context, outDir string) (*BuildResult, error) {
	if outDir == "" {
		return nil, fmt.Errorf("output directory is required")
	}
	if err := b.checkOutputDir(outDir); err != nil {
		return nil, err
	}

	b.log.Info("starting static build",
		slog.String("output_dir", outDir),
		slog.String("variant", b.renderer.Variant().Name),
		slog.String("version", b.renderer.Version()),
	)

	if err := os.RemoveAll(outDir); err != nil {
		return nil, fmt.Errorf("failed to remove output directory '%s': %w", outDir, err)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory '%s': %w", outDir, err)
	}

	result := &BuildResult{OutputDir: outDir}

	n, err := b.writeIndex(filepath.Join(outDir, indexFile))
	if err != nil {
		return nil, err
	}
	result.Files = append(result.Files, indexFile)
	result.Bytes += n

	err = fs.WalkDir(b.assets, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		n, err := copyFile(b.assets, path, filepath.Join(outDir, filepath.FromSlash(path)))
		if err != nil {
			return err
		}
		b.log.Debug("asset copied", slog.String("path", path), slog.Int64("bytes", n))
		result.Files = append(result.Files, path)
		result.Bytes += n
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to copy assets: %w", err)
	}

	b.log.Info("static build complete",
		slog.Int("files", len(result.Files)),
		slog.Int64("bytes", result.Bytes),
	)
	return result, nil
}

// checkOutputDir runs before anything is removed.
func (b *Builder) checkOutputDir(outDir string) error {
	out, err := filepath.Abs(outDir)
	if err != nil {
		return fmt.Errorf("failed to resolve output directory '%s': %w", outDir, err)
	}
	if filepath.Dir(out) == out {
		return fmt.Errorf("%w: '%s' is a filesystem root", ErrUnsafeOutputDir, outDir)
	}

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to resolve working directory: %w", err)
	}
	if within(out, wd) {
		return fmt.Errorf("%w: '%s' contains the working directory", ErrUnsafeOutputDir, outDir)
	}

	for _, src := range b.sources {
		if src == "" {
			continue
		}
		abs, err := filepath.Abs(src)
		if err != nil {
			return fmt.Errorf("failed to resolve source directory '%s': %w", src, err)
		}
		if within(out, abs) || within(abs, out) {
			return fmt.Errorf("%w: '%s' overlaps source directory '%s'", ErrUnsafeOutputDir, outDir, src)
		}
	}
	return nil
}

// within reports whether path is dir or lies below it. Both must be absolute.
func within(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func (b *Builder) writeIndex(path string) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	cw := &countingWriter{w: bw}
	if err := b.renderer.Render(cw); err != nil {
		return 0, err
	}
	if err := bw.Flush(); err != nil {
		return 0, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return cw.n, f.Close()
}

func copyFile(src fs.FS, name, dst string) (int64, error) {
	in, err := src.Open(name)
	if err != nil {
		return 0, fmt.Errorf("failed to open asset %s: %w", name, err)
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return 0, fmt.Errorf("failed to create directory for %s: %w", dst, err)
	}
	out, err := os.Create(dst)
	if err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", dst, err)
	}
	defer out.Close()

	n, err := io.Copy(out, in)
	if err != nil {
		return n, fmt.Errorf("failed to copy %s: %w", name, err)
	}
	return n, out.Close()
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
