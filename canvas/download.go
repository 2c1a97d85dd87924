package canvas

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// maxNameAttempts bounds the search for a free download name.
const maxNameAttempts = 1000

// Downloader saves exports into a directory the way a browser saves
// downloads: canvas.png, then "canvas (1).png" and so on. Existing files are
// never overwritten.
type Downloader struct {
	Dir     string
	Options EncodeOptions
}

// Download encodes the canvas surface and returns the written path.
func (d Downloader) Download(c *Canvas, f Format) (string, error) {
	if c.Image() == nil {
		return "", ErrNoSurface
	}
	if _, err := ParseFormat(string(f)); err != nil {
		return "", err
	}

	dir := d.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("can't create export directory: %w", err)
	}

	file, path, err := createUnique(dir, "canvas", string(f))
	if err != nil {
		return "", err
	}

	if err = c.Export(file, f, d.Options); err != nil {
		_ = file.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("can't export %s: %w", f, err)
	}
	if err = file.Close(); err != nil {
		return "", fmt.Errorf("can't close %s: %w", path, err)
	}
	return path, nil
}

func createUnique(dir, base, ext string) (*os.File, string, error) {
	for i := 0; i < maxNameAttempts; i++ {
		name := fmt.Sprintf("%s.%s", base, ext)
		if i > 0 {
			name = fmt.Sprintf("%s (%d).%s", base, i, ext)
		}
		path := filepath.Join(dir, name)

		file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			return file, path, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return nil, "", fmt.Errorf("can't create %s: %w", path, err)
		}
	}
	return nil, "", fmt.Errorf("no free file name for %s.%s in %s", base, ext, dir)
}
