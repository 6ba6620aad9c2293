package codec

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/Noth1ngLol/Llol/internal/record"
	"github.com/edsrzf/mmap-go"
	"github.com/pkg/errors"
)

// ReadFile maps the file at path read-only and decodes it. The mapping is
// released before returning; decoded keys and values are copies.
func ReadFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(record.ErrNotFound, "%s: %v", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, errors.Wrapf(record.ErrNotFound, "%s: %v", path, err)
	}

	// Zero-length files cannot be mapped; they decode as truncated input.
	if info.Size() == 0 {
		return Decode(bytes.NewReader(nil))
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, errors.Wrapf(err, "mapping %s", path)
	}
	defer m.Unmap()

	return Decode(bytes.NewReader(m))
}

// WriteFile replaces the contents of path with data.
//
// Without atomic the file is truncated and rewritten in place, so a crash
// halfway leaves it partially written. With atomic the data goes to a
// sibling temp file which is synced and renamed over path.
func WriteFile(path string, data []byte, atomic bool) error {
	if atomic {
		return writeAtomic(path, data)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeAtomic(path string, data []byte) error {
	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(dir, name+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	renamed := false
	defer func() {
		if !renamed {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return err
	}
	renamed = true

	// Persist the rename itself; failures here are not fatal.
	if d, err := os.Open(dir); err == nil {
		_ = d.Sync()
		_ = d.Close()
	}

	return nil
}
