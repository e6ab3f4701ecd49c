// Package storage writes uploaded images to a local directory, enforcing the
// MIME whitelist and size ceiling before anything touches disk.
package storage

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

const (
	// MaxFileSize is the per-file ceiling in bytes.
	MaxFileSize = 3_000_000

	urlPrefix = "/uploads/"
)

var ErrUnsupportedFormat = errors.New("unsupported file format")
var ErrFileTooLarge = errors.New("file too large")

// allowedTypes is the accepted MIME whitelist. Detection runs on the file
// bytes, not the client-supplied header.
var allowedTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/jpg":  {},
}

// File describes a stored upload.
type File struct {
	Filename     string
	OriginalName string
	URL          string
}

// Store saves files under a single directory with randomized names.
type Store struct {
	dir string
}

// NewStore creates the upload directory when missing and returns a Store
// rooted there.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory files are stored in.
func (s *Store) Dir() string {
	return s.dir
}

// Save validates and writes one multipart file. The on-disk name is a random
// eight-digit prefix joined to the sanitized original name, so two uploads of
// the same file do not collide in practice.
func (s *Store) Save(fh *multipart.FileHeader) (*File, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	// Read one byte past the ceiling so oversized files are caught even
	// when the reported size lies.
	data, err := io.ReadAll(io.LimitReader(src, MaxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if len(data) > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	if _, ok := allowedTypes[http.DetectContentType(data)]; !ok {
		return nil, ErrUnsupportedFormat
	}

	name := randomPrefix() + "-" + sanitize(fh.Filename)
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return nil, fmt.Errorf("write upload: %w", err)
	}

	return &File{
		Filename:     name,
		OriginalName: fh.Filename,
		URL:          urlPrefix + name,
	}, nil
}

// Remove deletes a stored file by its on-disk name. Removing a file that is
// already gone is not an error.
func (s *Store) Remove(filename string) error {
	err := os.Remove(filepath.Join(s.dir, sanitize(filename)))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove upload: %w", err)
	}
	return nil
}

func randomPrefix() string {
	n, err := rand.Int(rand.Reader, big.NewInt(100_000_000))
	if err != nil {
		// crypto/rand failing means the platform is broken; surface loudly.
		panic(fmt.Sprintf("storage: random prefix: %v", err))
	}
	return fmt.Sprintf("%08d", n.Int64())
}

// sanitize strips any path components from a client-supplied name.
func sanitize(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == ".." || name == "/" {
		return "upload"
	}
	return name
}
