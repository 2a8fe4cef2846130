package filesystem

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"webdir/internal/application"
	"webdir/internal/domain"
	"webdir/internal/ports"
)

//go:embed web.json
var defaultSeed embed.FS

// DefaultSeedName is the embedded seed document
const DefaultSeedName = "web.json"

// SeedSource reads the seed document from a file system
type SeedSource struct {
	fsys fs.FS
	name string
}

// Ensure SeedSource implements ports.SeedSource
var _ ports.SeedSource = (*SeedSource)(nil)

// NewSeedSource reads name from fsys
func NewSeedSource(fsys fs.FS, name string) *SeedSource {
	return &SeedSource{fsys: fsys, name: name}
}

// NewFileSeedSource reads the seed document at path on disk
func NewFileSeedSource(path string) *SeedSource {
	return NewSeedSource(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

// NewDefaultSeedSource reads the seed document compiled into the binary
func NewDefaultSeedSource() *SeedSource {
	return NewSeedSource(defaultSeed, DefaultSeedName)
}

// Fetch opens and decodes the seed document
func (s *SeedSource) Fetch(ctx context.Context) ([]domain.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := s.fsys.Open(s.name)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed %s: %w", s.name, err)
	}
	defer f.Close()

	return application.DecodeSeed(f)
}
