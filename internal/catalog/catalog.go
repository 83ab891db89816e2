package catalog

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/rastonlab/ftmw-api/pkg/models"
)

// ErrUnknownMolecule is returned when no linelist is mapped for a molecule.
// An unknown identifier is a hard failure, never a silent empty catalog.
var ErrUnknownMolecule = errors.New("unknown molecule")

// Store resolves a molecule identifier to its ordered list of spectral lines.
type Store interface {
	Load(ctx context.Context, molecule string) ([]models.SpectralLine, error)
	Molecules() []string
}

// moleculeFiles maps molecule identifiers to their linelist files.
var moleculeFiles = map[string]string{
	"C6H5CN":     "C6H5CN.dat",
	"HC7N":       "HC7N.dat",
	"CH2CHCN":    "CH2CHCN.dat",
	"CH2CHOH":    "CH2CHOH.dat",
	"HOCH2CH2OH": "HOCH2CH2OH.dat",
	"NH2CONH2":   "NH2CONH2.dat",
	"OC3S":       "OC3S.dat",
	"OCS":        "OCS.dat",
}

// FileStore reads two-column (frequency, intensity) linelists from a data
// directory. Parsed catalogs are cached process-wide; they are read-only
// after load, so the cache is shared safely across requests.
type FileStore struct {
	dir string

	mu    sync.RWMutex
	cache map[string][]models.SpectralLine
}

// NewFileStore creates a catalog store rooted at the given linelist directory.
func NewFileStore(dir string) *FileStore {
	return &FileStore{
		dir:   dir,
		cache: make(map[string][]models.SpectralLine),
	}
}

// Load returns the full line catalog for a molecule.
func (s *FileStore) Load(ctx context.Context, molecule string) ([]models.SpectralLine, error) {
	filename, ok := moleculeFiles[molecule]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMolecule, molecule)
	}

	s.mu.RLock()
	lines, cached := s.cache[molecule]
	s.mu.RUnlock()
	if cached {
		return lines, nil
	}

	path := filepath.Join(s.dir, filename)
	lines, err := parseLinelist(path)
	if err != nil {
		return nil, err
	}
	log.Info().Str("molecule", molecule).Int("lines", len(lines)).Msg("Linelist loaded")

	s.mu.Lock()
	s.cache[molecule] = lines
	s.mu.Unlock()
	return lines, nil
}

// Molecules lists the known molecule identifiers in sorted order.
func (s *FileStore) Molecules() []string {
	names := make([]string, 0, len(moleculeFiles))
	for name := range moleculeFiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// parseLinelist reads a whitespace-separated two-column linelist. Rows that
// do not parse as two numbers are skipped, matching the coercing reader of
// the original acquisition software.
func parseLinelist(path string) ([]models.SpectralLine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open linelist: %w", err)
	}
	defer f.Close()

	var lines []models.SpectralLine
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		freq, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			continue
		}
		intensity, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			continue
		}
		lines = append(lines, models.SpectralLine{Frequency: freq, Intensity: intensity})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read linelist: %w", err)
	}
	return lines, nil
}

// MemStore is an in-memory catalog used by tests and seed data.
type MemStore struct {
	Lines map[string][]models.SpectralLine
}

// Load returns the configured lines for a molecule.
func (s *MemStore) Load(ctx context.Context, molecule string) ([]models.SpectralLine, error) {
	lines, ok := s.Lines[molecule]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMolecule, molecule)
	}
	return lines, nil
}

// Molecules lists the configured molecule identifiers in sorted order.
func (s *MemStore) Molecules() []string {
	names := make([]string, 0, len(s.Lines))
	for name := range s.Lines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
