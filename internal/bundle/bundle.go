// Package bundle manages the on-disk WIS2 topic hierarchy bundle: the
// per-level reference tables and the IANA TLD registry the validators are
// loaded from.
//
// The bundle lives in a single directory (by default
// ~/.wistopics/wis2-topic-hierarchy) and is replaced wholesale by Sync.
// Loading produces an immutable topics.Tables snapshot; the engine never
// touches the filesystem itself.
//
// Filesystem access goes through afero so tests can run against an
// in-memory filesystem.
package bundle

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/jpl-au/wistopics/internal/topics"
)

// ErrNotSynced is returned when the bundle directory does not hold a full
// table set. Run "wistopics bundle sync" to download it.
var ErrNotSynced = errors.New("topic hierarchy tables not synced")

// tldFile is the IANA registry file name, kept identical to the upstream
// name so a manually downloaded copy works unchanged.
const tldFile = "tlds-alpha-by-domain.txt"

// Options configures a Store. Zero values select the defaults.
type Options struct {
	// Fs is the filesystem the bundle lives on. Defaults to the OS
	// filesystem.
	Fs afero.Fs

	// Dir is the bundle directory. Defaults to
	// ~/.wistopics/wis2-topic-hierarchy.
	Dir string

	// TopicURL and TLDURL override the download sources used by Sync.
	TopicURL string
	TLDURL   string

	// Client is the HTTP client used by Sync. Defaults to
	// http.DefaultClient.
	Client *http.Client
}

// Store reads and writes the bundle directory.
type Store struct {
	fs       afero.Fs
	dir      string
	topicURL string
	tldURL   string
	client   *http.Client
}

// DefaultDir returns the default bundle directory under the user's home.
// Falls back to a relative path when the home directory cannot be
// determined, so unusual environments (containers, etc.) still work.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".wistopics", "wis2-topic-hierarchy")
	}
	return filepath.Join(home, ".wistopics", "wis2-topic-hierarchy")
}

// NewStore creates a store over the given options.
func NewStore(opts Options) *Store {
	s := &Store{
		fs:       opts.Fs,
		dir:      opts.Dir,
		topicURL: opts.TopicURL,
		tldURL:   opts.TLDURL,
		client:   opts.Client,
	}
	if s.fs == nil {
		s.fs = afero.NewOsFs()
	}
	if s.dir == "" {
		s.dir = DefaultDir()
	}
	if s.client == nil {
		s.client = http.DefaultClient
	}
	return s
}

// Dir returns the bundle directory.
func (s *Store) Dir() string {
	return s.dir
}

// Synced reports whether every level table is present in the bundle
// directory.
func (s *Store) Synced() bool {
	for _, name := range topics.LevelNames {
		ok, err := afero.Exists(s.fs, s.levelPath(name))
		if err != nil || !ok {
			return false
		}
	}
	return true
}

// Load reads the seven level tables into an immutable snapshot.
// Returns ErrNotSynced when any table file is missing.
func (s *Store) Load() (*topics.Tables, error) {
	levels := make([][]string, 0, topics.NumLevels)
	for _, name := range topics.LevelNames {
		tokens, err := s.readColumn(s.levelPath(name))
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("%w: %s", ErrNotSynced, s.dir)
			}
			return nil, fmt.Errorf("loading %s table: %w", name, err)
		}
		levels = append(levels, tokens)
	}
	return topics.NewTables(levels)
}

// LoadTLDs reads the IANA TLD registry. The first line is a header and is
// skipped; the remaining lines are upper-case domain codes.
func (s *Store) LoadTLDs() ([]string, error) {
	tlds, err := s.readColumn(filepath.Join(s.dir, tldFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotSynced, s.dir)
		}
		return nil, fmt.Errorf("loading tld registry: %w", err)
	}
	return tlds, nil
}

func (s *Store) levelPath(name string) string {
	return filepath.Join(s.dir, name+".csv")
}

// readColumn reads the first column of a CSV file, skipping the header
// row. The TLD registry is a single-column file, so the same reader
// serves both formats.
func (s *Store) readColumn(path string) ([]string, error) {
	f, err := s.fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	if _, err := r.Read(); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, err
	}

	var tokens []string
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(row) > 0 && row[0] != "" {
			tokens = append(tokens, row[0])
		}
	}
	return tokens, nil
}
