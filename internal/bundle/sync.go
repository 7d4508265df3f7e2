// sync.go implements downloading the bundle from its published sources.
//
// Separated from bundle.go to isolate the network and archive handling
// from the read path. Sync replaces the bundle directory wholesale, so a
// partially written bundle from an interrupted run is repaired by the next
// sync rather than patched in place.

package bundle

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"path"
	"path/filepath"

	"github.com/spf13/afero"
)

// Sync downloads the topic hierarchy bundle and the IANA TLD registry
// into the bundle directory, replacing any previous contents. Archive
// entries are flattened: only the base name of each entry is kept, so
// the directory layout matches what Load expects regardless of how the
// upstream zip is nested.
func (s *Store) Sync(ctx context.Context) error {
	if err := s.fs.RemoveAll(s.dir); err != nil {
		return fmt.Errorf("clearing bundle directory: %w", err)
	}
	if err := s.fs.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("creating bundle directory: %w", err)
	}

	data, err := s.fetch(ctx, s.topicURL)
	if err != nil {
		return fmt.Errorf("downloading topic hierarchy bundle: %w", err)
	}
	if err := s.extract(data); err != nil {
		return fmt.Errorf("extracting topic hierarchy bundle: %w", err)
	}

	tlds, err := s.fetch(ctx, s.tldURL)
	if err != nil {
		return fmt.Errorf("downloading tld registry: %w", err)
	}
	if err := afero.WriteFile(s.fs, filepath.Join(s.dir, tldFile), tlds, 0644); err != nil {
		return fmt.Errorf("writing tld registry: %w", err)
	}

	return nil
}

// fetch downloads a URL into memory. The bundle is small (tens of
// kilobytes), so buffering the whole body keeps the zip handling simple.
func (s *Store) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s for %s", resp.Status, url)
	}

	return io.ReadAll(resp.Body)
}

// extract writes every file entry of the zip archive into the bundle
// directory under its base name.
func (s *Store) extract(data []byte) error {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return err
	}

	for _, entry := range zr.File {
		if entry.FileInfo().IsDir() {
			continue
		}

		src, err := entry.Open()
		if err != nil {
			return fmt.Errorf("opening archive entry %s: %w", entry.Name, err)
		}

		dest := filepath.Join(s.dir, path.Base(entry.Name))
		if err := afero.WriteReader(s.fs, dest, src); err != nil {
			src.Close()
			return fmt.Errorf("writing %s: %w", dest, err)
		}
		src.Close()
	}

	return nil
}
