package cmd

import (
	"archive/zip"
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBundleSync(t *testing.T) {
	env := newTestEnv(t)

	// Serve a fixture bundle from this process; the binary downloads it.
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range fixtureTables {
		if name == "tlds-alpha-by-domain.txt" {
			continue
		}
		w, err := zw.Create("wth-bundle/" + name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/wth-bundle.zip":
			w.Write(buf.Bytes())
		case "/tlds-alpha-by-domain.txt":
			w.Write([]byte(fixtureTables["tlds-alpha-by-domain.txt"]))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	cfg := "bundle:\n" +
		"  topic_url: " + srv.URL + "/wth-bundle.zip\n" +
		"  tld_url: " + srv.URL + "/tlds-alpha-by-domain.txt\n"
	cfgDir := filepath.Join(env.home, ".wistopics")
	require.NoError(t, os.MkdirAll(cfgDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "config.yaml"), []byte(cfg), 0644))

	// Sync into a fresh directory, then validate against it.
	env.tables = filepath.Join(env.home, "synced-tables")

	out := env.run("bundle", "sync")
	env.contains(out, "Synced reference tables")

	out = env.run("topic", "validate", "cache/a/wis2/ca-eccc-msc/data/core")
	env.contains(out, "Valid")
}
