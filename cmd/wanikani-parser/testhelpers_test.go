package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// setConfigFile sets the global configFile variable and registers a cleanup to restore it.
func setConfigFile(t *testing.T, cfgPath string) {
	t.Helper()
	oldConfigFile := configFile
	configFile = cfgPath
	t.Cleanup(func() { configFile = oldConfigFile })
}

// setupBrokenConfigFile creates a config file with invalid YAML that causes Load() to fail.
func setupBrokenConfigFile(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("{{invalid yaml content"), 0644))
	return cfgPath
}

const emptyListingPage = `<html><body><ol class="subject-character-grid__items"></ol></body></html>`

const radicalListingPage = `<html><body><ol class="subject-character-grid__items">
<li><a class="subject-character subject-character--radical subject-character--grid subject-character--unlocked" href="/radicals/ground">一</a></li>
</ol></body></html>`

const groundRadicalPage = `<html><body>
<header class="page-header">
  <a class="page-header__icon page-header__icon--level" href="/level/1">1</a>
  <span class="page-header__icon page-header__icon--radical">一</span>
</header>
<section class="subject-section subject-section--meaning">
  <div class="subject-section__meanings">
    <h2 class="subject-section__meanings-title">Primary</h2>
    <p class="subject-section__meanings-items">Ground</p>
  </div>
  <p class="subject-section__text">This radical is the <span class="radical-highlight">ground</span>.</p>
</section>
</body></html>`

// setupSourceServer serves a site with a single radical listed on every difficulty tier.
func setupSourceServer(t *testing.T) *httptest.Server {
	t.Helper()
	pages := map[string]string{
		"/radicals":        radicalListingPage,
		"/radicals/ground": groundRadicalPage,
		"/kanji":           emptyListingPage,
		"/vocabulary":      emptyListingPage,
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page, ok := pages[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(page))
	}))
	t.Cleanup(srv.Close)
	return srv
}
