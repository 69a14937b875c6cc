package static

import (
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeFile(t *testing.T, root, name, content string) {
	t.Helper()
	path := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func setupTestApp(t *testing.T, browse bool) (*fiber.App, string) {
	root := t.TempDir()
	writeFile(t, root, "index.html", "<h1>Hi</h1>")
	writeFile(t, root, "assets/js/main.js", "console.log('main');")
	writeFile(t, root, "docs/index.html", "<p>docs</p>")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "empty"), 0o755))

	app := fiber.New(fiber.Config{UnescapePath: true})
	f := NewFeature(Options{Root: root, Index: "index.html", Browse: browse}, zap.NewNop())
	require.True(t, f.IsEnabled())
	require.NoError(t, f.Load(app))
	return app, root
}

func readBody(t *testing.T, r io.Reader) string {
	t.Helper()
	b, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(b)
}

func TestHandler_ServesFiles(t *testing.T) {
	app, _ := setupTestApp(t, true)

	tests := []struct {
		name        string
		path        string
		body        string
		contentType string
	}{
		{"RootIndex", "/", "<h1>Hi</h1>", "text/html"},
		{"ExplicitIndex", "/index.html", "<h1>Hi</h1>", "text/html"},
		{"NestedFile", "/assets/js/main.js", "console.log('main');", "javascript"},
		{"NestedIndex", "/docs/", "<p>docs</p>", "text/html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil))
			require.NoError(t, err)

			assert.Equal(t, fiber.StatusOK, resp.StatusCode)
			assert.Equal(t, tt.body, readBody(t, resp.Body))
			assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), tt.contentType)
			assert.NotEmpty(t, resp.Header.Get(fiber.HeaderLastModified))
		})
	}
}

func TestHandler_NotFound(t *testing.T) {
	app, _ := setupTestApp(t, true)

	for _, path := range []string{"/missing.html", "/assets/nope/", "/../../etc/passwd"} {
		t.Run(path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", path, nil))
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		})
	}
}

func TestHandler_DirectoryRedirect(t *testing.T) {
	app, _ := setupTestApp(t, true)

	resp, err := app.Test(httptest.NewRequest("GET", "/docs?lang=es", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusMovedPermanently, resp.StatusCode)
	assert.Equal(t, "/docs/?lang=es", resp.Header.Get(fiber.HeaderLocation))
}

func TestHandler_DirectoryRedirectEscapesName(t *testing.T) {
	app, root := setupTestApp(t, true)

	tests := []struct {
		dir      string
		path     string
		location string
	}{
		{"a#b", "/a%23b", "/a%23b/"},
		{"my dir", "/my%20dir", "/my%20dir/"},
		{"q?x", "/q%3Fx", "/q%3Fx/"},
	}

	for _, tt := range tests {
		t.Run(tt.dir, func(t *testing.T) {
			writeFile(t, root, filepath.Join(tt.dir, "index.html"), tt.dir)

			resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil))
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusMovedPermanently, resp.StatusCode)
			assert.Equal(t, tt.location, resp.Header.Get(fiber.HeaderLocation))

			// Following the redirect lands on the directory's index.
			resp, err = app.Test(httptest.NewRequest("GET", tt.location, nil))
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusOK, resp.StatusCode)
			assert.Equal(t, tt.dir, readBody(t, resp.Body))
		})
	}
}

func TestHandler_DirectoryWithoutIndex(t *testing.T) {
	t.Run("BrowseEnabled", func(t *testing.T) {
		app, _ := setupTestApp(t, true)

		resp, err := app.Test(httptest.NewRequest("GET", "/assets/", nil))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Contains(t, readBody(t, resp.Body), "js")
	})

	t.Run("BrowseDisabled", func(t *testing.T) {
		app, _ := setupTestApp(t, false)

		resp, err := app.Test(httptest.NewRequest("GET", "/empty/", nil))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})
}

func TestHandler_Head(t *testing.T) {
	app, _ := setupTestApp(t, true)

	resp, err := app.Test(httptest.NewRequest("HEAD", "/index.html", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "11", resp.Header.Get(fiber.HeaderContentLength))
	assert.Empty(t, readBody(t, resp.Body))
}

func TestHandler_IgnoresWrites(t *testing.T) {
	app, root := setupTestApp(t, true)

	resp, err := app.Test(httptest.NewRequest("POST", "/index.html", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	data, err := os.ReadFile(filepath.Join(root, "index.html"))
	require.NoError(t, err)
	assert.Equal(t, "<h1>Hi</h1>", string(data))
}

func TestFeature(t *testing.T) {
	f := NewFeature(Options{}, zap.NewNop())
	assert.Equal(t, "static", f.Name())
	assert.False(t, f.IsEnabled())
}
