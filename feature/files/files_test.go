package files_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"livecast/core/server"
	"livecast/feature/files"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func seedFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/site", 0o755))
	require.NoError(t, afero.WriteFile(fs, "/site/b.html", []byte("B"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/site/a.html", []byte("X"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/site/notes.txt", []byte("ignored"), 0o644))
	require.NoError(t, fs.MkdirAll("/site/nested.html", 0o755))
	return fs
}

// unreadableFs fails every open of the named file.
type unreadableFs struct {
	afero.Fs
	name string
}

func (u unreadableFs) Open(name string) (afero.File, error) {
	if name == u.name {
		return nil, afero.ErrFileNotFound
	}
	return u.Fs.Open(name)
}

func TestService_List(t *testing.T) {
	svc := files.NewService(seedFs(t), zap.NewNop())

	out, err := svc.List(context.Background(), "/site")
	require.NoError(t, err)
	assert.Equal(t, []files.File{
		{Name: "a.html", Content: "X"},
		{Name: "b.html", Content: "B"},
	}, out)
}

func TestService_ListDropsUnreadable(t *testing.T) {
	fs := unreadableFs{Fs: seedFs(t), name: "/site/a.html"}
	svc := files.NewService(fs, zap.NewNop())

	out, err := svc.List(context.Background(), "/site")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "b.html", out[0].Name)
}

func TestService_ListEmpty(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/empty", 0o755))
	svc := files.NewService(fs, zap.NewNop())

	out, err := svc.List(context.Background(), "/empty")
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestService_ListMissingDir(t *testing.T) {
	svc := files.NewService(afero.NewMemMapFs(), zap.NewNop())

	_, err := svc.List(context.Background(), "/does/not/exist")
	assert.Error(t, err)
}

func setupApp(t *testing.T, fs afero.Fs) *fiber.App {
	t.Helper()
	app := server.New(server.Config{}, zap.NewNop())
	require.NoError(t, files.NewFeature(fs, zap.NewNop()).Load(app))
	return app
}

func TestHandleList(t *testing.T) {
	app := setupApp(t, seedFs(t))

	t.Run("Success", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/files?path=/site", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Files []files.File `json:"files"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.Len(t, body.Files, 2)
		assert.Equal(t, "a.html", body.Files[0].Name)
		assert.Equal(t, "X", body.Files[0].Content)
	})

	t.Run("Empty Directory", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, fs.MkdirAll("/empty", 0o755))
		app := setupApp(t, fs)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/files?path=/empty", nil))
		require.NoError(t, err)
		body, _ := io.ReadAll(resp.Body)
		assert.JSONEq(t, `{"files":[]}`, string(body))
	})

	t.Run("Missing Path", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/files", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		assert.JSONEq(t, `{"error":"Missing path query param"}`, string(body))
	})

	t.Run("Unreadable Directory", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/files?path=/nowhere", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		assert.JSONEq(t, `{"error":"Cannot read directory"}`, string(body))
	})
}
