package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/madrasa/internal/content"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestInspect(t *testing.T) {
	pdf := []byte("%PDF-1.7\n%...")

	ct, err := Inspect(Routes["curriculumPdf"], pdf)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", ct)

	ct, err = Inspect(Routes["chairmanImage"], pngBytes(t))
	require.NoError(t, err)
	assert.Equal(t, "image/png", ct)

	_, err = Inspect(Routes["curriculumPdf"], pngBytes(t))
	assert.ErrorIs(t, err, content.ErrValidation)

	_, err = Inspect(Routes["newsImage"], pdf)
	assert.ErrorIs(t, err, content.ErrValidation)

	_, err = Inspect(Routes["newsImage"], nil)
	assert.ErrorIs(t, err, content.ErrValidation)

	small := Route{Name: "tiny", Kind: KindPDF, MaxSize: 4}
	_, err = Inspect(small, pdf)
	assert.ErrorIs(t, err, content.ErrValidation)
}

func TestReadStopsAtLimit(t *testing.T) {
	route := Route{Name: "tiny", Kind: KindPDF, MaxSize: 8}
	_, err := Read(route, "big.pdf", strings.NewReader("%PDF-1.7 and a lot more"))
	assert.ErrorIs(t, err, content.ErrValidation)

	file, err := Read(Routes["curriculumPdf"], `C:\docs\plan.pdf`, strings.NewReader("%PDF-1.4"))
	require.NoError(t, err)
	assert.Equal(t, "plan.pdf", file.Name)
}

func TestLocalUploader(t *testing.T) {
	dir := t.TempDir()
	up := NewLocalUploader(dir, "/static/uploads/")

	res, err := up.Upload(context.Background(), Routes["curriculumPdf"], File{Name: "Plan.PDF", ContentType: "application/pdf", Data: []byte("%PDF-1.4")})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(res.URL, "/static/uploads/curriculumPdf/"))
	assert.True(t, strings.HasSuffix(res.URL, ".pdf"))
	assert.Equal(t, int64(8), res.FileSize)

	stored, err := os.ReadFile(filepath.Join(dir, "curriculumPdf", filepath.Base(res.URL)))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(stored))
}

func TestRemoteUploader(t *testing.T) {
	var gotRoute, gotAuth, gotName string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotRoute = r.FormValue("route")
		f, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		gotName = header.Filename
		io.Copy(io.Discard, f)
		json.NewEncoder(w).Encode(map[string]string{"url": "https://files.example.com/abc.png"})
	}))
	defer srv.Close()

	up := NewRemoteUploader(srv.URL, "tok")
	res, err := up.Upload(context.Background(), Routes["chairmanImage"], File{Name: "me.png", ContentType: "image/png", Data: pngBytes(t)})
	require.NoError(t, err)
	assert.Equal(t, "https://files.example.com/abc.png", res.URL)
	assert.Equal(t, "chairmanImage", gotRoute)
	assert.Equal(t, "Bearer tok", gotAuth)
	assert.Equal(t, "me.png", gotName)
}

func TestRemoteUploaderFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"error":"storage offline"}`))
	}))
	defer srv.Close()

	up := NewRemoteUploader(srv.URL, "")
	_, err := up.Upload(context.Background(), Routes["newsImage"], File{Name: "x.png", ContentType: "image/png", Data: []byte{1}})
	require.ErrorIs(t, err, ErrUpstreamUpload)
	assert.Contains(t, err.Error(), "storage offline")

	empty := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer empty.Close()
	_, err = NewRemoteUploader(empty.URL, "").Upload(context.Background(), Routes["newsImage"], File{Name: "x.png", Data: []byte{1}})
	assert.ErrorIs(t, err, ErrUpstreamUpload)
}
