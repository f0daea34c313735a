// Package upload validates incoming files and hands them to a storage backend.
// Only the URL returned by the backend is persisted by callers.
package upload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/madrasa/internal/content"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// ErrUpstreamUpload is returned when the storage backend rejects or fails an upload.
var ErrUpstreamUpload = errors.New("upstream upload failed")

// FileKind restricts what a route accepts.
type FileKind string

const (
	KindPDF   FileKind = "pdf"
	KindImage FileKind = "image"
)

const mb = 1 << 20

// Route is a named upload slot with a type and size limit.
type Route struct {
	Name    string
	Kind    FileKind
	MaxSize int64
}

// Routes lists every upload slot.
var Routes = map[string]Route{
	"curriculumPdf":   {Name: "curriculumPdf", Kind: KindPDF, MaxSize: 16 * mb},
	"curriculumImage": {Name: "curriculumImage", Kind: KindImage, MaxSize: 8 * mb},
	"chairmanImage":   {Name: "chairmanImage", Kind: KindImage, MaxSize: 8 * mb},
	"newsImage":       {Name: "newsImage", Kind: KindImage, MaxSize: 8 * mb},
}

// LookupRoute returns the route registered under name.
func LookupRoute(name string) (Route, bool) {
	r, ok := Routes[name]
	return r, ok
}

// File is an accepted upload ready to be stored.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Result describes a stored file.
type Result struct {
	URL         string `json:"url"`
	FileName    string `json:"fileName"`
	FileSize    int64  `json:"fileSize"`
	ContentType string `json:"contentType"`
	UploadedBy  string `json:"uploadedBy"`
}

// Uploader stores a file and returns where it can be fetched from.
type Uploader interface {
	Upload(ctx context.Context, route Route, file File) (Result, error)
}

// Read reads at most route.MaxSize bytes from r and checks the content against the route.
func Read(route Route, name string, r io.Reader) (File, error) {
	data, err := io.ReadAll(io.LimitReader(r, route.MaxSize+1))
	if err != nil {
		return File{}, fmt.Errorf("read upload: %w", err)
	}
	contentType, err := Inspect(route, data)
	if err != nil {
		return File{}, err
	}
	return File{Name: cleanName(name), ContentType: contentType, Data: data}, nil
}

// Inspect checks size and type and returns the detected content type.
func Inspect(route Route, data []byte) (string, error) {
	if len(data) == 0 {
		return "", content.Invalid("file", "file is empty")
	}
	if int64(len(data)) > route.MaxSize {
		return "", content.Invalid("file", fmt.Sprintf("file exceeds %d MB", route.MaxSize/mb))
	}

	switch route.Kind {
	case KindPDF:
		if !bytes.HasPrefix(data, []byte("%PDF-")) {
			return "", content.Invalid("file", "only PDF files are allowed")
		}
		return "application/pdf", nil
	case KindImage:
		_, format, err := image.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			return "", content.Invalid("file", "only image files are allowed")
		}
		detected := http.DetectContentType(data)
		if !strings.HasPrefix(detected, "image/") {
			detected = "image/" + format
		}
		return detected, nil
	}
	return "", content.Invalid("route", "unknown upload route")
}

func cleanName(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if base == "." || base == "/" || base == "" {
		return "upload"
	}
	return base
}
