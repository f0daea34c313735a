package upload

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// LocalUploader 将文件写入本地目录，供开发环境使用。
type LocalUploader struct {
	dir     string
	urlPath string
	now     func() time.Time
}

// NewLocalUploader stores files under dir and serves them from urlPath.
func NewLocalUploader(dir, urlPath string) *LocalUploader {
	return &LocalUploader{
		dir:     dir,
		urlPath: "/" + strings.Trim(urlPath, "/"),
		now:     time.Now,
	}
}

// Upload writes the file under a unique name.
func (u *LocalUploader) Upload(ctx context.Context, route Route, file File) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	targetDir := filepath.Join(u.dir, route.Name)
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("%w: create upload dir: %v", ErrUpstreamUpload, err)
	}

	// 生成唯一文件名
	ext := strings.ToLower(filepath.Ext(file.Name))
	newFilename := fmt.Sprintf("%s-%s%s", u.now().Format("20060102"), uuid.New().String(), ext)
	if err := os.WriteFile(filepath.Join(targetDir, newFilename), file.Data, 0o644); err != nil {
		return Result{}, fmt.Errorf("%w: save file: %v", ErrUpstreamUpload, err)
	}

	return Result{
		URL:         path.Join(u.urlPath, route.Name, newFilename),
		FileName:    file.Name,
		FileSize:    int64(len(file.Data)),
		ContentType: file.ContentType,
		UploadedBy:  "admin",
	}, nil
}
