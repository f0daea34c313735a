package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type remoteResponse struct {
	URL   string `json:"url"`
	Error string `json:"error"`
}

// RemoteUploader posts files to an external file storage service.
type RemoteUploader struct {
	endpoint string
	token    string
	http     httpDoer
}

// NewRemoteUploader builds an uploader for endpoint authenticated with token.
func NewRemoteUploader(endpoint, token string) *RemoteUploader {
	return &RemoteUploader{
		endpoint: strings.TrimRight(strings.TrimSpace(endpoint), "/"),
		token:    strings.TrimSpace(token),
		http:     &http.Client{Timeout: 60 * time.Second},
	}
}

// SetHTTPClient 替换用于访问上传服务的 HTTP 客户端，主要面向测试场景。
func (u *RemoteUploader) SetHTTPClient(client httpDoer) {
	if client == nil {
		u.http = &http.Client{Timeout: 60 * time.Second}
		return
	}
	u.http = client
}

// Upload sends the file as multipart/form-data and expects {"url": "..."} back.
func (u *RemoteUploader) Upload(ctx context.Context, route Route, file File) (Result, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if err := writer.WriteField("route", route.Name); err != nil {
		return Result{}, fmt.Errorf("build upload request: %w", err)
	}
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, file.Name))
	header.Set("Content-Type", file.ContentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		return Result{}, fmt.Errorf("build upload request: %w", err)
	}
	if _, err := part.Write(file.Data); err != nil {
		return Result{}, fmt.Errorf("build upload request: %w", err)
	}
	if err := writer.Close(); err != nil {
		return Result{}, fmt.Errorf("build upload request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.endpoint, &body)
	if err != nil {
		return Result{}, fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if u.token != "" {
		req.Header.Set("Authorization", "Bearer "+u.token)
	}

	resp, err := u.http.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrUpstreamUpload, err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	var payload remoteResponse
	_ = json.Unmarshal(raw, &payload)

	if resp.StatusCode >= 400 {
		msg := strings.TrimSpace(payload.Error)
		if msg == "" {
			msg = strings.TrimSpace(string(raw))
		}
		return Result{}, fmt.Errorf("%w: %s (%s)", ErrUpstreamUpload, resp.Status, msg)
	}
	if strings.TrimSpace(payload.URL) == "" {
		return Result{}, fmt.Errorf("%w: response carried no url", ErrUpstreamUpload)
	}

	return Result{
		URL:         payload.URL,
		FileName:    file.Name,
		FileSize:    int64(len(file.Data)),
		ContentType: file.ContentType,
		UploadedBy:  "admin",
	}, nil
}
