package service

import (
	"context"
	"errors"
	"fmt"
	"html/template"

	"github.com/madrasa/internal/content"
	"github.com/madrasa/internal/db"
	"github.com/madrasa/internal/upload"
	"gorm.io/gorm"
)

// ErrUploadUnavailable is returned when no uploader is configured.
var ErrUploadUnavailable = errors.New("upload is not configured")

// ChairmanService 维护主席致辞页面。
type ChairmanService struct {
	page     *content.Singleton[db.ChairmanMessage, *db.ChairmanMessage]
	uploader upload.Uploader
}

// NewChairmanService 构造 ChairmanService
func NewChairmanService(gdb *gorm.DB, inv content.Invalidator, uploader upload.Uploader) *ChairmanService {
	return &ChairmanService{
		page: content.NewSingleton[db.ChairmanMessage](gdb, content.SingletonConfig[db.ChairmanMessage]{
			Name: "chairman message", Paths: []string{PathChairman}, Defaults: db.DefaultChairmanMessage, Invalidator: inv,
		}),
		uploader: uploader,
	}
}

// ChairmanView is the public page with the message rendered from markdown.
type ChairmanView struct {
	Page        db.ChairmanMessage
	MessageHTML template.HTML
}

// AdminState returns the saved page, or nil when none exists yet.
func (s *ChairmanService) AdminState(ctx context.Context) (*db.ChairmanMessage, error) {
	return stored(ctx, s.page)
}

// Save upserts the page.
func (s *ChairmanService) Save(ctx context.Context, draft db.ChairmanMessage) (*db.ChairmanMessage, error) {
	return s.page.Upsert(ctx, trimmed(draft))
}

// SetImage stores url as the chairman photo, keeping every other field.
func (s *ChairmanService) SetImage(ctx context.Context, url string) (*db.ChairmanMessage, error) {
	page, _, err := s.page.GetOrDefault(ctx)
	if err != nil {
		return nil, err
	}
	page.ChairmanImage = url
	return s.page.Upsert(ctx, page)
}

// UploadImage stores the photo with the uploader and then points the page at it.
// When the upload fails the page is left unchanged.
func (s *ChairmanService) UploadImage(ctx context.Context, file upload.File) (*db.ChairmanMessage, upload.Result, error) {
	if s.uploader == nil {
		return nil, upload.Result{}, ErrUploadUnavailable
	}
	res, err := s.uploader.Upload(ctx, upload.Routes["chairmanImage"], file)
	if err != nil {
		return nil, upload.Result{}, fmt.Errorf("upload chairman image: %w", err)
	}
	page, err := s.SetImage(ctx, res.URL)
	if err != nil {
		return nil, upload.Result{}, err
	}
	return page, res, nil
}

// PublicView returns the saved page or the default one.
func (s *ChairmanService) PublicView(ctx context.Context) (ChairmanView, error) {
	page, _, err := s.page.GetOrDefault(ctx)
	if err != nil {
		return ChairmanView{}, err
	}
	return ChairmanView{Page: page, MessageHTML: RenderMarkdown(page.MessageContent)}, nil
}
