package handler

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/madrasa/internal/db"
	"github.com/madrasa/internal/service"
	"github.com/madrasa/internal/upload"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// Purger drops every cached page and reports how many were dropped.
type Purger interface {
	Purge() int
}

// Options are the optional collaborators of API.
type Options struct {
	Uploader upload.Uploader
	Cache    Purger
	Logger   zerolog.Logger
}

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db       *gorm.DB
	svc      *service.Services
	uploader upload.Uploader
	cache    Purger
	logger   zerolog.Logger
}

type siteViewModel struct {
	Name       string
	Tagline    string
	LogoURL    string
	FooterText string
}

const siteSettingsContextKey = "__site_settings"

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, svc *service.Services, opts Options) *API {
	return &API{
		db:       gdb,
		svc:      svc,
		uploader: opts.Uploader,
		cache:    opts.Cache,
		logger:   opts.Logger,
	}
}

func (a *API) siteSettings(c *gin.Context) siteViewModel {
	if cached, exists := c.Get(siteSettingsContextKey); exists {
		if view, ok := cached.(siteViewModel); ok {
			return view
		}
	}

	settings, err := a.svc.Site.GetSettings(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
	}

	view := siteViewModel{
		Name:       strings.TrimSpace(settings.SiteName),
		Tagline:    strings.TrimSpace(settings.Tagline),
		LogoURL:    strings.TrimSpace(settings.LogoURL),
		FooterText: strings.TrimSpace(settings.FooterText),
	}
	if view.Name == "" {
		view.Name = db.DefaultSiteName
	}

	c.Set(siteSettingsContextKey, view)
	return view
}

func (a *API) renderHTML(c *gin.Context, status int, template string, data gin.H) {
	view := a.siteSettings(c)

	payload := gin.H{}
	for key, value := range data {
		payload[key] = value
	}

	if _, exists := payload["site"]; !exists {
		payload["site"] = gin.H{
			"name":       view.Name,
			"tagline":    view.Tagline,
			"logoUrl":    view.LogoURL,
			"footerText": view.FooterText,
		}
	}
	if _, exists := payload["siteName"]; !exists {
		payload["siteName"] = view.Name
	}
	if _, exists := payload["currentPath"]; !exists {
		payload["currentPath"] = c.Request.URL.Path
	}

	c.HTML(status, template, payload)
}

func (a *API) fail(c *gin.Context, err error) {
	respondErr(c, a.logger, err)
}
