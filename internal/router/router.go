package router

import (
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/madrasa/internal/cache"
	"github.com/madrasa/internal/config"
	"github.com/madrasa/internal/content"
	"github.com/madrasa/internal/db"
	"github.com/madrasa/internal/handler"
	"github.com/madrasa/internal/logging"
	"github.com/madrasa/internal/notify"
	"github.com/madrasa/internal/service"
	"github.com/madrasa/internal/upload"
	"github.com/madrasa/web"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

const sessionName = "madrasa_session"

// Deps are the runtime collaborators chosen by the caller.
type Deps struct {
	Logger   zerolog.Logger
	Uploader upload.Uploader
	Notifier notify.Notifier
}

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(cfg config.AppConfig, gdb *gorm.DB, deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), logging.Middleware(deps.Logger))

	// 配置会话中间件
	secret := cfg.SessionSecret
	if secret == "" {
		secret = "madrasa-dev-secret"
	}
	store := cookie.NewStore([]byte(secret))
	store.Options(sessions.Options{Path: "/", HttpOnly: true, SameSite: http.SameSiteLaxMode, MaxAge: 7 * 24 * 3600})
	r.Use(sessions.Sessions(sessionName, store))

	// 页面缓存；管理端修改内容后按路径失效
	var (
		pages       *cache.PageCache
		invalidator content.Invalidator = content.NopInvalidator
	)
	if cfg.CacheEnabled {
		pages = cache.New(cache.Options{TTL: cfg.CacheTTL, MaxEntries: cfg.CacheMaxEntries}, deps.Logger)
		invalidator = pages
	}

	svc := service.New(gdb, service.Deps{
		Invalidator: invalidator,
		Notifier:    deps.Notifier,
		Uploader:    deps.Uploader,
		Logger:      deps.Logger,
	})
	opts := handler.Options{Uploader: deps.Uploader, Logger: deps.Logger}
	if pages != nil {
		opts.Cache = pages
	}
	api := handler.NewAPI(gdb, svc, opts)

	// 加载模板并添加自定义函数
	tmpl := template.Must(template.New("").Funcs(templateFuncs()).ParseFS(web.Templates, "templates/*.html"))
	r.SetHTMLTemplate(tmpl)

	// 静态文件服务
	static, err := fs.Sub(web.Static, "static")
	if err != nil {
		panic(err)
	}
	r.StaticFS("/static", http.FS(static))
	if cfg.UploadDriver != config.UploadDriverRemote && cfg.UploadDir != "" {
		r.Static(uploadURLPath(cfg.UploadURLPath), cfg.UploadDir)
	}

	r.GET("/healthz", api.HealthCheck)

	// 公共页面
	public := r.Group("")
	if pages != nil {
		public.Use(pages.Middleware())
	}
	{
		public.GET(service.PathHome, api.ShowHome)
		public.GET(service.PathAbout, api.ShowAbout)
		public.GET(service.PathMission, api.ShowMission)
		public.GET(service.PathChairman, api.ShowChairman)
		public.GET(service.PathCommittee, api.ShowCommittee)
		for _, kind := range db.AcademicKinds {
			public.GET(service.AcademicPage(kind), api.ShowAcademic(kind))
			public.GET(service.AcademicAPI(kind), api.AcademicJSON(kind))
		}
		public.GET(service.PathNews, api.ShowNews)
		public.GET(service.PathNews+"/:slug", api.ShowNewsDetail)
		public.GET(service.PathContact, api.ShowContact)
	}
	r.POST("/api/contact", api.SubmitContact)
	r.GET("/api/contact", api.ContactMethodNotAllowed)

	// 后台管理路由
	admin := r.Group("/admin")
	{
		admin.POST("/login", api.Login)
		admin.POST("/logout", api.Logout)

		// 需要认证的后台接口
		adminAPI := admin.Group("/api")
		adminAPI.Use(handler.AuthRequired())
		api.MountAdminAPI(adminAPI)
	}

	r.NoRoute(api.NotFound)

	return r
}

func uploadURLPath(p string) string {
	p = strings.TrimRight(strings.TrimSpace(p), "/")
	if p == "" {
		return "/uploads"
	}
	return p
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"add": func(a, b int) int {
			return a + b
		},
		"sub": func(a, b int) int {
			return a - b
		},
		"year": func() int {
			return time.Now().Year()
		},
		"formatDate": formatDate,
		"fileSize":   formatFileSize,
		"dict":       dict,
	}
}

func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format("January 2, 2006")
}

func formatFileSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGTPE"[exp])
}

// dict builds a map from alternating keys and values for sub-templates.
func dict(values ...interface{}) (map[string]interface{}, error) {
	if len(values)%2 != 0 {
		return nil, errors.New("dict expects key/value pairs")
	}
	out := make(map[string]interface{}, len(values)/2)
	for i := 0; i < len(values); i += 2 {
		key, ok := values[i].(string)
		if !ok {
			return nil, errors.New("dict keys must be strings")
		}
		out[key] = values[i+1]
	}
	return out, nil
}
