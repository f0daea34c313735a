package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/madrasa/internal/content"
	"github.com/madrasa/internal/db"
	"github.com/madrasa/internal/logging"
	"github.com/madrasa/internal/service"
)

var academicTitles = map[db.AcademicKind]string{
	db.KindCurriculum: "Curriculum",
	db.KindSyllabus:   "Syllabus",
	db.KindRoutine:    "Class Routine",
}

func (a *API) renderError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Something went wrong. Please try again later."
	if errors.Is(err, content.ErrNotFound) {
		status = http.StatusNotFound
		message = "The page you are looking for could not be found."
	} else {
		_ = c.Error(err)
		logging.FromContext(c, a.logger).Error().Err(err).Msg("render page failed")
	}
	a.renderHTML(c, status, "error.html", gin.H{"title": http.StatusText(status), "status": status, "message": message})
}

// ShowHome 渲染首页
func (a *API) ShowHome(c *gin.Context) {
	ctx := c.Request.Context()
	about, err := a.svc.About.PublicView(ctx)
	if err != nil {
		a.renderError(c, err)
		return
	}
	feed, err := a.svc.News.PublicFeed(ctx, service.NewsQuery{Page: 1})
	if err != nil {
		a.renderError(c, err)
		return
	}
	latest := feed.Featured
	if len(latest) == 0 {
		latest = feed.Items
	}
	if len(latest) > service.FeaturedNewsLimit {
		latest = latest[:service.FeaturedNewsLimit]
	}
	a.renderHTML(c, http.StatusOK, "home.html", gin.H{
		"title": "Home",
		"about": about,
		"news":  latest,
	})
}

// ShowAbout 渲染“关于我们”页面
func (a *API) ShowAbout(c *gin.Context) {
	view, err := a.svc.About.PublicView(c.Request.Context())
	if err != nil {
		a.renderError(c, err)
		return
	}
	a.renderHTML(c, http.StatusOK, "about.html", gin.H{"title": view.Page.HeroTitle, "view": view})
}

// ShowMission 渲染使命愿景页面
func (a *API) ShowMission(c *gin.Context) {
	page, err := a.svc.Mission.PublicView(c.Request.Context())
	if err != nil {
		a.renderError(c, err)
		return
	}
	a.renderHTML(c, http.StatusOK, "mission.html", gin.H{"title": page.HeroTitle, "page": page})
}

// ShowChairman 渲染主席致辞页面
func (a *API) ShowChairman(c *gin.Context) {
	view, err := a.svc.Chairman.PublicView(c.Request.Context())
	if err != nil {
		a.renderError(c, err)
		return
	}
	a.renderHTML(c, http.StatusOK, "chairman.html", gin.H{"title": view.Page.HeroTitle, "view": view})
}

// ShowCommittee 渲染顾问委员会页面
func (a *API) ShowCommittee(c *gin.Context) {
	view, err := a.svc.Committee.PublicView(c.Request.Context())
	if err != nil {
		a.renderError(c, err)
		return
	}
	a.renderHTML(c, http.StatusOK, "committee.html", gin.H{"title": view.Page.HeroTitle, "view": view})
}

// ShowAcademic 渲染某类学术资源页面
func (a *API) ShowAcademic(kind db.AcademicKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		svc, ok := a.svc.Academic[kind]
		if !ok {
			a.renderError(c, content.ErrNotFound)
			return
		}
		classes, err := svc.PublicClasses(c.Request.Context())
		if err != nil {
			a.renderError(c, err)
			return
		}
		a.renderHTML(c, http.StatusOK, "academic.html", gin.H{
			"title":   academicTitles[kind],
			"kind":    kind,
			"classes": classes,
		})
	}
}

// ShowNews 渲染新闻列表，支持 ?page= 与 ?category=
func (a *API) ShowNews(c *gin.Context) {
	feed, err := a.svc.News.PublicFeed(c.Request.Context(), service.NewsQuery{
		Page:     parsePage(c.Query("page")),
		Category: strings.TrimSpace(c.Query("category")),
	})
	if err != nil {
		a.renderError(c, err)
		return
	}
	if feed.Page > 1 && feed.Page > feed.TotalPages {
		a.renderError(c, content.ErrNotFound)
		return
	}
	a.renderHTML(c, http.StatusOK, "news.html", gin.H{
		"title":    "News",
		"feed":     feed,
		"hasPrev":  feed.Page > 1,
		"hasNext":  feed.Page < feed.TotalPages,
		"prevPage": feed.Page - 1,
		"nextPage": feed.Page + 1,
	})
}

// ShowNewsDetail 渲染单条新闻
func (a *API) ShowNewsDetail(c *gin.Context) {
	article, err := a.svc.News.PublicItem(c.Request.Context(), c.Param("slug"))
	if err != nil {
		a.renderError(c, err)
		return
	}
	title := article.Item.MetaTitle
	if title == "" {
		title = article.Item.Title
	}
	a.renderHTML(c, http.StatusOK, "news_detail.html", gin.H{
		"title":       title,
		"description": article.Item.MetaDescription,
		"article":     article,
	})
}

// ShowContact 渲染联系我们页面
func (a *API) ShowContact(c *gin.Context) {
	view, err := a.svc.Contact.PublicView(c.Request.Context())
	if err != nil {
		a.renderError(c, err)
		return
	}
	a.renderHTML(c, http.StatusOK, "contact.html", gin.H{"title": "Contact Us", "view": view})
}

// NotFound 渲染 404 页面
func (a *API) NotFound(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/admin/api") || strings.HasPrefix(c.Request.URL.Path, "/api/") {
		respondError(c, http.StatusNotFound, "not found")
		return
	}
	a.renderError(c, content.ErrNotFound)
}
