package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/madrasa/internal/db"
)

// MountAdminAPI 注册需要登录的后台接口
func (a *API) MountAdminAPI(api *gin.RouterGroup) {
	api.GET("/me", a.CurrentUser)

	api.GET("/about", a.GetAbout)
	api.POST("/about/page-content", a.SaveAboutContent)
	collectionRoutes[db.AboutStatistic, *db.AboutStatistic]{api: a, resolve: fixed(a.svc.About.Statistics)}.mount(api, "/about/statistics")
	collectionRoutes[db.CoreValue, *db.CoreValue]{api: a, resolve: fixed(a.svc.About.CoreValues)}.mount(api, "/about/core-values")
	collectionRoutes[db.LeadershipMember, *db.LeadershipMember]{api: a, resolve: fixed(a.svc.About.Leadership)}.mount(api, "/about/leadership")

	api.GET("/mission", a.GetMission)
	api.POST("/mission", a.SaveMission)

	api.GET("/chairman", a.GetChairman)
	api.POST("/chairman", a.SaveChairman)
	api.POST("/chairman/image", a.UploadChairmanImage)

	api.GET("/committee", a.GetCommittee)
	api.POST("/committee/page-content", a.SaveCommitteeContent)
	collectionRoutes[db.CommitteeMember, *db.CommitteeMember]{api: a, resolve: fixed(a.svc.Committee.Members)}.mount(api, "/committee/members")

	api.GET("/academic/:kind", a.GetAcademic)
	collectionRoutes[db.AcademicClass, *db.AcademicClass]{api: a, resolve: a.academicClasses, remove: a.deleteAcademicClass}.mount(api, "/academic/:kind/classes")
	collectionRoutes[db.AcademicItem, *db.AcademicItem]{api: a, resolve: a.academicItems}.mount(api, "/academic/:kind/items")

	api.GET("/news", a.GetNews)
	collectionRoutes[db.NewsCategory, *db.NewsCategory]{api: a, resolve: fixed(a.svc.News.Categories), remove: a.deleteNewsCategory}.mount(api, "/news/categories")
	collectionRoutes[db.NewsItem, *db.NewsItem]{api: a, resolve: fixed(a.svc.News.Items)}.mount(api, "/news/items")
	api.PATCH("/news/items/:id/published", a.SetNewsPublished)

	api.GET("/contact", a.GetContact)
	collectionRoutes[db.ContactInfo, *db.ContactInfo]{api: a, resolve: fixed(a.svc.Contact.Infos)}.mount(api, "/contact/infos")
	api.GET("/contact/submissions", a.ListSubmissions)
	api.PATCH("/contact/submissions/:id", a.UpdateSubmission)
	api.DELETE("/contact/submissions/:id", a.DeleteSubmission)

	api.POST("/uploads/:route", a.UploadFile)

	api.GET("/settings", a.GetSiteSettings)
	api.PUT("/settings", a.UpdateSiteSettings)

	api.POST("/cache/refresh", a.RefreshCache)
}
