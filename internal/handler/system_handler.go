package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/madrasa/internal/service"
)

// HealthCheck 提供监控系统使用的健康检查端点。
func (a *API) HealthCheck(c *gin.Context) {
	sqlDB, err := a.db.DB()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "database handle unavailable",
		})
		return
	}

	if err := sqlDB.PingContext(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "error",
			"message": "database unreachable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"database": "up",
	})
}

// GetSiteSettings 返回当前站点设置。
func (a *API) GetSiteSettings(c *gin.Context) {
	settings, err := a.svc.Site.GetSettings(c.Request.Context())
	if err != nil {
		a.fail(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"settings": settings})
}

// UpdateSiteSettings 保存站点设置。
func (a *API) UpdateSiteSettings(c *gin.Context) {
	var payload service.SiteSettingsInput
	if !bindJSON(c, &payload, "invalid site settings") {
		return
	}

	settings, err := a.svc.Site.UpdateSettings(c.Request.Context(), payload)
	if err != nil {
		a.fail(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"settings": settings})
}

// RefreshCache 清空页面缓存。
func (a *API) RefreshCache(c *gin.Context) {
	purged := 0
	if a.cache != nil {
		purged = a.cache.Purge()
	}
	a.logger.Info().Int("purged", purged).Msg("page cache refreshed")
	respondOK(c, http.StatusOK, gin.H{"purged": purged})
}
