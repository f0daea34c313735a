package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/madrasa/internal/db"
	"github.com/madrasa/internal/service"
	"github.com/madrasa/internal/upload"
)

// GetAbout 返回“关于我们”后台的全部数据
func (a *API) GetAbout(c *gin.Context) {
	state, err := a.svc.About.AdminState(c.Request.Context())
	if err != nil {
		a.fail(c, err)
		return
	}
	respondOK(c, http.StatusOK, state)
}

// SaveAboutContent 保存“关于我们”页面文字草稿
func (a *API) SaveAboutContent(c *gin.Context) {
	var draft service.AboutDraft
	if !bindJSON(c, &draft, "invalid page content") {
		return
	}
	state, err := a.svc.About.SaveDraft(c.Request.Context(), draft)
	if err != nil {
		a.fail(c, err)
		return
	}
	respondOK(c, http.StatusOK, state)
}

// GetMission 返回使命愿景页面
func (a *API) GetMission(c *gin.Context) {
	page, err := a.svc.Mission.AdminState(c.Request.Context())
	if err != nil {
		a.fail(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"missionVision": page})
}

// SaveMission 保存使命愿景页面
func (a *API) SaveMission(c *gin.Context) {
	var draft db.MissionVision
	if !bindJSON(c, &draft, "invalid mission content") {
		return
	}
	page, err := a.svc.Mission.Save(c.Request.Context(), draft)
	if err != nil {
		a.fail(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"missionVision": page})
}

// GetChairman 返回主席致辞页面
func (a *API) GetChairman(c *gin.Context) {
	page, err := a.svc.Chairman.AdminState(c.Request.Context())
	if err != nil {
		a.fail(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"chairmanMessage": page})
}

// SaveChairman 保存主席致辞页面
func (a *API) SaveChairman(c *gin.Context) {
	var draft db.ChairmanMessage
	if !bindJSON(c, &draft, "invalid chairman message") {
		return
	}
	page, err := a.svc.Chairman.Save(c.Request.Context(), draft)
	if err != nil {
		a.fail(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"chairmanMessage": page})
}

// UploadChairmanImage 上传主席照片并写入页面
func (a *API) UploadChairmanImage(c *gin.Context) {
	file, ok := a.readUpload(c, upload.Routes["chairmanImage"])
	if !ok {
		return
	}
	page, res, err := a.svc.Chairman.UploadImage(c.Request.Context(), file)
	if err != nil {
		a.fail(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"chairmanMessage": page, "upload": res})
}

// GetCommittee 返回顾问委员会后台数据
func (a *API) GetCommittee(c *gin.Context) {
	state, err := a.svc.Committee.AdminState(c.Request.Context())
	if err != nil {
		a.fail(c, err)
		return
	}
	respondOK(c, http.StatusOK, state)
}

// SaveCommitteeContent 保存顾问委员会页面文字
func (a *API) SaveCommitteeContent(c *gin.Context) {
	var draft db.AdvisoryCommittee
	if !bindJSON(c, &draft, "invalid committee content") {
		return
	}
	if _, err := a.svc.Committee.SavePage(c.Request.Context(), draft); err != nil {
		a.fail(c, err)
		return
	}
	state, err := a.svc.Committee.AdminState(c.Request.Context())
	if err != nil {
		a.fail(c, err)
		return
	}
	respondOK(c, http.StatusOK, state)
}
