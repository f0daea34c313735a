package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/madrasa/internal/content"
	"github.com/madrasa/internal/service"
)

// GetContact 返回联系方式与访客留言
func (a *API) GetContact(c *gin.Context) {
	state, err := a.svc.Contact.AdminState(c.Request.Context())
	if err != nil {
		a.fail(c, err)
		return
	}
	respondOK(c, http.StatusOK, state)
}

// ListSubmissions 按时间倒序返回留言，可按状态或未读过滤
func (a *API) ListSubmissions(c *gin.Context) {
	filter := service.SubmissionFilter{
		Status:     c.Query("status"),
		UnreadOnly: queryBool(c, "unread"),
	}
	subs, err := a.svc.Contact.ListSubmissions(c.Request.Context(), filter)
	if err != nil {
		a.fail(c, err)
		return
	}
	unread, err := a.svc.Contact.UnreadCount(c.Request.Context())
	if err != nil {
		a.fail(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"submissions": subs, "unreadCount": unread})
}

// UpdateSubmission 更新留言的处理状态、已读/已回复标记与备注
func (a *API) UpdateSubmission(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	var req service.SubmissionUpdate
	if !bindJSON(c, &req, "invalid request body") {
		return
	}
	sub, err := a.svc.Contact.UpdateSubmission(c.Request.Context(), id, req)
	if err != nil {
		a.fail(c, err)
		return
	}
	respondOK(c, http.StatusOK, sub)
}

// DeleteSubmission 删除留言，需要确认
func (a *API) DeleteSubmission(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if !confirmed(c) {
		a.fail(c, content.ErrConfirmationRequired)
		return
	}
	if err := a.svc.Contact.DeleteSubmission(c.Request.Context(), id); err != nil {
		a.fail(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"id": id})
}

// SubmitContact 接收公开联系表单
func (a *API) SubmitContact(c *gin.Context) {
	var input service.ContactInput
	if !bindJSON(c, &input, "invalid request body") {
		return
	}
	sub, err := a.svc.Contact.Submit(c.Request.Context(), input)
	if err != nil {
		a.fail(c, err)
		return
	}
	respondOK(c, http.StatusCreated, gin.H{"reference": sub.Reference, "message": "Thank you for contacting us. We will get back to you soon."})
}

// ContactMethodNotAllowed 拒绝对联系接口的 GET 请求
func (a *API) ContactMethodNotAllowed(c *gin.Context) {
	c.Header("Allow", http.MethodPost)
	respondError(c, http.StatusMethodNotAllowed, "method not allowed")
}
