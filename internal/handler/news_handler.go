package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type publishedRequest struct {
	IsPublished *bool `json:"isPublished"`
}

// GetNews 返回全部新闻分类与条目
func (a *API) GetNews(c *gin.Context) {
	state, err := a.svc.News.AdminState(c.Request.Context())
	if err != nil {
		a.fail(c, err)
		return
	}
	respondOK(c, http.StatusOK, state)
}

// SetNewsPublished 发布或撤回新闻；未指定 isPublished 时切换当前状态
func (a *API) SetNewsPublished(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var req publishedRequest
	if c.Request.ContentLength > 0 && !bindJSON(c, &req, "invalid request body") {
		return
	}

	ctx := c.Request.Context()
	if req.IsPublished == nil {
		item, err := a.svc.News.TogglePublished(ctx, id)
		if err != nil {
			a.fail(c, err)
			return
		}
		respondOK(c, http.StatusOK, item)
		return
	}
	item, err := a.svc.News.SetPublished(ctx, id, *req.IsPublished)
	if err != nil {
		a.fail(c, err)
		return
	}
	respondOK(c, http.StatusOK, item)
}

func (a *API) deleteNewsCategory(c *gin.Context, id uint, cascade bool) error {
	return a.svc.News.DeleteCategory(c.Request.Context(), id, cascade)
}
