package handler

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/madrasa/internal/content"
	"github.com/madrasa/internal/service"
	"github.com/madrasa/internal/upload"
)

// readUpload 读取表单中的 file 字段并按路由校验类型与大小
func (a *API) readUpload(c *gin.Context, route upload.Route) (upload.File, bool) {
	header, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "file is required")
		return upload.File{}, false
	}
	if header.Size > route.MaxSize {
		a.fail(c, content.Invalid("file", "file is too large"))
		return upload.File{}, false
	}

	src, err := header.Open()
	if err != nil {
		respondError(c, http.StatusBadRequest, "failed to read file")
		return upload.File{}, false
	}
	defer src.Close()

	file, err := upload.Read(route, header.Filename, src)
	if err != nil {
		if errors.Is(err, content.ErrValidation) {
			a.fail(c, err)
			return upload.File{}, false
		}
		respondError(c, http.StatusBadRequest, "failed to read file")
		return upload.File{}, false
	}
	return file, true
}

// UploadFile 上传文件到配置的存储后端，返回可保存到内容中的 URL
func (a *API) UploadFile(c *gin.Context) {
	route, ok := upload.LookupRoute(c.Param("route"))
	if !ok {
		respondError(c, http.StatusNotFound, "unknown upload route")
		return
	}
	if a.uploader == nil {
		a.fail(c, service.ErrUploadUnavailable)
		return
	}

	file, ok := a.readUpload(c, route)
	if !ok {
		return
	}

	res, err := a.uploader.Upload(c.Request.Context(), route, file)
	if err != nil {
		a.fail(c, err)
		return
	}
	if name, ok := sessions.Default(c).Get(sessionUsername).(string); ok {
		res.UploadedBy = name
	}
	respondOK(c, http.StatusCreated, res)
}
