package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/madrasa/internal/content"
	"github.com/madrasa/internal/logging"
	"github.com/madrasa/internal/service"
	"github.com/madrasa/internal/upload"
	"github.com/rs/zerolog"
)

// ConfirmDeleteHeader confirms a delete request like ?confirm=true does.
const ConfirmDeleteHeader = "X-Confirm-Delete"

func respondOK(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "error": message})
}

// respondErr 将服务层错误映射为 HTTP 状态码。
func respondErr(c *gin.Context, fallback zerolog.Logger, err error) {
	var (
		validation *content.ValidationError
		children   *content.ChildrenError
	)
	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": validation.Error(), "fields": validation.Fields})
	case errors.Is(err, content.ErrValidation):
		respondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, content.ErrNotFound):
		respondError(c, http.StatusNotFound, "not found")
	case errors.As(err, &children):
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": children.Error(), "childCount": children.Count})
	case errors.Is(err, content.ErrConfirmationRequired):
		respondError(c, http.StatusPreconditionRequired, "delete must be confirmed")
	case errors.Is(err, upload.ErrUpstreamUpload):
		logging.FromContext(c, fallback).Error().Err(err).Msg("upload failed")
		respondError(c, http.StatusBadGateway, "upload service failed")
	case errors.Is(err, service.ErrUploadUnavailable):
		respondError(c, http.StatusServiceUnavailable, err.Error())
	default:
		_ = c.Error(err)
		logging.FromContext(c, fallback).Error().Err(err).Msg("request failed")
		respondError(c, http.StatusInternalServerError, "internal error")
	}
}

func bindJSON(c *gin.Context, dst interface{}, message string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, message)
		return false
	}
	return true
}

func parseUintParam(c *gin.Context, key string) (uint, error) {
	raw := c.Param(key)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return uint(id), nil
}

func parseUintQuery(c *gin.Context, key string) (*uint, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid %s", key)
	}
	id := uint(parsed)
	return &id, nil
}

func queryBool(c *gin.Context, key string) bool {
	ok, _ := strconv.ParseBool(strings.TrimSpace(c.Query(key)))
	return ok
}

// confirmed reports whether the client confirmed a destructive request.
func confirmed(c *gin.Context) bool {
	if queryBool(c, "confirm") {
		return true
	}
	ok, _ := strconv.ParseBool(strings.TrimSpace(c.GetHeader(ConfirmDeleteHeader)))
	return ok
}

func parsePage(raw string) int {
	page, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
