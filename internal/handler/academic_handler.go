package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/madrasa/internal/content"
	"github.com/madrasa/internal/db"
	"github.com/madrasa/internal/service"
)

// academic resolves the :kind path parameter to its service.
func (a *API) academic(c *gin.Context) (*service.AcademicService, error) {
	kind, ok := db.ParseAcademicKind(c.Param("kind"))
	if !ok {
		return nil, content.ErrNotFound
	}
	svc, ok := a.svc.Academic[kind]
	if !ok {
		return nil, content.ErrNotFound
	}
	return svc, nil
}

func (a *API) academicClasses(c *gin.Context) (*content.Collection[db.AcademicClass, *db.AcademicClass], error) {
	svc, err := a.academic(c)
	if err != nil {
		return nil, err
	}
	return svc.Classes, nil
}

func (a *API) academicItems(c *gin.Context) (*content.Collection[db.AcademicItem, *db.AcademicItem], error) {
	svc, err := a.academic(c)
	if err != nil {
		return nil, err
	}
	return svc.Items, nil
}

func (a *API) deleteAcademicClass(c *gin.Context, id uint, cascade bool) error {
	svc, err := a.academic(c)
	if err != nil {
		return err
	}
	return svc.DeleteClass(c.Request.Context(), id, cascade)
}

// GetAcademic 返回某类学术资源的全部班级与条目
func (a *API) GetAcademic(c *gin.Context) {
	svc, err := a.academic(c)
	if err != nil {
		a.fail(c, err)
		return
	}
	classes, err := svc.ListClasses(c.Request.Context(), false)
	if err != nil {
		a.fail(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"kind": svc.Kind(), "classes": classes})
}

// AcademicJSON 返回公开的班级与条目列表
func (a *API) AcademicJSON(kind db.AcademicKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		svc, ok := a.svc.Academic[kind]
		if !ok {
			a.fail(c, content.ErrNotFound)
			return
		}
		classes, err := svc.PublicClasses(c.Request.Context())
		if err != nil {
			a.fail(c, err)
			return
		}
		respondOK(c, http.StatusOK, classes)
	}
}
