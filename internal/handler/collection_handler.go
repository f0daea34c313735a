package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/madrasa/internal/content"
)

// rowMeta reads the fields of a row form whose absence matters.
type rowMeta struct {
	ID       uint  `json:"id"`
	IsActive *bool `json:"isActive"`
}

type reorderRequest struct {
	IDs []uint `json:"ids" binding:"required"`
}

type activeRequest struct {
	IsActive *bool `json:"isActive"`
}

// collectionRoutes 为一个有序集合挂载统一的增删改查路由。
type collectionRoutes[T content.Row, PT content.RowPtr[T]] struct {
	api *API
	// resolve picks the collection served by the request.
	resolve func(c *gin.Context) (*content.Collection[T, PT], error)
	// remove overrides the plain delete, e.g. for parents with children.
	remove func(c *gin.Context, id uint, cascade bool) error
}

func fixed[T content.Row, PT content.RowPtr[T]](coll *content.Collection[T, PT]) func(*gin.Context) (*content.Collection[T, PT], error) {
	return func(*gin.Context) (*content.Collection[T, PT], error) {
		return coll, nil
	}
}

func (r collectionRoutes[T, PT]) mount(rg *gin.RouterGroup, path string) {
	rg.GET(path, r.list)
	rg.POST(path, r.save)
	rg.POST(path+"/reorder", r.reorder)
	rg.PUT(path+"/:id", r.update)
	rg.DELETE(path+"/:id", r.delete)
	rg.PATCH(path+"/:id/active", r.setActive)
}

func (r collectionRoutes[T, PT]) list(c *gin.Context) {
	coll, err := r.resolve(c)
	if err != nil {
		r.api.fail(c, err)
		return
	}
	parentID, err := parseUintQuery(c, "parentId")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	rows, err := coll.List(c.Request.Context(), content.Query{ParentID: parentID})
	if err != nil {
		r.api.fail(c, err)
		return
	}
	respondOK(c, http.StatusOK, rows)
}

// bindRow decodes a row form. An omitted isActive means visible.
func bindRow[T any, PT interface {
	*T
	SetActive(bool)
}](c *gin.Context) (T, rowMeta, bool) {
	var (
		row  T
		meta rowMeta
	)
	if err := c.ShouldBindBodyWith(&row, binding.JSON); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return row, meta, false
	}
	if err := c.ShouldBindBodyWith(&meta, binding.JSON); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return row, meta, false
	}
	if meta.IsActive == nil {
		PT(&row).SetActive(true)
	}
	return row, meta, true
}

// submit runs the row form through an editor opened for id.
func (r collectionRoutes[T, PT]) submit(c *gin.Context, id uint, row T) {
	coll, err := r.resolve(c)
	if err != nil {
		r.api.fail(c, err)
		return
	}
	ctx := c.Request.Context()
	editor := content.OpenEditor(id)
	err = editor.Submit(
		func() error { return coll.Create(ctx, &row) },
		func(id uint) error {
			updated, err := coll.Update(ctx, id, &row)
			if err == nil {
				row = *updated
			}
			return err
		},
	)
	if err != nil {
		r.api.fail(c, err)
		return
	}

	status := http.StatusOK
	if editor.Mode() == content.ModeCreate {
		status = http.StatusCreated
	}
	respondOK(c, status, row)
}

// save creates a row when the form carries no id and updates it otherwise.
func (r collectionRoutes[T, PT]) save(c *gin.Context) {
	row, meta, ok := bindRow[T, PT](c)
	if !ok {
		return
	}
	r.submit(c, meta.ID, row)
}

func (r collectionRoutes[T, PT]) update(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	row, _, ok := bindRow[T, PT](c)
	if !ok {
		return
	}
	r.submit(c, id, row)
}

func (r collectionRoutes[T, PT]) delete(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if !confirmed(c) {
		r.api.fail(c, content.ErrConfirmationRequired)
		return
	}

	if r.remove != nil {
		err = r.remove(c, id, queryBool(c, "cascade"))
	} else {
		var coll *content.Collection[T, PT]
		if coll, err = r.resolve(c); err == nil {
			err = coll.Delete(c.Request.Context(), id)
		}
	}
	if err != nil {
		r.api.fail(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"id": id})
}

func (r collectionRoutes[T, PT]) setActive(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	coll, err := r.resolve(c)
	if err != nil {
		r.api.fail(c, err)
		return
	}

	var req activeRequest
	if c.Request.ContentLength > 0 && !bindJSON(c, &req, "invalid request body") {
		return
	}

	var row *T
	if req.IsActive == nil {
		row, err = coll.Toggle(c.Request.Context(), id)
	} else {
		row, err = coll.SetActive(c.Request.Context(), id, *req.IsActive)
	}
	if err != nil {
		r.api.fail(c, err)
		return
	}
	respondOK(c, http.StatusOK, row)
}

func (r collectionRoutes[T, PT]) reorder(c *gin.Context) {
	coll, err := r.resolve(c)
	if err != nil {
		r.api.fail(c, err)
		return
	}
	var req reorderRequest
	if !bindJSON(c, &req, "ids are required") {
		return
	}
	if err := coll.Reorder(c.Request.Context(), req.IDs); err != nil {
		r.api.fail(c, err)
		return
	}
	rows, err := coll.List(c.Request.Context(), content.Query{})
	if err != nil {
		r.api.fail(c, err)
		return
	}
	respondOK(c, http.StatusOK, rows)
}
