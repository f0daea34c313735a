package service

import (
	"context"
	"errors"

	"github.com/madrasa/internal/content"
	"github.com/madrasa/internal/db"
	"gorm.io/gorm"
)

// AcademicService 维护一种学术资源（课程设置、教学大纲或课程表）的班级与条目。
type AcademicService struct {
	db      *gorm.DB
	kind    db.AcademicKind
	Classes *content.Collection[db.AcademicClass, *db.AcademicClass]
	Items   *content.Collection[db.AcademicItem, *db.AcademicItem]
}

// NewAcademicService 构造指定类别的 AcademicService
func NewAcademicService(gdb *gorm.DB, kind db.AcademicKind, inv content.Invalidator) *AcademicService {
	paths := AcademicPaths(kind)
	s := &AcademicService{db: gdb, kind: kind}

	s.Classes = content.NewCollection[db.AcademicClass](gdb, content.CollectionConfig{
		Name:        string(kind) + " class",
		Scope:       func(tx *gorm.DB) *gorm.DB { return tx.Where("kind = ?", kind) },
		Paths:       paths,
		Invalidator: inv,
	}).WithPrepare(func(_ context.Context, class *db.AcademicClass) error {
		*class = trimmed(*class)
		class.Kind = kind
		class.Items = nil
		return nil
	})

	s.Items = content.NewCollection[db.AcademicItem](gdb, content.CollectionConfig{
		Name:         string(kind) + " item",
		ParentColumn: "class_id",
		Scope: func(tx *gorm.DB) *gorm.DB {
			return tx.Where("class_id IN (?)", gdb.Model(&db.AcademicClass{}).Select("id").Where("kind = ?", kind))
		},
		Paths:       paths,
		Invalidator: inv,
	}).WithPrepare(trimHook[db.AcademicItem]).
		WithCheck(func(ctx context.Context, item *db.AcademicItem) error {
			if _, err := s.Classes.Get(ctx, item.ClassID); err != nil {
				if errors.Is(err, content.ErrNotFound) {
					return content.Invalid("classId", "class does not exist")
				}
				return err
			}
			return nil
		})

	return s
}

// Kind returns the resource kind served by s.
func (s *AcademicService) Kind() db.AcademicKind {
	return s.kind
}

// ListClasses returns the classes with their items attached, both in presentation order.
func (s *AcademicService) ListClasses(ctx context.Context, activeOnly bool) ([]db.AcademicClass, error) {
	classes, err := s.Classes.List(ctx, content.Query{ActiveOnly: activeOnly})
	if err != nil {
		return nil, err
	}
	items, err := s.Items.List(ctx, content.Query{ActiveOnly: activeOnly})
	if err != nil {
		return nil, err
	}

	byClass := make(map[uint][]db.AcademicItem, len(classes))
	for _, item := range items {
		byClass[item.ClassID] = append(byClass[item.ClassID], item)
	}
	for i := range classes {
		classes[i].Items = byClass[classes[i].ID]
		if classes[i].Items == nil {
			classes[i].Items = []db.AcademicItem{}
		}
	}
	return classes, nil
}

// DeleteClass removes a class. A class that still owns items is only removed
// when cascade is set; otherwise a *content.ChildrenError is returned.
func (s *AcademicService) DeleteClass(ctx context.Context, id uint, cascade bool) error {
	if _, err := s.Classes.Get(ctx, id); err != nil {
		return err
	}
	count, err := s.Items.Count(ctx, content.Query{ParentID: &id})
	if err != nil {
		return err
	}
	if count > 0 && !cascade {
		return &content.ChildrenError{Name: s.Classes.Name(), Count: count}
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.Items.WithTx(tx).DeleteByParent(ctx, id); err != nil {
			return err
		}
		return s.Classes.WithTx(tx).Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	s.Classes.Invalidate()
	return nil
}

// AcademicItemView is the public JSON shape of an item.
type AcademicItemView struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	PdfURL      string `json:"pdfUrl"`
	ImageURL    string `json:"imageUrl"`
	FileName    string `json:"fileName"`
	FileSize    int64  `json:"fileSize"`
	HasPreview  bool   `json:"hasPreview"`
	HasPdf      bool   `json:"hasPdf"`
}

// AcademicClassView is the public JSON shape of a class.
type AcademicClassView struct {
	ID          uint               `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Items       []AcademicItemView `json:"items"`
}

// PublicClasses returns active classes with active items.
func (s *AcademicService) PublicClasses(ctx context.Context) ([]AcademicClassView, error) {
	classes, err := s.ListClasses(ctx, true)
	if err != nil {
		return nil, err
	}
	out := make([]AcademicClassView, 0, len(classes))
	for _, class := range classes {
		view := AcademicClassView{
			ID:          class.ID,
			Name:        class.Name,
			Description: class.Description,
			Items:       make([]AcademicItemView, 0, len(class.Items)),
		}
		for _, item := range class.Items {
			view.Items = append(view.Items, AcademicItemView{
				ID:          item.ID,
				Title:       item.Title,
				Description: item.Description,
				PdfURL:      item.PdfURL,
				ImageURL:    item.ImageURL,
				FileName:    item.FileName,
				FileSize:    item.FileSize,
				HasPreview:  item.HasPreview(),
				HasPdf:      item.HasPdf(),
			})
		}
		out = append(out, view)
	}
	return out, nil
}
