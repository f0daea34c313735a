package service

import (
	"context"

	"github.com/madrasa/internal/content"
	"github.com/madrasa/internal/db"
	"gorm.io/gorm"
)

// MissionService 维护使命与愿景页面。
type MissionService struct {
	page *content.Singleton[db.MissionVision, *db.MissionVision]
}

// NewMissionService 构造 MissionService
func NewMissionService(gdb *gorm.DB, inv content.Invalidator) *MissionService {
	return &MissionService{
		page: content.NewSingleton[db.MissionVision](gdb, content.SingletonConfig[db.MissionVision]{
			Name: "mission vision", Paths: []string{PathMission}, Defaults: db.DefaultMissionVision, Invalidator: inv,
		}),
	}
}

// AdminState returns the saved page, or nil when none exists yet.
func (s *MissionService) AdminState(ctx context.Context) (*db.MissionVision, error) {
	return stored(ctx, s.page)
}

// Save upserts the page.
func (s *MissionService) Save(ctx context.Context, draft db.MissionVision) (*db.MissionVision, error) {
	return s.page.Upsert(ctx, trimmed(draft))
}

// PublicView returns the saved page or the default one.
func (s *MissionService) PublicView(ctx context.Context) (db.MissionVision, error) {
	page, _, err := s.page.GetOrDefault(ctx)
	return page, err
}
