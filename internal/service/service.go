package service

import (
	"context"
	"errors"

	"github.com/madrasa/internal/content"
	"github.com/madrasa/internal/db"
	"github.com/madrasa/internal/notify"
	"github.com/madrasa/internal/upload"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// Deps are the collaborators shared by every service.
type Deps struct {
	Invalidator content.Invalidator
	Notifier    notify.Notifier
	Uploader    upload.Uploader
	Logger      zerolog.Logger
}

// Services bundles one service per site feature.
type Services struct {
	About     *AboutService
	Mission   *MissionService
	Chairman  *ChairmanService
	Committee *CommitteeService
	Academic  map[db.AcademicKind]*AcademicService
	News      *NewsService
	Contact   *ContactService
	Site      *SiteService
}

// New wires every service over gdb.
func New(gdb *gorm.DB, deps Deps) *Services {
	if deps.Invalidator == nil {
		deps.Invalidator = content.NopInvalidator
	}
	if deps.Notifier == nil {
		deps.Notifier = notify.NewLogNotifier(deps.Logger)
	}

	academic := make(map[db.AcademicKind]*AcademicService, len(db.AcademicKinds))
	for _, kind := range db.AcademicKinds {
		academic[kind] = NewAcademicService(gdb, kind, deps.Invalidator)
	}

	return &Services{
		About:     NewAboutService(gdb, deps.Invalidator),
		Mission:   NewMissionService(gdb, deps.Invalidator),
		Chairman:  NewChairmanService(gdb, deps.Invalidator, deps.Uploader),
		Committee: NewCommitteeService(gdb, deps.Invalidator),
		Academic:  academic,
		News:      NewNewsService(gdb, deps.Invalidator),
		Contact:   NewContactService(gdb, deps.Invalidator, deps.Notifier, deps.Logger),
		Site:      NewSiteService(gdb, deps.Invalidator),
	}
}

// stored returns the saved singleton, or nil when nothing was saved yet.
func stored[T any, PT interface {
	*T
	SetID(uint)
}](ctx context.Context, s *content.Singleton[T, PT]) (*T, error) {
	record, err := s.Get(ctx)
	if errors.Is(err, content.ErrNotFound) {
		return nil, nil
	}
	return record, err
}

// orDefault returns rows, or the default rows when rows is empty.
func orDefault[T any](rows []T, defaults func() []T) []T {
	if len(rows) > 0 {
		return rows
	}
	return defaults()
}
