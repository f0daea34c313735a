package service

import (
	"context"

	"github.com/madrasa/internal/content"
	"github.com/madrasa/internal/db"
	"gorm.io/gorm"
)

// CommitteeService 维护顾问委员会页面及成员列表。
type CommitteeService struct {
	page    *content.Singleton[db.AdvisoryCommittee, *db.AdvisoryCommittee]
	Members *content.Collection[db.CommitteeMember, *db.CommitteeMember]
}

// NewCommitteeService 构造 CommitteeService
func NewCommitteeService(gdb *gorm.DB, inv content.Invalidator) *CommitteeService {
	paths := []string{PathCommittee}
	return &CommitteeService{
		page: content.NewSingleton[db.AdvisoryCommittee](gdb, content.SingletonConfig[db.AdvisoryCommittee]{
			Name: "advisory committee", Paths: paths, Defaults: db.DefaultAdvisoryCommittee, Invalidator: inv,
		}),
		Members: content.NewCollection[db.CommitteeMember](gdb, content.CollectionConfig{
			Name: "committee member", Paths: paths, Invalidator: inv,
		}).WithPrepare(trimHook[db.CommitteeMember]),
	}
}

// CommitteeAdminState is everything the committee admin screen shows.
type CommitteeAdminState struct {
	Page    *db.AdvisoryCommittee `json:"advisoryCommittee"`
	Members []db.CommitteeMember  `json:"members"`
}

// CommitteeView is the public page with defaults applied.
type CommitteeView struct {
	Page    db.AdvisoryCommittee
	Members []db.CommitteeMember
}

// AdminState loads the page and every member.
func (s *CommitteeService) AdminState(ctx context.Context) (CommitteeAdminState, error) {
	page, err := stored(ctx, s.page)
	if err != nil {
		return CommitteeAdminState{}, err
	}
	members, err := s.Members.List(ctx, content.Query{})
	if err != nil {
		return CommitteeAdminState{}, err
	}
	return CommitteeAdminState{Page: page, Members: members}, nil
}

// SavePage upserts the page text.
func (s *CommitteeService) SavePage(ctx context.Context, draft db.AdvisoryCommittee) (*db.AdvisoryCommittee, error) {
	return s.page.Upsert(ctx, trimmed(draft))
}

// PublicView returns the page and active members, falling back to defaults.
func (s *CommitteeService) PublicView(ctx context.Context) (CommitteeView, error) {
	page, _, err := s.page.GetOrDefault(ctx)
	if err != nil {
		return CommitteeView{}, err
	}
	members, err := s.Members.List(ctx, content.Query{ActiveOnly: true})
	if err != nil {
		return CommitteeView{}, err
	}
	return CommitteeView{Page: page, Members: orDefault(members, db.DefaultCommitteeMembers)}, nil
}
