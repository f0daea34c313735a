package service

import (
	"context"

	"github.com/madrasa/internal/content"
	"github.com/madrasa/internal/db"
	"gorm.io/gorm"
)

// AboutService 维护“关于我们”页面：页面文字、使命愿景摘要以及三个有序集合。
type AboutService struct {
	page       *content.Singleton[db.AboutUsPage, *db.AboutUsPage]
	section    *content.Singleton[db.AboutSection, *db.AboutSection]
	Statistics *content.Collection[db.AboutStatistic, *db.AboutStatistic]
	CoreValues *content.Collection[db.CoreValue, *db.CoreValue]
	Leadership *content.Collection[db.LeadershipMember, *db.LeadershipMember]
}

// NewAboutService 构造 AboutService
func NewAboutService(gdb *gorm.DB, inv content.Invalidator) *AboutService {
	paths := []string{PathAbout, PathHome}
	return &AboutService{
		page: content.NewSingleton[db.AboutUsPage](gdb, content.SingletonConfig[db.AboutUsPage]{
			Name: "about page", Paths: paths, Defaults: db.DefaultAboutUsPage, Invalidator: inv,
		}),
		section: content.NewSingleton[db.AboutSection](gdb, content.SingletonConfig[db.AboutSection]{
			Name: "about section", Paths: paths, Defaults: db.DefaultAboutSection, Invalidator: inv,
		}),
		Statistics: content.NewCollection[db.AboutStatistic](gdb, content.CollectionConfig{
			Name: "statistic", Paths: paths, Invalidator: inv,
		}).WithPrepare(trimHook[db.AboutStatistic]),
		CoreValues: content.NewCollection[db.CoreValue](gdb, content.CollectionConfig{
			Name: "core value", Paths: paths, Invalidator: inv,
		}).WithPrepare(trimHook[db.CoreValue]),
		Leadership: content.NewCollection[db.LeadershipMember](gdb, content.CollectionConfig{
			Name: "leadership member", Paths: paths, Invalidator: inv,
		}).WithPrepare(trimHook[db.LeadershipMember]),
	}
}

// AboutDraft is the page-content form. Either part may be omitted.
type AboutDraft struct {
	Page    *db.AboutUsPage  `json:"aboutUsPage"`
	Section *db.AboutSection `json:"aboutSection"`
}

// AboutAdminState is everything the About admin screen shows. Page and
// Section are nil until first saved.
type AboutAdminState struct {
	Page       *db.AboutUsPage       `json:"aboutUsPage"`
	Section    *db.AboutSection      `json:"aboutSection"`
	Statistics []db.AboutStatistic   `json:"statistics"`
	CoreValues []db.CoreValue        `json:"coreValues"`
	Leadership []db.LeadershipMember `json:"leadership"`
}

// AboutView is the public About Us page with defaults applied.
type AboutView struct {
	Page       db.AboutUsPage
	Section    db.AboutSection
	Statistics []db.AboutStatistic
	CoreValues []db.CoreValue
	Leadership []db.LeadershipMember
}

// AdminState loads every row, active or not.
func (s *AboutService) AdminState(ctx context.Context) (AboutAdminState, error) {
	var (
		state AboutAdminState
		err   error
	)
	if state.Page, err = stored(ctx, s.page); err != nil {
		return AboutAdminState{}, err
	}
	if state.Section, err = stored(ctx, s.section); err != nil {
		return AboutAdminState{}, err
	}
	if state.Statistics, err = s.Statistics.List(ctx, content.Query{}); err != nil {
		return AboutAdminState{}, err
	}
	if state.CoreValues, err = s.CoreValues.List(ctx, content.Query{}); err != nil {
		return AboutAdminState{}, err
	}
	if state.Leadership, err = s.Leadership.List(ctx, content.Query{}); err != nil {
		return AboutAdminState{}, err
	}
	return state, nil
}

// SaveDraft upserts the parts present in draft and returns the new admin state.
func (s *AboutService) SaveDraft(ctx context.Context, draft AboutDraft) (AboutAdminState, error) {
	if draft.Page == nil && draft.Section == nil {
		return AboutAdminState{}, content.Invalid("aboutUsPage", "nothing to save")
	}
	if draft.Page != nil {
		if _, err := s.page.Upsert(ctx, trimmed(*draft.Page)); err != nil {
			return AboutAdminState{}, err
		}
	}
	if draft.Section != nil {
		if _, err := s.section.Upsert(ctx, trimmed(*draft.Section)); err != nil {
			return AboutAdminState{}, err
		}
	}
	return s.AdminState(ctx)
}

// PublicView returns active rows only, falling back to defaults.
func (s *AboutService) PublicView(ctx context.Context) (AboutView, error) {
	var view AboutView
	var err error
	if view.Page, _, err = s.page.GetOrDefault(ctx); err != nil {
		return AboutView{}, err
	}
	if view.Section, _, err = s.section.GetOrDefault(ctx); err != nil {
		return AboutView{}, err
	}

	active := content.Query{ActiveOnly: true}
	stats, err := s.Statistics.List(ctx, active)
	if err != nil {
		return AboutView{}, err
	}
	values, err := s.CoreValues.List(ctx, active)
	if err != nil {
		return AboutView{}, err
	}
	leaders, err := s.Leadership.List(ctx, active)
	if err != nil {
		return AboutView{}, err
	}
	view.Statistics = orDefault(stats, db.DefaultAboutStatistics)
	view.CoreValues = orDefault(values, db.DefaultCoreValues)
	view.Leadership = orDefault(leaders, db.DefaultLeadership)
	return view, nil
}
