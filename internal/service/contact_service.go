package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/madrasa/internal/content"
	"github.com/madrasa/internal/db"
	"github.com/madrasa/internal/notify"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// ContactInput is what a visitor sends from the contact form.
type ContactInput struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Subject     string `json:"subject"`
	Message     string `json:"message"`
	InquiryType string `json:"inquiryType"`
	Priority    string `json:"priority"`
}

// SubmissionFilter narrows the admin submissions list.
type SubmissionFilter struct {
	Status     string
	UnreadOnly bool
}

// SubmissionUpdate carries the fields an admin may change. Nil fields are left as they are.
type SubmissionUpdate struct {
	Status     *string `json:"status"`
	IsRead     *bool   `json:"isRead"`
	IsReplied  *bool   `json:"isReplied"`
	AdminNotes *string `json:"adminNotes"`
}

// ContactService 维护联系方式并处理访客留言。
type ContactService struct {
	db       *gorm.DB
	Infos    *content.Collection[db.ContactInfo, *db.ContactInfo]
	notifier notify.Notifier
	logger   zerolog.Logger
	newRef   func() string
}

// NewContactService 构造 ContactService
func NewContactService(gdb *gorm.DB, inv content.Invalidator, notifier notify.Notifier, logger zerolog.Logger) *ContactService {
	if notifier == nil {
		notifier = notify.NewLogNotifier(logger)
	}
	infos := content.NewCollection[db.ContactInfo](gdb, content.CollectionConfig{
		Name: "contact info", Paths: []string{PathContact}, Invalidator: inv,
	}).WithPrepare(func(_ context.Context, info *db.ContactInfo) error {
		*info = trimmed(*info)
		if info.Country == "" {
			info.Country = db.DefaultContactCountry
		}
		return nil
	})
	return &ContactService{
		db:       gdb,
		Infos:    infos,
		notifier: notifier,
		logger:   logger,
		newRef:   func() string { return uuid.NewString() },
	}
}

// Submit validates and stores a visitor message, then notifies the office.
func (s *ContactService) Submit(ctx context.Context, input ContactInput) (*db.ContactSubmission, error) {
	input = trimmed(input)
	sub := db.ContactSubmission{
		Reference:   s.newRef(),
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Email:       strings.ToLower(input.Email),
		Phone:       input.Phone,
		Subject:     input.Subject,
		Message:     input.Message,
		InquiryType: input.InquiryType,
		Priority:    strings.ToLower(input.Priority),
		Status:      db.StatusNew,
	}
	if sub.InquiryType == "" {
		sub.InquiryType = "general"
	}
	if sub.Priority == "" {
		sub.Priority = db.PriorityNormal
	}
	if err := content.Validate(&sub); err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Create(&sub).Error; err != nil {
		return nil, fmt.Errorf("create contact submission: %w: %w", content.ErrStore, err)
	}

	s.notifier.ContactSubmitted(ctx, sub)
	return &sub, nil
}

// ListSubmissions returns submissions newest first.
func (s *ContactService) ListSubmissions(ctx context.Context, filter SubmissionFilter) ([]db.ContactSubmission, error) {
	query := s.db.WithContext(ctx).Model(&db.ContactSubmission{})
	if status := strings.TrimSpace(filter.Status); status != "" {
		query = query.Where("status = ?", status)
	}
	if filter.UnreadOnly {
		query = query.Where("is_read = ?", false)
	}

	var subs []db.ContactSubmission
	if err := query.Order("created_at DESC").Order("id DESC").Find(&subs).Error; err != nil {
		return nil, fmt.Errorf("list contact submissions: %w: %w", content.ErrStore, err)
	}
	return subs, nil
}

// GetSubmission loads one submission.
func (s *ContactService) GetSubmission(ctx context.Context, id uint) (*db.ContactSubmission, error) {
	var sub db.ContactSubmission
	if err := s.db.WithContext(ctx).First(&sub, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, content.ErrNotFound
		}
		return nil, fmt.Errorf("get contact submission: %w: %w", content.ErrStore, err)
	}
	return &sub, nil
}

// UpdateSubmission applies the admin's changes to submission id.
func (s *ContactService) UpdateSubmission(ctx context.Context, id uint, update SubmissionUpdate) (*db.ContactSubmission, error) {
	sub, err := s.GetSubmission(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Status != nil {
		sub.Status = strings.ToLower(strings.TrimSpace(*update.Status))
	}
	if update.IsRead != nil {
		sub.IsRead = *update.IsRead
	}
	if update.IsReplied != nil {
		sub.IsReplied = *update.IsReplied
	}
	if update.AdminNotes != nil {
		sub.AdminNotes = strings.TrimSpace(*update.AdminNotes)
	}
	if err := content.Validate(sub); err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Model(sub).
		Select("status", "is_read", "is_replied", "admin_notes").
		Updates(sub).Error
	if err != nil {
		return nil, fmt.Errorf("update contact submission: %w: %w", content.ErrStore, err)
	}
	return s.GetSubmission(ctx, id)
}

// DeleteSubmission removes submission id.
func (s *ContactService) DeleteSubmission(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&db.ContactSubmission{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete contact submission: %w: %w", content.ErrStore, result.Error)
	}
	if result.RowsAffected == 0 {
		return content.ErrNotFound
	}
	return nil
}

// UnreadCount counts submissions nobody has opened yet.
func (s *ContactService) UnreadCount(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&db.ContactSubmission{}).Where("is_read = ?", false).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count unread submissions: %w: %w", content.ErrStore, err)
	}
	return count, nil
}

// ContactAdminState is everything the contact admin screen shows.
type ContactAdminState struct {
	Infos       []db.ContactInfo       `json:"contactInfos"`
	Submissions []db.ContactSubmission `json:"submissions"`
	UnreadCount int64                  `json:"unreadCount"`
}

// AdminState loads every contact card and submission.
func (s *ContactService) AdminState(ctx context.Context) (ContactAdminState, error) {
	infos, err := s.Infos.List(ctx, content.Query{})
	if err != nil {
		return ContactAdminState{}, err
	}
	subs, err := s.ListSubmissions(ctx, SubmissionFilter{})
	if err != nil {
		return ContactAdminState{}, err
	}
	unread, err := s.UnreadCount(ctx)
	if err != nil {
		return ContactAdminState{}, err
	}
	return ContactAdminState{Infos: infos, Submissions: subs, UnreadCount: unread}, nil
}

// ContactView is the public contact page.
type ContactView struct {
	Infos   []db.ContactInfo
	Primary *db.ContactInfo
	// Fallback texts when no card is active.
	PhoneFallback string
	EmailFallback string
	InfoFallback  string
}

// PublicView returns active contact cards; the first one is the primary card.
func (s *ContactService) PublicView(ctx context.Context) (ContactView, error) {
	infos, err := s.Infos.List(ctx, content.Query{ActiveOnly: true})
	if err != nil {
		return ContactView{}, err
	}
	view := ContactView{
		Infos:         infos,
		PhoneFallback: db.ContactPhoneFallback,
		EmailFallback: db.ContactEmailFallback,
		InfoFallback:  db.ContactInfoFallback,
	}
	if len(infos) > 0 {
		view.Primary = &infos[0]
	}
	return view, nil
}
