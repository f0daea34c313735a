package service

import (
	"context"
	"errors"
	"testing"

	"github.com/madrasa/internal/content"
	"github.com/madrasa/internal/db"
	"github.com/rs/zerolog"
)

type recordingNotifier struct {
	subs []db.ContactSubmission
}

func (n *recordingNotifier) ContactSubmitted(_ context.Context, sub db.ContactSubmission) {
	n.subs = append(n.subs, sub)
}

func validContact() ContactInput {
	return ContactInput{
		FirstName: "Amina",
		LastName:  "Begum",
		Email:     " Amina@Example.COM ",
		Subject:   "Admission",
		Message:   "When does admission open?",
	}
}

func TestContactService_SubmitValid(t *testing.T) {
	gdb := setupServiceTestDB(t, "contact-valid")
	notifier := &recordingNotifier{}
	svc := NewContactService(gdb, nil, notifier, zerolog.Nop())

	sub, err := svc.Submit(bg, validContact())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if sub.Status != db.StatusNew || sub.IsRead || sub.IsReplied {
		t.Fatalf("expected new unread unreplied submission, got %+v", sub)
	}
	if sub.Email != "amina@example.com" {
		t.Fatalf("expected normalized email, got %q", sub.Email)
	}
	if sub.InquiryType != "general" || sub.Priority != db.PriorityNormal {
		t.Fatalf("expected defaults, got %q/%q", sub.InquiryType, sub.Priority)
	}
	if sub.Reference == "" {
		t.Fatalf("expected a reference")
	}
	if len(notifier.subs) != 1 {
		t.Fatalf("expected one notification, got %d", len(notifier.subs))
	}

	var count int64
	gdb.Model(&db.ContactSubmission{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected one stored submission, got %d", count)
	}
}

func TestContactService_SubmitInvalidStoresNothing(t *testing.T) {
	gdb := setupServiceTestDB(t, "contact-invalid")
	notifier := &recordingNotifier{}
	svc := NewContactService(gdb, nil, notifier, zerolog.Nop())

	cases := map[string]func(*ContactInput){
		"bad email":    func(in *ContactInput) { in.Email = "not-an-email" },
		"email space":  func(in *ContactInput) { in.Email = "a b@c.d" },
		"missing name": func(in *ContactInput) { in.FirstName = "  " },
		"no message":   func(in *ContactInput) { in.Message = "" },
		"bad priority": func(in *ContactInput) { in.Priority = "asap" },
	}
	for name, mutate := range cases {
		input := validContact()
		mutate(&input)
		if _, err := svc.Submit(bg, input); !errors.Is(err, content.ErrValidation) {
			t.Fatalf("%s: expected validation error, got %v", name, err)
		}
	}

	var count int64
	gdb.Model(&db.ContactSubmission{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no stored submission, got %d", count)
	}
	if len(notifier.subs) != 0 {
		t.Fatalf("invalid submissions must not notify")
	}
}

func TestContactService_AdminWorkflow(t *testing.T) {
	gdb := setupServiceTestDB(t, "contact-admin")
	svc := NewContactService(gdb, nil, nil, zerolog.Nop())

	first, err := svc.Submit(bg, validContact())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	second, err := svc.Submit(bg, validContact())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	subs, err := svc.ListSubmissions(bg, SubmissionFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(subs) != 2 || subs[0].ID != second.ID {
		t.Fatalf("expected newest first, got %+v", subs)
	}

	status := db.StatusResolved
	read := true
	notes := " called back "
	updated, err := svc.UpdateSubmission(bg, first.ID, SubmissionUpdate{Status: &status, IsRead: &read, AdminNotes: &notes})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != db.StatusResolved || !updated.IsRead || updated.AdminNotes != "called back" {
		t.Fatalf("unexpected update result: %+v", updated)
	}
	if updated.Subject != first.Subject {
		t.Fatalf("visitor fields must be kept")
	}

	bogus := "archived"
	if _, err := svc.UpdateSubmission(bg, first.ID, SubmissionUpdate{Status: &bogus}); !errors.Is(err, content.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	unread, err := svc.UnreadCount(bg)
	if err != nil || unread != 1 {
		t.Fatalf("expected 1 unread, got %d (%v)", unread, err)
	}

	resolved, err := svc.ListSubmissions(bg, SubmissionFilter{Status: db.StatusResolved})
	if err != nil || len(resolved) != 1 {
		t.Fatalf("expected 1 resolved submission, got %d (%v)", len(resolved), err)
	}

	if err := svc.DeleteSubmission(bg, first.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.DeleteSubmission(bg, first.ID); !errors.Is(err, content.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestContactService_InfoDefaultsAndPublicView(t *testing.T) {
	gdb := setupServiceTestDB(t, "contact-info")
	svc := NewContactService(gdb, nil, nil, zerolog.Nop())

	view, err := svc.PublicView(bg)
	if err != nil {
		t.Fatalf("public view: %v", err)
	}
	if view.Primary != nil || view.PhoneFallback != db.ContactPhoneFallback {
		t.Fatalf("expected fallback view, got %+v", view)
	}

	info := db.ContactInfo{
		Ordering:     db.Ordering{IsActive: true},
		Title:        "Main Campus",
		Address:      "12 Road",
		City:         "Dhaka",
		Phone:        "+880 1700",
		Email:        "office@madrasa.edu",
		WorkingHours: "Sat-Thu 8-4",
	}
	if err := svc.Infos.Create(bg, &info); err != nil {
		t.Fatalf("create info: %v", err)
	}
	if info.Country != db.DefaultContactCountry {
		t.Fatalf("expected default country, got %q", info.Country)
	}

	view, err = svc.PublicView(bg)
	if err != nil {
		t.Fatalf("public view: %v", err)
	}
	if view.Primary == nil || view.Primary.Title != "Main Campus" {
		t.Fatalf("expected primary card, got %+v", view.Primary)
	}
}
