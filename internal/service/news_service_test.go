package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/madrasa/internal/content"
	"github.com/madrasa/internal/db"
)

func newNewsFixture(t *testing.T, name string) (*NewsService, db.NewsCategory) {
	t.Helper()
	gdb := setupServiceTestDB(t, name)
	svc := NewNewsService(gdb, nil)
	category := db.NewsCategory{Ordering: db.Ordering{IsActive: true}, Name: "Events"}
	if err := svc.Categories.Create(bg, &category); err != nil {
		t.Fatalf("create category: %v", err)
	}
	return svc, category
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Annual Prize Giving 2024": "annual-prize-giving-2024",
		"  --Hello,  World!--  ":   "hello-world",
		"":                         "",
	}
	for in, want := range cases {
		if got := Slugify(in); got != want {
			t.Fatalf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSlugifyTransliterates(t *testing.T) {
	for _, title := range []string{"মাদ্রাসার বার্ষিক অনুষ্ঠান", "حفل التخرج", "Café Über"} {
		got := Slugify(title)
		if got == "" {
			t.Fatalf("Slugify(%q) returned an empty slug", title)
		}
		if err := content.Validate(struct {
			Slug string `json:"slug" validate:"slug"`
		}{got}); err != nil {
			t.Fatalf("Slugify(%q) = %q is not a valid slug: %v", title, got, err)
		}
	}
	if got := Slugify("Café Über"); got != "cafe-uber" {
		t.Fatalf("expected cafe-uber, got %q", got)
	}
}

func TestNewsService_NonLatinTitles(t *testing.T) {
	svc, category := newNewsFixture(t, "news-non-latin")

	bengali := db.NewsItem{CategoryID: category.ID, Title: "মাদ্রাসার বার্ষিক অনুষ্ঠান", Content: "body"}
	if err := svc.Items.Create(bg, &bengali); err != nil {
		t.Fatalf("create bengali item: %v", err)
	}
	if bengali.Slug == "" || bengali.Slug == "news" {
		t.Fatalf("expected a transliterated slug, got %q", bengali.Slug)
	}

	var slugs []string
	for i := 0; i < 2; i++ {
		item := db.NewsItem{CategoryID: category.ID, Title: "!!!", Content: "body"}
		if err := svc.Items.Create(bg, &item); err != nil {
			t.Fatalf("create punctuation item: %v", err)
		}
		slugs = append(slugs, item.Slug)
	}
	if slugs[0] != "news" || slugs[1] != "news-2" {
		t.Fatalf("expected fallback slugs [news news-2], got %v", slugs)
	}
}

func TestNewsService_CreateGeneratesUniqueSlugs(t *testing.T) {
	svc, category := newNewsFixture(t, "news-slug")

	var slugs []string
	for i := 0; i < 3; i++ {
		item := db.NewsItem{CategoryID: category.ID, Title: "Exam Results", Content: "body"}
		if err := svc.Items.Create(bg, &item); err != nil {
			t.Fatalf("create item: %v", err)
		}
		slugs = append(slugs, item.Slug)
	}
	want := []string{"exam-results", "exam-results-2", "exam-results-3"}
	for i := range want {
		if slugs[i] != want[i] {
			t.Fatalf("expected slugs %v, got %v", want, slugs)
		}
	}
}

func TestNewsService_RejectsUnknownCategory(t *testing.T) {
	svc, _ := newNewsFixture(t, "news-category")

	item := db.NewsItem{CategoryID: 999, Title: "Orphan", Content: "body"}
	err := svc.Items.Create(bg, &item)
	if !errors.Is(err, content.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	count, _ := svc.Items.Count(bg, content.Query{})
	if count != 0 {
		t.Fatalf("expected no rows, got %d", count)
	}
}

func TestNewsService_PublishStampsAndClearsPublishedAt(t *testing.T) {
	svc, category := newNewsFixture(t, "news-publish")
	fixed := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	item := db.NewsItem{CategoryID: category.ID, Title: "Open Day", Content: "body"}
	if err := svc.Items.Create(bg, &item); err != nil {
		t.Fatalf("create item: %v", err)
	}
	if item.PublishedAt != nil {
		t.Fatalf("draft must not have publishedAt")
	}

	published, err := svc.TogglePublished(bg, item.ID)
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if !published.IsPublished || published.PublishedAt == nil || !published.PublishedAt.Equal(fixed) {
		t.Fatalf("expected publishedAt %v, got %+v", fixed, published.PublishedAt)
	}

	draft, err := svc.SetPublished(bg, item.ID, false)
	if err != nil {
		t.Fatalf("unpublish: %v", err)
	}
	if draft.IsPublished || draft.PublishedAt != nil {
		t.Fatalf("expected publishedAt cleared, got %+v", draft.PublishedAt)
	}
}

func TestNewsService_DeleteCategoryWithItems(t *testing.T) {
	svc, category := newNewsFixture(t, "news-delete")
	item := db.NewsItem{CategoryID: category.ID, Title: "Story", Content: "body"}
	if err := svc.Items.Create(bg, &item); err != nil {
		t.Fatalf("create item: %v", err)
	}

	err := svc.DeleteCategory(bg, category.ID, false)
	var children *content.ChildrenError
	if !errors.As(err, &children) || children.Count != 1 {
		t.Fatalf("expected children error with count 1, got %v", err)
	}

	if err := svc.DeleteCategory(bg, category.ID, true); err != nil {
		t.Fatalf("cascade delete: %v", err)
	}
	if _, err := svc.Items.Get(bg, item.ID); !errors.Is(err, content.ErrNotFound) {
		t.Fatalf("expected item to be gone, got %v", err)
	}
}

func TestNewsService_PublicFeed(t *testing.T) {
	svc, events := newNewsFixture(t, "news-feed")
	notices := db.NewsCategory{Ordering: db.Ordering{IsActive: true}, Name: "Notices"}
	if err := svc.Categories.Create(bg, &notices); err != nil {
		t.Fatalf("create category: %v", err)
	}

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 14; i++ {
		at := base.Add(time.Duration(i) * time.Hour)
		svc.now = func() time.Time { return at }
		item := db.NewsItem{
			Ordering:    db.Ordering{IsActive: true},
			CategoryID:  events.ID,
			Title:       fmt.Sprintf("Event %d", i),
			Content:     "body",
			IsPublished: true,
			IsFeatured:  i == 0,
		}
		if err := svc.Items.Create(bg, &item); err != nil {
			t.Fatalf("create item: %v", err)
		}
	}
	hidden := []db.NewsItem{
		{Ordering: db.Ordering{IsActive: true}, CategoryID: notices.ID, Title: "Draft", Content: "body"},
		{Ordering: db.Ordering{IsActive: false}, CategoryID: notices.ID, Title: "Inactive", Content: "body", IsPublished: true},
	}
	for i := range hidden {
		if err := svc.Items.Create(bg, &hidden[i]); err != nil {
			t.Fatalf("create hidden item: %v", err)
		}
	}

	feed, err := svc.PublicFeed(bg, NewsQuery{Page: 1})
	if err != nil {
		t.Fatalf("public feed: %v", err)
	}
	if feed.Total != 14 || feed.TotalPages != 2 {
		t.Fatalf("expected 14 items on 2 pages, got %d on %d", feed.Total, feed.TotalPages)
	}
	if len(feed.Items) != NewsPerPage {
		t.Fatalf("expected a full page, got %d", len(feed.Items))
	}
	if feed.Items[0].Title != "Event 0" {
		t.Fatalf("featured item must come first, got %q", feed.Items[0].Title)
	}
	if feed.Items[1].Title != "Event 13" {
		t.Fatalf("expected newest item next, got %q", feed.Items[1].Title)
	}
	if len(feed.Featured) != 1 {
		t.Fatalf("expected 1 featured item, got %d", len(feed.Featured))
	}
	for _, c := range feed.Categories {
		if c.Name == "Notices" && c.ItemCount != 0 {
			t.Fatalf("hidden items must not be counted, got %d", c.ItemCount)
		}
	}

	filtered, err := svc.PublicFeed(bg, NewsQuery{Page: 1, Category: "Notices"})
	if err != nil {
		t.Fatalf("filtered feed: %v", err)
	}
	if filtered.Total != 0 {
		t.Fatalf("expected no public notices, got %d", filtered.Total)
	}
}

func TestNewsService_PublicItem(t *testing.T) {
	svc, category := newNewsFixture(t, "news-item")
	item := db.NewsItem{
		Ordering:    db.Ordering{IsActive: true},
		CategoryID:  category.ID,
		Title:       "Graduation",
		Content:     "# Day\n\nCongratulations",
		IsPublished: true,
	}
	if err := svc.Items.Create(bg, &item); err != nil {
		t.Fatalf("create item: %v", err)
	}

	article, err := svc.PublicItem(bg, "graduation")
	if err != nil {
		t.Fatalf("public item: %v", err)
	}
	if article.Item.Category == nil || article.Item.Category.Name != "Events" {
		t.Fatalf("expected category to be preloaded")
	}
	if article.ContentHTML == "" {
		t.Fatalf("expected rendered content")
	}

	if _, err := svc.PublicItem(bg, "missing"); !errors.Is(err, content.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
