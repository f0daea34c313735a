package service

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"regexp"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"github.com/madrasa/internal/content"
	"github.com/madrasa/internal/db"
	"gorm.io/gorm"
)

// NewsPerPage is the public page size.
const NewsPerPage = 12

// FeaturedNewsLimit caps the featured strip.
const FeaturedNewsLimit = 3

// NewsService 维护新闻分类与新闻条目。
type NewsService struct {
	db         *gorm.DB
	Categories *content.Collection[db.NewsCategory, *db.NewsCategory]
	Items      *content.Collection[db.NewsItem, *db.NewsItem]
	now        func() time.Time
}

// NewNewsService 构造 NewsService
func NewNewsService(gdb *gorm.DB, inv content.Invalidator) *NewsService {
	paths := []string{PathNews, PathHome}
	s := &NewsService{db: gdb, now: time.Now}

	s.Categories = content.NewCollection[db.NewsCategory](gdb, content.CollectionConfig{
		Name: "news category", Paths: paths, Invalidator: inv,
	}).WithPrepare(func(_ context.Context, c *db.NewsCategory) error {
		*c = trimmed(*c)
		if c.Color == "" {
			c.Color = db.DefaultNewsCategoryColor
		}
		return nil
	}).WithCheck(s.checkCategoryName)

	s.Items = content.NewCollection[db.NewsItem](gdb, content.CollectionConfig{
		Name:         "news item",
		ParentColumn: "category_id",
		Preload:      []string{"Category"},
		Paths:        paths,
		Invalidator:  inv,
	}).WithPrepare(s.prepareItem).WithCheck(s.checkItem)

	return s
}

func (s *NewsService) checkCategoryName(ctx context.Context, c *db.NewsCategory) error {
	var count int64
	err := s.db.WithContext(ctx).Model(&db.NewsCategory{}).
		Where("name = ? AND id <> ?", c.Name, c.ID).
		Count(&count).Error
	if err != nil {
		return fmt.Errorf("check category name: %w: %w", content.ErrStore, err)
	}
	if count > 0 {
		return content.Invalid("name", "a category with this name already exists")
	}
	return nil
}

func (s *NewsService) prepareItem(ctx context.Context, item *db.NewsItem) error {
	*item = trimmed(*item)
	item.Category = nil
	item.Tags = cleanTags(item.Tags)

	if item.IsPublished {
		if item.PublishedAt == nil {
			now := s.now()
			item.PublishedAt = &now
		}
	} else {
		item.PublishedAt = nil
	}

	if item.Slug == "" {
		base := Slugify(item.Title)
		if base == "" {
			base = fallbackSlug
		}
		unique, err := s.uniqueSlug(ctx, base, item.ID)
		if err != nil {
			return err
		}
		item.Slug = unique
	}
	return nil
}

func (s *NewsService) checkItem(ctx context.Context, item *db.NewsItem) error {
	if _, err := s.Categories.Get(ctx, item.CategoryID); err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return content.Invalid("categoryId", "category does not exist")
		}
		return err
	}
	taken, err := s.slugTaken(ctx, item.Slug, item.ID)
	if err != nil {
		return err
	}
	if taken {
		return content.Invalid("slug", "slug is already used by another news item")
	}
	return nil
}

func (s *NewsService) slugTaken(ctx context.Context, slug string, exceptID uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&db.NewsItem{}).
		Where("slug = ? AND id <> ?", slug, exceptID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check slug: %w: %w", content.ErrStore, err)
	}
	return count > 0, nil
}

// uniqueSlug appends -2, -3, ... to base until no other item uses it.
func (s *NewsService) uniqueSlug(ctx context.Context, base string, exceptID uint) (string, error) {
	candidate := base
	for n := 2; ; n++ {
		taken, err := s.slugTaken(ctx, candidate, exceptID)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, n)
	}
}

const (
	maxSlugLength = 80
	// fallbackSlug 用于无法转写出任何字母数字的标题。
	fallbackSlug = "news"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify transliterates title to ASCII and joins its letters and digits with hyphens.
// Non-Latin titles (Bengali, Arabic, ...) are romanized rather than dropped.
func Slugify(title string) string {
	out := nonSlugChars.ReplaceAllString(slug.Make(title), "-")
	out = strings.Trim(out, "-")
	if len(out) > maxSlugLength {
		out = strings.TrimRight(out[:maxSlugLength], "-")
	}
	return out
}

func cleanTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		key := strings.ToLower(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, tag)
	}
	return out
}

// SetPublished publishes or unpublishes item id.
func (s *NewsService) SetPublished(ctx context.Context, id uint, published bool) (*db.NewsItem, error) {
	item, err := s.Items.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	item.IsPublished = published
	return s.Items.Update(ctx, id, item)
}

// TogglePublished flips the published flag of item id.
func (s *NewsService) TogglePublished(ctx context.Context, id uint) (*db.NewsItem, error) {
	item, err := s.Items.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.SetPublished(ctx, id, !item.IsPublished)
}

// DeleteCategory removes a category. A category that still owns items is only
// removed when cascade is set; otherwise a *content.ChildrenError is returned.
func (s *NewsService) DeleteCategory(ctx context.Context, id uint, cascade bool) error {
	if _, err := s.Categories.Get(ctx, id); err != nil {
		return err
	}
	count, err := s.Items.Count(ctx, content.Query{ParentID: &id})
	if err != nil {
		return err
	}
	if count > 0 && !cascade {
		return &content.ChildrenError{Name: s.Categories.Name(), Count: count}
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.Items.WithTx(tx).DeleteByParent(ctx, id); err != nil {
			return err
		}
		return s.Categories.WithTx(tx).Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	s.Categories.Invalidate()
	return nil
}

// NewsAdminState is everything the news admin screen shows.
type NewsAdminState struct {
	Categories []db.NewsCategory `json:"categories"`
	Items      []db.NewsItem     `json:"items"`
}

// AdminState loads every category and item.
func (s *NewsService) AdminState(ctx context.Context) (NewsAdminState, error) {
	categories, err := s.Categories.List(ctx, content.Query{})
	if err != nil {
		return NewsAdminState{}, err
	}
	items, err := s.Items.List(ctx, content.Query{})
	if err != nil {
		return NewsAdminState{}, err
	}
	return NewsAdminState{Categories: categories, Items: items}, nil
}

// NewsQuery selects a page of the public feed.
type NewsQuery struct {
	Page     int
	Category string
}

// CategoryCount is an active category with its number of visible items.
type CategoryCount struct {
	db.NewsCategory
	ItemCount int64
}

// NewsFeed is one page of the public news list.
type NewsFeed struct {
	Categories []CategoryCount
	Featured   []db.NewsItem
	Items      []db.NewsItem
	Category   string
	Page       int
	TotalPages int
	Total      int64
}

func (s *NewsService) visible(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).Model(&db.NewsItem{}).
		Where("news_items.is_active = ? AND news_items.is_published = ?", true, true)
}

// PublicFeed returns published, active items, featured first and then newest first.
func (s *NewsService) PublicFeed(ctx context.Context, q NewsQuery) (NewsFeed, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	feed := NewsFeed{Category: strings.TrimSpace(q.Category), Page: page}

	categories, err := s.Categories.List(ctx, content.Query{ActiveOnly: true})
	if err != nil {
		return NewsFeed{}, err
	}
	type countRow struct {
		CategoryID uint
		N          int64
	}
	var counts []countRow
	if err := s.visible(ctx).Select("category_id, COUNT(*) AS n").Group("category_id").Scan(&counts).Error; err != nil {
		return NewsFeed{}, fmt.Errorf("count news: %w: %w", content.ErrStore, err)
	}
	byCategory := make(map[uint]int64, len(counts))
	for _, c := range counts {
		byCategory[c.CategoryID] = c.N
	}
	for _, c := range categories {
		feed.Categories = append(feed.Categories, CategoryCount{NewsCategory: c, ItemCount: byCategory[c.ID]})
	}

	listing := s.visible(ctx)
	if feed.Category != "" {
		listing = listing.Where("news_items.category_id IN (?)",
			s.db.Model(&db.NewsCategory{}).Select("id").Where("name = ?", feed.Category))
	}
	if err := listing.Session(&gorm.Session{}).Count(&feed.Total).Error; err != nil {
		return NewsFeed{}, fmt.Errorf("count news: %w: %w", content.ErrStore, err)
	}
	feed.TotalPages = int((feed.Total + NewsPerPage - 1) / NewsPerPage)

	err = listing.Preload("Category").
		Order("news_items.is_featured DESC").
		Order("news_items.published_at DESC").
		Order("news_items.id DESC").
		Offset((page - 1) * NewsPerPage).
		Limit(NewsPerPage).
		Find(&feed.Items).Error
	if err != nil {
		return NewsFeed{}, fmt.Errorf("list news: %w: %w", content.ErrStore, err)
	}

	err = s.visible(ctx).Preload("Category").
		Where("news_items.is_featured = ?", true).
		Order("news_items.published_at DESC").
		Order("news_items.id DESC").
		Limit(FeaturedNewsLimit).
		Find(&feed.Featured).Error
	if err != nil {
		return NewsFeed{}, fmt.Errorf("list featured news: %w: %w", content.ErrStore, err)
	}

	return feed, nil
}

// NewsArticle is one public item with its body rendered.
type NewsArticle struct {
	Item        db.NewsItem
	ContentHTML template.HTML
}

// PublicItem loads a published, active item by slug.
func (s *NewsService) PublicItem(ctx context.Context, slug string) (NewsArticle, error) {
	var item db.NewsItem
	err := s.visible(ctx).Preload("Category").Where("news_items.slug = ?", slug).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NewsArticle{}, content.ErrNotFound
		}
		return NewsArticle{}, fmt.Errorf("get news: %w: %w", content.ErrStore, err)
	}
	return NewsArticle{Item: item, ContentHTML: RenderMarkdown(item.Content)}, nil
}
