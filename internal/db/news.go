package db

import "time"

// NewsCategory 新闻分类。
type NewsCategory struct {
	Model
	Ordering
	Name        string `gorm:"size:100;not null;uniqueIndex" json:"name" validate:"required,max=100"`
	Description string `gorm:"type:text" json:"description"`
	Color       string `gorm:"size:30;not null;default:blue" json:"color"`
}

// NewsItem 新闻条目，Content 为 markdown。
type NewsItem struct {
	Model
	Ordering
	CategoryID      uint          `gorm:"not null;index" json:"categoryId" validate:"required"`
	Category        *NewsCategory `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"category,omitempty" validate:"-"`
	Title           string        `gorm:"size:255;not null" json:"title" validate:"required,max=255"`
	Slug            string        `gorm:"size:255;not null;uniqueIndex" json:"slug" validate:"omitempty,slug"`
	Excerpt         string        `gorm:"type:text" json:"excerpt"`
	Content         string        `gorm:"type:text;not null" json:"content" validate:"required"`
	FeaturedImage   string        `gorm:"size:500" json:"featuredImage"`
	Author          string        `gorm:"size:150" json:"author"`
	Tags            []string      `gorm:"serializer:json" json:"tags"`
	IsPublished     bool          `gorm:"not null;index" json:"isPublished"`
	IsFeatured      bool          `gorm:"not null;index" json:"isFeatured"`
	PublishedAt     *time.Time    `gorm:"index" json:"publishedAt"`
	MetaTitle       string        `gorm:"size:255" json:"metaTitle"`
	MetaDescription string        `gorm:"type:text" json:"metaDescription"`
}
