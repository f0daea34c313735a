package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/madrasa/internal/content"
	"github.com/madrasa/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SiteSettings 描述后台可配置的站点信息。
type SiteSettings struct {
	SiteName   string `json:"siteName"`
	Tagline    string `json:"tagline"`
	LogoURL    string `json:"logoUrl"`
	FooterText string `json:"footerText"`
}

// SiteSettingsInput 用于更新站点设置。
type SiteSettingsInput struct {
	SiteName   string `json:"siteName"`
	Tagline    string `json:"tagline"`
	LogoURL    string `json:"logoUrl" validate:"omitempty,max=500"`
	FooterText string `json:"footerText" validate:"max=500"`
}

// SiteService 提供站点设置的读取与更新能力。
type SiteService struct {
	db          *gorm.DB
	invalidator content.Invalidator
}

// NewSiteService 构造 SiteService。
func NewSiteService(gdb *gorm.DB, inv content.Invalidator) *SiteService {
	if inv == nil {
		inv = content.NopInvalidator
	}
	return &SiteService{db: gdb, invalidator: inv}
}

var settingKeys = []string{
	db.SettingKeySiteName,
	db.SettingKeyTagline,
	db.SettingKeyLogoURL,
	db.SettingKeyFooterText,
}

// GetSettings 读取站点设置，如未设置将返回默认值。
func (s *SiteService) GetSettings(ctx context.Context) (SiteSettings, error) {
	result := SiteSettings{SiteName: db.DefaultSiteName}

	var records []db.SiteSetting
	if err := s.db.WithContext(ctx).Where("key IN ?", settingKeys).Find(&records).Error; err != nil {
		return result, fmt.Errorf("load site settings: %w: %w", content.ErrStore, err)
	}

	for _, record := range records {
		switch record.Key {
		case db.SettingKeySiteName:
			if strings.TrimSpace(record.Value) != "" {
				result.SiteName = record.Value
			}
		case db.SettingKeyTagline:
			result.Tagline = record.Value
		case db.SettingKeyLogoURL:
			result.LogoURL = record.Value
		case db.SettingKeyFooterText:
			result.FooterText = record.Value
		}
	}

	return result, nil
}

// UpdateSettings 保存站点设置，未填写站点名称时回退默认值。
func (s *SiteService) UpdateSettings(ctx context.Context, input SiteSettingsInput) (SiteSettings, error) {
	input = trimmed(input)
	if err := content.Validate(&input); err != nil {
		return SiteSettings{}, err
	}

	sanitized := SiteSettings(input)
	if sanitized.SiteName == "" {
		sanitized.SiteName = db.DefaultSiteName
	}

	values := map[string]string{
		db.SettingKeySiteName:   sanitized.SiteName,
		db.SettingKeyTagline:    sanitized.Tagline,
		db.SettingKeyLogoURL:    sanitized.LogoURL,
		db.SettingKeyFooterText: sanitized.FooterText,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, key := range settingKeys {
			if err := upsertSetting(tx, key, values[key]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return SiteSettings{}, fmt.Errorf("update site settings: %w: %w", content.ErrStore, err)
	}

	// 站点名称出现在每个公共页面上
	s.invalidator.Invalidate(content.AllPaths)
	return sanitized, nil
}

func upsertSetting(tx *gorm.DB, key, value string) error {
	setting := db.SiteSetting{Key: key, Value: value}
	if err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"value":      value,
			"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(&setting).Error; err != nil {
		return fmt.Errorf("upsert setting %s: %w", key, err)
	}
	return nil
}
