package content

import (
	"context"
	"errors"
	"reflect"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SingletonID is the fixed primary key of every singleton page record.
const SingletonID uint = 1

// SingletonConfig describes one singleton page table.
type SingletonConfig[T any] struct {
	Name string
	// Paths are invalidated after every save.
	Paths []string
	// Defaults returns the named default record. It backs both creation and fallback.
	Defaults    func() T
	Invalidator Invalidator
}

// Singleton is the repository of a page record that exists at most once.
type Singleton[T any, PT interface {
	*T
	SetID(id uint)
}] struct {
	db       *gorm.DB
	cfg      SingletonConfig[T]
	validate *Validator
}

// NewSingleton builds a repository over gdb.
func NewSingleton[T any, PT interface {
	*T
	SetID(id uint)
}](gdb *gorm.DB, cfg SingletonConfig[T]) *Singleton[T, PT] {
	cfg.Invalidator = orNop(cfg.Invalidator)
	if cfg.Defaults == nil {
		cfg.Defaults = func() T {
			var zero T
			return zero
		}
	}
	return &Singleton[T, PT]{db: gdb, cfg: cfg, validate: defaultValidator}
}

// Get loads the stored record or returns ErrNotFound.
func (s *Singleton[T, PT]) Get(ctx context.Context) (*T, error) {
	var record T
	if err := s.db.WithContext(ctx).Where("id = ?", SingletonID).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, storeErr("get", s.cfg.Name, err)
	}
	return &record, nil
}

// GetOrDefault returns the stored record, or the default record when none exists.
// stored reports which one was returned.
func (s *Singleton[T, PT]) GetOrDefault(ctx context.Context) (record T, stored bool, err error) {
	found, err := s.Get(ctx)
	if err == nil {
		return *found, true, nil
	}
	if errors.Is(err, ErrNotFound) {
		return s.cfg.Defaults(), false, nil
	}
	var zero T
	return zero, false, err
}

// Upsert stores input at SingletonID in one INSERT ... ON CONFLICT statement.
// When no record exists yet, empty text fields are filled from the defaults
// before validation; otherwise every writable field is replaced as given.
func (s *Singleton[T, PT]) Upsert(ctx context.Context, input T) (*T, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(new(T)).Where("id = ?", SingletonID).Count(&existing).Error; err != nil {
			return storeErr("get", s.cfg.Name, err)
		}
		if existing == 0 {
			FillDefaults(&input, s.cfg.Defaults())
		}
		PT(&input).SetID(SingletonID)
		if err := s.validate.Struct(&input); err != nil {
			return err
		}
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Create(PT(&input)).Error
		if err != nil {
			return storeErr("upsert", s.cfg.Name, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(s.cfg.Paths) > 0 {
		s.cfg.Invalidator.Invalidate(s.cfg.Paths...)
	}
	return s.Get(ctx)
}

// FillDefaults copies every non-empty string field of defaults into the
// matching empty field of dst. Embedded structs are walked.
func FillDefaults[T any](dst *T, defaults T) {
	fillStrings(reflect.ValueOf(dst).Elem(), reflect.ValueOf(defaults))
}

func fillStrings(dst, src reflect.Value) {
	if dst.Kind() != reflect.Struct {
		return
	}
	for i := 0; i < dst.NumField(); i++ {
		field := dst.Type().Field(i)
		if !field.IsExported() {
			continue
		}
		d, v := dst.Field(i), src.Field(i)
		switch {
		case field.Anonymous && d.Kind() == reflect.Struct:
			fillStrings(d, v)
		case d.Kind() == reflect.String && d.String() == "" && d.CanSet():
			d.SetString(v.String())
		}
	}
}
