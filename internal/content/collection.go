package content

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RowPtr is the pointer form of a collection row.
type RowPtr[T any] interface {
	*T
	Row
	GetID() uint
	SetID(id uint)
	SetActive(active bool)
}

// CollectionConfig describes one ordered collection table.
type CollectionConfig struct {
	// Name is used in error messages and logs.
	Name string
	// ParentColumn is the foreign key column used by Query.ParentID, if any.
	ParentColumn string
	// Scope narrows every query, e.g. to one academic kind.
	Scope func(*gorm.DB) *gorm.DB
	// Preload lists associations loaded by List and Get.
	Preload []string
	// Paths are invalidated after every mutation.
	Paths       []string
	Invalidator Invalidator
}

// Query selects rows for List and Count.
type Query struct {
	ParentID   *uint
	ActiveOnly bool
	Filter     func(*gorm.DB) *gorm.DB
}

// Hook runs against a row before it is written.
type Hook[T any] func(ctx context.Context, item *T) error

// Collection is the repository of an ordered collection entity.
type Collection[T Row, PT RowPtr[T]] struct {
	db       *gorm.DB
	cfg      CollectionConfig
	validate *Validator
	prepare  Hook[T]
	check    Hook[T]
}

// NewCollection builds a repository over gdb.
func NewCollection[T Row, PT RowPtr[T]](gdb *gorm.DB, cfg CollectionConfig) *Collection[T, PT] {
	cfg.Invalidator = orNop(cfg.Invalidator)
	return &Collection[T, PT]{db: gdb, cfg: cfg, validate: defaultValidator}
}

// WithPrepare sets a hook that normalizes a row before validation.
func (c *Collection[T, PT]) WithPrepare(fn Hook[T]) *Collection[T, PT] {
	c.prepare = fn
	return c
}

// WithCheck sets a hook that runs after validation, e.g. to verify the parent exists.
func (c *Collection[T, PT]) WithCheck(fn Hook[T]) *Collection[T, PT] {
	c.check = fn
	return c
}

// WithTx returns a copy bound to tx. The copy never fires invalidation.
func (c *Collection[T, PT]) WithTx(tx *gorm.DB) *Collection[T, PT] {
	cp := *c
	cp.db = tx
	cp.cfg.Invalidator = NopInvalidator
	return &cp
}

// Name returns the configured collection name.
func (c *Collection[T, PT]) Name() string {
	return c.cfg.Name
}

// Invalidate signals the configured paths.
func (c *Collection[T, PT]) Invalidate() {
	if len(c.cfg.Paths) > 0 {
		c.cfg.Invalidator.Invalidate(c.cfg.Paths...)
	}
}

func (c *Collection[T, PT]) scoped(ctx context.Context) *gorm.DB {
	q := c.db.WithContext(ctx).Model(new(T))
	if c.cfg.Scope != nil {
		q = c.cfg.Scope(q)
	}
	return q
}

func (c *Collection[T, PT]) query(ctx context.Context, q Query) *gorm.DB {
	tx := c.scoped(ctx)
	if q.ParentID != nil && c.cfg.ParentColumn != "" {
		tx = tx.Where(clause.Eq{Column: clause.Column{Name: c.cfg.ParentColumn}, Value: *q.ParentID})
	}
	if q.Filter != nil {
		tx = q.Filter(tx)
	}
	return tx
}

// List returns the rows matching q in presentation order.
func (c *Collection[T, PT]) List(ctx context.Context, q Query) ([]T, error) {
	tx := c.query(ctx, q)
	for _, assoc := range c.cfg.Preload {
		tx = tx.Preload(assoc)
	}

	var rows []T
	if err := tx.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, storeErr("list", c.cfg.Name, err)
	}
	return Present(rows, q.ActiveOnly), nil
}

// Count returns the number of rows matching q. ActiveOnly is honoured.
func (c *Collection[T, PT]) Count(ctx context.Context, q Query) (int64, error) {
	tx := c.query(ctx, q)
	if q.ActiveOnly {
		tx = tx.Where("is_active = ?", true)
	}
	var n int64
	if err := tx.Count(&n).Error; err != nil {
		return 0, storeErr("count", c.cfg.Name, err)
	}
	return n, nil
}

// Get loads one row by id.
func (c *Collection[T, PT]) Get(ctx context.Context, id uint) (*T, error) {
	tx := c.scoped(ctx)
	for _, assoc := range c.cfg.Preload {
		tx = tx.Preload(assoc)
	}
	var item T
	if err := tx.Where("id = ?", id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, storeErr("get", c.cfg.Name, err)
	}
	return &item, nil
}

func (c *Collection[T, PT]) checkInput(ctx context.Context, item *T) error {
	if c.prepare != nil {
		if err := c.prepare(ctx, item); err != nil {
			return err
		}
	}
	if err := c.validate.Struct(item); err != nil {
		return err
	}
	if c.check != nil {
		if err := c.check(ctx, item); err != nil {
			return err
		}
	}
	return nil
}

// Create inserts item. Its id is assigned by the store.
func (c *Collection[T, PT]) Create(ctx context.Context, item *T) error {
	PT(item).SetID(0)
	if err := c.checkInput(ctx, item); err != nil {
		return err
	}
	if err := c.db.WithContext(ctx).Omit(clause.Associations).Create(PT(item)).Error; err != nil {
		return storeErr("create", c.cfg.Name, err)
	}
	c.Invalidate()
	return nil
}

// Update replaces every writable field of row id with item and returns the stored row.
func (c *Collection[T, PT]) Update(ctx context.Context, id uint, item *T) (*T, error) {
	if _, err := c.Get(ctx, id); err != nil {
		return nil, err
	}
	PT(item).SetID(id)
	if err := c.checkInput(ctx, item); err != nil {
		return nil, err
	}
	err := c.db.WithContext(ctx).
		Model(PT(item)).
		Select("*").
		Omit("id", "created_at", clause.Associations).
		Updates(PT(item)).Error
	if err != nil {
		return nil, storeErr("update", c.cfg.Name, err)
	}
	c.Invalidate()
	return c.Get(ctx, id)
}

// Delete removes row id. Unknown ids return ErrNotFound and touch nothing.
func (c *Collection[T, PT]) Delete(ctx context.Context, id uint) error {
	result := c.scoped(ctx).Where("id = ?", id).Delete(new(T))
	if result.Error != nil {
		return storeErr("delete", c.cfg.Name, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	c.Invalidate()
	return nil
}

// DeleteByParent removes every row owned by parentID and returns how many were removed.
func (c *Collection[T, PT]) DeleteByParent(ctx context.Context, parentID uint) (int64, error) {
	if c.cfg.ParentColumn == "" {
		return 0, nil
	}
	result := c.query(ctx, Query{ParentID: &parentID}).Delete(new(T))
	if result.Error != nil {
		return 0, storeErr("delete children of", c.cfg.Name, result.Error)
	}
	if result.RowsAffected > 0 {
		c.Invalidate()
	}
	return result.RowsAffected, nil
}

// SetActive sets the visibility flag of row id.
func (c *Collection[T, PT]) SetActive(ctx context.Context, id uint, active bool) (*T, error) {
	result := c.scoped(ctx).Where("id = ?", id).Update("is_active", active)
	if result.Error != nil {
		return nil, storeErr("set active", c.cfg.Name, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	c.Invalidate()
	return c.Get(ctx, id)
}

// Toggle flips the visibility flag of row id.
func (c *Collection[T, PT]) Toggle(ctx context.Context, id uint) (*T, error) {
	item, err := c.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return c.SetActive(ctx, id, !(*item).Visible())
}

// Reorder 按给定顺序依次赋值 0,1,2...，未包含的条目保持原排序。
// 任一 id 不存在时整体回滚。
func (c *Collection[T, PT]) Reorder(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for index, id := range ids {
			q := tx.Model(new(T))
			if c.cfg.Scope != nil {
				q = c.cfg.Scope(q)
			}
			result := q.Where("id = ?", id).Update("display_order", index)
			if result.Error != nil {
				return storeErr("reorder", c.cfg.Name, result.Error)
			}
			if result.RowsAffected == 0 {
				return ErrNotFound
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	c.Invalidate()
	return nil
}

// NextOrder returns one past the largest display order, for appending rows.
func (c *Collection[T, PT]) NextOrder(ctx context.Context, q Query) (int, error) {
	var maxOrder int
	if err := c.query(ctx, q).Select("COALESCE(MAX(display_order), -1)").Scan(&maxOrder).Error; err != nil {
		return 0, storeErr("resolve order", c.cfg.Name, err)
	}
	return maxOrder + 1, nil
}
