package db

import "time"

// Model is the surrogate key and timestamps shared by every content table.
// Rows are hard-deleted, so unlike gorm.Model there is no DeletedAt column.
type Model struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// GetID returns the primary key.
func (m Model) GetID() uint {
	return m.ID
}

// SetID overwrites the primary key.
func (m *Model) SetID(id uint) {
	m.ID = id
}

// Ordering carries the manual sort key and visibility flag of a collection row.
// DisplayOrder is not unique; equal values keep insertion order.
type Ordering struct {
	DisplayOrder int  `gorm:"not null;default:0;index" json:"displayOrder"`
	IsActive     bool `gorm:"not null;index" json:"isActive"`
}

// Order returns the display order.
func (o Ordering) Order() int {
	return o.DisplayOrder
}

// Visible reports whether the row is shown on public pages.
func (o Ordering) Visible() bool {
	return o.IsActive
}

// SetActive sets the visibility flag.
func (o *Ordering) SetActive(active bool) {
	o.IsActive = active
}
