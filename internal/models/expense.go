package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const DefaultCategory = "Uncategorized"

type Expense struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	ProjectID   string    `gorm:"not null;index" json:"projectId"`
	Amount      float64   `gorm:"not null" json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Date        time.Time `gorm:"not null;index" json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// Relationships
	Project Project `gorm:"foreignKey:ProjectID" json:"-"`
}

func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Date.IsZero() {
		e.Date = time.Now()
	}
	return nil
}
