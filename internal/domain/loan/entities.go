package loan

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("loan not found")

type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

type Loan struct {
	ID                uint64    `gorm:"primaryKey;column:id" json:"id"`
	Name              string    `gorm:"size:100" json:"name"`
	Phone             string    `gorm:"size:20" json:"phone"`
	Amount            float64   `gorm:"type:decimal(18,2)" json:"amount"`
	Interest          float64   `gorm:"type:decimal(18,2)" json:"interest"`
	Fees              float64   `gorm:"type:decimal(18,2)" json:"fees"`
	LateFee           float64   `gorm:"type:decimal(18,2);default:0" json:"late_fee"`
	Total             float64   `gorm:"type:decimal(18,2)" json:"total"`
	Status            Status    `gorm:"size:20;default:'pending';index" json:"status"`
	AssignedCollector string    `gorm:"size:50;index" json:"assigned_collector"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Loan) TableName() string { return "loans" }
