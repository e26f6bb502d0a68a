package models

import (
	"time"
)

const (
	RequestTypeDeposit    = "DEPOSIT"
	RequestTypeWithdrawal = "WITHDRAWAL"

	RequestPending  = "PENDING"
	RequestApproved = "APPROVED"
	RequestRejected = "REJECTED"
)

// PaymentRequest snapshots the requester at creation time; it is resolved by
// an admin exactly once.
type PaymentRequest struct {
	ID         string       `gorm:"primaryKey;size:60" json:"id"`
	StaffID    string       `gorm:"column:staff_id;size:40;not null;index" json:"staff_id"`
	StaffName  string       `gorm:"column:staff_name;size:255;not null" json:"staff_name"`
	StaffRole  Role         `gorm:"column:staff_role;size:50;not null" json:"staff_role"`
	Type       string       `gorm:"column:type;size:20;not null" json:"type"` // DEPOSIT | WITHDRAWAL
	Amount     float64      `gorm:"column:amount;type:decimal(20,2);not null" json:"amount"`
	Bucket     WalletBucket `gorm:"column:bucket;size:50;not null" json:"bucket"`
	Mode       string       `gorm:"column:mode;size:30" json:"mode"`
	Utr        string       `gorm:"column:utr;size:100" json:"utr"`
	Status     string       `gorm:"column:status;size:20;not null;default:PENDING;index" json:"status"`
	ResolvedBy string       `gorm:"column:resolved_by;size:40" json:"resolved_by"`
	CreatedAt  time.Time    `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time    `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (PaymentRequest) TableName() string {
	return "payment_requests"
}
