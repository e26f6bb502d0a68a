package models

import (
	"time"
)

// ArchivedTransaction is the cold-storage copy of aged wallet transactions.
type ArchivedTransaction struct {
	ID            int          `gorm:"primaryKey;autoIncrement" json:"id"`
	StaffID       string       `gorm:"column:staff_id;size:40;not null;index" json:"staff_id"`
	StaffName     string       `gorm:"column:staff_name;size:255;not null" json:"staff_name"`
	TransactionNo string       `gorm:"column:transaction_no;size:255;not null;index" json:"transaction_no"`
	Amount        float64      `gorm:"column:amount;type:decimal(20,2);not null" json:"amount"`
	Direction     string       `gorm:"column:direction;size:10;not null" json:"direction"`
	Bucket        WalletBucket `gorm:"column:bucket;size:50;not null" json:"bucket"`
	Description   string       `gorm:"column:description;type:text" json:"description"`
	Balance       float64      `gorm:"column:balance;type:decimal(20,2);default:0.00" json:"balance"`
	CreatedAt     time.Time    `gorm:"column:created_at" json:"created_at"`
	UpdatedAt     time.Time    `gorm:"column:updated_at" json:"updated_at"`
}

func (ArchivedTransaction) TableName() string {
	return "archived_transactions"
}
