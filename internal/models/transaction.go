package models

import (
	"time"
)

const (
	DirectionCredit = "CREDIT"
	DirectionDebit  = "DEBIT"
)

type Transaction struct {
	ID            int          `gorm:"primaryKey;autoIncrement" json:"id"`
	StaffID       string       `gorm:"column:staff_id;size:40;not null;index" json:"staff_id"`
	StaffName     string       `gorm:"column:staff_name;size:255;not null" json:"staff_name"`
	TransactionNo string       `gorm:"column:transaction_no;size:255;not null;index" json:"transaction_no"`
	Amount        float64      `gorm:"column:amount;type:decimal(20,2);not null" json:"amount"`
	Direction     string       `gorm:"column:direction;size:10;not null" json:"direction"` // CREDIT | DEBIT
	Bucket        WalletBucket `gorm:"column:bucket;size:50;not null" json:"bucket"`
	Description   string       `gorm:"column:description;type:text" json:"description"`
	Balance       float64      `gorm:"column:balance;type:decimal(20,2);default:0.00" json:"balance"` // bucket balance after this entry
	CreatedAt     time.Time    `gorm:"column:created_at;autoCreateTime;index" json:"created_at"`
	UpdatedAt     time.Time    `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Transaction) TableName() string {
	return "transactions"
}
