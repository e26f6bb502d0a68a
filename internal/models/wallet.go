package models

import (
	"fmt"
	"time"
)

// WalletBucket is the closed set of wallet compartments. Bucket names double
// as the JSON keys the dashboards send back, so they are part of the API.
type WalletBucket string

const (
	BucketMain              WalletBucket = "mainBalance"
	BucketStitching         WalletBucket = "stitchingWallet"
	BucketWork              WalletBucket = "workWallet"
	BucketWithdrawal        WalletBucket = "withdrawalWallet"
	BucketPendingWithdrawal WalletBucket = "pendingWithdrawal"
	BucketPerformance       WalletBucket = "performanceWallet"
	BucketUpline            WalletBucket = "uplineIncome"
	BucketDownline          WalletBucket = "downlineIncome"
	BucketInvestment        WalletBucket = "investmentWallet"
	BucketROI               WalletBucket = "roiIncome"
)

var bucketColumns = map[WalletBucket]string{
	BucketMain:              "main_balance",
	BucketStitching:         "stitching_wallet",
	BucketWork:              "work_wallet",
	BucketWithdrawal:        "withdrawal_wallet",
	BucketPendingWithdrawal: "pending_withdrawal",
	BucketPerformance:       "performance_wallet",
	BucketUpline:            "upline_income",
	BucketDownline:          "downline_income",
	BucketInvestment:        "investment_wallet",
	BucketROI:               "roi_income",
}

// Column maps a bucket to its wallets table column. Unknown names are
// rejected rather than defaulted.
func (b WalletBucket) Column() (string, error) {
	col, ok := bucketColumns[b]
	if !ok {
		return "", fmt.Errorf("unknown wallet bucket %q", b)
	}
	return col, nil
}

type Wallet struct {
	ID                int       `gorm:"primaryKey;autoIncrement" json:"id"`
	StaffID           string    `gorm:"column:staff_id;size:40;not null;uniqueIndex" json:"staff_id"`
	MainBalance       float64   `gorm:"column:main_balance;type:decimal(20,2);default:0.00" json:"mainBalance"`
	StitchingWallet   float64   `gorm:"column:stitching_wallet;type:decimal(20,2);default:0.00" json:"stitchingWallet"`
	WorkWallet        float64   `gorm:"column:work_wallet;type:decimal(20,2);default:0.00" json:"workWallet"`
	WithdrawalWallet  float64   `gorm:"column:withdrawal_wallet;type:decimal(20,2);default:0.00" json:"withdrawalWallet"`
	PendingWithdrawal float64   `gorm:"column:pending_withdrawal;type:decimal(20,2);default:0.00" json:"pendingWithdrawal"`
	PerformanceWallet float64   `gorm:"column:performance_wallet;type:decimal(20,2);default:0.00" json:"performanceWallet"`
	UplineIncome      float64   `gorm:"column:upline_income;type:decimal(20,2);default:0.00" json:"uplineIncome"`
	DownlineIncome    float64   `gorm:"column:downline_income;type:decimal(20,2);default:0.00" json:"downlineIncome"`
	InvestmentWallet  float64   `gorm:"column:investment_wallet;type:decimal(20,2);default:0.00" json:"investmentWallet"`
	RoiIncome         float64   `gorm:"column:roi_income;type:decimal(20,2);default:0.00" json:"roiIncome"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Wallet) TableName() string {
	return "wallets"
}

// Balance reads one bucket off an in-memory wallet row.
func (w *Wallet) Balance(b WalletBucket) (float64, error) {
	switch b {
	case BucketMain:
		return w.MainBalance, nil
	case BucketStitching:
		return w.StitchingWallet, nil
	case BucketWork:
		return w.WorkWallet, nil
	case BucketWithdrawal:
		return w.WithdrawalWallet, nil
	case BucketPendingWithdrawal:
		return w.PendingWithdrawal, nil
	case BucketPerformance:
		return w.PerformanceWallet, nil
	case BucketUpline:
		return w.UplineIncome, nil
	case BucketDownline:
		return w.DownlineIncome, nil
	case BucketInvestment:
		return w.InvestmentWallet, nil
	case BucketROI:
		return w.RoiIncome, nil
	}
	return 0, fmt.Errorf("unknown wallet bucket %q", b)
}
