package services

import (
	"errors"
	"fmt"
	"math"

	"gorm.io/gorm"

	"tailor-service/internal/models"
	"tailor-service/pkg/common"
)

// LedgerService owns wallet balances and their transaction history. Every
// balance change goes through applyCredit/applyDebit so each wallet mutation
// leaves exactly one transaction row behind.
type LedgerService struct {
	DB *gorm.DB
}

func NewLedgerService(db *gorm.DB) *LedgerService {
	return &LedgerService{DB: db}
}

type WalletStatement struct {
	Wallet       *models.Wallet       `json:"wallet"`
	Transactions []models.Transaction `json:"transactions"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func findStaff(db *gorm.DB, staffID string) (*models.StaffProfile, error) {
	var staff models.StaffProfile
	if err := db.Where("id = ?", staffID).First(&staff).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &staff, nil
}

func findWallet(db *gorm.DB, staffID string) (*models.Wallet, error) {
	var wallet models.Wallet
	if err := db.Where("staff_id = ?", staffID).First(&wallet).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &wallet, nil
}

// applyCredit adds amount to one bucket and records the transaction. It runs
// against whatever db handle it is given, so callers can compose it inside a
// larger gorm transaction.
func applyCredit(db *gorm.DB, staff *models.StaffProfile, bucket models.WalletBucket, amount float64, description string) (*models.Transaction, error) {
	col, err := bucket.Column()
	if err != nil {
		return nil, ErrUnknownBucket
	}
	amount = round2(amount)
	if amount <= 0 {
		return nil, fmt.Errorf("credit amount must be positive, got %.2f", amount)
	}

	wallet, err := findWallet(db, staff.ID)
	if err != nil {
		return nil, err
	}
	before, err := wallet.Balance(bucket)
	if err != nil {
		return nil, ErrUnknownBucket
	}

	if err := db.Model(wallet).UpdateColumn(col, gorm.Expr(col+" + ?", amount)).Error; err != nil {
		return nil, err
	}

	trx := &models.Transaction{
		StaffID:       staff.ID,
		StaffName:     staff.Name,
		TransactionNo: common.GenerateTrxNo(),
		Amount:        amount,
		Direction:     models.DirectionCredit,
		Bucket:        bucket,
		Description:   description,
		Balance:       round2(before + amount),
	}
	if err := db.Create(trx).Error; err != nil {
		return nil, err
	}
	return trx, nil
}

// applyDebit removes amount from one bucket, failing with
// ErrInsufficientFunds when the bucket does not cover it.
func applyDebit(db *gorm.DB, staff *models.StaffProfile, bucket models.WalletBucket, amount float64, description string) (*models.Transaction, error) {
	col, err := bucket.Column()
	if err != nil {
		return nil, ErrUnknownBucket
	}
	amount = round2(amount)
	if amount <= 0 {
		return nil, fmt.Errorf("debit amount must be positive, got %.2f", amount)
	}

	wallet, err := findWallet(db, staff.ID)
	if err != nil {
		return nil, err
	}
	before, err := wallet.Balance(bucket)
	if err != nil {
		return nil, ErrUnknownBucket
	}
	if before < amount {
		return nil, ErrInsufficientFunds
	}

	if err := db.Model(wallet).UpdateColumn(col, gorm.Expr(col+" - ?", amount)).Error; err != nil {
		return nil, err
	}

	trx := &models.Transaction{
		StaffID:       staff.ID,
		StaffName:     staff.Name,
		TransactionNo: common.GenerateTrxNo(),
		Amount:        amount,
		Direction:     models.DirectionDebit,
		Bucket:        bucket,
		Description:   description,
		Balance:       round2(before - amount),
	}
	if err := db.Create(trx).Error; err != nil {
		return nil, err
	}
	return trx, nil
}

// Credit adds amount to a staff member's bucket.
func (s *LedgerService) Credit(staffID string, bucket models.WalletBucket, amount float64, description string) (*models.Transaction, error) {
	staff, err := findStaff(s.DB, staffID)
	if err != nil {
		return nil, err
	}
	var trx *models.Transaction
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		trx, err = applyCredit(tx, staff, bucket, amount, description)
		return err
	})
	if err != nil {
		return nil, err
	}
	return trx, nil
}

// Debit removes amount from a staff member's bucket.
func (s *LedgerService) Debit(staffID string, bucket models.WalletBucket, amount float64, description string) (*models.Transaction, error) {
	staff, err := findStaff(s.DB, staffID)
	if err != nil {
		return nil, err
	}
	var trx *models.Transaction
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		trx, err = applyDebit(tx, staff, bucket, amount, description)
		return err
	})
	if err != nil {
		return nil, err
	}
	return trx, nil
}

// GetWallet returns the wallet snapshot plus recent transactions, newest
// first.
func (s *LedgerService) GetWallet(staffID string) (*WalletStatement, error) {
	wallet, err := findWallet(s.DB, staffID)
	if err != nil {
		return nil, err
	}

	var transactions []models.Transaction
	if err := s.DB.Where("staff_id = ?", staffID).
		Order("created_at DESC, id DESC").
		Limit(50).
		Find(&transactions).Error; err != nil {
		return nil, err
	}

	return &WalletStatement{Wallet: wallet, Transactions: transactions}, nil
}

// ListTransactions returns a staff member's full ledger, paginated newest
// first.
func (s *LedgerService) ListTransactions(staffID string, page, limit int) (common.PaginationResult, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	var total int64
	query := s.DB.Model(&models.Transaction{}).Where("staff_id = ?", staffID)
	if err := query.Count(&total).Error; err != nil {
		return common.PaginationResult{}, err
	}

	var transactions []models.Transaction
	if err := query.
		Order("created_at DESC, id DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&transactions).Error; err != nil {
		return common.PaginationResult{}, err
	}

	return common.PaginateResponse(transactions, total, page, limit, "Transactions fetched"), nil
}
