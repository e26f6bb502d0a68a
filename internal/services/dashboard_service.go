package services

import (
	"gorm.io/gorm"

	"tailor-service/internal/models"
)

// DashboardService aggregates the numbers the admin landing page shows.
type DashboardService struct {
	DB *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{DB: db}
}

type Overview struct {
	TotalOrders      int64 `json:"total_orders"`
	OrdersInPipeline int64 `json:"orders_in_pipeline"`
	CompletedOrders  int64 `json:"completed_orders"`
	CancelledOrders  int64 `json:"cancelled_orders"`
	ReturnedOrders   int64 `json:"returned_orders"`

	TotalOrderValue float64 `json:"total_order_value"`

	ActiveStaff int64 `json:"active_staff"`

	PendingDeposits         int64   `json:"pending_deposits"`
	PendingDepositAmount    float64 `json:"pending_deposit_amount"`
	PendingWithdrawals      int64   `json:"pending_withdrawals"`
	PendingWithdrawalAmount float64 `json:"pending_withdrawal_amount"`

	TotalStitchingBalance float64 `json:"total_stitching_balance"`
	TotalWorkIncome       float64 `json:"total_work_income"`
}

func (s *DashboardService) GetOverview() (*Overview, error) {
	overview := &Overview{}

	orders := func(db *gorm.DB) *gorm.DB { return db.Model(&models.Order{}) }

	if err := orders(s.DB).Count(&overview.TotalOrders).Error; err != nil {
		return nil, err
	}
	if err := orders(s.DB).
		Where("status NOT IN ?", models.StatusesIn(models.ClassTerminal)).
		Count(&overview.OrdersInPipeline).Error; err != nil {
		return nil, err
	}
	if err := orders(s.DB).Where("status = ?", models.StatusCompleted).
		Count(&overview.CompletedOrders).Error; err != nil {
		return nil, err
	}
	if err := orders(s.DB).Where("status = ?", models.StatusCancelled).
		Count(&overview.CancelledOrders).Error; err != nil {
		return nil, err
	}
	if err := orders(s.DB).Where("status = ?", models.StatusReturned).
		Count(&overview.ReturnedOrders).Error; err != nil {
		return nil, err
	}

	if err := orders(s.DB).
		Where("status != ?", models.StatusCancelled).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&overview.TotalOrderValue).Error; err != nil {
		return nil, err
	}

	if err := s.DB.Model(&models.StaffProfile{}).
		Where("is_active = ?", true).
		Count(&overview.ActiveStaff).Error; err != nil {
		return nil, err
	}

	pending := func(requestType string) *gorm.DB {
		return s.DB.Model(&models.PaymentRequest{}).
			Where("status = ? AND type = ?", models.RequestPending, requestType)
	}
	if err := pending(models.RequestTypeDeposit).Count(&overview.PendingDeposits).Error; err != nil {
		return nil, err
	}
	if err := pending(models.RequestTypeDeposit).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&overview.PendingDepositAmount).Error; err != nil {
		return nil, err
	}
	if err := pending(models.RequestTypeWithdrawal).Count(&overview.PendingWithdrawals).Error; err != nil {
		return nil, err
	}
	if err := pending(models.RequestTypeWithdrawal).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&overview.PendingWithdrawalAmount).Error; err != nil {
		return nil, err
	}

	if err := s.DB.Model(&models.Wallet{}).
		Select("COALESCE(SUM(stitching_wallet), 0)").
		Scan(&overview.TotalStitchingBalance).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Transaction{}).
		Where("bucket = ? AND direction = ?", models.BucketWork, models.DirectionCredit).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&overview.TotalWorkIncome).Error; err != nil {
		return nil, err
	}

	overview.TotalOrderValue = round2(overview.TotalOrderValue)
	overview.PendingDepositAmount = round2(overview.PendingDepositAmount)
	overview.PendingWithdrawalAmount = round2(overview.PendingWithdrawalAmount)
	overview.TotalStitchingBalance = round2(overview.TotalStitchingBalance)
	overview.TotalWorkIncome = round2(overview.TotalWorkIncome)

	return overview, nil
}
