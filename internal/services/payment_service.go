package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tailor-service/internal/models"
	"tailor-service/pkg/common"
)

// PaymentService brokers deposit and withdrawal requests. Money never moves
// when a request is filed; it moves exactly once, when an admin resolves it.
type PaymentService struct {
	DB *gorm.DB
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{DB: db}
}

// RecordDeposit files a deposit request. Approved deposits land in the
// stitching wallet.
func (s *PaymentService) RecordDeposit(staffID string, amount float64, mode, utr string) (*models.PaymentRequest, error) {
	staff, err := findStaff(s.DB, staffID)
	if err != nil {
		return nil, err
	}
	amount = round2(amount)
	if amount <= 0 {
		return nil, fmt.Errorf("deposit amount must be positive, got %.2f", amount)
	}

	req := &models.PaymentRequest{
		ID:        uuid.NewString(),
		StaffID:   staff.ID,
		StaffName: staff.Name,
		StaffRole: staff.Role,
		Type:      models.RequestTypeDeposit,
		Amount:    amount,
		Bucket:    models.BucketStitching,
		Mode:      mode,
		Utr:       utr,
		Status:    models.RequestPending,
	}
	if err := s.DB.Create(req).Error; err != nil {
		return nil, err
	}
	return req, nil
}

// RecordWithdrawal files a withdrawal against one bucket. The transaction
// password guards it, and the bucket must cover the amount when filing;
// the balance is checked again at approval, since requests can race.
func (s *PaymentService) RecordWithdrawal(staffID string, bucket models.WalletBucket, amount float64, tPassword string) (*models.PaymentRequest, error) {
	staff, err := findStaff(s.DB, staffID)
	if err != nil {
		return nil, err
	}
	if staff.TPassword == "" || staff.TPassword != tPassword {
		return nil, ErrInvalidCredential
	}
	if _, err := bucket.Column(); err != nil {
		return nil, ErrUnknownBucket
	}
	amount = round2(amount)
	if amount <= 0 {
		return nil, fmt.Errorf("withdrawal amount must be positive, got %.2f", amount)
	}

	wallet, err := findWallet(s.DB, staff.ID)
	if err != nil {
		return nil, err
	}
	balance, err := wallet.Balance(bucket)
	if err != nil {
		return nil, ErrUnknownBucket
	}
	if balance < amount {
		return nil, ErrInsufficientFunds
	}

	req := &models.PaymentRequest{
		ID:        uuid.NewString(),
		StaffID:   staff.ID,
		StaffName: staff.Name,
		StaffRole: staff.Role,
		Type:      models.RequestTypeWithdrawal,
		Amount:    amount,
		Bucket:    bucket,
		Status:    models.RequestPending,
	}
	if err := s.DB.Create(req).Error; err != nil {
		return nil, err
	}
	return req, nil
}

// ListRequests is the admin queue, paginated and filterable by status and
// type.
func (s *PaymentService) ListRequests(status, requestType string, page, limit int) (common.PaginationResult, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	query := s.DB.Model(&models.PaymentRequest{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if requestType != "" {
		query = query.Where("type = ?", requestType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return common.PaginationResult{}, err
	}

	var requests []models.PaymentRequest
	if err := query.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&requests).Error; err != nil {
		return common.PaginationResult{}, err
	}

	return common.PaginateResponse(requests, total, page, limit, "Payment requests fetched"), nil
}

// ListRequestsFor returns one member's own requests, newest first.
func (s *PaymentService) ListRequestsFor(staffID string) ([]models.PaymentRequest, error) {
	var requests []models.PaymentRequest
	err := s.DB.Where("staff_id = ?", staffID).
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

// Resolve approves or rejects a pending request. The status flip is
// optimistic (UPDATE ... WHERE status = PENDING), so two admins racing on
// the same request resolve it exactly once; the loser gets
// ErrAlreadyResolved. The ledger entry rides in the same transaction, so an
// approval that cannot be funded rolls back to pending.
func (s *PaymentService) Resolve(requestID, adminID string, approve bool) (*models.PaymentRequest, error) {
	admin, err := findStaff(s.DB, adminID)
	if err != nil {
		return nil, err
	}
	if admin.Role != models.RoleAdmin {
		return nil, ErrNotAuthorized
	}

	var req models.PaymentRequest
	if err := s.DB.Where("id = ?", requestID).First(&req).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if req.Status != models.RequestPending {
		return nil, ErrAlreadyResolved
	}

	newStatus := models.RequestApproved
	if !approve {
		newStatus = models.RequestRejected
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.PaymentRequest{}).
			Where("id = ? AND status = ?", requestID, models.RequestPending).
			Updates(map[string]interface{}{
				"status":      newStatus,
				"resolved_by": admin.ID,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrAlreadyResolved
		}
		if !approve {
			return nil
		}

		staff, err := findStaff(tx, req.StaffID)
		if err != nil {
			return err
		}
		switch req.Type {
		case models.RequestTypeDeposit:
			desc := fmt.Sprintf("Deposit Approved (Ref: %s)", req.Utr)
			_, err = applyCredit(tx, staff, req.Bucket, req.Amount, desc)
		case models.RequestTypeWithdrawal:
			desc := fmt.Sprintf("Withdrawal Approved (%s)", req.ID)
			_, err = applyDebit(tx, staff, req.Bucket, req.Amount, desc)
		default:
			err = fmt.Errorf("unknown request type %q", req.Type)
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	req.Status = newStatus
	req.ResolvedBy = admin.ID
	return &req, nil
}
