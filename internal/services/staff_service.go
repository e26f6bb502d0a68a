package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tailor-service/internal/models"
	"tailor-service/pkg/common"
)

// StaffService manages staff profiles and the referral network they form.
type StaffService struct {
	DB *gorm.DB
}

func NewStaffService(db *gorm.DB) *StaffService {
	return &StaffService{DB: db}
}

type CreateStaffRequest struct {
	Name         string      `json:"name" binding:"required"`
	Role         models.Role `json:"role" binding:"required"`
	Mobile       string      `json:"mobile" binding:"required"`
	Email        string      `json:"email"`
	Address      string      `json:"address"`
	Password     string      `json:"password" binding:"required"`
	TPassword    string      `json:"t_password"`
	ReferralCode string      `json:"referral_code"` // referrer's code, optional
}

type UpdateStaffRequest struct {
	Name      string `json:"name"`
	Mobile    string `json:"mobile"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	Password  string `json:"password"`
	TPassword string `json:"t_password"`
}

// CreateStaff onboards a staff member, resolving the referrer from their
// referral code and opening an empty wallet in the same transaction.
func (s *StaffService) CreateStaff(req CreateStaffRequest) (*models.StaffProfile, error) {
	if !req.Role.Valid() {
		return nil, errors.New("unknown role: " + string(req.Role))
	}

	referredBy := ""
	if req.ReferralCode != "" {
		var referrer models.StaffProfile
		err := s.DB.Where("referral_code = ?", req.ReferralCode).First(&referrer).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errors.New("referral code does not match any staff")
			}
			return nil, err
		}
		referredBy = referrer.ID
	}

	code, err := s.uniqueReferralCode()
	if err != nil {
		return nil, err
	}

	staff := &models.StaffProfile{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Role:         req.Role,
		Mobile:       req.Mobile,
		Email:        req.Email,
		Address:      req.Address,
		Password:     req.Password,
		TPassword:    req.TPassword,
		ReferralCode: code,
		ReferredBy:   referredBy,
		IsActive:     true,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(staff).Error; err != nil {
			return err
		}
		return tx.Create(&models.Wallet{StaffID: staff.ID}).Error
	})
	if err != nil {
		return nil, err
	}
	return staff, nil
}

func (s *StaffService) uniqueReferralCode() (string, error) {
	for i := 0; i < 5; i++ {
		code := common.GenerateReferralCode()
		var count int64
		if err := s.DB.Model(&models.StaffProfile{}).
			Where("referral_code = ?", code).
			Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return code, nil
		}
	}
	return "", errors.New("could not generate a unique referral code")
}

func (s *StaffService) GetStaff(staffID string) (*models.StaffProfile, error) {
	return findStaff(s.DB, staffID)
}

// Login checks mobile and password against active profiles.
func (s *StaffService) Login(mobile, password string) (*models.StaffProfile, error) {
	var staff models.StaffProfile
	err := s.DB.Where("mobile = ? AND is_active = ?", mobile, true).First(&staff).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if staff.Password != password {
		return nil, ErrInvalidCredential
	}
	return &staff, nil
}

func (s *StaffService) UpdateStaff(staffID string, req UpdateStaffRequest) (*models.StaffProfile, error) {
	staff, err := findStaff(s.DB, staffID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Mobile != "" {
		updates["mobile"] = req.Mobile
	}
	if req.Email != "" {
		updates["email"] = req.Email
	}
	if req.Address != "" {
		updates["address"] = req.Address
	}
	if req.Password != "" {
		updates["password"] = req.Password
	}
	if req.TPassword != "" {
		updates["t_password"] = req.TPassword
	}
	if len(updates) == 0 {
		return staff, nil
	}

	if err := s.DB.Model(staff).Updates(updates).Error; err != nil {
		return nil, err
	}
	return staff, nil
}

// DeactivateStaff soft-disables a profile. The wallet and its history stay
// intact; the member just stops receiving handovers and logins.
func (s *StaffService) DeactivateStaff(staffID string) error {
	return s.setActive(staffID, false)
}

func (s *StaffService) ReactivateStaff(staffID string) error {
	return s.setActive(staffID, true)
}

func (s *StaffService) setActive(staffID string, active bool) error {
	staff, err := findStaff(s.DB, staffID)
	if err != nil {
		return err
	}
	return s.DB.Model(staff).UpdateColumn("is_active", active).Error
}

// ListStaff returns profiles paginated, optionally filtered by role.
func (s *StaffService) ListStaff(role models.Role, page, limit int) (common.PaginationResult, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	query := s.DB.Model(&models.StaffProfile{})
	if role != "" {
		query = query.Where("role = ?", role)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return common.PaginationResult{}, err
	}

	var staff []models.StaffProfile
	if err := query.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&staff).Error; err != nil {
		return common.PaginationResult{}, err
	}

	return common.PaginateResponse(staff, total, page, limit, "Staff fetched"), nil
}

// DirectDownlines lists the members a staff member referred directly.
func (s *StaffService) DirectDownlines(staffID string) ([]models.StaffProfile, error) {
	var downlines []models.StaffProfile
	err := s.DB.Where("referred_by = ?", staffID).
		Order("created_at ASC").
		Find(&downlines).Error
	if err != nil {
		return nil, err
	}
	return downlines, nil
}

// ActiveStaffByRole lists active members of one role, for handover target
// pickers.
func (s *StaffService) ActiveStaffByRole(role models.Role) ([]models.StaffProfile, error) {
	var staff []models.StaffProfile
	err := s.DB.Where("role = ? AND is_active = ?", role, true).
		Order("name ASC").
		Find(&staff).Error
	if err != nil {
		return nil, err
	}
	return staff, nil
}
