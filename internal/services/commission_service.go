package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"tailor-service/internal/models"
)

// CommissionService turns finished stage work into wallet income: the worker
// gets the labor rate, their referral network gets level percentages of it,
// and the booking member gets a role commission when the order completes.
type CommissionService struct {
	DB       *gorm.DB
	Settings *models.IncomeSettings
}

func NewCommissionService(db *gorm.DB, settings *models.IncomeSettings) *CommissionService {
	return &CommissionService{DB: db, Settings: settings}
}

// InlineCommissionDispatcher runs distributions synchronously, for
// deployments without a task queue.
type InlineCommissionDispatcher struct {
	Service *CommissionService
}

func (d *InlineCommissionDispatcher) Dispatch(orderID, staffID string, stage models.Department) error {
	return d.Service.DistributeCommission(orderID, staffID, stage)
}

// laborAmount prices the stage a worker just finished. Delivery pays a flat
// rate per order; every other stage pays per garment.
func (s *CommissionService) laborAmount(order *models.Order, stage models.Department) float64 {
	if stage == models.DeptDelivery {
		return s.Settings.RateFor("Delivery")
	}
	total := 0.0
	for _, item := range order.Items {
		rate := s.Settings.RateFor(fmt.Sprintf("%s %s", item.Type, stage))
		total += rate * float64(item.Quantity)
	}
	return round2(total)
}

// DistributeCommission pays out one finished stage of an order. It is
// idempotent only at the call site: the workflow dispatches it exactly once
// per stage transition.
func (s *CommissionService) DistributeCommission(orderID, staffID string, stage models.Department) error {
	order, err := findOrder(s.DB, orderID)
	if err != nil {
		return err
	}
	worker, err := findStaff(s.DB, staffID)
	if err != nil {
		return err
	}

	amount := s.laborAmount(order, stage)

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if amount > 0 {
			desc := fmt.Sprintf("Work Income: %s %s", stage, order.ID)
			if _, err := applyCredit(tx, worker, models.BucketWork, amount, desc); err != nil {
				return err
			}
			if err := s.payAncestors(tx, worker, amount); err != nil {
				return err
			}
			if err := s.payDescendants(tx, worker, amount); err != nil {
				return err
			}
		}
		if stage == models.DeptDelivery {
			if err := s.payRoleCommission(tx, order); err != nil {
				return err
			}
		}
		return nil
	})
}

// payAncestors walks the referral chain upward. The depth-n ancestor books
// the share as level-n downline income: the worker is a member of their
// downline network, and the "L<n> Downline" tag is what GetNetworkTree sums
// back per level. The walk stops at the configured depth, a missing referrer,
// or a cycle.
func (s *CommissionService) payAncestors(tx *gorm.DB, worker *models.StaffProfile, amount float64) error {
	seen := map[string]bool{worker.ID: true}
	currentID := worker.ReferredBy

	for level := 1; level <= len(s.Settings.DownlineLevels); level++ {
		if currentID == "" || seen[currentID] {
			return nil
		}
		ancestor, err := findStaff(tx, currentID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return nil
			}
			return err
		}
		seen[ancestor.ID] = true

		share := round2(amount * s.Settings.DownlineLevels[level-1])
		if share > 0 {
			desc := fmt.Sprintf("L%d Downline Income from %s", level, worker.Name)
			if _, err := applyCredit(tx, ancestor, models.BucketDownline, share, desc); err != nil {
				return err
			}
		}
		currentID = ancestor.ReferredBy
	}
	return nil
}

// payDescendants walks the referral tree downward breadth-first. Each
// generation books the share as upline income: to a depth-n descendant the
// worker is their level-n upline.
func (s *CommissionService) payDescendants(tx *gorm.DB, worker *models.StaffProfile, amount float64) error {
	frontier := []string{worker.ID}

	for level := 1; level <= len(s.Settings.UplineLevels); level++ {
		if len(frontier) == 0 {
			return nil
		}
		var generation []models.StaffProfile
		if err := tx.Where("referred_by IN ?", frontier).Find(&generation).Error; err != nil {
			return err
		}

		share := round2(amount * s.Settings.UplineLevels[level-1])
		frontier = frontier[:0]
		for i := range generation {
			member := generation[i]
			frontier = append(frontier, member.ID)
			if share <= 0 {
				continue
			}
			desc := fmt.Sprintf("L%d Upline Income from %s", level, worker.Name)
			if _, err := applyCredit(tx, &member, models.BucketUpline, share, desc); err != nil {
				return err
			}
		}
	}
	return nil
}

// payRoleCommission credits the booking member's performance wallet with
// their role's percentage of the order value once the order completes.
func (s *CommissionService) payRoleCommission(tx *gorm.DB, order *models.Order) error {
	booker, err := findStaff(tx, order.BookingUserID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return err
	}
	pct := s.Settings.RoleCommission[booker.Role]
	share := round2(order.TotalAmount * pct / 100)
	if share <= 0 {
		return nil
	}
	desc := fmt.Sprintf("Role Commission: %s", order.ID)
	_, err = applyCredit(tx, booker, models.BucketPerformance, share, desc)
	return err
}

type NetworkLevel struct {
	Level   int                   `json:"level"`
	Members []models.StaffProfile `json:"members"`
	Income  float64               `json:"income"`
}

// GetNetworkTree lists a member's downline generations together with the
// income each level's work has produced for them, recovered from the
// "L<n> Downline" tags payAncestors writes on their own transactions.
func (s *CommissionService) GetNetworkTree(staffID string) ([]NetworkLevel, error) {
	if _, err := findStaff(s.DB, staffID); err != nil {
		return nil, err
	}

	var levels []NetworkLevel
	frontier := []string{staffID}

	for level := 1; level <= s.Settings.MaxLevels(); level++ {
		var generation []models.StaffProfile
		if err := s.DB.Where("referred_by IN ?", frontier).
			Order("created_at ASC").
			Find(&generation).Error; err != nil {
			return nil, err
		}
		if len(generation) == 0 {
			break
		}

		var income float64
		err := s.DB.Model(&models.Transaction{}).
			Where("staff_id = ? AND bucket = ? AND description LIKE ?",
				staffID, models.BucketDownline, fmt.Sprintf("L%d Downline%%", level)).
			Select("COALESCE(SUM(amount), 0)").
			Scan(&income).Error
		if err != nil {
			return nil, err
		}

		levels = append(levels, NetworkLevel{
			Level:   level,
			Members: generation,
			Income:  round2(income),
		})

		frontier = frontier[:0]
		for _, member := range generation {
			frontier = append(frontier, member.ID)
		}
	}
	return levels, nil
}
