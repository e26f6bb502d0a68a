package services

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"tailor-service/internal/models"
)

// CommissionDispatcher hands completed-stage work off to the commission
// engine. The worker-backed implementation enqueues a task; the inline one
// runs the distribution in-process.
type CommissionDispatcher interface {
	Dispatch(orderID, staffID string, stage models.Department) error
}

// WorkflowService moves orders through the fixed pipeline:
// Showroom -> Measurement -> Cutting -> Stitching -> Finishing -> Delivery.
type WorkflowService struct {
	DB          *gorm.DB
	Commissions CommissionDispatcher
}

func NewWorkflowService(db *gorm.DB, commissions CommissionDispatcher) *WorkflowService {
	return &WorkflowService{DB: db, Commissions: commissions}
}

// SubmitDraft promotes a draft into a live order.
func (s *WorkflowService) SubmitDraft(orderID, staffID string) (*models.Order, error) {
	staff, err := findStaff(s.DB, staffID)
	if err != nil {
		return nil, err
	}
	order, err := findOrder(s.DB, orderID)
	if err != nil {
		return nil, err
	}
	if order.CurrentHandlerID != staff.ID && staff.Role != models.RoleAdmin {
		return nil, ErrNotAuthorized
	}
	if order.Status != models.StatusDraft {
		return nil, ErrInvalidState
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(order).Updates(map[string]interface{}{
			"status": models.StatusCreated,
		}).Error; err != nil {
			return err
		}
		return tx.Create(&models.OrderEvent{
			OrderID:   order.ID,
			Action:    "Order Created",
			ActorName: staff.Name,
			ActorRole: staff.Role,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return findOrder(s.DB, orderID)
}

// Accept claims a handed-over order and puts it straight onto the receiver's
// bench. At the measurement desk a multi-garment order splits into one child
// order per garment so each piece can travel the pipeline on its own.
//
// The state check runs before the ownership check: accepting an order someone
// else already claimed fails with ErrInvalidState, not silently and not as an
// authorization error.
func (s *WorkflowService) Accept(orderID, staffID string) ([]models.Order, error) {
	staff, err := findStaff(s.DB, staffID)
	if err != nil {
		return nil, err
	}
	order, err := findOrder(s.DB, orderID)
	if err != nil {
		return nil, err
	}
	if class := order.Status.Class(); class != models.ClassHandover && class != models.ClassInbox {
		return nil, ErrInvalidState
	}
	if order.CurrentHandlerID != staff.ID {
		return nil, ErrNotAuthorized
	}

	dept := order.Status.Department()
	if dept == models.DeptMeasurement && len(order.Items) > 1 {
		return s.splitOnAccept(order, staff)
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(order).Updates(map[string]interface{}{
			"status": models.ProgressStatusFor(dept),
		}).Error; err != nil {
			return err
		}
		return tx.Create(&models.OrderEvent{
			OrderID:   order.ID,
			Action:    fmt.Sprintf("%s Accepted", dept),
			ActorName: staff.Name,
			ActorRole: staff.Role,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	accepted, err := findOrder(s.DB, orderID)
	if err != nil {
		return nil, err
	}
	return []models.Order{*accepted}, nil
}

// splitOnAccept replaces a multi-garment order with one child per garment.
// Children are numbered <parent>-1, <parent>-2, ... and inherit the parent's
// history, so each child's trail still starts at the showroom.
func (s *WorkflowService) splitOnAccept(parent *models.Order, staff *models.StaffProfile) ([]models.Order, error) {
	var childIDs []string

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		for i, item := range parent.Items {
			child := models.Order{
				ID:                 fmt.Sprintf("%s-%d", parent.ID, i+1),
				BillNumber:         fmt.Sprintf("%s-%d", parent.BillNumber, i+1),
				CustomerName:       parent.CustomerName,
				Mobile:             parent.Mobile,
				TotalAmount:        round2(item.Rate * float64(item.Quantity)),
				ShowroomName:       parent.ShowroomName,
				OrderDate:          parent.OrderDate,
				DeliveryDate:       parent.DeliveryDate,
				Status:             models.StatusMeasurementProgress,
				BookingUserID:      parent.BookingUserID,
				BookingUserName:    parent.BookingUserName,
				CurrentHandlerID:   staff.ID,
				CurrentHandlerRole: staff.Role,
				PreviousHandlerID:  parent.PreviousHandlerID,
				IsWithBill:         parent.IsWithBill,
				PaymentStatus:      parent.PaymentStatus,
			}
			if err := tx.Create(&child).Error; err != nil {
				return err
			}
			if err := tx.Create(&models.OrderItem{
				OrderID:     child.ID,
				Type:        item.Type,
				Rate:        item.Rate,
				Quantity:    item.Quantity,
				ClothLength: item.ClothLength,
			}).Error; err != nil {
				return err
			}
			for _, event := range parent.History {
				if err := tx.Create(&models.OrderEvent{
					OrderID:   child.ID,
					Action:    event.Action,
					ActorName: event.ActorName,
					ActorRole: event.ActorRole,
				}).Error; err != nil {
					return err
				}
			}
			if err := tx.Create(&models.OrderEvent{
				OrderID:   child.ID,
				Action:    fmt.Sprintf("Order Split: %s accepted", item.Type),
				ActorName: staff.Name,
				ActorRole: staff.Role,
			}).Error; err != nil {
				return err
			}
			childIDs = append(childIDs, child.ID)
		}

		if err := tx.Where("order_id = ?", parent.ID).Delete(&models.OrderEvent{}).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", parent.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Order{}, "id = ?", parent.ID).Error
	})
	if err != nil {
		return nil, err
	}

	var children []models.Order
	for _, id := range childIDs {
		child, err := findOrder(s.DB, id)
		if err != nil {
			return nil, err
		}
		children = append(children, *child)
	}
	return children, nil
}

// Handover passes a finished stage to the next department. The last stop is
// special: the delivery boy's handover completes the order and parks it back
// with the booking showroom member.
func (s *WorkflowService) Handover(orderID, staffID, targetID string) (*models.Order, error) {
	staff, err := findStaff(s.DB, staffID)
	if err != nil {
		return nil, err
	}
	order, err := findOrder(s.DB, orderID)
	if err != nil {
		return nil, err
	}
	if order.CurrentHandlerID != staff.ID {
		return nil, ErrNotAuthorized
	}
	if order.Status.Class() != models.ClassInProgress || order.Status == models.StatusDraft {
		return nil, ErrInvalidState
	}

	dept := order.Status.Department()
	if dept == models.DeptDelivery {
		return s.completeDelivery(order, staff)
	}

	next := models.NextDepartment(dept)
	if next == "" {
		return nil, ErrInvalidState
	}
	target, err := findStaff(s.DB, targetID)
	if err != nil {
		return nil, err
	}
	if err := validateHandoverTarget(order, target, next); err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(order).Updates(map[string]interface{}{
			"status":               models.HandoverStatusFor(next),
			"current_handler_id":   target.ID,
			"current_handler_role": target.Role,
			"previous_handler_id":  staff.ID,
		}).Error; err != nil {
			return err
		}
		return tx.Create(&models.OrderEvent{
			OrderID:   order.ID,
			Action:    fmt.Sprintf("Handover to %s (%s)", next, target.Name),
			ActorName: staff.Name,
			ActorRole: staff.Role,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	s.dispatchCommission(order.ID, staff.ID, dept)
	return findOrder(s.DB, orderID)
}

// validateHandoverTarget checks the receiver belongs to the next department
// and, at stitching, is the right maker for every garment on the order.
func validateHandoverTarget(order *models.Order, target *models.StaffProfile, next models.Department) error {
	if !target.IsActive {
		return ErrInvalidTarget
	}
	if models.DepartmentFor(target.Role) != next {
		return ErrInvalidTarget
	}
	if next == models.DeptStitching {
		for _, item := range order.Items {
			maker := models.MakerRoleFor(item.Type)
			if maker != "" && maker != target.Role {
				return ErrInvalidTarget
			}
		}
	}
	return nil
}

func (s *WorkflowService) completeDelivery(order *models.Order, staff *models.StaffProfile) (*models.Order, error) {
	booker, err := findStaff(s.DB, order.BookingUserID)
	if err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(order).Updates(map[string]interface{}{
			"status":               models.StatusCompleted,
			"current_handler_id":   booker.ID,
			"current_handler_role": booker.Role,
			"previous_handler_id":  staff.ID,
			"payment_status":       "Paid",
		}).Error; err != nil {
			return err
		}
		return tx.Create(&models.OrderEvent{
			OrderID:   order.ID,
			Action:    "Delivered to Customer",
			ActorName: staff.Name,
			ActorRole: staff.Role,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	s.dispatchCommission(order.ID, staff.ID, models.DeptDelivery)
	return findOrder(s.DB, order.ID)
}

// ReturnOrder brings an undeliverable order back. Only the delivery boy
// holding it out for delivery can return it.
func (s *WorkflowService) ReturnOrder(orderID, staffID, reason string) (*models.Order, error) {
	staff, err := findStaff(s.DB, staffID)
	if err != nil {
		return nil, err
	}
	order, err := findOrder(s.DB, orderID)
	if err != nil {
		return nil, err
	}
	if order.CurrentHandlerID != staff.ID {
		return nil, ErrNotAuthorized
	}
	if order.Status != models.StatusOutForDelivery {
		return nil, ErrInvalidState
	}
	booker, err := findStaff(s.DB, order.BookingUserID)
	if err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(order).Updates(map[string]interface{}{
			"status":               models.StatusReturned,
			"current_handler_id":   booker.ID,
			"current_handler_role": booker.Role,
			"previous_handler_id":  staff.ID,
			"cancel_reason":        reason,
		}).Error; err != nil {
			return err
		}
		return tx.Create(&models.OrderEvent{
			OrderID:   order.ID,
			Action:    "Order Returned",
			ActorName: staff.Name,
			ActorRole: staff.Role,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return findOrder(s.DB, orderID)
}

// CancelOrder is admin-only and allowed from any non-terminal state.
func (s *WorkflowService) CancelOrder(orderID, staffID, reason string) (*models.Order, error) {
	staff, err := findStaff(s.DB, staffID)
	if err != nil {
		return nil, err
	}
	if staff.Role != models.RoleAdmin {
		return nil, ErrNotAuthorized
	}
	order, err := findOrder(s.DB, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status.Terminal() {
		return nil, ErrInvalidState
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(order).Updates(map[string]interface{}{
			"status":        models.StatusCancelled,
			"cancel_reason": reason,
		}).Error; err != nil {
			return err
		}
		return tx.Create(&models.OrderEvent{
			OrderID:   order.ID,
			Action:    "Order Cancelled",
			ActorName: staff.Name,
			ActorRole: staff.Role,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return findOrder(s.DB, orderID)
}

func (s *WorkflowService) dispatchCommission(orderID, staffID string, stage models.Department) {
	if s.Commissions == nil || stage == models.DeptShowroom {
		return
	}
	if err := s.Commissions.Dispatch(orderID, staffID, stage); err != nil {
		log.Printf("Failed to dispatch commission for order %s stage %s: %v", orderID, stage, err)
	}
}
