package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"tailor-service/internal/models"
	"tailor-service/pkg/common"
)

// OrderService covers order intake and read paths. Movement through the
// pipeline is WorkflowService's job.
type OrderService struct {
	DB *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{DB: db}
}

type OrderItemInput struct {
	Type        models.ItemType `json:"type" binding:"required"`
	Rate        float64         `json:"rate"`
	Quantity    int             `json:"quantity"`
	ClothLength string          `json:"cloth_length"`
}

type CreateOrderRequest struct {
	StaffID       string           `json:"staff_id" binding:"required"`
	CustomerName  string           `json:"customer_name" binding:"required"`
	Mobile        string           `json:"mobile"`
	DeliveryDate  string           `json:"delivery_date"`
	IsWithBill    *bool            `json:"is_with_bill"`
	AdvanceAmount float64          `json:"advance_amount"`
	AsDraft       bool             `json:"as_draft"`
	Items         []OrderItemInput `json:"items" binding:"required"`
}

func findOrder(db *gorm.DB, orderID string) (*models.Order, error) {
	var order models.Order
	err := db.Preload("Items").
		Preload("History", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		}).
		Where("id = ?", orderID).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// CreateOrder books an order at the showroom. Only showroom staff (or an
// admin) can book; the booking member stays the current handler until the
// first handover.
func (s *OrderService) CreateOrder(req CreateOrderRequest) (*models.Order, error) {
	staff, err := findStaff(s.DB, req.StaffID)
	if err != nil {
		return nil, err
	}
	if staff.Role != models.RoleShowroom && staff.Role != models.RoleAdmin {
		return nil, ErrNotAuthorized
	}
	if len(req.Items) == 0 {
		return nil, errors.New("order needs at least one item")
	}

	var items []models.OrderItem
	total := 0.0
	for _, in := range req.Items {
		qty := in.Quantity
		if qty < 1 {
			qty = 1
		}
		items = append(items, models.OrderItem{
			Type:        in.Type,
			Rate:        in.Rate,
			Quantity:    qty,
			ClothLength: in.ClothLength,
		})
		total += in.Rate * float64(qty)
	}

	status := models.StatusCreated
	action := "Order Created"
	if req.AsDraft {
		status = models.StatusDraft
		action = "Draft Saved"
	}
	withBill := true
	if req.IsWithBill != nil {
		withBill = *req.IsWithBill
	}

	order := &models.Order{
		CustomerName:       req.CustomerName,
		Mobile:             req.Mobile,
		TotalAmount:        round2(total),
		ShowroomName:       staff.Name,
		OrderDate:          common.Today(),
		DeliveryDate:       req.DeliveryDate,
		Status:             status,
		BookingUserID:      staff.ID,
		BookingUserName:    staff.Name,
		CurrentHandlerID:   staff.ID,
		CurrentHandlerRole: staff.Role,
		IsWithBill:         withBill,
		AdvanceAmount:      req.AdvanceAmount,
		PaymentStatus:      "Pending",
		Items:              items,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		for attempt := 0; attempt < 5; attempt++ {
			order.ID = common.GenerateOrderNo()
			order.BillNumber = common.GenerateBillNo()
			var count int64
			if err := tx.Model(&models.Order{}).
				Where("id = ? OR bill_number = ?", order.ID, order.BillNumber).
				Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				break
			}
			if attempt == 4 {
				return errors.New("could not allocate a unique order number")
			}
		}
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		return tx.Create(&models.OrderEvent{
			OrderID:   order.ID,
			Action:    action,
			ActorName: staff.Name,
			ActorRole: staff.Role,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return findOrder(s.DB, order.ID)
}

func (s *OrderService) GetOrder(orderID string) (*models.Order, error) {
	return findOrder(s.DB, orderID)
}

// GetOrderByBill looks an order up by the customer-facing bill number.
func (s *OrderService) GetOrderByBill(billNumber string) (*models.Order, error) {
	var order models.Order
	err := s.DB.Where("bill_number = ?", billNumber).First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return findOrder(s.DB, order.ID)
}

type WorkQueues struct {
	Inbox      []models.Order `json:"inbox"`
	InProgress []models.Order `json:"in_progress"`
	History    []models.Order `json:"history"`
}

// ListOrdersFor builds the three work queues a staff dashboard shows: orders
// waiting on them, orders they are working, and orders they already passed
// along.
func (s *OrderService) ListOrdersFor(staffID string) (*WorkQueues, error) {
	staff, err := findStaff(s.DB, staffID)
	if err != nil {
		return nil, err
	}

	queues := &WorkQueues{}

	err = s.DB.Preload("Items").
		Where("current_handler_id = ? AND status IN ?",
			staff.ID, models.StatusesIn(models.ClassHandover, models.ClassInbox)).
		Order("updated_at DESC").
		Find(&queues.Inbox).Error
	if err != nil {
		return nil, err
	}

	err = s.DB.Preload("Items").
		Where("current_handler_id = ? AND status IN ?",
			staff.ID, models.StatusesIn(models.ClassInProgress)).
		Order("updated_at DESC").
		Find(&queues.InProgress).Error
	if err != nil {
		return nil, err
	}

	// Orders the member touched and has since handed off, found through the
	// event log rather than a denormalized column.
	err = s.DB.Preload("Items").
		Where("id IN (?) AND current_handler_id != ?",
			s.DB.Model(&models.OrderEvent{}).
				Select("order_id").
				Where("actor_name = ? AND (action LIKE ? OR action = ?)",
					staff.Name, "Handover to %", "Delivered to Customer"),
			staff.ID).
		Order("updated_at DESC").
		Find(&queues.History).Error
	if err != nil {
		return nil, err
	}

	return queues, nil
}

// ListOrders is the admin view: every order, paginated, optionally filtered
// by status and searched by customer name, mobile or bill number.
func (s *OrderService) ListOrders(status models.OrderStatus, search string, page, limit int) (common.PaginationResult, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	query := s.DB.Model(&models.Order{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if search != "" {
		like := "%" + search + "%"
		query = query.Where(
			"customer_name LIKE ? OR mobile LIKE ? OR bill_number LIKE ?",
			like, like, like,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return common.PaginationResult{}, err
	}

	var orders []models.Order
	if err := query.Preload("Items").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&orders).Error; err != nil {
		return common.PaginationResult{}, err
	}

	return common.PaginateResponse(orders, total, page, limit, "Orders fetched"), nil
}

// SaveMeasurements records a garment's measurements while the order sits with
// the measurement master.
func (s *OrderService) SaveMeasurements(orderID, staffID string, itemID int, measurements string) (*models.Order, error) {
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
	if order.Status != models.StatusMeasurementProgress {
		return nil, ErrInvalidState
	}

	var item *models.OrderItem
	for i := range order.Items {
		if order.Items[i].ID == itemID {
			item = &order.Items[i]
			break
		}
	}
	if item == nil {
		return nil, fmt.Errorf("%w: item %d is not on order %s", ErrNotFound, itemID, orderID)
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(item).UpdateColumn("measurements", measurements).Error; err != nil {
			return err
		}
		return tx.Create(&models.OrderEvent{
			OrderID:   order.ID,
			Action:    "Draft Saved",
			ActorName: staff.Name,
			ActorRole: staff.Role,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return findOrder(s.DB, orderID)
}
