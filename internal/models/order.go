package models

import (
	"time"
)

// OrderStatus values match the labels shown on the dashboards.
type OrderStatus string

const (
	StatusDraft   OrderStatus = "Draft"
	StatusCreated OrderStatus = "Order Created"

	StatusHandoverToMeasurement OrderStatus = "Handover to Measurement"
	StatusMeasurementInbox      OrderStatus = "Measurement Inbox"
	StatusMeasurementProgress   OrderStatus = "Measurement In-Progress"

	StatusHandoverToCutting OrderStatus = "Handover to Cutting"
	StatusCuttingInbox      OrderStatus = "Cutting Inbox"
	StatusCuttingProgress   OrderStatus = "Cutting In-Progress"

	StatusHandoverToStitching OrderStatus = "Handover to Stitching"
	StatusStitchingInbox      OrderStatus = "Stitching Inbox"
	StatusStitchingProgress   OrderStatus = "Stitching In-Progress"

	StatusHandoverToFinishing OrderStatus = "Handover to Finishing"
	StatusFinishingInbox      OrderStatus = "Finishing Inbox"
	StatusFinishingProgress   OrderStatus = "Finishing In-Progress"

	StatusHandoverToDelivery OrderStatus = "Handover to Delivery"
	StatusDeliveryInbox      OrderStatus = "Delivery Inbox"
	StatusOutForDelivery     OrderStatus = "Out for Delivery"

	StatusCompleted OrderStatus = "Order Completed"
	StatusCancelled OrderStatus = "Cancelled"
	StatusReturned  OrderStatus = "Returned"
)

// StatusClass groups statuses by where they sit in a department's queue.
type StatusClass string

const (
	ClassHandover   StatusClass = "Handover"
	ClassInbox      StatusClass = "Inbox"
	ClassInProgress StatusClass = "InProgress"
	ClassTerminal   StatusClass = "Terminal"
)

// Department is one stop of the fixed pipeline.
type Department string

const (
	DeptShowroom    Department = "Showroom"
	DeptMeasurement Department = "Measurement"
	DeptCutting     Department = "Cutting"
	DeptStitching   Department = "Stitching"
	DeptFinishing   Department = "Finishing"
	DeptDelivery    Department = "Delivery"
)

type statusInfo struct {
	Dept  Department
	Class StatusClass
}

// Draft and Created sit in the showroom's in-progress bucket: the booking
// showroom owns them until the first handover.
var statusTable = map[OrderStatus]statusInfo{
	StatusDraft:   {DeptShowroom, ClassInProgress},
	StatusCreated: {DeptShowroom, ClassInProgress},

	StatusHandoverToMeasurement: {DeptMeasurement, ClassHandover},
	StatusMeasurementInbox:      {DeptMeasurement, ClassInbox},
	StatusMeasurementProgress:   {DeptMeasurement, ClassInProgress},

	StatusHandoverToCutting: {DeptCutting, ClassHandover},
	StatusCuttingInbox:      {DeptCutting, ClassInbox},
	StatusCuttingProgress:   {DeptCutting, ClassInProgress},

	StatusHandoverToStitching: {DeptStitching, ClassHandover},
	StatusStitchingInbox:      {DeptStitching, ClassInbox},
	StatusStitchingProgress:   {DeptStitching, ClassInProgress},

	StatusHandoverToFinishing: {DeptFinishing, ClassHandover},
	StatusFinishingInbox:      {DeptFinishing, ClassInbox},
	StatusFinishingProgress:   {DeptFinishing, ClassInProgress},

	StatusHandoverToDelivery: {DeptDelivery, ClassHandover},
	StatusDeliveryInbox:      {DeptDelivery, ClassInbox},
	StatusOutForDelivery:     {DeptDelivery, ClassInProgress},

	StatusCompleted: {"", ClassTerminal},
	StatusCancelled: {"", ClassTerminal},
	StatusReturned:  {"", ClassTerminal},
}

func (s OrderStatus) Class() StatusClass {
	if info, ok := statusTable[s]; ok {
		return info.Class
	}
	return ClassTerminal
}

func (s OrderStatus) Department() Department {
	return statusTable[s].Dept
}

func (s OrderStatus) Terminal() bool {
	return s.Class() == ClassTerminal
}

// StatusesIn lists every status of a given class, for bucket queries.
func StatusesIn(classes ...StatusClass) []OrderStatus {
	var out []OrderStatus
	for status, info := range statusTable {
		for _, c := range classes {
			if info.Class == c {
				out = append(out, status)
			}
		}
	}
	return out
}

var pipeline = []Department{
	DeptShowroom, DeptMeasurement, DeptCutting, DeptStitching, DeptFinishing, DeptDelivery,
}

// NextDepartment returns the pipeline stop after d, or "" past Delivery.
func NextDepartment(d Department) Department {
	for i, dept := range pipeline {
		if dept == d && i+1 < len(pipeline) {
			return pipeline[i+1]
		}
	}
	return ""
}

var handoverStatus = map[Department]OrderStatus{
	DeptMeasurement: StatusHandoverToMeasurement,
	DeptCutting:     StatusHandoverToCutting,
	DeptStitching:   StatusHandoverToStitching,
	DeptFinishing:   StatusHandoverToFinishing,
	DeptDelivery:    StatusHandoverToDelivery,
}

var progressStatus = map[Department]OrderStatus{
	DeptMeasurement: StatusMeasurementProgress,
	DeptCutting:     StatusCuttingProgress,
	DeptStitching:   StatusStitchingProgress,
	DeptFinishing:   StatusFinishingProgress,
	DeptDelivery:    StatusOutForDelivery,
}

func HandoverStatusFor(d Department) OrderStatus { return handoverStatus[d] }
func ProgressStatusFor(d Department) OrderStatus { return progressStatus[d] }

var roleDepartments = map[Role]Department{
	RoleShowroom:    DeptShowroom,
	RoleMeasurement: DeptMeasurement,
	RoleCutting:     DeptCutting,
	RoleShirtMaker:  DeptStitching,
	RolePantMaker:   DeptStitching,
	RoleCoatMaker:   DeptStitching,
	RoleSafariMaker: DeptStitching,
	RoleKajButton:   DeptFinishing,
	RolePress:       DeptFinishing,
	RoleDelivery:    DeptDelivery,
}

// DepartmentFor maps a staff role to its pipeline stop; roles outside the
// pipeline (Admin, Material, ...) map to "".
func DepartmentFor(r Role) Department {
	return roleDepartments[r]
}

// ItemType values mirror the garment catalogue.
type ItemType string

const (
	ItemShirt  ItemType = "Shirt"
	ItemPant   ItemType = "Pant"
	ItemCoat   ItemType = "Coat"
	ItemSafari ItemType = "Safari"
	ItemKurta  ItemType = "Kurta"
	ItemPajama ItemType = "Pajama"
)

var makerRoles = map[ItemType]Role{
	ItemShirt:  RoleShirtMaker,
	ItemPant:   RolePantMaker,
	ItemCoat:   RoleCoatMaker,
	ItemSafari: RoleSafariMaker,
}

// MakerRoleFor returns the dedicated maker role for a garment, or "" when any
// maker may take it (Kurta, Pajama).
func MakerRoleFor(t ItemType) Role {
	return makerRoles[t]
}

type Order struct {
	ID           string      `gorm:"primaryKey;size:60" json:"id"`
	BillNumber   string      `gorm:"column:bill_number;size:60;uniqueIndex" json:"bill_number"`
	CustomerName string      `gorm:"column:customer_name;size:255;not null" json:"customer_name"`
	Mobile       string      `gorm:"column:mobile;size:20" json:"mobile"`
	TotalAmount  float64     `gorm:"column:total_amount;type:decimal(20,2);not null" json:"total_amount"`
	ShowroomName string      `gorm:"column:showroom_name;size:255" json:"showroom_name"`
	OrderDate    string      `gorm:"column:order_date;size:10" json:"order_date"`       // YYYY-MM-DD
	DeliveryDate string      `gorm:"column:delivery_date;size:10" json:"delivery_date"` // YYYY-MM-DD
	Status       OrderStatus `gorm:"column:status;size:50;not null;index" json:"status"`

	BookingUserID      string `gorm:"column:booking_user_id;size:40;not null" json:"booking_user_id"`
	BookingUserName    string `gorm:"column:booking_user_name;size:255;not null" json:"booking_user_name"`
	CurrentHandlerID   string `gorm:"column:current_handler_id;size:40;not null;index" json:"current_handler_id"`
	CurrentHandlerRole Role   `gorm:"column:current_handler_role;size:50;not null" json:"current_handler_role"`
	PreviousHandlerID  string `gorm:"column:previous_handler_id;size:40" json:"previous_handler_id"`

	IsWithBill    bool    `gorm:"column:is_with_bill;default:true" json:"is_with_bill"`
	AdvanceAmount float64 `gorm:"column:advance_amount;type:decimal(20,2);default:0.00" json:"advance_amount"`
	PaymentStatus string  `gorm:"column:payment_status;size:20;default:Pending" json:"payment_status"`
	CancelReason  string  `gorm:"column:cancel_reason;size:255" json:"cancel_reason"`

	Items   []OrderItem  `gorm:"foreignKey:OrderID;references:ID" json:"items"`
	History []OrderEvent `gorm:"foreignKey:OrderID;references:ID" json:"history"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Order) TableName() string {
	return "orders"
}

type OrderItem struct {
	ID           int      `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID      string   `gorm:"column:order_id;size:60;not null;index" json:"order_id"`
	Type         ItemType `gorm:"column:type;size:30;not null" json:"type"`
	Rate         float64  `gorm:"column:rate;type:decimal(20,2);not null" json:"rate"`
	Quantity     int      `gorm:"column:quantity;not null;default:1" json:"quantity"`
	ClothLength  string   `gorm:"column:cloth_length;size:50" json:"cloth_length"`
	Measurements string   `gorm:"column:measurements;type:text" json:"measurements"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

// OrderEvent rows are append-only; an order's history is never rewritten.
type OrderEvent struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   string    `gorm:"column:order_id;size:60;not null;index" json:"order_id"`
	Action    string    `gorm:"column:action;size:255;not null" json:"action"`
	ActorName string    `gorm:"column:actor_name;size:255;not null" json:"actor_name"`
	ActorRole Role      `gorm:"column:actor_role;size:50;not null" json:"actor_role"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"timestamp"`
}

func (OrderEvent) TableName() string {
	return "order_events"
}
