package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tailor-service/internal/models"
)

func TestCreateOrder(t *testing.T) {
	if testDB == nil {
		t.Skip("Database not configured")
	}
	defer cleanup()

	svc := NewOrderService(testDB)
	showroom := seedStaff(t, "booking-showroom", models.RoleShowroom, "")

	order, err := svc.CreateOrder(CreateOrderRequest{
		StaffID:      showroom.ID,
		CustomerName: "Ramesh Kumar",
		Mobile:       "9876500001",
		DeliveryDate: "2026-09-15",
		Items: []OrderItemInput{
			{Type: models.ItemShirt, Rate: 500, Quantity: 2},
			{Type: models.ItemPant, Rate: 700, Quantity: 1},
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, models.StatusCreated, order.Status)
	assert.Equal(t, 1700.0, order.TotalAmount)
	assert.Equal(t, showroom.ID, order.BookingUserID)
	assert.Equal(t, showroom.ID, order.CurrentHandlerID)
	assert.Len(t, order.Items, 2)
	assert.Len(t, order.History, 1)
	assert.Equal(t, "Order Created", order.History[0].Action)
	assert.Contains(t, order.ID, "ORD-")
	assert.Contains(t, order.BillNumber, "BILL-")
}

func TestCreateOrderRequiresShowroomRole(t *testing.T) {
	if testDB == nil {
		t.Skip("Database not configured")
	}
	defer cleanup()

	svc := NewOrderService(testDB)
	cutter := seedStaff(t, "cutter", models.RoleCutting, "")

	_, err := svc.CreateOrder(CreateOrderRequest{
		StaffID:      cutter.ID,
		CustomerName: "Ramesh Kumar",
		Items:        []OrderItemInput{{Type: models.ItemShirt, Rate: 500}},
	})
	assert.ErrorIs(t, err, ErrNotAuthorized)
}

func TestGetOrderByBill(t *testing.T) {
	if testDB == nil {
		t.Skip("Database not configured")
	}
	defer cleanup()

	svc := NewOrderService(testDB)
	showroom := seedStaff(t, "bill-showroom", models.RoleShowroom, "")

	created, err := svc.CreateOrder(CreateOrderRequest{
		StaffID:      showroom.ID,
		CustomerName: "Suresh",
		Items:        []OrderItemInput{{Type: models.ItemPant, Rate: 800}},
	})
	assert.NoError(t, err)

	found, err := svc.GetOrderByBill(created.BillNumber)
	assert.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = svc.GetOrderByBill("BILL-0000-MISSING")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListOrdersForQueues(t *testing.T) {
	if testDB == nil {
		t.Skip("Database not configured")
	}
	defer cleanup()

	orders := NewOrderService(testDB)
	wf := NewWorkflowService(testDB, nil)
	showroom := seedStaff(t, "queue-showroom", models.RoleShowroom, "")
	master := seedStaff(t, "queue-master", models.RoleMeasurement, "")

	order, err := orders.CreateOrder(CreateOrderRequest{
		StaffID:      showroom.ID,
		CustomerName: "Mahesh",
		Items:        []OrderItemInput{{Type: models.ItemShirt, Rate: 500}},
	})
	assert.NoError(t, err)

	// Fresh order sits in the showroom member's in-progress queue.
	queues, err := orders.ListOrdersFor(showroom.ID)
	assert.NoError(t, err)
	assert.Len(t, queues.InProgress, 1)
	assert.Empty(t, queues.Inbox)

	_, err = wf.Handover(order.ID, showroom.ID, master.ID)
	assert.NoError(t, err)

	// After handover it moves to the master's inbox and the showroom member's
	// history.
	queues, err = orders.ListOrdersFor(master.ID)
	assert.NoError(t, err)
	assert.Len(t, queues.Inbox, 1)

	queues, err = orders.ListOrdersFor(showroom.ID)
	assert.NoError(t, err)
	assert.Empty(t, queues.InProgress)
	assert.Len(t, queues.History, 1)
}

func TestSaveMeasurements(t *testing.T) {
	if testDB == nil {
		t.Skip("Database not configured")
	}
	defer cleanup()

	orders := NewOrderService(testDB)
	wf := NewWorkflowService(testDB, nil)
	showroom := seedStaff(t, "meas-showroom", models.RoleShowroom, "")
	master := seedStaff(t, "meas-master", models.RoleMeasurement, "")

	order, err := orders.CreateOrder(CreateOrderRequest{
		StaffID:      showroom.ID,
		CustomerName: "Dinesh",
		Items:        []OrderItemInput{{Type: models.ItemShirt, Rate: 500}},
	})
	assert.NoError(t, err)

	itemID := order.Items[0].ID

	// Too early: the order has not reached the measurement bench yet.
	_, err = orders.SaveMeasurements(order.ID, master.ID, itemID, "chest 40")
	assert.Error(t, err)

	_, err = wf.Handover(order.ID, showroom.ID, master.ID)
	assert.NoError(t, err)
	_, err = wf.Accept(order.ID, master.ID)
	assert.NoError(t, err)

	updated, err := orders.SaveMeasurements(order.ID, master.ID, itemID, "chest 40, sleeve 24")
	assert.NoError(t, err)
	assert.Equal(t, "chest 40, sleeve 24", updated.Items[0].Measurements)
	last := updated.History[len(updated.History)-1]
	assert.Equal(t, "Draft Saved", last.Action)
	assert.Equal(t, master.Name, last.ActorName)

	// Only the current handler can record measurements.
	_, err = orders.SaveMeasurements(order.ID, showroom.ID, itemID, "chest 41")
	assert.ErrorIs(t, err, ErrNotAuthorized)
}
