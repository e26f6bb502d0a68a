package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"tailor-service/internal/models"
)

func TestValidateHandoverTarget(t *testing.T) {
	pantOrder := &models.Order{Items: []models.OrderItem{{Type: models.ItemPant}}}
	kurtaOrder := &models.Order{Items: []models.OrderItem{{Type: models.ItemKurta}}}

	shirtMaker := &models.StaffProfile{Role: models.RoleShirtMaker, IsActive: true}
	pantMaker := &models.StaffProfile{Role: models.RolePantMaker, IsActive: true}
	cutter := &models.StaffProfile{Role: models.RoleCutting, IsActive: true}
	inactive := &models.StaffProfile{Role: models.RolePantMaker, IsActive: false}

	// Right maker for the garment.
	assert.NoError(t, validateHandoverTarget(pantOrder, pantMaker, models.DeptStitching))
	// Wrong maker.
	assert.ErrorIs(t, validateHandoverTarget(pantOrder, shirtMaker, models.DeptStitching), ErrInvalidTarget)
	// Kurta takes any maker.
	assert.NoError(t, validateHandoverTarget(kurtaOrder, shirtMaker, models.DeptStitching))
	// Wrong department.
	assert.ErrorIs(t, validateHandoverTarget(pantOrder, cutter, models.DeptStitching), ErrInvalidTarget)
	// Inactive staff never receive orders.
	assert.ErrorIs(t, validateHandoverTarget(pantOrder, inactive, models.DeptStitching), ErrInvalidTarget)
}

func TestPipelineHappyPath(t *testing.T) {
	if testDB == nil {
		t.Skip("Database not configured")
	}
	defer cleanup()

	orders := NewOrderService(testDB)
	wf := NewWorkflowService(testDB, nil)

	showroom := seedStaff(t, "hp-showroom", models.RoleShowroom, "")
	master := seedStaff(t, "hp-measure", models.RoleMeasurement, "")
	cutter := seedStaff(t, "hp-cutter", models.RoleCutting, "")
	maker := seedStaff(t, "hp-shirtmaker", models.RoleShirtMaker, "")
	press := seedStaff(t, "hp-press", models.RolePress, "")
	delivery := seedStaff(t, "hp-delivery", models.RoleDelivery, "")

	order, err := orders.CreateOrder(CreateOrderRequest{
		StaffID:      showroom.ID,
		CustomerName: "Happy Path",
		Items:        []OrderItemInput{{Type: models.ItemShirt, Rate: 500}},
	})
	assert.NoError(t, err)

	advance := func(staffID, targetID string, wantStatus models.OrderStatus) {
		t.Helper()
		got, err := wf.Handover(order.ID, staffID, targetID)
		assert.NoError(t, err)
		assert.Equal(t, wantStatus, got.Status)

		// Accepting lands the order straight on the receiver's bench.
		accepted, err := wf.Accept(order.ID, targetID)
		assert.NoError(t, err)
		assert.Len(t, accepted, 1)
		assert.Equal(t, models.ClassInProgress, accepted[0].Status.Class())
	}

	advance(showroom.ID, master.ID, models.StatusHandoverToMeasurement)
	advance(master.ID, cutter.ID, models.StatusHandoverToCutting)
	advance(cutter.ID, maker.ID, models.StatusHandoverToStitching)
	advance(maker.ID, press.ID, models.StatusHandoverToFinishing)
	advance(press.ID, delivery.ID, models.StatusHandoverToDelivery)

	// The delivery handover needs no target: it completes the order and
	// parks it with the booking member.
	final, err := wf.Handover(order.ID, delivery.ID, "")
	assert.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, final.Status)
	assert.Equal(t, showroom.ID, final.CurrentHandlerID)
	assert.Equal(t, "Paid", final.PaymentStatus)
	assert.Equal(t, "Delivered to Customer", final.History[len(final.History)-1].Action)
}

func TestHandoverAuthorization(t *testing.T) {
	if testDB == nil {
		t.Skip("Database not configured")
	}
	defer cleanup()

	orders := NewOrderService(testDB)
	wf := NewWorkflowService(testDB, nil)

	showroom := seedStaff(t, "auth-showroom", models.RoleShowroom, "")
	master := seedStaff(t, "auth-measure", models.RoleMeasurement, "")
	stranger := seedStaff(t, "auth-stranger", models.RoleCutting, "")

	order, err := orders.CreateOrder(CreateOrderRequest{
		StaffID:      showroom.ID,
		CustomerName: "Auth Case",
		Items:        []OrderItemInput{{Type: models.ItemShirt, Rate: 500}},
	})
	assert.NoError(t, err)

	// Not the handler.
	_, err = wf.Handover(order.ID, stranger.ID, master.ID)
	assert.ErrorIs(t, err, ErrNotAuthorized)

	// Target outside the next department.
	_, err = wf.Handover(order.ID, showroom.ID, stranger.ID)
	assert.ErrorIs(t, err, ErrInvalidTarget)

	// Accept before any handover.
	_, err = wf.Accept(order.ID, showroom.ID)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestAcceptClaimedOrder(t *testing.T) {
	if testDB == nil {
		t.Skip("Database not configured")
	}
	defer cleanup()

	orders := NewOrderService(testDB)
	wf := NewWorkflowService(testDB, nil)

	showroom := seedStaff(t, "claim-showroom", models.RoleShowroom, "")
	first := seedStaff(t, "claim-first", models.RoleMeasurement, "")
	second := seedStaff(t, "claim-second", models.RoleMeasurement, "")

	order, err := orders.CreateOrder(CreateOrderRequest{
		StaffID:      showroom.ID,
		CustomerName: "Claim Case",
		Items:        []OrderItemInput{{Type: models.ItemShirt, Rate: 500}},
	})
	assert.NoError(t, err)

	_, err = wf.Handover(order.ID, showroom.ID, first.ID)
	assert.NoError(t, err)

	// While the handover is still pending, another master cannot take it.
	_, err = wf.Accept(order.ID, second.ID)
	assert.ErrorIs(t, err, ErrNotAuthorized)

	accepted, err := wf.Accept(order.ID, first.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusMeasurementProgress, accepted[0].Status)

	// Once claimed, a second accept fails as a state error, whoever tries.
	_, err = wf.Accept(order.ID, second.ID)
	assert.ErrorIs(t, err, ErrInvalidState)
	_, err = wf.Accept(order.ID, first.ID)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestAcceptSplitsMultiGarmentOrder(t *testing.T) {
	if testDB == nil {
		t.Skip("Database not configured")
	}
	defer cleanup()

	orders := NewOrderService(testDB)
	wf := NewWorkflowService(testDB, nil)

	showroom := seedStaff(t, "split-showroom", models.RoleShowroom, "")
	master := seedStaff(t, "split-measure", models.RoleMeasurement, "")

	order, err := orders.CreateOrder(CreateOrderRequest{
		StaffID:      showroom.ID,
		CustomerName: "Split Case",
		Items: []OrderItemInput{
			{Type: models.ItemShirt, Rate: 500, Quantity: 1},
			{Type: models.ItemPant, Rate: 700, Quantity: 2},
		},
	})
	assert.NoError(t, err)

	_, err = wf.Handover(order.ID, showroom.ID, master.ID)
	assert.NoError(t, err)

	children, err := wf.Accept(order.ID, master.ID)
	assert.NoError(t, err)
	assert.Len(t, children, 2)

	// The parent is gone; children carry suffixed ids and bills.
	_, err = orders.GetOrder(order.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	for i, child := range children {
		assert.Equal(t, fmt.Sprintf("%s-%d", order.ID, i+1), child.ID)
		assert.Equal(t, fmt.Sprintf("%s-%d", order.BillNumber, i+1), child.BillNumber)
		assert.Equal(t, models.StatusMeasurementProgress, child.Status)
		assert.Equal(t, master.ID, child.CurrentHandlerID)
		assert.Equal(t, showroom.ID, child.BookingUserID)
		assert.Len(t, child.Items, 1)

		// Inherited history plus the split marker.
		last := child.History[len(child.History)-1]
		assert.Contains(t, last.Action, "Order Split:")
	}

	assert.Equal(t, 500.0, children[0].TotalAmount)
	assert.Equal(t, 1400.0, children[1].TotalAmount)
}

func TestDraftSubmission(t *testing.T) {
	if testDB == nil {
		t.Skip("Database not configured")
	}
	defer cleanup()

	orders := NewOrderService(testDB)
	wf := NewWorkflowService(testDB, nil)

	showroom := seedStaff(t, "draft-showroom", models.RoleShowroom, "")
	master := seedStaff(t, "draft-measure", models.RoleMeasurement, "")

	order, err := orders.CreateOrder(CreateOrderRequest{
		StaffID:      showroom.ID,
		CustomerName: "Draft Case",
		AsDraft:      true,
		Items:        []OrderItemInput{{Type: models.ItemShirt, Rate: 500}},
	})
	assert.NoError(t, err)
	assert.Equal(t, models.StatusDraft, order.Status)

	// Drafts cannot be handed over.
	_, err = wf.Handover(order.ID, showroom.ID, master.ID)
	assert.ErrorIs(t, err, ErrInvalidState)

	submitted, err := wf.SubmitDraft(order.ID, showroom.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusCreated, submitted.Status)

	// A live order cannot be submitted again.
	_, err = wf.SubmitDraft(order.ID, showroom.ID)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestCancelOrder(t *testing.T) {
	if testDB == nil {
		t.Skip("Database not configured")
	}
	defer cleanup()

	orders := NewOrderService(testDB)
	wf := NewWorkflowService(testDB, nil)

	showroom := seedStaff(t, "cancel-showroom", models.RoleShowroom, "")
	admin := seedStaff(t, "cancel-admin", models.RoleAdmin, "")

	order, err := orders.CreateOrder(CreateOrderRequest{
		StaffID:      showroom.ID,
		CustomerName: "Cancel Case",
		Items:        []OrderItemInput{{Type: models.ItemShirt, Rate: 500}},
	})
	assert.NoError(t, err)

	_, err = wf.CancelOrder(order.ID, showroom.ID, "changed mind")
	assert.ErrorIs(t, err, ErrNotAuthorized)

	cancelled, err := wf.CancelOrder(order.ID, admin.ID, "customer left town")
	assert.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, cancelled.Status)
	assert.Equal(t, "customer left town", cancelled.CancelReason)

	// Terminal orders stay put.
	_, err = wf.CancelOrder(order.ID, admin.ID, "again")
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestReturnOrder(t *testing.T) {
	if testDB == nil {
		t.Skip("Database not configured")
	}
	defer cleanup()

	orders := NewOrderService(testDB)
	wf := NewWorkflowService(testDB, nil)

	showroom := seedStaff(t, "ret-showroom", models.RoleShowroom, "")
	master := seedStaff(t, "ret-measure", models.RoleMeasurement, "")
	cutter := seedStaff(t, "ret-cutter", models.RoleCutting, "")
	maker := seedStaff(t, "ret-maker", models.RoleShirtMaker, "")
	press := seedStaff(t, "ret-press", models.RolePress, "")
	delivery := seedStaff(t, "ret-delivery", models.RoleDelivery, "")

	order, err := orders.CreateOrder(CreateOrderRequest{
		StaffID:      showroom.ID,
		CustomerName: "Return Case",
		Items:        []OrderItemInput{{Type: models.ItemShirt, Rate: 500}},
	})
	assert.NoError(t, err)

	steps := []struct{ from, to string }{
		{showroom.ID, master.ID},
		{master.ID, cutter.ID},
		{cutter.ID, maker.ID},
		{maker.ID, press.ID},
		{press.ID, delivery.ID},
	}
	for _, step := range steps {
		_, err = wf.Handover(order.ID, step.from, step.to)
		assert.NoError(t, err)
		_, err = wf.Accept(order.ID, step.to)
		assert.NoError(t, err)
	}

	returned, err := wf.ReturnOrder(order.ID, delivery.ID, "customer unreachable")
	assert.NoError(t, err)
	assert.Equal(t, models.StatusReturned, returned.Status)
	assert.Equal(t, showroom.ID, returned.CurrentHandlerID)
	assert.Equal(t, "Order Returned", returned.History[len(returned.History)-1].Action)
}
