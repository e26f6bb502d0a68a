package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tailor-service/internal/models"
)

func TestLaborAmount(t *testing.T) {
	svc := NewCommissionService(nil, models.DefaultIncomeSettings())

	order := &models.Order{Items: []models.OrderItem{
		{Type: models.ItemShirt, Quantity: 2},
		{Type: models.ItemPant, Quantity: 1},
	}}

	// Per-garment stages price each item; 2 shirts + 1 pant.
	assert.Equal(t, 2*120.0+220.0, svc.laborAmount(order, models.DeptStitching))
	assert.Equal(t, 2*25.0+25.0, svc.laborAmount(order, models.DeptCutting))
	assert.Equal(t, 2*20.0+30.0, svc.laborAmount(order, models.DeptMeasurement))

	// Delivery is a flat rate per order.
	assert.Equal(t, 10.0, svc.laborAmount(order, models.DeptDelivery))

	// Unlisted combinations carry no rate.
	coat := &models.Order{Items: []models.OrderItem{{Type: models.ItemCoat, Quantity: 1}}}
	assert.Equal(t, 0.0, svc.laborAmount(coat, models.DeptCutting))
}

func TestDistributeCommission(t *testing.T) {
	if testDB == nil {
		t.Skip("Database not configured")
	}
	defer cleanup()

	orders := NewOrderService(testDB)
	svc := NewCommissionService(testDB, models.DefaultIncomeSettings())

	// Referral chain: upline2 -> upline1 -> worker -> downline1.
	upline2 := seedStaff(t, "comm-upline2", models.RoleAgent, "")
	upline1 := seedStaff(t, "comm-upline1", models.RoleAgent, upline2.ID)
	worker := seedStaff(t, "comm-worker", models.RoleShirtMaker, upline1.ID)
	downline1 := seedStaff(t, "comm-downline1", models.RoleAgent, worker.ID)

	showroom := seedStaff(t, "comm-showroom", models.RoleShowroom, "")
	order, err := orders.CreateOrder(CreateOrderRequest{
		StaffID:      showroom.ID,
		CustomerName: "Commission Case",
		Items:        []OrderItemInput{{Type: models.ItemShirt, Rate: 1000, Quantity: 1}},
	})
	assert.NoError(t, err)

	err = svc.DistributeCommission(order.ID, worker.ID, models.DeptStitching)
	assert.NoError(t, err)

	// Labor: one shirt stitched at 120.
	assert.Equal(t, 120.0, bucketBalance(t, worker.ID, models.BucketWork))

	// Ancestors book the worker's labor as downline income: 25% at depth 1,
	// 20% at depth 2.
	assert.Equal(t, 30.0, bucketBalance(t, upline1.ID, models.BucketDownline))
	assert.Equal(t, 24.0, bucketBalance(t, upline2.ID, models.BucketDownline))

	// The first descendant generation books 25% as upline income.
	assert.Equal(t, 30.0, bucketBalance(t, downline1.ID, models.BucketUpline))

	// The ledger's level tags drive network reporting.
	var trx models.Transaction
	err = testDB.Where("staff_id = ? AND bucket = ?", upline1.ID, models.BucketDownline).
		First(&trx).Error
	assert.NoError(t, err)
	assert.Equal(t, "L1 Downline Income from comm-worker", trx.Description)

	err = testDB.Where("staff_id = ? AND bucket = ?", downline1.ID, models.BucketUpline).
		First(&trx).Error
	assert.NoError(t, err)
	assert.Equal(t, "L1 Upline Income from comm-worker", trx.Description)
}

func TestDeliveryStagePaysRoleCommission(t *testing.T) {
	if testDB == nil {
		t.Skip("Database not configured")
	}
	defer cleanup()

	orders := NewOrderService(testDB)
	svc := NewCommissionService(testDB, models.DefaultIncomeSettings())

	showroom := seedStaff(t, "role-showroom", models.RoleShowroom, "")
	delivery := seedStaff(t, "role-delivery", models.RoleDelivery, "")

	order, err := orders.CreateOrder(CreateOrderRequest{
		StaffID:      showroom.ID,
		CustomerName: "Role Commission Case",
		Items:        []OrderItemInput{{Type: models.ItemShirt, Rate: 1000, Quantity: 1}},
	})
	assert.NoError(t, err)

	err = svc.DistributeCommission(order.ID, delivery.ID, models.DeptDelivery)
	assert.NoError(t, err)

	// Flat delivery labor.
	assert.Equal(t, 10.0, bucketBalance(t, delivery.ID, models.BucketWork))

	// Booking showroom earns 5% of the order value into performance.
	assert.Equal(t, 50.0, bucketBalance(t, showroom.ID, models.BucketPerformance))
}

func TestGetNetworkTree(t *testing.T) {
	if testDB == nil {
		t.Skip("Database not configured")
	}
	defer cleanup()

	orders := NewOrderService(testDB)
	svc := NewCommissionService(testDB, models.DefaultIncomeSettings())

	root := seedStaff(t, "net-root", models.RoleAgent, "")
	child := seedStaff(t, "net-child", models.RoleShirtMaker, root.ID)
	grandchild := seedStaff(t, "net-grandchild", models.RoleAgent, child.ID)

	showroom := seedStaff(t, "net-showroom", models.RoleShowroom, "")
	order, err := orders.CreateOrder(CreateOrderRequest{
		StaffID:      showroom.ID,
		CustomerName: "Network Case",
		Items:        []OrderItemInput{{Type: models.ItemShirt, Rate: 600, Quantity: 1}},
	})
	assert.NoError(t, err)

	// child works a stitching stage: root books it as level-1 downline
	// income, grandchild as level-1 upline income.
	err = svc.DistributeCommission(order.ID, child.ID, models.DeptStitching)
	assert.NoError(t, err)

	levels, err := svc.GetNetworkTree(root.ID)
	assert.NoError(t, err)
	assert.Len(t, levels, 2)
	assert.Equal(t, 1, levels[0].Level)
	assert.Len(t, levels[0].Members, 1)
	assert.Equal(t, child.ID, levels[0].Members[0].ID)
	assert.Len(t, levels[1].Members, 1)
	assert.Equal(t, grandchild.ID, levels[1].Members[0].ID)

	// Shirt stitching pays 120; level 1 earns root 25% of it. The grandchild
	// has not worked, so level 2 shows no income.
	assert.Equal(t, 30.0, levels[0].Income)
	assert.Equal(t, 0.0, levels[1].Income)

	tree, err := svc.GetNetworkTree(grandchild.ID)
	assert.NoError(t, err)
	assert.Empty(t, tree)
}

func TestCommissionWithoutReferralNetwork(t *testing.T) {
	if testDB == nil {
		t.Skip("Database not configured")
	}
	defer cleanup()

	orders := NewOrderService(testDB)
	svc := NewCommissionService(testDB, models.DefaultIncomeSettings())

	showroom := seedStaff(t, "lone-showroom", models.RoleShowroom, "")
	worker := seedStaff(t, "lone-worker", models.RoleShirtMaker, "")

	order, err := orders.CreateOrder(CreateOrderRequest{
		StaffID:      showroom.ID,
		CustomerName: "Lone Worker Case",
		Items:        []OrderItemInput{{Type: models.ItemShirt, Rate: 800, Quantity: 1}},
	})
	assert.NoError(t, err)

	err = svc.DistributeCommission(order.ID, worker.ID, models.DeptStitching)
	assert.NoError(t, err)

	// No referrer and no downlines: labor is still paid, but not a single
	// upline or downline transaction exists anywhere.
	assert.Equal(t, 120.0, bucketBalance(t, worker.ID, models.BucketWork))

	var count int64
	testDB.Model(&models.Transaction{}).
		Where("bucket IN ?", []models.WalletBucket{models.BucketUpline, models.BucketDownline}).
		Count(&count)
	assert.Equal(t, int64(0), count)
}
