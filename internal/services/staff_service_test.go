package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tailor-service/internal/models"
)

func TestCreateStaffWithReferral(t *testing.T) {
	if testDB == nil {
		t.Skip("Database not configured")
	}
	defer cleanup()

	svc := NewStaffService(testDB)

	referrer := seedStaff(t, "referrer", models.RoleAgent, "")

	staff, err := svc.CreateStaff(CreateStaffRequest{
		Name:         "New Tailor",
		Role:         models.RoleShirtMaker,
		Mobile:       "9876500010",
		Password:     "secret",
		TPassword:    "tsecret",
		ReferralCode: referrer.ReferralCode,
	})
	assert.NoError(t, err)
	assert.Equal(t, referrer.ID, staff.ReferredBy)
	assert.NotEmpty(t, staff.ReferralCode)
	assert.True(t, staff.IsActive)

	// Onboarding opens an empty wallet.
	wallet, err := findWallet(testDB, staff.ID)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, wallet.MainBalance)

	downlines, err := svc.DirectDownlines(referrer.ID)
	assert.NoError(t, err)
	assert.Len(t, downlines, 1)
	assert.Equal(t, staff.ID, downlines[0].ID)
}

func TestCreateStaffValidation(t *testing.T) {
	if testDB == nil {
		t.Skip("Database not configured")
	}
	defer cleanup()

	svc := NewStaffService(testDB)

	_, err := svc.CreateStaff(CreateStaffRequest{
		Name:     "Bad Role",
		Role:     models.Role("Janitor"),
		Mobile:   "9876500011",
		Password: "secret",
	})
	assert.Error(t, err)

	_, err = svc.CreateStaff(CreateStaffRequest{
		Name:         "Bad Referral",
		Role:         models.RolePress,
		Mobile:       "9876500012",
		Password:     "secret",
		ReferralCode: "NOSUCH",
	})
	assert.Error(t, err)
}

func TestLogin(t *testing.T) {
	if testDB == nil {
		t.Skip("Database not configured")
	}
	defer cleanup()

	svc := NewStaffService(testDB)
	staff := seedStaff(t, "login-user", models.RoleShowroom, "")

	got, err := svc.Login(staff.Mobile, "secret")
	assert.NoError(t, err)
	assert.Equal(t, staff.ID, got.ID)

	_, err = svc.Login(staff.Mobile, "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredential)

	// Deactivated members cannot log in.
	assert.NoError(t, svc.DeactivateStaff(staff.ID))
	_, err = svc.Login(staff.Mobile, "secret")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateStaff(t *testing.T) {
	if testDB == nil {
		t.Skip("Database not configured")
	}
	defer cleanup()

	svc := NewStaffService(testDB)
	staff := seedStaff(t, "update-user", models.RoleCutting, "")

	updated, err := svc.UpdateStaff(staff.ID, UpdateStaffRequest{
		Name:    "Updated Name",
		Address: "New Street 5",
	})
	assert.NoError(t, err)
	assert.Equal(t, "Updated Name", updated.Name)
	assert.Equal(t, "New Street 5", updated.Address)

	// Untouched fields survive.
	assert.Equal(t, staff.Mobile, updated.Mobile)
}
