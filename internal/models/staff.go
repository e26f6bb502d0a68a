package models

import (
	"time"
)

// Role values match the customer-facing labels used across the app.
type Role string

const (
	RoleAdmin       Role = "Admin"
	RoleShowroom    Role = "Showroom"
	RoleMeasurement Role = "Measurement Master"
	RoleCutting     Role = "Cutting Master"
	RoleShirtMaker  Role = "Shirt Maker"
	RolePantMaker   Role = "Pant Maker"
	RoleCoatMaker   Role = "Coat Maker"
	RoleSafariMaker Role = "Safari Maker"
	RoleKajButton   Role = "Kaj Button"
	RolePress       Role = "Press Master"
	RoleDelivery    Role = "Delivery Boy"
	RoleMaterial    Role = "Material Manager"
	RoleManager     Role = "Manager"
	RoleAgent       Role = "Agent"
	RoleCustomer    Role = "Customer"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleShowroom, RoleMeasurement, RoleCutting,
		RoleShirtMaker, RolePantMaker, RoleCoatMaker, RoleSafariMaker,
		RoleKajButton, RolePress, RoleDelivery, RoleMaterial,
		RoleManager, RoleAgent, RoleCustomer:
		return true
	}
	return false
}

type StaffProfile struct {
	ID           string    `gorm:"primaryKey;size:40" json:"id"`
	Name         string    `gorm:"column:name;size:255;not null" json:"name"`
	Role         Role      `gorm:"column:role;size:50;not null;index" json:"role"`
	Mobile       string    `gorm:"column:mobile;size:20" json:"mobile"`
	Email        string    `gorm:"column:email;size:255" json:"email"`
	Address      string    `gorm:"column:address;size:255" json:"address"`
	Password     string    `gorm:"column:password;size:255" json:"-"`
	TPassword    string    `gorm:"column:t_password;size:255" json:"-"`
	ReferralCode string    `gorm:"column:referral_code;size:20;uniqueIndex" json:"referral_code"`
	ReferredBy   string    `gorm:"column:referred_by;size:40;index" json:"referred_by"`
	IsActive     bool      `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (StaffProfile) TableName() string {
	return "staff_profiles"
}
