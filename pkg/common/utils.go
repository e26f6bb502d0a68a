package common

import (
	"math/rand"
	"time"
)

const trxCharacters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func randomToken(length int) string {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	result := make([]byte, length)
	for i := range result {
		result[i] = trxCharacters[r.Intn(len(trxCharacters))]
	}
	return string(result)
}

// GenerateTrxNo returns a 7-character transaction reference.
func GenerateTrxNo() string {
	return randomToken(7)
}

// GenerateOrderNo returns an order id like ORD-K2X9A1.
func GenerateOrderNo() string {
	return "ORD-" + randomToken(6)
}

// GenerateBillNo returns a customer-facing bill number like BILL-7G2K4X.
func GenerateBillNo() string {
	return "BILL-" + randomToken(6)
}

// GenerateReferralCode returns a short code for the referral network.
func GenerateReferralCode() string {
	return randomToken(5)
}

// Today returns the current date as YYYY-MM-DD, the format order and
// transaction dates are displayed in.
func Today() string {
	return time.Now().Format("2006-01-02")
}
