package common

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerators(t *testing.T) {
	assert.Len(t, GenerateTrxNo(), 7)
	assert.Len(t, GenerateReferralCode(), 5)

	orderNo := GenerateOrderNo()
	assert.True(t, strings.HasPrefix(orderNo, "ORD-"))
	assert.Len(t, orderNo, 10)

	billNo := GenerateBillNo()
	assert.True(t, strings.HasPrefix(billNo, "BILL-"))
	assert.Len(t, billNo, 11)
}

func TestToday(t *testing.T) {
	got, err := time.Parse("2006-01-02", Today())
	assert.NoError(t, err)
	assert.WithinDuration(t, time.Now(), got, 48*time.Hour)
}

func TestPaginateResponse(t *testing.T) {
	res := PaginateResponse([]int{1, 2, 3}, 25, 2, 10, "")

	assert.Equal(t, "success", res.Message)
	assert.Equal(t, int64(25), res.Count)
	assert.Equal(t, 2, res.CurrentPage)
	assert.Equal(t, 3, res.NextPage)
	assert.Equal(t, 1, res.PrevPage)
	assert.Equal(t, 3, res.LastPage)

	// First page has no previous page, last page has no next.
	first := PaginateResponse(nil, 25, 1, 10, "x")
	assert.Equal(t, 0, first.PrevPage)
	last := PaginateResponse(nil, 25, 3, 10, "x")
	assert.Equal(t, 0, last.NextPage)
}
