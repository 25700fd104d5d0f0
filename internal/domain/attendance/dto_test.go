package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func f64(v float64) *float64 { return &v }
func str(s string) *string   { return &s }

func TestCheckInRequestValidate(t *testing.T) {
	assert.NoError(t, (&CheckInRequest{}).Validate())
	assert.NoError(t, (&CheckInRequest{Latitude: f64(10.76), Longitude: f64(106.66)}).Validate())

	assert.Error(t, (&CheckInRequest{Latitude: f64(10.76)}).Validate(), "latitude without longitude")
	assert.Error(t, (&CheckInRequest{Latitude: f64(91), Longitude: f64(106.66)}).Validate())
	assert.Error(t, (&CheckInRequest{Latitude: f64(10.76), Longitude: f64(-181)}).Validate())
}

func TestAdminUpdateRequestValidate(t *testing.T) {
	assert.NoError(t, (&AdminUpdateRequest{}).Validate())
	assert.NoError(t, (&AdminUpdateRequest{
		CheckIn:  str("2025-05-05 08:10:00"),
		CheckOut: str("2025-05-05 17:00:00"),
		Status:   str("late"),
	}).Validate())

	assert.Error(t, (&AdminUpdateRequest{CheckIn: str("08:10")}).Validate())
	assert.Error(t, (&AdminUpdateRequest{CheckOut: str("2025-05-05T17:00:00Z")}).Validate())
	assert.Error(t, (&AdminUpdateRequest{Status: str("vacation")}).Validate())
}

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusPresent, StatusLate, StatusAbsent, StatusOnLeave} {
		assert.True(t, s.Valid())
	}
	assert.False(t, Status("holiday").Valid())
	assert.False(t, Status("").Valid())
}
