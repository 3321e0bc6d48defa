package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/srgjo27/catering_booking/internal/core/domain"
)

func TestTravelFee_KnownAreas(t *testing.T) {
	tests := []struct {
		code string
		area string
		fee  int64
	}{
		{"7600", "Stellenbosch", 0},
		{" 7600 ", "Stellenbosch", 0},
		{"7690", "Franschhoek", 450},
		{"7530", "Bellville", 750},
		{"8001", "Cape Town", 950},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			fee, ok := domain.TravelFee(tt.code)
			assert.True(t, ok)
			assert.Equal(t, tt.fee, fee)

			area, ok := domain.AreaNameByPostalCode(tt.code)
			assert.True(t, ok)
			assert.Equal(t, tt.area, area)
		})
	}
}

func TestTravelFee_UnknownCodes(t *testing.T) {
	for _, code := range []string{"", "0000", "7601", "760", "76000", "abcd", "8002"} {
		_, ok := domain.TravelFee(code)
		assert.False(t, ok, code)

		_, ok = domain.AreaNameByPostalCode(code)
		assert.False(t, ok, code)
	}
}

func TestTravelAreas_ReturnsCopy(t *testing.T) {
	areas := domain.TravelAreas()
	areas[0].PostalCodes[0] = "9999"
	areas[0].Fee = 1

	fee, ok := domain.TravelFee("7600")
	assert.True(t, ok)
	assert.Equal(t, int64(0), fee)
	assert.Equal(t, "7600", domain.TravelAreas()[0].PostalCodes[0])
}
