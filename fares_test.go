package caltrain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFarePrice(t *testing.T) {
	tests := []struct {
		in      string
		want    Fare
		wantErr bool
	}{
		{in: "7.75", want: 775},
		{in: "3.75", want: 375},
		{in: "5.00", want: 500},
		{in: "5", want: 500},
		{in: "5.5", want: 550},
		{in: "0.00", want: 0},
		{in: "", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "-1.00", wantErr: true},
	}
	for _, tt := range tests {
		got, err := parseFarePrice(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestFareString(t *testing.T) {
	assert.Equal(t, "$7.75", Fare(775).String())
	assert.Equal(t, "$0.05", Fare(5).String())
	assert.Equal(t, "$12.00", Fare(1200).String())
}

func TestFareSymmetricFallback(t *testing.T) {
	ct := loadTestSchedule(t)

	// Only (1, 3) is published; the reverse direction assumes the same
	// fare.
	ab, err := ct.FareBetween("sunnyvale", "sf")
	require.NoError(t, err)
	ba, err := ct.FareBetween("sf", "sunnyvale")
	require.NoError(t, err)
	assert.Equal(t, ab, ba)
	assert.Equal(t, Fare(775), ab)
}

func TestFareAsymmetricOverride(t *testing.T) {
	ct := loadTestSchedule(t)

	// Both directions between zones 2 and 4 are published explicitly and
	// differ.
	out, err := ct.FareBetween("hillsdale", "diridon")
	require.NoError(t, err)
	back, err := ct.FareBetween("diridon", "hillsdale")
	require.NoError(t, err)
	assert.Equal(t, Fare(500), out)
	assert.Equal(t, Fare(625), back)
}

func TestFareSameZone(t *testing.T) {
	ct := loadTestSchedule(t)

	fare, err := ct.FareBetween("sf", "22nd")
	require.NoError(t, err)
	assert.Equal(t, Fare(375), fare)
}

func TestFareNotFound(t *testing.T) {
	ct := loadTestSchedule(t)

	// No rule exists between zones 3 and 2 in either direction.
	_, err := ct.FareBetween("sunnyvale", "hillsdale")
	var notFound *FareNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "3", notFound.OriginZone)
	assert.Equal(t, "2", notFound.DestinationZone)
}
