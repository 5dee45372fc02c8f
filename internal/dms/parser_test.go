package dms

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		hemisphere Hemisphere
		expected   float64
	}{
		{name: "east longitude", text: `123°45'6"`, hemisphere: East, expected: 123 + 45.0/60 + 6.0/3600},
		{name: "south flips sign", text: `10°0'0"`, hemisphere: South, expected: -10},
		{name: "west flips sign", text: `30°30'30"`, hemisphere: West, expected: -(30 + 30.0/60 + 30.0/3600)},
		{name: "north keeps sign", text: `39°54'27"`, hemisphere: North, expected: 39.9075},
		{name: "fractional seconds", text: `116°23'29.5"`, hemisphere: East, expected: 116 + 23.0/60 + 29.5/3600},
		{name: "unicode primes", text: `116°23′29″`, hemisphere: East, expected: 116 + 23.0/60 + 29.0/3600},
		{name: "interior and outer whitespace", text: "  116° 23' 29\"\t", hemisphere: East, expected: 116 + 23.0/60 + 29.0/3600},
		{name: "trailing text ignored", text: `45°0'45"E extra`, hemisphere: North, expected: 45 + 45.0/3600},
		{name: "out of range not rejected", text: `200°0'0"`, hemisphere: East, expected: 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Parse(tt.text, tt.hemisphere)
			require.NoError(t, err)
			assert.True(t, result.Valid)
			assert.InDelta(t, tt.expected, result.Degrees, 1e-9)
		})
	}
}

func TestParse_Blank(t *testing.T) {
	for _, text := range []string{"", "   ", "\t\n"} {
		for _, h := range []Hemisphere{North, South, East, West} {
			result, err := Parse(text, h)
			require.NoError(t, err)
			assert.False(t, result.Valid)
			assert.Nil(t, result.Value())
		}
	}
}

func TestParse_FormatErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
		norm string
	}{
		{name: "no glyphs", text: "123 45 6", norm: "123456"},
		{name: "missing degree sign", text: `123'45"`, norm: `123'45"`},
		{name: "missing minute mark", text: `123°45 6"`, norm: `123°456"`},
		{name: "missing second mark", text: `123°45'6`, norm: `123°45'6`},
		{name: "letters for digits", text: `1a°45'6"`, norm: `1a°45'6"`},
		{name: "decimal minutes", text: `123°45.5'6"`, norm: `123°45.5'6"`},
		{name: "leading garbage", text: `x123°45'6"`, norm: `x123°45'6"`},
		{name: "negative degrees", text: `-10°0'0"`, norm: `-10°0'0"`},
		{name: "full-width digits", text: `１２３°45'6"`, norm: `１２３°45'6"`},
		{name: "degrees overflow float64", text: strings.Repeat("9", 400) + `°0'0"`, norm: strings.Repeat("9", 400) + `°0'0"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.text, East)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrFormat)

			var fe *FormatError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, tt.norm, fe.Text)
		})
	}
}

func TestParseStrict(t *testing.T) {
	result, err := ParseStrict(`116°23'29"`, East)
	require.NoError(t, err)
	assert.InDelta(t, 116.391389, result.Degrees, 1e-6)

	_, err = ParseStrict(`116°23'29"E`, East)
	assert.ErrorIs(t, err, ErrFormat)

	result, err = ParseStrict(" ", East)
	require.NoError(t, err)
	assert.False(t, result.Valid)
}

func TestParse_InvalidHemisphere(t *testing.T) {
	_, err := Parse(`10°0'0"`, Hemisphere('X'))
	assert.ErrorIs(t, err, ErrHemisphere)
}

func TestParse_RoundTrip(t *testing.T) {
	for deg := 0; deg <= 179; deg += 7 {
		for min := 0; min <= 59; min += 13 {
			for _, sec := range []float64{0, 0.001, 12.5, 30, 45.25, 59.999} {
				want := float64(deg) + float64(min)/60 + sec/3600
				got, err := Parse(Format(deg, min, sec), East)
				require.NoError(t, err)
				assert.InDelta(t, want, got.Degrees, 1e-9, Format(deg, min, sec))
			}
		}
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, `45°0'45"`, Format(45, 0, 45))
	assert.Equal(t, `116°23'29.5"`, Format(116, 23, 29.5))
}

func TestParseHemisphere(t *testing.T) {
	tests := []struct {
		in       string
		expected Hemisphere
		negative bool
		latitude bool
	}{
		{"N", North, false, true},
		{"s", South, true, true},
		{" e ", East, false, false},
		{"W", West, true, false},
	}
	for _, tt := range tests {
		h, err := ParseHemisphere(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, h)
		assert.Equal(t, tt.negative, h.Negative())
		assert.Equal(t, tt.latitude, h.IsLatitude())
		assert.Equal(t, string(tt.expected), h.String())
	}

	for _, bad := range []string{"", "X", "NE", "north"} {
		_, err := ParseHemisphere(bad)
		assert.ErrorIs(t, err, ErrHemisphere, bad)
	}
}
