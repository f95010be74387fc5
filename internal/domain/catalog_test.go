package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		code     int
		expected string
	}{
		{0, "unknown"},
		{1000, "clear"},
		{1100, "mostly clear"},
		{1101, "partly cloudy"},
		{1102, "mostly cloudy"},
		{1001, "cloudy"},
		{2000, "foggy"},
		{2100, "lightly foggy"},
		{4000, "drizzling"},
		{4001, "raining"},
		{4200, "light raining"},
		{4201, "heavy raining"},
		{5000, "snowing"},
		{5001, "flurrying"},
		{5100, "light snowing"},
		{5101, "heavy snowing"},
		{6000, "freezing drizzle"},
		{6001, "freezing raining"},
		{6200, "light freezing raining"},
		{6201, "heavy freezing raining"},
		{7000, "ice pelleting"},
		{7101, "heavy ice pelleting"},
		{7102, "light ice pelleting"},
		{8000, "thunderstorming"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, Describe(tt.code))
		})
	}

	t.Run("unknown codes fall back", func(t *testing.T) {
		assert.Equal(t, "unknown", Describe(999999))
		assert.Equal(t, "unknown", Describe(-1))
		assert.Equal(t, "unknown", Describe(4202))
	})
}

func TestConditionEmoji(t *testing.T) {
	tests := []struct {
		name     string
		codes    []int
		expected string
	}{
		{"clear sun", []int{1000, 1100}, "☀️"},
		{"partly cloudy", []int{1101}, "🌤️"},
		{"mostly cloudy", []int{1102}, "⛅"},
		{"overcast", []int{1001}, "☁️"},
		{"fog", []int{2000, 2100}, "🌫️"},
		{"rain", []int{4000, 4001, 4200, 4201}, "🌧️"},
		{"snow", []int{5000, 5001, 5100, 5101}, "❄️"},
		{"wintry mix", []int{6000, 6001, 6200, 6201, 7000, 7101, 7102}, "🌨️"},
		{"storm", []int{8000}, "⛈️"},
		{"fallback", []int{0, 999999, -5}, "🤷"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, code := range tt.codes {
				assert.Equal(t, tt.expected, ConditionEmoji(code), "code %d", code)
			}
		})
	}
}

// Every cataloged code must have a glyph and vice versa, so the two tables
// cannot drift apart when codes are added.
func TestCatalogTablesAligned(t *testing.T) {
	for code := range conditionDescriptions {
		_, ok := conditionGlyphs[code]
		assert.True(t, ok, "code %d has a description but no glyph", code)
	}
	for code := range conditionGlyphs {
		_, ok := conditionDescriptions[code]
		assert.True(t, ok, "code %d has a glyph but no description", code)
	}
}
