package calculator

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestShareOf(t *testing.T) {
	tests := []struct {
		name    string
		total   string
		percent string
		want    string
		wantErr bool
	}{
		{name: "forty percent of rent", total: "2100", percent: "40", want: "840"},
		{name: "even split rounds to cents", total: "75.85", percent: "50", want: "37.93"},
		{name: "whole amount", total: "12.00", percent: "100", want: "12"},
		{name: "one third", total: "10", percent: "33.3333", want: "3.33"},
		{name: "zero percent should error", total: "10", percent: "0", wantErr: true},
		{name: "over one hundred should error", total: "10", percent: "100.01", wantErr: true},
		{name: "non-positive total should error", total: "0", percent: "50", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ShareOf(decimal.RequireFromString(tt.total), decimal.RequireFromString(tt.percent))
			if (err != nil) != tt.wantErr {
				t.Errorf("ShareOf() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("ShareOf() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestValidateShare(t *testing.T) {
	tests := []struct {
		name    string
		total   string
		share   string
		wantErr bool
	}{
		{"share below total", "2100", "840", false},
		{"share equals total", "20", "20", false},
		{"share above total", "20", "20.01", true},
		{"zero share", "20", "0", true},
		{"negative share", "20", "-1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateShare(decimal.RequireFromString(tt.total), decimal.RequireFromString(tt.share))
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateShare() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestReconciles(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"802.08", "802.08", true},
		{"802.08", "802.09", true},
		{"802.08", "802.07", true},
		{"802.08", "802.10", false},
		{"10", "10.011", false},
	}
	for _, tt := range tests {
		got := Reconciles(decimal.RequireFromString(tt.a), decimal.RequireFromString(tt.b))
		if got != tt.want {
			t.Errorf("Reconciles(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
