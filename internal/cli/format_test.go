package cli

import (
	"testing"
	"time"
)

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{45.5, "$45.50"},
		{999.99, "$999.99"},
		{1000, "$1,000"},
		{1234567.89, "$1,234,568"},
		{-2500, "-$2,500"},
	}
	for _, tc := range cases {
		if got := FormatMoney(tc.in); got != tc.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-45000, "-45,000"},
	}
	for _, tc := range cases {
		if got := FormatNumber(tc.in); got != tc.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(45.25); got != "45.2%" {
		t.Errorf("FormatPercent(45.25) = %q", got)
	}
	if got := FormatPercent(0); got != "0.0%" {
		t.Errorf("FormatPercent(0) = %q", got)
	}
}

func TestFormatDays(t *testing.T) {
	if got := FormatDays(92); got != "92d left" {
		t.Errorf("FormatDays(92) = %q", got)
	}
	if got := FormatDays(-31); got != "ended 31d ago" {
		t.Errorf("FormatDays(-31) = %q", got)
	}
	if got := FormatDays(0); got != "0d left" {
		t.Errorf("FormatDays(0) = %q", got)
	}
}

func TestFormatDelta(t *testing.T) {
	if got := FormatDelta(1500, 1000); got != "+$500.00" {
		t.Errorf("FormatDelta(1500, 1000) = %q", got)
	}
	if got := FormatDelta(1000, 3500); got != "-$2,500" {
		t.Errorf("FormatDelta(1000, 3500) = %q", got)
	}
}

func TestFormatDateAndMonth(t *testing.T) {
	d := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	if got := FormatDate(d); got != "2026-06-01" {
		t.Errorf("FormatDate = %q", got)
	}
	if got := FormatMonth(d); got != "Jun 26" {
		t.Errorf("FormatMonth = %q", got)
	}
}

func TestRenderSparkline(t *testing.T) {
	if got := RenderSparkline(nil); got != "" {
		t.Errorf("empty input produced %q", got)
	}
	got := RenderSparkline([]float64{0, 50, 100})
	if len([]rune(got)) != 3 {
		t.Errorf("sparkline length = %d, want 3", len([]rune(got)))
	}
	runes := []rune(got)
	if runes[0] != '▁' || runes[2] != '█' {
		t.Errorf("sparkline endpoints = %q", got)
	}
}
