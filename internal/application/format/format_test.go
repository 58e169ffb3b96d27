package format

import (
	"strings"
	"testing"
	"time"
)

func TestShortenAddress(t *testing.T) {
	tests := []struct {
		name       string
		address    string
		startChars int
		endChars   int
		want       string
	}{
		{
			name:       "long address abbreviated",
			address:    "0x1234567890abcdef",
			startChars: 4,
			endChars:   4,
			want:       "0x12...cdef",
		},
		{
			name:       "short address unchanged",
			address:    "0xabc",
			startChars: 4,
			endChars:   4,
			want:       "0xabc",
		},
		{
			name:       "boundary length unchanged",
			address:    "12345678",
			startChars: 4,
			endChars:   4,
			want:       "12345678",
		},
		{
			name:       "defaults applied",
			address:    "0x1234567890abcdef",
			startChars: 0,
			endChars:   0,
			want:       "0x12...cdef",
		},
		{
			name:       "end defaults to start",
			address:    "0x1234567890abcdef",
			startChars: 6,
			endChars:   0,
			want:       "0x1234...abcdef",
		},
		{
			name:       "asymmetric",
			address:    "0x1234567890abcdef",
			startChars: 2,
			endChars:   3,
			want:       "0x...def",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ShortenAddress(tt.address, tt.startChars, tt.endChars)
			if got != tt.want {
				t.Errorf("ShortenAddress(%q, %d, %d) = %q, want %q",
					tt.address, tt.startChars, tt.endChars, got, tt.want)
			}
		})
	}
}

func TestCalculateDuration(t *testing.T) {
	base := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	iso := func(t time.Time) string { return t.Format(time.RFC3339) }

	tests := []struct {
		name  string
		start string
		end   string
		want  string
	}{
		{name: "thirty seconds", start: iso(base), end: iso(base.Add(30 * time.Second)), want: "30 seconds"},
		{name: "one second", start: iso(base), end: iso(base.Add(time.Second)), want: "1 second"},
		{name: "ninety seconds rounds to one minute", start: iso(base), end: iso(base.Add(90 * time.Second)), want: "1 minute"},
		{name: "five minutes", start: iso(base), end: iso(base.Add(5 * time.Minute)), want: "5 minutes"},
		{name: "one hour", start: iso(base), end: iso(base.Add(61 * time.Minute)), want: "1 hour"},
		{name: "two hours", start: iso(base), end: iso(base.Add(2*time.Hour + 10*time.Minute)), want: "2 hours"},
		{name: "invalid start", start: "not-a-date", end: iso(base), want: InvalidDate},
		{name: "invalid end", start: iso(base), end: "also-not-a-date", want: InvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateDuration(tt.start, tt.end)
			if got != tt.want {
				t.Errorf("CalculateDuration(%q, %q) = %q, want %q", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestFormatCurrency(t *testing.T) {
	got := FormatCurrency(1500.5, "", "")
	if got == "" {
		t.Fatal("FormatCurrency returned empty string")
	}
	if !strings.Contains(got, "500") {
		t.Errorf("FormatCurrency(1500.5) = %q, want the value rendered", got)
	}

	usd := FormatCurrency(42, "USD", "en-US")
	if usd == "" || !strings.Contains(usd, "42") {
		t.Errorf("FormatCurrency(42, USD, en-US) = %q, want the value rendered", usd)
	}
}
