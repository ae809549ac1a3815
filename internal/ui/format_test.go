package ui

import "testing"

func strptr(s string) *string { return &s }

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name  string
		value *string
		want  string
	}{
		{name: "nil", value: nil, want: "-"},
		{name: "empty", value: strptr(""), want: "-"},
		{name: "rfc3339 with millis", value: strptr("2024-03-09T18:25:43.511Z"), want: "09/03/24"},
		{name: "rfc3339 with offset", value: strptr("2023-12-01T08:00:00+02:00"), want: "01/12/23"},
		{name: "no zone", value: strptr("2024-01-15T10:30:00"), want: "15/01/24"},
		{name: "date only", value: strptr("2024-07-04"), want: "04/07/24"},
		{name: "garbage", value: strptr("not-a-date"), want: "-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatDate(tt.value); got != tt.want {
				t.Errorf("formatDate(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestFormatPayer(t *testing.T) {
	tests := []struct {
		name  string
		value *string
		want  string
	}{
		{name: "nil", value: nil, want: "Unknown payer"},
		{name: "empty", value: strptr(""), want: "Unknown payer"},
		{name: "long id truncated", value: strptr("a1b2c3d4-e5f6"), want: "Paid by a1b2c3…"},
		{name: "short id kept whole", value: strptr("abc"), want: "Paid by abc…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatPayer(tt.value); got != tt.want {
				t.Errorf("formatPayer(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}
