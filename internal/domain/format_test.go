package domain

import "testing"

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{-1, "?"},
		{0, "0 B"},
		{512, "512 B"},
		{1023, "1023 B"},
		{1024, "1.00 KiB"},
		{1536, "1.50 KiB"},
		{2621440, "2.50 MiB"},
		{1 << 30, "1.00 GiB"},
		{1 << 40, "1.00 TiB"},
		{(1 << 40) * 2048, "2048.00 TiB"}, // no unit above TiB
	}

	for _, tt := range tests {
		if got := FormatBytes(tt.in); got != tt.want {
			t.Errorf("FormatBytes(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatETA(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "00:00"},
		{-5, "00:00"},
		{59, "00:59"},
		{125, "02:05"},
		{3661, "61:01"}, // minutes keep counting, no hour field
	}

	for _, tt := range tests {
		if got := FormatETA(tt.in); got != tt.want {
			t.Errorf("FormatETA(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0:00"},
		{59, "0:59"},
		{61, "1:01"},
		{600, "10:00"},
		{3599, "59:59"},
		{3600, "1:00:00"},
		{3661, "1:01:01"},
		{7322, "2:02:02"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.in); got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStatusTerminal(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusDownloading, StatusProcessing} {
		if s.Terminal() {
			t.Errorf("%s should not be terminal", s)
		}
	}
	for _, s := range []Status{StatusDone, StatusError} {
		if !s.Terminal() {
			t.Errorf("%s should be terminal", s)
		}
	}
}
