package clock

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		hours   int
		minutes int
		wantErr bool
	}{
		{
			name:    "zero padded",
			input:   "09:15",
			hours:   9,
			minutes: 15,
		},
		{
			name:    "unpadded hour and minute",
			input:   "9:5",
			hours:   9,
			minutes: 5,
		},
		{
			name:    "noon",
			input:   "12:00",
			hours:   12,
			minutes: 0,
		},
		{
			name:    "midnight maps to twelve",
			input:   "00:15",
			hours:   12,
			minutes: 15,
		},
		{
			name:    "24-hour input reduced onto the dial",
			input:   "15:30",
			hours:   3,
			minutes: 30,
		},
		{
			name:    "surrounding whitespace",
			input:   "  3:45 ",
			hours:   3,
			minutes: 45,
		},
		{
			name:    "missing colon",
			input:   "0915",
			wantErr: true,
		},
		{
			name:    "minute out of range",
			input:   "9:60",
			wantErr: true,
		},
		{
			name:    "hour out of range",
			input:   "25:00",
			wantErr: true,
		},
		{
			name:    "non-numeric",
			input:   "nine:five",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "negative hour",
			input:   "-3:00",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hours, minutes, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) expected error, got %d:%d", tt.input, hours, minutes)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if hours != tt.hours || minutes != tt.minutes {
				t.Errorf("Parse(%q) = %d:%d, want %d:%d", tt.input, hours, minutes, tt.hours, tt.minutes)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"9:5", "09:05"},
		{"09:05", "09:05"},
		{"12:00", "12:00"},
		{"00:00", "12:00"},
		{"3:45", "03:45"},
		{"15:30", "03:30"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := Normalize(tt.input)
			if err != nil {
				t.Fatalf("Normalize(%q) unexpected error: %v", tt.input, err)
			}
			if result != tt.expected {
				t.Errorf("Normalize(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name      string
		submitted string
		expected  string
		want      bool
	}{
		{
			name:      "exact match",
			submitted: "03:00",
			expected:  "03:00",
			want:      true,
		},
		{
			name:      "unpadded submission matches padded answer",
			submitted: "9:5",
			expected:  "09:05",
			want:      true,
		},
		{
			name:      "midnight matches noon position",
			submitted: "00:15",
			expected:  "12:15",
			want:      true,
		},
		{
			name:      "wrong minute",
			submitted: "09:10",
			expected:  "09:05",
			want:      false,
		},
		{
			name:      "wrong hour",
			submitted: "10:05",
			expected:  "09:05",
			want:      false,
		},
		{
			name:      "garbage never matches",
			submitted: "not a time",
			expected:  "09:05",
			want:      false,
		},
		{
			name:      "garbage expected never matches",
			submitted: "09:05",
			expected:  "",
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Evaluate(tt.submitted, tt.expected)
			if result != tt.want {
				t.Errorf("Evaluate(%q, %q) = %v, want %v", tt.submitted, tt.expected, result, tt.want)
			}
		})
	}
}
