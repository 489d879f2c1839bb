package sanitizer

import "testing"

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "valid E.164 format",
			input: "+84912345678",
			want:  "+84912345678",
		},
		{
			name:  "local mobile with leading zero",
			input: "0912345678",
			want:  "+84912345678",
		},
		{
			name:  "with spaces",
			input: "0912 345 678",
			want:  "+84912345678",
		},
		{
			name:  "with dashes",
			input: "091-234-5678",
			want:  "+84912345678",
		},
		{
			name:  "leading and trailing spaces",
			input: "  +84912345678  ",
			want:  "+84912345678",
		},
		{
			name:  "US number for travelling guest",
			input: "+1 (212) 555-0123",
			want:  "+12125550123",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "only whitespace",
			input: "   ",
			want:  "",
		},
		{
			name:  "not a phone number",
			input: "call me maybe",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizePhone(tt.input)
			if got != tt.want {
				t.Errorf("NormalizePhone(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizePhoneIdempotent(t *testing.T) {
	once := NormalizePhone("0912345678")
	twice := NormalizePhone(once)
	if once != twice {
		t.Errorf("not idempotent: first %q, second %q", once, twice)
	}
}

func TestCollapseWhitespace(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "already clean",
			input: "Trần Văn An",
			want:  "Trần Văn An",
		},
		{
			name:  "interior runs",
			input: "Trần   Văn \t An",
			want:  "Trần Văn An",
		},
		{
			name:  "leading and trailing",
			input: "  Nguyễn Thị Hoa  ",
			want:  "Nguyễn Thị Hoa",
		},
		{
			name:  "newlines in notes",
			input: "late checkin\nneed parking",
			want:  "late checkin need parking",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
		{
			name:  "whitespace only",
			input: " \t\n ",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CollapseWhitespace(tt.input)
			if got != tt.want {
				t.Errorf("CollapseWhitespace(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
