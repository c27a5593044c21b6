package validation

import "testing"

func TestIsValidName(t *testing.T) {
	if IsValidName("") {
		t.Fatalf("empty name must be invalid")
	}
	if !IsValidName("Alice") {
		t.Fatalf("non-empty name must be valid")
	}
}

func TestIsValidDateRequest(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "valid", value: "2024-01-01 10:00:00", want: true},
		{name: "empty", value: "", want: false},
		{name: "date only", value: "2024-01-01", want: false},
		{name: "wrong separator", value: "2024-01-01T10:00:00", want: false},
		{name: "nonexistent day", value: "2024-02-31 10:00:00", want: false},
		{name: "trailing garbage", value: "2024-01-01 10:00:00x", want: false},
		{name: "single digit fields", value: "2024-1-1 1:0:0", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidDateRequest(tt.value); got != tt.want {
				t.Fatalf("IsValidDateRequest(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}
