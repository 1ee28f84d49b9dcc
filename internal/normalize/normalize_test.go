package normalize

import "testing"

func TestName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Alice", want: "alice"},
		{in: "  alice \n", want: "alice"},
		{in: "BOB", want: "bob"},
		{in: "Straße", want: "strasse"},
		{in: "", want: ""},
	}
	for _, tt := range tests {
		if got := Name(tt.in); got != tt.want {
			t.Errorf("Name(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
