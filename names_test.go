package colorpick

import "testing"

func TestName(t *testing.T) {
	tests := []struct {
		name string
		c    RGB
		want string
	}{
		{"exact red", RGB{255, 0, 0}, "red"},
		{"near red", RGB{254, 0, 0}, "red"},
		{"black", RGB{0, 0, 0}, "black"},
		{"white", RGB{255, 255, 255}, "white"},
		{"aqua before cyan", RGB{0, 255, 255}, "aqua"},
		{"gray before grey", RGB{128, 128, 128}, "gray"},
		{"near navy", RGB{0, 0, 130}, "navy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Name(tt.c); got != tt.want {
				t.Errorf("Name(%v) = %q, want %q", tt.c, got, tt.want)
			}
		})
	}
}

func TestName_NeverEmpty(t *testing.T) {
	for _, p := range Presets {
		if Name(HexToRGB(p.Hex)) == "" {
			t.Errorf("Name(%s) is empty", p.Hex)
		}
	}
}
