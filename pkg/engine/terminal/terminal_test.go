package terminal

import "testing"

func TestVisibleLen(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"BUSTED", 6},
		{"Wählen", 6},
		{"¡Sí!", 4},
		{"日本", 4},
	}
	for _, tt := range tests {
		if got := VisibleLen(tt.in); got != tt.want {
			t.Errorf("VisibleLen(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("MISSION PASSED", 7); got != "MISSION" {
		t.Errorf("Truncate = %q, want %q", got, "MISSION")
	}
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Truncate = %q, want %q", got, "short")
	}
	if got := Truncate("日本語", 5); got != "日本" {
		t.Errorf("Truncate = %q, want %q", got, "日本")
	}
	if got := Truncate("anything", 0); got != "" {
		t.Errorf("Truncate(width 0) = %q, want empty", got)
	}
}

func TestColumns(t *testing.T) {
	if got := CenterColumn(40, 10); got != 35 {
		t.Errorf("CenterColumn(40, 10) = %d, want 35", got)
	}
	if got := CenterColumn(2, 10); got != 0 {
		t.Errorf("CenterColumn(2, 10) = %d, want 0", got)
	}
	if got := RightColumn(79, 9); got != 70 {
		t.Errorf("RightColumn(79, 9) = %d, want 70", got)
	}
	if got := RightColumn(3, 9); got != 0 {
		t.Errorf("RightColumn(3, 9) = %d, want 0", got)
	}
	if got := PadLeft(3); got != "   " {
		t.Errorf("PadLeft(3) = %q, want 3 spaces", got)
	}
}
