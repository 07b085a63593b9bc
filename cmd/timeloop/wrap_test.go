package main

import (
	"reflect"
	"testing"
)

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  []string
	}{
		{"ascii", "abcdef", 4, []string{"abcd", "ef"}},
		{"cjk counts double", "九月二十七日", 6, []string{"九月二", "十七日"}},
		{"odd width", "九月二", 5, []string{"九月", "二"}},
		{"newline", "ab\ncd", 10, []string{"ab", "cd"}},
		{"empty", "", 10, []string{""}},
		{"zero width", "abc", 0, nil},
	}
	for _, tt := range tests {
		if got := wrapText(tt.in, tt.width); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%s: expected %q, got %q", tt.name, tt.want, got)
		}
	}
}

func TestCenterX(t *testing.T) {
	if got := centerX("游戏暂停", 20); got != 6 {
		t.Errorf("Expected 6, got %d", got)
	}
	if got := centerX("too wide for this", 4); got != 0 {
		t.Errorf("Expected clamp to 0, got %d", got)
	}
}
