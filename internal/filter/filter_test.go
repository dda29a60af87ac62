package filter

import (
	"testing"

	"github.com/Makepad-fr/todo/internal/model"
)

func TestMatch(t *testing.T) {
	items := []model.Item{
		{Text: "buy milk", Done: true},
		{Text: "walk dog"},
		{Text: "buy bread"},
	}
	tests := []struct {
		expr string
		want []int
	}{
		{"", []int{0, 1, 2}},
		{"   ", []int{0, 1, 2}},
		{"done", []int{0}},
		{"!done", []int{1, 2}},
		{`text contains "buy"`, []int{0, 2}},
		{`text startsWith "walk" || index == 0`, []int{0, 1}},
		{"index >= 1 && not done", []int{1, 2}},
		{`len(text) > 8`, []int{2}},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			f, err := Compile(tt.expr)
			if err != nil {
				t.Fatalf("Compile(%q): %v", tt.expr, err)
			}
			var got []int
			for i, it := range items {
				ok, err := f.Match(i, it)
				if err != nil {
					t.Fatalf("Match: %v", err)
				}
				if ok {
					got = append(got, i)
				}
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestCompileErrors(t *testing.T) {
	for _, expr := range []string{
		"text",          // not a boolean
		"owner == \"x\"", // unknown variable
		"done &&",       // syntax
	} {
		if _, err := Compile(expr); err == nil {
			t.Errorf("Compile(%q): expected error", expr)
		}
	}
}

func TestNilFilterMatchesAll(t *testing.T) {
	var f *Filter
	ok, err := f.Match(0, model.Item{})
	if err != nil || !ok {
		t.Errorf("nil filter: got %v, %v", ok, err)
	}
	if f.String() != "" {
		t.Errorf("nil filter String: %q", f.String())
	}
}
