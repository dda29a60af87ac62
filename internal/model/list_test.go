package model

import (
	"errors"
	"reflect"
	"testing"
)

func TestNewListIsEmpty(t *testing.T) {
	l := NewList("alice")
	if l.Owner() != "alice" {
		t.Errorf("Owner: got %q, want %q", l.Owner(), "alice")
	}
	if l.Len() != 0 {
		t.Errorf("Len: got %d, want 0", l.Len())
	}
	if l.Items() == nil {
		t.Error("Items should be non-nil for a fresh list")
	}
}

func TestAddAppends(t *testing.T) {
	l := Restore("bob", []Item{{Text: "a", Done: true}})
	before := l.Items()

	idx := l.Add("b")
	if idx != 1 {
		t.Fatalf("Add index: got %d, want 1", idx)
	}
	if l.Len() != len(before)+1 {
		t.Fatalf("Len: got %d, want %d", l.Len(), len(before)+1)
	}
	last, _ := l.Item(l.Len() - 1)
	if last != (Item{Text: "b"}) {
		t.Errorf("last item: got %+v", last)
	}
	if got := l.Items()[:len(before)]; !reflect.DeepEqual(got, before) {
		t.Errorf("prior items changed: got %+v, want %+v", got, before)
	}
}

func TestAddAllowsEmptyAndDuplicates(t *testing.T) {
	l := NewList("x")
	l.Add("")
	l.Add("same")
	l.Add("same")
	want := []Item{{Text: ""}, {Text: "same"}, {Text: "same"}}
	if !reflect.DeepEqual(l.Items(), want) {
		t.Errorf("got %+v, want %+v", l.Items(), want)
	}
}

func TestCompleteIsIdempotent(t *testing.T) {
	l := Restore("x", []Item{{Text: "a"}, {Text: "b"}})

	it, changed, err := l.Complete(1)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if !changed || !it.Done || it.Text != "b" {
		t.Errorf("first Complete: got %+v changed=%v", it, changed)
	}
	once := l.Items()

	_, changed, err = l.Complete(1)
	if err != nil {
		t.Fatalf("second Complete: %v", err)
	}
	if changed {
		t.Error("second Complete should report no change")
	}
	if !reflect.DeepEqual(l.Items(), once) {
		t.Errorf("state differs after second Complete: %+v vs %+v", l.Items(), once)
	}
}

func TestRemoveShiftsSurvivors(t *testing.T) {
	tests := []struct {
		name  string
		index int
		want  []string
	}{
		{"first", 0, []string{"b", "c", "d"}},
		{"middle", 2, []string{"a", "b", "d"}},
		{"last", 3, []string{"a", "b", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Restore("x", []Item{{Text: "a"}, {Text: "b"}, {Text: "c"}, {Text: "d"}})
			if _, err := l.Remove(tt.index); err != nil {
				t.Fatalf("Remove: %v", err)
			}
			var got []string
			for _, it := range l.Items() {
				got = append(got, it.Text)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOutOfRangeLeavesListUnchanged(t *testing.T) {
	tests := []struct {
		name  string
		index int
	}{
		{"negative", -1},
		{"equal to len", 2},
		{"far past end", 99},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Restore("x", []Item{{Text: "a"}, {Text: "b", Done: true}})
			before := l.Items()

			_, _, err := l.Complete(tt.index)
			if !errors.Is(err, ErrIndexOutOfRange) {
				t.Errorf("Complete: expected ErrIndexOutOfRange, got %v", err)
			}
			_, err = l.Remove(tt.index)
			if !errors.Is(err, ErrIndexOutOfRange) {
				t.Errorf("Remove: expected ErrIndexOutOfRange, got %v", err)
			}
			var ie *IndexError
			if !errors.As(err, &ie) || ie.Index != tt.index || ie.Len != 2 {
				t.Errorf("IndexError fields: got %+v", ie)
			}
			if !reflect.DeepEqual(l.Items(), before) {
				t.Errorf("items changed: got %+v, want %+v", l.Items(), before)
			}
		})
	}
}

func TestItemsReturnsCopy(t *testing.T) {
	l := NewList("x")
	l.Add("a")
	items := l.Items()
	items[0].Text = "mutated"
	if it, _ := l.Item(0); it.Text != "a" {
		t.Errorf("list was mutated through Items(): %q", it.Text)
	}
}

func TestScenario(t *testing.T) {
	l := NewList("alice")
	l.Add("buy milk")
	l.Add("walk dog")
	if _, _, err := l.Complete(0); err != nil {
		t.Fatal(err)
	}
	want := []Item{{"buy milk", true}, {"walk dog", false}}
	if !reflect.DeepEqual(l.Items(), want) {
		t.Fatalf("after complete: got %+v, want %+v", l.Items(), want)
	}
	if _, err := l.Remove(0); err != nil {
		t.Fatal(err)
	}
	want = []Item{{"walk dog", false}}
	if !reflect.DeepEqual(l.Items(), want) {
		t.Errorf("after remove: got %+v, want %+v", l.Items(), want)
	}
	if d, p := l.Stats(); d != 0 || p != 1 {
		t.Errorf("Stats: got %d/%d, want 0/1", d, p)
	}
}

func TestIndexErrorMessage(t *testing.T) {
	err := &IndexError{Op: "remove", Index: 5, Len: 3}
	if got, want := err.Error(), "remove: index 5 out of range: valid indexes are 0..2"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	empty := &IndexError{Op: "complete", Index: 0, Len: 0}
	if got, want := empty.Error(), "complete: index 0 out of range: list is empty"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
