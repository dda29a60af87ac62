package engine

import (
	"errors"
	"reflect"
	"testing"

	"github.com/Makepad-fr/todo/internal/model"
)

// recorder captures presenter calls as strings.
type recorder struct {
	calls []string
	views []View
}

func (r *recorder) Added(i int, it model.Item) {
	r.calls = append(r.calls, "added")
}

func (r *recorder) Completed(i int, it model.Item, changed bool) {
	if changed {
		r.calls = append(r.calls, "completed")
		return
	}
	r.calls = append(r.calls, "already-done")
}

func (r *recorder) Removed(i int, it model.Item) {
	r.calls = append(r.calls, "removed:"+it.Text)
}

func (r *recorder) Listed(v View) {
	r.calls = append(r.calls, "listed")
	r.views = append(r.views, v)
}

func mustRun(t *testing.T, e *Engine, inst model.Instruction) Result {
	t.Helper()
	res, err := e.Run(inst)
	if err != nil {
		t.Fatalf("Run(%#v): %v", inst, err)
	}
	return res
}

func TestScenario(t *testing.T) {
	rec := &recorder{}
	e := New(model.NewList("alice"), WithPresenter(rec))

	steps := []struct {
		inst    model.Instruction
		changed bool
		want    []model.Item
	}{
		{model.Add{Text: "buy milk"}, true, []model.Item{{Text: "buy milk"}}},
		{model.Add{Text: "walk dog"}, true, []model.Item{{Text: "buy milk"}, {Text: "walk dog"}}},
		{model.Complete{Index: 0}, true, []model.Item{{Text: "buy milk", Done: true}, {Text: "walk dog"}}},
		{model.Complete{Index: 0}, false, []model.Item{{Text: "buy milk", Done: true}, {Text: "walk dog"}}},
		{model.Remove{Index: 0}, true, []model.Item{{Text: "walk dog"}}},
		{model.List{}, false, []model.Item{{Text: "walk dog"}}},
	}
	for _, st := range steps {
		res := mustRun(t, e, st.inst)
		if res.Changed != st.changed {
			t.Errorf("%s: Changed = %v, want %v", st.inst.Name(), res.Changed, st.changed)
		}
		if got := e.List().Items(); !reflect.DeepEqual(got, st.want) {
			t.Errorf("%s: items = %+v, want %+v", st.inst.Name(), got, st.want)
		}
	}

	wantCalls := []string{"added", "added", "completed", "already-done", "removed:buy milk", "listed"}
	if !reflect.DeepEqual(rec.calls, wantCalls) {
		t.Errorf("presenter calls = %v, want %v", rec.calls, wantCalls)
	}
	if e.List().Owner() != "alice" {
		t.Errorf("owner changed to %q", e.List().Owner())
	}
}

func TestOutOfRangeIsReported(t *testing.T) {
	for _, inst := range []model.Instruction{
		model.Complete{Index: 3},
		model.Complete{Index: -1},
		model.Remove{Index: 2},
		model.Remove{Index: -5},
	} {
		t.Run(inst.Name(), func(t *testing.T) {
			rec := &recorder{}
			e := New(model.Restore("bob", []model.Item{{Text: "a"}, {Text: "b", Done: true}}), WithPresenter(rec))
			before := e.List().Items()

			res, err := e.Run(inst)
			if !errors.Is(err, model.ErrIndexOutOfRange) {
				t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
			}
			if res.Changed {
				t.Error("Changed should be false on error")
			}
			if !reflect.DeepEqual(e.List().Items(), before) {
				t.Errorf("items changed: %+v", e.List().Items())
			}
			if len(rec.calls) != 0 {
				t.Errorf("presenter should not be called, got %v", rec.calls)
			}
		})
	}
}

func TestListView(t *testing.T) {
	rec := &recorder{}
	e := New(model.Restore("carol", []model.Item{
		{Text: "buy milk", Done: true},
		{Text: "walk dog"},
		{Text: "buy bread"},
	}), WithPresenter(rec))

	res := mustRun(t, e, model.List{Filter: `text contains "buy"`})
	if res.View == nil {
		t.Fatal("View should be set for List")
	}
	v := *res.View
	if v.Owner != "carol" || v.Done != 1 || v.Pending != 2 {
		t.Errorf("view header: %+v", v)
	}
	want := []Entry{
		{Index: 0, Item: model.Item{Text: "buy milk", Done: true}},
		{Index: 2, Item: model.Item{Text: "buy bread"}},
	}
	if !reflect.DeepEqual(v.Entries, want) {
		t.Errorf("entries = %+v, want %+v", v.Entries, want)
	}
	if !reflect.DeepEqual(rec.views, []View{v}) {
		t.Errorf("presenter got %+v", rec.views)
	}
}

func TestListEmpty(t *testing.T) {
	e := New(model.NewList("dave"))
	res := mustRun(t, e, model.List{})
	if res.View == nil || len(res.View.Entries) != 0 || res.View.Entries == nil {
		t.Errorf("expected empty non-nil entries, got %+v", res.View)
	}
}

func TestListBadFilter(t *testing.T) {
	rec := &recorder{}
	e := New(model.NewList("erin"), WithPresenter(rec))
	if _, err := e.Run(model.List{Filter: "done &&"}); err == nil {
		t.Error("expected filter error")
	}
	if len(rec.calls) != 0 {
		t.Errorf("presenter should not be called, got %v", rec.calls)
	}
}

func TestAddEmptyText(t *testing.T) {
	e := New(model.NewList("frank"))
	res := mustRun(t, e, model.Add{Text: ""})
	if !res.Changed || e.List().Len() != 1 {
		t.Errorf("empty text should be appended, got %+v len=%d", res, e.List().Len())
	}
}
