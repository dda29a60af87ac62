package model

// ToDoList is the ordered collection of items for one owner.
// The owner is fixed at construction; there is no way to change it.
type ToDoList struct {
	owner string
	items []Item
}

// NewList returns an empty list owned by owner.
func NewList(owner string) *ToDoList {
	return &ToDoList{owner: owner, items: []Item{}}
}

// Restore rebuilds a list from a decoded snapshot. items is copied.
func Restore(owner string, items []Item) *ToDoList {
	cp := make([]Item, len(items))
	copy(cp, items)
	return &ToDoList{owner: owner, items: cp}
}

func (l *ToDoList) Owner() string { return l.owner }

func (l *ToDoList) Len() int { return len(l.items) }

// Items returns a copy of the items in order.
func (l *ToDoList) Items() []Item {
	out := make([]Item, len(l.items))
	copy(out, l.items)
	return out
}

// Item returns the item at index i.
func (l *ToDoList) Item(i int) (Item, bool) {
	if i < 0 || i >= len(l.items) {
		return Item{}, false
	}
	return l.items[i], true
}

// Add appends a pending item and returns its index.
func (l *ToDoList) Add(text string) int {
	l.items = append(l.items, Item{Text: text})
	return len(l.items) - 1
}

// Complete marks the item at i done. changed is false when it already was.
func (l *ToDoList) Complete(i int) (it Item, changed bool, err error) {
	if err := l.check("complete", i); err != nil {
		return Item{}, false, err
	}
	changed = !l.items[i].Done
	l.items[i].Done = true
	return l.items[i], changed, nil
}

// Remove deletes the item at i; later items move down by one.
func (l *ToDoList) Remove(i int) (Item, error) {
	if err := l.check("remove", i); err != nil {
		return Item{}, err
	}
	it := l.items[i]
	l.items = append(l.items[:i], l.items[i+1:]...)
	return it, nil
}

// Stats counts done and pending items.
func (l *ToDoList) Stats() (done, pending int) {
	for _, it := range l.items {
		if it.Done {
			done++
		} else {
			pending++
		}
	}
	return
}

func (l *ToDoList) check(op string, i int) error {
	if i < 0 || i >= len(l.items) {
		return &IndexError{Op: op, Index: i, Len: len(l.items)}
	}
	return nil
}
