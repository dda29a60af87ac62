package model

// Instruction is one of Add, Complete, Remove or List.
// The set is closed: only types in this package implement it.
type Instruction interface {
	instruction()
	Name() string
}

// Add appends a new pending item.
type Add struct {
	Text string
}

// Complete marks the item at Index done.
type Complete struct {
	Index int
}

// Remove deletes the item at Index.
type Remove struct {
	Index int
}

// List shows the items. Filter is an optional boolean expression
// over index, text and done.
type List struct {
	Filter string
}

func (Add) instruction()      {}
func (Complete) instruction() {}
func (Remove) instruction()   {}
func (List) instruction()     {}

func (Add) Name() string      { return "add" }
func (Complete) Name() string { return "complete" }
func (Remove) Name() string   { return "remove" }
func (List) Name() string     { return "list" }
