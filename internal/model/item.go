package model

// Item is a single task on the list.
// Text may be empty; nothing else is tracked per item.
type Item struct {
	Text string `json:"text"`
	Done bool   `json:"done"`
}
