// Package faq implements an accordion of questions and answers in which at
// most one answer is expanded at a time.
package faq

import (
	"fmt"

	"github.com/vovakirdan/minis/internal/config"
)

// Item is one question and its answer.
type Item struct {
	ID       string
	Question string
	Answer   string
}

// Accordion tracks which item is expanded. Items are fixed at construction.
type Accordion struct {
	items []Item
	index map[string]int
	open  int // Index of the expanded item, -1 when all are collapsed
}

// NewAccordion builds an accordion from config items. Items without an ID
// get their position as ID.
func NewAccordion(src []config.FAQItem) *Accordion {
	a := &Accordion{
		items: make([]Item, len(src)),
		index: make(map[string]int, len(src)),
		open:  -1,
	}
	for i, it := range src {
		id := it.ID
		if id == "" {
			id = fmt.Sprint(i)
		}
		a.items[i] = Item{ID: id, Question: it.Question, Answer: it.Answer}
		a.index[id] = i
	}
	return a
}

// Len returns the number of items.
func (a *Accordion) Len() int {
	return len(a.items)
}

// Items returns the items in display order.
func (a *Accordion) Items() []Item {
	return a.items
}

// Toggle expands the item with the given ID and collapses the one that was
// open, or collapses it if it was already open. Unknown IDs are ignored.
func (a *Accordion) Toggle(id string) bool {
	i, ok := a.index[id]
	if !ok {
		return false
	}
	a.ToggleAt(i)
	return true
}

// ToggleAt is Toggle by position.
func (a *Accordion) ToggleAt(i int) {
	if i < 0 || i >= len(a.items) {
		return
	}
	if a.open == i {
		a.open = -1
		return
	}
	a.open = i
}

// CloseAll collapses every item.
func (a *Accordion) CloseAll() {
	a.open = -1
}

// IsOpen reports whether the item with the given ID is expanded.
func (a *Accordion) IsOpen(id string) bool {
	i, ok := a.index[id]
	return ok && a.open == i
}

// OpenIndex returns the position of the expanded item, or -1.
func (a *Accordion) OpenIndex() int {
	return a.open
}

// OpenID returns the ID of the expanded item and whether one is expanded.
func (a *Accordion) OpenID() (string, bool) {
	if a.open < 0 {
		return "", false
	}
	return a.items[a.open].ID, true
}
