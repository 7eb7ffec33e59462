package domain

import "strings"

// MaxCompareSlots is the largest number of cities a compare set may hold.
const MaxCompareSlots = 5

// maxLabelRunes bounds the length of a slot label after sanitizing.
const maxLabelRunes = 32

// CompareSlot is one member of a user's comparison set: a city and an
// optional short label, usually a person's name.
type CompareSlot struct {
	City  City
	Label string
}

// NewCompareSlot builds a slot with a sanitized label.
func NewCompareSlot(city City, label string) CompareSlot {
	return CompareSlot{City: city, Label: SanitizeLabel(label)}
}

// SanitizeLabel removes the characters that delimit slots and labels in the
// compare URL parameter (":" and ","), trims surrounding space and truncates
// the result to 32 runes.
func SanitizeLabel(label string) string {
	label = strings.Map(func(r rune) rune {
		if r == ':' || r == ',' {
			return -1
		}
		return r
	}, label)
	label = strings.TrimSpace(label)
	if r := []rune(label); len(r) > maxLabelRunes {
		label = strings.TrimSpace(string(r[:maxLabelRunes]))
	}
	return label
}

// CompareSet is the ordered list of slots on the compare panel.
// The zero value is an empty set ready to use.
type CompareSet struct {
	slots []CompareSlot
}

// Add appends a slot. It reports false and leaves the set unchanged once the
// set already holds MaxCompareSlots members.
func (s *CompareSet) Add(slot CompareSlot) bool {
	if len(s.slots) >= MaxCompareSlots {
		return false
	}
	slot.Label = SanitizeLabel(slot.Label)
	s.slots = append(s.slots, slot)
	return true
}

// Remove deletes the slot at index i. Out-of-range indexes are ignored.
func (s *CompareSet) Remove(i int) {
	if i < 0 || i >= len(s.slots) {
		return
	}
	s.slots = append(s.slots[:i:i], s.slots[i+1:]...)
}

// SetLabel replaces the label of the slot at index i.
func (s *CompareSet) SetLabel(i int, label string) {
	if i < 0 || i >= len(s.slots) {
		return
	}
	s.slots[i].Label = SanitizeLabel(label)
}

// Len returns the number of slots in the set.
func (s CompareSet) Len() int {
	return len(s.slots)
}

// Slots returns a copy of the slots in insertion order.
func (s CompareSet) Slots() []CompareSlot {
	out := make([]CompareSlot, len(s.slots))
	copy(out, s.slots)
	return out
}
