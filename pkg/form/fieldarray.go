package form

import (
	"fmt"

	"github.com/goliatone/go-signupform/pkg/model"
)

// FieldArray stores tech rows in an arena keyed by a synthetic ID. IDs come
// from a counter that only moves forward, so a removed row's ID is never
// handed out again. Order is the positional key list renderers iterate.
type FieldArray struct {
	next  int
	order []int
	slots map[int]model.RawTech
}

// NewFieldArray returns an empty field array whose first ID is 1.
func NewFieldArray() *FieldArray {
	return &FieldArray{
		next:  1,
		slots: make(map[int]model.RawTech),
	}
}

// Append adds a row at the end and returns its fresh ID.
func (a *FieldArray) Append(title, experience string) int {
	id := a.next
	a.next++
	a.slots[id] = model.RawTech{ID: id, Title: title, Experience: experience}
	a.order = append(a.order, id)
	return id
}

// Remove deletes the row at index and returns its ID.
func (a *FieldArray) Remove(index int) (int, error) {
	if index < 0 || index >= len(a.order) {
		return 0, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	id := a.order[index]
	delete(a.slots, id)
	a.order = append(a.order[:index:index], a.order[index+1:]...)
	return id, nil
}

// Len reports the number of rows.
func (a *FieldArray) Len() int {
	return len(a.order)
}

// Keys returns the row IDs in positional order.
func (a *FieldArray) Keys() []int {
	out := make([]int, len(a.order))
	copy(out, a.order)
	return out
}

// NextID reports the ID the next Append will assign.
func (a *FieldArray) NextID() int {
	return a.next
}

// Entries returns the rows in positional order.
func (a *FieldArray) Entries() []model.RawTech {
	out := make([]model.RawTech, 0, len(a.order))
	for _, id := range a.order {
		out = append(out, a.slots[id])
	}
	return out
}

func (a *FieldArray) get(index int) (model.RawTech, bool) {
	if index < 0 || index >= len(a.order) {
		return model.RawTech{}, false
	}
	return a.slots[a.order[index]], true
}

func (a *FieldArray) set(index int, row model.RawTech) {
	row.ID = a.order[index]
	a.slots[row.ID] = row
}

// restore replaces the rows with previously issued ones. Rows without an ID,
// or repeating one, get a fresh ID. The counter never moves backwards.
func (a *FieldArray) restore(rows []model.RawTech, next int) {
	a.order = a.order[:0]
	a.slots = make(map[int]model.RawTech, len(rows))
	if next > a.next {
		a.next = next
	}
	for _, row := range rows {
		if row.ID >= a.next {
			a.next = row.ID + 1
		}
	}
	for _, row := range rows {
		if _, taken := a.slots[row.ID]; row.ID <= 0 || taken {
			row.ID = a.next
			a.next++
		}
		a.slots[row.ID] = row
		a.order = append(a.order, row.ID)
	}
}
