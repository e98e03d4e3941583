package listservice

import "github.com/oklog/ulid"

// ListService describes a component that maintains a set of named
// string lists. Every operation on a list is serialized by the service,
// so one service can be shared between goroutines even though the lists
// themselves are not safe for concurrent use.
type ListService interface {
	// Create allocates a new, empty list and returns its ID.
	Create() ulid.ULID
	// Delete removes the list and all its elements.
	Delete(ulid.ULID) error
	// PushHead inserts a value at the head of the list.
	PushHead(ulid.ULID, string) error
	// PushTail inserts a value at the tail of the list.
	PushTail(ulid.ULID, string) error
	// PopHead removes the head of the list. The boolean is false, with a
	// nil error, if the list is empty.
	PopHead(ulid.ULID) (string, bool, error)
	// PopTail removes the tail of the list. The boolean is false, with a
	// nil error, if the list is empty.
	PopTail(ulid.ULID) (string, bool, error)
	// PushAt inserts a value at the given index of the list.
	PushAt(ulid.ULID, int, string) error
	// PopAt removes the value at the given index of the list.
	PopAt(ulid.ULID, int) (string, error)
	// ElementAt reads the value at the given index of the list.
	ElementAt(ulid.ULID, int) (string, error)
	// Size returns the number of values in the list.
	Size(ulid.ULID) (int, error)
	// Clear removes every value from the list but keeps the list.
	Clear(ulid.ULID) error
	// Values returns a copy of the list's values from head to tail.
	Values(ulid.ULID) ([]string, error)
}

// ParseID parses the textual form of a list ID.
func ParseID(s string) (ulid.ULID, error) {
	id, err := ulid.Parse(s)
	if err != nil {
		return ulid.ULID{}, ErrInvalidListID
	}
	return id, nil
}
