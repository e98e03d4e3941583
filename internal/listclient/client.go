package listclient

import "github.com/oklog/ulid"

// Client describes a client that can be used to interact with
// the list service over HTTP. Every call maps onto one request; errors
// reported by the server come back as the same sentinel errors the
// service itself returns, so callers can use errors.Is on either side.
type Client interface {
	// Create creates a new list on the server and returns its ID.
	Create() (ulid.ULID, error)
	// Delete removes a list from the server.
	Delete(ulid.ULID) error
	// PushHead inserts a value at the head of the list.
	PushHead(ulid.ULID, string) error
	// PushTail inserts a value at the tail of the list.
	PushTail(ulid.ULID, string) error
	// PopHead removes the head of the list. The boolean is false if the
	// list was empty.
	PopHead(ulid.ULID) (string, bool, error)
	// PopTail removes the tail of the list. The boolean is false if the
	// list was empty.
	PopTail(ulid.ULID) (string, bool, error)
	// PushAt inserts a value at the given index.
	PushAt(ulid.ULID, int, string) error
	// PopAt removes the value at the given index.
	PopAt(ulid.ULID, int) (string, error)
	// ElementAt reads the value at the given index.
	ElementAt(ulid.ULID, int) (string, error)
	// Size returns the number of values in the list.
	Size(ulid.ULID) (int, error)
	// Clear empties the list.
	Clear(ulid.ULID) error
	// Values returns all values of the list from head to tail.
	Values(ulid.ULID) ([]string, error)
}

// Config describes the configuration of the list service the client
// talks to.
type Config interface {
	// IP provides the IP address, with scheme, where the server runs.
	IP() string
	// Port provides the port where the server runs.
	Port() string
}
