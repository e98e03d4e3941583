package listservice

import (
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/SystemBuilders/ChainList/internal/dlist"
	"github.com/oklog/ulid"
	"github.com/rs/zerolog"
)

// SafeListMap is the list server's data structure.
type SafeListMap struct {
	Lists map[ulid.ULID]*dlist.DoublyLinkedList[string]
	Mutex sync.Mutex
}

var _ ListService = (*SimpleListService)(nil)

// SimpleListService is a list service that implements ListService.
// It keeps its lists in a golang map guarded by a single mutex and
// has an in-built logger.
type SimpleListService struct {
	log     zerolog.Logger
	lists   *SafeListMap
	entropy io.Reader
}

// NewSimpleListService creates and returns a new list service ready to use.
func NewSimpleListService(log zerolog.Logger) *SimpleListService {
	safeListMap := &SafeListMap{
		Lists: make(map[ulid.ULID]*dlist.DoublyLinkedList[string]),
	}
	return &SimpleListService{
		log:     log,
		lists:   safeListMap,
		entropy: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
	}
}

// Create allocates a new empty list under a fresh ID.
func (ls *SimpleListService) Create() ulid.ULID {
	ls.lists.Mutex.Lock()
	defer ls.lists.Mutex.Unlock()

	// entropy is only touched under the mutex.
	id := ulid.MustNew(ulid.Timestamp(time.Now()), ls.entropy)
	ls.lists.Lists[id] = dlist.NewDoublyLinkedList[string]()
	ls.
		log.
		Debug().
		Str("list", id.String()).
		Msg("created")
	return id
}

// Delete removes a list and drops its elements.
func (ls *SimpleListService) Delete(id ulid.ULID) error {
	ls.lists.Mutex.Lock()
	defer ls.lists.Mutex.Unlock()

	list, ok := ls.lists.Lists[id]
	if !ok {
		ls.missing(id, "delete")
		return ErrListDoesntExist
	}
	list.Clear()
	delete(ls.lists.Lists, id)
	ls.
		log.
		Debug().
		Str("list", id.String()).
		Msg("deleted")
	return nil
}

// PushHead inserts a value at the head of a list.
func (ls *SimpleListService) PushHead(id ulid.ULID, value string) error {
	return ls.withList(id, "pushHead", func(list *dlist.DoublyLinkedList[string]) error {
		list.PushHead(value)
		return nil
	})
}

// PushTail inserts a value at the tail of a list.
func (ls *SimpleListService) PushTail(id ulid.ULID, value string) error {
	return ls.withList(id, "pushTail", func(list *dlist.DoublyLinkedList[string]) error {
		list.PushTail(value)
		return nil
	})
}

// PopHead removes the head of a list.
func (ls *SimpleListService) PopHead(id ulid.ULID) (value string, ok bool, err error) {
	err = ls.withList(id, "popHead", func(list *dlist.DoublyLinkedList[string]) error {
		value, ok = list.PopHead()
		return nil
	})
	return value, ok, err
}

// PopTail removes the tail of a list.
func (ls *SimpleListService) PopTail(id ulid.ULID) (value string, ok bool, err error) {
	err = ls.withList(id, "popTail", func(list *dlist.DoublyLinkedList[string]) error {
		value, ok = list.PopTail()
		return nil
	})
	return value, ok, err
}

// PushAt inserts a value at the given index of a list.
func (ls *SimpleListService) PushAt(id ulid.ULID, index int, value string) error {
	return ls.withList(id, "pushAt", func(list *dlist.DoublyLinkedList[string]) error {
		return ls.checkIndex(id, index, list.PushAt(index, value))
	})
}

// PopAt removes the value at the given index of a list.
func (ls *SimpleListService) PopAt(id ulid.ULID, index int) (value string, err error) {
	err = ls.withList(id, "popAt", func(list *dlist.DoublyLinkedList[string]) error {
		var popErr error
		value, popErr = list.PopAt(index)
		return ls.checkIndex(id, index, popErr)
	})
	return value, err
}

// ElementAt reads the value at the given index of a list.
func (ls *SimpleListService) ElementAt(id ulid.ULID, index int) (value string, err error) {
	err = ls.withList(id, "elementAt", func(list *dlist.DoublyLinkedList[string]) error {
		var readErr error
		value, readErr = list.ElementAt(index)
		return ls.checkIndex(id, index, readErr)
	})
	return value, err
}

// Size returns the number of values in a list.
func (ls *SimpleListService) Size(id ulid.ULID) (size int, err error) {
	err = ls.withList(id, "size", func(list *dlist.DoublyLinkedList[string]) error {
		size = list.Size()
		return nil
	})
	return size, err
}

// Clear empties a list.
func (ls *SimpleListService) Clear(id ulid.ULID) error {
	return ls.withList(id, "clear", func(list *dlist.DoublyLinkedList[string]) error {
		list.Clear()
		return nil
	})
}

// Values returns a copy of a list's values from head to tail.
func (ls *SimpleListService) Values(id ulid.ULID) (values []string, err error) {
	err = ls.withList(id, "values", func(list *dlist.DoublyLinkedList[string]) error {
		values = list.Values()
		return nil
	})
	return values, err
}

// withList runs fn on the list with the given ID while holding the lock.
func (ls *SimpleListService) withList(id ulid.ULID, op string, fn func(*dlist.DoublyLinkedList[string]) error) error {
	ls.lists.Mutex.Lock()
	defer ls.lists.Mutex.Unlock()

	list, ok := ls.lists.Lists[id]
	if !ok {
		ls.missing(id, op)
		return ErrListDoesntExist
	}
	if err := fn(list); err != nil {
		return err
	}
	ls.
		log.
		Debug().
		Str("list", id.String()).
		Str("op", op).
		Int("size", list.Size()).
		Msg("applied")
	return nil
}

func (ls *SimpleListService) checkIndex(id ulid.ULID, index int, err error) error {
	if err != nil {
		ls.
			log.
			Debug().
			Str("list", id.String()).
			Int("index", index).
			Err(err).
			Msg("can't apply, index out of range")
	}
	return err
}

func (ls *SimpleListService) missing(id ulid.ULID, op string) {
	ls.
		log.
		Debug().
		Str("list", id.String()).
		Str("op", op).
		Msg("can't apply, list doesn't exist")
}
