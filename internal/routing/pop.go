package routing

import (
	"net/http"

	"github.com/SystemBuilders/ChainList/internal/listservice"
	"github.com/oklog/ulid"
)

func popHead(w http.ResponseWriter, r *http.Request, ls listservice.ListService) {
	pop(w, r, ls.PopHead)
}

func popTail(w http.ResponseWriter, r *http.Request, ls listservice.ListService) {
	pop(w, r, ls.PopTail)
}

// pop answers 200 either way; an empty list is reported with Present
// set to false rather than as an error.
func pop(w http.ResponseWriter, r *http.Request, fn func(ulid.ULID) (string, bool, error)) {
	id, err := listID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	value, ok, err := fn(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listservice.PopResponse{Value: value, Present: ok})
}

func popAt(w http.ResponseWriter, r *http.Request, ls listservice.ListService) {
	indexed(w, r, ls.PopAt)
}

func elementAt(w http.ResponseWriter, r *http.Request, ls listservice.ListService) {
	indexed(w, r, ls.ElementAt)
}

func indexed(w http.ResponseWriter, r *http.Request, fn func(ulid.ULID, int) (string, error)) {
	id, err := listID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	i, err := index(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	value, err := fn(id, i)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listservice.ValueResponse{Value: value})
}
