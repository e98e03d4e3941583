package routing

import (
	"net/http"

	"github.com/SystemBuilders/ChainList/internal/listservice"
	"github.com/oklog/ulid"
)

func pushHead(w http.ResponseWriter, r *http.Request, ls listservice.ListService) {
	push(w, r, ls.PushHead)
}

func pushTail(w http.ResponseWriter, r *http.Request, ls listservice.ListService) {
	push(w, r, ls.PushTail)
}

// push decodes the body and hands the value to one of the end pushes.
func push(w http.ResponseWriter, r *http.Request, fn func(ulid.ULID, string) error) {
	id, err := listID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	req, err := readPushRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := fn(id, req.Value); err != nil {
		writeError(w, err)
		return
	}
	w.Write([]byte("value pushed"))
}

func pushAt(w http.ResponseWriter, r *http.Request, ls listservice.ListService) {
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
	req, err := readPushRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := ls.PushAt(id, i, req.Value); err != nil {
		writeError(w, err)
		return
	}
	w.Write([]byte("value pushed"))
}
