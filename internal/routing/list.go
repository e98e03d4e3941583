package routing

import (
	"net/http"

	"github.com/SystemBuilders/ChainList/internal/listservice"
)

// create wraps the list Create function and responds with the new list's ID.
func create(w http.ResponseWriter, r *http.Request, ls listservice.ListService) {
	id := ls.Create()
	writeJSON(w, http.StatusCreated, listservice.CreateResponse{ListID: id.String()})
}

func values(w http.ResponseWriter, r *http.Request, ls listservice.ListService) {
	id, err := listID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	vals, err := ls.Values(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listservice.ValuesResponse{Values: vals, Size: len(vals)})
}

func deleteList(w http.ResponseWriter, r *http.Request, ls listservice.ListService) {
	id, err := listID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := ls.Delete(id); err != nil {
		writeError(w, err)
		return
	}
	w.Write([]byte("list deleted"))
}

func size(w http.ResponseWriter, r *http.Request, ls listservice.ListService) {
	id, err := listID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	n, err := ls.Size(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listservice.SizeResponse{Size: n})
}

func clearList(w http.ResponseWriter, r *http.Request, ls listservice.ListService) {
	id, err := listID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := ls.Clear(id); err != nil {
		writeError(w, err)
		return
	}
	w.Write([]byte("list cleared"))
}
