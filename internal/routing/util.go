package routing

import (
	"encoding/json"
	"errors"
	"io/ioutil"
	"net/http"
	"strconv"

	"github.com/SystemBuilders/ChainList/internal/dlist"
	"github.com/SystemBuilders/ChainList/internal/listservice"
	"github.com/gorilla/mux"
	"github.com/oklog/ulid"
)

// listID reads the {id} path variable.
func listID(r *http.Request) (ulid.ULID, error) {
	return listservice.ParseID(mux.Vars(r)["id"])
}

// index reads the {index} path variable.
func index(r *http.Request) (int, error) {
	return strconv.Atoi(mux.Vars(r)["index"])
}

func readPushRequest(r *http.Request) (listservice.PushRequest, error) {
	var req listservice.PushRequest
	body, err := ioutil.ReadAll(r.Body)
	if err != nil {
		return req, err
	}
	err = json.Unmarshal(body, &req)
	return req, err
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	byteData, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(byteData)
}

// writeError maps service errors onto status codes.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, listservice.ErrListDoesntExist):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, listservice.ErrInvalidListID):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, dlist.ErrIndexOutOfRange):
		http.Error(w, err.Error(), http.StatusRequestedRangeNotSatisfiable)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
