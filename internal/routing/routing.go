package routing

import (
	"net/http"

	"github.com/SystemBuilders/ChainList/internal/listservice"
	"github.com/gorilla/mux"
)

// SetupRouting adds all the routes on the http server.
func SetupRouting(ls listservice.ListService, r *mux.Router) *mux.Router {
	r.HandleFunc("/lists", makeCreateHandler(ls)).Methods(http.MethodPost)
	r.HandleFunc("/lists/{id}", makeValuesHandler(ls)).Methods(http.MethodGet)
	r.HandleFunc("/lists/{id}", makeDeleteHandler(ls)).Methods(http.MethodDelete)
	r.HandleFunc("/lists/{id}/size", makeSizeHandler(ls)).Methods(http.MethodGet)
	r.HandleFunc("/lists/{id}/clear", makeClearHandler(ls)).Methods(http.MethodPost)
	r.HandleFunc("/lists/{id}/head", makePushHeadHandler(ls)).Methods(http.MethodPost)
	r.HandleFunc("/lists/{id}/head", makePopHeadHandler(ls)).Methods(http.MethodDelete)
	r.HandleFunc("/lists/{id}/tail", makePushTailHandler(ls)).Methods(http.MethodPost)
	r.HandleFunc("/lists/{id}/tail", makePopTailHandler(ls)).Methods(http.MethodDelete)
	r.HandleFunc("/lists/{id}/elements/{index}", makePushAtHandler(ls)).Methods(http.MethodPost)
	r.HandleFunc("/lists/{id}/elements/{index}", makePopAtHandler(ls)).Methods(http.MethodDelete)
	r.HandleFunc("/lists/{id}/elements/{index}", makeElementAtHandler(ls)).Methods(http.MethodGet)
	return r
}

func makeCreateHandler(ls listservice.ListService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		create(w, r, ls)
	}
}

func makeValuesHandler(ls listservice.ListService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		values(w, r, ls)
	}
}

func makeDeleteHandler(ls listservice.ListService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		deleteList(w, r, ls)
	}
}

func makeSizeHandler(ls listservice.ListService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		size(w, r, ls)
	}
}

func makeClearHandler(ls listservice.ListService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clearList(w, r, ls)
	}
}

func makePushHeadHandler(ls listservice.ListService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pushHead(w, r, ls)
	}
}

func makePopHeadHandler(ls listservice.ListService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		popHead(w, r, ls)
	}
}

func makePushTailHandler(ls listservice.ListService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pushTail(w, r, ls)
	}
}

func makePopTailHandler(ls listservice.ListService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		popTail(w, r, ls)
	}
}

func makePushAtHandler(ls listservice.ListService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pushAt(w, r, ls)
	}
}

func makePopAtHandler(ls listservice.ListService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		popAt(w, r, ls)
	}
}

func makeElementAtHandler(ls listservice.ListService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		elementAt(w, r, ls)
	}
}
