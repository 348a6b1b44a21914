package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/juho05/diacritics/handlers/responses"
	"github.com/juho05/log"
)

func respondInternalErr(w http.ResponseWriter, format string, err error) {
	log.Error(err)
	responses.EncodeError(w, format, http.StatusText(http.StatusInternalServerError), responses.ErrorGeneric)
}

func registerRoute(r chi.Router, pattern string, handlerFunc func(w http.ResponseWriter, r *http.Request)) {
	r.Get(pattern, handlerFunc)
	r.Post(pattern, handlerFunc)
}
