package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/juho05/diacritics/handlers/responses"
)

type ContextKey int

const (
	ContextKeyQuery ContextKey = iota
)

// queryMiddleware limits the request body to Config.MaxInputSize and merges
// url encoded form bodies into the query values.
func (h *Handler) queryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		values := r.URL.Query()
		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, h.Config.MaxInputSize)
		}
		if r.Method == http.MethodPost && r.Body != nil && strings.Contains(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
			body, err := io.ReadAll(r.Body)
			r.Body.Close()
			if err != nil {
				var maxBytesErr *http.MaxBytesError
				if errors.As(err, &maxBytesErr) {
					responses.EncodeError(w, values.Get("f"), "request body too large", responses.ErrorInputTooLarge)
					return
				}
				respondInternalErr(w, values.Get("f"), err)
				return
			}
			bodyValues, err := url.ParseQuery(string(body))
			if err != nil {
				responses.EncodeError(w, values.Get("f"), "Request body is not a valid query string", responses.ErrorInvalidBody)
				return
			}
			for k, v := range bodyValues {
				if values.Has(k) {
					values[k] = append(v, values[k]...)
				} else {
					values[k] = v
				}
			}
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ContextKeyQuery, values)))
	})
}
