package handlers

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/juho05/diacritics/handlers/responses"
	"github.com/juho05/diacritics/util"
)

type UrlQuery struct {
	values         url.Values
	responseWriter http.ResponseWriter
	conf           queryConfig
}

type queryConfig struct {
	maxInputSize int64
	composeInput bool
}

func (h *Handler) getQuery(w http.ResponseWriter, r *http.Request) UrlQuery {
	query, ok := r.Context().Value(ContextKeyQuery).(url.Values)
	if !ok {
		panic("getQuery must be called after queryMiddleware")
	}
	return UrlQuery{
		values:         query,
		responseWriter: w,
		conf: queryConfig{
			maxInputSize: h.Config.MaxInputSize,
			composeInput: h.Config.ComposeInput,
		},
	}
}

func (q UrlQuery) Has(key string) bool {
	return q.values.Has(key)
}

func (q UrlQuery) Str(key string) string {
	return q.values.Get(key)
}

func (q UrlQuery) Bool(name string, def bool) (value bool, ok bool) {
	boolStr := q.Str(name)
	if boolStr == "" {
		return def, true
	}
	value, err := strconv.ParseBool(boolStr)
	if err != nil {
		q.invalidParameter(name)
		return false, false
	}
	return value, true
}

// TextReq returns the input text parameter name. An empty value is valid, only a
// missing parameter is rejected. The text is composed to NFC unless disabled
// in the config or with the compose parameter.
func (q UrlQuery) TextReq(name string) (string, bool) {
	if !q.Has(name) {
		q.missingParameter(name)
		return "", false
	}
	text := q.Str(name)
	if int64(len(text)) > q.conf.maxInputSize {
		q.inputTooLarge(name)
		return "", false
	}
	compose, ok := q.Bool("compose", q.conf.composeInput)
	if !ok {
		return "", false
	}
	if compose {
		text = util.Compose(text)
	}
	return text, true
}

func (q UrlQuery) Format() string {
	return q.Str("f")
}

func (q UrlQuery) missingParameter(name string) {
	responses.EncodeError(q.responseWriter, q.Format(), fmt.Sprintf("missing %s parameter", name), responses.ErrorRequiredParameterMissing)
}

func (q UrlQuery) invalidParameter(name string) {
	responses.EncodeError(q.responseWriter, q.Format(), fmt.Sprintf("invalid %s parameter", name), responses.ErrorGeneric)
}

func (q UrlQuery) inputTooLarge(name string) {
	responses.EncodeError(q.responseWriter, q.Format(), fmt.Sprintf("%s parameter exceeds %d bytes", name, q.conf.maxInputSize), responses.ErrorInputTooLarge)
}
