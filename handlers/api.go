package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/juho05/diacritics"
	"github.com/juho05/diacritics/handlers/responses"
	"github.com/juho05/diacritics/util"
)

func (h *Handler) handlePing(w http.ResponseWriter, r *http.Request) {
	q := h.getQuery(w, r)
	res := responses.New()
	res.EncodeOrLog(w, q.Format())
}

func (h *Handler) handleRemoveDiacritics(w http.ResponseWriter, r *http.Request) {
	q := h.getQuery(w, r)
	text, ok := q.TextReq("text")
	if !ok {
		return
	}
	res := responses.New()
	res.Text = util.ToPtr(diacritics.Current().RemoveDiacritics(text, nil))
	res.EncodeOrLog(w, q.Format())
}

func (h *Handler) handleRemoveDiacriticsBatch(w http.ResponseWriter, r *http.Request) {
	q := h.getQuery(w, r)
	var body struct {
		Texts []string `json:"texts"`
	}
	err := json.NewDecoder(r.Body).Decode(&body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			responses.EncodeError(w, q.Format(), "request body too large", responses.ErrorInputTooLarge)
			return
		}
		responses.EncodeError(w, q.Format(), "invalid request body: "+err.Error(), responses.ErrorInvalidBody)
		return
	}
	if body.Texts == nil {
		q.missingParameter("texts")
		return
	}
	compose, ok := q.Bool("compose", h.Config.ComposeInput)
	if !ok {
		return
	}
	m := diacritics.Current()
	texts := util.Map(body.Texts, func(text string) string {
		if compose {
			text = util.Compose(text)
		}
		return m.RemoveDiacritics(text, nil)
	})
	res := responses.New()
	res.Texts = util.ToPtr(responses.Texts(texts))
	res.EncodeOrLog(w, q.Format())
}

func (h *Handler) handleHasDiacritics(w http.ResponseWriter, r *http.Request) {
	q := h.getQuery(w, r)
	text, ok := q.TextReq("text")
	if !ok {
		return
	}
	res := responses.New()
	res.HasDiacritics = util.ToPtr(diacritics.Current().HasDiacritics(text, nil))
	res.EncodeOrLog(w, q.Format())
}

func (h *Handler) handleGetSearchKey(w http.ResponseWriter, r *http.Request) {
	q := h.getQuery(w, r)
	text, ok := q.TextReq("text")
	if !ok {
		return
	}
	m := diacritics.Current()
	res := responses.New()
	res.SearchKey = util.ToPtr(util.NormalizeText(text, func(s string) string {
		return m.RemoveDiacritics(s, nil)
	}))
	res.EncodeOrLog(w, q.Format())
}

func (h *Handler) handleGetMappings(w http.ResponseWriter, r *http.Request) {
	q := h.getQuery(w, r)
	m := diacritics.Current()
	list := make(responses.Mappings, 0, m.Len())
	for char, base := range m.All() {
		mapping := responses.Mapping{
			Char: string(char),
			Base: base,
		}
		if rule, ok := m.Lookup(char); ok {
			mapping.Upper = rule.Upper
			mapping.Lower = rule.Lower
		}
		list = append(list, mapping)
	}
	res := responses.New()
	res.Mappings = &list
	res.EncodeOrLog(w, q.Format())
}

func (h *Handler) handleGetLanguages(w http.ResponseWriter, r *http.Request) {
	q := h.getQuery(w, r)
	res := responses.New()
	res.Languages = util.ToPtr(responses.Languages(diacritics.Current().Providers()))
	res.EncodeOrLog(w, q.Format())
}
