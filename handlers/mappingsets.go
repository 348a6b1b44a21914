package handlers

import (
	"net/http"
	"slices"

	"github.com/juho05/diacritics"
	"github.com/juho05/diacritics/handlers/responses"
	"github.com/juho05/diacritics/repos"
	"github.com/juho05/log"
)

func (h *Handler) handleGetMappingSets(w http.ResponseWriter, r *http.Request) {
	q := h.getQuery(w, r)
	if h.DB == nil {
		responses.EncodeError(w, q.Format(), "no database configured", responses.ErrorNotFound)
		return
	}
	sets, err := h.DB.MappingSet().FindAll(r.Context())
	if err != nil {
		respondInternalErr(w, q.Format(), err)
		return
	}
	list := make(responses.MappingSets, 0, len(sets))
	for _, s := range sets {
		list = append(list, responses.MappingSet{
			Name:        s.Name,
			Description: s.Description,
			Active:      slices.Contains(h.Config.CustomSets, s.Name),
		})
	}
	res := responses.New()
	res.MappingSets = &list
	res.EncodeOrLog(w, q.Format())
}

// handleReloadMappings rebuilds the mapper from the configured languages and the current
// state of the custom mapping sets and publishes it as the new default.
func (h *Handler) handleReloadMappings(w http.ResponseWriter, r *http.Request) {
	q := h.getQuery(w, r)
	m, err := repos.BuildMapper(r.Context(), h.DB, h.Config.Languages, h.Config.CustomSets, h.Config.CustomSetsFirst)
	if err != nil {
		respondInternalErr(w, q.Format(), err)
		return
	}
	diacritics.SetDefaultFactory(func() *diacritics.Mapper {
		return m
	})
	log.Infof("reloaded mappings: %d characters from %d providers", m.Len(), len(m.Providers()))
	res := responses.New()
	res.Reload = &responses.ReloadSummary{
		Providers:  len(m.Providers()),
		Characters: m.Len(),
	}
	res.EncodeOrLog(w, q.Format())
}
