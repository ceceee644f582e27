package httpadapter

import (
	"net/http"
	"strconv"
)

const noAdsMessage = "No active ads for this zone"

// handleGetForZone returns one advertisement for the zone given by the
// zone_id query parameter. page_url scopes the selection cache. A missing
// or non-numeric zone_id results in HTTP 400; no eligible advertisement
// results in HTTP 404 with an informational message.
func (h *Handler) handleGetForZone(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	raw := q.Get("zone_id")
	if raw == "" {
		h.writeJSON(w, http.StatusBadRequest, errorBody{Error: "zone_id is required"})
		return
	}
	zoneID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || zoneID < 1 {
		h.writeJSON(w, http.StatusBadRequest, errorBody{Error: "zone_id must be a positive integer"})
		return
	}

	ad, err := h.svc.SelectAd(r.Context(), zoneID, q.Get("page_url"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if ad == nil {
		h.writeJSON(w, http.StatusNotFound, map[string]string{"message": noAdsMessage})
		return
	}
	h.writeJSON(w, http.StatusOK, ad)
}
