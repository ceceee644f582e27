package httpadapter

import (
	"net/http"
	"strconv"
	"time"

	"adzone/internal/core/port"
)

var timeNow = time.Now

// handleStatsOverview returns aggregated statistics for campaigns over a
// specified period. It accepts optional `from`, `to` (RFC3339 timestamps) and
// `campaign_id` query parameters. If no period is provided, it defaults to
// the last 24 hours. Invalid parameters result in HTTP 400.
func (h *Handler) handleStatsOverview(w http.ResponseWriter, r *http.Request) {
	var (
		q       = r.URL.Query()
		fromStr = q.Get("from")
		toStr   = q.Get("to")
		req     port.StatsReq
		err     error
	)

	req.To = timeNow()
	if toStr != "" {
		if req.To, err = time.Parse(time.RFC3339, toStr); err != nil {
			h.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid 'to' timestamp"})
			return
		}
	}
	req.From = req.To.Add(-24 * time.Hour)
	if fromStr != "" {
		if req.From, err = time.Parse(time.RFC3339, fromStr); err != nil {
			h.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid 'from' timestamp"})
			return
		}
	}
	if req.From.After(req.To) {
		h.writeJSON(w, http.StatusBadRequest, errorBody{Error: "'from' must not be after 'to'"})
		return
	}

	if cid := q.Get("campaign_id"); cid != "" {
		id, err := strconv.ParseInt(cid, 10, 64)
		if err != nil {
			h.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid campaign_id"})
			return
		}
		req.CampaignID = &id
	}

	stats, err := h.svc.GetStats(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, stats)
}
