package httpadapter

import (
	"net/http"

	"adzone/internal/core/domain"
)

type statusRequest struct {
	Status string `json:"status" validate:"required,oneof=draft scheduled active paused completed cancelled"`
}

type campaignResponse struct {
	ID               int64                 `json:"id"`
	Name             string                `json:"name"`
	Status           domain.CampaignStatus `json:"status"`
	PricingModel     domain.PricingModel   `json:"pricing_model"`
	Spent            string                `json:"spent"`
	IsActive         bool                  `json:"is_active"`
	TotalImpressions int64                 `json:"total_impressions"`
	TotalClicks      int64                 `json:"total_clicks"`
	TotalConversions int64                 `json:"total_conversions"`
	CTR              float64               `json:"ctr"`
	ConversionRate   float64               `json:"conversion_rate"`
}

func (h *Handler) handleCampaignTransition(next domain.CampaignStatus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.transition(w, r, next)
	}
}

func (h *Handler) handleCampaignStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.transition(w, r, domain.CampaignStatus(req.Status))
}

func (h *Handler) transition(w http.ResponseWriter, r *http.Request, next domain.CampaignStatus) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.svc.TransitionCampaign(r.Context(), id, next)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, campaignResponse{
		ID:               c.ID,
		Name:             c.Name,
		Status:           c.Status,
		PricingModel:     c.PricingModel,
		Spent:            c.Spent.StringFixed(2),
		IsActive:         c.IsActive(timeNow()),
		TotalImpressions: c.TotalImpressions,
		TotalClicks:      c.TotalClicks,
		TotalConversions: c.TotalConversions,
		CTR:              c.CTR(),
		ConversionRate:   c.ConversionRate(),
	})
}
