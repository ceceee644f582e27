package httpadapter

import (
	"encoding/json"
	"net/http"

	"adzone/internal/core/domain"
)

type createAdRequest struct {
	CampaignID   int64           `json:"campaign_id" validate:"required,min=1"`
	ZoneID       int64           `json:"zone_id" validate:"required,min=1"`
	Name         string          `json:"name" validate:"required,max=200"`
	AdType       string          `json:"ad_type" validate:"required,oneof=image html video script native"`
	Creative     json.RawMessage `json:"creative" validate:"required"`
	TargetURL    string          `json:"target_url" validate:"required,url"`
	OpenInNewTab *bool           `json:"open_in_new_tab"`
	Weight       *int            `json:"weight" validate:"omitempty,min=1"`
	Priority     int             `json:"priority" validate:"min=0,max=100"`
	Active       *bool           `json:"is_active"`
}

func (req *createAdRequest) advertisement() (*domain.Advertisement, error) {
	creative, err := domain.DecodeCreative(domain.CreativeKind(req.AdType), req.Creative)
	if err != nil {
		return nil, &requestError{msg: "invalid creative", details: map[string]string{"creative": err.Error()}}
	}
	ad := &domain.Advertisement{
		CampaignID:   req.CampaignID,
		ZoneID:       req.ZoneID,
		Name:         req.Name,
		Creative:     creative,
		TargetURL:    req.TargetURL,
		OpenInNewTab: true,
		Weight:       domain.DefaultWeight,
		Priority:     req.Priority,
		Active:       true,
	}
	if req.OpenInNewTab != nil {
		ad.OpenInNewTab = *req.OpenInNewTab
	}
	if req.Weight != nil {
		ad.Weight = *req.Weight
	}
	if req.Active != nil {
		ad.Active = *req.Active
	}
	return ad, nil
}

type adResponse struct {
	ID           int64               `json:"id"`
	CampaignID   int64               `json:"campaign_id"`
	ZoneID       int64               `json:"zone_id"`
	Name         string              `json:"name"`
	AdType       domain.CreativeKind `json:"ad_type"`
	TargetURL    string              `json:"target_url"`
	OpenInNewTab bool                `json:"open_in_new_tab"`
	Weight       int                 `json:"weight"`
	Priority     int                 `json:"priority"`
	Active       bool                `json:"is_active"`
}

// handleCreateAd validates and stores an advertisement. weight defaults to
// 10 when omitted; an explicit weight below 1 is rejected with HTTP 400.
func (h *Handler) handleCreateAd(w http.ResponseWriter, r *http.Request) {
	var req createAdRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	ad, err := req.advertisement()
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err = h.svc.CreateAdvertisement(r.Context(), ad); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, adResponse{
		ID:           ad.ID,
		CampaignID:   ad.CampaignID,
		ZoneID:       ad.ZoneID,
		Name:         ad.Name,
		AdType:       ad.Creative.Kind(),
		TargetURL:    ad.TargetURL,
		OpenInNewTab: ad.OpenInNewTab,
		Weight:       ad.Weight,
		Priority:     ad.Priority,
		Active:       ad.Active,
	})
}
