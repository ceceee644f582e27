package httpadapter

import (
	"net/http"

	"github.com/shopspring/decimal"

	"adzone/internal/core/domain"
	"adzone/internal/core/port"
)

type contentRequest struct {
	Kind string `json:"kind" validate:"required,oneof=article category tag page"`
	ID   int64  `json:"id" validate:"required,min=1"`
}

func (c *contentRequest) ref() domain.ContentRef {
	if c == nil {
		return domain.ContentRef{}
	}
	return domain.ContentRef{Kind: domain.ContentKind(c.Kind), ID: c.ID}
}

type impressionRequest struct {
	PageURL    string          `json:"page_url" validate:"max=2048"`
	DeviceType string          `json:"device_type" validate:"max=20"`
	Browser    string          `json:"browser" validate:"max=100"`
	OS         string          `json:"os" validate:"max=100"`
	Country    string          `json:"country" validate:"max=100"`
	City       string          `json:"city" validate:"max=100"`
	Content    *contentRequest `json:"content"`
}

type clickRequest struct {
	ImpressionID *int64          `json:"impression_id" validate:"omitempty,min=1"`
	PageURL      string          `json:"page_url" validate:"max=2048"`
	DeviceType   string          `json:"device_type" validate:"max=20"`
	Country      string          `json:"country" validate:"max=100"`
	City         string          `json:"city" validate:"max=100"`
	Content      *contentRequest `json:"content"`
}

type conversionRequest struct {
	ClickID         *int64          `json:"click_id" validate:"omitempty,min=1"`
	ConversionType  string          `json:"conversion_type" validate:"required,oneof=registration subscription purchase lead download custom"`
	ConversionValue decimal.Decimal `json:"conversion_value"`
	Notes           string          `json:"notes" validate:"max=2000"`
}

type adblockRequest struct {
	PageURL string `json:"page_url" validate:"max=2048"`
}

type trackResponse struct {
	Status       string `json:"status"`
	ImpressionID int64  `json:"impression_id,omitempty"`
	ClickID      int64  `json:"click_id,omitempty"`
	ConversionID int64  `json:"conversion_id,omitempty"`
}

func baseClient(r *http.Request) domain.Client {
	return domain.Client{
		UserID:    userID(r),
		IP:        clientIP(r),
		UserAgent: r.Header.Get("User-Agent"),
	}
}

// handleTrackImpression records an impression. A repeat from the same IP
// within the dedup window answers 200 with "impression already tracked".
func (h *Handler) handleTrackImpression(w http.ResponseWriter, r *http.Request) {
	adID, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req impressionRequest
	if err = decodeBody(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	client := baseClient(r)
	client.PageURL = req.PageURL
	client.Referrer = r.Header.Get("Referer")
	client.DeviceType = req.DeviceType
	client.Browser = req.Browser
	client.OS = req.OS
	client.Country = req.Country
	client.City = req.City

	res, err := h.svc.TrackImpression(r.Context(), port.ImpressionInput{AdID: adID, Client: client, Content: req.Content.ref()})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if res.Status == port.Deduplicated {
		h.writeJSON(w, http.StatusOK, trackResponse{Status: "impression already tracked"})
		return
	}
	h.writeJSON(w, http.StatusOK, trackResponse{Status: "impression tracked", ImpressionID: res.EventID})
}

// handleTrackClick records a click, optionally attributed to an impression.
func (h *Handler) handleTrackClick(w http.ResponseWriter, r *http.Request) {
	adID, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req clickRequest
	if err = decodeBody(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	client := baseClient(r)
	client.PageURL = req.PageURL
	client.DeviceType = req.DeviceType
	client.Country = req.Country
	client.City = req.City

	res, err := h.svc.TrackClick(r.Context(), port.ClickInput{
		AdID:         adID,
		ImpressionID: req.ImpressionID,
		Client:       client,
		Content:      req.Content.ref(),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if res.Status == port.Deduplicated {
		h.writeJSON(w, http.StatusOK, trackResponse{Status: "click already tracked"})
		return
	}
	h.writeJSON(w, http.StatusOK, trackResponse{Status: "click tracked", ClickID: res.EventID})
}

// handleTrackConversion records a conversion. There is no dedup window.
func (h *Handler) handleTrackConversion(w http.ResponseWriter, r *http.Request) {
	adID, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req conversionRequest
	if err = decodeBody(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	if req.ConversionValue.IsNegative() {
		h.writeJSON(w, http.StatusBadRequest, errorBody{Error: "validation failed", Details: map[string]string{"conversion_value": "must not be negative"}})
		return
	}
	res, err := h.svc.TrackConversion(r.Context(), port.ConversionInput{
		AdID:    adID,
		ClickID: req.ClickID,
		Type:    domain.ConversionType(req.ConversionType),
		Value:   req.ConversionValue,
		Notes:   req.Notes,
		Client:  baseClient(r),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, trackResponse{Status: "conversion tracked", ConversionID: res.EventID})
}

// handleTrackAdblock records that the visitor blocks ads.
func (h *Handler) handleTrackAdblock(w http.ResponseWriter, r *http.Request) {
	var req adblockRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	client := baseClient(r)
	client.PageURL = req.PageURL
	if err := h.svc.TrackAdblock(r.Context(), client); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, trackResponse{Status: "adblock detected"})
}
