package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"adzone/internal/core/domain"
	"adzone/internal/core/port"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	return v
}

type errorBody struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

// requestError is a client error carrying field details.
type requestError struct {
	msg     string
	details map[string]string
}

func (e *requestError) Error() string { return e.msg }

// decodeBody decodes a JSON body into dest and validates it. An empty body
// leaves dest at its zero value.
func decodeBody(r *http.Request, dest any) error {
	defer func() {
		_, _ = io.Copy(io.Discard, r.Body)
	}()
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil && !errors.Is(err, io.EOF) {
		return &requestError{msg: "invalid JSON", details: map[string]string{"body": err.Error()}}
	}
	if err := validate.Struct(dest); err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) {
			details := make(map[string]string, len(errs))
			for _, fe := range errs {
				details[fe.Field()] = validationMessage(fe)
			}
			return &requestError{msg: "validation failed", details: details}
		}
		return &requestError{msg: "validation failed"}
	}
	return nil
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of %s", fe.Param())
	case "url":
		return "must be a valid url"
	}
	return "is invalid"
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps err onto a status code. Unknown errors are logged and
// reported as a generic 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var reqErr *requestError
	switch {
	case errors.As(err, &reqErr):
		h.writeJSON(w, http.StatusBadRequest, errorBody{Error: reqErr.msg, Details: reqErr.details})
	case errors.Is(err, port.ErrAdNotFound),
		errors.Is(err, port.ErrZoneNotFound),
		errors.Is(err, port.ErrCampaignNotFound):
		h.writeJSON(w, http.StatusNotFound, errorBody{Error: err.Error()})
	case errors.Is(err, port.ErrStatusConflict):
		h.writeJSON(w, http.StatusConflict, errorBody{Error: err.Error()})
	case errors.Is(err, port.ErrInvalidReference),
		errors.Is(err, domain.ErrInvalidWeight),
		errors.Is(err, domain.ErrInvalidPriority),
		errors.Is(err, domain.ErrMissingCreative),
		errors.Is(err, domain.ErrMissingTarget),
		errors.Is(err, domain.ErrUnknownCreativeKind),
		errors.Is(err, domain.ErrUnknownConversionType),
		errors.Is(err, domain.ErrInvalidTransition):
		h.writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
	default:
		h.logger.Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		h.writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
	}
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		return 0, &requestError{msg: "invalid id"}
	}
	return id, nil
}

// clientIP returns the first X-Forwarded-For entry, falling back to the
// connection's remote address.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// userID reads the authenticated user id forwarded by the gateway, if any.
func userID(r *http.Request) *int64 {
	raw := r.Header.Get("X-User-ID")
	if raw == "" {
		return nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return nil
	}
	return &id
}
