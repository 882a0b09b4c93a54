package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/starford/miti/internal/checksum"
	"github.com/starford/miti/internal/dateservice"
)

// Handler holds API route handlers.
type Handler struct {
	svc     *dateservice.Service
	metrics *Metrics
}

// NewHandler creates a new Handler. metrics may be nil.
func NewHandler(svc *dateservice.Service, metrics *Metrics) *Handler {
	return &Handler{svc: svc, metrics: metrics}
}

// Today handles GET /api/today.
//
//	@Summary		Today's date in both calendars
//	@Tags			dates
//	@Produce		json
//	@Param			lang	query		string	false	"Label language"	Enums(en, np)
//	@Success		200		{object}	DateDetail
//	@Failure		400		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/today [get]
func (h *Handler) Today(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Today(r.Context(), r.URL.Query().Get("lang"))
	if err != nil {
		writeError(w, "today", err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// Range handles GET /api/range.
//
//	@Summary		Supported date range
//	@Tags			dates
//	@Produce		json
//	@Success		200	{object}	RangeResponse
//	@Security		BearerAuth
//	@Router			/range [get]
func (h *Handler) Range(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, newRangeResponse(h.svc.Range(r.Context())))
}

// ToAD handles GET /api/convert/to-ad.
//
//	@Summary		Convert a BS date to AD
//	@Tags			convert
//	@Produce		json
//	@Param			date	query		string	true	"BS date, YYYY-MM-DD"
//	@Param			lang	query		string	false	"Label language"
//	@Success		200		{object}	DateDetail
//	@Failure		400		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/convert/to-ad [get]
func (h *Handler) ToAD(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	date := strings.TrimSpace(q.Get("date"))
	if date == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("query parameter 'date' is required"))
		return
	}
	d, err := h.svc.ToAD(r.Context(), date, q.Get("lang"))
	h.metrics.Conversion("to_ad", err)
	if err != nil {
		writeError(w, "convert to ad", err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// ToBS handles GET /api/convert/to-bs.
//
//	@Summary		Convert an AD date to BS
//	@Tags			convert
//	@Produce		json
//	@Param			date	query		string	true	"AD date, YYYY-MM-DD"
//	@Param			lang	query		string	false	"Label language"
//	@Success		200		{object}	DateDetail
//	@Failure		400		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/convert/to-bs [get]
func (h *Handler) ToBS(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	date := strings.TrimSpace(q.Get("date"))
	if date == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("query parameter 'date' is required"))
		return
	}
	d, err := h.svc.ToBS(r.Context(), date, q.Get("lang"))
	h.metrics.Conversion("to_bs", err)
	if err != nil {
		writeError(w, "convert to bs", err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// GetDate handles GET /api/dates/{date}.
//
//	@Summary		Describe a BS date
//	@Tags			dates
//	@Produce		json
//	@Param			date	path		string	true	"BS date, YYYY-MM-DD"
//	@Param			lang	query		string	false	"Label language"
//	@Success		200		{object}	DateDetail
//	@Failure		400		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/dates/{date} [get]
func (h *Handler) GetDate(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.GetDate(r.Context(), chi.URLParam(r, "date"), r.URL.Query().Get("lang"))
	if err != nil {
		writeError(w, "get date", err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// FormatDate handles GET /api/dates/{date}/format.
//
//	@Summary		Render a BS date with a layout
//	@Tags			dates
//	@Produce		json
//	@Param			date	path		string	true	"BS date, YYYY-MM-DD"
//	@Param			layout	query		string	false	"Layout, e.g. MMMM D, YYYY"
//	@Param			lang	query		string	false	"Label language"
//	@Success		200		{object}	FormatResponse
//	@Failure		400		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/dates/{date}/format [get]
func (h *Handler) FormatDate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	date := chi.URLParam(r, "date")
	text, err := h.svc.Format(r.Context(), date, q.Get("layout"), q.Get("lang"))
	if err != nil {
		writeError(w, "format date", err)
		return
	}
	writeJSON(w, http.StatusOK, FormatResponse{Date: date, Layout: h.svc.Layout(q.Get("layout")), Text: text})
}

// ShiftDate handles POST /api/dates/{date}/shift.
//
//	@Summary		Add or subtract days, weeks, months or years
//	@Tags			dates
//	@Accept			json
//	@Produce		json
//	@Param			date	path		string			true	"BS date, YYYY-MM-DD"
//	@Param			body	body		ShiftRequest	true	"Amount and unit"
//	@Success		200		{object}	DateDetail
//	@Failure		400		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/dates/{date}/shift [post]
func (h *Handler) ShiftDate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req ShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if req.Unit == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("unit is required"))
		return
	}
	lang := req.Lang
	if lang == "" {
		lang = r.URL.Query().Get("lang")
	}
	d, err := h.svc.Shift(r.Context(), chi.URLParam(r, "date"), req.Value, req.Unit, lang)
	if err != nil {
		writeError(w, "shift date", err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// Calendar handles GET /api/calendar/{kind}/{year}/{month}.
//
//	@Summary		Month page with day grid and navigation state
//	@Tags			calendar
//	@Produce		json
//	@Param			kind		path		string	true	"Calendar"	Enums(BS, AD)
//	@Param			year		path		int		true	"Year"
//	@Param			month		path		int		true	"Month, 1-12"
//	@Param			lang		query		string	false	"Label language"
//	@Param			selected	query		string	false	"Selected date in the page's calendar"
//	@Param			converter	query		bool	false	"Bound AD pages to the convertible range"
//	@Param			If-None-Match	header	string	false	"ETag of a cached page"
//	@Success		200			{object}	MonthResponse
//	@Success		304
//	@Failure		400			{object}	errResponse
//	@Security		BearerAuth
//	@Router			/calendar/{kind}/{year}/{month} [get]
func (h *Handler) Calendar(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("year must be an integer"))
		return
	}
	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("month must be an integer"))
		return
	}
	q := r.URL.Query()
	converter, _ := strconv.ParseBool(q.Get("converter"))

	page, err := h.svc.Month(r.Context(), dateservice.MonthQuery{
		Kind:      chi.URLParam(r, "kind"),
		Year:      year,
		Month:     month,
		Lang:      q.Get("lang"),
		Selected:  q.Get("selected"),
		Converter: converter,
	})
	if err != nil {
		writeError(w, "calendar", err)
		return
	}

	body, err := json.Marshal(page)
	if err != nil {
		writeError(w, "calendar", err)
		return
	}
	etag := checksum.ETag(body)
	w.Header().Set("ETag", etag)
	if checksum.Match(r.Header.Get("If-None-Match"), etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(append(body, '\n'))
}
