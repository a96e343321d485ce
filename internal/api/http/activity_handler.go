package http

import (
	"net/http"
	"strconv"

	"fleetdesk-backend/internal/domain"
	"fleetdesk-backend/internal/repository"
	"fleetdesk-backend/internal/service"
)

type ActivityHandler struct {
	activitySvc service.ActivityService
}

func NewActivityHandler(activitySvc service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activitySvc: activitySvc}
}

type createActivityRequest struct {
	domain.Activity
	// LedgerAction requests a revenue or expense entry derived from the
	// activity. Defaults to none.
	LedgerAction domain.LedgerAction `json:"ledger_action"`
}

type createActivityResponse struct {
	Activity *domain.Activity `json:"activity"`
	Revenue  *domain.Revenue  `json:"revenue,omitempty"`
	Expense  *domain.Expense  `json:"expense,omitempty"`
}

func (h *ActivityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createActivityRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.LedgerAction == "" {
		req.LedgerAction = domain.LedgerActionNone
	}

	rev, exp, err := h.activitySvc.Create(r.Context(), scopeFrom(r.Context()), &req.Activity, req.LedgerAction)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, createActivityResponse{Activity: &req.Activity, Revenue: rev, Expense: exp})
}

func (h *ActivityHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}

	a, err := h.activitySvc.Get(r.Context(), scopeFrom(r.Context()), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)

	var filter repository.ActivityFilter
	filter.Type = domain.ActivityType(r.URL.Query().Get("type"))
	if raw := r.URL.Query().Get("vehicle_id"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 32); err == nil && v > 0 {
			filter.VehicleID = int32(v)
		}
	}
	if raw := r.URL.Query().Get("driver_id"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 32); err == nil && v > 0 {
			filter.DriverID = int32(v)
		}
	}

	activities, total, err := h.activitySvc.List(r.Context(), scopeFrom(r.Context()), filter, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: activities, Total: total})
}

func (h *ActivityHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}

	var a domain.Activity
	if !decodeBody(w, r, &a) {
		return
	}
	a.ID = id

	if err := h.activitySvc.Update(r.Context(), scopeFrom(r.Context()), &a); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (h *ActivityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}

	if err := h.activitySvc.Delete(r.Context(), scopeFrom(r.Context()), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
