package http

import (
	"net/http"

	"fleetdesk-backend/internal/domain"
	"fleetdesk-backend/internal/service"
)

type DriverHandler struct {
	driverSvc service.DriverService
}

func NewDriverHandler(driverSvc service.DriverService) *DriverHandler {
	return &DriverHandler{driverSvc: driverSvc}
}

func (h *DriverHandler) Create(w http.ResponseWriter, r *http.Request) {
	var d domain.Driver
	if !decodeBody(w, r, &d) {
		return
	}

	if err := h.driverSvc.Create(r.Context(), scopeFrom(r.Context()), &d); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, d)
}

func (h *DriverHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}

	d, err := h.driverSvc.Get(r.Context(), scopeFrom(r.Context()), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (h *DriverHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	status := domain.DriverStatus(r.URL.Query().Get("status"))

	drivers, total, err := h.driverSvc.List(r.Context(), scopeFrom(r.Context()), status, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: drivers, Total: total})
}

func (h *DriverHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}

	var d domain.Driver
	if !decodeBody(w, r, &d) {
		return
	}
	d.ID = id

	if err := h.driverSvc.Update(r.Context(), scopeFrom(r.Context()), &d); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (h *DriverHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}

	if err := h.driverSvc.Delete(r.Context(), scopeFrom(r.Context()), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
