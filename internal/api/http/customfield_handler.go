package http

import (
	"net/http"

	"fleetdesk-backend/internal/domain"
	"fleetdesk-backend/internal/service"
)

type CustomFieldHandler struct {
	fieldSvc service.CustomFieldService
}

func NewCustomFieldHandler(fieldSvc service.CustomFieldService) *CustomFieldHandler {
	return &CustomFieldHandler{fieldSvc: fieldSvc}
}

func (h *CustomFieldHandler) Define(w http.ResponseWriter, r *http.Request) {
	var def domain.CustomFieldDefinition
	if !decodeBody(w, r, &def) {
		return
	}

	if err := h.fieldSvc.DefineField(r.Context(), scopeFrom(r.Context()), &def); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, def)
}

func (h *CustomFieldHandler) List(w http.ResponseWriter, r *http.Request) {
	entity := domain.CustomFieldEntity(r.URL.Query().Get("entity"))

	defs, err := h.fieldSvc.ListFields(r.Context(), scopeFrom(r.Context()), entity)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: defs, Total: int32(len(defs))})
}

func (h *CustomFieldHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}

	if err := h.fieldSvc.DeleteField(r.Context(), scopeFrom(r.Context()), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
