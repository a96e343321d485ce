package http

import (
	"net/http"

	"fleetdesk-backend/internal/domain"
	"fleetdesk-backend/internal/service"
)

// RevenueHandler and ExpenseHandler mirror each other; the two ledgers
// share shapes but stay separate tables and routes.
type RevenueHandler struct {
	revenueSvc service.RevenueService
}

func NewRevenueHandler(revenueSvc service.RevenueService) *RevenueHandler {
	return &RevenueHandler{revenueSvc: revenueSvc}
}

func (h *RevenueHandler) Create(w http.ResponseWriter, r *http.Request) {
	var rev domain.Revenue
	if !decodeBody(w, r, &rev) {
		return
	}

	if err := h.revenueSvc.Create(r.Context(), scopeFrom(r.Context()), &rev); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rev)
}

func (h *RevenueHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}

	rev, err := h.revenueSvc.Get(r.Context(), scopeFrom(r.Context()), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rev)
}

func (h *RevenueHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	status := domain.LedgerStatus(r.URL.Query().Get("status"))

	revenues, total, err := h.revenueSvc.List(r.Context(), scopeFrom(r.Context()), status, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: revenues, Total: total})
}

func (h *RevenueHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}

	var rev domain.Revenue
	if !decodeBody(w, r, &rev) {
		return
	}
	rev.ID = id

	if err := h.revenueSvc.Update(r.Context(), scopeFrom(r.Context()), &rev); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rev)
}

func (h *RevenueHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}

	if err := h.revenueSvc.Delete(r.Context(), scopeFrom(r.Context()), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

type ExpenseHandler struct {
	expenseSvc service.ExpenseService
}

func NewExpenseHandler(expenseSvc service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseSvc: expenseSvc}
}

func (h *ExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var exp domain.Expense
	if !decodeBody(w, r, &exp) {
		return
	}

	if err := h.expenseSvc.Create(r.Context(), scopeFrom(r.Context()), &exp); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, exp)
}

func (h *ExpenseHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}

	exp, err := h.expenseSvc.Get(r.Context(), scopeFrom(r.Context()), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, exp)
}

func (h *ExpenseHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	status := domain.LedgerStatus(r.URL.Query().Get("status"))

	expenses, total, err := h.expenseSvc.List(r.Context(), scopeFrom(r.Context()), status, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: expenses, Total: total})
}

func (h *ExpenseHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}

	var exp domain.Expense
	if !decodeBody(w, r, &exp) {
		return
	}
	exp.ID = id

	if err := h.expenseSvc.Update(r.Context(), scopeFrom(r.Context()), &exp); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, exp)
}

func (h *ExpenseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}

	if err := h.expenseSvc.Delete(r.Context(), scopeFrom(r.Context()), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
