package http

import (
	"net/http"

	"fleetdesk-backend/internal/domain"
	"fleetdesk-backend/internal/service"
)

type UserHandler struct {
	userSvc service.UserService
}

func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

type createMemberRequest struct {
	domain.User
	Password string `json:"password"`
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createMemberRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.userSvc.CreateMember(r.Context(), scopeFrom(r.Context()), &req.User, req.Password); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, req.User)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}

	u, err := h.userSvc.GetMember(r.Context(), scopeFrom(r.Context()), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)

	users, total, err := h.userSvc.ListMembers(r.Context(), scopeFrom(r.Context()), page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: users, Total: total})
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}

	var u domain.User
	if !decodeBody(w, r, &u) {
		return
	}
	u.ID = id

	if err := h.userSvc.UpdateMember(r.Context(), scopeFrom(r.Context()), &u); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}
