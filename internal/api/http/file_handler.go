package http

import (
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"path/filepath"

	"fleetdesk-backend/internal/service"
	"fleetdesk-backend/internal/storage"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// FileHandler accepts multipart uploads, stores them and attaches the
// resulting URL to the owning record.
type FileHandler struct {
	store      storage.Storage
	vehicleSvc service.VehicleService
	driverSvc  service.DriverService
	maxBytes   int64
}

func NewFileHandler(store storage.Storage, vehicleSvc service.VehicleService, driverSvc service.DriverService, maxFileSizeMB int64) *FileHandler {
	return &FileHandler{
		store:      store,
		vehicleSvc: vehicleSvc,
		driverSvc:  driverSvc,
		maxBytes:   maxFileSizeMB << 20,
	}
}

// UploadVehiclePhoto handles POST /vehicles/{id}/photos.
func (h *FileHandler) UploadVehiclePhoto(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}

	file, header, ok := h.openUpload(w, r)
	if !ok {
		return
	}
	defer file.Close()

	key := fmt.Sprintf("vehicles/%d/%s%s", id, uuid.New().String(), filepath.Ext(header.Filename))
	url, err := h.store.Save(r.Context(), key, contentTypeFor(header.Filename), file)
	if err != nil {
		writeError(w, err)
		return
	}

	v, err := h.vehicleSvc.AddPhoto(r.Context(), scopeFrom(r.Context()), id, url)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, v)
}

// UploadDriverDocument handles PUT /drivers/{id}/documents/{type}.
func (h *FileHandler) UploadDriverDocument(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}
	docType := mux.Vars(r)["type"]

	file, header, ok := h.openUpload(w, r)
	if !ok {
		return
	}
	defer file.Close()

	key := fmt.Sprintf("drivers/%d/%s/%s%s", id, docType, uuid.New().String(), filepath.Ext(header.Filename))
	url, err := h.store.Save(r.Context(), key, contentTypeFor(header.Filename), file)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.driverSvc.SetDocument(r.Context(), scopeFrom(r.Context()), id, docType, url); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"document_type": docType, "url": url, "key": key})
}

// ServeFile streams a stored object. Only the local backend routes
// downloads through the API.
func (h *FileHandler) ServeFile(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	file, err := h.store.Open(r.Context(), key)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
		return
	}
	defer file.Close()

	w.Header().Set("Content-Type", contentTypeFor(key))
	w.Header().Set("Cache-Control", "private, max-age=3600")
	io.Copy(w, file)
}

func (h *FileHandler) openUpload(w http.ResponseWriter, r *http.Request) (multipart.File, *multipart.FileHeader, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	if err := r.ParseMultipartForm(h.maxBytes); err != nil {
		writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "file too large"})
		return nil, nil, false
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing file field"})
		return nil, nil, false
	}
	return file, header, true
}

func contentTypeFor(name string) string {
	if ct := mime.TypeByExtension(filepath.Ext(name)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
