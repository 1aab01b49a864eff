package importer

import (
	"errors"
	"net/http"

	"Cablesize/internal/calc/respond"
)

type Handler struct {
	MaxBytes int64
}

func (h *Handler) Lines(w http.ResponseWriter, r *http.Request) {
	if h.MaxBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.MaxBytes)
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		respond.Message(w, http.StatusBadRequest, "File required")
		return
	}
	defer file.Close()

	res, err := Read(file)
	if err != nil {
		if errors.Is(err, ErrEmptySheet) {
			respond.Message(w, http.StatusBadRequest, "Empty sheet")
			return
		}
		respond.Message(w, http.StatusBadRequest, "Invalid file")
		return
	}
	respond.OK(w, res)
}
