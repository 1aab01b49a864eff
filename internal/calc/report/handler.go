package report

import (
	"bytes"
	"log/slog"
	"net/http"
	"time"

	"Cablesize/internal/calc/premium/optimize"
	"Cablesize/internal/calc/respond"
)

type Handler struct{}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if !respond.Decode(w, r, &input) {
		return
	}
	res, err := optimize.Plan(input.Plan)
	if err != nil {
		respond.Error(w, err)
		return
	}

	var buf bytes.Buffer
	if err := Render(&buf, input.Meta, res, time.Now()); err != nil {
		slog.Error("render report", "error", err)
		respond.Message(w, http.StatusInternalServerError, "Report generation error")
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"report.pdf\"")
	w.Write(buf.Bytes())
}
