package compliance

import (
	"net/http"

	"Cablesize/internal/calc/respond"
)

type Handler struct{}

func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	var input Input
	if !respond.Decode(w, r, &input) {
		return
	}
	res, err := Check(input.Circuit, input.DropPercent)
	if err != nil {
		respond.Error(w, err)
		return
	}
	respond.OK(w, res)
}
