package ampacity

import (
	"net/http"

	"Cablesize/internal/calc/respond"
)

type Handler struct{}

func (h *Handler) Reconcile(w http.ResponseWriter, r *http.Request) {
	var input Input
	if !respond.Decode(w, r, &input) {
		return
	}
	res, err := Calculate(input)
	if err != nil {
		respond.Error(w, err)
		return
	}
	respond.OK(w, res)
}
