package lifecycle

import (
	"net/http"

	"Cablesize/internal/calc/respond"
)

type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if !respond.Decode(w, r, &input) {
		return
	}
	res, err := Evaluate(input.Entry, input.Params)
	if err != nil {
		respond.Error(w, err)
		return
	}
	respond.OK(w, res)
}
