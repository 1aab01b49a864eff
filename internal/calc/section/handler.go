package section

import (
	"net/http"

	"Cablesize/internal/calc/respond"
)

type Handler struct{}

func (h *Handler) Required(w http.ResponseWriter, r *http.Request) {
	var input RequiredInput
	if !respond.Decode(w, r, &input) {
		return
	}
	res, err := CalculateRequired(input)
	if err != nil {
		respond.Error(w, err)
		return
	}
	respond.OK(w, res)
}

func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	var input VerifyInput
	if !respond.Decode(w, r, &input) {
		return
	}
	res, err := CalculateVerify(input)
	if err != nil {
		respond.Error(w, err)
		return
	}
	respond.OK(w, res)
}
