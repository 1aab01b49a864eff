package catalog

import (
	"net/http"

	"Cablesize/internal/calc/conductor"
	"Cablesize/internal/calc/respond"

	"github.com/gorilla/mux"
)

type Handler struct{}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	m, err := conductor.ParseMaterial(mux.Vars(r)["material"])
	if err != nil {
		respond.Error(w, err)
		return
	}
	t, err := Table(m)
	if err != nil {
		respond.Error(w, err)
		return
	}
	respond.OK(w, t)
}

func (h *Handler) Resolve(w http.ResponseWriter, r *http.Request) {
	var input ResolveInput
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
