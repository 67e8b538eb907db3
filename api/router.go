package api

import (
	"github.com/go-chi/chi/v5"
	kitlog "github.com/go-kit/log"

	"github.com/maxpoletaev/parity/api/handler"
)

func CreateRouter(logger kitlog.Logger) *chi.Mux {
	r := chi.NewRouter()

	handler.NewParityHandler(logger).Register(r)

	return r
}
