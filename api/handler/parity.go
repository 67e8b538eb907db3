package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/maxpoletaev/parity/api/model"
	"github.com/maxpoletaev/parity/parity"
)

// MaxBodySize caps the request body of the select endpoints.
const MaxBodySize = 1 << 20

var errTrailingData = errors.New("unexpected data after JSON body")

type ParityHandler struct {
	logger kitlog.Logger
}

func NewParityHandler(logger kitlog.Logger) *ParityHandler {
	return &ParityHandler{logger: logger}
}

func (api *ParityHandler) Register(r chi.Router) {
	r.Post("/evens", api.selectValues(parity.Even))
	r.Post("/odds", api.selectValues(parity.Odd))
}

func (api *ParityHandler) selectValues(p parity.Predicate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params model.SelectRequest

		if err := decodeBody(w, r, &params); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, model.ErrorResponse{Error: err.Error()})

			return
		}

		values, err := parity.FromAny(params.Values)
		if err != nil {
			resp := model.ErrorResponse{Error: err.Error()}

			var inputErr *parity.InvalidInputError
			if errors.As(err, &inputErr) {
				resp.Index = &inputErr.Index
			}

			level.Debug(api.logger).Log("msg", "rejected request", "path", r.URL.Path, "err", err)

			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, resp)

			return
		}

		render.JSON(w, r, model.SelectResponse{
			Values: parity.Select(p, values),
		})
	}
}

// decodeBody decodes exactly one JSON value from a size-limited body. Numbers
// are kept as json.Number.
func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodySize))
	dec.UseNumber()

	if err := dec.Decode(v); err != nil {
		return err
	}

	if _, err := dec.Token(); err != io.EOF {
		return errTrailingData
	}

	return nil
}
