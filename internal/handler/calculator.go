package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/nirmaan-labs/nirmaan/internal/domain"
	"github.com/nirmaan-labs/nirmaan/internal/estimate"
	"github.com/nirmaan-labs/nirmaan/internal/metrics"
)

// CalculatorHandler dispatches estimation requests to the trade
// calculators.
//
// Routes handled:
// - POST /api/calculators/{trade} -> Calculate
type CalculatorHandler struct {
	logger *slog.Logger
}

// NewCalculatorHandler creates a new CalculatorHandler instance.
func NewCalculatorHandler(logger *slog.Logger) *CalculatorHandler {
	return &CalculatorHandler{logger: logger}
}

// calculators maps the trade path segment to a decode-and-compute
// function. Each entry unmarshals the request body into the trade's
// input record and runs the calculator.
var calculators = map[string]func([]byte) (interface{}, error){
	"concrete":   decodeAndRun(estimate.CalculateConcrete),
	"electrical": decodeAndRun(estimate.CalculateElectrical),
	"flooring":   decodeAndRun(estimate.CalculateFlooring),
	"hvac":       decodeAndRun(estimate.CalculateHVAC),
	"grading":    decodeAndRun(estimate.CalculateGrading),
	"loan":       decodeAndRun(estimate.CalculateLoan),
	"masonry":    decodeAndRun(estimate.CalculateMasonry),
	"paint":      decodeAndRun(estimate.CalculatePaint),
	"plumbing":   decodeAndRun(estimate.CalculatePlumbing),
	"roofing":    decodeAndRun(estimate.CalculateRoofing),
	"roi":        decodeAndRun(estimate.CalculateROI),
	"staircase":  decodeAndRun(estimate.CalculateStaircase),
}

// decodeAndRun adapts a typed calculator into the generic shape the
// dispatch table needs.
func decodeAndRun[In any, Out any](calc func(In) (*Out, error)) func([]byte) (interface{}, error) {
	return func(body []byte) (interface{}, error) {
		var in In
		if err := json.Unmarshal(body, &in); err != nil {
			return nil, err
		}
		return calc(in)
	}
}

// Calculate runs the calculator named by the {trade} path segment.
func (h *CalculatorHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	const op = "CalculatorHandler.Calculate"

	trade := r.PathValue("trade")
	run, ok := calculators[trade]
	if !ok {
		ErrorResponse(w, r, h.logger, domain.NotFound(op, "calculator", trade))
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxContactBodyBytes))
	if err != nil {
		ErrorResponse(w, r, h.logger, domain.Invalid(op, "Failed to read request body"))
		return
	}

	result, err := run(body)
	if err != nil {
		metrics.EstimatesComputed.WithLabelValues(trade, "failure").Inc()

		var invalid *estimate.InvalidNumberError
		var syntax *json.SyntaxError
		var unmarshalType *json.UnmarshalTypeError
		switch {
		case errors.As(err, &invalid):
			ErrorResponse(w, r, h.logger, domain.Wrap(err, domain.EINVALID, op, invalid.Error()))
		case errors.As(err, &syntax), errors.As(err, &unmarshalType):
			ErrorResponse(w, r, h.logger, domain.Invalid(op, "Request body must be valid JSON"))
		default:
			ErrorResponse(w, r, h.logger, domain.Internal(err, op, "Calculation failed"))
		}
		return
	}

	metrics.EstimatesComputed.WithLabelValues(trade, "success").Inc()
	writeJSON(w, http.StatusOK, result)
}
