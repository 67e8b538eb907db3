package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/maxpoletaev/parity/internal/generic"
	"github.com/maxpoletaev/parity/internal/grpcutil"
	"github.com/maxpoletaev/parity/parity"
)

const (
	ErrorDomain            = "parity"
	ReasonInvalidInputKind = "INVALID_INPUT_KIND"
	ReasonInexactNumber    = "INEXACT_NUMBER"
)

// maxExactInt is the largest integer n such that n and n+1 are both exactly
// representable as float64.
const maxExactInt = 1<<53 - 1

// ParityService serves the parity filters over gRPC. Every number in a
// google.protobuf.ListValue is a float64, so integers above 2^53-1 in magnitude
// may already have been rounded by the client and cannot be trusted. Such
// values are rejected with InvalidArgument and ReasonInexactNumber instead of
// being filtered by a parity they may not have had. Clients needing full int64
// range should use the REST API.
type ParityService struct {
	logger kitlog.Logger
}

var _ ParityServiceServer = (*ParityService)(nil)

func New(logger kitlog.Logger) *ParityService {
	return &ParityService{
		logger: logger,
	}
}

func (s *ParityService) Evens(ctx context.Context, req *structpb.ListValue) (*structpb.ListValue, error) {
	return s.selectValues(ctx, parity.Even, req)
}

func (s *ParityService) Odds(ctx context.Context, req *structpb.ListValue) (*structpb.ListValue, error) {
	return s.selectValues(ctx, parity.Odd, req)
}

func (s *ParityService) selectValues(ctx context.Context, p parity.Predicate, req *structpb.ListValue) (*structpb.ListValue, error) {
	if err := ctx.Err(); err != nil {
		return nil, status.FromContextError(err).Err()
	}

	values, err := parity.FromAny(generic.Map(req.GetValues(), (*structpb.Value).AsInterface))
	if err != nil {
		var inputErr *parity.InvalidInputError
		if errors.As(err, &inputErr) {
			level.Debug(s.logger).Log("msg", "rejected request", "predicate", p, "index", inputErr.Index, "err", err)

			return nil, grpcutil.InvalidArgument(ErrorDomain, ReasonInvalidInputKind, err.Error(), map[string]string{
				"index": strconv.Itoa(inputErr.Index),
			})
		}

		return nil, status.New(codes.Internal, err.Error()).Err()
	}

	for i, v := range values {
		if v > maxExactInt || v < -maxExactInt {
			level.Debug(s.logger).Log("msg", "rejected inexact number", "predicate", p, "index", i, "value", v)

			return nil, grpcutil.InvalidArgument(ErrorDomain, ReasonInexactNumber,
				fmt.Sprintf("element %d: %d is outside the exact float64 integer range", i, v),
				map[string]string{"index": strconv.Itoa(i)},
			)
		}
	}

	selected := parity.Select(p, values)

	level.Debug(s.logger).Log("msg", "selected values", "predicate", p, "in", len(values), "out", len(selected))

	return &structpb.ListValue{
		Values: generic.Map(selected, toNumberValue),
	}, nil
}

func toNumberValue(v int64) *structpb.Value {
	return structpb.NewNumberValue(float64(v))
}
