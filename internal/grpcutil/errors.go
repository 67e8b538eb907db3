package grpcutil

import (
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrorCode extracts a gRPC error code from an error. If the error is not a
// gRPC error, it returns codes.Unknown.
func ErrorCode(err error) codes.Code {
	if err == nil {
		return codes.OK
	}

	if st, ok := status.FromError(err); ok {
		return st.Code()
	}

	return codes.Unknown
}

// ErrorInfo extracts an error info from an error. If the error is not a gRPC
// error or does not contain an error info, it returns nil.
func ErrorInfo(err error) *errdetails.ErrorInfo {
	st := status.Convert(err)

	for _, detail := range st.Details() {
		if info, ok := detail.(*errdetails.ErrorInfo); ok {
			return info
		}
	}

	return nil
}

// InvalidArgument builds an InvalidArgument status error with an ErrorInfo
// detail attached.
func InvalidArgument(domain, reason, msg string, md map[string]string) error {
	st := status.New(codes.InvalidArgument, msg)

	withDetails, err := st.WithDetails(&errdetails.ErrorInfo{
		Domain:   domain,
		Reason:   reason,
		Metadata: md,
	})
	if err != nil {
		return st.Err()
	}

	return withDetails.Err()
}
