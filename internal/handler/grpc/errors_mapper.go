package grpc

import (
	"errors"

	"github.com/MKhiriev/go-translator/internal/service"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// errorStatus is the status a service error maps to. An empty message keeps
// the error's own text.
type errorStatus struct {
	target  error
	code    codes.Code
	message string
}

var errorStatuses = []errorStatus{
	{target: service.ErrNoInputWord, code: codes.InvalidArgument, message: "No input word given"},
	{target: service.ErrUnknownWord, code: codes.InvalidArgument},
}

// statusFromError converts a service error into a gRPC status error.
// Anything unmapped becomes an opaque codes.Internal.
func statusFromError(err error) error {
	for _, s := range errorStatuses {
		if !errors.Is(err, s.target) {
			continue
		}
		if s.message != "" {
			return status.Error(s.code, s.message)
		}
		return status.Error(s.code, err.Error())
	}

	return status.Error(codes.Internal, "internal error")
}
