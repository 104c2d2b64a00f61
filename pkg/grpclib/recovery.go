package grpclib

import (
	"fmt"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// RecoveryHandlerFunc converts a panic in a handler to an Internal status
func RecoveryHandlerFunc(p interface{}) error {
	return status.Error(codes.Internal, fmt.Sprint("panic: ", p))
}
