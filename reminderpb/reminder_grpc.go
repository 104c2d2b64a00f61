// Package reminderpb describes ReminderService with protobuf well-known types only,
// so no generated message code is needed:
//
//	service ReminderService {
//	    rpc RunEventReminders(google.protobuf.Empty) returns (google.protobuf.Struct);
//	}
package reminderpb

import (
	"context"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName ...
const ServiceName = "club.reminder.v1.ReminderService"

// RunEventRemindersMethod is the full method name
const RunEventRemindersMethod = "/" + ServiceName + "/RunEventReminders"

// ReminderServiceServer is the server API for ReminderService
type ReminderServiceServer interface {
	RunEventReminders(ctx context.Context, req *emptypb.Empty) (*structpb.Struct, error)
}

// UnimplementedReminderServiceServer can be embedded for forward compatibility
type UnimplementedReminderServiceServer struct {
}

// RunEventReminders ...
func (UnimplementedReminderServiceServer) RunEventReminders(context.Context, *emptypb.Empty) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RunEventReminders not implemented")
}

// RegisterReminderServiceServer ...
func RegisterReminderServiceServer(s grpc.ServiceRegistrar, srv ReminderServiceServer) {
	s.RegisterService(&ReminderServiceDesc, srv)
}

func runEventRemindersHandler(
	srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor,
) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReminderServiceServer).RunEventReminders(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RunEventRemindersMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReminderServiceServer).RunEventReminders(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

// ReminderServiceDesc ...
var ReminderServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ReminderServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "RunEventReminders",
			Handler:    runEventRemindersHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "club/reminder/v1/reminder.proto",
}

// ReminderServiceClient is the client API for ReminderService
type ReminderServiceClient interface {
	RunEventReminders(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type reminderServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewReminderServiceClient ...
func NewReminderServiceClient(cc grpc.ClientConnInterface) ReminderServiceClient {
	return &reminderServiceClient{cc: cc}
}

// RunEventReminders ...
func (c *reminderServiceClient) RunEventReminders(
	ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption,
) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	err := c.cc.Invoke(ctx, RunEventRemindersMethod, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}
