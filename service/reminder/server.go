package reminder

import (
	"context"
	"github.com/QuangTung97/club-reminder/pkg/otellib"
	"github.com/QuangTung97/club-reminder/reminderpb"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"net/http"
	"time"
)

// HTTPPath of the trigger endpoint
const HTTPPath = "/v1/reminders/event-24h"

// Server exposes the job over gRPC and plain HTTP
type Server struct {
	reminderpb.UnimplementedReminderServiceServer

	service   IService
	timeout   time.Duration
	marshaler runtime.Marshaler
}

var _ reminderpb.ReminderServiceServer = &Server{}

// NewServer ...
func NewServer(s *Service, tracerProvider trace.TracerProvider) *Server {
	return newServer(
		NewIServiceWrapper(s, tracerProvider.Tracer("reminder"), "service::"),
		s.conf.Timeout,
	)
}

func newServer(service IService, timeout time.Duration) *Server {
	return &Server{
		service:   service,
		timeout:   timeout,
		marshaler: &runtime.JSONPb{},
	}
}

func (s *Server) run(ctx context.Context) Result {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	return s.service.RunEventReminders(ctx)
}

// ResultToStruct builds {"success": true, "events_processed": N, ...} or {"success": false, "error": "..."}
func ResultToStruct(r Result) *structpb.Struct {
	fields := map[string]*structpb.Value{
		"success": structpb.NewBoolValue(r.Success()),
	}
	if r.Err != nil {
		fields["error"] = structpb.NewStringValue(r.Err.Error())
		return &structpb.Struct{Fields: fields}
	}

	fields["events_processed"] = structpb.NewNumberValue(float64(r.EventsProcessed))
	fields["notifications_created"] = structpb.NewNumberValue(float64(r.NotificationsCreated))
	if r.Skipped {
		fields["skipped"] = structpb.NewBoolValue(true)
	}
	return &structpb.Struct{Fields: fields}
}

// RunEventReminders ...
func (s *Server) RunEventReminders(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	result := s.run(ctx)
	if result.Err != nil {
		return nil, status.Error(codes.Internal, result.Err.Error())
	}
	return ResultToStruct(result), nil
}

// HandleHTTP ignores the request body and always writes a JSON result
func (s *Server) HandleHTTP(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	result := s.run(r.Context())

	code := http.StatusOK
	if result.Err != nil {
		code = http.StatusInternalServerError
	}

	data, err := s.marshaler.Marshal(ResultToStruct(result))
	if err != nil {
		otellib.Extract(r.Context()).Error("marshal reminder result", zap.Error(err))
		http.Error(w, `{"success":false,"error":"internal error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(data)
}

// RegisterHTTP mounts the trigger for GET and POST
func (s *Server) RegisterHTTP(mux *runtime.ServeMux) error {
	for _, method := range []string{http.MethodPost, http.MethodGet} {
		if err := mux.HandlePath(method, HTTPPath, s.HandleHTTP); err != nil {
			return err
		}
	}
	return nil
}
