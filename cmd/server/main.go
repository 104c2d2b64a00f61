package main

import (
	"context"
	"fmt"
	"github.com/QuangTung97/club-reminder/config"
	"github.com/QuangTung97/club-reminder/pkg/cacheclient"
	"github.com/QuangTung97/club-reminder/pkg/grpclib"
	"github.com/QuangTung97/club-reminder/pkg/otellib"
	"github.com/QuangTung97/club-reminder/reminderpb"
	"github.com/QuangTung97/club-reminder/repository"
	"github.com/QuangTung97/club-reminder/service/reminder"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.uber.org/zap"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	grpc_prometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/go-sql-driver/mysql"
	grpc_zap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpc_ctxtags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/encoding/protojson"
)

type app struct {
	conf    config.Config
	logger  *zap.Logger
	service *reminder.Service
	closers []func()
}

func newApp() *app {
	conf := config.Load()
	logger := config.NewLogger(conf.Log)

	db := conf.MySQL.MustConnect(logger)
	a := &app{
		conf:   conf,
		logger: logger,
		closers: []func(){
			func() { _ = db.Close() },
		},
	}

	options := []reminder.Option{
		reminder.WithMetrics(reminder.NewMetrics(prometheus.DefaultRegisterer)),
	}
	if conf.Reminder.Lock.Enabled {
		client := cacheclient.New(conf.Memcache.Addr(), conf.Memcache.NumConns)
		a.closers = append(a.closers, func() { _ = client.Close() })

		options = append(options, reminder.WithLocker(
			cacheclient.NewLease(client, conf.Reminder.Lock.Key, conf.Reminder.Lock.TTLSeconds),
		))
	}

	a.service = reminder.NewService(
		conf.Reminder,
		repository.NewProvider(db),
		repository.NewEvent(),
		repository.NewRSVP(),
		repository.NewNotification(),
		options...,
	)
	return a
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	_ = a.logger.Sync()
}

func startServer() {
	a := newApp()
	defer a.close()

	tracerProvider, shutdown := otellib.InitOtel("club-reminder", "local", a.conf.Jaeger)
	defer shutdown()

	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	server := reminder.NewServer(a.service, tracerProvider)

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_recovery.UnaryServerInterceptor(grpc_recovery.WithRecoveryHandler(grpclib.RecoveryHandlerFunc)),
			grpc_ctxtags.UnaryServerInterceptor(),
			grpc_prometheus.UnaryServerInterceptor,

			otellib.UnaryServerInterceptor(tracerProvider),
			otellib.SetTraceInfoInterceptor(a.logger),

			grpc_zap.UnaryServerInterceptor(a.logger),
			grpc_zap.PayloadUnaryServerInterceptor(a.logger, payloadLogDecider),
		),
		grpc.ChainStreamInterceptor(
			grpc_recovery.StreamServerInterceptor(),
			grpc_ctxtags.StreamServerInterceptor(),
			grpc_prometheus.StreamServerInterceptor,
			grpc_zap.StreamServerInterceptor(a.logger),
		),
	)
	reminderpb.RegisterReminderServiceServer(grpcServer, server)

	grpc_prometheus.EnableHandlingTimeHistogram()
	grpc_prometheus.Register(grpcServer)

	mux := runtime.NewServeMux(
		runtime.WithMarshalerOption(runtime.MIMEWildcard, &runtime.JSONPb{}),
	)
	if err := server.RegisterHTTP(mux); err != nil {
		panic(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if a.conf.Reminder.Interval > 0 {
		go runTicker(ctx, a.logger, server, a.conf.Reminder.Interval)
	}

	startHTTPAndGRPCServers(a.conf, a.logger, grpcServer, mux)
}

// runTicker triggers the job in process, overlapping runs are never started by one ticker
func runTicker(ctx context.Context, logger *zap.Logger, server *reminder.Server, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	ctx = otellib.ToContext(ctx, logger)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_, err := server.RunEventReminders(ctx, nil)
			if err != nil {
				logger.Error("scheduled event reminders", zap.Error(err))
			}
		}
	}
}

func runOnce() error {
	a := newApp()
	defer a.close()

	ctx := otellib.ToContext(context.Background(), a.logger)
	result := a.service.RunEventReminders(ctx)

	data, err := protojson.Marshal(reminder.ResultToStruct(result))
	if err != nil {
		return err
	}
	fmt.Println(string(data))

	if result.Err != nil {
		return result.Err
	}
	return nil
}

func main() {
	rootCmd := cobra.Command{
		Use: "server",
	}
	rootCmd.AddCommand(
		startServerCommand(),
		runOnceCommand(),
	)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func payloadLogDecider(_ context.Context, _ string, _ interface{}) bool {
	return true
}

func startServerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "start the HTTP and gRPC servers",
		Run: func(cmd *cobra.Command, args []string) {
			startServer()
		},
	}
}

func runOnceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "run the event reminder job once and print the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return runOnce()
		},
	}
}

func startHTTPAndGRPCServers(conf config.Config, logger *zap.Logger, grpcServer *grpc.Server, mux *runtime.ServeMux) {
	logger.Info("listening",
		zap.String("grpc", conf.Server.GRPC.ListenString()),
		zap.String("http", conf.Server.HTTP.ListenString()),
	)

	httpMux := http.NewServeMux()
	httpMux.Handle("/metrics", promhttp.Handler())
	httpMux.Handle("/", otellib.HTTPLogger(logger, mux))

	httpServer := &http.Server{
		Addr:    conf.Server.HTTP.ListenString(),
		Handler: httpMux,
	}

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()

		err := httpServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			panic(err)
		}
		logger.Info("Shutdown HTTP server successfully")
	}()

	go func() {
		defer wg.Done()

		listener, err := net.Listen("tcp", conf.Server.GRPC.ListenString())
		if err != nil {
			panic(err)
		}

		err = grpcServer.Serve(listener)
		if err != nil {
			panic(err)
		}
		logger.Info("Shutdown gRPC server successfully")
	}()

	//--------------------------------
	// Graceful Shutdown
	//--------------------------------
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	grpcServer.GracefulStop()
	err := httpServer.Shutdown(ctx)
	if err != nil {
		panic(err)
	}

	wg.Wait()
}
