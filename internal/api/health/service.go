// Package health exposes the standard grpc.health.v1 service. Serving
// status follows the reachability of the notes storage.
package health

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/evgeniy-krivenko/smart-notes/pkg/grpcx"
	"github.com/evgeniy-krivenko/smart-notes/pkg/logger/slogx"
)

const NotesService = "smartnotes.Notes"

var _ grpcx.Service = (*Service)(nil)

type pinger interface {
	Ping(ctx context.Context) error
}

type Service struct {
	srv      *health.Server
	storage  pinger
	interval time.Duration
}

func New(storage pinger, interval time.Duration) *Service {
	srv := health.NewServer()
	srv.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	srv.SetServingStatus(NotesService, healthpb.HealthCheckResponse_NOT_SERVING)

	return &Service{srv: srv, storage: storage, interval: interval}
}

// RegisterService implements grpcx.Service.
func (s *Service) RegisterService(r grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(r, s.srv)
}

// Run probes the storage until ctx is done.
func (s *Service) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.Check(ctx)

	for {
		select {
		case <-ctx.Done():
			s.srv.Shutdown()
			return nil
		case <-ticker.C:
			s.Check(ctx)
		}
	}
}

// Check pings the storage once and updates the serving status.
func (s *Service) Check(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	if err := s.storage.Ping(ctx); err != nil {
		status = healthpb.HealthCheckResponse_NOT_SERVING
		slogx.Warn(ctx, "storage ping failed", slogx.Err(err))
	}

	s.srv.SetServingStatus("", status)
	s.srv.SetServingStatus(NotesService, status)

	slogx.Debug(ctx, "health checked", slog.String("status", status.String()))
}
