package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/protobuf/encoding/protojson"

	"github.com/evgeniy-krivenko/smart-notes/internal/api/health"
	"github.com/evgeniy-krivenko/smart-notes/pkg/logger/slogx"
)

// Probes the health endpoint of a running server. Exits non-zero unless
// the notes service is serving.
func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %v", err)
	}
}

func run() error {
	addr := flag.String("addr", "127.0.0.1:50051", "grpc address of the server")
	timeout := flag.Duration("timeout", 5*time.Second, "probe timeout")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := slogx.InitGlobal(
		os.Stdout,
		"info",
		true,
	); err != nil {
		return fmt.Errorf("init logger: %v", err)
	}

	conn, err := grpc.NewClient(
		*addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return fmt.Errorf("new client conn: %v", err)
	}
	defer conn.Close()

	c := healthpb.NewHealthClient(conn)

	resp, err := c.Check(ctx, &healthpb.HealthCheckRequest{Service: health.NotesService})
	if err != nil {
		return fmt.Errorf("health check: %v", err)
	}

	slogx.Info(ctx, "health check response", slog.String("response", protojson.Format(resp)))

	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		return fmt.Errorf("service is %s", resp.GetStatus())
	}

	return nil
}
