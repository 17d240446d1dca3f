package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/DRSN-tech/pokeshop/internal/cfg"
	"github.com/DRSN-tech/pokeshop/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"
)

func TestHealthLifecycle(t *testing.T) {
	lis := bufconn.Listen(1 << 20)
	srv := NewGRPCServer(&cfg.GRPCConfig{NetworkMode: "tcp"}, logger.NewNopLogger())
	srv.RegisterServices()

	go func() { _ = srv.Serve(lis) }()

	conn, err := grpc.NewClient(
		"passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	client := healthpb.NewHealthClient(conn)
	check := func() healthpb.HealthCheckResponse_ServingStatus {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		res, err := client.Check(ctx, &healthpb.HealthCheckRequest{Service: StorefrontService})
		require.NoError(t, err)
		return res.GetStatus()
	}

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check())

	srv.MarkServing()
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, srv.Stop(ctx))
}
