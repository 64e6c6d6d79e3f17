// Package grpc exposes the gRPC side of the server: the standard
// grpc.health.v1 service plus a request-logging interceptor.
package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-pocket-money/internal/logger"
)

// ServiceName is the health-check name of the pocket-money API. The empty
// name reports the state of the whole server.
const ServiceName = "pocketmoney.v1.PocketMoney"

// Handler is the root gRPC transport handler.
//
// It owns the health server whose status follows the lifecycle of the
// process: NOT_SERVING until [Handler.SetServing] is called with true.
type Handler struct {
	health *health.Server

	logger *logger.Logger
}

func NewHandler(logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		health: health.NewServer(),
		logger: logger,
	}
	h.SetServing(false)

	return h
}

// Register attaches the handler's services to server.
func (h *Handler) Register(server grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(server, h.health)
}

// SetServing flips the health status of the server and of [ServiceName].
func (h *Handler) SetServing(serving bool) {
	st := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		st = healthpb.HealthCheckResponse_SERVING
	}

	h.health.SetServingStatus("", st)
	h.health.SetServingStatus(ServiceName, st)
	h.logger.Info().Str("status", st.String()).Msg("gRPC health status changed")
}

// Shutdown marks every service NOT_SERVING and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

// UnaryLogging logs one entry per unary call with its status code.
func (h *Handler) UnaryLogging(
	ctx context.Context,
	req any,
	info *grpc.UnaryServerInfo,
	next grpc.UnaryHandler,
) (any, error) {
	start := time.Now()
	resp, err := next(h.logger.WithContext(ctx), req)

	code := status.Code(err)
	event := h.logger.Info()
	if code != codes.OK {
		event = h.logger.Warn().Err(err)
	}
	event.
		Str("method", info.FullMethod).
		Str("code", code.String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}
