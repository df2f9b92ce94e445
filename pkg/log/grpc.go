package log

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const metadataKeyRequestID = "x-request-id"

// UnaryServerInterceptor returns a gRPC unary server interceptor that stores a
// child logger in the call context and logs every completed call.
func UnaryServerInterceptor(logger zerolog.Logger) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		start := time.Now()

		child := logger.With().
			Str(FieldRequestID, requestIDFromMD(ctx)).
			Str(FieldGRPCMethod, info.FullMethod).
			Logger()

		resp, err := handler(WithLogger(ctx, child), req)

		lvl := zerolog.InfoLevel
		if err != nil {
			lvl = zerolog.WarnLevel
		}
		child.WithLevel(lvl).
			Err(err).
			Str(FieldGRPCCode, status.Code(err).String()).
			Float64(FieldLatency, float64(time.Since(start).Milliseconds())).
			Msg("unary call completed")

		return resp, err
	}
}

func requestIDFromMD(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if vals := md.Get(metadataKeyRequestID); len(vals) > 0 && vals[0] != "" {
			return vals[0]
		}
	}
	return uuid.New().String()
}
