// Package metadata defines the request correlation header of the mines API
// and the interceptors that guarantee every call carries one.
package metadata

import (
	"context"
	"strings"

	"github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/platform/id"
	"github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/platform/requestctx"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// RequestIDHeader is the gRPC metadata key for request correlation IDs.
const RequestIDHeader = "x-minesweeper-request-id"

// requestIDAttribute is the span attribute carrying the request ID.
const requestIDAttribute = "minesweeper.request_id"

// IsPrintableASCII reports whether a string contains only printable ASCII characters.
func IsPrintableASCII(value string) bool {
	if value == "" {
		return false
	}
	for i := 0; i < len(value); i++ {
		if value[i] < 0x20 || value[i] > 0x7e {
			return false
		}
	}
	return true
}

// FirstMetadataValue returns the first printable ASCII metadata value for a key.
func FirstMetadataValue(md metadata.MD, key string) string {
	if len(md) == 0 {
		return ""
	}
	for mdKey, values := range md {
		if !strings.EqualFold(mdKey, key) {
			continue
		}
		for _, value := range values {
			if IsPrintableASCII(value) {
				return value
			}
		}
	}
	return ""
}

// UnaryServerInterceptor guarantees every unary call a request ID, echoes it
// in the response headers and tags the active span with it.
func UnaryServerInterceptor(idGenerator func() (string, error)) grpc.UnaryServerInterceptor {
	if idGenerator == nil {
		idGenerator = id.NewID
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		updatedCtx, requestID, err := ensureRequestMetadata(ctx, idGenerator)
		if err != nil {
			return nil, status.Errorf(codes.Internal, "ensure request metadata: %v", err)
		}
		if err := grpc.SetHeader(updatedCtx, responseHeaders(requestID)); err != nil {
			return nil, status.Errorf(codes.Internal, "set response metadata: %v", err)
		}
		return handler(updatedCtx, req)
	}
}

// StreamServerInterceptor does for streams what UnaryServerInterceptor does
// for unary calls.
func StreamServerInterceptor(idGenerator func() (string, error)) grpc.StreamServerInterceptor {
	if idGenerator == nil {
		idGenerator = id.NewID
	}
	return func(srv any, stream grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		updatedCtx, requestID, err := ensureRequestMetadata(stream.Context(), idGenerator)
		if err != nil {
			return status.Errorf(codes.Internal, "ensure request metadata: %v", err)
		}
		if err := stream.SetHeader(responseHeaders(requestID)); err != nil {
			return status.Errorf(codes.Internal, "set response metadata: %v", err)
		}
		return handler(srv, &wrappedServerStream{ServerStream: stream, ctx: updatedCtx})
	}
}

// UnaryClientInterceptor sends the request ID stored in context, generating
// one when absent, so server logs and audit rows match client output.
func UnaryClientInterceptor(idGenerator func() (string, error)) grpc.UnaryClientInterceptor {
	if idGenerator == nil {
		idGenerator = id.NewID
	}
	return func(
		ctx context.Context,
		method string,
		req any,
		reply any,
		cc *grpc.ClientConn,
		invoker grpc.UnaryInvoker,
		opts ...grpc.CallOption,
	) error {
		outCtx, err := withOutgoingRequestID(ctx, idGenerator)
		if err != nil {
			return status.Errorf(codes.Internal, "ensure request metadata: %v", err)
		}
		return invoker(outCtx, method, req, reply, cc, opts...)
	}
}

// StreamClientInterceptor is the streaming counterpart of UnaryClientInterceptor.
func StreamClientInterceptor(idGenerator func() (string, error)) grpc.StreamClientInterceptor {
	if idGenerator == nil {
		idGenerator = id.NewID
	}
	return func(
		ctx context.Context,
		desc *grpc.StreamDesc,
		cc *grpc.ClientConn,
		method string,
		streamer grpc.Streamer,
		opts ...grpc.CallOption,
	) (grpc.ClientStream, error) {
		outCtx, err := withOutgoingRequestID(ctx, idGenerator)
		if err != nil {
			return nil, status.Errorf(codes.Internal, "ensure request metadata: %v", err)
		}
		return streamer(outCtx, desc, cc, method, opts...)
	}
}

// wrappedServerStream overrides the context for a gRPC stream.
type wrappedServerStream struct {
	grpc.ServerStream
	ctx context.Context
}

// Context returns the updated stream context.
func (w *wrappedServerStream) Context() context.Context {
	return w.ctx
}

// ensureRequestMetadata ensures the request ID exists and returns updated context.
func ensureRequestMetadata(ctx context.Context, idGenerator func() (string, error)) (context.Context, string, error) {
	requestID := requestIDFromIncomingContext(ctx)
	if requestID == "" {
		generatedID, err := idGenerator()
		if err != nil {
			return nil, "", err
		}
		requestID = generatedID
	}
	trace.SpanFromContext(ctx).SetAttributes(attribute.String(requestIDAttribute, requestID))
	return requestctx.WithRequestID(ctx, requestID), requestID, nil
}

func withOutgoingRequestID(ctx context.Context, idGenerator func() (string, error)) (context.Context, error) {
	if md, ok := metadata.FromOutgoingContext(ctx); ok && FirstMetadataValue(md, RequestIDHeader) != "" {
		return ctx, nil
	}
	requestID := requestctx.RequestIDFromContext(ctx)
	if requestID == "" {
		generatedID, err := idGenerator()
		if err != nil {
			return nil, err
		}
		requestID = generatedID
	}
	return metadata.AppendToOutgoingContext(ctx, RequestIDHeader, requestID), nil
}

// requestIDFromIncomingContext returns the request ID from incoming metadata.
func requestIDFromIncomingContext(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	return FirstMetadataValue(md, RequestIDHeader)
}

// responseHeaders builds response metadata headers from IDs.
func responseHeaders(requestID string) metadata.MD {
	return metadata.Pairs(RequestIDHeader, requestID)
}
