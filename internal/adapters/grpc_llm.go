package adapters

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// invokeMethod is the fully-qualified gRPC method the inference sidecar
// exposes. There is no generated stub for it: the request and reply are
// both google.protobuf.Struct, so grpc.ClientConn.Invoke can call it
// directly without a .proto-derived client.
const invokeMethod = "/alfrd.llm.v1.LLMService/Invoke"

// GRPCLLM calls an out-of-process inference sidecar over gRPC. It speaks
// in google.protobuf.Struct rather than a service-specific message type,
// keeping the wire contract schemaless so the sidecar can change models
// and options without protobuf codegen on this side.
type GRPCLLM struct {
	conn *grpc.ClientConn
}

// NewGRPCLLM dials addr with insecure transport credentials; the sidecar
// is assumed to share localhost. Upgrade to TLS if it ever moves across
// a network boundary.
func NewGRPCLLM(addr string) (*GRPCLLM, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client for %s: %w", addr, err)
	}
	return &GRPCLLM{conn: conn}, nil
}

// Close releases the gRPC connection.
func (c *GRPCLLM) Close() error {
	return c.conn.Close()
}

// Invoke sends promptText/userText/opts as a Struct request and decodes
// the reply Struct into an InvokeResult.
func (c *GRPCLLM) Invoke(ctx context.Context, promptText, userText string, opts InvokeOptions) (*InvokeResult, error) {
	reqFields := map[string]interface{}{
		"prompt_text": promptText,
		"user_text":   userText,
		"parse_json":  opts.ParseJSON,
	}
	if opts.Model != "" {
		reqFields["model"] = opts.Model
	}
	if opts.Temperature != nil {
		reqFields["temperature"] = float64(*opts.Temperature)
	}
	if opts.MaxTokens != nil {
		reqFields["max_tokens"] = float64(*opts.MaxTokens)
	}

	req, err := structpb.NewStruct(reqFields)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build invoke request: %v", ErrFatal, err)
	}

	reply := &structpb.Struct{}
	start := time.Now()
	err = c.conn.Invoke(ctx, invokeMethod, req, reply)
	latency := time.Since(start).Milliseconds()
	if err != nil {
		if isRetryableGRPC(err) {
			return nil, fmt.Errorf("%w: %v", ErrTransient, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrFatal, err)
	}

	return decodeInvokeReply(reply, latency)
}

func decodeInvokeReply(reply *structpb.Struct, latency int64) (*InvokeResult, error) {
	fields := reply.GetFields()
	result := &InvokeResult{LatencyMS: latency}

	if v, ok := fields["text"]; ok {
		result.Text = v.GetStringValue()
	}
	if v, ok := fields["parsed_json"]; ok {
		if s := v.GetStructValue(); s != nil {
			result.ParsedJSON = s.AsMap()
		}
	}
	if v, ok := fields["request_tokens"]; ok {
		result.RequestTokens = int(v.GetNumberValue())
	}
	if v, ok := fields["response_tokens"]; ok {
		result.ResponseTokens = int(v.GetNumberValue())
	}
	if v, ok := fields["model_id"]; ok {
		result.ModelID = v.GetStringValue()
	}

	if result.Text == "" && result.ParsedJSON == nil {
		return nil, fmt.Errorf("%w: reply carried neither text nor parsed_json", ErrFatal)
	}
	return result, nil
}

// isRetryableGRPC reports whether a gRPC error reflects a transient
// condition (unavailable sidecar, exhausted quota, deadline) rather than a
// permanent one (invalid argument, unauthenticated, not found).
func isRetryableGRPC(err error) bool {
	st, ok := status.FromError(err)
	if !ok {
		return false
	}
	switch st.Code() {
	case codes.Unavailable, codes.ResourceExhausted, codes.DeadlineExceeded, codes.Aborted:
		return true
	default:
		return false
	}
}
