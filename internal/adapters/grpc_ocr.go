package adapters

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/structpb"
)

// extractMethod is the fully-qualified gRPC method the OCR sidecar
// exposes, called generically for the same reason invokeMethod is: no
// domain-specific .proto stub exists for it.
const extractMethod = "/alfrd.ocr.v1.OCRService/Extract"

// GRPCOCR calls an out-of-process OCR sidecar over gRPC, the OCR
// counterpart to GRPCLLM.
type GRPCOCR struct {
	conn *grpc.ClientConn
}

// NewGRPCOCR dials addr with insecure transport credentials.
func NewGRPCOCR(addr string) (*GRPCOCR, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to create OCR client for %s: %w", addr, err)
	}
	return &GRPCOCR{conn: conn}, nil
}

// Close releases the gRPC connection.
func (c *GRPCOCR) Close() error {
	return c.conn.Close()
}

// Extract sends folder as a Struct request and decodes the reply into an ExtractResult.
func (c *GRPCOCR) Extract(ctx context.Context, folder string) (*ExtractResult, error) {
	req, err := structpb.NewStruct(map[string]interface{}{"folder": folder})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build extract request: %v", ErrFatal, err)
	}

	reply := &structpb.Struct{}
	if err := c.conn.Invoke(ctx, extractMethod, req, reply); err != nil {
		if isRetryableGRPC(err) {
			return nil, fmt.Errorf("%w: %v", ErrTransient, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrFatal, err)
	}

	return decodeExtractReply(reply)
}

func decodeExtractReply(reply *structpb.Struct) (*ExtractResult, error) {
	fields := reply.GetFields()
	result := &ExtractResult{}

	if v, ok := fields["full_text"]; ok {
		result.FullText = v.GetStringValue()
	}
	if v, ok := fields["document_count"]; ok {
		result.DocumentCount = int(v.GetNumberValue())
	}
	if v, ok := fields["avg_confidence"]; ok {
		result.AvgConfidence = v.GetNumberValue()
	}
	if v, ok := fields["pages"]; ok {
		for _, pv := range v.GetListValue().GetValues() {
			ps := pv.GetStructValue()
			if ps == nil {
				continue
			}
			fp := FilePages{File: ps.GetFields()["file"].GetStringValue()}
			for _, bv := range ps.GetFields()["blocks"].GetListValue().GetValues() {
				bs := bv.GetStructValue()
				if bs == nil {
					continue
				}
				bf := bs.GetFields()
				fp.Blocks = append(fp.Blocks, Block{
					Type:       bf["type"].GetStringValue(),
					Text:       bf["text"].GetStringValue(),
					Confidence: bf["confidence"].GetNumberValue(),
					Left:       bf["left"].GetNumberValue(),
					Top:        bf["top"].GetNumberValue(),
					Width:      bf["width"].GetNumberValue(),
					Height:     bf["height"].GetNumberValue(),
				})
			}
			result.Pages = append(result.Pages, fp)
		}
	}

	if result.FullText == "" {
		return nil, fmt.Errorf("%w: reply carried empty full_text", ErrFatal)
	}
	return result, nil
}
