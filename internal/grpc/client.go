package grpc

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/weiawesome/wes-io-live/hashid-service/internal/codec"
)

// Client calls hashid.v1.HashIDService.
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient wraps an established connection.
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func (c *Client) invoke(ctx context.Context, method string, fields map[string]interface{}) (*structpb.Struct, error) {
	in, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s request: %w", method, err)
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, fullMethod(method), in, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Encode returns the id for numbers in namespace.
func (c *Client) Encode(ctx context.Context, namespace string, numbers ...uint64) (string, error) {
	out, err := c.invoke(ctx, "Encode", map[string]interface{}{
		"namespace": namespace,
		"numbers":   numberList(numbers),
	})
	if err != nil {
		return "", err
	}
	return stringField(out, "id"), nil
}

// EncodeBatch returns one id per number.
func (c *Client) EncodeBatch(ctx context.Context, namespace string, numbers ...uint64) ([]string, error) {
	out, err := c.invoke(ctx, "EncodeBatch", map[string]interface{}{
		"namespace": namespace,
		"numbers":   numberList(numbers),
	})
	if err != nil {
		return nil, err
	}

	values := out.GetFields()["ids"].GetListValue().GetValues()
	ids := make([]string, len(values))
	for i, v := range values {
		ids[i] = v.GetStringValue()
	}
	return ids, nil
}

// Decode returns the numbers encoded in id.
func (c *Client) Decode(ctx context.Context, namespace, id string) ([]uint64, error) {
	out, err := c.invoke(ctx, "Decode", map[string]interface{}{
		"namespace": namespace,
		"id":        id,
	})
	if err != nil {
		return nil, err
	}
	return numbersField(out, "numbers")
}

// Validate reports whether id belongs to namespace, and why not.
func (c *Client) Validate(ctx context.Context, namespace, id string) (bool, string, error) {
	out, err := c.invoke(ctx, "Validate", map[string]interface{}{
		"namespace": namespace,
		"id":        id,
	})
	if err != nil {
		return false, "", err
	}
	return out.GetFields()["valid"].GetBoolValue(), stringField(out, "reason"), nil
}

// Parse describes how id is put together.
func (c *Client) Parse(ctx context.Context, namespace, id string) (*codec.ParseResult, error) {
	out, err := c.invoke(ctx, "Parse", map[string]interface{}{
		"namespace": namespace,
		"id":        id,
	})
	if err != nil {
		return nil, err
	}

	numbers, err := numbersField(out, "numbers")
	if err != nil {
		return nil, err
	}
	f := out.GetFields()
	return &codec.ParseResult{
		Numbers:   numbers,
		IDLength:  int32(f["id_length"].GetNumberValue()),
		Lottery:   f["lottery"].GetStringValue(),
		Guarded:   f["guarded"].GetBoolValue(),
		MinLength: int32(f["min_length"].GetNumberValue()),
	}, nil
}

// GenerateSalt returns a random salt; size 0 selects the server default.
func (c *Client) GenerateSalt(ctx context.Context, size int) (string, error) {
	out, err := c.invoke(ctx, "GenerateSalt", map[string]interface{}{
		"size": float64(size),
	})
	if err != nil {
		return "", err
	}
	return stringField(out, "salt"), nil
}
