package grpc

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net"
	"strconv"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/weiawesome/wes-io-live/hashid-service/internal/codec"
	"github.com/weiawesome/wes-io-live/hashid-service/pkg/hashids"
	pkglog "github.com/weiawesome/wes-io-live/hashid-service/pkg/log"
)

type hashidServer struct {
	namespaces codec.Namespaces
	salts      *codec.SaltGenerator
}

func (s *hashidServer) lookup(req *structpb.Struct) (codec.Codec, error) {
	ns := stringField(req, "namespace")
	c, err := s.namespaces.Lookup(ns)
	if err != nil {
		return nil, status.Error(codes.NotFound, err.Error())
	}
	return c, nil
}

func (s *hashidServer) Encode(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	c, err := s.lookup(req)
	if err != nil {
		return nil, err
	}
	numbers, err := numbersField(req, "numbers")
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	id, err := c.Encode(numbers)
	if err != nil {
		return nil, toStatus(err)
	}
	return structpb.NewStruct(map[string]interface{}{"id": id})
}

func (s *hashidServer) EncodeBatch(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	c, err := s.lookup(req)
	if err != nil {
		return nil, err
	}
	numbers, err := numbersField(req, "numbers")
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	ids, err := c.EncodeBatch(numbers)
	if err != nil {
		return nil, toStatus(err)
	}
	list := make([]interface{}, len(ids))
	for i, id := range ids {
		list[i] = id
	}
	return structpb.NewStruct(map[string]interface{}{"ids": list})
}

func (s *hashidServer) Decode(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	c, err := s.lookup(req)
	if err != nil {
		return nil, err
	}

	numbers, err := c.Decode(stringField(req, "id"))
	if err != nil {
		return nil, toStatus(err)
	}
	return structpb.NewStruct(map[string]interface{}{"numbers": numberList(numbers)})
}

func (s *hashidServer) Validate(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	c, err := s.lookup(req)
	if err != nil {
		return nil, err
	}

	valid, reason := c.Validate(stringField(req, "id"))
	return structpb.NewStruct(map[string]interface{}{
		"valid":  valid,
		"reason": reason,
	})
}

func (s *hashidServer) Parse(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	c, err := s.lookup(req)
	if err != nil {
		return nil, err
	}

	result, err := c.Parse(stringField(req, "id"))
	if err != nil {
		return nil, toStatus(err)
	}
	return structpb.NewStruct(map[string]interface{}{
		"numbers":    numberList(result.Numbers),
		"id_length":  float64(result.IDLength),
		"lottery":    result.Lottery,
		"guarded":    result.Guarded,
		"min_length": float64(result.MinLength),
	})
}

func (s *hashidServer) GenerateSalt(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	size := int(req.GetFields()["size"].GetNumberValue())

	salt, err := s.salts.Generate(size)
	if err != nil {
		return nil, toStatus(err)
	}
	return structpb.NewStruct(map[string]interface{}{"salt": salt})
}

// toStatus maps codec and hashids errors to gRPC status codes.
func toStatus(err error) error {
	switch {
	case errors.Is(err, codec.ErrUnknownNamespace):
		return status.Error(codes.NotFound, err.Error())
	case hashids.IsEncodeError(err), hashids.IsDecodeError(err),
		errors.Is(err, codec.ErrBatchSize), errors.Is(err, codec.ErrSaltSize):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

func stringField(s *structpb.Struct, key string) string {
	return s.GetFields()[key].GetStringValue()
}

// numbersField reads a list of decimal strings. Plain JSON numbers are
// accepted as long as they are exact integers.
func numbersField(s *structpb.Struct, key string) ([]uint64, error) {
	values := s.GetFields()[key].GetListValue().GetValues()
	numbers := make([]uint64, 0, len(values))
	for i, v := range values {
		switch kind := v.GetKind().(type) {
		case *structpb.Value_StringValue:
			n, err := strconv.ParseUint(kind.StringValue, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%s[%d]: %q is not a non-negative integer", key, i, kind.StringValue)
			}
			numbers = append(numbers, n)
		case *structpb.Value_NumberValue:
			f := kind.NumberValue
			if f < 0 || f > 1<<53 || f != math.Trunc(f) {
				return nil, fmt.Errorf("%s[%d]: %v is not an exact non-negative integer", key, i, f)
			}
			numbers = append(numbers, uint64(f))
		default:
			return nil, fmt.Errorf("%s[%d]: expected a string or number", key, i)
		}
	}
	return numbers, nil
}

func numberList(numbers []uint64) []interface{} {
	list := make([]interface{}, len(numbers))
	for i, n := range numbers {
		list[i] = strconv.FormatUint(n, 10)
	}
	return list
}

// NewServer creates a gRPC server with the hashid service and the logging
// interceptor registered.
func NewServer(namespaces codec.Namespaces, salts *codec.SaltGenerator, logger zerolog.Logger) *grpc.Server {
	s := grpc.NewServer(
		grpc.UnaryInterceptor(pkglog.UnaryServerInterceptor(logger)),
	)
	RegisterHashIDServiceServer(s, &hashidServer{
		namespaces: namespaces,
		salts:      salts,
	})
	return s
}

// StartGRPCServer creates and starts the gRPC server in a background goroutine.
func StartGRPCServer(addr string, namespaces codec.Namespaces, salts *codec.SaltGenerator, logger zerolog.Logger) (*grpc.Server, error) {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	s := NewServer(namespaces, salts, logger)

	go func() {
		logger.Info().Str("addr", addr).Msg("grpc server listening")
		if err := s.Serve(lis); err != nil {
			logger.Error().Err(err).Msg("grpc server error")
		}
	}()

	return s, nil
}
