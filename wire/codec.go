package wire

import (
	"google.golang.org/grpc/encoding"
	"tlog.app/go/errors"
)

type (
	// Codec is a gRPC codec for generated messages.
	// It is named "proto" since the bytes are plain protobuf,
	// so peers using the stock protobuf codec understand it.
	Codec struct{}
)

var _ encoding.Codec = Codec{}

func (Codec) Name() string { return "proto" }

func (Codec) Marshal(v any) ([]byte, error) {
	m, ok := v.(Message)
	if !ok {
		return nil, errors.New("marshal %T: not a xolir message", v)
	}

	return Marshal(m)
}

func (Codec) Unmarshal(data []byte, v any) error {
	m, ok := v.(Message)
	if !ok {
		return errors.New("unmarshal into %T: not a xolir message", v)
	}

	return Unmarshal(data, m)
}
