// Package api defines the request and response messages of the tripboard
// Connect services. Messages are plain structs carried as JSON.
package api

import (
	"encoding/json"

	"connectrpc.com/connect"
)

// CodecName is registered in place of Connect's protobuf JSON codec.
const CodecName = "json"

type jsonCodec struct{}

func (jsonCodec) Name() string { return CodecName }

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}

// WithJSON is the option both handlers and clients need to exchange these messages.
func WithJSON() connect.Option {
	return connect.WithCodec(jsonCodec{})
}
