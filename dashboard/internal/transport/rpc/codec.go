package rpc

import "encoding/json"

// jsonCodec carries the plain Go request and response structs as JSON. It is
// registered under the name connect uses for application/json.
type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
