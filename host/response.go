package host

import (
	"encoding/json"

	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"
)

// Response is what an invocation hands back to the host: outbound messages executed
// atomically with the state changes, ordered attributes and an optional data payload.
type Response struct {
	Messages   []wasmvmtypes.CosmosMsg      `json:"messages"`
	Attributes []wasmvmtypes.EventAttribute `json:"attributes"`
	Data       []byte                       `json:"data,omitempty"`
}

func NewResponse() *Response {
	return &Response{
		Messages:   []wasmvmtypes.CosmosMsg{},
		Attributes: []wasmvmtypes.EventAttribute{},
	}
}

func (r *Response) AddAttribute(key, value string) *Response {
	r.Attributes = append(r.Attributes, wasmvmtypes.EventAttribute{Key: key, Value: value})
	return r
}

func (r *Response) AddAttributes(attrs ...wasmvmtypes.EventAttribute) *Response {
	r.Attributes = append(r.Attributes, attrs...)
	return r
}

func (r *Response) AddMessages(msgs ...wasmvmtypes.CosmosMsg) *Response {
	r.Messages = append(r.Messages, msgs...)
	return r
}

// SetJSONData sets the data payload to the JSON encoding of v.
func (r *Response) SetJSONData(v any) error {
	bz, err := json.Marshal(v)
	if err != nil {
		return err
	}
	r.Data = bz
	return nil
}

// Merge appends the messages and attributes of o, keeping their order.
func (r *Response) Merge(o *Response) *Response {
	r.Messages = append(r.Messages, o.Messages...)
	r.Attributes = append(r.Attributes, o.Attributes...)
	return r
}

// Attribute returns the value of the first attribute with the given key.
func (r *Response) Attribute(key string) (string, bool) {
	for _, attr := range r.Attributes {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return "", false
}

// Attr builds one attribute.
func Attr(key, value string) wasmvmtypes.EventAttribute {
	return wasmvmtypes.EventAttribute{Key: key, Value: value}
}
