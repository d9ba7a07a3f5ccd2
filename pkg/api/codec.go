package api

import "encoding/json"

// CodecName is the Connect codec name. It replaces Connect's protobuf-only
// "json" codec so plain structs travel as application/json.
const CodecName = "json"

// Codec marshals messages with encoding/json.
type Codec struct{}

func (Codec) Name() string { return CodecName }

func (Codec) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

func (Codec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }
