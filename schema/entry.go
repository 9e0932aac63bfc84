// Package schema turns remote object descriptions into catalog entries: one JSON schema plus
// breadcrumb metadata per object.
package schema

type ObjectSchema struct {
	Type                 string               `json:"type"`
	AdditionalProperties bool                 `json:"additionalProperties"`
	Properties           map[string]*Property `json:"properties"`
}

type Entry struct {
	Stream      string       `json:"stream"`
	TapStreamID string       `json:"tap_stream_id"`
	Schema      ObjectSchema `json:"schema"`
	Metadata    *Metadata    `json:"metadata"`
}

type Catalog struct {
	Streams []Entry `json:"streams"`
}
