package schema

import (
	"encoding/json"
	"strings"
)

type Inclusion string

const (
	InclusionAutomatic   Inclusion = "automatic"
	InclusionAvailable   Inclusion = "available"
	InclusionUnsupported Inclusion = "unsupported"
)

const (
	InclusionKey               = "inclusion"
	SelectedByDefaultKey       = "selected-by-default"
	UnsupportedDescriptionKey  = "unsupported-description"
	ValidReplicationKeysKey    = "valid-replication-keys"
	ForcedReplicationMethodKey = "forced-replication-method"
	TableKeyPropertiesKey      = "table-key-properties"

	propertiesBreadcrumb = "properties"
	breadcrumbSeparator  = "\x00"
)

type ForcedReplicationMethod struct {
	ReplicationMethod string `json:"replication-method"`
	Reason            string `json:"reason"`
}

type MetadataRecord struct {
	Breadcrumb []string               `json:"breadcrumb"`
	Metadata   map[string]interface{} `json:"metadata"`
}

func RootBreadcrumb() []string {
	return []string{}
}

func FieldBreadcrumb(fieldName string) []string {
	return []string{propertiesBreadcrumb, fieldName}
}

// Metadata is a breadcrumb-keyed set of annotations. Each breadcrumb holds at most one value
// per key; writing a key again replaces it. Records come out root first, then in the order
// their breadcrumbs were first written.
type Metadata struct {
	order   []string
	records map[string]*MetadataRecord
}

func NewMetadata() *Metadata {
	return &Metadata{records: make(map[string]*MetadataRecord)}
}

func (m *Metadata) Write(breadcrumb []string, key string, value interface{}) {
	k := strings.Join(breadcrumb, breadcrumbSeparator)
	rec, ok := m.records[k]
	if !ok {
		rec = &MetadataRecord{
			Breadcrumb: append([]string{}, breadcrumb...),
			Metadata:   make(map[string]interface{}),
		}
		m.records[k] = rec
		m.order = append(m.order, k)
	}
	rec.Metadata[key] = value
}

func (m *Metadata) Get(breadcrumb []string, key string) (interface{}, bool) {
	rec, ok := m.records[strings.Join(breadcrumb, breadcrumbSeparator)]
	if !ok {
		return nil, false
	}
	v, ok := rec.Metadata[key]
	return v, ok
}

func (m *Metadata) Delete(breadcrumb []string, key string) {
	if rec, ok := m.records[strings.Join(breadcrumb, breadcrumbSeparator)]; ok {
		delete(rec.Metadata, key)
	}
}

func (m *Metadata) Records() []MetadataRecord {
	out := make([]MetadataRecord, 0, len(m.order))
	if root, ok := m.records[""]; ok {
		out = append(out, *root)
	}
	for _, k := range m.order {
		if k == "" {
			continue
		}
		out = append(out, *m.records[k])
	}
	return out
}

func (m *Metadata) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Records())
}
