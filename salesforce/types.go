package salesforce

import (
	"encoding/json"
)

type FieldDescriptor struct {
	Name             string   `json:"name"`
	Label            string   `json:"label,omitempty"`
	Type             string   `json:"type"`
	ExternalID       bool     `json:"externalId"`
	RelationshipName string   `json:"relationshipName,omitempty"`
	ReferenceTo      []string `json:"referenceTo,omitempty"`
}

type ObjectDescriptor struct {
	Name          string            `json:"name"`
	Label         string            `json:"label"`
	CustomSetting bool              `json:"customSetting"`
	Fields        []FieldDescriptor `json:"fields"`
}

func (o ObjectDescriptor) FieldNames() map[string]struct{} {
	names := make(map[string]struct{}, len(o.Fields))
	for _, f := range o.Fields {
		names[f.Name] = struct{}{}
	}
	return names
}

func (o ObjectDescriptor) HasField(name string) bool {
	for _, f := range o.Fields {
		if f.Name == name {
			return true
		}
	}
	return false
}

// ExternalIDFields returns the names of fields flagged as external ids, in describe order.
func (o ObjectDescriptor) ExternalIDFields() []string {
	var names []string
	for _, f := range o.Fields {
		if f.ExternalID {
			names = append(names, f.Name)
		}
	}
	return names
}

type globalDescribe struct {
	SObjects []struct {
		Name string `json:"name"`
	} `json:"sobjects"`
}

type RowAttributes struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

// Row is a single record returned by a query. Attributes.URL is the record's resource path.
type Row struct {
	Attributes RowAttributes
	Fields     map[string]interface{}
}

func (r Row) ID() string {
	id, _ := r.Fields["Id"].(string)
	return id
}

func (r *Row) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.Fields = make(map[string]interface{}, len(raw))
	for k, v := range raw {
		if k == "attributes" {
			if err := json.Unmarshal(v, &r.Attributes); err != nil {
				return err
			}
			continue
		}
		var value interface{}
		if err := json.Unmarshal(v, &value); err != nil {
			return err
		}
		r.Fields[k] = value
	}
	return nil
}

type queryPage struct {
	TotalSize      int    `json:"totalSize"`
	Done           bool   `json:"done"`
	Records        []Row  `json:"records"`
	NextRecordsURL string `json:"nextRecordsUrl"`
}
