package schema

import (
	"encoding/json"
)

const (
	nullType    = "null"
	stringType  = "string"
	booleanType = "boolean"
	integerType = "integer"
	numberType  = "number"
	objectType  = "object"

	dateTimeFormat = "date-time"
)

// Types is a JSON schema "type" value. A single type is written as a bare string.
type Types []string

func (t Types) MarshalJSON() ([]byte, error) {
	if len(t) == 1 {
		return json.Marshal(t[0])
	}
	return json.Marshal([]string(t))
}

func (t *Types) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*t = Types{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*t = many
	return nil
}

// Property is the JSON schema of a single field. The zero value accepts any JSON value.
type Property struct {
	Type       Types                `json:"type,omitempty"`
	Format     string               `json:"format,omitempty"`
	AnyOf      []*Property          `json:"anyOf,omitempty"`
	Properties map[string]*Property `json:"properties,omitempty"`
}

func nullable(t string) Types {
	return Types{nullType, t}
}

func addressProperty() *Property {
	return &Property{
		Type: nullable(objectType),
		Properties: map[string]*Property{
			"street":          {Type: nullable(stringType)},
			"state":           {Type: nullable(stringType)},
			"postalCode":      {Type: nullable(stringType)},
			"city":            {Type: nullable(stringType)},
			"country":         {Type: nullable(stringType)},
			"longitude":       {Type: nullable(numberType)},
			"latitude":        {Type: nullable(numberType)},
			"geocodeAccuracy": {Type: nullable(stringType)},
		},
	}
}

func locationProperty() *Property {
	return &Property{
		Type: Types{numberType, objectType, nullType},
		Properties: map[string]*Property{
			"longitude": {Type: nullable(numberType)},
			"latitude":  {Type: nullable(numberType)},
		},
	}
}

func dateTimeProperty() *Property {
	return &Property{
		AnyOf: []*Property{
			{Type: Types{stringType}, Format: dateTimeFormat},
			{Type: Types{stringType, nullType}},
		},
	}
}
