package schema

import (
	"github.com/pkg/errors"

	"github.com/hotglue/target-salesforce/config"
	"github.com/hotglue/target-salesforce/salesforce"
)

const (
	CompoundFieldBulkReason = "cannot query compound address fields or geolocations with bulk API"
	JSONFieldReason         = "do not currently support json fields - please contact support"
	BinaryFieldReason       = "binary data"

	UnknownFieldTypeErrorFormat = "Found unsupported type: %s (field %s.%s)"

	idField = "Id"
)

var stringTypes = map[string]struct{}{
	"id": {}, "string": {}, "picklist": {}, "textarea": {}, "phone": {}, "url": {},
	"reference": {}, "multipicklist": {}, "combobox": {}, "encryptedstring": {}, "email": {},
	"complexvalue": {}, "masterrecord": {}, "datacategorygroupreference": {}, "base64": {},
}

// Classification is the result of classifying a single field.
type Classification struct {
	Property          *Property
	Inclusion         Inclusion
	SelectedByDefault bool
	UnsupportedReason string
}

// SkipNotice records a field left out of the selectable set and why.
type SkipNotice struct {
	Field  string
	Reason string
}

type Classifier struct {
	apiType         config.APIType
	selectByDefault bool
}

func NewClassifier(apiType config.APIType, selectByDefault bool) *Classifier {
	return &Classifier{apiType: apiType, selectByDefault: selectByDefault}
}

// Classify maps a field to its property schema and inclusion. The first matching
// unsupported rule wins; an unknown remote type is an error.
func (c *Classifier) Classify(field salesforce.FieldDescriptor, objectName string) (Classification, error) {
	property, err := propertyFor(field, objectName)
	if err != nil {
		return Classification{}, err
	}

	cls := Classification{Property: property}
	switch {
	case (field.Type == "address" || field.Type == "location") && c.apiType == config.BulkAPI:
		cls.UnsupportedReason = CompoundFieldBulkReason
	case field.Type == "json":
		cls.UnsupportedReason = JSONFieldReason
	case field.Type == "byte":
		cls.UnsupportedReason = BinaryFieldReason
	default:
		if reason, ok := blacklistedFieldReason(c.apiType, objectName, field.Name); ok {
			cls.UnsupportedReason = reason
		}
	}

	switch {
	case cls.UnsupportedReason != "":
		cls.Inclusion = InclusionUnsupported
	case field.Name == idField:
		cls.Inclusion = InclusionAutomatic
	default:
		cls.Inclusion = InclusionAvailable
		cls.SelectedByDefault = c.selectByDefault
	}
	return cls, nil
}

// BuildEntry classifies every field of object and assembles its catalog entry.
func (c *Classifier) BuildEntry(object salesforce.ObjectDescriptor) (Entry, []SkipNotice, error) {
	fieldNames := object.FieldNames()
	replicationKey, hasReplicationKey := ResolveReplicationKey(object.Name, fieldNames)

	md := NewMetadata()
	md.Write(RootBreadcrumb(), TableKeyPropertiesKey, []string{idField})
	if hasReplicationKey {
		md.Write(RootBreadcrumb(), ValidReplicationKeysKey, []string{replicationKey})
	} else {
		md.Write(RootBreadcrumb(), ForcedReplicationMethodKey, ForcedReplicationMethod{
			ReplicationMethod: FullTableReplicationMethod,
			Reason:            NoReplicationKeysReason,
		})
	}

	properties := make(map[string]*Property, len(object.Fields))
	var notices []SkipNotice
	for _, field := range object.Fields {
		cls, err := c.Classify(field, object.Name)
		if err != nil {
			return Entry{}, nil, err
		}
		properties[field.Name] = cls.Property

		crumb := FieldBreadcrumb(field.Name)
		md.Write(crumb, InclusionKey, cls.Inclusion)
		if cls.Inclusion == InclusionUnsupported {
			md.Write(crumb, UnsupportedDescriptionKey, cls.UnsupportedReason)
			notices = append(notices, SkipNotice{Field: field.Name, Reason: cls.UnsupportedReason})
			continue
		}
		if _, canonical := fieldNames[field.Name]; cls.SelectedByDefault && canonical {
			md.Write(crumb, SelectedByDefaultKey, true)
		}
		if hasReplicationKey && field.Name == replicationKey {
			md.Write(crumb, InclusionKey, InclusionAutomatic)
		}
	}

	for name, reason := range blacklistedFields(c.apiType, object.Name) {
		if _, ok := fieldNames[name]; !ok {
			notices = append(notices, SkipNotice{Field: name, Reason: reason})
		}
	}

	return Entry{
		Stream:      object.Name,
		TapStreamID: object.Name,
		Schema: ObjectSchema{
			Type:                 objectType,
			AdditionalProperties: false,
			Properties:           properties,
		},
		Metadata: md,
	}, notices, nil
}

func propertyFor(field salesforce.FieldDescriptor, objectName string) (*Property, error) {
	var t string
	switch field.Type {
	case "datetime", "date":
		return dateTimeProperty(), nil
	case "location":
		return locationProperty(), nil
	case "address":
		return addressProperty(), nil
	case "anyType", "calculated", "byte":
		return &Property{}, nil
	case "boolean":
		t = booleanType
	case "int":
		t = integerType
	case "double", "currency", "percent":
		t = numberType
	case "time", "json":
		t = stringType
	default:
		if _, ok := stringTypes[field.Type]; !ok {
			return nil, errors.Errorf(UnknownFieldTypeErrorFormat, field.Type, objectName, field.Name)
		}
		t = stringType
	}

	if field.Name == idField {
		return &Property{Type: Types{t}}, nil
	}
	return &Property{Type: nullable(t)}, nil
}
