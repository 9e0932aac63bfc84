// Package record holds input rows as ordered field maps so they are submitted with their
// fields in file order.
package record

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/pkg/errors"
)

const (
	DecodeBatchErrorMessage = "input must be a JSON array of objects"
	UnexpectedTokenFormat   = "unexpected JSON token %v"
)

type Record struct {
	keys   []string
	values map[string]Value
}

func New() *Record {
	return &Record{values: make(map[string]Value)}
}

// Set adds or replaces a field. A replaced field keeps its original position.
func (r *Record) Set(key string, v Value) {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = v
}

func (r *Record) Get(key string) (Value, bool) {
	v, ok := r.values[key]
	return v, ok
}

func (r *Record) Has(key string) bool {
	_, ok := r.values[key]
	return ok
}

func (r *Record) Keys() []string {
	return append([]string(nil), r.keys...)
}

func (r *Record) Len() int {
	return len(r.keys)
}

func (r *Record) Clone() *Record {
	c := &Record{
		keys:   append([]string(nil), r.keys...),
		values: make(map[string]Value, len(r.values)),
	}
	for k, v := range r.values {
		c.values[k] = v.Clone()
	}
	return c
}

func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := r.values[k].MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeValue(dec)
	if err != nil {
		return err
	}
	if v.kind != NestedKind {
		return errors.Errorf(UnexpectedTokenFormat, v.scalar)
	}
	*r = *v.nested
	return nil
}

// DecodeBatch reads a JSON array of objects.
func DecodeBatch(reader io.Reader) ([]*Record, error) {
	dec := json.NewDecoder(reader)
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, errors.Wrap(err, DecodeBatchErrorMessage)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return nil, errors.New(DecodeBatchErrorMessage)
	}

	var records []*Record
	for dec.More() {
		v, err := decodeValue(dec)
		if err != nil {
			return nil, errors.Wrap(err, DecodeBatchErrorMessage)
		}
		if v.kind != NestedKind {
			return nil, errors.New(DecodeBatchErrorMessage)
		}
		records = append(records, v.nested)
	}
	if _, err := dec.Token(); err != nil {
		return nil, errors.Wrap(err, DecodeBatchErrorMessage)
	}
	return records, nil
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return Scalar(tok), nil
	}

	switch delim {
	case '{':
		r := New()
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return Value{}, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return Value{}, errors.Errorf(UnexpectedTokenFormat, keyTok)
			}
			v, err := decodeValue(dec)
			if err != nil {
				return Value{}, err
			}
			r.Set(key, v)
		}
		if _, err := dec.Token(); err != nil {
			return Value{}, err
		}
		return Nested(r), nil
	case '[':
		items := []Value{}
		for dec.More() {
			v, err := decodeValue(dec)
			if err != nil {
				return Value{}, err
			}
			items = append(items, v)
		}
		if _, err := dec.Token(); err != nil {
			return Value{}, err
		}
		return List(items...), nil
	}
	return Value{}, errors.Errorf(UnexpectedTokenFormat, delim)
}
