package upload

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/hotglue/target-salesforce/record"
	"github.com/hotglue/target-salesforce/salesforce"
)

const (
	ReferenceNotFoundErrorFormat = "no %s found where %s = '%s' for field %s"
	NonScalarReferenceFormat     = "reference in field %s has a non-scalar lookup value"
	LookupFailedErrorFormat      = "lookup for field %s failed"

	idSuffix = "Id"
)

// ReferenceNotFoundError means a nested reference matched no remote record. It wraps the
// iterator's exhaustion error.
type ReferenceNotFoundError struct {
	Field       string
	Object      string
	LookupField string
	LookupValue string
	Err         error
}

func (e *ReferenceNotFoundError) Error() string {
	return fmt.Sprintf(ReferenceNotFoundErrorFormat, e.Object, e.LookupField, e.LookupValue, e.Field) + ": " + e.Err.Error()
}

func (e *ReferenceNotFoundError) Unwrap() error {
	return e.Err
}

func IsReferenceNotFound(err error) bool {
	var notFound *ReferenceNotFoundError
	return errors.As(err, &notFound)
}

type rowQuerier interface {
	QueryAll(soql string) *salesforce.RowIterator
}

type ReferenceResolver struct {
	querier rowQuerier
}

func NewReferenceResolver(querier rowQuerier) *ReferenceResolver {
	return &ReferenceResolver{querier: querier}
}

// Resolve replaces every single-pair nested value {lookupField: lookupValue} in rec with the
// Id of the first matching record. The target object is the field name minus a trailing
// "Id". rec is modified in place and returned.
func (r *ReferenceResolver) Resolve(ctx context.Context, rec *record.Record) (*record.Record, error) {
	for _, field := range rec.Keys() {
		v, _ := rec.Get(field)
		lookupField, lookupValue, ok := v.Reference()
		if !ok {
			continue
		}

		text, ok := lookupValue.Text()
		if !ok {
			return nil, errors.Errorf(NonScalarReferenceFormat, field)
		}

		objectName := strings.TrimSuffix(field, idSuffix)
		soql := salesforce.SelectWhere([]string{idSuffix}, objectName, lookupField, text, false)
		row, err := r.querier.QueryAll(soql).Next(ctx)
		if errors.Is(err, salesforce.ErrNoMoreRows) {
			return nil, &ReferenceNotFoundError{
				Field:       field,
				Object:      objectName,
				LookupField: lookupField,
				LookupValue: text,
				Err:         err,
			}
		}
		if err != nil {
			return nil, errors.Wrapf(err, LookupFailedErrorFormat, field)
		}

		rec.Set(field, record.Scalar(row.ID()))
	}
	return rec, nil
}
