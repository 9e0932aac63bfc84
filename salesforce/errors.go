package salesforce

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

const (
	ObjectNotFoundErrorFormat = "object %s was not found"
	BulkAPIDisabledMessage    = `This client does not have Bulk API permissions, received "API_DISABLED_FOR_ORG" error code`
	QuotaExceededErrorFormat  = "Terminating replication to not continue past configured percentage of %.2f%% %s API quota."
	NoMoreRowsMessage         = "query returned no more rows"

	APIDisabledForOrgErrorCode = "API_DISABLED_FOR_ORG"
)

var ErrNoMoreRows = errors.New(NoMoreRowsMessage)

var ErrBulkAPIDisabled = errors.New(BulkAPIDisabledMessage)

// ObjectNotFoundError is returned when the remote service answers 404 for an object name.
type ObjectNotFoundError struct {
	Name string
}

func (e *ObjectNotFoundError) Error() string {
	return fmt.Sprintf(ObjectNotFoundErrorFormat, e.Name)
}

type QuotaExceededError struct {
	Message string
}

func (e *QuotaExceededError) Error() string {
	return e.Message
}

// APIError is one element of the JSON error array the REST API returns on failure.
type APIError struct {
	Message   string   `json:"message"`
	ErrorCode string   `json:"errorCode"`
	Fields    []string `json:"fields,omitempty"`
}

// ParseAPIErrors decodes a REST error body. Bodies that are not an error array yield nil.
func ParseAPIErrors(body []byte) []APIError {
	var apiErrors []APIError
	if err := json.Unmarshal(body, &apiErrors); err != nil {
		return nil
	}
	return apiErrors
}

func IsObjectNotFound(err error) bool {
	var notFound *ObjectNotFoundError
	return errors.As(err, &notFound)
}

func IsQuotaExceeded(err error) bool {
	var quotaErr *QuotaExceededError
	return errors.As(err, &quotaErr)
}

// IsSystemic reports errors that every later request would hit as well.
func IsSystemic(err error) bool {
	var retrieveErr *oauth2.RetrieveError
	return IsQuotaExceeded(err) ||
		errors.As(err, &retrieveErr) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}
