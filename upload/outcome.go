package upload

import (
	"fmt"
	"net/http"

	"github.com/hotglue/target-salesforce/salesforce"
)

type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
)

type Status string

const (
	StatusSuccess        Status = "success"
	StatusObjectNotFound Status = "object-not-found"
	StatusInvalidPayload Status = "invalid-payload"
)

const (
	ObjectNotFoundMessage         = "object not found"
	UnexpectedStatusMessageFormat = "unexpected status %d"
)

// SubmissionOutcome describes what happened to one record. It is reported, never persisted.
type SubmissionOutcome struct {
	Action       Action
	Status       Status
	HTTPStatus   int
	ErrorMessage string
}

func (o SubmissionOutcome) IsSuccess() bool {
	return o.Status == StatusSuccess
}

func classify(action Action, resp *salesforce.Response) SubmissionOutcome {
	outcome := SubmissionOutcome{Action: action, HTTPStatus: resp.StatusCode}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		outcome.Status = StatusObjectNotFound
		outcome.ErrorMessage = ObjectNotFoundMessage
	case resp.StatusCode == http.StatusBadRequest:
		outcome.Status = StatusInvalidPayload
		outcome.ErrorMessage = fmt.Sprintf(UnexpectedStatusMessageFormat, resp.StatusCode)
		if apiErrors := salesforce.ParseAPIErrors(resp.Body); len(apiErrors) > 0 {
			outcome.ErrorMessage = apiErrors[0].Message
		}
	case resp.StatusCode >= http.StatusMultipleChoices:
		outcome.Status = StatusInvalidPayload
		outcome.ErrorMessage = fmt.Sprintf(UnexpectedStatusMessageFormat, resp.StatusCode)
	default:
		outcome.Status = StatusSuccess
	}
	return outcome
}
