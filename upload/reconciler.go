package upload

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/hotglue/target-salesforce/record"
	"github.com/hotglue/target-salesforce/salesforce"
)

const (
	ExternalIDLookupErrorFormat = "external id lookup on %s.%s failed"
	SubmitErrorFormat           = "failed to submit %s record"
)

type remoteStore interface {
	rowQuerier
	Create(ctx context.Context, objectName string, payload interface{}) (*salesforce.Response, error)
	Update(ctx context.Context, resourcePath string, payload interface{}) (*salesforce.Response, error)
}

type Reconciler struct {
	store    remoteStore
	resolver *ReferenceResolver
	logger   *zap.Logger
}

func NewReconciler(store remoteStore, logger *zap.Logger) *Reconciler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reconciler{
		store:    store,
		resolver: NewReferenceResolver(store),
		logger:   logger,
	}
}

// Upsert updates the remote record matched by one of the object's external id fields, or
// creates a new one when nothing matches. Rejected submissions come back as outcomes; the
// error is reserved for failures that should stop the run.
func (r *Reconciler) Upsert(ctx context.Context, object salesforce.ObjectDescriptor, rec *record.Record) (SubmissionOutcome, error) {
	resourcePath, err := r.findExisting(ctx, object, rec)
	if err != nil {
		return SubmissionOutcome{}, err
	}

	var (
		action = ActionCreated
		resp   *salesforce.Response
	)
	if resourcePath != "" {
		action = ActionUpdated
		resp, err = r.store.Update(ctx, resourcePath, rec)
	} else {
		resp, err = r.store.Create(ctx, object.Name, rec)
	}
	if err != nil {
		return SubmissionOutcome{}, errors.Wrapf(err, SubmitErrorFormat, object.Name)
	}

	outcome := classify(action, resp)
	if outcome.IsSuccess() {
		r.logger.Debug("record submitted",
			zap.String("object", object.Name),
			zap.String("action", string(outcome.Action)),
		)
	} else {
		r.logger.Warn("record rejected",
			zap.String("object", object.Name),
			zap.String("action", string(outcome.Action)),
			zap.String("status", string(outcome.Status)),
			zap.Int("http_status", outcome.HTTPStatus),
			zap.String("error", outcome.ErrorMessage),
		)
	}
	return outcome, nil
}

// findExisting returns the resource path of the first remote record matching one of the
// record's external id values, or "" when none does.
func (r *Reconciler) findExisting(ctx context.Context, object salesforce.ObjectDescriptor, rec *record.Record) (string, error) {
	var matching []string
	for _, field := range object.ExternalIDFields() {
		if rec.Has(field) {
			matching = append(matching, field)
		}
	}
	if len(matching) == 0 {
		return "", nil
	}

	resolved, err := r.resolver.Resolve(ctx, rec.Clone())
	if err != nil {
		return "", err
	}

	for _, field := range matching {
		v, _ := resolved.Get(field)
		text, ok := v.Text()
		if !ok {
			r.logger.Warn("skipping external id with a non-scalar value",
				zap.String("object", object.Name),
				zap.String("field", field),
			)
			continue
		}

		soql := salesforce.SelectWhere([]string{idSuffix}, object.Name, field, text, true)
		row, err := r.store.QueryAll(soql).Next(ctx)
		if errors.Is(err, salesforce.ErrNoMoreRows) {
			continue
		}
		if err != nil {
			return "", errors.Wrapf(err, ExternalIDLookupErrorFormat, object.Name, field)
		}
		return row.Attributes.URL, nil
	}
	return "", nil
}
