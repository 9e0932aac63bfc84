// Package upload reconciles input records against the org: each record is matched on its
// external id fields and then either updated or created.
package upload

import (
	"context"
	"io"
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/hotglue/target-salesforce/record"
	"github.com/hotglue/target-salesforce/salesforce"
)

const (
	DescribeFailedErrorFormat = "Failed to describe object %s"
	RecordFailedErrorFormat   = "Failed to upload %s record %d"

	unknownObjectReason  = "unknown object"
	unreadableReason     = "unreadable input"
	describeFailedReason = "describe failed"
)

//go:generate counterfeiter . Batch
type Batch interface {
	Name() string
	Content() io.Reader
}

//go:generate counterfeiter . describer
type describer interface {
	Describe(ctx context.Context, name string) (salesforce.ObjectDescriptor, error)
}

//go:generate counterfeiter . upserter
type upserter interface {
	Upsert(ctx context.Context, object salesforce.ObjectDescriptor, rec *record.Record) (SubmissionOutcome, error)
}

type Orchestrator struct {
	describer  describer
	upserter   upserter
	configFile string
	logger     *zap.Logger
}

// NewOrchestrator builds an orchestrator that never uploads configFile, the run's own config.
func NewOrchestrator(describer describer, upserter upserter, configFile string, logger *zap.Logger) *Orchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{
		describer:  describer,
		upserter:   upserter,
		configFile: absolute(configFile),
		logger:     logger,
	}
}

// Run uploads every batch, priority objects first. Records within a batch are submitted
// sequentially in file order.
func (o *Orchestrator) Run(ctx context.Context, batches []Batch, priorities []string) (*Report, error) {
	report := NewReport()

	for _, batch := range OrderByPriority(o.withoutConfigFile(batches), priorities) {
		objectName := ObjectName(batch)
		logger := o.logger.With(zap.String("object", objectName), zap.String("file", batch.Name()))

		object, err := o.describer.Describe(ctx, objectName)
		if salesforce.IsObjectNotFound(err) {
			logger.Warn("skipping file for unknown object")
			report.Skip(objectName, unknownObjectReason)
			continue
		}
		if err != nil {
			if salesforce.IsSystemic(err) {
				return report, errors.Wrapf(err, DescribeFailedErrorFormat, objectName)
			}
			logger.Warn("skipping file for object that could not be described", zap.Error(err))
			report.Skip(objectName, describeFailedReason)
			continue
		}
		if object.Label == "" {
			logger.Warn("skipping file for unlabeled object")
			report.Skip(objectName, unknownObjectReason)
			continue
		}

		records, err := record.DecodeBatch(batch.Content())
		if err != nil {
			logger.Warn("skipping unreadable file", zap.Error(err))
			report.Skip(objectName, unreadableReason)
			continue
		}

		logger.Info("uploading records", zap.Int("count", len(records)))
		for i, rec := range records {
			outcome, err := o.upserter.Upsert(ctx, object, rec)
			if err != nil {
				if isFatal(err) {
					return report, errors.Wrapf(err, RecordFailedErrorFormat, objectName, i)
				}
				logger.Warn("record failed", zap.Int("index", i), zap.Error(err))
				report.Reject(objectName)
				continue
			}
			report.Record(objectName, outcome)
		}
	}
	return report, nil
}

func (o *Orchestrator) withoutConfigFile(batches []Batch) []Batch {
	if o.configFile == "" {
		return batches
	}
	kept := make([]Batch, 0, len(batches))
	for _, b := range batches {
		if absolute(b.Name()) == o.configFile {
			continue
		}
		kept = append(kept, b)
	}
	return kept
}

func absolute(path string) string {
	if path == "" {
		return ""
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}

// isFatal separates errors that invalidate the whole run from per-record failures.
func isFatal(err error) bool {
	return IsReferenceNotFound(err) || salesforce.IsSystemic(err)
}
