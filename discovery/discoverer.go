// Package discovery enumerates the org's objects and builds the catalog of syncable streams.
package discovery

import (
	"context"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/hotglue/target-salesforce/config"
	"github.com/hotglue/target-salesforce/salesforce"
	"github.com/hotglue/target-salesforce/schema"
)

const (
	BulkPermissionErrorMessage = "Failed to check Bulk API permissions"
	DescribeGlobalErrorMessage = "Failed to list Salesforce objects"
	DescribeObjectErrorFormat  = "Failed to describe object %s"
	BuildEntryErrorFormat      = "Failed to build catalog entry for %s"

	tagObjectSuffix      = "__Tag"
	itemRelationshipName = "Item"
	idField              = "Id"
)

//go:generate counterfeiter . catalogService
type catalogService interface {
	DescribeGlobal(ctx context.Context) ([]string, error)
	Describe(ctx context.Context, name string) (salesforce.ObjectDescriptor, error)
	HasBulkPermission(ctx context.Context) (bool, error)
}

type Discoverer struct {
	service    catalogService
	apiType    config.APIType
	classifier *schema.Classifier
	logger     *zap.Logger
}

func NewDiscoverer(service catalogService, cfg *config.Config, logger *zap.Logger) *Discoverer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Discoverer{
		service:    service,
		apiType:    cfg.APIType,
		classifier: schema.NewClassifier(cfg.APIType, cfg.SelectFieldsByDefault),
		logger:     logger,
	}
}

// Discover returns one catalog entry per syncable object, in object name order.
func (d *Discoverer) Discover(ctx context.Context) ([]schema.Entry, error) {
	if d.apiType == config.BulkAPI {
		ok, err := d.service.HasBulkPermission(ctx)
		if err != nil {
			return nil, errors.Wrap(err, BulkPermissionErrorMessage)
		}
		if !ok {
			return nil, salesforce.ErrBulkAPIDisabled
		}
	}

	names, err := d.service.DescribeGlobal(ctx)
	if err != nil {
		return nil, errors.Wrap(err, DescribeGlobalErrorMessage)
	}
	names = append([]string(nil), names...)
	sort.Strings(names)

	entries := make([]schema.Entry, 0, len(names))
	customSettings := make(map[string]struct{})
	tagObjects := make(map[string]string)

	for _, name := range names {
		if schema.IsBlacklistedObject(d.apiType, name) || schema.IsChangeEvent(name) {
			continue
		}

		object, err := d.service.Describe(ctx, name)
		if salesforce.IsObjectNotFound(err) {
			d.logger.Warn("skipping object that could not be described", zap.String("object", name))
			continue
		}
		if err != nil {
			if salesforce.IsSystemic(err) {
				return nil, errors.Wrapf(err, DescribeObjectErrorFormat, name)
			}
			d.logger.Warn("skipping object that could not be described", zap.String("object", name), zap.Error(err))
			continue
		}

		if !object.HasField(idField) {
			d.logger.Info("skipping object without an Id field", zap.String("object", name))
			continue
		}

		if object.CustomSetting {
			customSettings[name] = struct{}{}
		}
		if strings.HasSuffix(name, tagObjectSuffix) {
			if base, ok := taggedObject(object); ok {
				tagObjects[base] = name
			}
		}

		entry, notices, err := d.classifier.BuildEntry(object)
		if err != nil {
			return nil, errors.Wrapf(err, BuildEntryErrorFormat, name)
		}
		for _, notice := range notices {
			d.logger.Info("field is unsupported",
				zap.String("object", name),
				zap.String("field", notice.Field),
				zap.String("reason", notice.Reason),
			)
		}
		entries = append(entries, entry)
	}

	return d.dropCustomSettingTags(entries, customSettings, tagObjects), nil
}

func taggedObject(object salesforce.ObjectDescriptor) (string, bool) {
	for _, field := range object.Fields {
		if field.RelationshipName == itemRelationshipName && len(field.ReferenceTo) > 0 {
			return field.ReferenceTo[0], true
		}
	}
	return "", false
}

// Tagging is not supported on custom settings, so their tag objects cannot be queried.
func (d *Discoverer) dropCustomSettingTags(entries []schema.Entry, customSettings map[string]struct{}, tagObjects map[string]string) []schema.Entry {
	dropped := make(map[string]struct{})
	for base, tag := range tagObjects {
		if _, ok := customSettings[base]; ok {
			dropped[tag] = struct{}{}
			d.logger.Info("skipping tag object of a custom setting",
				zap.String("object", tag),
				zap.String("custom_setting", base),
			)
		}
	}
	if len(dropped) == 0 {
		return entries
	}

	kept := make([]schema.Entry, 0, len(entries)-len(dropped))
	for _, entry := range entries {
		if _, ok := dropped[entry.Stream]; !ok {
			kept = append(kept, entry)
		}
	}
	return kept
}
