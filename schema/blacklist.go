package schema

import (
	"strings"

	"github.com/hotglue/target-salesforce/config"
)

const (
	UnsupportedByBulkAPIReason = "this field is unsupported by the Bulk API."

	changeEventSuffix = "ChangeEvent"
)

type objectField struct {
	object string
	field  string
}

var unsupportedBulkObjects = []string{
	"AssetTokenEvent",
	"AttachedContentNote",
	"EventWhoRelation",
	"QuoteTemplateRichTextData",
	"TaskWhoRelation",
	"SolutionStatus",
	"ContractStatus",
	"RecentlyViewed",
	"DeclinedEventRelation",
	"AcceptedEventRelation",
	"TaskStatus",
	"PartnerRole",
	"TaskPriority",
	"CaseStatus",
	"UndecidedEventRelation",
	"OrderStatus",
}

// Objects the query endpoints refuse without a filter or a specific parent id.
var queryRestrictedObjects = []string{
	"Announcement",
	"ContentDocumentLink",
	"CollaborationGroupRecord",
	"Vote",
	"IdeaComment",
	"FieldDefinition",
	"PlatformAction",
	"UserEntityAccess",
	"RelationshipInfo",
	"ContentFolderMember",
	"ContentFolderItem",
	"SearchLayout",
	"SiteDetail",
	"EntityParticle",
	"OwnerChangeOptionInfo",
	"DataStatistics",
	"UserFieldAccess",
	"PicklistValueInfo",
	"RelationshipDomain",
	"FlexQueueItem",
	"NetworkUserHistoryRecent",
	"FieldHistoryArchive",
	"RecordActionHistory",
	"FlowVersionView",
	"FlowVariableView",
	"AppTabMember",
	"ColorDefinition",
	"IconDefinition",
}

var queryIncompatibleObjects = []string{
	"DataType",
	"ListViewChartInstance",
	"FeedLike",
	"OutgoingEmail",
	"OutgoingEmailRelation",
	"FeedSignal",
	"ActivityHistory",
	"EmailStatus",
	"UserRecordAccess",
	"Name",
	"AggregateResult",
	"OpenActivity",
	"ProcessInstanceHistory",
	"OwnedContentDocument",
	"FolderedContentDocument",
	"FeedTrackedChange",
	"CombinedAttachment",
	"AttachedContentDocument",
	"ContentBody",
	"NoteAndAttachment",
	"LookedUpFromActivity",
	"AttachedContentNote",
	"QuoteTemplateRichTextData",
}

var bulkFieldBlacklist = map[objectField]string{
	{object: "EntityDefinition", field: "RecordTypesSupported"}: UnsupportedByBulkAPIReason,
}

var (
	restObjectBlacklist = toSet(queryRestrictedObjects, queryIncompatibleObjects)
	bulkObjectBlacklist = toSet(queryRestrictedObjects, queryIncompatibleObjects, unsupportedBulkObjects)
)

func toSet(lists ...[]string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, list := range lists {
		for _, name := range list {
			set[name] = struct{}{}
		}
	}
	return set
}

// IsBlacklistedObject reports whether discovery skips the object under the given access mode.
func IsBlacklistedObject(apiType config.APIType, objectName string) bool {
	blacklist := restObjectBlacklist
	if apiType == config.BulkAPI {
		blacklist = bulkObjectBlacklist
	}
	_, ok := blacklist[objectName]
	return ok
}

func IsChangeEvent(objectName string) bool {
	return strings.HasSuffix(objectName, changeEventSuffix)
}

func blacklistedFieldReason(apiType config.APIType, objectName, fieldName string) (string, bool) {
	if apiType != config.BulkAPI {
		return "", false
	}
	reason, ok := bulkFieldBlacklist[objectField{object: objectName, field: fieldName}]
	return reason, ok
}

// blacklistedFields returns the blacklisted field names for one object, in no particular order.
func blacklistedFields(apiType config.APIType, objectName string) map[string]string {
	if apiType != config.BulkAPI {
		return nil
	}
	fields := make(map[string]string)
	for k, reason := range bulkFieldBlacklist {
		if k.object == objectName {
			fields[k.field] = reason
		}
	}
	return fields
}
