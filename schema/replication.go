package schema

const (
	SystemModstampField   = "SystemModstamp"
	LastModifiedDateField = "LastModifiedDate"
	CreatedDateField      = "CreatedDate"
	LoginTimeField        = "LoginTime"

	loginHistoryObject = "LoginHistory"

	FullTableReplicationMethod = "FULL_TABLE"
	NoReplicationKeysReason    = "No replication keys found from the Salesforce API"
)

// These objects reject ordering by CreatedDate, so they are always fully re-synced.
var forcedFullTableObjects = map[string]struct{}{
	"BackgroundOperationResult": {},
	"LoginEvent":                {},
}

// ResolveReplicationKey picks the field used to detect changed rows. ok is false when the
// object can only be fully re-synced.
func ResolveReplicationKey(objectName string, fieldNames map[string]struct{}) (string, bool) {
	if _, forced := forcedFullTableObjects[objectName]; forced {
		return "", false
	}

	for _, candidate := range []string{SystemModstampField, LastModifiedDateField, CreatedDateField} {
		if _, ok := fieldNames[candidate]; ok {
			return candidate, true
		}
	}

	if objectName == loginHistoryObject {
		if _, ok := fieldNames[LoginTimeField]; ok {
			return LoginTimeField, true
		}
	}
	return "", false
}
