package schema_test

import (
	. "github.com/onsi/ginkgo"
	"github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/hotglue/target-salesforce/config"
	. "github.com/hotglue/target-salesforce/schema"
)

var _ = Describe("Object blacklists", func() {
	table.DescribeTable("IsBlacklistedObject",
		func(apiType config.APIType, objectName string, expected bool) {
			Expect(IsBlacklistedObject(apiType, objectName)).To(Equal(expected))
		},
		table.Entry("query restricted under rest", config.RESTAPI, "ContentDocumentLink", true),
		table.Entry("query incompatible under rest", config.RESTAPI, "ActivityHistory", true),
		table.Entry("bulk unsupported under rest", config.RESTAPI, "TaskStatus", false),
		table.Entry("bulk unsupported under bulk", config.BulkAPI, "TaskStatus", true),
		table.Entry("query restricted under bulk", config.BulkAPI, "Vote", true),
		table.Entry("ordinary object", config.BulkAPI, "Account", false),
	)

	It("recognizes change event objects", func() {
		Expect(IsChangeEvent("AccountChangeEvent")).To(BeTrue())
		Expect(IsChangeEvent("Account")).To(BeFalse())
	})
})
