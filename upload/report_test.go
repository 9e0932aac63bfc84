package upload_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	. "github.com/hotglue/target-salesforce/upload"
)

var _ = Describe("Report", func() {
	It("tallies outcomes per object in processing order", func() {
		report := NewReport()
		report.Record("Contact", SubmissionOutcome{Action: ActionCreated, Status: StatusSuccess})
		report.Record("Account", SubmissionOutcome{Action: ActionUpdated, Status: StatusSuccess})
		report.Record("Account", SubmissionOutcome{Action: ActionCreated, Status: StatusInvalidPayload})
		report.Reject("Account")
		report.Skip("Ghost", "unknown object")

		Expect(report.Summaries()).To(Equal([]ObjectSummary{
			{Object: "Contact", Created: 1},
			{Object: "Account", Updated: 1, Rejected: 2},
			{Object: "Ghost", Skipped: true, SkipReason: "unknown object"},
		}))
	})

	It("renders a table with totals", func() {
		report := NewReport()
		report.Record("Account", SubmissionOutcome{Action: ActionCreated, Status: StatusSuccess})
		report.Record("Contact", SubmissionOutcome{Action: ActionCreated, Status: StatusSuccess})

		rendered := report.Render()
		Expect(rendered).To(ContainSubstring("Account"))
		Expect(rendered).To(ContainSubstring("Contact"))
		Expect(rendered).To(MatchRegexp(`(?i)total\s*│\s*2`))
	})
})
