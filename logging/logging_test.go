package logging_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
	"go.uber.org/zap/zapcore"

	. "github.com/hotglue/target-salesforce/logging"
)

var _ = Describe("Logging", func() {
	Describe("New", func() {
		It("builds a logger at the requested level", func() {
			logger, err := New("warn", FormatJSON)
			Expect(err).NotTo(HaveOccurred())
			Expect(logger.Core().Enabled(zapcore.WarnLevel)).To(BeTrue())
			Expect(logger.Core().Enabled(zapcore.InfoLevel)).To(BeFalse())
		})

		It("rejects unknown levels", func() {
			_, err := New("loud", FormatJSON)
			Expect(err).To(MatchError(ContainSubstring(`Invalid log level "loud"`)))
		})

		It("rejects unknown formats", func() {
			_, err := New("info", "xml")
			Expect(err).To(MatchError(ContainSubstring(`Invalid log format "xml"`)))
		})
	})

	DescribeTable("ResolveFormat",
		func(format string, terminal bool, expected string) {
			encoding, err := ResolveFormat(format, terminal)
			Expect(err).NotTo(HaveOccurred())
			Expect(encoding).To(Equal(expected))
		},
		Entry("auto on a terminal", "auto", true, FormatConsole),
		Entry("auto off a terminal", "auto", false, FormatJSON),
		Entry("empty defaults to auto", "", false, FormatJSON),
		Entry("explicit console", "console", false, FormatConsole),
		Entry("explicit json", "JSON", true, FormatJSON),
	)
})
