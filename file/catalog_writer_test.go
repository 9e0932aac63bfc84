package file_test

import (
	"bytes"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"

	. "github.com/hotglue/target-salesforce/file"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

var _ = Describe("WriteCatalog", func() {
	It("writes the catalog indented by four spaces", func() {
		var buf bytes.Buffer
		catalog := map[string]interface{}{"streams": []map[string]string{{"stream": "Account"}}}

		Expect(WriteCatalog(&buf, catalog)).To(Succeed())
		Expect(buf.String()).To(Equal("{\n    \"streams\": [\n        {\n            \"stream\": \"Account\"\n        }\n    ]\n}\n"))
	})

	It("returns an error when the catalog cannot be encoded", func() {
		err := WriteCatalog(&bytes.Buffer{}, map[string]interface{}{"bad": make(chan int)})
		Expect(err).To(MatchError(ContainSubstring(CatalogEncodingErrorMessage)))
	})

	It("returns an error when writing fails", func() {
		err := WriteCatalog(failingWriter{}, map[string]string{})
		Expect(err).To(MatchError(ContainSubstring(CatalogWritingErrorMessage)))
		Expect(err).To(MatchError(ContainSubstring("disk full")))
	})
})
