package file

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"
)

const (
	CatalogIndent = "    "

	CatalogEncodingErrorMessage = "Failed to encode catalog"
	CatalogWritingErrorMessage  = "Failed to write catalog"
)

// WriteCatalog writes catalog as indented JSON followed by a newline.
func WriteCatalog(w io.Writer, catalog interface{}) error {
	content, err := json.MarshalIndent(catalog, "", CatalogIndent)
	if err != nil {
		return errors.Wrap(err, CatalogEncodingErrorMessage)
	}

	if _, err := w.Write(append(content, '\n')); err != nil {
		return errors.Wrap(err, CatalogWritingErrorMessage)
	}
	return nil
}
