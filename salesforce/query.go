package salesforce

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

const (
	QueryFailedErrorFormat = "query %q failed"

	selectWhereFormat = "SELECT %s FROM %s WHERE %s = '%s'"
	notDeletedClause  = " AND IsDeleted=false"
)

var literalEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// EscapeLiteral escapes a value for use inside a single-quoted SOQL string literal.
func EscapeLiteral(value string) string {
	return literalEscaper.Replace(value)
}

// SelectWhere builds a single-table equality filter.
func SelectWhere(columns []string, objectName, field, value string, excludeDeleted bool) string {
	soql := fmt.Sprintf(selectWhereFormat, strings.Join(columns, ", "), objectName, field, EscapeLiteral(value))
	if excludeDeleted {
		soql += notDeletedClause
	}
	return soql
}

// QueryAll returns a lazy iterator over the rows matched by soql, including deleted and
// archived rows. No request is made until Next is first called.
func (c *Client) QueryAll(soql string) *RowIterator {
	return &RowIterator{
		client: c,
		soql:   soql,
		next:   c.dataURL(queryAllPath) + "?" + url.Values{"q": []string{soql}}.Encode(),
	}
}

type RowIterator struct {
	client *Client
	soql   string
	next   string
	rows   []Row
}

// Next returns the next row, fetching further pages as needed. It returns ErrNoMoreRows
// once the result set is exhausted.
func (it *RowIterator) Next(ctx context.Context) (Row, error) {
	for len(it.rows) == 0 {
		if it.next == "" {
			return Row{}, ErrNoMoreRows
		}
		if err := it.fetch(ctx); err != nil {
			return Row{}, err
		}
	}

	row := it.rows[0]
	it.rows = it.rows[1:]
	return row, nil
}

func (it *RowIterator) fetch(ctx context.Context) error {
	resp, err := it.client.get(ctx, it.next)
	if err != nil {
		return errors.Wrapf(err, QueryFailedErrorFormat, it.soql)
	}
	if !resp.IsSuccess() {
		return errors.Wrapf(unexpectedStatus(http.MethodGet, queryAllPath, resp), QueryFailedErrorFormat, it.soql)
	}

	var page queryPage
	if err := json.Unmarshal(resp.Body, &page); err != nil {
		return errors.Wrapf(err, UnmarshalResponseErrorFormat, queryAllPath)
	}

	it.rows = page.Records
	it.next = ""
	if !page.Done && page.NextRecordsURL != "" {
		it.next = it.client.instanceURL + page.NextRecordsURL
	}
	return nil
}
