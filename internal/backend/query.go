package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Direction orders a table read.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Query builds one table API call. Filters and ordering become query-string
// parameters in the service's filter syntax (column=eq.value,
// order=column.direction).
type Query struct {
	c       *Client
	table   string
	token   string
	columns string
	filters []filter
	order   string
	single  bool
}

type filter struct {
	column string
	op     string
	value  string
}

// From starts a query against the given table.
func (c *Client) From(table string) *Query {
	return &Query{c: c, table: table}
}

// Auth sets the bearer token for the call. Without it the anon key is sent,
// and row-level security hides everything.
func (q *Query) Auth(token string) *Query {
	q.token = token
	return q
}

// Select sets the columns (or embedded resources) to return, e.g. "*" or
// "group_id, groups(name)".
func (q *Query) Select(columns string) *Query {
	q.columns = columns
	return q
}

// Eq adds an equality filter on the given column.
func (q *Query) Eq(column, value string) *Query {
	q.filters = append(q.filters, filter{column: column, op: "eq", value: value})
	return q
}

// Order sorts the result by the given column.
func (q *Query) Order(column string, dir Direction) *Query {
	q.order = column + "." + string(dir)
	return q
}

// Single asks the service for exactly one row as a bare object instead of a
// one-element array. The service rejects the call when the row count differs.
func (q *Query) Single() *Query {
	q.single = true
	return q
}

// Get executes a read and decodes the rows into out.
func (q *Query) Get(ctx context.Context, out any) error {
	header := http.Header{}
	if q.single {
		header.Set("Accept", "application/vnd.pgrst.object+json")
	}
	if err := q.c.do(ctx, http.MethodGet, q.path(), q.params(), header, q.token, nil, out); err != nil {
		return fmt.Errorf("failed to read %s: %w", q.table, err)
	}
	return nil
}

// Insert executes a write. When out is non-nil the inserted row is returned
// into it (Select controls the columns); otherwise the service is asked for a
// minimal response.
func (q *Query) Insert(ctx context.Context, record, out any) error {
	header := http.Header{}
	if out != nil {
		header.Set("Prefer", "return=representation")
	} else {
		header.Set("Prefer", "return=minimal")
	}
	if q.single {
		header.Set("Accept", "application/vnd.pgrst.object+json")
	}
	if err := q.c.do(ctx, http.MethodPost, q.path(), q.params(), header, q.token, record, out); err != nil {
		return fmt.Errorf("failed to insert into %s: %w", q.table, err)
	}
	return nil
}

func (q *Query) path() string {
	return "/rest/v1/" + q.table
}

func (q *Query) params() url.Values {
	v := url.Values{}
	if q.columns != "" {
		v.Set("select", q.columns)
	}
	for _, f := range q.filters {
		v.Set(f.column, f.op+"."+f.value)
	}
	if q.order != "" {
		v.Set("order", q.order)
	}
	return v
}
