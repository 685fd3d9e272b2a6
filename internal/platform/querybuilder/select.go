// Package querybuilder renders the postgres statements used by the season repositories.
package querybuilder

import (
	"errors"
	"strconv"
	"strings"
)

// binder numbers positional parameters in the order they are bound.
type binder struct {
	args []any
}

func (b *binder) bind(value any) string {
	b.args = append(b.args, value)
	return "$" + strconv.Itoa(len(b.args))
}

// Condition is one AND-ed term of a WHERE clause.
type Condition interface {
	render(b *binder) string
}

type conditionFunc func(b *binder) string

func (f conditionFunc) render(b *binder) string {
	return f(b)
}

func Eq(column string, value any) Condition {
	return conditionFunc(func(b *binder) string {
		return column + " = " + b.bind(value)
	})
}

// EqLiteral inlines the value as a quoted string instead of binding it.
func EqLiteral(column, value string) Condition {
	return conditionFunc(func(*binder) string {
		return column + " = " + Quote(value)
	})
}

// Expr binds args to the ? markers of expr from left to right.
func Expr(expr string, args ...any) Condition {
	return conditionFunc(func(b *binder) string {
		return bindMarkers(expr, args, b)
	})
}

// Quote renders value as a single-quoted SQL string literal.
func Quote(value string) string {
	return "'" + strings.ReplaceAll(value, "'", "''") + "'"
}

type SelectBuilder struct {
	columns []string
	table   string
	where   []Condition
	orderBy []string
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: append([]string(nil), columns...)}
}

func (s *SelectBuilder) From(table string) *SelectBuilder {
	s.table = table
	return s
}

func (s *SelectBuilder) Where(conditions ...Condition) *SelectBuilder {
	s.where = append(s.where, conditions...)
	return s
}

func (s *SelectBuilder) OrderBy(columns ...string) *SelectBuilder {
	s.orderBy = append(s.orderBy, columns...)
	return s
}

func (s *SelectBuilder) ToSQL() (string, []any, error) {
	if len(s.columns) == 0 {
		return "", nil, errors.New("select: no columns")
	}
	if strings.TrimSpace(s.table) == "" {
		return "", nil, errors.New("select: no table")
	}

	b := &binder{}
	var sb strings.Builder
	sb.WriteString("SELECT " + strings.Join(s.columns, ", ") + " FROM " + s.table)
	for i, c := range s.where {
		if i == 0 {
			sb.WriteString(" WHERE ")
		} else {
			sb.WriteString(" AND ")
		}
		sb.WriteString(c.render(b))
	}
	if len(s.orderBy) > 0 {
		sb.WriteString(" ORDER BY " + strings.Join(s.orderBy, ", "))
	}
	return sb.String(), b.args, nil
}

func bindMarkers(expr string, args []any, b *binder) string {
	if len(args) == 0 {
		return expr
	}
	var sb strings.Builder
	next := 0
	for _, r := range expr {
		if r == '?' && next < len(args) {
			sb.WriteString(b.bind(args[next]))
			next++
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
