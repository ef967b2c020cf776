package forks

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Operator compares a column value against a criterion value.
type Operator string

const (
	OpEqual     Operator = "="
	OpNotEqual  Operator = "!="
	OpGreater   Operator = ">"
	OpGreaterEq Operator = ">="
	OpLess      Operator = "<"
	OpLessEq    Operator = "<="
	OpContains  Operator = "~"
)

// operators is ordered so two-character operators win over their prefixes.
var operators = []Operator{OpNotEqual, OpGreaterEq, OpLessEq, OpEqual, OpGreater, OpLess, OpContains}

var timeLayouts = []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"}

// CriterionError describes an expression that cannot be used as a filter
type CriterionError struct {
	Expr   string
	Reason string
}

func (e *CriterionError) Error() string {
	return fmt.Sprintf("invalid filter %q: %s", e.Expr, e.Reason)
}

// Criterion is a column-based filter such as "Stars>0".
type Criterion struct {
	Column int
	Op     Operator
	Value  string

	number int
	when   time.Time
}

// ParseCriterion parses "<column><op><value>". The column is matched by
// label or key; the value must parse for the column's kind unless the
// operator is ~.
func ParseCriterion(expr string) (Criterion, error) {
	pos, op := -1, Operator("")

	for _, candidate := range operators {
		i := strings.Index(expr, string(candidate))
		if i < 0 {
			continue
		}

		if pos < 0 || i < pos || (i == pos && len(candidate) > len(op)) {
			pos, op = i, candidate
		}
	}

	if pos < 0 {
		return Criterion{}, &CriterionError{Expr: expr, Reason: "missing operator (one of = != > >= < <= ~)"}
	}

	name := strings.TrimSpace(expr[:pos])
	value := strings.TrimSpace(expr[pos+len(op):])

	col := ColumnIndex(name)
	if col < 0 {
		return Criterion{}, &CriterionError{Expr: expr, Reason: fmt.Sprintf("unknown column %q", name)}
	}

	c := Criterion{Column: col, Op: op, Value: value}
	if op == OpContains {
		return c, nil
	}

	switch defaultColumns[col].Kind {
	case KindNumber:
		n, err := strconv.Atoi(value)
		if err != nil {
			return Criterion{}, &CriterionError{Expr: expr, Reason: "value is not a number"}
		}

		c.number = n
	case KindTime:
		t, err := parseTime(value)
		if err != nil {
			return Criterion{}, &CriterionError{Expr: expr, Reason: "value is not a date (use YYYY-MM-DD)"}
		}

		c.when = t
	}

	return c, nil
}

// ParseCriteria parses every expression, stopping at the first error.
func ParseCriteria(exprs []string) ([]Criterion, error) {
	out := make([]Criterion, 0, len(exprs))

	for _, e := range exprs {
		if strings.TrimSpace(e) == "" {
			continue
		}

		c, err := ParseCriterion(e)
		if err != nil {
			return nil, err
		}

		out = append(out, c)
	}

	return out, nil
}

func parseTime(s string) (time.Time, error) {
	var lastErr error

	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}

		lastErr = err
	}

	return time.Time{}, lastErr
}

// String renders the criterion back into expression form.
func (c Criterion) String() string {
	return defaultColumns[c.Column].Label + string(c.Op) + c.Value
}

// Match reports whether the row satisfies the criterion.
func (c Criterion) Match(row Row) bool {
	raw := row.Values[c.Column]

	if c.Op == OpContains {
		return strings.Contains(strings.ToLower(Text(raw)), strings.ToLower(c.Value))
	}

	var cmp int

	switch v := raw.(type) {
	case int:
		cmp = compareInts(v, c.number)
	case time.Time:
		if v.IsZero() {
			return false
		}

		cmp = v.Compare(c.when)
	default:
		cmp = strings.Compare(strings.ToLower(Text(raw)), strings.ToLower(c.Value))
	}

	switch c.Op {
	case OpEqual:
		return cmp == 0
	case OpNotEqual:
		return cmp != 0
	case OpGreater:
		return cmp > 0
	case OpGreaterEq:
		return cmp >= 0
	case OpLess:
		return cmp < 0
	case OpLessEq:
		return cmp <= 0
	}

	return false
}

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}

	return 0
}

// matchesSearch is the global search: a case-insensitive substring match
// against any column.
func matchesSearch(row Row, needle string) bool {
	if needle == "" {
		return true
	}

	needle = strings.ToLower(needle)
	for _, v := range row.Values {
		if strings.Contains(strings.ToLower(Text(v)), needle) {
			return true
		}
	}

	return false
}
