package search

// Condition is one compiled predicate: a SQL expression with
// placeholders and its arguments. The query executor conjoins the
// compiled conditions verbatim; no predicate logic lives outside the
// compiler.
type Condition struct {
	Query string
	Args  []any
}

// cond is a shorthand constructor.
func cond(query string, args ...any) Condition {
	return Condition{Query: query, Args: args}
}

// likePattern wraps a term for substring matching.
func likePattern(term string) string {
	return "%" + term + "%"
}

// rangeConditions compiles an inclusive numeric interval into zero,
// one or two conditions on column.
func rangeConditions(column string, r Range) []Condition {
	var res []Condition
	if r.Min != nil {
		res = append(res, cond(column+" >= ?", *r.Min))
	}
	if r.Max != nil {
		res = append(res, cond(column+" <= ?", *r.Max))
	}
	return res
}
