package checkit

// Result is the immutable outcome of one validation run: the processed
// input, the processed output and the final error tree of the root param.
// A Result that reports Failure is still a successful run: invalid data is
// the expected product of this system, not an error condition.
type Result struct {
	schema *Schema
	input  any
	output any
	errors any // []string or Messages
	memo   map[string]any
}

func newResult(s *Schema, input, output, errors any) *Result {
	return &Result{schema: s, input: input, output: output, errors: errors}
}

// Input returns the value after input processing, before validation.
func (r *Result) Input() any { return r.input }

// Output returns the value after output processing. When no output
// processor is active this equals Input.
func (r *Result) Output() any { return r.output }

// Success reports whether the run recorded no errors at all.
func (r *Result) Success() bool {
	switch e := r.errors.(type) {
	case nil:
		return true
	case []string:
		return len(e) == 0
	case Messages:
		return len(e) == 0
	}
	return false
}

// Failure is the negation of Success.
func (r *Result) Failure() bool { return !r.Success() }

// Messages returns an empty Messages map when the run succeeded, otherwise
// the raw error tree: a Messages map keyed by child name/index or, in the
// degenerate case of a root param that only received direct AddError calls,
// a flat []string.
func (r *Result) Messages() any {
	if r.Success() {
		return Messages{}
	}
	return r.errors
}

// Schema returns the schema that produced this result.
func (r *Result) Schema() *Schema { return r.schema }

// Invoke dispatches into the owning schema's result method table, calling
// behavior contributed by an activated plugin.
func (r *Result) Invoke(method string, args ...any) (any, error) {
	fn, ok := r.schema.resultMethods[method]
	if !ok {
		return nil, &UnknownMethodError{Kind: "result", Name: method}
	}
	return fn(r, args...)
}

// Memo computes a value on first access and caches it for the lifetime of
// the result. Plugins use it for additive lazily-computed views (full
// messages) that must not alter the stored error tree. A run is read on the
// same logical thread that produced it, so no locking is involved.
func (r *Result) Memo(key string, compute func() any) any {
	if v, ok := r.memo[key]; ok {
		return v
	}
	if r.memo == nil {
		r.memo = map[string]any{}
	}
	v := compute()
	r.memo[key] = v
	return v
}
