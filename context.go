package checkit

// Context is the explicit execution context handed to a validation block.
// It exposes what the block needs from the schema, options and resolved
// dependency values, without giving it mutable access to the run.
type Context struct {
	schema *Schema
	deps   []any
}

// Schema returns the schema executing the block.
func (c *Context) Schema() *Schema { return c.schema }

// Opt reads an option from the executing schema's bag.
func (c *Context) Opt(key string) any { return c.schema.Opt(key) }

// Deps returns the positional dependency values resolved for this run, in
// the order the injection list declared them. Empty unless a dependency
// resolver is installed.
func (c *Context) Deps() []any { return c.deps }

// Dep returns the i-th resolved dependency, or nil when out of range.
func (c *Context) Dep(i int) any {
	if i < 0 || i >= len(c.deps) {
		return nil
	}
	return c.deps[i]
}
