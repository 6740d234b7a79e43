// Package validation is a checkit plugin shipping the built-in leaf
// validators (presence, type, length, format, inclusion, numeric bounds)
// and the default-message catalog they draw from.
//
// Validators come in two forms. Direct helpers operate on a param and add a
// message from the catalog on failure:
//
//	i.Param("username", func(p *checkit.Param) error {
//		if validation.Presence(p) {
//			validation.Type(p, "string")
//		}
//		return nil
//	})
//
// The plugin also publishes a named-validator table into the schema's
// options; the rules plugin dispatches into it by tag.
//
// The message catalog accumulates across activations: re-activating the
// plugin with a Messages map (or MessagesYAML) merges overrides on top of
// the defaults, per schema. Message templates substitute positional
// arguments as %{arg1}, %{arg2}, ... .
package validation
