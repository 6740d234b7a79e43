// Package external is a checkit plugin for delegated validation: it merges
// the error payload produced by an external validator (any function from a
// value to a []string of messages or a checkit.Messages tree) into a param.
//
//	i.Param("profile", func(p *checkit.Param) error {
//		return external.Validate(p, profileChecker)
//	})
//
// The capability is contributed as the "validate_with" param method, so it
// is also reachable via p.Invoke("validate_with", fn) on any schema the
// plugin is activated on.
package external
