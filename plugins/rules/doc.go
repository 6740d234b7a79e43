// Package rules is a checkit plugin adding options-based validator dispatch
// on top of the validation plugin's named-validator table. A rule set maps
// validator tags to their arguments and is applied to a param in one shot:
//
//	i.Param("age", func(p *checkit.Param) error {
//		return rules.Apply(p, rules.Rules{
//			"type": "integer",
//			"gteq": 18,
//		})
//	})
//
// Referencing a tag with no table entry yields an *UnknownValidatorError,
// a configuration error that aborts the run, not a validation message.
// Activating this plugin auto-activates the validation plugin, so rule sets
// work without wiring the prerequisite by hand.
package rules
