package validation

import (
	"fmt"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/checkit"
)

const (
	// OptValidators holds the per-schema map[string]Validator table the
	// rules plugin dispatches into.
	OptValidators = "validation.validators"
	// OptMessages holds the per-schema map[string]string message catalog.
	OptMessages = "validation.messages"
)

// Validator is one entry in the named-validator table: a predicate over the
// param's value plus the catalog key of its failure message.
type Validator struct {
	Check      func(value any, args ...any) bool
	MessageKey string
}

// Messages is a catalog override merged on top of the defaults at
// activation time.
type Messages map[string]string

// Validators registers custom entries into the schema's validator table.
type Validators map[string]Validator

type yamlMessages []byte

// MessagesYAML declares a catalog override parsed from a YAML mapping of
// message key to template.
func MessagesYAML(b []byte) any { return yamlMessages(b) }

// Plugin implements the validation capability.
type Plugin struct{}

func init() { checkit.Register("validation", Plugin{}) }

// Name implements checkit.Plugin.
func (Plugin) Name() string { return "validation" }

// Configure seeds the validator table and message catalog on first
// activation and merges the given overrides. Merging is cumulative so a
// derived schema can re-activate with a few extra messages without losing
// the defaults.
func (Plugin) Configure(s *checkit.Schema, args ...any) error {
	table, _ := s.Opt(OptValidators).(map[string]Validator)
	if table == nil {
		table = make(map[string]Validator, len(builtins))
		for name, v := range builtins {
			table[name] = v
		}
	}
	catalog, _ := s.Opt(OptMessages).(map[string]string)
	if catalog == nil {
		catalog = make(map[string]string, len(defaultMessages))
		for k, v := range defaultMessages {
			catalog[k] = v
		}
	}

	for _, arg := range args {
		switch v := arg.(type) {
		case Messages:
			for k, msg := range v {
				catalog[k] = msg
			}
		case yamlMessages:
			parsed := map[string]string{}
			if err := yaml.Unmarshal(v, &parsed); err != nil {
				return fmt.Errorf("validation: parsing message catalog: %w", err)
			}
			for k, msg := range parsed {
				catalog[k] = msg
			}
		case Validators:
			for k, val := range v {
				table[k] = val
			}
		default:
			return fmt.Errorf("validation: unsupported declaration %T", arg)
		}
	}

	s.SetOpt(OptValidators, table)
	s.SetOpt(OptMessages, catalog)
	return nil
}

// MessageFor renders the message registered under key, substituting
// positional args as %{arg1}, %{arg2}, ... . It falls back to the package
// defaults when the schema has no catalog (plugin not activated), so the
// direct helpers work standalone.
func MessageFor(s *checkit.Schema, key string, args ...any) string {
	var tmpl string
	if catalog, ok := s.Opt(OptMessages).(map[string]string); ok {
		tmpl = catalog[key]
	}
	if tmpl == "" {
		tmpl = defaultMessages[key]
	}
	if tmpl == "" {
		return key
	}
	return render(tmpl, args)
}

var placeholderRe = regexp.MustCompile(`%\{([^}]+)\}`)

func render(tmpl string, args []any) string {
	return placeholderRe.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-1]
		for i, arg := range args {
			if name == fmt.Sprintf("arg%d", i+1) {
				return fmt.Sprint(arg)
			}
		}
		return match
	})
}

var defaultMessages = map[string]string{
	"presence":   "must be present",
	"absence":    "must be absent",
	"type":       "must be %{arg1}",
	"format":     "is in invalid format",
	"inclusion":  "is not included in the list",
	"exclusion":  "is reserved",
	"min_length": "is too short (minimum is %{arg1})",
	"max_length": "is too long (maximum is %{arg1})",
	"gteq":       "must be greater than or equal to %{arg1}",
	"lteq":       "must be less than or equal to %{arg1}",
}

// builtins backs the named-validator table published into schema options.
var builtins = map[string]Validator{
	"presence":   {Check: func(v any, _ ...any) bool { return !isBlank(v) }, MessageKey: "presence"},
	"absence":    {Check: func(v any, _ ...any) bool { return isBlank(v) }, MessageKey: "absence"},
	"type":       {Check: checkType, MessageKey: "type"},
	"format":     {Check: checkFormat, MessageKey: "format"},
	"inclusion":  {Check: checkInclusion, MessageKey: "inclusion"},
	"exclusion":  {Check: func(v any, args ...any) bool { return !checkInclusion(v, args...) }, MessageKey: "exclusion"},
	"min_length": {Check: checkMinLength, MessageKey: "min_length"},
	"max_length": {Check: checkMaxLength, MessageKey: "max_length"},
	"gteq":       {Check: checkGTEq, MessageKey: "gteq"},
	"lteq":       {Check: checkLTEq, MessageKey: "lteq"},
}

func checkType(v any, args ...any) bool {
	if len(args) == 0 {
		return false
	}
	tag, _ := args[0].(string)
	return isType(v, tag)
}

func checkFormat(v any, args ...any) bool {
	if len(args) == 0 {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	switch re := args[0].(type) {
	case *regexp.Regexp:
		return re.MatchString(s)
	case string:
		matched, err := regexp.MatchString(re, s)
		return err == nil && matched
	}
	return false
}

func checkInclusion(v any, args ...any) bool {
	for _, allowed := range args {
		if v == allowed {
			return true
		}
	}
	return false
}

func checkMinLength(v any, args ...any) bool {
	n, l, ok := lengthArgs(v, args)
	return ok && l >= n
}

func checkMaxLength(v any, args ...any) bool {
	n, l, ok := lengthArgs(v, args)
	return ok && l <= n
}

func lengthArgs(v any, args []any) (bound, length int, ok bool) {
	if len(args) == 0 {
		return 0, 0, false
	}
	bound, boundOK := toInt(args[0])
	length, lengthOK := lengthOf(v)
	return bound, length, boundOK && lengthOK
}

func checkGTEq(v any, args ...any) bool {
	val, bound, ok := numericArgs(v, args)
	return ok && val >= bound
}

func checkLTEq(v any, args ...any) bool {
	val, bound, ok := numericArgs(v, args)
	return ok && val <= bound
}

func numericArgs(v any, args []any) (val, bound float64, ok bool) {
	if len(args) == 0 {
		return 0, 0, false
	}
	val, valOK := toFloat(v)
	bound, boundOK := toFloat(args[0])
	return val, bound, valOK && boundOK
}
