package fullmessages

import (
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/checkit"
)

const optLocale = "fullmessages.locale"

// Locale overrides the title-casing locale for one schema, e.g.
// Locale("tr") for Turkish dotted-I rules.
type Locale string

// Plugin implements the full-messages capability. The zero value is not
// usable; construct with New or activate by name ("full_messages"), which
// uses a shared instance.
type Plugin struct {
	names *lru.Cache[string, string]
}

// New builds a plugin instance with its own humanized-name cache.
func New(cacheSize int) *Plugin {
	cache, err := lru.New[string, string](cacheSize)
	if err != nil {
		panic(fmt.Sprintf("fullmessages: building name cache: %v", err))
	}
	return &Plugin{names: cache}
}

func init() { checkit.Register("full_messages", New(512)) }

// Name implements checkit.Plugin.
func (*Plugin) Name() string { return "full_messages" }

// Configure records the locale override.
func (*Plugin) Configure(s *checkit.Schema, args ...any) error {
	for _, arg := range args {
		loc, ok := arg.(Locale)
		if !ok {
			return fmt.Errorf("fullmessages: unsupported declaration %T", arg)
		}
		s.SetOpt(optLocale, string(loc))
	}
	return nil
}

// ResultMethods contributes "full_messages" to the result method table.
func (pl *Plugin) ResultMethods() map[string]checkit.ResultMethod {
	return map[string]checkit.ResultMethod{
		"full_messages": func(r *checkit.Result, _ ...any) (any, error) {
			return pl.fullMessages(r), nil
		},
	}
}

// Messages returns the rendered view for a result produced by a schema with
// this plugin activated.
func Messages(r *checkit.Result) (any, error) {
	return r.Invoke("full_messages")
}

func (pl *Plugin) fullMessages(r *checkit.Result) any {
	return r.Memo("full_messages", func() any {
		loc, caser := pl.caser(r.Schema())
		switch tree := r.Messages().(type) {
		case checkit.Messages:
			return pl.expand(tree, loc, caser)
		case []string:
			// Degenerate root-level flat errors carry no param name.
			return append([]string(nil), tree...)
		}
		return checkit.Messages{}
	})
}

func (pl *Plugin) caser(s *checkit.Schema) (string, cases.Caser) {
	loc := "en"
	if v, ok := s.Opt(optLocale).(string); ok && v != "" {
		loc = v
	}
	return loc, cases.Title(language.Make(loc))
}

func (pl *Plugin) expand(tree checkit.Messages, loc string, caser cases.Caser) checkit.Messages {
	out := make(checkit.Messages, len(tree))
	for key, payload := range tree {
		switch v := payload.(type) {
		case []string:
			prefix := pl.humanize(key, loc, caser)
			full := make([]string, len(v))
			for i, msg := range v {
				full[i] = prefix + " " + msg
			}
			out[key] = full
		case checkit.Messages:
			out[key] = pl.expand(v, loc, caser)
		default:
			out[key] = payload
		}
	}
	return out
}

// humanize caches per locale: the same name title-cases differently under
// different casing rules.
func (pl *Plugin) humanize(key any, loc string, caser cases.Caser) string {
	name, ok := key.(string)
	if !ok {
		return fmt.Sprintf("item %v", key)
	}
	cacheKey := loc + "\x00" + name
	if cached, hit := pl.names.Get(cacheKey); hit {
		return cached
	}
	human := caser.String(strings.ReplaceAll(name, "_", " "))
	pl.names.Add(cacheKey, human)
	return human
}
