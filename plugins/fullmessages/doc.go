// Package fullmessages is a checkit plugin that renders an error tree into
// reader-facing messages: each leaf message is prefixed with its param's
// humanized name ("user_name" becomes "User Name"), recursively through the
// tree. Sequence indexes are rendered as "item N".
//
//	result, _ := schema.Call(input)
//	full := fullmessages.Messages(result)
//	// Messages{"username": []string{"Username must be string"}, ...}
//
// The rendered view is computed lazily on first access and cached on the
// result; the stored error tree is never altered. Humanized names are cached
// in a process-wide LRU since param names repeat heavily across runs. The
// title-casing locale defaults to English and can be overridden per schema
// with Locale.
package fullmessages
