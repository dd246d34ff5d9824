// Package qstring parses flat ampersand-delimited key-value strings, the
// format shared by URI query strings and single-line request bodies.
package qstring

import (
	"strings"

	"github.com/weft-web/weft/kv"
)

// defaultFlagValue substitutes the value of a bare key, so "a&b=2" reads as
// {a: "1", b: "2"}.
const defaultFlagValue = "1"

// Parse splits data on '&' and stores each item into dst. An item with exactly
// one '=' contributes a key-value pair; any other item (a bare key, or one
// with multiple '=') contributes the whole first segment as a flag key with
// the value "1". Empty input contributes nothing. Duplicate keys follow the
// storage policy: last write wins.
func Parse(data string, dst *kv.Storage) {
	if len(data) == 0 {
		return
	}

	for _, item := range strings.Split(data, "&") {
		parts := strings.Split(item, "=")
		if len(parts) == 2 {
			dst.Set(parts[0], parts[1])
		} else {
			dst.Set(parts[0], defaultFlagValue)
		}
	}
}
