package ropt

import (
	"encoding/json"
	"fmt"
)

// NonSerializable is the fallback marker used by String when a payload
// cannot be rendered (cycles, channels, functions, panicking Stringers).
const NonSerializable = "<non-serializable>"

// Repr renders a variant payload for Ok/Err/Some formatting. Strings
// render raw, errors through Error, fmt.Stringer through String, anything
// else as compact JSON. Repr never panics; payloads that cannot be
// serialized render as NonSerializable.
func Repr(v interface{}) (s string) {
	defer func() {
		if recover() != nil {
			s = NonSerializable
		}
	}()

	if IsNil(v) {
		return "<nil>"
	}

	switch x := v.(type) {
	case string:
		return x
	case error:
		return x.Error()
	case fmt.Stringer:
		return x.String()
	}

	b, err := json.Marshal(v)
	if err != nil {
		return NonSerializable
	}
	return string(b)
}
