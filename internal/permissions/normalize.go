package permissions

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SubmoduleEntry is the canonical form of a role's submodule grant. Legacy
// documents stored either a bare submodule name (meaning "module-level actions
// apply") or a {submodule, actions} object; both decode into this struct with
// Shorthand marking the bare-string origin. Marshalling preserves the stored
// layout so existing documents round-trip unchanged.
type SubmoduleEntry struct {
	Submodule string   `json:"submodule" bson:"submodule"`
	Actions   []string `json:"actions" bson:"actions"`
	Shorthand bool     `json:"-" bson:"-"`
}

func (e *SubmoduleEntry) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*e = SubmoduleEntry{Submodule: name, Actions: []string{}, Shorthand: true}
		return nil
	}

	var obj struct {
		Submodule string   `json:"submodule"`
		Actions   []string `json:"actions"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	if obj.Actions == nil {
		obj.Actions = []string{}
	}
	*e = SubmoduleEntry{Submodule: obj.Submodule, Actions: obj.Actions}
	return nil
}

func (e SubmoduleEntry) MarshalJSON() ([]byte, error) {
	if e.Shorthand {
		return json.Marshal(e.Submodule)
	}
	return json.Marshal(struct {
		Submodule string   `json:"submodule"`
		Actions   []string `json:"actions"`
	}{e.Submodule, e.Actions})
}

func (e *SubmoduleEntry) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	switch t {
	case bson.TypeString:
		name, _, ok := bsoncoreReadString(data)
		if !ok {
			return fmt.Errorf("invalid bson string value for submodule entry")
		}
		*e = SubmoduleEntry{Submodule: name, Actions: []string{}, Shorthand: true}
		return nil
	default:
		var obj struct {
			Submodule string   `bson:"submodule"`
			Actions   []string `bson:"actions"`
		}
		if err := bson.UnmarshalValue(t, data, &obj); err != nil {
			return err
		}
		if obj.Actions == nil {
			obj.Actions = []string{}
		}
		*e = SubmoduleEntry{Submodule: obj.Submodule, Actions: obj.Actions}
		return nil
	}
}

func (e SubmoduleEntry) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if e.Shorthand {
		return bson.MarshalValue(e.Submodule)
	}
	return bson.MarshalValue(struct {
		Submodule string   `bson:"submodule"`
		Actions   []string `bson:"actions"`
	}{e.Submodule, e.Actions})
}

// bsoncoreReadString decodes a raw BSON string value (int32 length prefix,
// bytes, NUL terminator).
func bsoncoreReadString(data []byte) (string, []byte, bool) {
	if len(data) < 4 {
		return "", data, false
	}
	length := int32(data[0]) | int32(data[1])<<8 | int32(data[2])<<16 | int32(data[3])<<24
	if length <= 0 || len(data) < int(4+length) {
		return "", data, false
	}
	return string(data[4 : 4+length-1]), data[4+length:], true
}

// unquotedKeys matches bare object keys in pseudo-JSON ({submodule: ...}).
var unquotedKeys = regexp.MustCompile(`([{,]\s*)([A-Za-z_][A-Za-z0-9_]*)\s*:`)

// CoerceToArray converts "almost-JSON" permission payloads into a well-formed
// slice. Proxies have been observed re-serializing request bodies into
// stringified, sometimes single-quoted, arrays; anything this function cannot
// parse resolves to an empty slice so the failure mode is always fewer
// permissions, never more.
func CoerceToArray(value any) []any {
	switch v := value.(type) {
	case nil:
		return []any{}
	case []any:
		return v
	case primitive.A:
		return []any(v)
	case []string:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out
	case string:
		trimmed := strings.TrimSpace(v)
		if !strings.HasPrefix(trimmed, "[") && !strings.HasPrefix(trimmed, "{") {
			return []any{}
		}

		var parsed any
		if err := json.Unmarshal([]byte(trimmed), &parsed); err != nil {
			relaxed := unquotedKeys.ReplaceAllString(trimmed, `$1"$2":`)
			relaxed = strings.ReplaceAll(relaxed, "'", `"`)
			if err := json.Unmarshal([]byte(relaxed), &parsed); err != nil {
				return []any{}
			}
		}

		arr, ok := parsed.([]any)
		if !ok {
			return []any{}
		}
		return arr
	default:
		return []any{}
	}
}

// CoerceToStrings coerces a payload to a string slice, dropping every
// non-string element.
func CoerceToStrings(value any) []string {
	items := CoerceToArray(value)
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// NormalizeSubmoduleEntry coerces one submodule grant into canonical form.
// A bare string is the legacy shorthand; a map needs at least a submodule
// field. Everything else is rejected and filtered out by the caller.
func NormalizeSubmoduleEntry(entry any) (SubmoduleEntry, bool) {
	switch v := entry.(type) {
	case string:
		if v == "" {
			return SubmoduleEntry{}, false
		}
		return SubmoduleEntry{Submodule: v, Actions: []string{}, Shorthand: true}, true
	case SubmoduleEntry:
		if v.Submodule == "" {
			return SubmoduleEntry{}, false
		}
		if v.Actions == nil {
			v.Actions = []string{}
		}
		return v, true
	case map[string]any:
		name, ok := v["submodule"].(string)
		if !ok || name == "" {
			return SubmoduleEntry{}, false
		}
		actions := make([]string, 0)
		if raw, ok := v["actions"]; ok {
			switch a := raw.(type) {
			case []string:
				actions = append(actions, a...)
			default:
				for _, item := range CoerceToArray(raw) {
					if s, ok := item.(string); ok {
						actions = append(actions, s)
					}
				}
			}
		}
		return SubmoduleEntry{Submodule: name, Actions: actions}, true
	default:
		return SubmoduleEntry{}, false
	}
}

// NormalizeSubmodules runs NormalizeSubmoduleEntry over an arbitrary payload,
// keeping only the entries that survive.
func NormalizeSubmodules(value any) []SubmoduleEntry {
	if typed, ok := value.([]SubmoduleEntry); ok {
		out := make([]SubmoduleEntry, 0, len(typed))
		for _, entry := range typed {
			if clean, ok := NormalizeSubmoduleEntry(entry); ok {
				out = append(out, clean)
			}
		}
		return out
	}

	items := CoerceToArray(value)
	out := make([]SubmoduleEntry, 0, len(items))
	for _, item := range items {
		if clean, ok := NormalizeSubmoduleEntry(item); ok {
			out = append(out, clean)
		}
	}
	return out
}
