package models

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// ID is a server-assigned identifier. The API sends ids either as JSON
// strings or as numbers; both decode to the same string form.
type ID string

func (id ID) String() string { return string(id) }

func (id *ID) UnmarshalJSON(b []byte) error {
	if !gjson.ValidBytes(b) {
		return fmt.Errorf("invalid id %s", b)
	}
	switch r := gjson.ParseBytes(b); r.Type {
	case gjson.String:
		*id = ID(r.Str)
	case gjson.Number:
		*id = ID(r.Raw)
	case gjson.Null:
		*id = ""
	default:
		return fmt.Errorf("id must be a string or a number, got %s", b)
	}
	return nil
}

// IDs converts plain strings to ids.
func IDs(ss []string) []ID {
	ids := make([]ID, len(ss))
	for i, s := range ss {
		ids[i] = ID(s)
	}
	return ids
}

// Strings is the inverse of IDs.
func Strings(ids []ID) []string {
	ss := make([]string, len(ids))
	for i, id := range ids {
		ss[i] = string(id)
	}
	return ss
}
