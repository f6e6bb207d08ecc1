package repository

import (
	"fmt"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
)

// FieldUpdate pairs a field selector with its target value. Entries are
// transient: they exist only to build one combined update command.
type FieldUpdate struct {
	Field string
	Value any
}

// Update is a single atomic update command, built once, executed once
// and discarded. Values are handed to the store's codec, which carries
// the typed representation on the wire.
type Update bson.D

// BuildFieldMap converts a name-to-value map into field entries. Keys
// are kept verbatim as field selectors and ordered by name, so the
// resulting command is deterministic for a given map.
func BuildFieldMap(fields map[string]any) []FieldUpdate {
	keys := make([]string, 0, len(fields))
	for name := range fields {
		keys = append(keys, name)
	}
	sort.Strings(keys)

	entries := make([]FieldUpdate, 0, len(fields))
	for _, name := range keys {
		entries = append(entries, FieldUpdate{Field: name, Value: fields[name]})
	}
	return entries
}

// BuildCombinedUpdate merges the entries into one command equivalent to
// setting each field independently but executed as a single atomic
// operation. A repeated field name is a caller bug and is rejected with
// ErrDuplicateField rather than resolved last-wins.
func BuildCombinedUpdate(entries []FieldUpdate) (Update, error) {
	set := make(bson.D, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if _, dup := seen[e.Field]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateField, e.Field)
		}
		seen[e.Field] = struct{}{}
		set = append(set, bson.E{Key: e.Field, Value: e.Value})
	}
	return Update{bson.E{Key: "$set", Value: set}}, nil
}

// BuildSingleFieldUpdate is the single-field special case of
// BuildCombinedUpdate.
func BuildSingleFieldUpdate(field string, value any) Update {
	return Update{bson.E{Key: "$set", Value: bson.D{{Key: field, Value: value}}}}
}

// bson returns the store representation of the command.
func (u Update) bson() bson.D {
	return bson.D(u)
}
