// Package names derives physical collection names for document types
// and their partitions.
package names

import (
	"reflect"
	"strings"
)

// Separator joins a base collection name with a partition key.
const Separator = "-"

// ForType returns the default collection name for a document type:
// the type's name, lowercased, with any pointer indirection stripped.
// The result is stable across processes, so every caller of the same
// type addresses the same collection.
func ForType(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return strings.ToLower(t.Name())
}

// Collection composes the physical collection name for a base name and
// an optional partition key. The rule is fixed: an empty partition key
// yields the base name itself, a non-empty key yields
// "<base>-<partitionKey>". Distinct partition keys therefore never
// collide over the same base.
func Collection(base, partitionKey string) string {
	if partitionKey == "" {
		return base
	}
	return base + Separator + partitionKey
}
