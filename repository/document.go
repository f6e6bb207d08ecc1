// Package repository provides a generic, partition-aware MongoDB data
// access layer.
package repository

import (
	"reflect"
)

// Document is the base contract for all storable types. K is the key
// type; the field backing Key must marshal to the store's "_id" field.
type Document[K comparable] interface {
	// Key returns the document's unique key, or K's zero value when the
	// document has not been persisted yet.
	Key() K

	// SetKey stores a freshly generated key on the document. Because it
	// mutates the document, implementations use a pointer receiver and
	// repositories are instantiated with the pointer type.
	SetKey(key K)
}

// Partitioned is implemented by documents that carry their own
// partition key. An explicit WithPartitionKey option takes precedence
// over the document-reported key.
type Partitioned interface {
	// PartitionKey returns the partition this document belongs to.
	// Returns empty string for unpartitioned documents.
	PartitionKey() string
}

// CollectionNamer overrides the default collection name, which is the
// document type's lowercased name.
type CollectionNamer interface {
	CollectionName() string
}

// isNilDocument reports whether a caller handed in an absent document
// reference (typed or untyped nil).
func isNilDocument(doc any) bool {
	if doc == nil {
		return true
	}
	v := reflect.ValueOf(doc)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// newDocument returns a decode target for T: a freshly allocated value
// when T is a pointer type, the zero value otherwise.
func newDocument[T any]() T {
	var zero T
	t := reflect.TypeOf(zero)
	if t != nil && t.Kind() == reflect.Ptr {
		return reflect.New(t.Elem()).Interface().(T)
	}
	return zero
}
