package repository

import (
	"go.mongodb.org/mongo-driver/bson"
)

// Filter is a structured predicate over a document type, selecting
// documents without loading them into memory first. Build one with the
// constructors below, or wrap a pre-built store filter with Raw. Field
// names are passed to the store verbatim; an invalid name surfaces as a
// store-level error at execution time, not here.
type Filter bson.D

// All matches every document in the collection.
func All() Filter {
	return Filter{}
}

// Eq matches documents whose field equals value.
func Eq(field string, value any) Filter {
	return Filter{bson.E{Key: field, Value: value}}
}

// In matches documents whose field equals any of values.
func In[V any](field string, values ...V) Filter {
	arr := make(bson.A, 0, len(values))
	for _, v := range values {
		arr = append(arr, v)
	}
	return Filter{bson.E{Key: field, Value: bson.M{"$in": arr}}}
}

// Gt matches documents whose field is greater than value.
func Gt(field string, value any) Filter {
	return compare(field, "$gt", value)
}

// Gte matches documents whose field is greater than or equal to value.
func Gte(field string, value any) Filter {
	return compare(field, "$gte", value)
}

// Lt matches documents whose field is less than value.
func Lt(field string, value any) Filter {
	return compare(field, "$lt", value)
}

// Lte matches documents whose field is less than or equal to value.
func Lte(field string, value any) Filter {
	return compare(field, "$lte", value)
}

// Ne matches documents whose field differs from value.
func Ne(field string, value any) Filter {
	return compare(field, "$ne", value)
}

func compare(field, op string, value any) Filter {
	return Filter{bson.E{Key: field, Value: bson.M{op: value}}}
}

// And matches documents that satisfy every given filter.
func And(filters ...Filter) Filter {
	return combine("$and", filters)
}

// Or matches documents that satisfy at least one of the given filters.
func Or(filters ...Filter) Filter {
	return combine("$or", filters)
}

func combine(op string, filters []Filter) Filter {
	clauses := make(bson.A, 0, len(filters))
	for _, f := range filters {
		clauses = append(clauses, bson.D(f))
	}
	return Filter{bson.E{Key: op, Value: clauses}}
}

// Raw wraps a pre-built store filter.
func Raw(d bson.D) Filter {
	return Filter(d)
}

// bson returns the store representation; a nil Filter matches all.
func (f Filter) bson() bson.D {
	if f == nil {
		return bson.D{}
	}
	return bson.D(f)
}

// keyFilter matches a single document by key equality.
func keyFilter[K comparable](key K) bson.D {
	return bson.D{{Key: "_id", Value: key}}
}
