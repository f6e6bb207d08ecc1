package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"
)

// UpdateOne replaces the persisted document matching doc's key with
// doc's current state. Success means the store modified exactly one
// document; replacing a document with identical content reports false
// because the modified count is zero. A missing document also reports
// false, never an error.
func (r *Repository[T, K]) UpdateOne(ctx context.Context, doc T, opts ...Option) (bool, error) {
	if isNilDocument(doc) {
		return false, ErrNilDocument
	}
	o := applyOptions(opts)
	if !o.skipValidation {
		if err := r.provider.validateStruct(doc); err != nil {
			return false, err
		}
	}
	res, err := r.collection(doc, o).ReplaceOne(ctx, keyFilter(doc.Key()), doc)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount == 1, nil
}

// UpdateOneWith applies a pre-built update command to the document
// matching doc's key. It never upserts: when no document matches, the
// result is false. Use UpsertOneWith for insert-on-miss semantics.
func (r *Repository[T, K]) UpdateOneWith(ctx context.Context, doc T, update Update, opts ...Option) (bool, error) {
	if isNilDocument(doc) {
		return false, ErrNilDocument
	}
	o := applyOptions(opts)
	res, err := r.collection(doc, o).UpdateOne(ctx, keyFilter(doc.Key()), update.bson())
	if err != nil {
		return false, err
	}
	return res.ModifiedCount == 1, nil
}

// UpsertOneWith applies a pre-built update command to the document
// matching doc's key, inserting a new document when none matches.
// Success means one document was modified or inserted.
func (r *Repository[T, K]) UpsertOneWith(ctx context.Context, doc T, update Update, opts ...Option) (bool, error) {
	if isNilDocument(doc) {
		return false, ErrNilDocument
	}
	o := applyOptions(opts)
	res, err := r.collection(doc, o).UpdateOne(
		ctx, keyFilter(doc.Key()), update.bson(), options.Update().SetUpsert(true))
	if err != nil {
		return false, err
	}
	return res.ModifiedCount == 1 || res.UpsertedCount == 1, nil
}

// UpdateOneField sets a single field on the document matching doc's key.
func (r *Repository[T, K]) UpdateOneField(ctx context.Context, doc T, field string, value any, opts ...Option) (bool, error) {
	if isNilDocument(doc) {
		return false, ErrNilDocument
	}
	o := applyOptions(opts)
	res, err := r.collection(doc, o).UpdateOne(
		ctx, keyFilter(doc.Key()), BuildSingleFieldUpdate(field, value).bson())
	if err != nil {
		return false, err
	}
	return res.ModifiedCount == 1, nil
}

// UpdateFieldByFilter sets a single field on the first document
// matching filter, without loading it into memory first.
func (r *Repository[T, K]) UpdateFieldByFilter(ctx context.Context, filter Filter, field string, value any, opts ...Option) (bool, error) {
	o := applyOptions(opts)
	res, err := r.collection(nil, o).UpdateOne(
		ctx, filter.bson(), BuildSingleFieldUpdate(field, value).bson())
	if err != nil {
		return false, err
	}
	return res.ModifiedCount == 1, nil
}

// UpdateFields loads the document with the given id, builds one
// combined update from the field map and applies it by key. When no
// document has that id, the load comes back empty and the subsequent
// update matches nothing, so the result is false rather than an error.
func (r *Repository[T, K]) UpdateFields(ctx context.Context, id K, fields map[string]any, opts ...Option) (bool, error) {
	update, err := BuildCombinedUpdate(BuildFieldMap(fields))
	if err != nil {
		return false, err
	}
	o := applyOptions(opts)
	coll := r.collection(nil, o)

	key := id
	current, found, err := r.findByKey(ctx, coll, id)
	if err != nil {
		return false, err
	}
	if found {
		key = current.Key()
	}

	res, err := coll.UpdateOne(ctx, keyFilter(key), update.bson())
	if err != nil {
		return false, err
	}
	return res.ModifiedCount == 1, nil
}

// FindAndUpdateFields atomically applies a combined update built from
// the field map to the document with the given id and returns the
// resulting document. By default the post-update state is returned;
// WithReturnBefore returns the pre-update state and WithUpsert inserts
// when nothing matches. A zero id fails with ErrEmptyID before any
// store round trip. When nothing matched (and nothing was upserted into
// the returned state) found is false.
func (r *Repository[T, K]) FindAndUpdateFields(ctx context.Context, id K, fields map[string]any, opts ...Option) (T, bool, error) {
	var zero T
	var zeroKey K
	if id == zeroKey {
		return zero, false, ErrEmptyID
	}
	update, err := BuildCombinedUpdate(BuildFieldMap(fields))
	if err != nil {
		return zero, false, err
	}
	o := applyOptions(opts)
	fo := options.FindOneAndUpdate().SetReturnDocument(options.After)
	if o.returnBefore {
		fo.SetReturnDocument(options.Before)
	}
	if o.upsert {
		fo.SetUpsert(true)
	}
	return r.decode(r.collection(nil, o).FindOneAndUpdate(ctx, keyFilter(id), update.bson(), fo))
}

// ReplaceOneAndGet atomically replaces the document with the given id
// and returns the stored replacement (or, with WithReturnBefore, the
// prior state). An empty id falls back to doc's own key; when neither
// is usable the call fails with ErrEmptyID, and when both are set but
// disagree it fails with ErrAmbiguousID. The resolved key is stamped on
// doc so the replacement keeps its identity.
func (r *Repository[T, K]) ReplaceOneAndGet(ctx context.Context, id K, doc T, opts ...Option) (T, bool, error) {
	var zero T
	if isNilDocument(doc) {
		return zero, false, ErrNilDocument
	}
	var zeroKey K
	key := id
	switch {
	case id == zeroKey && doc.Key() == zeroKey:
		return zero, false, ErrEmptyID
	case id == zeroKey:
		key = doc.Key()
	case doc.Key() != zeroKey && doc.Key() != id:
		return zero, false, ErrAmbiguousID
	}
	o := applyOptions(opts)
	if !o.skipValidation {
		if err := r.provider.validateStruct(doc); err != nil {
			return zero, false, err
		}
	}
	doc.SetKey(key)
	fo := options.FindOneAndReplace().SetReturnDocument(options.After)
	if o.returnBefore {
		fo.SetReturnDocument(options.Before)
	}
	if o.upsert {
		fo.SetUpsert(true)
	}
	return r.decode(r.collection(doc, o).FindOneAndReplace(ctx, keyFilter(key), doc, fo))
}
