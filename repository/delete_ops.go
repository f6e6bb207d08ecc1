package repository

import (
	"context"
)

// DeleteOne deletes the document matching doc's key and returns the
// deleted count. A count of 0 means nothing matched; deleting the same
// document twice therefore yields 1 then 0, never an error.
func (r *Repository[T, K]) DeleteOne(ctx context.Context, doc T, opts ...Option) (int64, error) {
	if isNilDocument(doc) {
		return 0, ErrNilDocument
	}
	o := applyOptions(opts)
	res, err := r.collection(doc, o).DeleteOne(ctx, keyFilter(doc.Key()))
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// DeleteMany deletes every document whose key appears in docs using a
// single membership predicate, in one round trip. An empty batch
// short-circuits to 0 without touching the store. The target collection
// is resolved from the first element.
func (r *Repository[T, K]) DeleteMany(ctx context.Context, docs []T, opts ...Option) (int64, error) {
	if len(docs) == 0 {
		return 0, nil
	}
	keys := make([]K, 0, len(docs))
	for _, doc := range docs {
		if isNilDocument(doc) {
			return 0, ErrNilDocument
		}
		keys = append(keys, doc.Key())
	}
	o := applyOptions(opts)
	res, err := r.collection(docs[0], o).DeleteMany(ctx, In("_id", keys...).bson())
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// DeleteManyByFilter deletes every document matching filter and returns
// the deleted count.
func (r *Repository[T, K]) DeleteManyByFilter(ctx context.Context, filter Filter, opts ...Option) (int64, error) {
	o := applyOptions(opts)
	res, err := r.collection(nil, o).DeleteMany(ctx, filter.bson())
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
