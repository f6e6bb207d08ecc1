package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetPaginated returns one page of documents matching filter, in the
// store's natural order; callers that need a specific order encode it
// in the filter layer. Skip and take apply after filtering. Negative
// skip is treated as 0 and take <= 0 falls back to the configured
// default page size. Paging past the last match yields an empty page,
// never an error.
func (r *Repository[T, K]) GetPaginated(ctx context.Context, filter Filter, skip, take int64, opts ...Option) ([]T, error) {
	o := applyOptions(opts)
	if skip < 0 {
		skip = 0
	}
	if take <= 0 {
		take = r.provider.config.DefaultPageSize
	}
	cur, err := r.collection(nil, o).Find(
		ctx, filter.bson(), options.Find().SetSkip(skip).SetLimit(take))
	if err != nil {
		return nil, err
	}
	docs := []T{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// ProjectOne evaluates projection store-side on the first document
// matching filter and decodes the projected value into P. A nil result
// with a nil error means nothing matched.
//
// Projection needs its own result type parameter, which Go methods
// cannot introduce, so the projection and group operations are
// package-level functions over a repository.
func ProjectOne[P any, T Document[K], K comparable](ctx context.Context, r *Repository[T, K], filter Filter, projection bson.D, opts ...Option) (*P, error) {
	o := applyOptions(opts)
	res := r.collection(nil, o).FindOne(
		ctx, filter.bson(), options.FindOne().SetProjection(projection))
	var p P
	if err := res.Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// ProjectMany evaluates projection store-side on every document
// matching filter.
func ProjectMany[P any, T Document[K], K comparable](ctx context.Context, r *Repository[T, K], filter Filter, projection bson.D, opts ...Option) ([]P, error) {
	o := applyOptions(opts)
	cur, err := r.collection(nil, o).Find(
		ctx, filter.bson(), options.Find().SetProjection(projection))
	if err != nil {
		return nil, err
	}
	out := []P{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GroupBy applies the optional filter, groups the remaining documents
// by field and projects each group through the accumulators document,
// decoding the results into P. The grouping key lands in each result's
// "_id" and follows the field type's natural equality. Accumulators use
// the store's own operators, e.g.
//
//	bson.D{{Key: "total", Value: bson.M{"$sum": 1}}}
func GroupBy[P any, T Document[K], K comparable](ctx context.Context, r *Repository[T, K], field string, accumulators bson.D, filter Filter, opts ...Option) ([]P, error) {
	o := applyOptions(opts)

	group := bson.D{{Key: "_id", Value: "$" + field}}
	group = append(group, accumulators...)

	pipeline := mongo.Pipeline{}
	if len(filter) > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: filter.bson()}})
	}
	pipeline = append(pipeline, bson.D{{Key: "$group", Value: group}})

	cur, err := r.collection(nil, o).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	out := []P{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
