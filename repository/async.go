package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

// Promise is the completion of one non-blocking operation. The
// operation's side effects become observable exactly when Await
// returns; there are no partial effects before completion.
type Promise[V any] struct {
	done  chan struct{}
	value V
	err   error
}

func newPromise[V any](run func() (V, error)) *Promise[V] {
	p := &Promise[V]{done: make(chan struct{})}
	go func() {
		defer close(p.done)
		p.value, p.err = run()
	}()
	return p
}

// Await blocks until the operation completes or ctx is done. If ctx
// expires first the operation keeps running under its own context and
// Await may be called again to collect the outcome.
func (p *Promise[V]) Await(ctx context.Context) (V, error) {
	select {
	case <-p.done:
		return p.value, p.err
	case <-ctx.Done():
		var zero V
		return zero, ctx.Err()
	}
}

// Match carries an optional single-document outcome for operations
// whose blocking form returns (document, found).
type Match[T any] struct {
	Doc   T
	Found bool
}

// Async is the non-blocking view of a repository. Every method starts
// the corresponding blocking operation in a goroutine and returns a
// Promise; both surfaces share one implementation, so their semantics
// are identical by construction.
type Async[T Document[K], K comparable] struct {
	r *Repository[T, K]
}

// Async returns the non-blocking view of r.
func (r *Repository[T, K]) Async() *Async[T, K] {
	return &Async[T, K]{r: r}
}

// AddOne resolves to the inserted document with its key stamped.
func (a *Async[T, K]) AddOne(ctx context.Context, doc T, opts ...Option) *Promise[T] {
	return newPromise(func() (T, error) {
		return doc, a.r.AddOne(ctx, doc, opts...)
	})
}

// AddMany resolves to the inserted batch with keys stamped.
func (a *Async[T, K]) AddMany(ctx context.Context, docs []T, opts ...Option) *Promise[[]T] {
	return newPromise(func() ([]T, error) {
		return docs, a.r.AddMany(ctx, docs, opts...)
	})
}

func (a *Async[T, K]) UpdateOne(ctx context.Context, doc T, opts ...Option) *Promise[bool] {
	return newPromise(func() (bool, error) {
		return a.r.UpdateOne(ctx, doc, opts...)
	})
}

func (a *Async[T, K]) UpdateOneWith(ctx context.Context, doc T, update Update, opts ...Option) *Promise[bool] {
	return newPromise(func() (bool, error) {
		return a.r.UpdateOneWith(ctx, doc, update, opts...)
	})
}

func (a *Async[T, K]) UpsertOneWith(ctx context.Context, doc T, update Update, opts ...Option) *Promise[bool] {
	return newPromise(func() (bool, error) {
		return a.r.UpsertOneWith(ctx, doc, update, opts...)
	})
}

func (a *Async[T, K]) UpdateOneField(ctx context.Context, doc T, field string, value any, opts ...Option) *Promise[bool] {
	return newPromise(func() (bool, error) {
		return a.r.UpdateOneField(ctx, doc, field, value, opts...)
	})
}

func (a *Async[T, K]) UpdateFieldByFilter(ctx context.Context, filter Filter, field string, value any, opts ...Option) *Promise[bool] {
	return newPromise(func() (bool, error) {
		return a.r.UpdateFieldByFilter(ctx, filter, field, value, opts...)
	})
}

func (a *Async[T, K]) UpdateFields(ctx context.Context, id K, fields map[string]any, opts ...Option) *Promise[bool] {
	return newPromise(func() (bool, error) {
		return a.r.UpdateFields(ctx, id, fields, opts...)
	})
}

func (a *Async[T, K]) FindAndUpdateFields(ctx context.Context, id K, fields map[string]any, opts ...Option) *Promise[Match[T]] {
	return newPromise(func() (Match[T], error) {
		doc, found, err := a.r.FindAndUpdateFields(ctx, id, fields, opts...)
		return Match[T]{Doc: doc, Found: found}, err
	})
}

func (a *Async[T, K]) ReplaceOneAndGet(ctx context.Context, id K, doc T, opts ...Option) *Promise[Match[T]] {
	return newPromise(func() (Match[T], error) {
		replaced, found, err := a.r.ReplaceOneAndGet(ctx, id, doc, opts...)
		return Match[T]{Doc: replaced, Found: found}, err
	})
}

func (a *Async[T, K]) DeleteOne(ctx context.Context, doc T, opts ...Option) *Promise[int64] {
	return newPromise(func() (int64, error) {
		return a.r.DeleteOne(ctx, doc, opts...)
	})
}

func (a *Async[T, K]) DeleteMany(ctx context.Context, docs []T, opts ...Option) *Promise[int64] {
	return newPromise(func() (int64, error) {
		return a.r.DeleteMany(ctx, docs, opts...)
	})
}

func (a *Async[T, K]) DeleteManyByFilter(ctx context.Context, filter Filter, opts ...Option) *Promise[int64] {
	return newPromise(func() (int64, error) {
		return a.r.DeleteManyByFilter(ctx, filter, opts...)
	})
}

func (a *Async[T, K]) GetPaginated(ctx context.Context, filter Filter, skip, take int64, opts ...Option) *Promise[[]T] {
	return newPromise(func() ([]T, error) {
		return a.r.GetPaginated(ctx, filter, skip, take, opts...)
	})
}

// ProjectOneAsync is the non-blocking form of ProjectOne.
func ProjectOneAsync[P any, T Document[K], K comparable](ctx context.Context, r *Repository[T, K], filter Filter, projection bson.D, opts ...Option) *Promise[*P] {
	return newPromise(func() (*P, error) {
		return ProjectOne[P](ctx, r, filter, projection, opts...)
	})
}

// ProjectManyAsync is the non-blocking form of ProjectMany.
func ProjectManyAsync[P any, T Document[K], K comparable](ctx context.Context, r *Repository[T, K], filter Filter, projection bson.D, opts ...Option) *Promise[[]P] {
	return newPromise(func() ([]P, error) {
		return ProjectMany[P](ctx, r, filter, projection, opts...)
	})
}

// GroupByAsync is the non-blocking form of GroupBy.
func GroupByAsync[P any, T Document[K], K comparable](ctx context.Context, r *Repository[T, K], field string, accumulators bson.D, filter Filter, opts ...Option) *Promise[[]P] {
	return newPromise(func() ([]P, error) {
		return GroupBy[P](ctx, r, field, accumulators, filter, opts...)
	})
}
