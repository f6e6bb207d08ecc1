package repository

import (
	"context"
	"errors"
	"reflect"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/salda8/mongodb-generic-repository/internal/names"
)

// Repository provides partition-aware CRUD over one document type. It
// holds no mutable state of its own beyond the provider's handle cache,
// so a single value is safe for concurrent use.
//
// Every operation issues one round trip to the store and translates the
// raw result into this package's result contract: "no match" is a zero
// count, false flag or absent result, never an error. Store failures
// propagate unwrapped.
type Repository[T Document[K], K comparable] struct {
	provider *Provider
	base     string
	logger   *zap.SugaredLogger
}

// New creates a repository for T backed by the provider's database. The
// default collection name is T's lowercased type name; T may override
// it by implementing CollectionNamer.
func New[T Document[K], K comparable](p *Provider) *Repository[T, K] {
	probe := newDocument[T]()
	base := names.ForType(reflect.TypeOf(probe))
	if namer, ok := any(probe).(CollectionNamer); ok {
		base = namer.CollectionName()
	}
	p.logger.Debugw("repository created", "collection", base)
	return &Repository[T, K]{
		provider: p,
		base:     base,
		logger:   p.logger,
	}
}

// CollectionName returns the resolved physical collection name for an
// optional partition key, without touching the store.
func (r *Repository[T, K]) CollectionName(partitionKey string) string {
	return names.Collection(r.base, partitionKey)
}

// collection resolves the target collection for one call. Precedence:
// explicit option, then the document's own Partitioned capability, then
// the type's default collection.
func (r *Repository[T, K]) collection(doc any, o callOptions) *mongo.Collection {
	partitionKey := o.partitionKey
	if partitionKey == "" && !isNilDocument(doc) {
		if p, ok := doc.(Partitioned); ok {
			partitionKey = p.PartitionKey()
		}
	}
	return r.provider.collection(r.base, partitionKey)
}

// AddOne inserts a document, stamping a freshly generated key first
// when the document's key is the zero value.
func (r *Repository[T, K]) AddOne(ctx context.Context, doc T, opts ...Option) error {
	if isNilDocument(doc) {
		return ErrNilDocument
	}
	o := applyOptions(opts)
	if !o.skipValidation {
		if err := r.provider.validateStruct(doc); err != nil {
			return err
		}
	}
	if err := AssignKeyIfAbsent[T, K](doc); err != nil {
		return err
	}
	_, err := r.collection(doc, o).InsertOne(ctx, doc)
	return err
}

// AddMany inserts a batch of documents in one round trip, stamping keys
// the same way AddOne does. An empty batch returns immediately without
// touching the store. All documents land in the collection resolved
// from the first element.
func (r *Repository[T, K]) AddMany(ctx context.Context, docs []T, opts ...Option) error {
	if len(docs) == 0 {
		return nil
	}
	o := applyOptions(opts)
	payload := make([]any, 0, len(docs))
	for _, doc := range docs {
		if isNilDocument(doc) {
			return ErrNilDocument
		}
		if !o.skipValidation {
			if err := r.provider.validateStruct(doc); err != nil {
				return err
			}
		}
		if err := AssignKeyIfAbsent[T, K](doc); err != nil {
			return err
		}
		payload = append(payload, doc)
	}
	_, err := r.collection(docs[0], o).InsertMany(ctx, payload)
	return err
}

// findByKey loads the document with the given key from coll.
func (r *Repository[T, K]) findByKey(ctx context.Context, coll *mongo.Collection, key K) (T, bool, error) {
	return r.decode(coll.FindOne(ctx, keyFilter(key)))
}

// decode translates a single-document result into (document, found).
// An absent match is a normal outcome, not an error.
func (r *Repository[T, K]) decode(res *mongo.SingleResult) (T, bool, error) {
	var zero T
	doc := newDocument[T]()
	var err error
	if reflect.ValueOf(doc).Kind() == reflect.Ptr {
		err = res.Decode(doc)
	} else {
		err = res.Decode(&doc)
	}
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return zero, false, nil
		}
		return zero, false, err
	}
	return doc, true, nil
}
