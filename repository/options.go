package repository

// Option adjusts a single repository call.
type Option func(*callOptions)

type callOptions struct {
	partitionKey   string
	upsert         bool
	returnBefore   bool
	skipValidation bool
}

// WithPartitionKey routes the call to the partition's physical
// collection. It takes precedence over a partition key the document
// reports through Partitioned. An empty key targets the type's default
// collection, same as omitting the option.
func WithPartitionKey(key string) Option {
	return func(o *callOptions) { o.partitionKey = key }
}

// WithUpsert makes FindAndUpdateFields and ReplaceOneAndGet insert a
// new document when nothing matches. Plain update operations keep their
// documented upsert behavior regardless: UpdateOneWith never upserts,
// UpsertOneWith always does.
func WithUpsert() Option {
	return func(o *callOptions) { o.upsert = true }
}

// WithReturnBefore makes find-and-modify operations return the document
// state prior to modification instead of the default post-modification
// state.
func WithReturnBefore() Option {
	return func(o *callOptions) { o.returnBefore = true }
}

// WithoutValidation skips pre-write struct validation for this call on
// a provider configured with Validation.
func WithoutValidation() Option {
	return func(o *callOptions) { o.skipValidation = true }
}

func applyOptions(opts []Option) callOptions {
	var o callOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
