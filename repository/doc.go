// Package repository provides a generic, partition-aware data access
// layer over MongoDB.
//
// It lets callers operate on strongly typed document entities (insert,
// update, delete, project, group, paginate) without writing
// store-specific query code per entity type, and supports splitting one
// logical document type across multiple physical collections by
// partition key.
//
// # Key Features
//
//   - Generic repositories over any document and key type
//   - Partition-key routing to per-partition physical collections
//   - Key stamping at first insert, resolved by the key's declared type
//   - Combined multi-field updates executed as one atomic command
//   - Atomic find-and-update / find-and-replace with before/after and
//     upsert options
//   - Identical blocking and promise-based non-blocking surfaces
//   - Optional struct-tag validation before writes
//
// # Document Contract
//
// Entities implement [Document] with a pointer receiver for SetKey; the
// key field must marshal as "_id":
//
//	type Order struct {
//	    ID    string  `bson:"_id,omitempty"`
//	    State string  `bson:"state"`
//	    Total float64 `bson:"total"`
//	}
//
//	func (o *Order) Key() string       { return o.ID }
//	func (o *Order) SetKey(key string) { o.ID = key }
//
// Documents may additionally implement [Partitioned] to report their
// own partition key and [CollectionNamer] to override the default
// collection name (the lowercased type name).
//
// # Usage
//
//	provider := repository.NewProvider(client.Database("app"), repository.DefaultConfig())
//	orders := repository.New[*Order, string](provider)
//
//	err := orders.AddOne(ctx, &Order{State: "open"})
//	ok, err := orders.UpdateOneField(ctx, order, "state", "closed")
//	page, err := orders.GetPaginated(ctx, repository.Eq("state", "open"), 0, 50)
//
// Partitioned calls route to "<collection>-<partitionKey>":
//
//	err = orders.AddOne(ctx, order, repository.WithPartitionKey("eu"))
//
// The non-blocking surface mirrors every operation:
//
//	promise := orders.Async().DeleteOne(ctx, order)
//	deleted, err := promise.Await(ctx)
//
// # Result Contract
//
// "No match" is a normal outcome: operations report it as a zero count,
// a false success flag or an absent result. Errors are reserved for
// argument misuse (see [IsInvalidArgument]) and for store failures,
// which propagate from the driver unwrapped.
package repository
