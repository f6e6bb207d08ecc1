package repository

import (
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Key generation is resolved by the key's declared type. Built-in
// generators cover:
//
//   - string: a hex-encoded ObjectID (12 bytes of timestamp, process
//     randomness and counter), unique with overwhelming probability
//     across processes and lexically ascending by creation time
//   - primitive.ObjectID: a fresh ObjectID
//   - uuid.UUID: a random UUID
//   - int, int64: a monotonically increasing counter seeded from the
//     clock so restarts keep ascending
//
// Additional key types need a generator registered with
// RegisterKeyGenerator before the first insert.

type keyGenerator func() any

var keyGenerators = struct {
	sync.RWMutex
	byType map[reflect.Type]keyGenerator
}{byType: make(map[reflect.Type]keyGenerator)}

var keyCounter atomic.Int64

func init() {
	keyCounter.Store(time.Now().UnixNano())

	RegisterKeyGenerator(func() string { return primitive.NewObjectID().Hex() })
	RegisterKeyGenerator(primitive.NewObjectID)
	RegisterKeyGenerator(uuid.New)
	RegisterKeyGenerator(func() int64 { return keyCounter.Add(1) })
	RegisterKeyGenerator(func() int { return int(keyCounter.Add(1)) })
}

// RegisterKeyGenerator registers gen as the generator for key type K,
// replacing any previous registration. Call it during init, before
// repositories start inserting.
func RegisterKeyGenerator[K comparable](gen func() K) {
	var zero K
	keyGenerators.Lock()
	keyGenerators.byType[reflect.TypeOf(zero)] = func() any { return gen() }
	keyGenerators.Unlock()
}

// generateKey produces a fresh key for type K.
func generateKey[K comparable]() (K, error) {
	var zero K
	keyGenerators.RLock()
	gen, ok := keyGenerators.byType[reflect.TypeOf(zero)]
	keyGenerators.RUnlock()
	if !ok {
		return zero, fmt.Errorf("%w: %T", ErrNoKeyGenerator, zero)
	}
	return gen().(K), nil
}

// AssignKeyIfAbsent stamps a freshly generated key on doc when its key
// is K's zero value; a preset key is left untouched. It mutates the
// document in place and must run exactly once per insert — update
// paths target an already-persisted key and never call it.
func AssignKeyIfAbsent[T Document[K], K comparable](doc T) error {
	if isNilDocument(doc) {
		return ErrNilDocument
	}
	var zero K
	if doc.Key() != zero {
		return nil
	}
	key, err := generateKey[K]()
	if err != nil {
		return err
	}
	doc.SetKey(key)
	return nil
}
