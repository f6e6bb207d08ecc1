package repository

import (
	"errors"
	"reflect"
	"testing"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Test Document Types ---

// stringDoc is keyed by a store-assigned string identifier.
type stringDoc struct {
	ID   string `bson:"_id,omitempty"`
	Name string `bson:"name"`
}

func (d *stringDoc) Key() string       { return d.ID }
func (d *stringDoc) SetKey(key string) { d.ID = key }

// objectIDDoc is keyed by a raw ObjectID.
type objectIDDoc struct {
	ID primitive.ObjectID `bson:"_id,omitempty"`
}

func (d *objectIDDoc) Key() primitive.ObjectID       { return d.ID }
func (d *objectIDDoc) SetKey(key primitive.ObjectID) { d.ID = key }

// uuidDoc is keyed by a UUID.
type uuidDoc struct {
	ID uuid.UUID `bson:"_id"`
}

func (d *uuidDoc) Key() uuid.UUID       { return d.ID }
func (d *uuidDoc) SetKey(key uuid.UUID) { d.ID = key }

// intDoc is keyed by a counter-assigned integer.
type intDoc struct {
	ID int64 `bson:"_id"`
}

func (d *intDoc) Key() int64       { return d.ID }
func (d *intDoc) SetKey(key int64) { d.ID = key }

// customKey has no built-in generator.
type customKey struct {
	Hi, Lo uint64
}

type customKeyDoc struct {
	ID customKey `bson:"_id"`
}

func (d *customKeyDoc) Key() customKey       { return d.ID }
func (d *customKeyDoc) SetKey(key customKey) { d.ID = key }

// --- AssignKeyIfAbsent ---

func TestAssignKeyIfAbsent_NilDocument(t *testing.T) {
	var doc *stringDoc
	err := AssignKeyIfAbsent[*stringDoc, string](doc)
	if !errors.Is(err, ErrNilDocument) {
		t.Errorf("expected ErrNilDocument, got %v", err)
	}
}

func TestAssignKeyIfAbsent_StringKey(t *testing.T) {
	doc := &stringDoc{}
	if err := AssignKeyIfAbsent[*stringDoc, string](doc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.ID == "" {
		t.Fatal("expected a generated key")
	}
	if len(doc.ID) != 24 {
		t.Errorf("expected a 24-char hex ObjectID, got %q (len %d)", doc.ID, len(doc.ID))
	}
	if _, err := primitive.ObjectIDFromHex(doc.ID); err != nil {
		t.Errorf("generated key %q is not a valid hex ObjectID: %v", doc.ID, err)
	}
}

func TestAssignKeyIfAbsent_PresetKeyUnchanged(t *testing.T) {
	doc := &stringDoc{ID: "preset"}
	if err := AssignKeyIfAbsent[*stringDoc, string](doc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.ID != "preset" {
		t.Errorf("preset key was replaced with %q", doc.ID)
	}
}

func TestAssignKeyIfAbsent_StringKeysSortable(t *testing.T) {
	// Keys generated in sequence must be unique and lexically ascending,
	// so they work as a default chronological sort key.
	prev := ""
	for i := 0; i < 100; i++ {
		doc := &stringDoc{}
		if err := AssignKeyIfAbsent[*stringDoc, string](doc); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if doc.ID <= prev {
			t.Fatalf("key %q not greater than predecessor %q", doc.ID, prev)
		}
		prev = doc.ID
	}
}

func TestAssignKeyIfAbsent_ObjectIDKey(t *testing.T) {
	doc := &objectIDDoc{}
	if err := AssignKeyIfAbsent[*objectIDDoc, primitive.ObjectID](doc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.ID.IsZero() {
		t.Error("expected a generated ObjectID")
	}
}

func TestAssignKeyIfAbsent_UUIDKey(t *testing.T) {
	doc := &uuidDoc{}
	if err := AssignKeyIfAbsent[*uuidDoc, uuid.UUID](doc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.ID == uuid.Nil {
		t.Error("expected a generated UUID")
	}
}

func TestAssignKeyIfAbsent_IntKeyMonotonic(t *testing.T) {
	first := &intDoc{}
	second := &intDoc{}
	if err := AssignKeyIfAbsent[*intDoc, int64](first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := AssignKeyIfAbsent[*intDoc, int64](second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.ID == 0 || second.ID == 0 {
		t.Fatal("expected non-zero generated keys")
	}
	if second.ID <= first.ID {
		t.Errorf("expected ascending keys, got %d then %d", first.ID, second.ID)
	}
}

func TestAssignKeyIfAbsent_UnregisteredKeyType(t *testing.T) {
	doc := &customKeyDoc{}
	err := AssignKeyIfAbsent[*customKeyDoc, customKey](doc)
	if !errors.Is(err, ErrNoKeyGenerator) {
		t.Errorf("expected ErrNoKeyGenerator, got %v", err)
	}
}

func TestRegisterKeyGenerator_CustomType(t *testing.T) {
	next := uint64(0)
	RegisterKeyGenerator(func() customKey {
		next++
		return customKey{Hi: 7, Lo: next}
	})
	defer func() {
		// Restore the unregistered state for other tests.
		keyGenerators.Lock()
		delete(keyGenerators.byType, reflect.TypeOf(customKey{}))
		keyGenerators.Unlock()
	}()

	doc := &customKeyDoc{}
	if err := AssignKeyIfAbsent[*customKeyDoc, customKey](doc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.ID != (customKey{Hi: 7, Lo: 1}) {
		t.Errorf("unexpected generated key %+v", doc.ID)
	}
}
