package mongo

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// The partial unique indexes may only use operators MongoDB accepts inside a
// partialFilterExpression. $exists: false is not one of them; live rows are
// matched by $type: "null" instead, which is supported.
func TestUserIndexesUseIndexablePredicate(t *testing.T) {
	models := userIndexModels()
	if len(models) != 2 {
		t.Fatalf("got %d index models, want 2 (email, username)", len(models))
	}

	want := bson.M{"deleted_at": bson.M{"$type": "null"}}
	for _, m := range models {
		if m.Options == nil {
			t.Fatal("index options missing")
		}
		if m.Options.Unique == nil || !*m.Options.Unique {
			t.Errorf("index %v must be unique", m.Keys)
		}

		partial, ok := m.Options.PartialFilterExpression.(bson.M)
		if !ok {
			t.Fatalf("partial filter = %T, want bson.M", m.Options.PartialFilterExpression)
		}
		pred, ok := partial["deleted_at"].(bson.M)
		if !ok {
			t.Fatalf("partial filter = %v, want a deleted_at predicate", partial)
		}
		if _, hasExists := pred["$exists"]; hasExists {
			t.Errorf("partial filter %v uses $exists, which the server rejects in a partial index", pred)
		}
		if pred["$type"] != want["deleted_at"].(bson.M)["$type"] {
			t.Errorf("partial filter = %v, want %v", partial, want)
		}
	}
}

// A live row must serialize deleted_at as an explicit null, not omit the
// field, or the $type: "null" predicate (queries and partial indexes alike)
// would never match it.
func TestMongoUserSerializesExplicitNullDeletedAt(t *testing.T) {
	data, err := bson.Marshal(mongoUser{Name: "Alice", Username: "alice"})
	if err != nil {
		t.Fatalf("marshal user: %v", err)
	}

	val, err := bson.Raw(data).LookupErr("deleted_at")
	if err != nil {
		t.Fatalf("deleted_at field absent from live row: %v", err)
	}
	if val.Type != bsontype.Null {
		t.Errorf("deleted_at type = %v, want null", val.Type)
	}
}

func TestMongoUserSerializesDeletionTimestamp(t *testing.T) {
	now := time.Now().UTC()
	data, err := bson.Marshal(mongoUser{Username: "ghost", DeletedAt: &now})
	if err != nil {
		t.Fatalf("marshal user: %v", err)
	}

	val, err := bson.Raw(data).LookupErr("deleted_at")
	if err != nil {
		t.Fatalf("deleted_at field absent from deleted row: %v", err)
	}
	if val.Type != bsontype.DateTime {
		t.Errorf("deleted_at type = %v, want datetime", val.Type)
	}
}
