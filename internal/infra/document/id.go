package document

import (
	"book-courier/internal/infra"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParseID turns a hex id from a URL or payment metadata into an ObjectID.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, infra.WrapRepoErr(infra.KindInvalidID, "malformed id "+id, err)
	}
	return oid, nil
}

// InsertedID extracts the hex id from an InsertOne result.
func InsertedID(v any) string {
	if oid, ok := v.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return ""
}
