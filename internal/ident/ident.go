// Package ident validates the syntactic shape of identifiers before they are
// allowed anywhere near a query. Document ids must be 24 hex characters,
// relational ids must be integers; anything else is rejected without touching
// a store.
package ident

import (
	"fmt"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ObjectID checks the 24-hex document-id shape and returns the parsed id.
func ObjectID(raw string) (primitive.ObjectID, error) {
	raw = strings.TrimSpace(raw)
	if len(raw) != 24 {
		return primitive.NilObjectID, fmt.Errorf("id %q is not a 24-character hex string", raw)
	}
	oid, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("id %q is not a 24-character hex string", raw)
	}
	return oid, nil
}

// IntegerID checks the relational-id shape.
func IntegerID(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("id %q is not an integer", raw)
	}
	return id, nil
}
