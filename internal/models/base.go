package models

import "github.com/google/uuid"

// assignID gives a record a random identifier unless the caller already set one.
func assignID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}
