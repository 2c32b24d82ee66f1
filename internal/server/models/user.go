// Package models contains the persistent entities of the account service.
package models

import "time"

// User is the long-lived account aggregate. Email is globally unique and
// matched case-sensitively; HashedPassword is a bcrypt digest and is never
// empty once the row exists. IsActive starts false and flips exactly once
// via activation.
type User struct {
	ID             string
	Email          string
	HashedPassword string
	IsActive       bool
	CreatedAt      time.Time
}
