package domain

import (
	"errors"
	"time"
)

var ErrProjectNotFound = errors.New("project not found")
var ErrClientNotFound = errors.New("client not found")
var ErrForbidden = errors.New("access forbidden")

// Project is a scoped engagement between one designer and one or more clients.
//
// Visibility invariants:
//   - CreatedBy always references a designer; only they see the project on the
//     designer read path.
//   - AssociatedClients is non-empty from creation; a client sees the project
//     only if their id appears in it.
//
// There is no ownership transfer: CreatedBy is fixed for the project lifetime.
type Project struct {
	ID                string    `json:"id" bson:"_id,omitempty"`
	Name              string    `json:"name" bson:"name"`
	StartDate         time.Time `json:"startDate" bson:"start_date"`
	EndDate           time.Time `json:"endDate" bson:"end_date"`
	Budget            float64   `json:"budget" bson:"budget"`
	ClientUsername    string    `json:"clientUsername" bson:"client_username"`
	CreatedBy         string    `json:"createdBy" bson:"created_by"`
	AssociatedClients []string  `json:"associatedClients" bson:"associated_clients"`
	CreatedAt         time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt         time.Time `json:"updatedAt" bson:"updated_at"`
}
