package domain

// Option is a single design choice entry, grouped under a topic via Type.
// The catalogue is shared: options carry no owner and are replaced wholesale
// whenever a designer saves new preferences.
type Option struct {
	ID   string `json:"id" bson:"_id,omitempty"`
	Name string `json:"name" bson:"name"`
	Type string `json:"type" bson:"type"`
}
