package models

// Contact is a directory entry. The assistant only reads contacts; it never
// mutates them.
type Contact struct {
	Name     string `bson:"name" json:"name"`
	Email    string `bson:"email" json:"email"`
	Timezone string `bson:"timezone,omitempty" json:"timezone,omitempty"`
	Phone    string `bson:"phone,omitempty" json:"phone,omitempty"`
}
