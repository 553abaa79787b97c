package domain

// LikeCounter is the per-animal like tally kept in the document store,
// separate from the relational entities.
type LikeCounter struct {
	ID       string `json:"id" bson:"_id,omitempty"`
	AnimalID string `json:"animalId" bson:"animal_id"`
	Count    int64  `json:"count" bson:"count"`
}
