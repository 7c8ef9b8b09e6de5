package domain

// ProviderEvent is a create/update/delete notification pushed by the
// provider's webhook subscription.
type ProviderEvent struct {
	ObjectType     string            `json:"object_type"` // "activity" or "athlete"
	ObjectID       int64             `json:"object_id"`
	AspectType     string            `json:"aspect_type"` // "create", "update" or "delete"
	Updates        map[string]string `json:"updates,omitempty"`
	OwnerID        int64             `json:"owner_id"` // provider account id
	SubscriptionID int64             `json:"subscription_id"`
	EventTime      int64             `json:"event_time"`
}
