package domain

// Subscriber represents a registered notification recipient.
type Subscriber struct {
	ID     int64  // unique recipient handle (chat id for the telegram transport)
	Region string // province of interest, "" means all regions
}

// Wants reports whether the subscriber should receive an event for the given
// region. Wildcard subscribers (empty region) receive everything; an event
// with no region goes to wildcard subscribers only.
func (s Subscriber) Wants(eventRegion string) bool {
	return s.Region == "" || s.Region == eventRegion
}
