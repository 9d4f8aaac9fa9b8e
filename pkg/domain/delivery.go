package domain

// DeliveryOutcome classifies the result of delivering one message to one
// subscriber. The monitor branches on it: permanent failures prune the
// subscriber, transient failures are logged and left for the next cycle.
type DeliveryOutcome int

const (
	// DeliveryOK means the message reached the subscriber
	DeliveryOK DeliveryOutcome = iota
	// DeliveryPermanentFailure means the channel is confirmed dead (blocked, deleted)
	DeliveryPermanentFailure
	// DeliveryTransientFailure means delivery failed but may succeed later
	DeliveryTransientFailure
)

func (o DeliveryOutcome) String() string {
	switch o {
	case DeliveryOK:
		return "ok"
	case DeliveryPermanentFailure:
		return "permanent failure"
	case DeliveryTransientFailure:
		return "transient failure"
	}
	return "unknown"
}
