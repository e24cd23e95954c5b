// Package kafka publishes order lifecycle events to the real-time channel.
// Events are keyed by order ID, so all events for one order land on the same
// partition and arrive in order; subscribers tracking a single order filter by
// key.
package kafka

import (
	"time"

	"ordering/internal/core/domain/model/order"
)

// Event types carried in the event envelope.
const (
	EventTypeOrderConfirmed  = "order.confirmed"
	EventTypeTrackingUpdated = "order.tracking_updated"
)

// LocationPayload is the wire form of a location snapshot.
// Coordinates are omitted when the snapshot carries only an address.
type LocationPayload struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Address   string   `json:"address"`
}

// OrderEvent is the envelope published for every order state change.
type OrderEvent struct {
	EventType         string           `json:"event_type"`
	OrderID           string           `json:"order_id"`
	Status            string           `json:"status"`
	DeliveryPartnerID string           `json:"delivery_partner_id,omitempty"`
	CourierLocation   *LocationPayload `json:"courier_location,omitempty"`
	OccurredAt        time.Time        `json:"occurred_at"`
}

// newOrderEvent builds an event envelope from committed order state.
func newOrderEvent(eventType string, aggregate *order.Order) OrderEvent {
	event := OrderEvent{
		EventType:  eventType,
		OrderID:    aggregate.ID().String(),
		Status:     aggregate.Status().String(),
		OccurredAt: time.Now().UTC(),
	}

	if partnerID := aggregate.DeliveryPartner(); partnerID != nil {
		event.DeliveryPartnerID = partnerID.String()
	}

	if courierLocation := aggregate.CourierLocation(); courierLocation != nil {
		payload := LocationPayload{Address: courierLocation.Address()}
		if point := courierLocation.Point(); point != nil {
			latitude := point.Latitude()
			longitude := point.Longitude()
			payload.Latitude = &latitude
			payload.Longitude = &longitude
		}

		event.CourierLocation = &payload
	}

	return event
}
