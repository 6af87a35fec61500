package utils

const (
	EventBoardCreated = "board_created"
	EventCardAdded    = "card_added"
	EventCardRemoved  = "card_removed"
)

type Event struct {
	Event   string      `json:"event"`
	BoardID string      `json:"board_id,omitempty"`
	Data    interface{} `json:"data"`
}

type EventBus struct {
	events chan Event
}

func NewEventBus() *EventBus {
	return &EventBus{
		events: make(chan Event, 100),
	}
}

// Publish never blocks; events are dropped while the buffer is full.
func (eb *EventBus) Publish(event, boardID string, data interface{}) bool {
	e := Event{Event: event, BoardID: boardID, Data: data}
	select {
	case eb.events <- e:
		return true
	default:
		return false
	}
}

func (eb *EventBus) SubscribeCh() <-chan Event {
	return eb.events
}
