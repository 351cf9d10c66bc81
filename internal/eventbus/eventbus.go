package eventbus

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
)

type (
	Bus interface {
		Register(identifier string) chan Event
		Unregister(identifier string, ch chan Event)
		Broadcast(identifier string, evType Type, message string)
		BroadcastWithData(identifier string, evType Type, message string, data []byte)
	}

	Event struct {
		ID      uuid.UUID       `json:"id"`
		Type    Type            `json:"type"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data,omitempty"`
		Time    time.Time       `json:"time"`
	}

	Type string
)

const (
	Error    Type = "error"
	Info     Type = "info"
	Success  Type = "success"
	Complete Type = "complete"

	// ConfigTopic carries configuration changes made through the settings operations.
	ConfigTopic = "config"

	bufferSize = 64
)

type eventPublisher struct {
	events map[string][]chan Event
	lock   sync.Mutex
}

func New() Bus {
	return &eventPublisher{
		events: make(map[string][]chan Event),
	}
}

func (e *eventPublisher) Register(identifier string) chan Event {
	e.lock.Lock()
	defer e.lock.Unlock()

	ch := make(chan Event, bufferSize)
	e.events[identifier] = append(e.events[identifier], ch)
	return ch
}

func (e *eventPublisher) Unregister(identifier string, ch chan Event) {
	e.lock.Lock()
	defer e.lock.Unlock()

	clients := e.events[identifier]
	for i, next := range clients {
		if next == ch {
			e.events[identifier] = append(clients[:i], clients[i+1:]...)
			close(ch)
			break
		}
	}

	if len(e.events[identifier]) == 0 {
		delete(e.events, identifier)
	}
}

func (e *eventPublisher) Broadcast(identifier string, evType Type, message string) {
	e.BroadcastWithData(identifier, evType, message, nil)
}

// BroadcastWithData never blocks: subscribers whose buffer is full miss the event.
func (e *eventPublisher) BroadcastWithData(identifier string, evType Type, message string, data []byte) {
	ev := Event{
		ID:      uuid.New(),
		Type:    evType,
		Message: message,
		Data:    data,
		Time:    time.Now().UTC(),
	}

	e.lock.Lock()
	defer e.lock.Unlock()

	for _, ch := range e.events[identifier] {
		select {
		case ch <- ev:
		default:
		}
	}
}
