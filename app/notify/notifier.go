package notify

import (
	"strconv"
	"sync"

	"weldwatch/global"
)

// Event names on the collaborator-facing channel.
const (
	EventImportStarted = "import-started"
	EventImageProgress = "image-import-progress"
	EventErrorNotice   = "error-notice"
	EventInfoNotice    = "info-notice"
)

type Event struct {
	Name string `json:"name"`
	Data string `json:"data"`
}

// Notifier fans events out to subscribers. Delivery is fire-and-forget: a
// subscriber whose buffer is full misses the event rather than blocking the
// import pipeline.
type Notifier struct {
	mu   sync.RWMutex
	subs map[int]chan Event
	next int
}

func NewNotifier() *Notifier {
	return &Notifier{subs: make(map[int]chan Event)}
}

func (n *Notifier) Subscribe() (int, <-chan Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	id := n.next
	n.next++
	ch := make(chan Event, 16)
	n.subs[id] = ch
	return id, ch
}

func (n *Notifier) Unsubscribe(id int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if ch, ok := n.subs[id]; ok {
		delete(n.subs, id)
		close(ch)
	}
}

func (n *Notifier) Publish(name, data string) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	for _, ch := range n.subs {
		select {
		case ch <- Event{Name: name, Data: data}:
		default:
			global.Logger.Debug().Str("event", name).Msg("notification dropped: slow subscriber")
		}
	}
}

func (n *Notifier) ImportStarted(baseName string) { n.Publish(EventImportStarted, baseName) }
func (n *Notifier) Progress(percent int)          { n.Publish(EventImageProgress, strconv.Itoa(percent)) }
func (n *Notifier) Error(msg string)              { n.Publish(EventErrorNotice, msg) }
func (n *Notifier) Info(msg string)               { n.Publish(EventInfoNotice, msg) }
