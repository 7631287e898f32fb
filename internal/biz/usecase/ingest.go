package usecase

import (
	"fmt"
	"time"

	"github.com/cryptopulse/telegram-sentiment-bridge/internal/biz/domain"
)

// InboundMessage is the platform-agnostic shape of a message-arrived event,
// as delivered by the channel monitor.
type InboundMessage struct {
	ChatID    int64
	ChatTitle string
	MessageID int
	SenderID  int64
	Text      string
	Time      time.Time
}

// IngestUsecase routes inbound messages into the category queue their source
// channel is registered for. Messages from unregistered chats are dropped.
type IngestUsecase struct {
	registry *domain.ChannelRegistry
	queues   map[domain.Category]*domain.MessageQueue
}

// NewIngestUsecase creates a new ingest usecase over the shared registry and
// the two category queues.
func NewIngestUsecase(registry *domain.ChannelRegistry, pndQueue, newsQueue *domain.MessageQueue) *IngestUsecase {
	return &IngestUsecase{
		registry: registry,
		queues: map[domain.Category]*domain.MessageQueue{
			domain.CategoryPumpDump: pndQueue,
			domain.CategoryNews:     newsQueue,
		},
	}
}

// RegisterChannel claims a resolved chat for a category. First registration
// wins: a chat listed under both categories keeps whichever category
// registered it first and is never double-fed.
func (uc *IngestUsecase) RegisterChannel(chatID int64, title string, category domain.Category) bool {
	return uc.registry.Register(chatID, title, category)
}

// Channels returns the registered channels in registration order.
func (uc *IngestUsecase) Channels() []domain.RegisteredChannel {
	return uc.registry.List()
}

// HandleMessage normalizes an inbound event into a Message record and
// appends it to the matching queue. A missing text body ingests as an empty
// string; nothing here ever fails ingestion.
func (uc *IngestUsecase) HandleMessage(ev InboundMessage) {
	category, ok := uc.registry.Lookup(ev.ChatID)
	if !ok {
		return
	}

	queue := uc.queues[category]
	queue.Append(domain.NewMessage(ev.ChatID, ev.ChatTitle, ev.MessageID, ev.SenderID, ev.Text, ev.Time))
	fmt.Printf("[Ingest] Buffered message %d from %q (%s), queue size now %d\n",
		ev.MessageID, ev.ChatTitle, category, queue.Len())
}
