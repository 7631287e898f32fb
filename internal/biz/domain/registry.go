package domain

import "sync"

// RegisteredChannel describes a resolved, monitored channel.
type RegisteredChannel struct {
	ChatID   int64    `json:"chat_id"`
	Title    string   `json:"title"`
	Category Category `json:"category"`
}

// ChannelRegistry maps resolved chat IDs to the category whose queue they
// feed. A chat listed in both category lists is claimed by whichever
// registration runs first; later registrations for the same chat are
// rejected so a single message is never double-fed.
type ChannelRegistry struct {
	mu     sync.RWMutex
	byChat map[int64]RegisteredChannel
	order  []int64
}

// NewChannelRegistry creates an empty registry.
func NewChannelRegistry() *ChannelRegistry {
	return &ChannelRegistry{byChat: make(map[int64]RegisteredChannel)}
}

// Register claims a chat for a category. Returns false if the chat was
// already claimed (first registration wins).
func (r *ChannelRegistry) Register(chatID int64, title string, category Category) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byChat[chatID]; exists {
		return false
	}
	r.byChat[chatID] = RegisteredChannel{ChatID: chatID, Title: title, Category: category}
	r.order = append(r.order, chatID)
	return true
}

// Lookup returns the category a chat was claimed by.
func (r *ChannelRegistry) Lookup(chatID int64) (Category, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ch, ok := r.byChat[chatID]
	return ch.Category, ok
}

// List returns registered channels in registration order.
func (r *ChannelRegistry) List() []RegisteredChannel {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]RegisteredChannel, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byChat[id])
	}
	return out
}
