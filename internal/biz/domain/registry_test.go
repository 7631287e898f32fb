package domain

import "testing"

func TestRegistryFirstRegistrationWins(t *testing.T) {
	r := NewChannelRegistry()

	if !r.Register(100, "Verified Crypto News", CategoryPumpDump) {
		t.Fatal("First registration should succeed")
	}

	// The same chat appears in the news list too; the later registration
	// must be rejected so the channel is never double-fed.
	if r.Register(100, "Verified Crypto News", CategoryNews) {
		t.Error("Second registration for the same chat should be rejected")
	}

	category, ok := r.Lookup(100)
	if !ok {
		t.Fatal("Expected chat 100 to be registered")
	}
	if category != CategoryPumpDump {
		t.Errorf("Expected pump_and_dump category, got %s", category)
	}
}

func TestRegistryLookupUnknownChat(t *testing.T) {
	r := NewChannelRegistry()

	if _, ok := r.Lookup(999); ok {
		t.Error("Expected lookup of unregistered chat to fail")
	}
}

func TestRegistryListPreservesOrder(t *testing.T) {
	r := NewChannelRegistry()
	r.Register(1, "Sharks Pump", CategoryPumpDump)
	r.Register(2, "Ethereum News", CategoryNews)
	r.Register(3, "Mega Pump Group", CategoryPumpDump)

	channels := r.List()
	if len(channels) != 3 {
		t.Fatalf("Expected 3 channels, got %d", len(channels))
	}
	if channels[0].ChatID != 1 || channels[1].ChatID != 2 || channels[2].ChatID != 3 {
		t.Errorf("Channels not in registration order: %+v", channels)
	}
	if channels[1].Category != CategoryNews {
		t.Errorf("Expected news category for chat 2, got %s", channels[1].Category)
	}
}
