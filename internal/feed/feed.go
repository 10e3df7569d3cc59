// Package feed broadcasts row changes of the marketplace tables so clients
// can follow a transaction or a listing's offers without polling.
package feed

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Table string

const (
	TableCards        Table = "cards"
	TableOffers       Table = "offers"
	TableTransactions Table = "transactions"
)

type EventType string

const (
	EventInsert EventType = "INSERT"
	EventUpdate EventType = "UPDATE"
)

type Event struct {
	Table    Table     `json:"table"`
	RecordID uuid.UUID `json:"recordId"`
	// ListingID is set for offer events so the listing's offer channel receives them.
	ListingID uuid.UUID `json:"listingId,omitzero"`
	Type      EventType `json:"type"`
	Status    string    `json:"status"`
	At        time.Time `json:"at"`
}

// RecordChannel is the channel carrying changes of a single row.
func RecordChannel(table Table, id uuid.UUID) string {
	return string(table) + ":" + id.String()
}

// OffersChannel carries every offer change of one listing.
func OffersChannel(listingID uuid.UUID) string {
	return string(TableCards) + ":" + listingID.String() + ":offers"
}

// Channels lists every channel e is published to.
func (e Event) Channels() []string {
	channels := []string{RecordChannel(e.Table, e.RecordID)}
	if e.Table == TableOffers && e.ListingID != uuid.Nil {
		channels = append(channels, OffersChannel(e.ListingID))
	}

	return channels
}

type Publisher interface {
	Publish(ctx context.Context, events ...Event) error
}

// Subscription delivers events until Close is called or its context ends.
type Subscription interface {
	Events() <-chan Event
	Close() error
}

type Subscriber interface {
	Subscribe(ctx context.Context, channel string) (Subscription, error)
}

// Nop is used when no feed backend is configured.
type Nop struct{}

func (Nop) Publish(context.Context, ...Event) error { return nil }
