package market

import (
	"github.com/quantfoundry/backtester/common"
	"github.com/quantfoundry/backtester/eventtypes/event"
)

// Market carries no payload, it signals to the dispatch loop that
// the data handler has revealed a new bar for processing
type Market struct {
	event.Base
}

// Event is a market data notification event
type Event interface {
	common.Event
	IsMarket() bool
}
