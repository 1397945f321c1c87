package backtest

import (
	"errors"

	"github.com/quantfoundry/backtester/data"
	"github.com/quantfoundry/backtester/eventholder"
	"github.com/quantfoundry/backtester/exchange"
	"github.com/quantfoundry/backtester/portfolio"
	"github.com/quantfoundry/backtester/statistics"
	"github.com/quantfoundry/backtester/strategies"
)

var (
	errDataHandlerUnset      = errors.New("backtest requires a data handler")
	errStrategyUnset         = errors.New("backtest requires a strategy")
	errPortfolioUnset        = errors.New("backtest requires a portfolio")
	errExchangeUnset         = errors.New("backtest requires an execution handler")
	errEventQueueUnset       = errors.New("backtest requires an event queue")
	errStatisticUnset        = errors.New("backtest requires a statistic tracker")
	errUnhandledEventType    = errors.New("unhandled event type")
	errInvalidTradingPeriods = errors.New("max trading periods cannot be negative")
)

// BackTest wires the engine components together and owns the run loop
type BackTest struct {
	Data              data.Handler
	Strategy          strategies.Handler
	Portfolio         portfolio.Handler
	Exchange          exchange.ExecutionHandler
	EventQueue        eventholder.EventHolder
	Statistic         statistics.Handler
	MaxTradingPeriods int64
}
