// Package backtest drives the event loop tying data, strategy, portfolio and
// execution together
package backtest

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/quantfoundry/backtester/common"
	"github.com/quantfoundry/backtester/config"
	"github.com/quantfoundry/backtester/data"
	"github.com/quantfoundry/backtester/data/kline/csv"
	dbloader "github.com/quantfoundry/backtester/data/kline/database"
	"github.com/quantfoundry/backtester/database"
	"github.com/quantfoundry/backtester/database/drivers/postgres"
	sqlite "github.com/quantfoundry/backtester/database/drivers/sqlite3"
	"github.com/quantfoundry/backtester/eventholder"
	"github.com/quantfoundry/backtester/eventtypes/event"
	"github.com/quantfoundry/backtester/eventtypes/fill"
	"github.com/quantfoundry/backtester/eventtypes/market"
	"github.com/quantfoundry/backtester/eventtypes/order"
	"github.com/quantfoundry/backtester/eventtypes/signal"
	"github.com/quantfoundry/backtester/exchange"
	"github.com/quantfoundry/backtester/ordergen"
	"github.com/quantfoundry/backtester/portfolio"
	"github.com/quantfoundry/backtester/statistics"
	"github.com/quantfoundry/backtester/strategies"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// New assembles a backtest from already constructed components
func New(dh data.Handler, strat strategies.Handler, port portfolio.Handler, exch exchange.ExecutionHandler, queue eventholder.EventHolder, stats statistics.Handler, maxTradingPeriods int64) (*BackTest, error) {
	switch {
	case dh == nil:
		return nil, errDataHandlerUnset
	case strat == nil:
		return nil, errStrategyUnset
	case port == nil:
		return nil, errPortfolioUnset
	case exch == nil:
		return nil, errExchangeUnset
	case queue == nil:
		return nil, errEventQueueUnset
	case stats == nil:
		return nil, errStatisticUnset
	case maxTradingPeriods < 0:
		return nil, errInvalidTradingPeriods
	}
	stats.SetStrategyName(strat.Name())
	stats.SetInitialCapital(port.InitialCapital())
	return &BackTest{
		Data:              dh,
		Strategy:          strat,
		Portfolio:         port,
		Exchange:          exch,
		EventQueue:        queue,
		Statistic:         stats,
		MaxTradingPeriods: maxTradingPeriods,
	}, nil
}

// NewFromConfig assembles a full backtest from a run definition
func NewFromConfig(cfg *config.Config) (*BackTest, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	startDate, err := cfg.StartTime()
	if err != nil {
		return nil, err
	}

	var dh data.Handler
	switch cfg.DataSource {
	case config.DataSourceCSV:
		dh, err = csv.LoadData(cfg.CSVFiles, startDate)
	case config.DataSourceDatabase:
		dh, err = loadDatabaseData(cfg, startDate)
	default:
		err = fmt.Errorf("%w: %q", config.ErrBadDataSource, cfg.DataSource)
	}
	if err != nil {
		return nil, err
	}

	strat, err := strategies.LoadStrategyByName(cfg.Strategy)
	if err != nil {
		return nil, err
	}

	gen := &ordergen.Fixed{Size: cfg.OrderSize}
	port, err := portfolio.Setup(dh, gen,
		decimal.NewFromFloat(cfg.InitialCapital),
		decimal.NewFromFloat(cfg.ContractValue))
	if err != nil {
		return nil, err
	}

	exch, err := exchange.New(
		decimal.NewFromFloat(cfg.Commission),
		decimal.NewFromFloat(cfg.FillCost))
	if err != nil {
		return nil, err
	}

	return New(dh, strat, port, exch, &eventholder.Holder{}, &statistics.Statistic{}, cfg.MaxTradingPeriods)
}

func loadDatabaseData(cfg *config.Config, startDate time.Time) (data.Handler, error) {
	var (
		db  *sql.DB
		err error
	)
	switch cfg.Database.Driver {
	case database.DBSQLite3:
		db, err = sqlite.Connect(&cfg.Database)
	case database.DBPostgreSQL:
		db, err = postgres.Connect(&cfg.Database)
	default:
		err = fmt.Errorf("%w: %q", database.ErrUnsupportedDriver, cfg.Database.Driver)
	}
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return dbloader.LoadData(db, &cfg.Database, cfg.Symbols, startDate)
}

// Run advances bar by bar, raising a market update per step and draining the
// event queue to empty before the next bar may be revealed
func (bt *BackTest) Run() error {
	logrus.WithField("strategy", bt.Strategy.Name()).Info("running backtest")
	var periods int64
	for (bt.MaxTradingPeriods == 0 || periods < bt.MaxTradingPeriods) && bt.Data.Next() {
		periods++
		bt.EventQueue.AppendEvent(bt.newMarketEvent())
		for {
			ev, err := bt.EventQueue.NextEvent()
			if err != nil {
				if errors.Is(err, eventholder.ErrEmptyQueue) {
					break
				}
				return err
			}
			if err = bt.handleEvent(ev); err != nil {
				return err
			}
			bt.Statistic.TrackEvent(ev)
		}
		bt.snapshotEquity()
	}
	logrus.WithField("periods", periods).Info("backtest complete")
	return nil
}

func (bt *BackTest) newMarketEvent() *market.Market {
	ev := &market.Market{
		Base: event.Base{Offset: bt.Data.Offset()},
	}
	if symbols := bt.Data.Symbols(); len(symbols) > 0 {
		if t, err := bt.Data.GetLatestBarTime(symbols[0]); err == nil {
			ev.Time = t
		}
	}
	return ev
}

func (bt *BackTest) snapshotEquity() {
	var t time.Time
	if symbols := bt.Data.Symbols(); len(symbols) > 0 {
		t, _ = bt.Data.GetLatestBarTime(symbols[0])
	}
	bt.Statistic.AddEquityPoint(t, bt.Data.Offset(), bt.Portfolio.TotalValue())
}

// handleEvent routes a single event to the component that consumes it. Every
// event type has exactly one consumer, a type outside the closed set is a
// programming error and halts the run
func (bt *BackTest) handleEvent(ev common.Event) error {
	switch e := ev.(type) {
	case market.Event:
		if err := bt.Portfolio.Update(); err != nil {
			return err
		}
		sig, err := bt.Strategy.OnMarket(bt.Data)
		if err != nil {
			return err
		}
		if sig != nil && !sig.IsNil() {
			bt.EventQueue.AppendEvent(sig)
		}
	case signal.Event:
		o, err := bt.Portfolio.OnSignal(e)
		if err != nil {
			return err
		}
		if o != nil {
			bt.EventQueue.AppendEvent(o)
		}
	case order.Event:
		f, err := bt.Exchange.ExecuteOrder(e, bt.Data)
		if err != nil {
			return err
		}
		if f != nil {
			bt.EventQueue.AppendEvent(f)
		}
	case fill.Event:
		if err := bt.Portfolio.OnFill(e); err != nil {
			return err
		}
		bt.Statistic.TrackTransaction(e)
	default:
		return fmt.Errorf("%w: %T", errUnhandledEventType, ev)
	}
	return nil
}

// PrintResults renders the final portfolio status and run statistics
func (bt *BackTest) PrintResults() {
	bt.Portfolio.PrintStatus()
	bt.Statistic.PrintResult()
}

// Reset returns every component to its starting state so the backtest can be
// rerun
func (bt *BackTest) Reset() {
	bt.Data.Reset()
	bt.Portfolio.Reset()
	bt.EventQueue.Reset()
	bt.Statistic.Reset()
}
