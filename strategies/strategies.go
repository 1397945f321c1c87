// Package strategies maintains the registry of shipped strategy
// implementations
package strategies

import (
	"fmt"
	"strings"

	"github.com/quantfoundry/backtester/strategies/buyandhold"
	"github.com/quantfoundry/backtester/strategies/rsi"
	"github.com/quantfoundry/backtester/strategies/smacross"
)

// LoadStrategyByName returns the strategy registered under name
func LoadStrategyByName(name string) (Handler, error) {
	strats := GetStrategies()
	for i := range strats {
		if !strings.EqualFold(name, strats[i].Name()) {
			continue
		}
		return strats[i], nil
	}
	return nil, fmt.Errorf("%w: %v", ErrStrategyNotFound, name)
}

// GetStrategies returns a fresh instance of every shipped strategy
func GetStrategies() []Handler {
	return []Handler{
		new(buyandhold.Strategy),
		new(rsi.Strategy),
		new(smacross.Strategy),
	}
}
