package market

// IsMarket returns whether the event is a market update
func (m *Market) IsMarket() bool {
	return true
}
