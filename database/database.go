package database

import "strconv"

// Placeholder renders a positional parameter for the configured driver's
// dialect, sqlite binds with ? while postgres requires $N
func (c *Config) Placeholder(n int) string {
	if c.Driver == DBSQLite3 {
		return "?"
	}
	return "$" + strconv.Itoa(n)
}
