package search

import "time"

const (
	DefaultPirateBayAPI = "https://apibay.org/q.php"
	Default1337xBase    = "https://1337x.to"
	// The indexes answer plain library clients with challenge pages, so
	// requests go out with a desktop browser user agent.
	DefaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64; rv:109.0) Gecko/20100101 Firefox/115.0"
	DefaultTimeout   = 15 * time.Second
	DefaultWorkers   = 4
)

// DefaultTrackers is appended to magnet links built from bare info hashes.
var DefaultTrackers = []string{
	"udp://tracker.coppersurfer.tk:6969/announce",
	"udp://9.rarbg.to:2920/announce",
	"udp://tracker.opentrackr.org:1337",
	"udp://tracker.internetwarriors.net:1337/announce",
	"udp://tracker.leechers-paradise.org:6969/announce",
}

// Config carries the knobs shared by every provider. The zero value is
// usable; empty fields fall back to the defaults above.
type Config struct {
	// Timeout bounds each HTTP request.
	Timeout time.Duration
	// Workers sizes the aggregation pool.
	Workers int
	// UserAgent is sent on every request.
	UserAgent string
	// PirateBayAPI and L33txBase exist so tests can point the providers at
	// local servers.
	PirateBayAPI string
	L33txBase    string
}

func (c Config) withDefaults() Config {
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.Workers <= 0 {
		c.Workers = DefaultWorkers
	}
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	if c.PirateBayAPI == "" {
		c.PirateBayAPI = DefaultPirateBayAPI
	}
	if c.L33txBase == "" {
		c.L33txBase = Default1337xBase
	}
	return c
}
