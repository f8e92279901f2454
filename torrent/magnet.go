package torrent

import (
	"net/url"
	"strings"
)

// MagnetLink builds a v1 magnet URI from a 40 character hex info hash, a
// display name and tracker URLs.
func MagnetLink(infoHashHex, name string, trackers []string) string {
	var sb strings.Builder
	sb.WriteString("magnet:?xt=urn:btih:")
	sb.WriteString(infoHashHex)
	if name != "" {
		sb.WriteString("&dn=")
		sb.WriteString(url.QueryEscape(name))
	}
	for _, tr := range trackers {
		sb.WriteString("&tr=")
		sb.WriteString(url.QueryEscape(tr))
	}
	return sb.String()
}

// Magnet renders the metadata as a magnet link carrying the info hash, the
// advisory name and every known tracker.
func (m Metadata) Magnet() string {
	return MagnetLink(m.InfoHashHex(), m.name, m.announceList)
}
