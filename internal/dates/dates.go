package dates

import (
	"fmt"
	"time"
)

// layout matches the export's human-readable header date,
// e.g. "Thursday, 12 April 2018 at 23:19 EDT".
const layout = "Monday, 2 January 2006 at 15:04 MST"

// builtinZones maps unambiguous timezone abbreviations used by the export
// to UTC offsets in seconds. Ambiguous abbreviations (IST, CST-China, ...)
// are deliberately absent; they can be supplied through config.
var builtinZones = map[string]int{
	"UTC":  0,
	"GMT":  0,
	"WET":  0,
	"WEST": 1 * 3600,
	"BST":  1 * 3600,
	"CET":  1 * 3600,
	"CEST": 2 * 3600,
	"EET":  2 * 3600,
	"EEST": 3 * 3600,
	"EST":  -5 * 3600,
	"EDT":  -4 * 3600,
	"CDT":  -5 * 3600,
	"MDT":  -6 * 3600,
	"MST":  -7 * 3600,
	"PST":  -8 * 3600,
	"PDT":  -7 * 3600,
	"AKST": -9 * 3600,
	"AKDT": -8 * 3600,
	"HST":  -10 * 3600,
}

// ParseError reports a date string that does not match the export pattern
// or carries an unknown timezone abbreviation.
type ParseError struct {
	Raw    string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed date %q: %s", e.Raw, e.Reason)
}

// Resolver turns export date strings into Stamps. Zero overhead to share;
// safe for concurrent use once constructed.
type Resolver struct {
	zones map[string]int
}

// NewResolver returns a Resolver with the builtin zone table, extended by
// extra (abbreviation -> offset seconds). Extra entries override builtins.
func NewResolver(extra map[string]int) *Resolver {
	zones := make(map[string]int, len(builtinZones)+len(extra))
	for abbr, off := range builtinZones {
		zones[abbr] = off
	}
	for abbr, off := range extra {
		zones[abbr] = off
	}
	return &Resolver{zones: zones}
}

// ZoneCount reports how many abbreviations the resolver knows.
func (r *Resolver) ZoneCount() int {
	return len(r.zones)
}

// Parse resolves raw into an absolute instant. time.Parse accepts any
// alphabetic abbreviation for MST but pins unknown ones to offset zero, so
// the instant is rebuilt against the resolver's own zone table.
func (r *Resolver) Parse(raw string) (Stamp, error) {
	t, err := time.Parse(layout, raw)
	if err != nil {
		return Stamp{}, &ParseError{Raw: raw, Reason: "does not match export date pattern"}
	}

	abbr, _ := t.Zone()
	offset, ok := r.zones[abbr]
	if !ok {
		return Stamp{}, &ParseError{Raw: raw, Reason: fmt.Sprintf("unknown timezone abbreviation %q", abbr)}
	}

	loc := time.FixedZone(abbr, offset)
	t = time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, loc)
	return Stamp{t: t}, nil
}

// Stamp is a parsed message instant. Key accessors format in the
// message's own zone, matching what the sender saw.
type Stamp struct {
	t time.Time
}

// StampOf wraps an already-resolved time. Mainly for tests and fixtures.
func StampOf(t time.Time) Stamp {
	return Stamp{t: t}
}

func (s Stamp) Time() time.Time {
	return s.t
}

func (s Stamp) Unix() int64 {
	return s.t.Unix()
}

func (s Stamp) Year() int {
	return s.t.Year()
}

// DateKey returns the calendar-day grouping key, YYYY-MM-DD.
func (s Stamp) DateKey() string {
	return s.t.Format("2006-01-02")
}

// MonthKey returns the calendar-month grouping key, YYYY-MM.
func (s Stamp) MonthKey() string {
	return s.t.Format("2006-01")
}

// WeekdayKey returns the ISO weekday number and name, e.g. "4 - Thursday".
// The numeric prefix keeps lexical sort equal to week order.
func (s Stamp) WeekdayKey() string {
	iso := int(s.t.Weekday())
	if iso == 0 {
		iso = 7 // Sunday
	}
	return fmt.Sprintf("%d - %s", iso, s.t.Weekday())
}

// HourKey returns the zero-padded 24-hour grouping key, e.g. "09".
func (s Stamp) HourKey() string {
	return s.t.Format("15")
}
