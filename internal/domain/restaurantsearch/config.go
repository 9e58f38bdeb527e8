package restaurantsearch

import "time"

// PeakWindow is one entry of the peak-hour table. Bounds are "HH:mm" and
// inclusive at minute granularity: 10:00:30 still counts as peak when the
// window ends at 10:00. Note this differs from opening hours, which form an
// open interval.
type PeakWindow struct {
	Start string
	End   string
}

func (w PeakWindow) contains(t TimeOfDay) bool {
	start, err := ParseTimeOfDay(w.Start)
	if err != nil {
		return false
	}
	end, err := ParseTimeOfDay(w.End)
	if err != nil {
		return false
	}
	m := t.minutes()
	return m >= start.minutes() && m <= end.minutes()
}

// Config carries every tunable of the search domain. It is passed into the
// constructor explicitly; there is no global state.
type Config struct {
	CacheTTL         time.Duration
	GeohashPrecision uint
	PeakRadiusKm     float64
	NormalRadiusKm   float64
	SubSearchTimeout time.Duration
	PeakWindows      []PeakWindow
}

// DefaultPeakWindows is the stock peak-hour table: breakfast, lunch and
// dinner rushes.
func DefaultPeakWindows() []PeakWindow {
	return []PeakWindow{
		{Start: "08:00", End: "10:00"},
		{Start: "13:00", End: "14:00"},
		{Start: "19:00", End: "21:00"},
	}
}

func (c Config) withDefaults() Config {
	if c.CacheTTL <= 0 {
		c.CacheTTL = time.Hour
	}
	if c.GeohashPrecision == 0 {
		c.GeohashPrecision = 7
	}
	if c.PeakRadiusKm <= 0 {
		c.PeakRadiusKm = 3
	}
	if c.NormalRadiusKm <= 0 {
		c.NormalRadiusKm = 5
	}
	if c.SubSearchTimeout <= 0 {
		c.SubSearchTimeout = 5 * time.Second
	}
	if len(c.PeakWindows) == 0 {
		c.PeakWindows = DefaultPeakWindows()
	}
	return c
}
