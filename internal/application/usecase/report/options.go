// Package report contains the impact reporting use cases.
package report

// Options tunes report defaults.
type Options struct {
	DefaultTopN int
	MaxTopN     int
	DailyWindow int // days
	RecentCount int
}

// DefaultOptions mirrors the defaults of the config package.
func DefaultOptions() Options {
	return Options{
		DefaultTopN: 3,
		MaxTopN:     50,
		DailyWindow: 30,
		RecentCount: 4,
	}
}

func (o Options) normalized() Options {
	d := DefaultOptions()
	if o.DefaultTopN <= 0 {
		o.DefaultTopN = d.DefaultTopN
	}
	if o.MaxTopN <= 0 {
		o.MaxTopN = d.MaxTopN
	}
	if o.DailyWindow <= 0 {
		o.DailyWindow = d.DailyWindow
	}
	if o.RecentCount <= 0 {
		o.RecentCount = d.RecentCount
	}
	return o
}
