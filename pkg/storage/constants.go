package storage

// Unit conversions for the storage model.
const (
	BytesPerPB     = 1e15   // bytes per petabyte
	HoursPerYear   = 8760.0 // calendar hours in a non-leap year
	SecondsPerHour = 3600.0
	BytesPerBit    = 0.125
)
