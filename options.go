package pngme

// DefaultMaxSize is the default upper bound on files read by Open.
const DefaultMaxSize int64 = 64 << 20

// Option configures behavior when opening PNG files.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	file, err := pngme.Open("cat.png", pngme.WithMaxSize(8<<20))
type Option func(*openOptions)

// openOptions holds configuration for opening files.
type openOptions struct {
	maxSize int64 // Maximum file size in bytes (0 = no limit)
}

// defaultOptions returns the default configuration.
func defaultOptions() *openOptions {
	return &openOptions{
		maxSize: DefaultMaxSize,
	}
}

// WithMaxSize sets the largest file Open will read into memory.
//
// Files above the limit fail with *FileTooLargeError before any bytes are
// read. A limit of 0 disables the check.
func WithMaxSize(bytes int64) Option {
	return func(o *openOptions) {
		o.maxSize = bytes
	}
}
