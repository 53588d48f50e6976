package fullmat

const defaultMaxTokenSize = 1 << 20

type readConfig struct {
	lenient      bool
	maxTokenSize int
}

// ReadOption configures Read and ReadFrom.
type ReadOption func(*readConfig)

// WithLenientValues makes the first non-numeric value token end the value
// stream instead of failing the read. The collected values are still
// checked against the dimensions.
func WithLenientValues() ReadOption {
	return func(c *readConfig) {
		c.lenient = true
	}
}

// WithMaxTokenSize sets the longest token, in bytes, the reader accepts.
func WithMaxTokenSize(n int) ReadOption {
	return func(c *readConfig) {
		if 0 < n {
			c.maxTokenSize = n
		}
	}
}

func newReadConfig(opts []ReadOption) readConfig {
	cfg := readConfig{
		maxTokenSize: defaultMaxTokenSize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
