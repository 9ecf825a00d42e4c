package memo

// DefaultMaxSize is used when a Config is built with a zero size.
const DefaultMaxSize = 1024

// Config sizes a table.
type Config struct {
	MaxSize   uint32 // default: DefaultMaxSize
	NumShards int    // default: 1
}

// NewConfig returns a Config with zero values replaced by defaults.
func NewConfig(maxSize uint32, numShards int) Config {
	if maxSize == 0 {
		maxSize = DefaultMaxSize
	}
	if numShards <= 0 {
		numShards = 1
	}
	if uint32(numShards) > maxSize {
		numShards = int(maxSize)
	}
	return Config{
		MaxSize:   maxSize,
		NumShards: numShards,
	}
}

func (c Config) shardSize() uint32 {
	return max(c.MaxSize/uint32(c.NumShards), 1)
}
