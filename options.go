package triego

// builderOptions contains configuration for a Builder.
type builderOptions struct {
	// ExpectedKeys pre-sizes internal buffers.
	ExpectedKeys int

	// Logger receives structured build diagnostics.
	Logger *Logger
}

// BuilderOption configures a Builder.
type BuilderOption func(*builderOptions)

// WithExpectedKeys pre-sizes the builder for n keys.
func WithExpectedKeys(n int) BuilderOption {
	return func(opts *builderOptions) {
		if n > 0 {
			opts.ExpectedKeys = n
		}
	}
}

// WithLogger sets the logger used by the builder.
func WithLogger(logger *Logger) BuilderOption {
	return func(opts *builderOptions) {
		if logger != nil {
			opts.Logger = logger
		}
	}
}

// batchOptions contains configuration for batch lookups.
type batchOptions struct {
	// Parallelism bounds the number of concurrent lookup goroutines.
	// Zero means GOMAXPROCS.
	Parallelism int

	// ChunkSize is the number of keys handed to one goroutine at a time.
	ChunkSize int

	// Logger receives structured batch diagnostics.
	Logger *Logger
}

// BatchOption configures a batch lookup.
type BatchOption func(*batchOptions)

// WithParallelism bounds the number of concurrent lookup goroutines.
func WithParallelism(n int) BatchOption {
	return func(opts *batchOptions) {
		if n > 0 {
			opts.Parallelism = n
		}
	}
}

// WithChunkSize sets how many keys each goroutine processes per task.
func WithChunkSize(n int) BatchOption {
	return func(opts *batchOptions) {
		if n > 0 {
			opts.ChunkSize = n
		}
	}
}

// WithBatchLogger sets the logger used by batch lookups.
func WithBatchLogger(logger *Logger) BatchOption {
	return func(opts *batchOptions) {
		if logger != nil {
			opts.Logger = logger
		}
	}
}
