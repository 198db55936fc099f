package profile

// Session is a running profiler.
type Session interface{ Stop() }

// Option configures a profiling session.
type Option func(*settings)

type settings struct {
	dir   string
	quiet bool
	hook  bool
}

// WithDir sets the directory profiles are written to. An empty directory
// lets the profiler pick a temporary one.
func WithDir(dir string) Option {
	return func(s *settings) { s.dir = dir }
}

// WithQuiet suppresses the profiler's own start and stop messages.
func WithQuiet(quiet bool) Option {
	return func(s *settings) { s.quiet = quiet }
}

// WithShutdownHook stops the session when the process receives an interrupt.
func WithShutdownHook(enable bool) Option {
	return func(s *settings) { s.hook = enable }
}

// Start begins profiling in the given mode. An empty or unknown mode, or a
// binary built without the pprof tag, yields a session whose Stop is a no-op.
func Start(mode string, opts ...Option) Session {
	if mode == "" {
		return nop{}
	}

	var s settings

	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}

	return begin(mode, s)
}

type nop struct{}

func (nop) Stop() {}
