// Package profile provides optional runtime profiling for the builddetails
// command.
//
// Profiling is compiled in only with the "pprof" build tag; otherwise
// [Profiler.Start] is a no-op and [Modes] is empty.
//
//	go build -tags pprof .
//	builddetails --pprof-mode=cpu --pprof-dir=/tmp/profiles generate
//
// Supported modes are allocs, block, clock, cpu, goroutine, heap, mem,
// mutex, thread and trace. Profiles are written to the configured directory
// and read with:
//
//	go tool pprof -http=: /tmp/profiles/cpu.pprof
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`

// Profiler describes a profiling session.
type Profiler struct {
	// Mode selects what is profiled; see [Modes]. Empty disables profiling.
	Mode string
	// Path is the directory profiles are written to.
	Path string
	// Quiet suppresses the profiler's own log output.
	Quiet bool
}

// Stopper ends a profiling session.
type Stopper interface{ Stop() }

// Start begins profiling and returns the session's [Stopper]. Without the
// pprof build tag, or when p.Mode is empty or unknown, the session does
// nothing. Both Start and Stop are always safe to call.
func (p Profiler) Start() Stopper {
	if p.Mode == "" {
		return ignore{}
	}

	return start(p)
}

type ignore struct{}

func (ignore) Stop() {}
