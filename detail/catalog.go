package detail

import (
	"maps"
	"slices"
	"time"
)

type source int

const (
	sourceClock      source = iota // wall clock
	sourceDeferred                 // single variable, resolved by the consumer
	sourceSnapshot                 // single variable, embedded when generated
	sourcePrefixMap                // variables sharing a prefix, as a map
	sourcePrefixList               // variables sharing a prefix, as a list
)

type entry struct {
	constant string
	typ      Type
	source   source
	variable string
}

var catalog = [kindCount]entry{
	Timestamp:   {"TIMESTAMP", TypeUint64, sourceClock, ""},
	Version:     {"VERSION", TypeString, sourceDeferred, "CARGO_PKG_VERSION"},
	Profile:     {"PROFILE", TypeString, sourceSnapshot, "PROFILE"},
	RustFlags:   {"RUST_FLAGS", TypeString, sourceDeferred, "RUSTFLAGS"},
	Name:        {"NAME", TypeString, sourceDeferred, "CARGO_PKG_NAME"},
	Authors:     {"AUTHORS", TypeString, sourceDeferred, "CARGO_PKG_AUTHORS"},
	Description: {"DESCRIPTION", TypeString, sourceDeferred, "CARGO_PKG_DESCRIPTION"},
	Homepage:    {"HOMEPAGE", TypeString, sourceDeferred, "CARGO_PKG_HOMEPAGE"},
	OptLevel:    {"OPT_LEVEL", TypeString, sourceSnapshot, "OPT_LEVEL"},
	Cfg:         {"CFG", TypeStringMap, sourcePrefixMap, "CARGO_CFG_"},
	Features:    {"FEATURES", TypeStringList, sourcePrefixList, "CARGO_FEATURE_"},
}

// Catalog resolves kinds to descriptors holding their current values.
//
// A Catalog holds no state besides its inputs; every call to Resolve reads
// the environment and clock anew.
type Catalog struct {
	env   Environment
	clock func() time.Time
}

// NewCatalog returns a catalog reading env and clock. A nil env reads the
// process environment, a nil clock reads [time.Now].
func NewCatalog(env Environment, clock func() time.Time) Catalog {
	if env == nil {
		env = OS()
	}

	if clock == nil {
		clock = time.Now
	}

	return Catalog{env: env, clock: clock}
}

// Resolve returns the descriptor of k.
func (c Catalog) Resolve(k Kind) (Descriptor, error) {
	if !k.Valid() {
		return Descriptor{}, ErrUnknownKind.For(k.String())
	}

	c = NewCatalog(c.env, c.clock)
	e := catalog[k]

	return Descriptor{Name: e.constant, Type: e.typ, Value: c.value(e)}, nil
}

func (c Catalog) value(e entry) Value {
	switch e.source {
	case sourceClock:
		return c.timestamp()

	case sourceDeferred:
		v, ok := Lookup(c.env, e.variable)

		return Deferred(e.variable, v, ok)

	case sourceSnapshot:
		v, ok := Lookup(c.env, e.variable)

		return Scalar(v, ok)

	case sourcePrefixMap:
		return MapOf(LookupPrefixed(c.env, e.variable))

	case sourcePrefixList:
		found := LookupPrefixed(c.env, e.variable)

		return List(slices.Sorted(maps.Keys(found))...)

	default:
		return Scalar("", false)
	}
}

// timestamp is absent only when the clock reads before the Unix epoch.
func (c Catalog) timestamp() Value {
	secs := c.clock().Unix()
	if secs < 0 {
		return Uint(0, false)
	}

	return Uint(uint64(secs), true)
}
