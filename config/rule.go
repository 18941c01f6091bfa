package config

import (
	"maps"
	"slices"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/ardnew/builddetails/detail"
)

// Rule adjusts the selection when its condition holds.
type Rule struct {
	When    string   `yaml:"when,omitempty"`
	Require []string `yaml:"require,omitempty"`
	Include []string `yaml:"include,omitempty"`
	Exclude []string `yaml:"exclude,omitempty"`
}

const (
	profileVariable = "PROFILE"
	featurePrefix   = "CARGO_FEATURE_"
	cfgPrefix       = "CARGO_CFG_"
)

// ruleEnv returns the names visible to rule conditions.
func ruleEnv(env detail.Environment) map[string]any {
	profile, _ := detail.Lookup(env, profileVariable)

	return map[string]any{
		"env": func(name string) string {
			v, _ := detail.Lookup(env, name)

			return v
		},
		"has": func(name string) bool {
			_, ok := detail.Lookup(env, name)

			return ok
		},
		"profile":  profile,
		"features": slices.Sorted(maps.Keys(detail.LookupPrefixed(env, featurePrefix))),
		"cfg":      detail.LookupPrefixed(env, cfgPrefix),
	}
}

func (r Rule) compile() (*vm.Program, error) {
	if r.When == "" {
		return nil, nil
	}

	return expr.Compile(r.When, expr.Env(ruleEnv(detail.Env{})), expr.AsBool())
}

// Match reports whether the condition of r holds in env.
func (r Rule) Match(env detail.Environment) (bool, error) {
	program, err := r.compile()
	if err != nil {
		return false, err
	}

	if program == nil {
		return true, nil
	}

	out, err := expr.Run(program, ruleEnv(env))
	if err != nil {
		return false, err
	}

	ok, _ := out.(bool)

	return ok, nil
}
