package config

import (
	"log/slog"

	"github.com/ardnew/builddetails/detail"
)

var presets = map[string]func(...detail.Option) *detail.Set{
	PresetDefault:    detail.Default,
	PresetAll:        detail.All,
	PresetNone:       detail.None,
	PresetRequireAll: detail.RequireAll,
}

// TargetSyntax returns the target syntax named by f.
func (f File) TargetSyntax() (detail.Syntax, error) {
	return detail.SyntaxByName(f.Syntax, f.Package)
}

// Build returns the set selected by f in env. The set reads env and renders
// in the syntax of f; opts are applied after and may override either. A nil
// env reads the process environment.
func (f File) Build(env detail.Environment, opts ...detail.Option) (*detail.Set, error) {
	if env == nil {
		env = detail.OS()
	}

	f = f.fill()

	preset, ok := presets[f.Preset]
	if !ok {
		return nil, ErrUnknownPreset.With(slog.String("preset", f.Preset))
	}

	syntax, err := f.TargetSyntax()
	if err != nil {
		return nil, err
	}

	set := preset(append([]detail.Option{
		detail.WithEnvironment(env),
		detail.WithSyntax(syntax),
	}, opts...)...)

	if err := apply(set, f.Require, f.Include, f.Exclude); err != nil {
		return nil, err
	}

	for i, rule := range f.Rules {
		match, err := rule.Match(env)
		if err != nil {
			return nil, ErrRule.Wrap(err).With(
				slog.Int("rule", i),
				slog.String("when", rule.When),
			)
		}

		if !match {
			continue
		}

		if err := apply(set, rule.Require, rule.Include, rule.Exclude); err != nil {
			return nil, err
		}
	}

	return set, nil
}

func apply(set *detail.Set, require, include, exclude []string) error {
	for _, step := range []struct {
		names []string
		op    func(detail.Kind) *detail.Set
	}{
		{require, set.Require},
		{include, set.Include},
		{exclude, set.Exclude},
	} {
		kinds, err := parseKinds(step.names)
		if err != nil {
			return err
		}

		for _, k := range kinds {
			step.op(k)
		}
	}

	return nil
}

func parseKinds(names []string) ([]detail.Kind, error) {
	kinds := make([]detail.Kind, 0, len(names))

	for _, name := range names {
		k, err := detail.ParseKind(name)
		if err != nil {
			return nil, err
		}

		kinds = append(kinds, k)
	}

	return kinds, nil
}
