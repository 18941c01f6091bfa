package detail

import (
	"go/format"
	"strconv"
	"strings"

	"github.com/ardnew/builddetails/pkg"
)

const goName = "go"

type golang struct {
	pkg string
}

// Go returns the syntax of a Go source file in package pkg ("main" if
// empty). Scalars are declared const, collections var, and presence is
// represented by a pointer that is nil when absent. Go has no compile-time
// environment lookup, so every value is embedded when generated.
func Go(pkg string) Syntax {
	if pkg == "" {
		pkg = "main"
	}

	return golang{pkg: pkg}
}

func (golang) Name() string      { return goName }
func (golang) Extension() string { return ".go" }

func (g golang) Header() string {
	return "// Code generated by " + pkg.Name + ". DO NOT EDIT.\n\npackage " +
		g.pkg + "\n\n"
}

func (golang) Type(t Type) string {
	switch t {
	case TypeUint64:
		return "uint64"
	case TypeStringList:
		return "[]string"
	case TypeStringMap:
		return "map[string]string"
	default:
		return "string"
	}
}

func (g golang) Declare(name string, t Type, value string) string {
	if t.Composite() {
		return gofmt("var " + name + " = " + value)
	}

	return gofmt("const " + name + " " + g.Type(t) + " = " + value)
}

func (g golang) DeclareOptional(name string, t Type, value string) string {
	return gofmt("var " + name + " *" + g.Type(t) + " = " + value)
}

func (g golang) Some(t Type, value string) string {
	if t.Composite() {
		return "&" + value
	}

	typ := g.Type(t)

	return "func(v " + typ + ") *" + typ + " { return &v }(" + value + ")"
}

func (golang) None(Type) string { return "nil" }

func (golang) Quote(s string) string { return strconv.Quote(s) }

func (golang) Uint(v uint64) string { return strconv.FormatUint(v, 10) }

func (g golang) List(items []string) string {
	if len(items) == 0 {
		return "[]string{}"
	}

	var sb strings.Builder

	sb.WriteString("[]string{\n")

	for _, item := range items {
		sb.WriteString("\t")
		sb.WriteString(g.Quote(item))
		sb.WriteString(",\n")
	}

	sb.WriteString("}")

	return sb.String()
}

func (g golang) Map(entries []Entry) string {
	if len(entries) == 0 {
		return "map[string]string{}"
	}

	var sb strings.Builder

	sb.WriteString("map[string]string{\n")

	for _, e := range entries {
		sb.WriteString("\t")
		sb.WriteString(g.Quote(e.Key))
		sb.WriteString(": ")
		sb.WriteString(g.Quote(e.Value))
		sb.WriteString(",\n")
	}

	sb.WriteString("}")

	return sb.String()
}

func (golang) Deferred(string) (string, bool) { return "", false }

func (golang) DeferredOptional(string) (string, bool) { return "", false }

// gofmt returns decl in canonical Go formatting, or decl unchanged if it
// does not parse.
func gofmt(decl string) string {
	out, err := format.Source([]byte(decl))
	if err != nil {
		return decl
	}

	return strings.TrimRight(string(out), "\n")
}
