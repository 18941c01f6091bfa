package detail

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

const rustName = "rust"

const rustIndent = "    "

type rust struct{}

// Rust returns the syntax of Cargo build scripts: public constants, Option
// for presence, env!/option_env! for compile-deferred values and phf for
// constant maps. The consuming crate must depend on phf with the "macros"
// feature to include a map detail.
func Rust() Syntax { return rust{} }

func (rust) Name() string      { return rustName }
func (rust) Extension() string { return ".rs" }
func (rust) Header() string    { return "" }

func (rust) Type(t Type) string {
	switch t {
	case TypeUint64:
		return "u64"
	case TypeStringList:
		return "&'static [&'static str]"
	case TypeStringMap:
		return "::phf::Map<&'static str, &'static str>"
	default:
		return "&'static str"
	}
}

func (r rust) Declare(name string, t Type, value string) string {
	return fmt.Sprintf("pub const %s: %s = %s;", name, r.Type(t), value)
}

func (r rust) DeclareOptional(name string, t Type, value string) string {
	return fmt.Sprintf("pub const %s: Option<%s> = %s;", name, r.Type(t), value)
}

func (rust) Some(_ Type, value string) string { return "Some(" + value + ")" }

func (rust) None(Type) string { return "None" }

// Quote returns s as a Rust string literal, escaped the way Rust's Debug
// formatting of str does. Invalid UTF-8 is replaced with U+FFFD.
func (rust) Quote(s string) string {
	var sb strings.Builder

	sb.WriteByte('"')

	for _, r := range strings.ToValidUTF8(s, string(unicode.ReplacementChar)) {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case 0:
			sb.WriteString(`\0`)
		default:
			if unicode.IsPrint(r) {
				sb.WriteRune(r)
			} else {
				fmt.Fprintf(&sb, `\u{%x}`, r)
			}
		}
	}

	sb.WriteByte('"')

	return sb.String()
}

func (rust) Uint(v uint64) string { return strconv.FormatUint(v, 10) }

func (r rust) List(items []string) string {
	if len(items) == 0 {
		return "&[]"
	}

	var sb strings.Builder

	sb.WriteString("&[\n")

	for _, item := range items {
		sb.WriteString(rustIndent)
		sb.WriteString(r.Quote(item))
		sb.WriteString(",\n")
	}

	sb.WriteString("]")

	return sb.String()
}

func (r rust) Map(entries []Entry) string {
	if len(entries) == 0 {
		return "::phf::phf_map! {}"
	}

	var sb strings.Builder

	sb.WriteString("::phf::phf_map! {\n")

	for _, e := range entries {
		sb.WriteString(rustIndent)
		sb.WriteString(r.Quote(e.Key))
		sb.WriteString(" => ")
		sb.WriteString(r.Quote(e.Value))
		sb.WriteString(",\n")
	}

	sb.WriteString("}")

	return sb.String()
}

func (r rust) Deferred(variable string) (string, bool) {
	return "env!(" + r.Quote(variable) + ")", true
}

func (r rust) DeferredOptional(variable string) (string, bool) {
	return "option_env!(" + r.Quote(variable) + ")", true
}
