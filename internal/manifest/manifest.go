package manifest

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed constants.yaml
var embedded []byte

// ErrInvalid reports a manifest that cannot produce a well-formed bridge.
var ErrInvalid = errors.New("manifest: invalid")

// Category groups constants that share a representation.
type Category string

const (
	Datatype Category = "datatype"
	Comm     Category = "comm"
	Group    Category = "group"
	Message  Category = "message"
	Request  Category = "request"
	Op       Category = "op"
	Info     Category = "info"
	Int      Category = "int"
)

// order fixes the rendering order of categories.
var order = []Category{Datatype, Comm, Group, Message, Request, Op, Info, Int}

// IsHandle reports whether constants of the category are opaque handles.
func (c Category) IsHandle() bool {
	return c.Valid() && c != Int
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	for _, k := range order {
		if k == c {
			return true
		}
	}
	return false
}

// CType returns the C type used for the exported symbol.
func (c Category) CType() string {
	switch c {
	case Datatype:
		return "MPI_Datatype"
	case Comm:
		return "MPI_Comm"
	case Group:
		return "MPI_Group"
	case Message:
		return "MPI_Message"
	case Request:
		return "MPI_Request"
	case Op:
		return "MPI_Op"
	case Info:
		return "MPI_Info"
	case Int:
		return "int32_t"
	default:
		return ""
	}
}

// GoType returns the Go type exposing constants of the category.
func (c Category) GoType() string {
	switch c {
	case Datatype:
		return "Datatype"
	case Comm:
		return "Comm"
	case Group:
		return "Group"
	case Message:
		return "Message"
	case Request:
		return "Request"
	case Op:
		return "Op"
	case Info:
		return "Info"
	case Int:
		return "int32"
	default:
		return ""
	}
}

// Constant is one exported symbol.
type Constant struct {
	// Name is the symbol suffix; the exported symbol is Prefix+Name.
	Name string `yaml:"name" json:"name"`
	// Macro is the identifier in mpi.h that supplies the value.
	Macro    string   `yaml:"macro" json:"macro"`
	Category Category `yaml:"category" json:"category"`
	// Go is the exported Go identifier in pkg/mpiconst.
	Go string `yaml:"go" json:"go"`
	// Since is the MPI standard version that introduced the macro, if newer
	// than MPI-2.0.
	Since string `yaml:"since,omitempty" json:"since,omitempty"`
}

// Manifest is the complete, versioned symbol table.
type Manifest struct {
	Version   int        `yaml:"version" json:"version"`
	Prefix    string     `yaml:"prefix" json:"prefix"`
	Constants []Constant `yaml:"constants" json:"constants"`
}

var (
	cIdent    = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)
	goIdent   = regexp.MustCompile(`^[A-Z][A-Za-z0-9]*$`)
	stdLevel  = regexp.MustCompile(`^[0-9]+\.[0-9]+$`)
	macroName = regexp.MustCompile(`^MPI_[A-Z0-9_]+$`)
)

// Load returns the manifest compiled into the binary.
func Load() (*Manifest, error) {
	return Parse(embedded)
}

// Parse decodes and validates a manifest document. Unknown fields are
// rejected.
func Parse(data []byte) (*Manifest, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrInvalid, err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks that every declared symbol can be defined exactly once
// from a real header macro.
func (m *Manifest) Validate() error {
	if m.Version <= 0 {
		return fmt.Errorf("%w: version must be positive", ErrInvalid)
	}
	if !cIdent.MatchString(m.Prefix) || !strings.HasSuffix(m.Prefix, "_") {
		return fmt.Errorf("%w: prefix %q must be an upper-case C identifier ending in '_'", ErrInvalid, m.Prefix)
	}
	if len(m.Constants) == 0 {
		return fmt.Errorf("%w: no constants", ErrInvalid)
	}

	names := make(map[string]bool, len(m.Constants))
	goNames := make(map[string]bool, len(m.Constants))
	macros := make(map[string]bool, len(m.Constants))
	for i, c := range m.Constants {
		switch {
		case !cIdent.MatchString(c.Name):
			return fmt.Errorf("%w: constant #%d: name %q is not an upper-case C identifier", ErrInvalid, i, c.Name)
		case c.Macro == "":
			// A declared symbol with nothing to define it from would either be
			// left undefined or be given an invented value.
			return fmt.Errorf("%w: %s: no source macro", ErrInvalid, c.Name)
		case !macroName.MatchString(c.Macro):
			return fmt.Errorf("%w: %s: macro %q is not an MPI identifier", ErrInvalid, c.Name, c.Macro)
		case !c.Category.Valid():
			return fmt.Errorf("%w: %s: unknown category %q", ErrInvalid, c.Name, c.Category)
		case !goIdent.MatchString(c.Go):
			return fmt.Errorf("%w: %s: Go name %q is not an exported identifier", ErrInvalid, c.Name, c.Go)
		case isWidthName(c.Name):
			return fmt.Errorf("%w: %s: name collides with a handle width symbol", ErrInvalid, c.Name)
		case isBridgeIdent(c.Go):
			return fmt.Errorf("%w: %s: Go name %s is already declared by the bridge package", ErrInvalid, c.Name, c.Go)
		case c.Since != "" && !stdLevel.MatchString(c.Since):
			return fmt.Errorf("%w: %s: since %q is not MAJOR.MINOR", ErrInvalid, c.Name, c.Since)
		case names[c.Name]:
			return fmt.Errorf("%w: %s: declared twice", ErrInvalid, c.Name)
		case goNames[c.Go]:
			return fmt.Errorf("%w: %s: Go name %s used twice", ErrInvalid, c.Name, c.Go)
		case macros[c.Macro]:
			return fmt.Errorf("%w: %s: macro %s already exported", ErrInvalid, c.Name, c.Macro)
		}
		names[c.Name] = true
		goNames[c.Go] = true
		macros[c.Macro] = true
	}
	return nil
}

// isWidthName reports whether name would produce the same symbol as
// SizeSymbol for some handle category.
func isWidthName(name string) bool {
	for _, cat := range order {
		if cat.IsHandle() && name == "SIZEOF_"+strings.ToUpper(string(cat)) {
			return true
		}
	}
	return false
}

// isBridgeIdent reports whether ident is declared by pkg/mpiconst itself:
// a handle type, its width constant, or the symbol table API.
func isBridgeIdent(ident string) bool {
	switch ident {
	case "Symbol", "Symbols", "Lookup":
		return true
	}
	for _, cat := range order {
		if cat.IsHandle() && (ident == cat.GoType() || ident == cat.GoType()+"Size") {
			return true
		}
	}
	return false
}

// Symbol returns the exported C symbol for c.
func (m *Manifest) Symbol(c Constant) string {
	return m.Prefix + c.Name
}

// SizeSymbol returns the C symbol carrying sizeof the category's handle type.
func (m *Manifest) SizeSymbol(cat Category) string {
	return m.Prefix + "SIZEOF_" + strings.ToUpper(string(cat))
}

// Categories returns the categories in use, in rendering order.
func (m *Manifest) Categories() []Category {
	var out []Category
	for _, cat := range order {
		if len(m.ByCategory(cat)) > 0 {
			out = append(out, cat)
		}
	}
	return out
}

// HandleCategories returns the handle categories in use.
func (m *Manifest) HandleCategories() []Category {
	var out []Category
	for _, cat := range m.Categories() {
		if cat.IsHandle() {
			out = append(out, cat)
		}
	}
	return out
}

// ByCategory returns the constants of one category in manifest order.
func (m *Manifest) ByCategory(cat Category) []Constant {
	var out []Constant
	for _, c := range m.Constants {
		if c.Category == cat {
			out = append(out, c)
		}
	}
	return out
}

// Handles returns every handle-typed constant in rendering order.
func (m *Manifest) Handles() []Constant {
	var out []Constant
	for _, cat := range m.HandleCategories() {
		out = append(out, m.ByCategory(cat)...)
	}
	return out
}

// Ints returns every integer constant.
func (m *Manifest) Ints() []Constant {
	return m.ByCategory(Int)
}

// Lookup finds a constant by name.
func (m *Manifest) Lookup(name string) (Constant, bool) {
	for _, c := range m.Constants {
		if c.Name == name {
			return c, true
		}
	}
	return Constant{}, false
}

// Sorted returns all constants grouped by category in rendering order.
func (m *Manifest) Sorted() []Constant {
	return append(m.Handles(), m.Ints()...)
}
