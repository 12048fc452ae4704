package optstore

import (
	"fmt"
	"runtime"
)

// Kind is the type tag for an option value.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindBool
)

// Value is a typed option value; exactly one field is meaningful,
// selected by Kind.
type Value struct {
	Kind Kind
	S    string
	I    int
	B    bool
}

func StringValue(s string) Value { return Value{Kind: KindString, S: s} }
func IntValue(i int) Value       { return Value{Kind: KindInt, I: i} }
func BoolValue(b bool) Value     { return Value{Kind: KindBool, B: b} }

// spec is the definition of one option: its kind, default, and the
// parser from its textual (`:set name value`) form, per spec.md §3
// ("Each option has a default, a parser from its textual form, and
// at-most-one writer").
type spec struct {
	kind    Kind
	def     Value
	parse   func(string) (Value, error)
}

// ErrUnknownOption is the UNKNOWN_OPTION error kind from spec.md §7.
var ErrUnknownOption = fmt.Errorf("optstore: unknown option")

// ErrOptionValue is the OPTION_VALUE error kind from spec.md §7.
var ErrOptionValue = fmt.Errorf("optstore: invalid option value")

func parseString(s string) (Value, error) { return StringValue(s), nil }

func parseInt(s string) (Value, error) {
	var n int
	var neg bool
	i := 0
	if len(s) > 0 && s[0] == '-' {
		neg = true
		i = 1
	}
	if i >= len(s) {
		return Value{}, fmt.Errorf("%w: %q is not an integer", ErrOptionValue, s)
	}
	for ; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return Value{}, fmt.Errorf("%w: %q is not an integer", ErrOptionValue, s)
		}
		n = n*10 + int(s[i]-'0')
	}
	if neg {
		n = -n
	}
	return IntValue(n), nil
}

func parseBool(s string) (Value, error) {
	switch s {
	case "true", "1", "yes", "on":
		return BoolValue(true), nil
	case "false", "0", "no", "off":
		return BoolValue(false), nil
	default:
		return Value{}, fmt.Errorf("%w: %q is not a boolean", ErrOptionValue, s)
	}
}

func defaultClipboard() string {
	if runtime.GOOS == "darwin" {
		return "pbcopy"
	}
	return "xclip -selection clipboard"
}

// specs is the closed option table from spec.md §3, extended with the
// ambient options SPEC_FULL §2.3 adds.
var specs = map[string]spec{
	"git":              {KindString, StringValue("git"), parseString},
	"clipboard":        {KindString, StringValue(defaultClipboard()), parseString},
	"scrolloff":        {KindInt, IntValue(2), parseInt},
	"scroll_step":      {KindInt, IntValue(1), parseInt},
	"smart_case":       {KindBool, BoolValue(true), parseBool},
	"menu_bar":         {KindBool, BoolValue(true), parseBool},
	"default_mappings": {KindBool, BoolValue(true), parseBool},
	"default_buttons":  {KindBool, BoolValue(true), parseBool},
	"mouse":            {KindBool, BoolValue(true), parseBool},
	"history_size":     {KindInt, IntValue(100), parseInt},
	"log_level":        {KindString, StringValue("info"), parseString},
	"wrap":             {KindBool, BoolValue(false), parseBool},
}

// Store is the option table. It is written only on the UI thread
// between event dispatches (spec.md §5), so it takes no internal
// lock; concurrent ingest workers never touch it.
type Store struct {
	values map[string]Value
}

// New creates a Store pre-populated with every known option's default.
func New() *Store {
	s := &Store{values: make(map[string]Value, len(specs))}
	for name, sp := range specs {
		s.values[name] = sp.def
	}
	return s
}

// Set validates and assigns value (given as its raw textual form) to
// name. On success the new value replaces the old one; on failure the
// previous value is left in place and an error is returned, per
// spec.md §3's option-assignment invariant.
func (s *Store) Set(name, rawValue string) error {
	sp, ok := specs[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownOption, name)
	}
	v, err := sp.parse(rawValue)
	if err != nil {
		return err
	}
	s.values[name] = v
	return nil
}

func (s *Store) String(name string) string {
	if v, ok := s.values[name]; ok {
		return v.S
	}
	return ""
}

func (s *Store) Int(name string) int {
	if v, ok := s.values[name]; ok {
		return v.I
	}
	return 0
}

func (s *Store) Bool(name string) bool {
	if v, ok := s.values[name]; ok {
		return v.B
	}
	return false
}

// Lookup implements action.Lookup for the %(git) and %(clip) placeholders.
func (s *Store) Lookup(name string) (string, bool) {
	switch name {
	case "git":
		v := s.String("git")
		return v, v != ""
	case "clip":
		v := s.String("clipboard")
		return v, v != ""
	default:
		return "", false
	}
}

// IsKnown reports whether name is a recognised option.
func IsKnown(name string) bool {
	_, ok := specs[name]
	return ok
}
