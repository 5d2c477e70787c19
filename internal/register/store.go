// Package register implements RegisterStore: named, numbered, and special
// vi registers with the write rules spec §4.2 prescribes.
package register

import "sort"

// Name is a register selector. Zero value is unspecified.
type Name rune

// Action identifies the operator a register write is attributed to; it
// changes how the unnamed/delete-ring registers get updated.
type Action int

const (
	ActionYank Action = iota
	ActionDelete
	ActionOther // explicit setters (mark, search, command, buffer name...)
)

const (
	Blackhole Name = '_'
	Unnamed   Name = '"'
	YankSlot  Name = '0'
	Small     Name = '-'
	LastIns   Name = '.'
	LastCmd   Name = ':'
	LastSrch  Name = '/'
	CurBuf    Name = '%'
	AltBuf    Name = '#'
	Expr      Name = '='
)

// immutable holds the registers that updateRegister silently ignores;
// they are only mutated through their dedicated setters.
var immutable = map[Name]bool{
	LastIns: true, LastCmd: true, LastSrch: true,
	CurBuf: true, AltBuf: true, Expr: true,
}

// Store holds all register content for the life of the process.
type Store struct {
	m map[Name]string
}

// New constructs an empty Store.
func New() *Store {
	return &Store{m: make(map[Name]string)}
}

func lower(n Name) Name {
	r := rune(n)
	if r >= 'A' && r <= 'Z' {
		return Name(r - 'A' + 'a')
	}
	return n
}

func isUpper(n Name) bool {
	r := rune(n)
	return r >= 'A' && r <= 'Z'
}

func isDigit(n Name) bool {
	r := rune(n)
	return r >= '0' && r <= '9'
}

func isLowerLetter(n Name) bool {
	r := rune(n)
	return r >= 'a' && r <= 'z'
}

// Update applies the write rules of spec §4.2 for (action, reg, value).
// Immutable registers are silently ignored here; use the dedicated setters
// (SetLastInsert, SetLastCommand, SetLastSearch, SetBufferName,
// SetAlternateBufferName) to update them.
func (s *Store) Update(action Action, reg Name, value string) {
	if reg == Blackhole {
		return
	}
	if immutable[reg] {
		return
	}

	switch {
	case reg == YankSlot:
		s.m[YankSlot] = value
	case isDigit(reg):
		s.m[reg] = value
	case isLowerLetter(reg):
		s.m[reg] = value
	case isUpper(reg):
		lo := lower(reg)
		s.m[lo] = s.m[lo] + value
	case reg == Unnamed:
		switch action {
		case ActionYank:
			s.m[YankSlot] = value
		case ActionDelete:
			s.shiftDeleteRing(value)
			s.m[Small] = value
		}
	default:
		s.m[reg] = value
	}

	s.m[Unnamed] = value
}

// shiftDeleteRing pushes value onto slot '1', shifting '1'..'8' into
// '2'..'9'.
func (s *Store) shiftDeleteRing(value string) {
	for d := Name('9'); d > '1'; d-- {
		prev := Name(rune(d) - 1)
		if v, ok := s.m[prev]; ok {
			s.m[d] = v
		}
	}
	s.m['1'] = value
}

// Get returns the content of reg and whether it has ever been written.
func (s *Store) Get(reg Name) (string, bool) {
	if reg == Blackhole {
		return "", false
	}
	v, ok := s.m[reg]
	return v, ok
}

// SetLastInsert, SetLastCommand, SetLastSearch, SetBufferName, and
// SetAlternateBufferName are the dedicated setters for the registers the
// generic Update path treats as immutable (spec §4.2).
func (s *Store) SetLastInsert(v string)         { s.m[LastIns] = v }
func (s *Store) SetLastCommand(v string)         { s.m[LastCmd] = v }
func (s *Store) SetLastSearch(v string)          { s.m[LastSrch] = v }
func (s *Store) SetBufferName(v string)          { s.m[CurBuf] = v }
func (s *Store) SetAlternateBufferName(v string) { s.m[AltBuf] = v }

// Dump returns register contents ordered: '0' first, then the delete ring
// '1'..'9' (present entries only), then remaining named/special registers
// by lexicographic key (spec §4.2 dumpRegisters).
func (s *Store) Dump() []struct {
	Name  Name
	Value string
} {
	type entry struct {
		Name  Name
		Value string
	}
	var out []entry

	if v, ok := s.m[YankSlot]; ok {
		out = append(out, entry{YankSlot, v})
	}
	for d := Name('1'); d <= '9'; d++ {
		if v, ok := s.m[d]; ok {
			out = append(out, entry{d, v})
		}
	}

	var rest []Name
	for k := range s.m {
		if k == YankSlot || isDigit(k) {
			continue
		}
		rest = append(rest, k)
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i] < rest[j] })
	for _, k := range rest {
		out = append(out, entry{k, s.m[k]})
	}

	result := make([]struct {
		Name  Name
		Value string
	}, len(out))
	for i, e := range out {
		result[i].Name = e.Name
		result[i].Value = e.Value
	}
	return result
}
