package schema

import "fmt"

// Mode controls what construction does with members a record does not declare.
type Mode int

const (
	// ModeIgnore drops undeclared members.
	ModeIgnore Mode = iota
	// ModeOpen keeps undeclared members and writes them back on serialization.
	ModeOpen
	// ModeStrict rejects undeclared members with an EXTRA_FIELD error.
	ModeStrict
)

func (m Mode) String() string {
	switch m {
	case ModeOpen:
		return "open"
	case ModeStrict:
		return "strict"
	default:
		return "ignore"
	}
}

// ParseMode is the inverse of Mode.String.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "ignore", "":
		return ModeIgnore, nil
	case "open":
		return ModeOpen, nil
	case "strict":
		return ModeStrict, nil
	}
	return ModeIgnore, fmt.Errorf("unknown mode %q", s)
}

func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
