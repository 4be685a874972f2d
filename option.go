package optprice

import (
	"fmt"
	"strings"
)

// OptionKind is the exercise right of a European option.
type OptionKind int

const (
	Call OptionKind = iota + 1
	Put
)

const (
	kCallName = "call"
	kPutName  = "put"
)

func (self OptionKind) Valid() bool {
	return self == Call || self == Put
}

func (self OptionKind) String() string {
	switch self {
	case Call:
		return kCallName
	case Put:
		return kPutName
	default:
		return fmt.Sprintf("OptionKind(%d)", int(self))
	}
}

// ParseOptionKind maps user input such as "Call" or " put " to an OptionKind.
// The pricing functions never see raw strings; this is for the input layer.
func ParseOptionKind(value string) (OptionKind, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case kCallName:
		return Call, nil
	case kPutName:
		return Put, nil
	default:
		return 0, fmt.Errorf("%w: %q (must be either %q or %q)",
			ErrInvalidOptionKind, value, kCallName, kPutName)
	}
}

func checkKind(kind OptionKind) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidOptionKind, kind)
	}
	return nil
}
