package calc

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownSectionType is returned for identifiers outside the section catalog.
var ErrUnknownSectionType = errors.New("unknown section type")

// Kind identifies one of the supported composite section types.
type Kind int

const (
	// BuiltUpI is a welded I with unequal flanges.
	BuiltUpI Kind = iota + 1
	// CHS is a bare circular hollow section.
	CHS
	// CHSUPELR is a tube flanked left and right by two channels.
	CHSUPELR
	// CHSUPETB is a tube with one channel above and one below.
	CHSUPETB
)

// Kinds lists every supported section type.
var Kinds = []Kind{BuiltUpI, CHS, CHSUPELR, CHSUPETB}

var kindNames = map[Kind]string{
	BuiltUpI: "BuiltUpI",
	CHS:      "CHS",
	CHSUPELR: "CHS_UPE_LR",
	CHSUPETB: "CHS_UPE_TB",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Title is the human readable label used when an input has none.
func (k Kind) Title() string {
	switch k {
	case BuiltUpI:
		return "Built-up I"
	case CHS:
		return "CHS"
	case CHSUPELR:
		return "CHS + 2×UPE (L-R)"
	case CHSUPETB:
		return "CHS + 2×UPE (T-B)"
	}
	return k.String()
}

// ParseKind accepts the canonical names case-insensitively. Separators are
// ignored, so "CHS_UPE_LR", "chs-upe-lr" and "BUILTUP_I" all resolve.
func ParseKind(s string) (Kind, error) {
	key := kindKey(s)
	for k, n := range kindNames {
		if kindKey(n) == key {
			return k, nil
		}
	}
	if key == "BUILTUP" {
		return BuiltUpI, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSectionType, s)
}

func kindKey(s string) string {
	return strings.ToUpper(strings.NewReplacer("_", "", "-", "", " ", "").Replace(s))
}

func (k Kind) MarshalText() ([]byte, error) {
	if _, ok := kindNames[k]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSectionType, int(k))
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
