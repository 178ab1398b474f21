package operators

import "colstore/internal/engineerr"

// ScanType is the six-valued comparison predicate TableScan evaluates.
type ScanType int

const (
	Equals ScanType = iota
	NotEquals
	LessThan
	LessThanEquals
	GreaterThan
	GreaterThanEquals
)

// ParseScanType maps the conventional operator spellings to a ScanType,
// failing with engineerr.UnknownScanType on anything else.
func ParseScanType(s string) (ScanType, error) {
	switch s {
	case "=", "==":
		return Equals, nil
	case "!=", "<>":
		return NotEquals, nil
	case "<":
		return LessThan, nil
	case "<=":
		return LessThanEquals, nil
	case ">":
		return GreaterThan, nil
	case ">=":
		return GreaterThanEquals, nil
	default:
		return 0, engineerr.Newf(engineerr.UnknownScanType, "unknown scan type %q", s)
	}
}

func (s ScanType) String() string {
	switch s {
	case Equals:
		return "="
	case NotEquals:
		return "!="
	case LessThan:
		return "<"
	case LessThanEquals:
		return "<="
	case GreaterThan:
		return ">"
	case GreaterThanEquals:
		return ">="
	default:
		return "?"
	}
}

// evaluate compares value against compareValue for T-typed raw values, the
// direct T-comparison branch used for ValueColumn and ReferenceColumn
// scans.
func evaluate[T int32 | float32 | float64 | string](s ScanType, value, compareValue T) bool {
	switch s {
	case Equals:
		return value == compareValue
	case NotEquals:
		return value != compareValue
	case LessThan:
		return value < compareValue
	case LessThanEquals:
		return value <= compareValue
	case GreaterThan:
		return value > compareValue
	case GreaterThanEquals:
		return value >= compareValue
	default:
		return false
	}
}
