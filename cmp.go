package remver

// Cmp evaluates "a op b". Operands are strings or *Version, parsed with the
// loose flag. Supported operators:
//
//	"===", "!==":           canonical strings are (not) identical
//	"", "=", "==", "!=":    equal / not equal precedence
//	">", ">=", "<", "<=":   precedence ordering
//
// Identity is checked on canonical forms, so loose "v1.2.3" === "1.2.3"
// holds even though the raw strings differ.
//
// Any other operator fails with CodeInvalidOperator.
func Cmp(a any, op string, b any, loose bool) (bool, error) {
	switch op {
	case "===", "!==":
		va, vb, err := parsePair(a, b, loose)
		if err != nil {
			return false, err
		}

		same := va.version == vb.version
		if op == "===" {
			return same, nil
		}
		return !same, nil

	case "", "=", "==", "!=", ">", ">=", "<", "<=":
		c, err := Compare(a, b, loose)
		if err != nil {
			return false, err
		}

		return evalOp(op, c), nil

	default:
		return false, invalidOperator(op)
	}
}

// evalOp maps a three-way result through a relational operator.
func evalOp(op string, c int) bool {
	switch op {
	case ">":
		return c > 0
	case ">=":
		return c >= 0
	case "<":
		return c < 0
	case "<=":
		return c <= 0
	case "!=":
		return c != 0
	default:
		return c == 0
	}
}

// Eq reports a == b.
func Eq(a, b any, loose bool) (bool, error) { return Cmp(a, "==", b, loose) }

// Neq reports a != b.
func Neq(a, b any, loose bool) (bool, error) { return Cmp(a, "!=", b, loose) }

// Gt reports a > b.
func Gt(a, b any, loose bool) (bool, error) { return Cmp(a, ">", b, loose) }

// Gte reports a >= b.
func Gte(a, b any, loose bool) (bool, error) { return Cmp(a, ">=", b, loose) }

// Lt reports a < b.
func Lt(a, b any, loose bool) (bool, error) { return Cmp(a, "<", b, loose) }

// Lte reports a <= b.
func Lte(a, b any, loose bool) (bool, error) { return Cmp(a, "<=", b, loose) }
