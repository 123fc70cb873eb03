package query

// Operator is a numeric comparison operator. All comparisons are exact
// integer comparisons; there are no floating semantics.
type Operator string

const (
	OpEq Operator = "="
	OpNe Operator = "!="
	OpGt Operator = ">"
	OpLt Operator = "<"
	OpGe Operator = ">="
	OpLe Operator = "<="
)

// Compare applies the operator to (have, want), e.g. cost OpGt 3 is
// Compare(card.Cost, 3).
func (o Operator) Compare(have, want int) bool {
	switch o {
	case OpEq:
		return have == want
	case OpNe:
		return have != want
	case OpGt:
		return have > want
	case OpLt:
		return have < want
	case OpGe:
		return have >= want
	case OpLe:
		return have <= want
	default:
		return false
	}
}
