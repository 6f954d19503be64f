package dice

import "fmt"

// Sign is the polarity of a term within an expression.
type Sign int

const (
	SignPositive Sign = iota
	SignNegative
)

func (s Sign) String() string {
	if s == SignNegative {
		return "-"
	}
	return "+"
}

func (s Sign) apply(value int64) int64 {
	if s == SignNegative {
		return -value
	}
	return value
}

// Kind distinguishes dice terms from flat constants.
type Kind int

const (
	KindDice Kind = iota
	KindConstant
)

func (k Kind) String() string {
	switch k {
	case KindDice:
		return "dice"
	case KindConstant:
		return "constant"
	default:
		return "unknown"
	}
}

// Entity is one parsed term of an expression.
//
// Count and Sides are set only for KindDice; Value only for KindConstant.
type Entity struct {
	Sign  Sign
	Kind  Kind
	Count uint32
	Sides uint32
	Value uint32
}

// NewDice returns a dice entity rolling count dice with the given sides.
func NewDice(sign Sign, count, sides uint32) Entity {
	return Entity{Sign: sign, Kind: KindDice, Count: count, Sides: sides}
}

// NewConstant returns a flat constant entity.
func NewConstant(sign Sign, value uint32) Entity {
	return Entity{Sign: sign, Kind: KindConstant, Value: value}
}

// String renders the entity in segmented form, e.g. "+2d6" or "-3".
func (e Entity) String() string {
	if e.Kind == KindDice {
		return fmt.Sprintf("%s%dd%d", e.Sign, e.Count, e.Sides)
	}
	return fmt.Sprintf("%s%d", e.Sign, e.Value)
}

// bounds returns the signed contribution of the entity to the minimum and
// maximum totals. Subtracting a die moves the minimum by its highest face.
func (e Entity) bounds() (minimum, maximum int64) {
	if e.Kind == KindConstant {
		v := e.Sign.apply(int64(e.Value))
		return v, v
	}
	low := int64(e.Count)
	high := int64(e.Count) * int64(e.Sides)
	if e.Sign == SignNegative {
		return -high, -low
	}
	return low, high
}
