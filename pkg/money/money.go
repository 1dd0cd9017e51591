package money

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Money represents custom typo for processing money.
type Money struct {
	decimal decimal.Decimal
}

var (
	_ bson.ValueMarshaler   = Money{}
	_ bson.ValueUnmarshaler = (*Money)(nil)
)

// Zero represents zero (0) amount.
// Zero always equals to 0 and to 0.0...N.
var Zero = NewFromInt(0)

// NewFromString parses string and returns decimal amount.
// If s is empty, will be returned Zero decimal without throwing an error.
func NewFromString(s string) (Money, error) {
	if len(s) == 0 {
		return Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Zero, err
	}
	return Money{d}, nil
}

// NewFromInt returns decimal from integer number.
func NewFromInt(i int64) Money {
	return Money{decimal.NewFromInt(i)}
}

// NewFromFloat returns decimal from float number.
func NewFromFloat(f float64) Money {
	return Money{decimal.NewFromFloat(f)}
}

// Equal reports whether both amounts represent the same number.
func (m Money) Equal(right Money) bool {
	return m.decimal.Equal(right.decimal)
}

// String returns the shortest exact representation of the amount.
func (m Money) String() string {
	return m.decimal.String()
}

// FitsDecimal128 reports whether the amount can be stored as decimal128,
// i.e. has at most 34 significant digits and an exponent within its range.
func (m Money) FitsDecimal128() bool {
	_, err := primitive.ParseDecimal128(m.decimal.String())
	return err == nil
}

// MarshalJSON encodes the amount as a JSON number.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.decimal.String()), nil
}

// UnmarshalJSON accepts both JSON numbers and quoted numbers.
func (m *Money) UnmarshalJSON(data []byte) error {
	return m.decimal.UnmarshalJSON(data)
}

// MarshalBSONValue stores the amount as decimal128 so no precision is lost.
func (m Money) MarshalBSONValue() (bsontype.Type, []byte, error) {
	d128, err := primitive.ParseDecimal128(m.decimal.String())
	if err != nil {
		return 0, nil, fmt.Errorf("convert amount to decimal128: %w", err)
	}

	return bson.MarshalValue(d128)
}

// UnmarshalBSONValue reads decimal128, double, int32, int64 and string values.
func (m *Money) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}

	switch t {
	case bson.TypeDecimal128:
		return m.setFromString(raw.Decimal128().String())
	case bson.TypeDouble:
		m.decimal = decimal.NewFromFloat(raw.Double())
	case bson.TypeInt32:
		m.decimal = decimal.NewFromInt32(raw.Int32())
	case bson.TypeInt64:
		m.decimal = decimal.NewFromInt(raw.Int64())
	case bson.TypeString:
		return m.setFromString(raw.StringValue())
	case bson.TypeNull:
		m.decimal = decimal.Zero
	default:
		return fmt.Errorf("unsupported bson type for amount: %s", t)
	}

	return nil
}

func (m *Money) setFromString(s string) error {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("parse amount %q: %w", s, err)
	}

	m.decimal = d
	return nil
}
