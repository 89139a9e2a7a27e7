package expr

import "math/big"

// Arithmetic supplies the four operations a tree needs from its value type.
// Each result must be a fresh value; operands are never modified.
type Arithmetic[T any] interface {
	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T
	Div(a, b T) T
}

// Number is the set of built-in types closed under + - * /.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 |
		~complex64 | ~complex128
}

// Native uses Go's own operators. Integer division by zero panics with the
// runtime's error and float division follows IEEE 754.
type Native[T Number] struct{}

func (Native[T]) Add(a, b T) T { return a + b }
func (Native[T]) Sub(a, b T) T { return a - b }
func (Native[T]) Mul(a, b T) T { return a * b }
func (Native[T]) Div(a, b T) T { return a / b }

// BigFloat computes with *big.Float at a fixed precision in bits.
// Prec 0 uses the larger of the operand precisions, as math/big does.
type BigFloat struct {
	Prec uint
}

func (f BigFloat) newFloat() *big.Float {
	return new(big.Float).SetPrec(f.Prec)
}

func (f BigFloat) Add(a, b *big.Float) *big.Float { return f.newFloat().Add(a, b) }
func (f BigFloat) Sub(a, b *big.Float) *big.Float { return f.newFloat().Sub(a, b) }
func (f BigFloat) Mul(a, b *big.Float) *big.Float { return f.newFloat().Mul(a, b) }

// Div panics with big.ErrNaN for 0/0 and ±Inf/±Inf; x/0 is ±Inf.
func (f BigFloat) Div(a, b *big.Float) *big.Float { return f.newFloat().Quo(a, b) }

// BigRat computes exactly with *big.Rat. Division by zero panics.
type BigRat struct{}

func (BigRat) Add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) }
func (BigRat) Sub(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(a, b) }
func (BigRat) Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }
func (BigRat) Div(a, b *big.Rat) *big.Rat { return new(big.Rat).Quo(a, b) }

// BigInt computes with *big.Int. Div truncates toward zero like Go's /
// and panics on division by zero.
type BigInt struct{}

func (BigInt) Add(a, b *big.Int) *big.Int { return new(big.Int).Add(a, b) }
func (BigInt) Sub(a, b *big.Int) *big.Int { return new(big.Int).Sub(a, b) }
func (BigInt) Mul(a, b *big.Int) *big.Int { return new(big.Int).Mul(a, b) }
func (BigInt) Div(a, b *big.Int) *big.Int { return new(big.Int).Quo(a, b) }
