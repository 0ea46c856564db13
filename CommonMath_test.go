package gjk_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gjk "github.com/RayzRazko/GJK"
)

func TestVec2Ops(t *testing.T) {
	t.Run("Arithmetic", func(t *testing.T) {
		a := gjk.MakeVec2(1, 2)
		b := gjk.MakeVec2(3, -4)

		assert.Equal(t, gjk.MakeVec2(4, -2), gjk.Vec2Add(a, b))
		assert.Equal(t, gjk.MakeVec2(-2, 6), gjk.Vec2Sub(a, b))
		assert.Equal(t, gjk.MakeVec2(2, 4), gjk.Vec2MulScalar(2, a))
		assert.Equal(t, gjk.MakeVec2(-1, -2), a.OperatorNegate())
		assert.Equal(t, -5.0, gjk.Vec2Dot(a, b))
		assert.Equal(t, -10.0, gjk.Vec2Cross(a, b))
		assert.Equal(t, 10.0, gjk.Vec2Cross(b, a))
	})

	t.Run("Inplace", func(t *testing.T) {
		v := gjk.MakeVec2(1, 1)
		v.OperatorPlusInplace(gjk.MakeVec2(2, 3))
		assert.Equal(t, gjk.MakeVec2(3, 4), v)
		v.OperatorMinusInplace(gjk.MakeVec2(1, 1))
		assert.Equal(t, gjk.MakeVec2(2, 3), v)
		v.OperatorScalarMulInplace(2)
		assert.Equal(t, gjk.MakeVec2(4, 6), v)
	})

	t.Run("Lengths", func(t *testing.T) {
		v := gjk.MakeVec2(3, 4)
		assert.Equal(t, 5.0, v.Length())
		assert.Equal(t, 25.0, v.LengthSquared())
		assert.Equal(t, 5.0, gjk.Vec2Distance(gjk.MakeVec2(3, 4), gjk.Vec2_zero))
		assert.Equal(t, 25.0, gjk.Vec2DistanceSquared(gjk.MakeVec2(3, 4), gjk.Vec2_zero))
	})

	t.Run("Normalize", func(t *testing.T) {
		v := gjk.MakeVec2(3, 4)
		length := v.Normalize()
		assert.Equal(t, 5.0, length)
		assert.InDelta(t, 1.0, v.Length(), 1e-12)

		// A zero vector cannot be normalized; it is left unchanged.
		zero := gjk.MakeVec2(0, 0)
		assert.Equal(t, 0.0, zero.Normalize())
		assert.True(t, zero.IsZero())
	})

	t.Run("EqualityAndClone", func(t *testing.T) {
		a := gjk.MakeVec2(1.5, -2.5)
		assert.True(t, gjk.Vec2Equals(a, a.Clone()))
		assert.False(t, gjk.Vec2Equals(a, gjk.MakeVec2(1.5, 2.5)))

		c := a.Clone()
		c.Set(0, 0)
		assert.Equal(t, gjk.MakeVec2(1.5, -2.5), a)
	})

	t.Run("ZeroAndValidity", func(t *testing.T) {
		assert.True(t, gjk.Vec2_zero.IsZero())
		assert.False(t, gjk.MakeVec2(1e-300, 0).IsZero())
		assert.True(t, gjk.MakeVec2(1, 2).IsValid())
		assert.False(t, gjk.MakeVec2(math.NaN(), 0).IsValid())
		assert.False(t, gjk.MakeVec2(0, math.Inf(1)).IsValid())
	})
}

func TestFloatHelpers(t *testing.T) {
	assert.True(t, gjk.FloatIsZero(0, 1e-4))
	assert.True(t, gjk.FloatIsZero(-5e-5, 1e-4))
	assert.False(t, gjk.FloatIsZero(2e-4, 1e-4))

	assert.Equal(t, 0.0, gjk.FloatClamp(-1, 0, 1))
	assert.Equal(t, 1.0, gjk.FloatClamp(3, 0, 1))
	assert.Equal(t, 0.5, gjk.FloatClamp(0.5, 0, 1))
}

func TestRotAndTransform(t *testing.T) {
	t.Run("Rotate", func(t *testing.T) {
		q := gjk.MakeRotFromAngle(math.Pi / 2)
		v := gjk.RotVec2Mul(q, gjk.MakeVec2(1, 0))
		assert.InDelta(t, 0.0, v.X, 1e-12)
		assert.InDelta(t, 1.0, v.Y, 1e-12)

		// Inverse rotation undoes the rotation.
		back := gjk.RotVec2MulT(q, v)
		assert.InDelta(t, 1.0, back.X, 1e-12)
		assert.InDelta(t, 0.0, back.Y, 1e-12)
	})

	t.Run("Transform", func(t *testing.T) {
		xf := gjk.MakeTransform()
		xf.Set(gjk.MakeVec2(10, -2), 0)
		v := gjk.TransformVec2Mul(xf, gjk.MakeVec2(1, 1))
		assert.Equal(t, gjk.MakeVec2(11, -1), v)
	})

	t.Run("Identity", func(t *testing.T) {
		xf := gjk.MakeTransform()
		xf.Set(gjk.MakeVec2(3, 4), 1.5)
		xf.SetIdentity()
		v := gjk.TransformVec2Mul(xf, gjk.MakeVec2(7, 8))
		require.Equal(t, gjk.MakeVec2(7, 8), v)
		assert.Equal(t, 0.0, xf.Q.GetAngle())
	})
}
