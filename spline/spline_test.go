package spline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/geomlab/vmath"
)

var controlPoints = []vmath.Vec2{{0, 0}, {3, 4}, {6, 1}, {10, 5}, {12, -2}}

func TestTooFewPointsRejected(t *testing.T) {
	_, err := NewCatmullRom([]vmath.Vec2{{1, 1}}, false)
	require.ErrorIs(t, err, ErrTooFewPoints)

	_, err = NewFromPoints([]Point2D{NewPoint(0, vmath.Vec2{})})
	require.ErrorIs(t, err, ErrTooFewPoints)

	empty := New[vmath.Vec2]()
	assert.Panics(t, func() { empty.PositionAtInputKey(0) })
	assert.Panics(t, func() { empty.Length() })
}

func TestKeysMustIncrease(t *testing.T) {
	s := New[vmath.Vec2]()
	require.NoError(t, s.AddPoint(NewPoint(0, vmath.Vec2{})))
	require.ErrorIs(t, s.AddPoint(NewPoint(0, vmath.Vec2{1, 1})), ErrKeysNotIncreasing)
}

func TestCatmullRomRoundTrip(t *testing.T) {
	for _, loop := range []bool{false, true} {
		s, err := NewCatmullRom(controlPoints, loop)
		require.NoError(t, err)
		for i, p := range controlPoints {
			got := s.PositionAtInputKey(float64(i))
			assert.True(t, got.ApproxEqualThreshold(p, 1e-12), "loop=%v key=%d got %v", loop, i, got)
		}
		if loop {
			assert.Equal(t, len(controlPoints), s.NumSegments())
			assert.True(t, s.PositionAtInputKey(float64(len(controlPoints))).ApproxEqualThreshold(controlPoints[0], 1e-12))
		} else {
			assert.Equal(t, len(controlPoints)-1, s.NumSegments())
		}
	}
}

func TestBezierRoundTrip(t *testing.T) {
	s, err := NewFromPoints([]Point2D{
		PointFromNextGuide(0, vmath.Vec2{0, 0}, vmath.Vec2{1, 3}),
		PointFromPrevGuide(1, vmath.Vec2{5, 0}, vmath.Vec2{4, 3}),
		NewPoint(2.5, vmath.Vec2{7, 7}),
	})
	require.NoError(t, err)
	for _, p := range s.Points() {
		assert.True(t, s.PositionAtInputKey(p.InputKey).ApproxEqualThreshold(p.Position, 1e-12))
	}
}

func TestContinuousGuidesMirror(t *testing.T) {
	p := PointFromNextGuide(0, vmath.Vec2{2, 2}, vmath.Vec2{3, 4})
	assert.Equal(t, vmath.Vec2{1, 0}, p.PrevGuide)
	p = PointFromPrevGuide(0, vmath.Vec2{2, 2}, vmath.Vec2{1, 0})
	assert.Equal(t, vmath.Vec2{3, 4}, p.NextGuide)
}

func TestKeysClampOutsideDomain(t *testing.T) {
	s, err := NewCatmullRom(controlPoints, false)
	require.NoError(t, err)
	assert.Equal(t, controlPoints[0], s.PositionAtInputKey(-5))
	assert.Equal(t, controlPoints[len(controlPoints)-1], s.PositionAtInputKey(100))
}

func TestTangentMatchesFiniteDifference(t *testing.T) {
	s, err := NewCatmullRom(controlPoints, false)
	require.NoError(t, err)
	const h = 1e-6
	for _, k := range []float64{0.3, 1.5, 2.25, 3.9} {
		fd := s.PositionAtInputKey(k + h).Sub(s.PositionAtInputKey(k - h)).Mul(1 / (2 * h))
		assert.True(t, s.TangentAtInputKey(k).ApproxEqualThreshold(fd, 1e-4), "key %g", k)
	}

	// Interior Catmull-Rom tangent is the central difference
	want := controlPoints[2].Sub(controlPoints[0]).Mul(0.5)
	assert.True(t, s.TangentAtInputKey(1).ApproxEqualThreshold(want, 1e-9))
}

func TestPositionsWithSubdivisions(t *testing.T) {
	s, err := NewCatmullRom(controlPoints, false)
	require.NoError(t, err)

	out := s.PositionsWithSubdivisions(nil, 8)
	require.Len(t, out, 8*s.NumSegments()+1)
	assert.Equal(t, controlPoints[0], out[0])
	assert.Equal(t, controlPoints[len(controlPoints)-1], out[len(out)-1])

	// Restartable: a second call yields the same samples
	assert.Equal(t, out, s.PositionsWithSubdivisions(nil, 8))
}

func TestArcLengthMonotonic(t *testing.T) {
	s, err := NewCatmullRom(controlPoints, false)
	require.NoError(t, err)
	s.SetSubdivisionsPerSegment(16)

	length := s.Length()
	require.Greater(t, length, 0.0)
	assert.Equal(t, s.FirstKey(), s.InputKeyAtDistance(0))
	assert.Equal(t, s.LastKey(), s.InputKeyAtDistance(length))

	prev := s.InputKeyAtDistance(0)
	for d := 0.0; d <= length; d += length / 500 {
		k := s.InputKeyAtDistance(d)
		require.GreaterOrEqual(t, k, prev)
		prev = k
	}
}

func TestStraightLineLength(t *testing.T) {
	s, err := NewFromPoints([]Point2D{
		NewPoint(0, vmath.Vec2{0, 0}),
		NewPoint(1, vmath.Vec2{10, 0}),
	})
	require.NoError(t, err)
	assert.InDelta(t, 10.0, s.Length(), 1e-9)
	assert.InDelta(t, 0.5, s.InputKeyAtDistance(5), 0.05)
}

func TestMutationInvalidatesTable(t *testing.T) {
	s, err := NewFromPoints([]Point2D{
		NewPoint(0, vmath.Vec2{0, 0}),
		NewPoint(1, vmath.Vec2{10, 0}),
	})
	require.NoError(t, err)
	require.InDelta(t, 10.0, s.Length(), 1e-9)

	require.NoError(t, s.AddPoint(NewPoint(2, vmath.Vec2{10, 5})))
	assert.InDelta(t, 15.0, s.Length(), 1e-9)

	require.NoError(t, s.SetPosition(2, vmath.Vec2{10, 10}))
	assert.InDelta(t, 20.0, s.Length(), 1e-9)

	s.Clear()
	assert.False(t, s.Valid())
}

func TestSpline3DChannels(t *testing.T) {
	s := NewSpline3D()
	require.NoError(t, s.SetFromCatmullRom([]vmath.Vec3{{0, 0, 0}, {1, 2, 3}, {4, 0, 1}}, false))
	require.NoError(t, s.SetRotationAt(2, vmath.EulerAngles{Yaw: 90}))
	require.NoError(t, s.SetScaleAt(2, vmath.Vec3{3, 3, 3}))
	require.ErrorIs(t, s.SetScaleAt(7, vmath.Vec3{}), ErrPointIndexOutOfRange)

	q0 := s.QuaternionAtInputKey(0)
	assert.True(t, q0.ApproxEqualThreshold(vmath.Quat{W: 1}, 1e-12))

	want := vmath.EulerAngles{Yaw: 90}.Quaternion()
	assert.True(t, s.QuaternionAtInputKey(2).ApproxEqualThreshold(want, 1e-9))

	half := s.QuaternionAtInputKey(1.5)
	assert.True(t, half.ApproxEqualThreshold(vmath.EulerAngles{Yaw: 45}.Quaternion(), 1e-9))

	assert.True(t, s.ScaleAtInputKey(1.5).ApproxEqualThreshold(vmath.Vec3{2, 2, 2}, 1e-12))
	assert.Equal(t, unitScale, s.ScaleAtInputKey(-1))
}
