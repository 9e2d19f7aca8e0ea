package perlin

import (
	"math"
	"sync"
	"testing"
)

func TestNoise2DLatticeZero(t *testing.T) {
	if got := Noise2D(5.0, 7.0); got != 0 {
		t.Errorf("Noise2D(5, 7) = %v, want 0", got)
	}
	for x := -20; x <= 20; x += 3 {
		for y := -20; y <= 20; y += 5 {
			if got := Noise2D(float64(x), float64(y)); got != 0 {
				t.Errorf("Noise2D(%d, %d) = %v, want 0", x, y, got)
			}
		}
	}
}

func TestNoise3DLatticeZero(t *testing.T) {
	for x := -6; x <= 6; x += 3 {
		for y := -6; y <= 6; y += 2 {
			for z := -6; z <= 6; z += 4 {
				if got := Noise3D(float64(x), float64(y), float64(z)); got != 0 {
					t.Errorf("Noise3D(%d, %d, %d) = %v, want 0", x, y, z, got)
				}
			}
		}
	}
}

func TestNoise2DDeterministic(t *testing.T) {
	points := [][2]float64{{0.5, 0.5}, {245.3, 324.7}, {-13.01, 8.99}, {1e6 + 0.25, -1e6 + 0.75}}
	for _, p := range points {
		a := Noise2D(p[0], p[1])
		for range 10 {
			if b := Noise2D(p[0], p[1]); math.Float64bits(a) != math.Float64bits(b) {
				t.Fatalf("Noise2D(%v, %v) not deterministic: %v vs %v", p[0], p[1], a, b)
			}
		}
	}
}

func TestNoise3DDeterministic(t *testing.T) {
	a := Noise3D(3.3, -4.4, 5.5)
	b := Noise3D(3.3, -4.4, 5.5)
	if math.Float64bits(a) != math.Float64bits(b) {
		t.Errorf("Noise3D not deterministic: %v vs %v", a, b)
	}
}

// TestNoise2DNegativeDomain evaluates the point (-0.5, -0.5) by hand. It
// lies in the cell with lower corner (-1, -1) at offset (0.5, 0.5), where
// the fade weights are exactly one half.
func TestNoise2DNegativeDomain(t *testing.T) {
	got := Noise2D(-0.5, -0.5)
	if math.IsNaN(got) || math.IsInf(got, 0) {
		t.Fatalf("Noise2D(-0.5, -0.5) = %v", got)
	}

	c00 := GradientAt2(-1, -1).Dot(Vec2{X: 0.5, Y: 0.5})
	c10 := GradientAt2(0, -1).Dot(Vec2{X: -0.5, Y: 0.5})
	c01 := GradientAt2(-1, 0).Dot(Vec2{X: 0.5, Y: -0.5})
	c11 := GradientAt2(0, 0).Dot(Vec2{X: -0.5, Y: -0.5})
	want := ((c00+c10)/2 + (c01+c11)/2) / 2

	if math.Abs(got-want) > 1e-12 {
		t.Errorf("Noise2D(-0.5, -0.5) = %v, want %v", got, want)
	}
}

// TestNoise2DNegativeMatchesShifted relies on the 256 period of the lattice
// hash: shifting by a multiple of 256 must not change the field.
func TestNoise2DNegativeMatchesShifted(t *testing.T) {
	for _, p := range [][2]float64{{-0.5, -0.5}, {-3.25, 7.75}, {-100.1, -200.9}} {
		a := Noise2D(p[0], p[1])
		b := Noise2D(p[0]+512, p[1]+256)
		if math.Abs(a-b) > 1e-9 {
			t.Errorf("Noise2D(%v) = %v, shifted = %v", p, a, b)
		}
	}
}

func TestNoise3DNegativeMatchesShifted(t *testing.T) {
	a := Noise3D(-0.5, -1.25, -7.75)
	b := Noise3D(-0.5+256, -1.25+256, -7.75+256)
	if math.Abs(a-b) > 1e-9 {
		t.Errorf("Noise3D = %v, shifted = %v", a, b)
	}
}

func TestNoise2DBounded(t *testing.T) {
	if testing.Short() {
		t.Skip("dense grid")
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for row := range 1000 {
		for col := range 1000 {
			v := Noise2D(245+float64(col)/50, 324+float64(row)/50)
			lo = min(lo, v)
			hi = max(hi, v)
		}
	}
	// Unit gradients bound 2D noise by sqrt(2)/2.
	if lo < -1 || hi > 1 {
		t.Errorf("Noise2D range [%v, %v] exceeds [-1, 1]", lo, hi)
	}
	if hi-lo < 0.3 {
		t.Errorf("Noise2D range [%v, %v] is suspiciously flat", lo, hi)
	}
}

func TestNoise3DBounded(t *testing.T) {
	for i := range 200 {
		for j := range 200 {
			v := Noise3D(float64(i)/17, float64(j)/23, float64(i+j)/31)
			if v < -2 || v > 2 {
				t.Fatalf("Noise3D out of [-2, 2]: %v", v)
			}
		}
	}
}

func TestNoise2DContinuous(t *testing.T) {
	const eps = 1e-4
	for i := range 400 {
		x := -10 + float64(i)*0.0537
		y := 3 + float64(i)*0.0311
		v := Noise2D(x, y)
		if d := math.Abs(v - Noise2D(x+eps, y)); d > 1e-3 {
			t.Fatalf("jump %v along x at (%v, %v)", d, x, y)
		}
		if d := math.Abs(v - Noise2D(x, y+eps)); d > 1e-3 {
			t.Fatalf("jump %v along y at (%v, %v)", d, x, y)
		}
	}
}

// TestNoise2DContinuousAcrossCells straddles lattice lines, where a corner
// or axis pairing mistake shows up as a step.
func TestNoise2DContinuousAcrossCells(t *testing.T) {
	const eps = 1e-9
	for k := -5; k <= 5; k++ {
		edge := float64(k)
		for _, other := range []float64{0.1, 0.37, 0.5, 0.93} {
			if d := math.Abs(Noise2D(edge-eps, other) - Noise2D(edge+eps, other)); d > 1e-6 {
				t.Errorf("step %v crossing x=%v at y=%v", d, edge, other)
			}
			if d := math.Abs(Noise2D(other, edge-eps) - Noise2D(other, edge+eps)); d > 1e-6 {
				t.Errorf("step %v crossing y=%v at x=%v", d, edge, other)
			}
		}
	}
}

func TestNoise3DContinuousAcrossCells(t *testing.T) {
	const eps = 1e-9
	for k := -3; k <= 3; k++ {
		e := float64(k)
		for _, o := range []float64{0.2, 0.5, 0.81} {
			p := o + 0.13
			if d := math.Abs(Noise3D(e-eps, o, p) - Noise3D(e+eps, o, p)); d > 1e-6 {
				t.Errorf("step %v crossing x=%v", d, e)
			}
			if d := math.Abs(Noise3D(o, e-eps, p) - Noise3D(o, e+eps, p)); d > 1e-6 {
				t.Errorf("step %v crossing y=%v", d, e)
			}
			if d := math.Abs(Noise3D(o, p, e-eps) - Noise3D(o, p, e+eps)); d > 1e-6 {
				t.Errorf("step %v crossing z=%v", d, e)
			}
		}
	}
}

// TestNoise3DAxisReduction checks that on a face of the cell the 3D blend
// reduces to the four corners of that face.
func TestNoise3DAxisReduction(t *testing.T) {
	x, y := 2.3, 4.6
	got := Noise3D(x, y, 9)

	u, v := Fade(0.3), Fade(0.6)
	fx, fy := 0.3, 0.6
	c00 := GradientAt3(2, 4, 9).Dot(Vec3{X: fx, Y: fy})
	c10 := GradientAt3(3, 4, 9).Dot(Vec3{X: fx - 1, Y: fy})
	c01 := GradientAt3(2, 5, 9).Dot(Vec3{X: fx, Y: fy - 1})
	c11 := GradientAt3(3, 5, 9).Dot(Vec3{X: fx - 1, Y: fy - 1})
	want := Lerp(Lerp(c00, c10, u), Lerp(c01, c11, u), v)

	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Noise3D(%v, %v, 9) = %v, want %v", x, y, got, want)
	}
}

func TestSlice2D(t *testing.T) {
	if got, want := Slice2D(1.7, -2.2), Noise3D(1.7, -2.2, SliceZ); got != want {
		t.Errorf("Slice2D = %v, want %v", got, want)
	}
	if Slice2D(0.4, 0.9) != Slice2D(0.4, 0.9) {
		t.Error("Slice2D not deterministic")
	}
	const eps = 1e-4
	for i := range 200 {
		x, y := float64(i)*0.071, float64(i)*0.043-4
		if d := math.Abs(Slice2D(x, y) - Slice2D(x+eps, y+eps)); d > 1e-3 {
			t.Fatalf("Slice2D jump %v at (%v, %v)", d, x, y)
		}
	}
}

func TestPerlin2Float32(t *testing.T) {
	points := [][2]float64{{1.25, 3.5}, {-2.75, 0.125}, {7.3, -5.9}}
	for _, p := range points {
		f64 := Perlin2(p[0], p[1])
		f32 := Perlin2(float32(p[0]), float32(p[1]))
		if math.Abs(float64(f32)-f64) > 1e-5 {
			t.Errorf("Perlin2[float32](%v) = %v, float64 = %v", p, f32, f64)
		}
	}
}

func TestPerlin3Float32(t *testing.T) {
	f64 := Perlin3(1.25, -3.5, 0.75)
	f32 := Perlin3[float32](1.25, -3.5, 0.75)
	if math.Abs(float64(f32)-f64) > 1e-5 {
		t.Errorf("Perlin3[float32] = %v, float64 = %v", f32, f64)
	}
}

func TestNoiseNaNPropagates(t *testing.T) {
	if v := Noise2D(math.NaN(), 0.5); !math.IsNaN(v) {
		t.Errorf("Noise2D(NaN, 0.5) = %v, want NaN", v)
	}
	if v := Noise3D(0.5, 0.5, math.NaN()); !math.IsNaN(v) {
		t.Errorf("Noise3D(0.5, 0.5, NaN) = %v, want NaN", v)
	}
}

func TestNoiseConcurrent(t *testing.T) {
	want := make([]float64, 64)
	for i := range want {
		want[i] = Noise2D(float64(i)*0.3, float64(i)*0.7)
	}

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, w := range want {
				if got := Noise2D(float64(i)*0.3, float64(i)*0.7); got != w {
					t.Errorf("concurrent Noise2D mismatch at %d", i)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func BenchmarkNoise2D(b *testing.B) {
	b.ReportAllocs()
	x := 0.0
	for b.Loop() {
		_ = Noise2D(x, 1.5)
		x += 0.013
	}
}

func BenchmarkNoise3D(b *testing.B) {
	b.ReportAllocs()
	x := 0.0
	for b.Loop() {
		_ = Noise3D(x, 1.5, 2.5)
		x += 0.013
	}
}

func BenchmarkPerlin2Float32(b *testing.B) {
	b.ReportAllocs()
	var x float32
	for b.Loop() {
		_ = Perlin2(x, 1.5)
		x += 0.013
	}
}
