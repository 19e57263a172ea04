package vec

import (
	"math"
	"testing"
)

func TestFloor(t *testing.T) {
	// Отрицательные дробные координаты округляются вниз, а не к нулю
	cases := []struct {
		in   Vec3Float
		want Vec3
	}{
		{Vec3Float{X: 1.7, Y: 2.3, Z: -0.5}, Vec3{X: 1, Y: 2, Z: -1}},
		{Vec3Float{X: -1.01, Y: 0, Z: 0.99}, Vec3{X: -2, Y: 0, Z: 0}},
		{Vec3Float{X: 3, Y: -3, Z: 0}, Vec3{X: 3, Y: -3, Z: 0}},
	}
	for _, c := range cases {
		if got := c.in.Floor(); !got.Equals(c.want) {
			t.Errorf("Floor(%v) = %v, ожидалось %v", c.in, got, c.want)
		}
	}
}

func TestNormalized(t *testing.T) {
	v := Vec3Float{X: 3, Y: 4, Z: 0}.Normalized()
	if math.Abs(v.Length()-1) > 1e-9 {
		t.Errorf("Длина нормализованного вектора %v, ожидалась 1", v.Length())
	}

	zero := Vec3Float{}.Normalized()
	if zero.Length() != 0 {
		t.Error("Нормализация нулевого вектора должна давать нулевой вектор")
	}
}

func TestHorizontalLength(t *testing.T) {
	v := Vec3Float{X: 3, Y: 100, Z: 4}
	if math.Abs(v.HorizontalLength()-5) > 1e-9 {
		t.Errorf("HorizontalLength = %v, ожидалось 5 (Y не учитывается)", v.HorizontalLength())
	}
}

func TestToFloat(t *testing.T) {
	v := Vec3{X: 1, Y: -2, Z: 3}.ToFloat()
	if v.X != 1 || v.Y != -2 || v.Z != 3 {
		t.Errorf("ToFloat дал %v", v)
	}
}
