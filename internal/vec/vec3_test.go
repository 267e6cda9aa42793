package vec

import "testing"

func TestVec3BlockCoords(t *testing.T) {
	cases := []struct {
		pos   Vec3
		block Vec3
		local Vec3
	}{
		{Vec3{X: 0, Y: 0, Z: 0}, Vec3{X: 0, Y: 0, Z: 0}, Vec3{X: 0, Y: 0, Z: 0}},
		{Vec3{X: 17, Y: 33, Z: 5}, Vec3{X: 1, Y: 2, Z: 0}, Vec3{X: 1, Y: 1, Z: 5}},
		// Отрицательные координаты округляются вниз, локальные остаются в [0,16)
		{Vec3{X: -1, Y: -16, Z: -17}, Vec3{X: -1, Y: -1, Z: -2}, Vec3{X: 15, Y: 0, Z: 15}},
	}

	for _, c := range cases {
		if got := c.pos.ToBlockCoords(); !got.Equals(c.block) {
			t.Errorf("ToBlockCoords(%+v): ожидалось %+v, получено %+v", c.pos, c.block, got)
		}
		if got := c.pos.LocalInBlock(); !got.Equals(c.local) {
			t.Errorf("LocalInBlock(%+v): ожидалось %+v, получено %+v", c.pos, c.local, got)
		}
	}
}

func TestVec3Add(t *testing.T) {
	a := Vec3{X: 1, Y: -2, Z: 3}
	b := Vec3{X: 10, Y: 20, Z: 30}

	if got := a.Add(b); !got.Equals(Vec3{X: 11, Y: 18, Z: 33}) {
		t.Errorf("Неверная сумма векторов: %+v", got)
	}
}
