package vec

// Vec3 представляет трехмерный вектор с целочисленными координатами.
// Используется и для адресации блоков в мире, и для локальных координат
// ноды внутри блока.
type Vec3 struct {
	X int
	Y int
	Z int
}

// Add складывает два вектора
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
	}
}

// Equals проверяет равенство векторов
func (v Vec3) Equals(other Vec3) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z
}

// ToBlockCoords преобразует глобальные координаты ноды в координаты блока
func (v Vec3) ToBlockCoords() Vec3 {
	return Vec3{X: v.X >> 4, Y: v.Y >> 4, Z: v.Z >> 4} // Деление на 16
}

// LocalInBlock возвращает локальные координаты ноды внутри блока
func (v Vec3) LocalInBlock() Vec3 {
	return Vec3{X: v.X & 0xF, Y: v.Y & 0xF, Z: v.Z & 0xF} // Модуль 16
}
