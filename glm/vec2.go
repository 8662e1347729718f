package glm

type Vec2[T numeric] [2]T

// Mul multiplies component wise
func (lhs Vec2[T]) Mul(rhs Vec2[T]) Vec2[T] {
	return Vec2[T]{
		lhs[0] * rhs[0],
		lhs[1] * rhs[1],
	}
}

// Convert casts each component to another numeric type. Converting
// floats to integers truncates toward zero.
func Convert[R, T numeric](v Vec2[T]) Vec2[R] {
	return Vec2[R]{R(v[0]), R(v[1])}
}
