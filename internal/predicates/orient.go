package predicates

import (
	"math/big"

	"github.com/Geode-solutions/opengeode-go/internal/geoid"
)

// ratFromFloat builds an exact big.Rat from a float64; math/big parses the
// IEEE-754 bit pattern exactly, so no precision is lost converting into
// rational arithmetic.
func ratFromFloat(f float64) *big.Rat {
	r := new(big.Rat)
	r.SetFloat64(f)
	return r
}

func sub(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(a, b) }
func mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }

// det2 computes the exact sign of | a b ; c d |.
func det2(a, b, c, d *big.Rat) Sign {
	l := mul(a, d)
	r := mul(b, c)
	return signOf(l.Cmp(r))
}

// Orient2D returns the exact sign of the signed area of triangle (a,b,c):
// Positive when a,b,c turn counterclockwise, Negative clockwise, Zero when
// colinear.
func Orient2D(a, b, c geoid.Point2D) Sign {
	ax, ay := ratFromFloat(a.X), ratFromFloat(a.Y)
	bx, by := ratFromFloat(b.X), ratFromFloat(b.Y)
	cx, cy := ratFromFloat(c.X), ratFromFloat(c.Y)
	return det2(sub(bx, ax), sub(by, ay), sub(cx, ax), sub(cy, ay))
}

// det3 computes the exact sign of the 3x3 determinant with the given rows.
func det3(m [3][3]*big.Rat) Sign {
	// cofactor expansion along the first row
	m00 := mul(m[1][1], m[2][2])
	m00.Sub(m00, mul(m[1][2], m[2][1]))
	m01 := mul(m[1][0], m[2][2])
	m01.Sub(m01, mul(m[1][2], m[2][0]))
	m02 := mul(m[1][0], m[2][1])
	m02.Sub(m02, mul(m[1][1], m[2][0]))

	total := mul(m[0][0], m00)
	total.Sub(total, mul(m[0][1], m01))
	total.Add(total, mul(m[0][2], m02))
	return signOf(total.Sign())
}

// Orient3D returns the exact sign of the signed volume of tetrahedron
// (a,b,c,d): Positive when d is below the plane abc (a,b,c appear
// clockwise when viewed from d), Negative above (a,b,c appear
// counterclockwise from d), Zero when coplanar.
func Orient3D(a, b, c, d geoid.Point3D) Sign {
	sub3 := func(p, q geoid.Point3D) [3]*big.Rat {
		return [3]*big.Rat{
			sub(ratFromFloat(p.X), ratFromFloat(q.X)),
			sub(ratFromFloat(p.Y), ratFromFloat(q.Y)),
			sub(ratFromFloat(p.Z), ratFromFloat(q.Z)),
		}
	}
	ra := sub3(a, d)
	rb := sub3(b, d)
	rc := sub3(c, d)
	return det3([3][3]*big.Rat{
		{ra[0], ra[1], ra[2]},
		{rb[0], rb[1], rb[2]},
		{rc[0], rc[1], rc[2]},
	})
}

// det4 computes the exact sign of a 4x4 determinant via cofactor expansion
// along the first row, reusing det3 cofactors.
func det4(m [4][4]*big.Rat) Sign {
	minor := func(skipCol int) [3][3]*big.Rat {
		var out [3][3]*big.Rat
		for r := 0; r < 3; r++ {
			c := 0
			for col := 0; col < 4; col++ {
				if col == skipCol {
					continue
				}
				out[r][c] = m[r+1][col]
				c++
			}
		}
		return out
	}
	detOf := func(mm [3][3]*big.Rat) *big.Rat {
		m00 := sub(mul(mm[1][1], mm[2][2]), mul(mm[1][2], mm[2][1]))
		m01 := sub(mul(mm[1][0], mm[2][2]), mul(mm[1][2], mm[2][0]))
		m02 := sub(mul(mm[1][0], mm[2][1]), mul(mm[1][1], mm[2][0]))
		total := mul(mm[0][0], m00)
		total.Sub(total, mul(mm[0][1], m01))
		total.Add(total, mul(mm[0][2], m02))
		return total
	}
	c0 := detOf(minor(0))
	c1 := detOf(minor(1))
	c2 := detOf(minor(2))
	c3 := detOf(minor(3))
	total := mul(m[0][0], c0)
	total.Sub(total, mul(m[0][1], c1))
	total.Add(total, mul(m[0][2], c2))
	total.Sub(total, mul(m[0][3], c3))
	return signOf(total.Sign())
}

// InSphere3D returns the exact sign of the in-sphere predicate for points
// a,b,c,d,e: Positive when e lies inside the sphere circumscribed by
// a,b,c,d (assuming a,b,c,d is positively oriented per Orient3D), Negative
// when outside, Zero when e lies exactly on the sphere.
func InSphere3D(a, b, c, d, e geoid.Point3D) Sign {
	row := func(p, center geoid.Point3D) [4]*big.Rat {
		dx := sub(ratFromFloat(p.X), ratFromFloat(center.X))
		dy := sub(ratFromFloat(p.Y), ratFromFloat(center.Y))
		dz := sub(ratFromFloat(p.Z), ratFromFloat(center.Z))
		sq := mul(dx, dx)
		sq.Add(sq, mul(dy, dy))
		sq.Add(sq, mul(dz, dz))
		return [4]*big.Rat{dx, dy, dz, sq}
	}
	ra := row(a, e)
	rb := row(b, e)
	rc := row(c, e)
	rd := row(d, e)
	return det4([4][4]*big.Rat{ra, rb, rc, rd})
}

// InCircle2D returns the exact sign of the in-circle predicate for points
// a,b,c,d: Positive when d lies inside the circle through a,b,c (assuming
// a,b,c positively oriented per Orient2D), Negative outside, Zero on.
func InCircle2D(a, b, c, d geoid.Point2D) Sign {
	row := func(p, center geoid.Point2D) [3]*big.Rat {
		dx := sub(ratFromFloat(p.X), ratFromFloat(center.X))
		dy := sub(ratFromFloat(p.Y), ratFromFloat(center.Y))
		sq := mul(dx, dx)
		sq.Add(sq, mul(dy, dy))
		return [3]*big.Rat{dx, dy, sq}
	}
	ra := row(a, d)
	rb := row(b, d)
	rc := row(c, d)
	return det3([3][3]*big.Rat{ra, rb, rc})
}

// Aligned3D returns Zero when a, b, c are exactly colinear in 3D (the cross
// product of (b-a) and (c-a) vanishes), Positive/Negative is not meaningful
// for colinearity and is returned as Positive for any non-zero configuration
// (callers test Aligned3D(...) == Zero).
func Aligned3D(a, b, c geoid.Point3D) Sign {
	sub3 := func(p, q geoid.Point3D) [3]*big.Rat {
		return [3]*big.Rat{
			sub(ratFromFloat(p.X), ratFromFloat(q.X)),
			sub(ratFromFloat(p.Y), ratFromFloat(q.Y)),
			sub(ratFromFloat(p.Z), ratFromFloat(q.Z)),
		}
	}
	u := sub3(b, a)
	v := sub3(c, a)
	cx := sub(mul(u[1], v[2]), mul(u[2], v[1]))
	cy := sub(mul(u[2], v[0]), mul(u[0], v[2]))
	cz := sub(mul(u[0], v[1]), mul(u[1], v[0]))
	if cx.Sign() == 0 && cy.Sign() == 0 && cz.Sign() == 0 {
		return Zero
	}
	return Positive
}

// Dot2D returns the exact sign of the dot product (b-a).(d-c).
func Dot2D(a, b, c, d geoid.Point2D) Sign {
	ux := sub(ratFromFloat(b.X), ratFromFloat(a.X))
	uy := sub(ratFromFloat(b.Y), ratFromFloat(a.Y))
	vx := sub(ratFromFloat(d.X), ratFromFloat(c.X))
	vy := sub(ratFromFloat(d.Y), ratFromFloat(c.Y))
	total := mul(ux, vx)
	total.Add(total, mul(uy, vy))
	return signOf(total.Sign())
}

// Dot3D returns the exact sign of the dot product (b-a).(d-c).
func Dot3D(a, b, c, d geoid.Point3D) Sign {
	ux := sub(ratFromFloat(b.X), ratFromFloat(a.X))
	uy := sub(ratFromFloat(b.Y), ratFromFloat(a.Y))
	uz := sub(ratFromFloat(b.Z), ratFromFloat(a.Z))
	vx := sub(ratFromFloat(d.X), ratFromFloat(c.X))
	vy := sub(ratFromFloat(d.Y), ratFromFloat(c.Y))
	vz := sub(ratFromFloat(d.Z), ratFromFloat(c.Z))
	total := mul(ux, vx)
	total.Add(total, mul(uy, vy))
	total.Add(total, mul(uz, vz))
	return signOf(total.Sign())
}
