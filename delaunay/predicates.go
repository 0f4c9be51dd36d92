package delaunay

import "math/big"

// orient returns the sign of the cross product (b-a)×(c-a): positive when
// a, b, c turn counter-clockwise, zero when collinear.
func orient(a, b, c Point) int {
	var l, r big.Int
	l.Mul(big.NewInt(b.X-a.X), big.NewInt(c.Y-a.Y))
	r.Mul(big.NewInt(b.Y-a.Y), big.NewInt(c.X-a.X))

	return l.Cmp(&r)
}

// inCircle returns a positive value when p lies strictly inside the
// circumcircle of the counter-clockwise triangle a, b, c, zero when p is on
// it, and a negative value otherwise.
//
//	| ax-px  ay-py  (ax-px)²+(ay-py)² |
//	| bx-px  by-py  (bx-px)²+(by-py)² |
//	| cx-px  cy-py  (cx-px)²+(cy-py)² |
func inCircle(a, b, c, p Point) int {
	adx, ady := big.NewInt(a.X-p.X), big.NewInt(a.Y-p.Y)
	bdx, bdy := big.NewInt(b.X-p.X), big.NewInt(b.Y-p.Y)
	cdx, cdy := big.NewInt(c.X-p.X), big.NewInt(c.Y-p.Y)

	al := liftSquared(adx, ady)
	bl := liftSquared(bdx, bdy)
	cl := liftSquared(cdx, cdy)

	var det, term big.Int
	det.Mul(al, cross(bdx, bdy, cdx, cdy))
	term.Mul(bl, cross(adx, ady, cdx, cdy))
	det.Sub(&det, &term)
	term.Mul(cl, cross(adx, ady, bdx, bdy))
	det.Add(&det, &term)

	return det.Sign()
}

// liftSquared returns dx²+dy².
func liftSquared(dx, dy *big.Int) *big.Int {
	var x2, y2 big.Int
	x2.Mul(dx, dx)
	y2.Mul(dy, dy)

	return x2.Add(&x2, &y2)
}

// cross returns ux*vy - vx*uy.
func cross(ux, uy, vx, vy *big.Int) *big.Int {
	var l, r big.Int
	l.Mul(ux, vy)
	r.Mul(vx, uy)

	return l.Sub(&l, &r)
}
