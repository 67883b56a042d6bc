/*
This is free and unencumbered software released into the public domain.

Anyone is free to copy, modify, publish, use, compile, sell, or
distribute this software, either in source code form or as a compiled
binary, for any purpose, commercial or non-commercial, and by any
means.

In jurisdictions that recognize copyright laws, the author or authors
of this software dedicate any and all copyright interest in the
software to the public domain. We make this dedication for the benefit
of the public at large and to the detriment of our heirs and
successors. We intend this dedication to be an overt act of
relinquishment in perpetuity of all present and future rights to this
software under copyright law.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
IN NO EVENT SHALL THE AUTHORS BE LIABLE FOR ANY CLAIM, DAMAGES OR
OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE,
ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR
OTHER DEALINGS IN THE SOFTWARE.

For more information, please refer to <http://unlicense.org/>
*/

package projection

import "github.com/paulmach/orb"
import "math"

const fromDegree = math.Pi/180.0
const fromDegree2 = math.Pi/360.0
const toDegree = 180.0/math.Pi
const piFour = math.Pi / 4
const piHalf = math.Pi / 2

/* WGS84 ellipsoid. */
const WGS84Major = 6378137.0
const WGS84InvFlattening = 298.257223563

/*
A map projection. Forward maps geographic degrees (lon,lat) onto
projected meters (x,y), Inverse maps projected meters back onto
geographic degrees. Points are taken and returned by value.
*/
type IProjection interface{
	Forward(p orb.Point) orb.Point
	Inverse(p orb.Point) orb.Point
}

func clampLat(lat,limit float64) float64 {
	return math.Min(limit,math.Max(-limit,lat))
}

func eccSq(invf float64) float64 {
	if invf==0 { return 0 } /* Sphere. */
	f := 1.0/invf
	return f*(2.0-f)
}

// LatLon

/* The identity projection: coordinates stay geographic degrees. */
type LatLon struct{}

func (LatLon) Forward(p orb.Point) orb.Point { return p }
func (LatLon) Inverse(p orb.Point) orb.Point { return p }

// SphereMercator

/* Spherical pseudo-mercator (EPSG:3857 and the 900913 alias). */
type SphereMercator struct{
	R float64
}

func (m SphereMercator) Forward(p orb.Point) orb.Point {
	lat := clampLat(p[1],85.06)
	p[0] = m.R * fromDegree * p[0]
	p[1] = m.R * math.Log(math.Tan(piFour+(lat*fromDegree2)))
	return p
}
func (m SphereMercator) Inverse(p orb.Point) orb.Point {
	p[0] = toDegree * p[0] / m.R
	p[1] = toDegree * ((2*math.Atan(math.Exp(p[1]/m.R))) - piHalf)
	return p
}

// EllipsoidMercator

/* Ellipsoidal mercator (EPSG:3395). */
type EllipsoidMercator struct{
	A float64
	InvF float64
}

func (m EllipsoidMercator) Forward(p orb.Point) orb.Point {
	p[0] = m.A * fromDegree * p[0]

	lat := clampLat(p[1],89.5)

	eccent := math.Sqrt(eccSq(m.InvF))
	phi := lat * fromDegree
	sinphi := math.Sin(phi)
	con := eccent * sinphi
	com := 0.5 * eccent
	con = math.Pow( ( (1-con)/(1+con) ) , com)
	ts := math.Tan(0.5 * (piHalf-phi))/con
	y := 0-m.A * math.Log(ts)

	p[1] = y

	return p
}

/*
Latitude from the conformal latitude via the usual trigonometric
series (Snyder 3-5). Good to well below a millimeter for e of
terrestrial ellipsoids.
*/
func (m EllipsoidMercator) Inverse(p orb.Point) orb.Point {
	e2 := eccSq(m.InvF)
	e4 := e2*e2
	e6 := e4*e2
	e8 := e4*e4

	ts := math.Exp(0-(p[1]/m.A))
	chi := piHalf - 2*math.Atan(ts)

	phi := chi +
		(e2/2 + 5*e4/24 + e6/12 + 13*e8/360) * math.Sin(2*chi) +
		(7*e4/48 + 29*e6/240 + 811*e8/11520) * math.Sin(4*chi) +
		(7*e6/120 + 81*e8/1120) * math.Sin(6*chi) +
		(4279*e8/161280) * math.Sin(8*chi)

	p[0] = toDegree * p[0] / m.A
	p[1] = toDegree * phi
	return p
}

// TransverseMercator

/*
Transverse mercator (Snyder 1987, eq. 8-9..8-25). Covers the UTM
zones and transverse-mercator state plane systems. Lat0/Lon0 are
degrees, FalseEasting/FalseNorthing meters.
*/
type TransverseMercator struct{
	A float64
	InvF float64
	Lat0 float64
	Lon0 float64
	K0 float64
	FalseEasting float64
	FalseNorthing float64
}

/* Meridional arc length from the equator (Snyder 3-21). */
func meridianArc(a,e2,phi float64) float64 {
	e4 := e2*e2
	e6 := e4*e2
	return a * (
		(1 - e2/4 - 3*e4/64 - 5*e6/256) * phi -
		(3*e2/8 + 3*e4/32 + 45*e6/1024) * math.Sin(2*phi) +
		(15*e4/256 + 45*e6/1024) * math.Sin(4*phi) -
		(35*e6/3072) * math.Sin(6*phi))
}

func (m TransverseMercator) Forward(p orb.Point) orb.Point {
	e2 := eccSq(m.InvF)
	ep2 := e2/(1-e2)

	phi := p[1] * fromDegree
	lam := (p[0]-m.Lon0) * fromDegree

	sinphi := math.Sin(phi)
	cosphi := math.Cos(phi)
	tanphi := math.Tan(phi)

	n := m.A/math.Sqrt(1-e2*sinphi*sinphi)
	t := tanphi*tanphi
	c := ep2*cosphi*cosphi
	a := lam*cosphi

	a2 := a*a
	a3 := a2*a
	a4 := a2*a2
	a5 := a4*a
	a6 := a4*a2

	mm := meridianArc(m.A,e2,phi)
	m0 := meridianArc(m.A,e2,m.Lat0*fromDegree)

	x := m.K0*n*(a + (1-t+c)*a3/6 + (5-18*t+t*t+72*c-58*ep2)*a5/120)
	y := m.K0*(mm - m0 + n*tanphi*(a2/2 + (5-t+9*c+4*c*c)*a4/24 +
		(61-58*t+t*t+600*c-330*ep2)*a6/720))

	p[0] = x + m.FalseEasting
	p[1] = y + m.FalseNorthing
	return p
}

func (m TransverseMercator) Inverse(p orb.Point) orb.Point {
	e2 := eccSq(m.InvF)
	ep2 := e2/(1-e2)

	x := p[0] - m.FalseEasting
	y := p[1] - m.FalseNorthing

	m0 := meridianArc(m.A,e2,m.Lat0*fromDegree)
	mm := m0 + y/m.K0

	se := math.Sqrt(1-e2)
	e1 := (1-se)/(1+se)
	e12 := e1*e1
	e13 := e12*e1
	e14 := e12*e12

	mu := mm/(m.A*(1 - e2/4 - 3*e2*e2/64 - 5*e2*e2*e2/256))

	/* Footpoint latitude (Snyder 3-26). */
	phi1 := mu +
		(3*e1/2 - 27*e13/32) * math.Sin(2*mu) +
		(21*e12/16 - 55*e14/32) * math.Sin(4*mu) +
		(151*e13/96) * math.Sin(6*mu) +
		(1097*e14/512) * math.Sin(8*mu)

	sinphi := math.Sin(phi1)
	cosphi := math.Cos(phi1)
	tanphi := math.Tan(phi1)

	c1 := ep2*cosphi*cosphi
	t1 := tanphi*tanphi
	sn := 1-e2*sinphi*sinphi
	n1 := m.A/math.Sqrt(sn)
	r1 := m.A*(1-e2)/(sn*math.Sqrt(sn))
	d := x/(n1*m.K0)

	d2 := d*d
	d3 := d2*d
	d4 := d2*d2
	d5 := d4*d
	d6 := d4*d2

	phi := phi1 - (n1*tanphi/r1)*(d2/2 -
		(5+3*t1+10*c1-4*c1*c1-9*ep2)*d4/24 +
		(61+90*t1+298*c1+45*t1*t1-252*ep2-3*c1*c1)*d6/720)
	lam := (d - (1+2*t1+c1)*d3/6 +
		(5-2*c1+28*t1-3*c1*c1+8*ep2+24*t1*t1)*d5/120)/cosphi

	p[0] = m.Lon0 + toDegree*lam
	p[1] = toDegree*phi
	return p
}

// Sinusoidal

/* Spherical sinusoidal (the MODIS/VIIRS tiling projection). */
type Sinusoidal struct{
	R float64
	Lon0 float64
}

func (s Sinusoidal) Forward(p orb.Point) orb.Point {
	phi := p[1] * fromDegree
	lam := (p[0]-s.Lon0) * fromDegree
	p[0] = s.R * lam * math.Cos(phi)
	p[1] = s.R * phi
	return p
}
func (s Sinusoidal) Inverse(p orb.Point) orb.Point {
	phi := p[1]/s.R
	cosphi := math.Cos(phi)
	if cosphi==0 { /* Pole: every x maps to the center meridian. */
		p[0] = s.Lon0
	} else {
		p[0] = s.Lon0 + toDegree*p[0]/(s.R*cosphi)
	}
	p[1] = toDegree*phi
	return p
}

/* The UTM grid. Zone is 1..60, FalseNorthing 10000000 on the south side. */
func UTM(zone int, north bool) TransverseMercator {
	fn := 0.0
	if !north { fn = 10000000.0 }
	return TransverseMercator{
		A: WGS84Major,
		InvF: WGS84InvFlattening,
		Lat0: 0,
		Lon0: float64(zone*6 - 183),
		K0: 0.9996,
		FalseEasting: 500000,
		FalseNorthing: fn,
	}
}
