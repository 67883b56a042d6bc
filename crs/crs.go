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

package crs

import "github.com/paulmach/orb"
import "github.com/pjhartzell/reproject-geometry/projection"
import "fmt"
import "strconv"
import "strings"

var EInvalidCRS = fmt.Errorf("Error: Invalid CRS")

/* An unsupported projection is one flavor of invalid CRS; matching
   either sentinel works. */
var EUnsupportedProjection = fmt.Errorf("%w: Unsupported projection",EInvalidCRS)

type Kind uint
const (
	Geographic Kind = iota
	Projected
)

/* One international foot resp. one U.S. survey foot, in meters. */
const IntlFoot = 0.3048
const USSurveyFoot = 1200.0/3937.0

/*
A resolved coordinate reference system. Resolved once per call and
immutable afterwards. MetersPerUnit is the linear-unit scale factor
of a projected CRS; it carries no meaning for a geographic CRS whose
unit is angular.
*/
type CRS struct{
	Code string
	Kind Kind
	MetersPerUnit float64
	Proj projection.IProjection
}

func (c *CRS) IsGeographic() bool { return c.Kind==Geographic }
func (c *CRS) IsProjected() bool { return c.Kind==Projected }

/* CRS-unit coordinates to geographic degrees. */
func (c *CRS) ToGeographic(p orb.Point) orb.Point {
	if c.Kind==Geographic { return p }
	p[0] *= c.MetersPerUnit
	p[1] *= c.MetersPerUnit
	return c.Proj.Inverse(p)
}

/* Geographic degrees to CRS-unit coordinates. */
func (c *CRS) FromGeographic(p orb.Point) orb.Point {
	if c.Kind==Geographic { return p }
	p = c.Proj.Forward(p)
	p[0] /= c.MetersPerUnit
	p[1] /= c.MetersPerUnit
	return p
}

/*
Resolve parses a CRS string: "EPSG:<code>", a bare numeric code, or
well-known text (PROJCS/GEOGCS). Unknown codes and unparseable text
fail with EInvalidCRS.
*/
func Resolve(s string) (*CRS,error) {
	t := strings.TrimSpace(s)
	u := strings.ToUpper(t)
	if strings.HasPrefix(u,"PROJCS") || strings.HasPrefix(u,"GEOGCS") {
		return resolveWkt(t)
	}
	code := t
	if i := strings.IndexByte(t,':'); i>=0 {
		if !strings.EqualFold(t[:i],"EPSG") { return nil,EInvalidCRS }
		code = t[i+1:]
	}
	n,err := strconv.Atoi(code)
	if err!=nil { return nil,EInvalidCRS }
	return resolveEpsg(n)
}

func geographic(code int) *CRS {
	return &CRS{Code: fmt.Sprintf("EPSG:%d",code), Kind: Geographic}
}
func projected(code int, mpu float64, p projection.IProjection) *CRS {
	return &CRS{Code: fmt.Sprintf("EPSG:%d",code), Kind: Projected, MetersPerUnit: mpu, Proj: p}
}

func resolveEpsg(code int) (*CRS,error) {
	switch code {
	case 4326, 4269, 4258:
		/* WGS84, NAD83, ETRS89. Treated as one geographic frame;
		   datum shifts between them are below this tool's accuracy. */
		return geographic(code),nil
	case 900913, 3785:
		code = 3857
		fallthrough
	case 3857:
		return projected(code,1,projection.SphereMercator{R: projection.WGS84Major}),nil
	case 3395:
		return projected(code,1,projection.EllipsoidMercator{
			A: projection.WGS84Major,
			InvF: projection.WGS84InvFlattening,
		}),nil
	case 6525:
		/* NAD83(2011) / New Hampshire, U.S. survey feet. */
		return projected(code,USSurveyFoot,projection.TransverseMercator{
			A: projection.WGS84Major,
			InvF: projection.WGS84InvFlattening,
			Lat0: 42.5,
			Lon0: -(71.0 + 40.0/60.0),
			K0: 0.999966667,
			FalseEasting: 300000,
			FalseNorthing: 0,
		}),nil
	}
	if 32601<=code && code<=32660 {
		return projected(code,1,projection.UTM(code-32600,true)),nil
	}
	if 32701<=code && code<=32760 {
		return projected(code,1,projection.UTM(code-32700,false)),nil
	}
	return nil,EInvalidCRS
}
