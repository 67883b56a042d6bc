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

package reproject

import "github.com/paulmach/orb"
import "github.com/pjhartzell/reproject-geometry/crs"
import "github.com/pjhartzell/reproject-geometry/transform"
import "math"

/* Ground distance of one degree at the equator, meters. */
const equatorMetersPerDegree = 111320.0

const degToRad = math.Pi/180.0

/*
Longitudinal ground distance shrinks with latitude, so converting
between angular and linear units uses the mid-latitude of the
bounding box under a spherical-Earth approximation.
*/
func metersPerDegree(midLatitude float64) float64 {
	return equatorMetersPerDegree * math.Cos(midLatitude*degToRad)
}

func midLatitude(b orb.Bound) float64 {
	return (b.Min[1]+b.Max[1])/2
}

/*
SourceTolerance converts a tolerance expressed in the destination
CRS linear unit into the equivalent distance in the source CRS
linear unit, evaluated at the geometry's bounding box. Boxes that
straddle the anti-meridian or a pole are not special-cased.
*/
func SourceTolerance(src *crs.CRS, bbox orb.Bound, dst *crs.CRS, dstTol float64) (float64,error) {
	if !(dstTol>0) { return 0,EBadTolerance }
	switch {
	case src.IsGeographic() && dst.IsGeographic():
		/* Both angular: no distance-unit conversion by design. */
		return dstTol,nil
	case src.IsProjected() && dst.IsProjected():
		return (dst.MetersPerUnit/src.MetersPerUnit)*dstTol,nil
	case src.IsProjected():
		dstBox,err := transform.Bound(src,dst,bbox)
		if err!=nil { return 0,err }
		tolMeters := metersPerDegree(midLatitude(dstBox))*dstTol
		return tolMeters/src.MetersPerUnit,nil
	default:
		/* Source already geographic: its own box carries the latitude. */
		tolMeters := dst.MetersPerUnit*dstTol
		return tolMeters/metersPerDegree(midLatitude(bbox)),nil
	}
}
