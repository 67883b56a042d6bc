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
import "github.com/paulmach/orb/simplify"
import "github.com/pjhartzell/reproject-geometry/crs"
import "github.com/pjhartzell/reproject-geometry/densify"
import "github.com/pjhartzell/reproject-geometry/transform"
import "golang.org/x/sync/errgroup"

/*
The densification spacing is sourceTolerance/SpacingDivisor. Known
renditions of this pipeline disagree on the divisor (1 vs 2); with
arc-length resampling the looser value already keeps mid-segment
distortion well inside the tolerance, so the extra transform work of
the tighter one buys nothing. Pinned by a test.
*/
const SpacingDivisor = 1.0

/* Decimal places in output coordinates if the caller gives none. */
const DefaultPrecision = 3

/*
Polygon reprojects a polygon from src to dst. With a nil tolerance
the polygon is transformed as-is at the given precision, followed by
a zero-tolerance simplification that strips exactly-redundant
(duplicate or collinear) vertices without moving the boundary. With
a tolerance, every ring is densified at the tolerance-derived
spacing before the transform, and the transformed polygon is
simplified back down at the destination tolerance. The boundary of
the result stays within about dstTol destination linear units of the
true transform of the input boundary.

Interior rings get the identical treatment as the outer ring: a hole
boundary carries the same error bound as the shell.
*/
func Polygon(p orb.Polygon, src,dst *crs.CRS, dstTol *float64, precision int) (orb.Polygon,error) {
	err := ValidatePolygon(p)
	if err!=nil { return nil,err }

	work := p
	if dstTol!=nil {
		if !(*dstTol>0) { return nil,EBadTolerance }
		srcTol,err := SourceTolerance(src,p.Bound(),dst,*dstTol)
		if err!=nil { return nil,err }
		spacing := srcTol/SpacingDivisor
		dense := make(orb.Polygon,len(p))
		for i,ring := range p {
			d,err := densify.ByDistance(ring,spacing)
			if err!=nil { return nil,err }
			dense[i] = d
		}
		work = dense
	}

	tg,err := transform.Geometry(src,dst,work,precision)
	if err!=nil { return nil,err }
	out := tg.(orb.Polygon)

	if dstTol!=nil {
		out = simplify.DouglasPeucker(*dstTol).Polygon(out)
	}
	/* Cleanup pass: tolerance zero only removes exactly-redundant
	   vertices, it never alters the shape. */
	out = simplify.DouglasPeucker(0).Polygon(out)
	return out,nil
}

/*
MultiPolygon applies Polygon to every member with identical
parameters. Members are independent, so they run concurrently;
results are written by index and the output is identical to the
sequential order. Any member failure fails the whole call with no
partial result.
*/
func MultiPolygon(mp orb.MultiPolygon, src,dst *crs.CRS, dstTol *float64, precision int) (orb.MultiPolygon,error) {
	out := make(orb.MultiPolygon,len(mp))
	var grp errgroup.Group
	for i,p := range mp {
		i,p := i,p
		grp.Go(func() error {
			r,err := Polygon(p,src,dst,dstTol,precision)
			if err!=nil { return err }
			out[i] = r
			return nil
		})
	}
	if err := grp.Wait(); err!=nil { return nil,err }
	return out,nil
}

/*
Geometry dispatches on the geometry type: exactly Polygon and
MultiPolygon are accepted, everything else fails with
EBadGeometryType.
*/
func Geometry(g orb.Geometry, src,dst *crs.CRS, dstTol *float64, precision int) (orb.Geometry,error) {
	switch v := g.(type) {
	case orb.Polygon:
		return Polygon(v,src,dst,dstTol,precision)
	case orb.MultiPolygon:
		return MultiPolygon(v,src,dst,dstTol,precision)
	}
	return nil,EBadGeometryType
}
