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

package transform

import "github.com/paulmach/orb"
import "github.com/pjhartzell/reproject-geometry/crs"
import "fmt"
import "math"

var ETransform = fmt.Errorf("Error: Transform failed")
var EGeometryType = fmt.Errorf("Error: Unsupported geometry type")
var ENoPath = fmt.Errorf("Error: No transform path between CRS pair")

/* Edge samples taken when transforming a bounding box. Curved
   projections bow box edges outward; corners alone would clip. */
const boundSamples = 21

func finite(p orb.Point) bool {
	return !(math.IsNaN(p[0]) || math.IsInf(p[0],0) || math.IsNaN(p[1]) || math.IsInf(p[1],0))
}

func hasPath(c *crs.CRS) bool {
	return c.IsGeographic() || c.Proj!=nil
}

/* Point maps a single coordinate from src CRS units to dst CRS units. */
func Point(src,dst *crs.CRS, p orb.Point) (orb.Point,error) {
	if !hasPath(src) || !hasPath(dst) { return orb.Point{},ENoPath }
	if !finite(p) { return orb.Point{},ETransform }
	q := dst.FromGeographic(src.ToGeographic(p))
	if !finite(q) { return orb.Point{},ETransform }
	return q,nil
}

func lerp(a,b,t float64) float64 { return a + (b-a)*t }

/* Bound transforms a bounding box by sampling along all four edges
   and taking the envelope of the transformed samples. */
func Bound(src,dst *crs.CRS, b orb.Bound) (orb.Bound,error) {
	var out orb.Bound
	first := true
	for i := 0; i<boundSamples; i++ {
		t := float64(i)/float64(boundSamples-1)
		x := lerp(b.Min[0],b.Max[0],t)
		y := lerp(b.Min[1],b.Max[1],t)
		edge := [4]orb.Point{
			{x,b.Min[1]},
			{x,b.Max[1]},
			{b.Min[0],y},
			{b.Max[0],y},
		}
		for _,p := range edge {
			q,err := Point(src,dst,p)
			if err!=nil { return orb.Bound{},err }
			if first {
				out = orb.Bound{Min: q, Max: q}
				first = false
			} else {
				out = out.Extend(q)
			}
		}
	}
	return out,nil
}

func roundTo(p orb.Point, scale float64) orb.Point {
	if scale<=0 { return p }
	p[0] = math.Round(p[0]*scale)/scale
	p[1] = math.Round(p[1]*scale)/scale
	return p
}

func ring(src,dst *crs.CRS, r orb.Ring, scale float64) (orb.Ring,error) {
	out := make(orb.Ring,len(r))
	for i,p := range r {
		q,err := Point(src,dst,p)
		if err!=nil { return nil,err }
		out[i] = roundTo(q,scale)
	}
	return out,nil
}

func polygon(src,dst *crs.CRS, p orb.Polygon, scale float64) (orb.Polygon,error) {
	out := make(orb.Polygon,len(p))
	for i,r := range p {
		t,err := ring(src,dst,r,scale)
		if err!=nil { return nil,err }
		out[i] = t
	}
	return out,nil
}

/*
Geometry transforms a Polygon, MultiPolygon or Ring from src to dst,
rounding output coordinates to precision decimal places. A negative
precision leaves coordinates unrounded. Inputs are never mutated.
*/
func Geometry(src,dst *crs.CRS, g orb.Geometry, precision int) (orb.Geometry,error) {
	scale := 0.0
	if precision>=0 { scale = math.Pow10(precision) }
	switch v := g.(type) {
	case orb.Ring:
		return ring(src,dst,v,scale)
	case orb.Polygon:
		return polygon(src,dst,v,scale)
	case orb.MultiPolygon:
		out := make(orb.MultiPolygon,len(v))
		for i,p := range v {
			t,err := polygon(src,dst,p,scale)
			if err!=nil { return nil,err }
			out[i] = t
		}
		return out,nil
	}
	return nil,EGeometryType
}
