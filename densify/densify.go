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

package densify

import "github.com/paulmach/orb"
import "github.com/paulmach/orb/planar"
import "fmt"

var EBadSpacing = fmt.Errorf("Error: spacing must be positive")
var EShortRing = fmt.Errorf("Error: ring must have at least two points")

/*
ByDistance resamples a closed ring at a fixed arc-length spacing.
Samples are taken at every multiple of the spacing along the ring's
cumulative arc length, and the total length is always appended as the
final sample, so the last interval may be shorter than the spacing
and the resampled ring stays closed. X and y are interpolated
independently against cumulative arc length; original vertices are
honored as interpolation knots but do not necessarily survive as
literal output points.

A ring whose total length is zero collapses to a single sample;
callers are expected to screen such rings out beforehand. The input
ring is never modified.
*/
func ByDistance(r orb.Ring, spacing float64) (orb.Ring,error) {
	if !(spacing>0) { return nil,EBadSpacing }
	if len(r)<2 { return nil,EShortRing }

	cum := make([]float64,len(r))
	for i := 1; i<len(r); i++ {
		cum[i] = cum[i-1] + planar.Distance(r[i-1],r[i])
	}
	total := cum[len(r)-1]
	if total==0 { return orb.Ring{r[0]},nil }

	out := make(orb.Ring,0,int(total/spacing)+2)

	/* Samples are strictly increasing, so the segment cursor only
	   ever moves forward. */
	seg := 1
	sample := func(d float64) orb.Point {
		for seg<len(cum)-1 && cum[seg]<d { seg++ }
		den := cum[seg]-cum[seg-1]
		if den==0 { return r[seg] }
		t := (d-cum[seg-1])/den
		if t<=0 { return r[seg-1] }
		if t>=1 { return r[seg] }
		a,b := r[seg-1],r[seg]
		return orb.Point{a[0]+(b[0]-a[0])*t, a[1]+(b[1]-a[1])*t}
	}

	for i := 0;; i++ {
		d := float64(i)*spacing
		if d>=total { break }
		out = append(out,sample(d))
	}
	out = append(out,sample(total))
	return out,nil
}
