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

type EReproject uint

const (
	EBadGeometryType EReproject = iota
	EBadTolerance
	EShortLinearRings
	ENonClosedLinearRings
	EEmptyPolygon
	EZeroLengthRings
)

var errReasons = [...]string{
	"geometry must be a Polygon or a MultiPolygon",
	"tolerance must be positive when given",
	"Polygon must have at least four points in each ring",
	"geometry contains non-closed rings",
	"Polygon must have at least one ring",
	"Polygon contains zero-length rings",
}

func (e EReproject) Error() string {
	if EReproject(uint(len(errReasons)))<=e { return "???" }
	return errReasons[e]
}

func ValidateRing(r orb.Ring) error {
	if len(r) < 4 { return EShortLinearRings }
	first := r[0]
	last := r[len(r)-1]
	if first[0]!=last[0] || first[1]!=last[1] { return ENonClosedLinearRings }
	/* All points coincident: zero arc length, nothing to resample. */
	zero := true
	for _,p := range r[1:] {
		if p!=first { zero = false; break }
	}
	if zero { return EZeroLengthRings }
	return nil
}

func ValidatePolygon(p orb.Polygon) error {
	if len(p)==0 { return EEmptyPolygon }
	for _,r := range p {
		err := ValidateRing(r)
		if err!=nil { return err }
	}
	return nil
}
