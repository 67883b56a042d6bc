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

import "github.com/pjhartzell/reproject-geometry/projection"
import "strconv"
import "strings"

/*
A minimal well-known-text reader. WKT is a tree of NAME[item,...]
nodes whose items are quoted strings, numbers, bare keywords (EAST,
NORTH, ...) or nested nodes. We keep string/number items as values
and recurse into nested nodes; that is enough to pull the spheroid,
projection, parameters and unit out of a PROJCS/GEOGCS.
*/

type wktNode struct{
	name string
	values []string
	children []*wktNode
}

func (n *wktNode) child(name string) *wktNode {
	for _,c := range n.children {
		if strings.EqualFold(c.name,name) { return c }
	}
	return nil
}
func (n *wktNode) find(name string) *wktNode {
	if c := n.child(name); c!=nil { return c }
	for _,c := range n.children {
		if f := c.find(name); f!=nil { return f }
	}
	return nil
}
func (n *wktNode) number(i int) (float64,bool) {
	if i>=len(n.values) { return 0,false }
	f,err := strconv.ParseFloat(n.values[i],64)
	if err!=nil { return 0,false }
	return f,true
}

type wktScanner struct{
	s string
	i int
}

func isIdentByte(c byte) bool {
	return ('A'<=c && c<='Z') || ('a'<=c && c<='z') || ('0'<=c && c<='9') || c=='_'
}
func isOpen(c byte) bool { return c=='[' || c=='(' }
func isClose(c byte) bool { return c==']' || c==')' }

func (w *wktScanner) ws() {
	for w.i<len(w.s) {
		switch w.s[w.i] {
		case ' ','\t','\r','\n': w.i++
		default: return
		}
	}
}
func (w *wktScanner) peek() byte {
	if w.i>=len(w.s) { return 0 }
	return w.s[w.i]
}
func (w *wktScanner) ident() string {
	start := w.i
	for w.i<len(w.s) && isIdentByte(w.s[w.i]) { w.i++ }
	return w.s[start:w.i]
}
func (w *wktScanner) quoted() (string,bool) {
	w.i++ /* opening quote */
	start := w.i
	for w.i<len(w.s) {
		if w.s[w.i]=='"' {
			v := w.s[start:w.i]
			w.i++
			return v,true
		}
		w.i++
	}
	return "",false
}
func (w *wktScanner) bare() string {
	start := w.i
	for w.i<len(w.s) {
		c := w.s[w.i]
		if c==',' || isClose(c) { break }
		w.i++
	}
	return strings.TrimSpace(w.s[start:w.i])
}

func (w *wktScanner) node() (*wktNode,bool) {
	w.ws()
	name := w.ident()
	if name=="" { return nil,false }
	w.ws()
	if !isOpen(w.peek()) { return nil,false }
	w.i++
	n := &wktNode{name: name}
	for {
		w.ws()
		c := w.peek()
		switch {
		case c==0:
			return nil,false
		case c=='"':
			v,ok := w.quoted()
			if !ok { return nil,false }
			n.values = append(n.values,v)
		case isIdentByte(c) && !('0'<=c && c<='9'):
			save := w.i
			id := w.ident()
			w.ws()
			if isOpen(w.peek()) {
				w.i = save
				ch,ok := w.node()
				if !ok { return nil,false }
				n.children = append(n.children,ch)
			} else {
				n.values = append(n.values,id) /* Bare keyword, e.g. EAST. */
			}
		default:
			n.values = append(n.values,w.bare())
		}
		w.ws()
		switch {
		case w.peek()==',':
			w.i++
		case isClose(w.peek()):
			w.i++
			return n,true
		default:
			return nil,false
		}
	}
}

func parseWkt(s string) (*wktNode,bool) {
	w := &wktScanner{s: s}
	n,ok := w.node()
	if !ok { return nil,false }
	w.ws()
	if w.i!=len(w.s) { return nil,false }
	return n,true
}

func wktParams(root *wktNode) map[string]float64 {
	m := make(map[string]float64)
	for _,c := range root.children {
		if !strings.EqualFold(c.name,"PARAMETER") { continue }
		if len(c.values)<2 { continue }
		f,err := strconv.ParseFloat(c.values[1],64)
		if err!=nil { continue }
		m[strings.ToLower(c.values[0])] = f
	}
	return m
}

func param(m map[string]float64, name string, dflt float64) float64 {
	if v,ok := m[name]; ok { return v }
	return dflt
}

func resolveWkt(s string) (*CRS,error) {
	root,ok := parseWkt(s)
	if !ok { return nil,EInvalidCRS }

	if strings.EqualFold(root.name,"GEOGCS") {
		return &CRS{Code: "WKT", Kind: Geographic},nil
	}
	if !strings.EqualFold(root.name,"PROJCS") { return nil,EInvalidCRS }

	sph := root.find("SPHEROID")
	if sph==nil { return nil,EInvalidCRS }
	a,ok1 := sph.number(1)
	invf,ok2 := sph.number(2)
	if !ok1 || !ok2 || a<=0 { return nil,EInvalidCRS }

	projNode := root.child("PROJECTION")
	if projNode==nil || len(projNode.values)==0 { return nil,EInvalidCRS }

	/* The PROJCS-level UNIT carries the linear-unit scale factor;
	   the one nested in GEOGCS is angular and must not be picked. */
	mpu := 1.0
	if u := root.child("UNIT"); u!=nil {
		if f,ok := u.number(1); ok && f>0 { mpu = f }
	}

	params := wktParams(root)
	cm := param(params,"central_meridian",param(params,"longitude_of_center",0))

	var proj projection.IProjection
	switch strings.ToLower(projNode.values[0]) {
	case "sinusoidal":
		proj = projection.Sinusoidal{R: a, Lon0: cm}
	case "transverse_mercator":
		proj = projection.TransverseMercator{
			A: a,
			InvF: invf,
			Lat0: param(params,"latitude_of_origin",0),
			Lon0: cm,
			K0: param(params,"scale_factor",1),
			FalseEasting: param(params,"false_easting",0)*mpu,
			FalseNorthing: param(params,"false_northing",0)*mpu,
		}
	case "mercator_1sp","mercator":
		if invf==0 {
			proj = projection.SphereMercator{R: a}
		} else {
			proj = projection.EllipsoidMercator{A: a, InvF: invf}
		}
	default:
		return nil,EUnsupportedProjection
	}
	return &CRS{Code: "WKT", Kind: Projected, MetersPerUnit: mpu, Proj: proj},nil
}
