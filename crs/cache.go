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

import "github.com/coocood/freecache"
import "github.com/pjhartzell/reproject-geometry/projection"
import "bytes"
import "encoding/binary"
import "fmt"

/*
Resolving WKT is the expensive path, and batch callers resolve the
same CRS pair over and over. The Resolver front-ends Resolve with a
freecache keyed by the raw CRS string; values are binary-encoded
descriptors, so cached entries never share mutable state.
*/

var ECorruptEntry = fmt.Errorf("Error: Corrupt cache entry")

const DefaultCacheSize = 8<<20 /* freecache caps entries at 1/1024 of this. */

const (
	tagNone byte = iota
	tagLatLon
	tagSphereMercator
	tagEllipsoidMercator
	tagTransverseMercator
	tagSinusoidal
)

type Resolver struct{
	cache *freecache.Cache
}

func NewResolver(size int) *Resolver {
	return &Resolver{cache: freecache.NewCache(size)}
}

func (r *Resolver) Resolve(s string) (*CRS,error) {
	key := []byte(s)
	if b,err := r.cache.Get(key); err==nil {
		if c,err := decodeCRS(b); err==nil { return c,nil }
	}
	c,err := Resolve(s)
	if err!=nil { return nil,err }
	r.cache.Set(key,encodeCRS(c),0)
	return c,nil
}

func putFloats(buf *bytes.Buffer, fs ...float64) {
	for _,f := range fs { binary.Write(buf,binary.BigEndian,f) }
}

func encodeCRS(c *CRS) []byte {
	buf := new(bytes.Buffer)
	buf.WriteByte(byte(c.Kind))
	putFloats(buf,c.MetersPerUnit)
	switch p := c.Proj.(type) {
	case nil:
		buf.WriteByte(tagNone)
	case projection.LatLon:
		buf.WriteByte(tagLatLon)
	case projection.SphereMercator:
		buf.WriteByte(tagSphereMercator)
		putFloats(buf,p.R)
	case projection.EllipsoidMercator:
		buf.WriteByte(tagEllipsoidMercator)
		putFloats(buf,p.A,p.InvF)
	case projection.TransverseMercator:
		buf.WriteByte(tagTransverseMercator)
		putFloats(buf,p.A,p.InvF,p.Lat0,p.Lon0,p.K0,p.FalseEasting,p.FalseNorthing)
	case projection.Sinusoidal:
		buf.WriteByte(tagSinusoidal)
		putFloats(buf,p.R,p.Lon0)
	default:
		buf.WriteByte(tagNone)
	}
	buf.WriteString(c.Code)
	return buf.Bytes()
}

func getFloats(buf *bytes.Buffer, fs ...*float64) error {
	for _,f := range fs {
		if err := binary.Read(buf,binary.BigEndian,f); err!=nil { return ECorruptEntry }
	}
	return nil
}

func decodeCRS(b []byte) (*CRS,error) {
	buf := bytes.NewBuffer(b)
	kind,err := buf.ReadByte()
	if err!=nil { return nil,ECorruptEntry }
	c := &CRS{Kind: Kind(kind)}
	if err := getFloats(buf,&c.MetersPerUnit); err!=nil { return nil,err }
	tag,err := buf.ReadByte()
	if err!=nil { return nil,ECorruptEntry }
	switch tag {
	case tagNone:
	case tagLatLon:
		c.Proj = projection.LatLon{}
	case tagSphereMercator:
		var p projection.SphereMercator
		if err := getFloats(buf,&p.R); err!=nil { return nil,err }
		c.Proj = p
	case tagEllipsoidMercator:
		var p projection.EllipsoidMercator
		if err := getFloats(buf,&p.A,&p.InvF); err!=nil { return nil,err }
		c.Proj = p
	case tagTransverseMercator:
		var p projection.TransverseMercator
		if err := getFloats(buf,&p.A,&p.InvF,&p.Lat0,&p.Lon0,&p.K0,&p.FalseEasting,&p.FalseNorthing); err!=nil { return nil,err }
		c.Proj = p
	case tagSinusoidal:
		var p projection.Sinusoidal
		if err := getFloats(buf,&p.R,&p.Lon0); err!=nil { return nil,err }
		c.Proj = p
	default:
		return nil,ECorruptEntry
	}
	c.Code = buf.String()
	return c,nil
}
