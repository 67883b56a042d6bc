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

package geomio

import "github.com/paulmach/orb"
import "github.com/paulmach/orb/geojson"
import jsoniter "github.com/json-iterator/go"
import "fmt"
import "os"

func init() {
	/* Route orb's geojson codec through jsoniter. */
	c := jsoniter.ConfigCompatibleWithStandardLibrary
	geojson.CustomJSONMarshaler = c
	geojson.CustomJSONUnmarshaler = c
}

var ENotGeometry = fmt.Errorf("Error: not a GeoJSON geometry object")

/* UnmarshalGeometry decodes a bare GeoJSON geometry object. Features
   and feature collections are not geometries and are rejected. The
   decoder's own error rides along so syntax errors stay tellable
   apart from wrong object types. */
func UnmarshalGeometry(b []byte) (orb.Geometry,error) {
	g,err := geojson.UnmarshalGeometry(b)
	if err!=nil { return nil,fmt.Errorf("%w: %v",ENotGeometry,err) }
	return g.Geometry(),nil
}

func MarshalGeometry(g orb.Geometry) ([]byte,error) {
	return geojson.NewGeometry(g).MarshalJSON()
}

func ReadGeometry(path string) (orb.Geometry,error) {
	b,err := os.ReadFile(path)
	if err!=nil { return nil,err }
	return UnmarshalGeometry(b)
}

func WriteGeometry(path string, g orb.Geometry) error {
	b,err := MarshalGeometry(g)
	if err!=nil { return err }
	return os.WriteFile(path,b,0666)
}
