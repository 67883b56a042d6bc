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

import "path/filepath"
import "testing"

import "github.com/paulmach/orb"
import "github.com/stretchr/testify/require"

const polygonJson = `{"type":"Polygon","coordinates":[[[0,0],[2,0],[2,1],[0,1],[0,0]]]}`

const multiPolygonJson = `{"type":"MultiPolygon","coordinates":[[[[0,0],[1,0],[1,1],[0,1],[0,0]]],[[[5,5],[6,5],[6,6],[5,6],[5,5]]]]}`

const featureJson = `{"type":"Feature","geometry":{"type":"Polygon","coordinates":[[[0,0],[1,0],[1,1],[0,1],[0,0]]]},"properties":{}}`

func TestUnmarshalPolygon(t *testing.T) {
	g,err := UnmarshalGeometry([]byte(polygonJson))
	require.NoError(t,err)
	p,ok := g.(orb.Polygon)
	require.True(t,ok)
	require.Len(t,p,1)
	require.Len(t,p[0],5)
	require.Equal(t,orb.Point{2,1},p[0][2])
}

func TestUnmarshalMultiPolygon(t *testing.T) {
	g,err := UnmarshalGeometry([]byte(multiPolygonJson))
	require.NoError(t,err)
	mp,ok := g.(orb.MultiPolygon)
	require.True(t,ok)
	require.Len(t,mp,2)
}

func TestUnmarshalRejectsNonGeometry(t *testing.T) {
	for _,s := range []string{featureJson,`{"type":"FeatureCollection","features":[]}`,`{"coordinates":[]}`,`not json`,``} {
		_,err := UnmarshalGeometry([]byte(s))
		require.ErrorIs(t,err,ENotGeometry,s)
	}
}

func TestUnmarshalErrorKeepsCause(t *testing.T) {
	_,err := UnmarshalGeometry([]byte(`{"type":"Polygon","coordinates":`))
	require.ErrorIs(t,err,ENotGeometry)
	/* The decoder's detail is appended, not swallowed. */
	require.NotEqual(t,ENotGeometry.Error(),err.Error())
}

func TestMarshalRoundTrip(t *testing.T) {
	in := orb.Polygon{orb.Ring{{-71.5,43.0},{-71.0,43.0},{-71.0,43.5},{-71.5,43.5},{-71.5,43.0}}}
	b,err := MarshalGeometry(in)
	require.NoError(t,err)
	out,err := UnmarshalGeometry(b)
	require.NoError(t,err)
	require.Equal(t,orb.Geometry(in),out)
}

func TestReadWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir,"footprint.json")

	in := orb.MultiPolygon{
		{orb.Ring{{0,0},{1,0},{1,1},{0,1},{0,0}}},
		{orb.Ring{{5,5},{6,5},{6,6},{5,6},{5,5}}},
	}
	require.NoError(t,WriteGeometry(path,in))

	out,err := ReadGeometry(path)
	require.NoError(t,err)
	require.Equal(t,orb.Geometry(in),out)
}

func TestReadMissingFile(t *testing.T) {
	_,err := ReadGeometry(filepath.Join(t.TempDir(),"nope.json"))
	require.Error(t,err)
}
