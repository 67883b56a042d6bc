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

import "testing"

import "github.com/paulmach/orb"
import "github.com/pjhartzell/reproject-geometry/projection"
import "github.com/stretchr/testify/require"

const sinusoidalWkt = `PROJCS["unnamed",GEOGCS["Unknown datum based upon the custom spheroid",DATUM["Not specified (based on custom spheroid)",SPHEROID["Custom spheroid",6371007.181,0]],PRIMEM["Greenwich",0],UNIT["degree",0.0174532925199433,AUTHORITY["EPSG","9122"]]],PROJECTION["Sinusoidal"],PARAMETER["longitude_of_center",0],PARAMETER["false_easting",0],PARAMETER["false_northing",0],UNIT["Meter",1],AXIS["Easting",EAST],AXIS["Northing",NORTH]]`

const geographicWkt = `GEOGCS["WGS 84",DATUM["WGS_1984",SPHEROID["WGS 84",6378137,298.257223563]],PRIMEM["Greenwich",0],UNIT["degree",0.0174532925199433]]`

func TestResolveGeographic(t *testing.T) {
	for _,s := range []string{"EPSG:4326","epsg:4269","4258"} {
		c,err := Resolve(s)
		require.NoError(t,err,s)
		require.True(t,c.IsGeographic(),s)
		require.False(t,c.IsProjected(),s)
	}
}

func TestResolveMercator(t *testing.T) {
	c,err := Resolve("EPSG:3857")
	require.NoError(t,err)
	require.True(t,c.IsProjected())
	require.Equal(t,1.0,c.MetersPerUnit)
	require.IsType(t,projection.SphereMercator{},c.Proj)

	/* Legacy aliases of the pseudo-mercator. */
	alias,err := Resolve("900913")
	require.NoError(t,err)
	require.Equal(t,"EPSG:3857",alias.Code)

	world,err := Resolve("EPSG:3395")
	require.NoError(t,err)
	require.IsType(t,projection.EllipsoidMercator{},world.Proj)
}

func TestResolveUTM(t *testing.T) {
	north,err := Resolve("EPSG:32619")
	require.NoError(t,err)
	require.True(t,north.IsProjected())
	require.Equal(t,1.0,north.MetersPerUnit)
	tm := north.Proj.(projection.TransverseMercator)
	require.InDelta(t,-69,tm.Lon0,1e-12)
	require.InDelta(t,0,tm.FalseNorthing,1e-12)

	south,err := Resolve("EPSG:32719")
	require.NoError(t,err)
	tms := south.Proj.(projection.TransverseMercator)
	require.InDelta(t,-69,tms.Lon0,1e-12)
	require.InDelta(t,10000000,tms.FalseNorthing,1e-12)
}

func TestResolveStatePlaneFeet(t *testing.T) {
	c,err := Resolve("EPSG:6525")
	require.NoError(t,err)
	require.True(t,c.IsProjected())
	require.InDelta(t,1200.0/3937.0,c.MetersPerUnit,1e-15)
}

func TestResolveInvalid(t *testing.T) {
	for _,s := range []string{"","banana","EPSG:999999","UTM:19","EPSG:banana","32600"} {
		_,err := Resolve(s)
		require.ErrorIs(t,err,EInvalidCRS,s)
	}
}

func TestResolveSinusoidalWkt(t *testing.T) {
	c,err := Resolve(sinusoidalWkt)
	require.NoError(t,err)
	require.True(t,c.IsProjected())
	require.Equal(t,1.0,c.MetersPerUnit)
	s := c.Proj.(projection.Sinusoidal)
	require.InDelta(t,6371007.181,s.R,1e-6)
	require.InDelta(t,0,s.Lon0,1e-12)
}

func TestResolveGeographicWkt(t *testing.T) {
	c,err := Resolve(geographicWkt)
	require.NoError(t,err)
	require.True(t,c.IsGeographic())
}

func TestResolveUnsupportedProjectionWkt(t *testing.T) {
	wkt := `PROJCS["bad",GEOGCS["WGS 84",DATUM["WGS_1984",SPHEROID["WGS 84",6378137,298.257223563]],PRIMEM["Greenwich",0],UNIT["degree",0.0174532925199433]],PROJECTION["Lambert_Conformal_Conic_2SP"],PARAMETER["central_meridian",-96],UNIT["metre",1]]`
	_,err := Resolve(wkt)
	require.ErrorIs(t,err,EUnsupportedProjection)
	/* Callers screening on the broad sentinel catch it too. */
	require.ErrorIs(t,err,EInvalidCRS)
}

func TestResolveMalformedWkt(t *testing.T) {
	for _,s := range []string{`PROJCS["unterminated`,`PROJCS[]`,`PROJCS["x",UNIT["metre",1]]`} {
		_,err := Resolve(s)
		require.Error(t,err,s)
	}
}

func TestUnitConversionRoundTrip(t *testing.T) {
	c,err := Resolve("EPSG:32619")
	require.NoError(t,err)
	p := orb.Point{-70.5,43.2}
	q := c.ToGeographic(c.FromGeographic(p))
	require.InDelta(t,p[0],q[0],1e-8)
	require.InDelta(t,p[1],q[1],1e-8)
}

func TestCachedResolver(t *testing.T) {
	r := NewResolver(DefaultCacheSize)

	first,err := r.Resolve(sinusoidalWkt)
	require.NoError(t,err)
	second,err := r.Resolve(sinusoidalWkt)
	require.NoError(t,err)

	/* The second hit decodes from the cache; it must behave exactly
	   like a fresh resolution. */
	require.Equal(t,first.Kind,second.Kind)
	require.Equal(t,first.MetersPerUnit,second.MetersPerUnit)
	require.Equal(t,first.Proj,second.Proj)

	p := orb.Point{-7783653.637666666,4447802.0786666664}
	a := first.ToGeographic(p)
	b := second.ToGeographic(p)
	require.Equal(t,a,b)
}

func TestCachedResolverInvalid(t *testing.T) {
	r := NewResolver(DefaultCacheSize)
	_,err := r.Resolve("nope")
	require.ErrorIs(t,err,EInvalidCRS)
	_,err = r.Resolve("nope")
	require.ErrorIs(t,err,EInvalidCRS)
}

func TestEncodeDecodeAllKinds(t *testing.T) {
	for _,s := range []string{"EPSG:4326","EPSG:3857","EPSG:3395","EPSG:32619","EPSG:6525",sinusoidalWkt} {
		c,err := Resolve(s)
		require.NoError(t,err,s)
		d,err := decodeCRS(encodeCRS(c))
		require.NoError(t,err,s)
		require.Equal(t,c,d,s)
	}
}
