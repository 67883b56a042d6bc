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

package main

import "flag"
import "log"
import "math"
import "path/filepath"
import "strings"
import "github.com/pjhartzell/reproject-geometry/crs"
import "github.com/pjhartzell/reproject-geometry/geomio"
import "github.com/pjhartzell/reproject-geometry/reproject"

var help bool

var tolerance float64
var precision int
var outfile string

func init() {
	flag.BoolVar(&help,"help",false,"Help!")
	flag.Float64Var(&tolerance,"t",math.NaN(),"destination geometry error tolerance, in destination CRS linear units (no densification if not given)")
	flag.IntVar(&precision,"p",reproject.DefaultPrecision,"number of decimal places in output coords")
	flag.StringVar(&outfile,"o","","file path for the reprojected geojson (default: alongside INFILE)")
}

var resolver = crs.NewResolver(crs.DefaultCacheSize)

func main() {
	flag.Parse()
	if help { flag.PrintDefaults(); return }
	if flag.NArg()!=3 {
		log.Fatalf("usage: georeproject [options] INFILE SRC_CRS DST_CRS")
	}
	infile := flag.Arg(0)
	srcStr := flag.Arg(1)
	dstStr := flag.Arg(2)

	src,err := resolver.Resolve(srcStr)
	if err!=nil {
		log.Fatalf("resolve(%s): %v",srcStr,err)
	}
	dst,err := resolver.Resolve(dstStr)
	if err!=nil {
		log.Fatalf("resolve(%s): %v",dstStr,err)
	}

	geometry,err := geomio.ReadGeometry(infile)
	if err!=nil {
		log.Fatalf("read(%s): %v",infile,err)
	}

	var tol *float64
	if !math.IsNaN(tolerance) { tol = &tolerance }

	reprojected,err := reproject.Geometry(geometry,src,dst,tol,precision)
	if err!=nil {
		log.Fatalf("reproject: %v",err)
	}

	if outfile=="" {
		outfile = strings.TrimSuffix(infile,filepath.Ext(infile))+"-reprojected.json"
	}
	if err := geomio.WriteGeometry(outfile,reprojected); err!=nil {
		log.Fatalf("write(%s): %v",outfile,err)
	}
}
