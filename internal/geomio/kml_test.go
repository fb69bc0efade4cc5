package geomio_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gospace/geom"
	"gospace/internal/geomio"
)

func TestLoadKML(t *testing.T) {
	p := writeFile(t, "pts.kml", `<?xml version="1.0" encoding="UTF-8"?>
<kml xmlns="http://www.opengis.net/kml/2.2">
  <Document>
    <Placemark><name>a</name><Point><coordinates>30,10,250</coordinates></Point></Placemark>
    <Placemark><name>b</name><Point><coordinates>-3.7,40.4</coordinates></Point></Placemark>
    <Placemark><name>nopoint</name></Placemark>
  </Document>
</kml>`)
	d, err := geomio.LoadKML(p)
	require.NoError(t, err)
	require.Len(t, d.Points, 2)
	assert.Equal(t, geom.Pt(30.0, 10.0), d.Points[0])
	assert.Equal(t, geom.Pt(-3.7, 40.4), d.Points[1])
}

func TestLoadKMLFlatPlacemarks(t *testing.T) {
	p := writeFile(t, "flat.kml", `<kml><Placemark><Point><coordinates>1,2</coordinates></Point></Placemark></kml>`)
	d, err := geomio.LoadKML(p)
	require.NoError(t, err)
	require.Len(t, d.Points, 1)
	assert.Equal(t, geom.Pt(1.0, 2.0), d.Points[0])
}

func TestLoadKMLNoPoints(t *testing.T) {
	p := writeFile(t, "none.kml", `<kml><Document></Document></kml>`)
	_, err := geomio.LoadKML(p)
	assert.EqualError(t, err, "kml: no points found")
}
