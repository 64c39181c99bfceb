package geo_test

import (
	"testing"

	"github.com/katalvlaran/geopt/geo"
)

// BenchmarkToPlanar measures the forward projection.
func BenchmarkToPlanar(b *testing.B) {
	o, _ := geo.NewOrigin(geo.GeoPoint{Lat: -34.5952, Lon: -58.3779})
	p := geo.GeoPoint{Lat: -34.6035, Lon: -58.3809}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = geo.ToPlanar(o, p)
	}
}

// BenchmarkRoundTrip measures a full forward+inverse cycle.
func BenchmarkRoundTrip(b *testing.B) {
	o, _ := geo.NewOrigin(geo.GeoPoint{Lat: -34.5952, Lon: -58.3779})
	p := geo.GeoPoint{Lat: -34.6035, Lon: -58.3809}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		local, _ := geo.ToPlanar(o, p)
		_, _ = geo.ToGeodetic(o, local)
	}
}
