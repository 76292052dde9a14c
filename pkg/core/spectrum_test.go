package core

import (
	"math"
	"testing"
)

func TestSpectrum_RoundTripPrimaries(t *testing.T) {
	// The conversion is approximate; this is the documented tolerance.
	const tolerance = 0.15

	tests := []struct {
		name string
		rgb  Vec3
	}{
		{"red", NewVec3(1, 0, 0)},
		{"green", NewVec3(0, 1, 0)},
		{"blue", NewVec3(0, 0, 1)},
		{"white", NewVec3(1, 1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SpectrumFromRGB(tt.rgb).ToRGB()
			if math.Abs(result.X-tt.rgb.X) > tolerance ||
				math.Abs(result.Y-tt.rgb.Y) > tolerance ||
				math.Abs(result.Z-tt.rgb.Z) > tolerance {
				t.Errorf("Round trip of %v gave %v (tolerance %.2f)", tt.rgb, result, tolerance)
			}
		})
	}
}

func TestSpectrum_FromRGBClampsSamples(t *testing.T) {
	s := SpectrumFromRGB(NewVec3(5, 5, 5))
	for i, v := range s {
		if v > 1 {
			t.Errorf("Sample %d = %f exceeds 1", i, v)
		}
	}
}

func TestSpectrum_ToRGBDoesNotClamp(t *testing.T) {
	// Emitters are brighter than 1 and must stay distinguishable
	bright := SpectrumFromRGB(NewVec3(1, 1, 1)).Multiply(4)
	rgb := bright.ToRGB()
	if rgb.X <= 1 || rgb.Y <= 1 || rgb.Z <= 1 {
		t.Errorf("Expected unclamped RGB above 1, got %v", rgb)
	}
}

func TestSpectrum_Arithmetic(t *testing.T) {
	a := NewSpectrum(2)
	b := NewSpectrum(0.5)

	tests := []struct {
		name     string
		result   Spectrum
		expected float64
	}{
		{"add", a.Add(b), 2.5},
		{"multiply scalar", a.Multiply(3), 6},
		{"multiply spectrum", a.MultiplySpectrum(b), 1},
		{"divide", a.Divide(4), 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.result) != SpectralSamples {
				t.Fatalf("Expected %d samples, got %d", SpectralSamples, len(tt.result))
			}
			for i, v := range tt.result {
				if math.Abs(v-tt.expected) > 1e-12 {
					t.Errorf("Sample %d: expected %f, got %f", i, tt.expected, v)
				}
			}
		})
	}

	// Operands must not be modified
	if a[0] != 2 || b[0] != 0.5 {
		t.Errorf("Arithmetic mutated its operands: a[0]=%f b[0]=%f", a[0], b[0])
	}
}

func TestSpectrum_Wavelengths(t *testing.T) {
	if Wavelength(0) != MinWavelength {
		t.Errorf("Expected first band at %f nm, got %f", MinWavelength, Wavelength(0))
	}
	if math.Abs(Wavelength(SpectralSamples-1)-MaxWavelength) > 1e-9 {
		t.Errorf("Expected last band at %f nm, got %f", MaxWavelength, Wavelength(SpectralSamples-1))
	}
}

func TestSpectrum_BlackAndMax(t *testing.T) {
	var zero Spectrum
	if !zero.IsBlack() {
		t.Error("Expected zero spectrum to be black")
	}

	s := NewSpectrum(0.25)
	s[7] = 3
	if s.IsBlack() {
		t.Error("Expected non-zero spectrum not to be black")
	}
	if s.Max() != 3 {
		t.Errorf("Expected max 3, got %f", s.Max())
	}
}
