package core

import "math"

// Spectrum sampling parameters
const (
	SpectralSamples = 32
	MinWavelength   = 380.0 // nm
	MaxWavelength   = 780.0 // nm
)

// Spectrum is a radiance or reflectance value sampled at SpectralSamples
// evenly spaced wavelengths between MinWavelength and MaxWavelength.
// Values are not clamped; emitters may exceed 1.
type Spectrum [SpectralSamples]float64

// triangular response: peak wavelength and half-width in nm
type responseCurve struct {
	center    float64
	halfWidth float64
}

func (c responseCurve) weight(wavelength float64) float64 {
	return math.Max(0, 1-math.Abs(wavelength-c.center)/c.halfWidth)
}

// Curves used to spread an RGB channel over the spectrum
var rgbToSpectrumCurves = [3]responseCurve{
	{center: 650, halfWidth: 80}, // red
	{center: 550, halfWidth: 65}, // green
	{center: 450, halfWidth: 60}, // blue
}

// Windows used to integrate the spectrum back into RGB
var spectrumToRGBCurves = [3]responseCurve{
	{center: 650, halfWidth: 75},
	{center: 550, halfWidth: 70},
	{center: 450, halfWidth: 70},
}

// Per-channel gain so that a pure primary converts back to 1
var rgbChannelGain = computeChannelGains()

func computeChannelGains() [3]float64 {
	var gains [3]float64
	for c := 0; c < 3; c++ {
		response := 0.0
		for i := 0; i < SpectralSamples; i++ {
			wl := Wavelength(i)
			response += math.Min(1, rgbToSpectrumCurves[c].weight(wl)) * spectrumToRGBCurves[c].weight(wl)
		}
		gains[c] = float64(SpectralSamples) / response
	}
	return gains
}

// Wavelength returns the wavelength in nm of sample i
func Wavelength(i int) float64 {
	return MinWavelength + (MaxWavelength-MinWavelength)*float64(i)/float64(SpectralSamples-1)
}

// NewSpectrum creates a spectrum with the same value at every wavelength
func NewSpectrum(value float64) Spectrum {
	var s Spectrum
	for i := range s {
		s[i] = value
	}
	return s
}

// SpectrumFromRGB approximates an RGB color as a spectrum.
// The conversion is lossy; ToRGB(SpectrumFromRGB(c)) is only close to c.
func SpectrumFromRGB(rgb Vec3) Spectrum {
	var s Spectrum
	for i := range s {
		wl := Wavelength(i)
		value := rgb.X*rgbToSpectrumCurves[0].weight(wl) +
			rgb.Y*rgbToSpectrumCurves[1].weight(wl) +
			rgb.Z*rgbToSpectrumCurves[2].weight(wl)
		s[i] = math.Min(1, value)
	}
	return s
}

// ToRGB integrates the spectrum into linear RGB. The result is not clamped.
func (s Spectrum) ToRGB() Vec3 {
	var rgb [3]float64
	for i, value := range s {
		wl := Wavelength(i)
		for c := 0; c < 3; c++ {
			rgb[c] += value * spectrumToRGBCurves[c].weight(wl)
		}
	}
	for c := 0; c < 3; c++ {
		rgb[c] *= rgbChannelGain[c] / float64(SpectralSamples)
	}
	return NewVec3(rgb[0], rgb[1], rgb[2])
}

// Add returns the component-wise sum of two spectra
func (s Spectrum) Add(other Spectrum) Spectrum {
	for i := range s {
		s[i] += other[i]
	}
	return s
}

// Multiply returns the spectrum scaled by a scalar
func (s Spectrum) Multiply(scalar float64) Spectrum {
	for i := range s {
		s[i] *= scalar
	}
	return s
}

// MultiplySpectrum returns the component-wise product of two spectra
func (s Spectrum) MultiplySpectrum(other Spectrum) Spectrum {
	for i := range s {
		s[i] *= other[i]
	}
	return s
}

// Divide returns the spectrum divided by a scalar
func (s Spectrum) Divide(scalar float64) Spectrum {
	return s.Multiply(1.0 / scalar)
}

// IsBlack returns true if every sample is zero
func (s Spectrum) IsBlack() bool {
	for _, v := range s {
		if v != 0 {
			return false
		}
	}
	return true
}

// Max returns the largest sample
func (s Spectrum) Max() float64 {
	m := s[0]
	for _, v := range s[1:] {
		m = math.Max(m, v)
	}
	return m
}

// Average returns the mean of all samples
func (s Spectrum) Average() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v
	}
	return sum / float64(SpectralSamples)
}
