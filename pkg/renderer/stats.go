package renderer

import (
	"image"
	"time"

	"github.com/df07/go-spectral-pathtracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels    int           // Total number of pixels rendered
	TotalSamples   int           // Total number of samples taken
	AverageSamples float64       // Average samples per pixel
	Tiles          int           // Number of tiles rendered
	Workers        int           // Number of workers used
	Duration       time.Duration // Wall time of the frame
}

// merge adds the counts of a tile to the frame totals
func (s *RenderStats) merge(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.TotalSamples += other.TotalSamples
	s.Tiles += other.Tiles
}

// finalize calculates averages after all tiles are merged
func (s *RenderStats) finalize() {
	if s.TotalPixels > 0 {
		s.AverageSamples = float64(s.TotalSamples) / float64(s.TotalPixels)
	}
}

// PixelStats tracks sampling statistics for a single pixel
type PixelStats struct {
	SpectrumAccum    core.Spectrum // Spectral accumulator for final result
	LuminanceAccum   float64       // Luminance accumulator
	LuminanceSqAccum float64       // Luminance squared for variance
	SampleCount      int           // Number of samples taken
}

// AddSample adds a new spectral sample to the pixel statistics
func (ps *PixelStats) AddSample(sample core.Spectrum) {
	ps.SpectrumAccum = ps.SpectrumAccum.Add(sample)
	luminance := sample.ToRGB().Luminance()
	ps.LuminanceAccum += luminance
	ps.LuminanceSqAccum += luminance * luminance
	ps.SampleCount++
}

// Mean returns the current average spectrum for this pixel
func (ps *PixelStats) Mean() core.Spectrum {
	if ps.SampleCount == 0 {
		return core.Spectrum{}
	}
	return ps.SpectrumAccum.Divide(float64(ps.SampleCount))
}

// LuminanceVariance returns the sample variance of the per-sample luminance
func (ps *PixelStats) LuminanceVariance() float64 {
	if ps.SampleCount < 2 {
		return 0
	}
	n := float64(ps.SampleCount)
	mean := ps.LuminanceAccum / n
	variance := (ps.LuminanceSqAccum - n*mean*mean) / (n - 1)
	if variance < 0 {
		return 0
	}
	return variance
}

// CalculateAverageLuminance returns the mean luminance of an image
func CalculateAverageLuminance(img *image.RGBA) float64 {
	bounds := img.Bounds()
	pixels := bounds.Dx() * bounds.Dy()
	if pixels == 0 {
		return 0
	}

	total := 0.0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.RGBAAt(x, y)
			rgb := core.NewVec3(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255)
			total += rgb.Luminance()
		}
	}
	return total / float64(pixels)
}
