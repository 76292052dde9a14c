package loaders

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/df07/go-spectral-pathtracer/pkg/core"
	"github.com/df07/go-spectral-pathtracer/pkg/geometry"
	"github.com/df07/go-spectral-pathtracer/pkg/material"
)

// PLYHeader represents the parsed header information from a PLY file
type PLYHeader struct {
	Format      string // "binary_little_endian" or "ascii"
	Version     string // Usually "1.0"
	VertexCount int
	FaceCount   int
	VertexProps []PLYProperty
	FaceProps   []PLYProperty
}

// PLYProperty represents a property definition in the PLY header
type PLYProperty struct {
	Name     string
	Type     string
	IsList   bool
	ListType string // For list properties, the type of the count
	DataType string // For list properties, the type of the data
}

// PLYData contains the vertex positions and triangle indices of a mesh
type PLYData struct {
	Vertices []core.Vec3 // Vertex positions (x, y, z)
	Faces    []int       // Triangle indices (3 per triangle), polygons are fanned
}

// LoadPLY loads a PLY file from disk
func LoadPLY(filename string) (*PLYData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open PLY file: %w", err)
	}
	defer file.Close()

	data, err := ReadPLY(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return data, nil
}

// ReadPLY parses a PLY stream in ascii or binary little-endian format
func ReadPLY(r io.Reader) (*PLYData, error) {
	reader := bufio.NewReader(r)

	header, err := parsePLYHeader(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to parse PLY header: %w", err)
	}

	var source valueReader
	switch header.Format {
	case "binary_little_endian":
		source = &binaryReader{r: reader, order: binary.LittleEndian}
	case "ascii":
		source = &asciiReader{scanner: newWordScanner(reader)}
	default:
		return nil, fmt.Errorf("unsupported PLY format: %q", header.Format)
	}

	data, err := readBody(header, source)
	if err != nil {
		return nil, fmt.Errorf("failed to read PLY data: %w", err)
	}
	return data, nil
}

// parsePLYHeader reads up to and including end_header, leaving the reader
// at the first byte of the body
func parsePLYHeader(reader *bufio.Reader) (*PLYHeader, error) {
	header := &PLYHeader{}
	var currentElement string

	first := true
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			return nil, fmt.Errorf("header ended before end_header: %w", err)
		}
		line = strings.TrimSpace(line)

		if first {
			if line != "ply" {
				return nil, fmt.Errorf("missing ply magic number")
			}
			first = false
			continue
		}
		if line == "end_header" {
			break
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "format":
			if len(parts) >= 3 {
				header.Format = parts[1]
				header.Version = parts[2]
			}
		case "element":
			if len(parts) < 3 {
				return nil, fmt.Errorf("invalid element line: %q", line)
			}
			count, err := strconv.Atoi(parts[2])
			if err != nil || count < 0 {
				return nil, fmt.Errorf("invalid element count: %s", parts[2])
			}
			currentElement = parts[1]
			switch currentElement {
			case "vertex":
				header.VertexCount = count
			case "face":
				header.FaceCount = count
			default:
				return nil, fmt.Errorf("unsupported element %q", currentElement)
			}
		case "property":
			prop, err := parsePLYProperty(parts[1:])
			if err != nil {
				return nil, fmt.Errorf("failed to parse property: %w", err)
			}
			switch currentElement {
			case "vertex":
				header.VertexProps = append(header.VertexProps, prop)
			case "face":
				header.FaceProps = append(header.FaceProps, prop)
			}
		}
	}

	return header, nil
}

// parsePLYProperty parses a property line from the PLY header
func parsePLYProperty(parts []string) (PLYProperty, error) {
	if len(parts) < 2 {
		return PLYProperty{}, fmt.Errorf("invalid property definition")
	}

	if parts[0] == "list" {
		if len(parts) < 4 {
			return PLYProperty{}, fmt.Errorf("invalid list property definition")
		}
		return PLYProperty{IsList: true, ListType: parts[1], DataType: parts[2], Name: parts[3]}, nil
	}
	if getTypeSize(parts[0]) == 0 {
		return PLYProperty{}, fmt.Errorf("unknown property type %q", parts[0])
	}
	return PLYProperty{Type: parts[0], Name: parts[1]}, nil
}

func readBody(header *PLYHeader, source valueReader) (*PLYData, error) {
	data := &PLYData{
		Vertices: make([]core.Vec3, 0, header.VertexCount),
		Faces:    make([]int, 0, header.FaceCount*3),
	}

	for i := 0; i < header.VertexCount; i++ {
		var position [3]float64
		for _, prop := range header.VertexProps {
			if prop.IsList {
				if err := skipList(source, prop); err != nil {
					return nil, err
				}
				continue
			}
			value, err := source.read(prop.Type)
			if err != nil {
				return nil, fmt.Errorf("vertex %d: %w", i, err)
			}
			switch prop.Name {
			case "x":
				position[0] = value
			case "y":
				position[1] = value
			case "z":
				position[2] = value
			}
		}
		data.Vertices = append(data.Vertices, core.NewVec3(position[0], position[1], position[2]))
	}

	for i := 0; i < header.FaceCount; i++ {
		for _, prop := range header.FaceProps {
			if !prop.IsList || (prop.Name != "vertex_indices" && prop.Name != "vertex_index") {
				if err := skipProperty(source, prop); err != nil {
					return nil, err
				}
				continue
			}

			count, err := source.read(prop.ListType)
			if err != nil {
				return nil, fmt.Errorf("face %d: %w", i, err)
			}
			indices := make([]int, int(count))
			for j := range indices {
				value, err := source.read(prop.DataType)
				if err != nil {
					return nil, fmt.Errorf("face %d: %w", i, err)
				}
				index := int(value)
				if index < 0 || index >= len(data.Vertices) {
					return nil, fmt.Errorf("face %d: vertex index %d out of range", i, index)
				}
				indices[j] = index
			}
			// Fan triangulation for polygons
			for j := 1; j+1 < len(indices); j++ {
				data.Faces = append(data.Faces, indices[0], indices[j], indices[j+1])
			}
		}
	}

	return data, nil
}

func skipProperty(source valueReader, prop PLYProperty) error {
	if prop.IsList {
		return skipList(source, prop)
	}
	_, err := source.read(prop.Type)
	return err
}

func skipList(source valueReader, prop PLYProperty) error {
	count, err := source.read(prop.ListType)
	if err != nil {
		return err
	}
	for j := 0; j < int(count); j++ {
		if _, err := source.read(prop.DataType); err != nil {
			return err
		}
	}
	return nil
}

// getTypeSize returns the byte size of a PLY scalar type, 0 if unknown
func getTypeSize(dataType string) int {
	switch dataType {
	case "char", "uchar", "int8", "uint8":
		return 1
	case "short", "ushort", "int16", "uint16":
		return 2
	case "int", "uint", "float", "int32", "uint32", "float32":
		return 4
	case "double", "float64":
		return 8
	default:
		return 0
	}
}

// valueReader yields the next scalar of the given PLY type as float64
type valueReader interface {
	read(dataType string) (float64, error)
}

type binaryReader struct {
	r     io.Reader
	order binary.ByteOrder
	buf   [8]byte
}

func (b *binaryReader) read(dataType string) (float64, error) {
	size := getTypeSize(dataType)
	if size == 0 {
		return 0, fmt.Errorf("unknown property type %q", dataType)
	}
	buf := b.buf[:size]
	if _, err := io.ReadFull(b.r, buf); err != nil {
		return 0, err
	}

	switch dataType {
	case "char", "int8":
		return float64(int8(buf[0])), nil
	case "uchar", "uint8":
		return float64(buf[0]), nil
	case "short", "int16":
		return float64(int16(b.order.Uint16(buf))), nil
	case "ushort", "uint16":
		return float64(b.order.Uint16(buf)), nil
	case "int", "int32":
		return float64(int32(b.order.Uint32(buf))), nil
	case "uint", "uint32":
		return float64(b.order.Uint32(buf)), nil
	case "float", "float32":
		return float64(math.Float32frombits(b.order.Uint32(buf))), nil
	default:
		return math.Float64frombits(b.order.Uint64(buf)), nil
	}
}

type asciiReader struct {
	scanner *bufio.Scanner
}

func newWordScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	return scanner
}

func (a *asciiReader) read(dataType string) (float64, error) {
	if !a.scanner.Scan() {
		if err := a.scanner.Err(); err != nil {
			return 0, err
		}
		return 0, io.ErrUnexpectedEOF
	}
	value, err := strconv.ParseFloat(a.scanner.Text(), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q", dataType, a.scanner.Text())
	}
	return value, nil
}

// Bounds returns the box around every vertex
func (d *PLYData) Bounds() core.AABB {
	return core.NewAABBFromPoints(d.Vertices...)
}

// Fit scales and translates the mesh so its largest extent equals size and
// its bounding box is centred on center
func (d *PLYData) Fit(center core.Vec3, size float64) {
	if len(d.Vertices) == 0 {
		return
	}
	box := d.Bounds()
	extent := box.Size()
	largest := max(extent.X, extent.Y, extent.Z)
	if largest == 0 {
		return
	}

	scale := size / largest
	origin := box.Center()
	for i, v := range d.Vertices {
		d.Vertices[i] = v.Subtract(origin).Multiply(scale).Add(center)
	}
}

// Triangles builds one triangle per face sharing the given surface
func (d *PLYData) Triangles(reflectance core.Spectrum, bsdf material.BSDF) []*geometry.Triangle {
	triangles := make([]*geometry.Triangle, 0, len(d.Faces)/3)
	for i := 0; i+2 < len(d.Faces); i += 3 {
		triangles = append(triangles, geometry.NewTriangle(
			d.Vertices[d.Faces[i]],
			d.Vertices[d.Faces[i+1]],
			d.Vertices[d.Faces[i+2]],
			reflectance,
			bsdf,
		))
	}
	return triangles
}
