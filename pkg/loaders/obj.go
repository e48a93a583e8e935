package loaders

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// OBJFace is a polygon record with its vertex references already resolved
type OBJFace struct {
	Material string      // Active material name when the face was read ("" if none)
	Vertices []core.Vec3 // At least three positions
	Normals  []core.Vec3 // Empty, or one normal per vertex
	Line     int         // Source line, for diagnostics
}

// OBJSphere is an analytic sphere declared with the S directive
type OBJSphere struct {
	Material string
	Center   core.Vec3
	Radius   float64
}

// OBJLight is a point light declared with the P directive
type OBJLight struct {
	Position  core.Vec3
	Intensity core.Vec3
}

// OBJFile contains all data read from a geometry file
type OBJFile struct {
	MaterialLibs []string // mtllib arguments as written, in order of appearance
	Faces        []OBJFace
	Spheres      []OBJSphere
	Lights       []OBJLight
	Warnings     []string // Recoverable problems encountered while parsing
}

// objParser holds the state of a single forward pass over a geometry file
type objParser struct {
	file     *OBJFile
	vertices []core.Vec3
	normals  []core.Vec3
	material string
	lineNo   int
}

// ParseOBJ parses a geometry file from an io.Reader.
// Directives it does not recognize are skipped.
func ParseOBJ(reader io.Reader) (*OBJFile, error) {
	parser := &objParser{file: &OBJFile{}}

	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		parser.lineNo++
		parser.processLine(scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading geometry: %w", err)
	}

	return parser.file, nil
}

// LoadOBJ loads and parses a geometry file
func LoadOBJ(filename string) (*OBJFile, error) {
	file, err := openFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	return ParseOBJ(file)
}

func (p *objParser) warnf(format string, args ...interface{}) {
	p.file.Warnings = append(p.file.Warnings,
		fmt.Sprintf("line %d: %s", p.lineNo, fmt.Sprintf(format, args...)))
}

func (p *objParser) processLine(line string) {
	keyword, args := splitDirective(line)

	switch keyword {
	case "v":
		vertex, err := parseVec3(args)
		if err != nil {
			p.warnf("v: %v", err)
			// Keep index arithmetic aligned with the file
			vertex = core.Vec3{}
		}
		p.vertices = append(p.vertices, vertex)

	case "vn":
		normal, err := parseVec3(args)
		if err != nil {
			p.warnf("vn: %v", err)
			normal = core.Vec3{}
		}
		p.normals = append(p.normals, normal)

	case "f":
		p.processFace(args)

	case "mtllib":
		if len(args) == 0 {
			p.warnf("mtllib without a path")
			return
		}
		p.file.MaterialLibs = append(p.file.MaterialLibs, strings.Join(args, " "))

	case "usemtl":
		if len(args) == 0 {
			p.warnf("usemtl without a name")
			return
		}
		p.material = args[0]

	case "S":
		values, err := parseFloats(args, 4)
		if err != nil {
			p.warnf("S: %v", err)
			return
		}
		if values[3] <= 0 {
			p.warnf("S: sphere radius must be positive, got %g", values[3])
			return
		}
		p.file.Spheres = append(p.file.Spheres, OBJSphere{
			Material: p.material,
			Center:   core.NewVec3(values[0], values[1], values[2]),
			Radius:   values[3],
		})

	case "P":
		values, err := parseFloats(args, 6)
		if err != nil {
			p.warnf("P: %v", err)
			return
		}
		p.file.Lights = append(p.file.Lights, OBJLight{
			Position:  core.NewVec3(values[0], values[1], values[2]),
			Intensity: core.NewVec3(values[3], values[4], values[5]),
		})
	}
}

// processFace resolves the vertex and normal references of a face record
func (p *objParser) processFace(args []string) {
	if len(args) < 3 {
		p.warnf("f: face needs at least 3 vertices, got %d", len(args))
		return
	}

	face := OBJFace{
		Material: p.material,
		Vertices: make([]core.Vec3, 0, len(args)),
		Line:     p.lineNo,
	}
	normals := make([]core.Vec3, 0, len(args))

	for _, ref := range args {
		parts := strings.Split(ref, "/")

		vIdx, err := resolveIndex(parts[0], len(p.vertices))
		if err != nil {
			p.warnf("f: vertex %q: %v", ref, err)
			return
		}
		face.Vertices = append(face.Vertices, p.vertices[vIdx])

		// v//vn and v/vt/vn carry a normal reference in the third slot
		if len(parts) >= 3 && parts[2] != "" {
			nIdx, err := resolveIndex(parts[2], len(p.normals))
			if err != nil {
				p.warnf("f: normal %q: %v", ref, err)
				return
			}
			normals = append(normals, p.normals[nIdx])
		}
	}

	// Vertex normals are only usable when every corner has one
	if len(normals) == len(face.Vertices) {
		face.Normals = normals
	} else if len(normals) > 0 {
		p.warnf("f: normals given for only %d of %d vertices, using face normal", len(normals), len(face.Vertices))
	}

	p.file.Faces = append(p.file.Faces, face)
}

// resolveIndex converts a 1-based or negative relative index into a slice position
func resolveIndex(token string, count int) (int, error) {
	idx, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("invalid index %q", token)
	}

	var pos int
	switch {
	case idx > 0:
		pos = idx - 1
	case idx < 0:
		pos = count + idx
	default:
		return 0, fmt.Errorf("index 0 is not allowed")
	}

	if pos < 0 || pos >= count {
		return 0, fmt.Errorf("index %d out of range (%d defined)", idx, count)
	}
	return pos, nil
}
