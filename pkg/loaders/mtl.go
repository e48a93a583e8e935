package loaders

import (
	"bufio"
	"fmt"
	"io"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// MTLFile contains the materials parsed from a material library
type MTLFile struct {
	Materials []material.Material // In definition order; a redefined name replaces the earlier block
	Warnings  []string            // Recoverable problems encountered while parsing
}

// mtlParser holds the state of a single pass over a material library
type mtlParser struct {
	file    *MTLFile
	index   map[string]int
	current int // Index of the block being filled, -1 before the first newmtl
	lineNo  int
}

// ParseMTL parses a material library from an io.Reader
func ParseMTL(reader io.Reader) (*MTLFile, error) {
	parser := &mtlParser{
		file:    &MTLFile{},
		index:   make(map[string]int),
		current: -1,
	}

	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		parser.lineNo++
		parser.processLine(scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading material library: %w", err)
	}

	return parser.file, nil
}

// LoadMTL loads and parses a material library file
func LoadMTL(filename string) (*MTLFile, error) {
	file, err := openFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open material library: %w", err)
	}
	defer file.Close()

	return ParseMTL(file)
}

func (p *mtlParser) warnf(format string, args ...interface{}) {
	p.file.Warnings = append(p.file.Warnings,
		fmt.Sprintf("line %d: %s", p.lineNo, fmt.Sprintf(format, args...)))
}

func (p *mtlParser) processLine(line string) {
	keyword, args := splitDirective(line)
	if keyword == "" {
		return
	}

	if keyword == "newmtl" {
		if len(args) == 0 {
			p.warnf("newmtl without a name")
			return
		}
		p.startMaterial(args[0])
		return
	}

	switch keyword {
	case "Ka", "Kd", "Ks", "Ke", "Ns", "Ni", "al":
	default:
		// Unsupported directives (illum, d, map_Kd, ...) are skipped
		return
	}

	if p.current < 0 {
		p.warnf("%s before any newmtl, ignored", keyword)
		return
	}
	m := &p.file.Materials[p.current]

	switch keyword {
	case "Ka", "Kd", "Ks", "Ke":
		color, err := parseVec3(args)
		if err != nil {
			p.warnf("%s: %v", keyword, err)
			return
		}
		p.setColor(m, keyword, color)

	case "Ns":
		values, err := parseFloats(args, 1)
		if err != nil {
			p.warnf("Ns: %v", err)
			return
		}
		if values[0] < 0 {
			p.warnf("Ns: negative specular exponent %g", values[0])
			return
		}
		m.SpecularExponent = values[0]

	case "Ni":
		values, err := parseFloats(args, 1)
		if err != nil {
			p.warnf("Ni: %v", err)
			return
		}
		if values[0] <= 0 {
			p.warnf("Ni: refraction index must be positive, got %g", values[0])
			return
		}
		m.RefractionIndex = values[0]

	case "al":
		values, err := parseFloats(args, 3)
		if err != nil {
			p.warnf("al: %v", err)
			return
		}
		if values[0] < 0 || values[1] < 0 || values[2] < 0 {
			p.warnf("al: albedo weights must be non-negative")
			return
		}
		m.Albedo = material.Albedo{Diffuse: values[0], Mirror: values[1], Transmission: values[2]}
	}
}

// startMaterial begins a new block, replacing any earlier block with the same name
func (p *mtlParser) startMaterial(name string) {
	if idx, exists := p.index[name]; exists {
		p.warnf("material %q redefined", name)
		p.file.Materials[idx] = material.New(name)
		p.current = idx
		return
	}

	p.file.Materials = append(p.file.Materials, material.New(name))
	p.current = len(p.file.Materials) - 1
	p.index[name] = p.current
}

func (p *mtlParser) setColor(m *material.Material, keyword string, color core.Vec3) {
	switch keyword {
	case "Ka":
		m.AmbientColor = color
	case "Kd":
		m.DiffuseColor = color
	case "Ks":
		m.SpecularColor = color
	case "Ke":
		m.Emission = color
	}
}
