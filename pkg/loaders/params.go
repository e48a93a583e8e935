package loaders

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// parseFloats parses exactly n leading float arguments of a directive.
// Extra trailing arguments are ignored.
func parseFloats(args []string, n int) ([]float64, error) {
	if len(args) < n {
		return nil, fmt.Errorf("expected %d values, got %d", n, len(args))
	}

	values := make([]float64, n)
	for i := 0; i < n; i++ {
		val, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", args[i])
		}
		values[i] = val
	}
	return values, nil
}

// parseVec3 parses three float arguments into a vector
func parseVec3(args []string) (core.Vec3, error) {
	values, err := parseFloats(args, 3)
	if err != nil {
		return core.Vec3{}, err
	}
	return core.NewVec3(values[0], values[1], values[2]), nil
}

// splitDirective strips comments and splits a line into its keyword and arguments
func splitDirective(line string) (string, []string) {
	if idx := strings.IndexByte(line, '#'); idx >= 0 {
		line = line[:idx]
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return fields[0], fields[1:]
}

// validateFilePath validates a scene file path before it is opened
func validateFilePath(filename string) error {
	// Check for empty filename
	if filename == "" {
		return fmt.Errorf("filename cannot be empty")
	}

	// Check for null bytes (could indicate path manipulation)
	if strings.Contains(filename, "\x00") {
		return fmt.Errorf("invalid file path: null bytes not allowed")
	}

	// Check for extremely long paths that could cause issues
	if len(filepath.Clean(filename)) > 512 {
		return fmt.Errorf("file path too long: maximum 512 characters allowed")
	}

	return nil
}

// openFile validates and opens a scene file
func openFile(filename string) (*os.File, error) {
	if err := validateFilePath(filename); err != nil {
		return nil, err
	}
	return os.Open(filename)
}
