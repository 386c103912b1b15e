package geometry

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// OBJExtractor reads Wavefront OBJ files. Only positions, faces and object
// names are used; materials, normals and texture coordinates are skipped.
type OBJExtractor struct{}

func (OBJExtractor) Extract(ctx context.Context, path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return ParseOBJ(ctx, f, path)
}

// ParseOBJ parses OBJ text from r. name is used for the mesh name and in
// error messages.
func ParseOBJ(ctx context.Context, r io.Reader, name string) (*Mesh, error) {
	mesh := &Mesh{Name: strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))}

	lineNum := 0
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		lineNum++
		if lineNum%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		lineTokens := strings.Fields(scanner.Text())
		if len(lineTokens) == 0 || strings.HasPrefix(lineTokens[0], "#") {
			continue
		}

		switch lineTokens[0] {
		case "v":
			v, err := parseVec3(lineTokens)
			if err != nil {
				return nil, objError(name, lineNum, err)
			}
			mesh.Vertices = append(mesh.Vertices, v)
		case "o", "g":
			objName := "default"
			if len(lineTokens) > 1 {
				objName = strings.Join(lineTokens[1:], " ")
			}
			mesh.beginObject(objName)
		case "f":
			if err := parseFace(mesh, lineTokens); err != nil {
				return nil, objError(name, lineNum, err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	mesh.finish()
	return mesh, nil
}

func objError(file string, line int, err error) error {
	return fmt.Errorf("[%s: %d] %w", file, line, err)
}

// parseFace triangulates a face as a fan around its first vertex
func parseFace(mesh *Mesh, lineTokens []string) error {
	if len(lineTokens) < 4 {
		return fmt.Errorf(`unsupported syntax for "f"; expected at least 3 vertices; got %d`, len(lineTokens)-1)
	}

	indices := make([]int, 0, len(lineTokens)-1)
	for arg, token := range lineTokens[1:] {
		vToken, _, _ := strings.Cut(token, "/")
		if vToken == "" {
			return fmt.Errorf("face argument %d does not include a vertex index", arg)
		}
		index, err := selectVertexIndex(vToken, len(mesh.Vertices))
		if err != nil {
			return fmt.Errorf("could not parse vertex index for face argument %d: %w", arg, err)
		}
		indices = append(indices, index)
	}

	for i := 1; i+1 < len(indices); i++ {
		mesh.addTriangle(Triangle{indices[0], indices[i], indices[i+1]})
	}
	return nil
}

// selectVertexIndex resolves 1-based and negative (relative) OBJ indices
func selectVertexIndex(indexToken string, count int) (int, error) {
	index, err := strconv.ParseInt(indexToken, 10, 32)
	if err != nil {
		return -1, err
	}

	var offset int
	if index < 0 {
		offset = count + int(index)
	} else {
		offset = int(index) - 1
	}
	if index == 0 || offset < 0 || offset >= count {
		return -1, fmt.Errorf("index %d out of bounds", index)
	}
	return offset, nil
}

func parseVec3(lineTokens []string) (r3.Vec, error) {
	if len(lineTokens) < 4 {
		return r3.Vec{}, fmt.Errorf(`unsupported syntax for "%s"; expected 3 arguments; got %d`, lineTokens[0], len(lineTokens)-1)
	}

	var coords [3]float64
	for i := range coords {
		c, err := strconv.ParseFloat(lineTokens[i+1], 64)
		if err != nil {
			return r3.Vec{}, err
		}
		coords[i] = c
	}
	return r3.Vec{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}
