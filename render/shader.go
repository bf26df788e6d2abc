package render

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/mobile/asset"
	"golang.org/x/mobile/exp/gl/glutil"
	"golang.org/x/mobile/gl"
)

// ErrShader is returned when the shader program cannot be compiled or linked.
var ErrShader = errors.New("shader program")

// Shader input names.
const (
	attribPosition  = "aVertexPosition"
	attribColor     = "aVertexColor"
	uniformRotation = "uMvMatrix"
	uniformScale    = "uMvMat2"
)

// Sources holds the GLSL text of a program.
type Sources struct {
	Vertex   string
	Fragment string
}

// DefaultSources is used when no shader assets are bundled.
var DefaultSources = Sources{
	Vertex:   vertexShader,
	Fragment: fragmentShader,
}

// LoadSources reads a vertex and fragment shader pair from the app assets.
func LoadSources(vertexPath, fragmentPath string) (Sources, error) {
	vs, err := readAsset(vertexPath)
	if err != nil {
		return Sources{}, err
	}
	fs, err := readAsset(fragmentPath)
	if err != nil {
		return Sources{}, err
	}
	return Sources{Vertex: vs, Fragment: fs}, nil
}

func readAsset(path string) (string, error) {
	f, err := asset.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	b, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("reading %s: %v", path, err)
	}
	return string(b), nil
}

// CreateProgram compiles and links src.  The returned error carries the GLSL
// info log and wraps ErrShader.
func CreateProgram(glctx gl.Context, src Sources) (gl.Program, error) {
	program, err := glutil.CreateProgram(glctx, src.Vertex, src.Fragment)
	if err != nil {
		return gl.Program{}, fmt.Errorf("%w: %v", ErrShader, err)
	}
	return program, nil
}

const vertexShader = `#version 100

attribute vec3 aVertexPosition;
attribute vec4 aVertexColor;

uniform mat4 uMvMatrix;
uniform mat4 uMvMat2;

varying vec4 vColor;

void main() {
	gl_Position = uMvMatrix * uMvMat2 * vec4(aVertexPosition, 1.0);
	vColor = aVertexColor;
}`

const fragmentShader = `#version 100
precision mediump float;

varying vec4 vColor;

void main() {
	gl_FragColor = vColor;
}`
