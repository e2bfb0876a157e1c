package gles

import (
	"fmt"

	"golang.org/x/mobile/gl"
)

const vertexShaderSource = `
attribute vec4 aPosition;
uniform mat4 uMVPMatrix;
void main() {
	gl_Position = uMVPMatrix * aPosition;
}`

const fragmentShaderSource = `
precision mediump float;
uniform vec4 uColor;
void main() {
	gl_FragColor = uColor;
}`

// compileShader compiles a single shader stage. On failure the shader
// object is deleted before returning.
func compileShader(glctx Context, shaderType gl.Enum, src string) (gl.Shader, error) {
	shader := glctx.CreateShader(shaderType)
	if shader.Value == 0 {
		return gl.Shader{}, fmt.Errorf("gles: could not create shader (type 0x%x)", uint32(shaderType))
	}

	glctx.ShaderSource(shader, src)
	glctx.CompileShader(shader)
	if glctx.GetShaderi(shader, gl.COMPILE_STATUS) == 0 {
		defer glctx.DeleteShader(shader)
		return gl.Shader{}, fmt.Errorf("gles: shader compile failed: %s", glctx.GetShaderInfoLog(shader))
	}
	return shader, nil
}

// CreateProgram compiles both stages and links them into a program. On any
// failure every GPU object created so far is released and the zero Program
// is returned: a failed creation leaves nothing resident.
func CreateProgram(glctx Context, vertexSrc, fragmentSrc string) (gl.Program, error) {
	program := glctx.CreateProgram()
	if program.Value == 0 {
		return gl.Program{}, fmt.Errorf("gles: no programs available")
	}

	vertexShader, err := compileShader(glctx, gl.VERTEX_SHADER, vertexSrc)
	if err != nil {
		glctx.DeleteProgram(program)
		return gl.Program{}, err
	}
	fragmentShader, err := compileShader(glctx, gl.FRAGMENT_SHADER, fragmentSrc)
	if err != nil {
		glctx.DeleteShader(vertexShader)
		glctx.DeleteProgram(program)
		return gl.Program{}, err
	}

	glctx.AttachShader(program, vertexShader)
	glctx.AttachShader(program, fragmentShader)
	glctx.LinkProgram(program)

	// The stages are owned by the program once linked (or failed to link);
	// flag them for deletion either way.
	glctx.DeleteShader(vertexShader)
	glctx.DeleteShader(fragmentShader)

	if glctx.GetProgrami(program, gl.LINK_STATUS) == 0 {
		defer glctx.DeleteProgram(program)
		return gl.Program{}, fmt.Errorf("gles: program link failed: %s", glctx.GetProgramInfoLog(program))
	}
	return program, nil
}
