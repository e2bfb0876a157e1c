package gles

import (
	"strings"

	"golang.org/x/mobile/gl"
)

// fakeContext is a recording GL context. Object handles are sequential
// IDs; a shader "compiles" when its source contains a main function, which
// is enough to exercise both the success and failure paths.
type fakeContext struct {
	nextID uint32

	shaders  map[uint32]*fakeShader
	programs map[uint32]*fakeProgram
	buffers  map[uint32][]byte

	linkShouldFail bool

	boundBuffer    uint32
	usedProgram    uint32
	clearColor     [4]float32
	clearCount     int
	viewport       [4]int
	uniformNames   map[string]int32
	attribNames    map[string]uint
	matrices       map[int32][]float32
	vec4s          map[int32][4]float32
	enabledAttribs map[uint]bool
	draws          []drawCall

	deletedBuffers  int
	deletedPrograms int
}

type fakeShader struct {
	shaderType gl.Enum
	source     string
	compiledOK bool
}

type fakeProgram struct {
	attached []uint32
	linkedOK bool
}

type drawCall struct {
	mode         gl.Enum
	first, count int
}

var _ Context = (*fakeContext)(nil)

func newFakeContext() *fakeContext {
	return &fakeContext{
		shaders:        make(map[uint32]*fakeShader),
		programs:       make(map[uint32]*fakeProgram),
		buffers:        make(map[uint32][]byte),
		uniformNames:   make(map[string]int32),
		attribNames:    make(map[string]uint),
		matrices:       make(map[int32][]float32),
		vec4s:          make(map[int32][4]float32),
		enabledAttribs: make(map[uint]bool),
	}
}

func (f *fakeContext) newID() uint32 {
	f.nextID++
	return f.nextID
}

func (f *fakeContext) CreateShader(ty gl.Enum) gl.Shader {
	id := f.newID()
	f.shaders[id] = &fakeShader{shaderType: ty}
	return gl.Shader{Value: id}
}

func (f *fakeContext) ShaderSource(s gl.Shader, src string) {
	f.shaders[s.Value].source = src
}

func (f *fakeContext) CompileShader(s gl.Shader) {
	sh := f.shaders[s.Value]
	sh.compiledOK = strings.Contains(sh.source, "void main")
}

func (f *fakeContext) GetShaderi(s gl.Shader, pname gl.Enum) int {
	if pname == gl.COMPILE_STATUS && f.shaders[s.Value].compiledOK {
		return 1
	}
	return 0
}

func (f *fakeContext) GetShaderInfoLog(s gl.Shader) string {
	return "syntax error"
}

func (f *fakeContext) DeleteShader(s gl.Shader) {
	delete(f.shaders, s.Value)
}

func (f *fakeContext) CreateProgram() gl.Program {
	id := f.newID()
	f.programs[id] = &fakeProgram{}
	return gl.Program{Init: true, Value: id}
}

func (f *fakeContext) AttachShader(p gl.Program, s gl.Shader) {
	prog := f.programs[p.Value]
	prog.attached = append(prog.attached, s.Value)
}

func (f *fakeContext) LinkProgram(p gl.Program) {
	prog := f.programs[p.Value]
	prog.linkedOK = !f.linkShouldFail && len(prog.attached) == 2
}

func (f *fakeContext) GetProgrami(p gl.Program, pname gl.Enum) int {
	if pname == gl.LINK_STATUS && f.programs[p.Value].linkedOK {
		return 1
	}
	return 0
}

func (f *fakeContext) GetProgramInfoLog(p gl.Program) string {
	return "link error"
}

func (f *fakeContext) DeleteProgram(p gl.Program) {
	delete(f.programs, p.Value)
	f.deletedPrograms++
}

func (f *fakeContext) UseProgram(p gl.Program) {
	f.usedProgram = p.Value
}

func (f *fakeContext) GetUniformLocation(p gl.Program, name string) gl.Uniform {
	if loc, ok := f.uniformNames[name]; ok {
		return gl.Uniform{Value: loc}
	}
	loc := int32(len(f.uniformNames) + 1)
	f.uniformNames[name] = loc
	return gl.Uniform{Value: loc}
}

func (f *fakeContext) GetAttribLocation(p gl.Program, name string) gl.Attrib {
	if loc, ok := f.attribNames[name]; ok {
		return gl.Attrib{Value: loc}
	}
	loc := uint(len(f.attribNames) + 1)
	f.attribNames[name] = loc
	return gl.Attrib{Value: loc}
}

func (f *fakeContext) UniformMatrix4fv(dst gl.Uniform, src []float32) {
	m := make([]float32, len(src))
	copy(m, src)
	f.matrices[dst.Value] = m
}

func (f *fakeContext) Uniform4f(dst gl.Uniform, v0, v1, v2, v3 float32) {
	f.vec4s[dst.Value] = [4]float32{v0, v1, v2, v3}
}

func (f *fakeContext) CreateBuffer() gl.Buffer {
	id := f.newID()
	f.buffers[id] = nil
	return gl.Buffer{Value: id}
}

func (f *fakeContext) BindBuffer(target gl.Enum, b gl.Buffer) {
	f.boundBuffer = b.Value
}

func (f *fakeContext) BufferData(target gl.Enum, src []byte, usage gl.Enum) {
	data := make([]byte, len(src))
	copy(data, src)
	f.buffers[f.boundBuffer] = data
}

func (f *fakeContext) DeleteBuffer(v gl.Buffer) {
	delete(f.buffers, v.Value)
	f.deletedBuffers++
}

func (f *fakeContext) EnableVertexAttribArray(a gl.Attrib) {
	f.enabledAttribs[a.Value] = true
}

func (f *fakeContext) VertexAttribPointer(dst gl.Attrib, size int, ty gl.Enum, normalized bool, stride, offset int) {
}

func (f *fakeContext) DisableVertexAttribArray(a gl.Attrib) {
	f.enabledAttribs[a.Value] = false
}

func (f *fakeContext) DrawArrays(mode gl.Enum, first, count int) {
	f.draws = append(f.draws, drawCall{mode: mode, first: first, count: count})
}

func (f *fakeContext) ClearColor(red, green, blue, alpha float32) {
	f.clearColor = [4]float32{red, green, blue, alpha}
}

func (f *fakeContext) Clear(mask gl.Enum) {
	f.clearCount++
}

func (f *fakeContext) Viewport(x, y, width, height int) {
	f.viewport = [4]int{x, y, width, height}
}
