// Package uniform collects shader uniform values by name so that scene code
// can prepare everything a draw call needs without touching the GL context.
package uniform

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Kind identifies the GLSL type a value is uploaded as.
type Kind int

const (
	Float Kind = iota
	Int
	Vec3
	Mat4
	Sampler // texture unit, uploaded as int
)

// Value is a single uniform value. Only the field matching Kind is meaningful.
type Value struct {
	Kind  Kind
	Float float32
	Int   int32
	Vec3  mgl32.Vec3
	Mat4  mgl32.Mat4
}

// Set is an ordered name -> value mapping.
// Re-setting a name replaces its value but keeps its original position.
type Set struct {
	names  []string
	values map[string]Value
}

func NewSet() *Set {
	return &Set{values: make(map[string]Value)}
}

func (s *Set) put(name string, v Value) {
	if s.values == nil {
		s.values = make(map[string]Value)
	}
	if _, ok := s.values[name]; !ok {
		s.names = append(s.names, name)
	}
	s.values[name] = v
}

func (s *Set) SetFloat(name string, f float32) {
	s.put(name, Value{Kind: Float, Float: f})
}

func (s *Set) SetInt(name string, i int32) {
	s.put(name, Value{Kind: Int, Int: i})
}

func (s *Set) SetVec3(name string, v mgl32.Vec3) {
	s.put(name, Value{Kind: Vec3, Vec3: v})
}

func (s *Set) SetMat4(name string, m mgl32.Mat4) {
	s.put(name, Value{Kind: Mat4, Mat4: m})
}

// SetSampler binds the sampler uniform name to a texture unit.
func (s *Set) SetSampler(name string, unit int32) {
	s.put(name, Value{Kind: Sampler, Int: unit})
}

// Each calls fn for every uniform in insertion order.
func (s *Set) Each(fn func(name string, v Value)) {
	for _, name := range s.names {
		fn(name, s.values[name])
	}
}
