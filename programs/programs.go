package programs

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownProgram = errors.New("unknown fractal program")

// UniformBinding is the uniform block binding point the viewport block is bound to.
const UniformBinding = 0

// UniformBlockName is the name of the viewport uniform block in every fragment shader.
const UniformBlockName = "Viewport"

//go:embed default.vert
var defaultVertexShader string

func NumPrograms() int {
	return len(programs)
}

func GetProgram(i int) Program {
	return programs[i]
}

// Lookup finds a registered program by name.
func Lookup(name string) (Program, error) {
	for _, p := range programs {
		if p.Name == name {
			return p, nil
		}
	}
	return Program{}, fmt.Errorf("%w %q (have %v)", ErrUnknownProgram, name, Names())
}

// Names lists the registered program names in sorted order.
func Names() []string {
	names := make([]string, 0, len(programs))
	for _, p := range programs {
		names = append(names, p.Name)
	}
	sort.Strings(names)
	return names
}

func NewProgram(p Program) error {
	if _, err := Lookup(p.Name); err == nil {
		return fmt.Errorf("program %q registered twice", p.Name)
	}
	programs = append(programs, p)
	return nil
}

var programs []Program

// Program is a vertex and fragment shader pair. The fragment shader reads the
// visible rectangle from the Viewport uniform block and nothing else.
type Program struct {
	Name           string
	VertexShader   string
	FragmentShader string
}
