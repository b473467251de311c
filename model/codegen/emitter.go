package codegen

import (
	"github.com/viant/smarty/model/diagram"
)

// Emitter represents source generator for class diagram entities
type Emitter interface {
	Emit(entity *diagram.Entity) ([]byte, error)
}

// File represents generated source file
type File struct {
	Path    string
	Content []byte
}
