package codegen

import (
	"context"
	"errors"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
)

// ErrInvalidSource reports generated source the Java grammar rejects
var ErrInvalidSource = errors.New("invalid java source")

// Validate parses source with the Java grammar, returns ErrInvalidSource at the first syntax error
func Validate(ctx context.Context, source []byte) error {
	parser := sitter.NewParser()
	parser.SetLanguage(java.GetLanguage())
	tree, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return fmt.Errorf("failed to parse source: %w", err)
	}
	root := tree.RootNode()
	if !root.HasError() {
		return nil
	}
	if node := firstError(root); node != nil {
		point := node.StartPoint()
		return fmt.Errorf("%w at %d:%d near %q", ErrInvalidSource, point.Row+1, point.Column+1, node.Content(source))
	}
	return ErrInvalidSource
}

func firstError(node *sitter.Node) *sitter.Node {
	if node.IsError() || node.IsMissing() {
		return node
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child == nil || !child.HasError() && !child.IsMissing() {
			continue
		}
		if found := firstError(child); found != nil {
			return found
		}
	}
	return nil
}
