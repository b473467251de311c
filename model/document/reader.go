package document

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Parse reads a tagged-block document and returns its root node
func Parse(reader io.Reader) (Node, error) {
	decoder := xml.NewDecoder(reader)
	var stack []*Element
	var root *Element
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode document: %w", err)
		}
		switch actual := token.(type) {
		case xml.StartElement:
			element := &Element{Tag: actual.Name.Local, Attrs: make(map[string]string, len(actual.Attr))}
			for _, attr := range actual.Attr {
				element.Attrs[attr.Name.Local] = attr.Value
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("multiple root elements: %s, %s", root.Tag, element.Tag)
				}
				root = element
			} else {
				stack[len(stack)-1].Append(element)
			}
			stack = append(stack, element)
		case xml.EndElement:
			if len(stack) == 0 {
				return nil, fmt.Errorf("unexpected closing element: %s", actual.Name.Local)
			}
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].Content += string(actual)
			}
		}
	}
	if root == nil {
		return nil, fmt.Errorf("empty document")
	}
	if len(stack) > 0 {
		return nil, fmt.Errorf("unterminated element: %s", stack[len(stack)-1].Tag)
	}
	return root, nil
}

// ParseBytes parses document from bytes
func ParseBytes(data []byte) (Node, error) {
	return Parse(bytes.NewReader(data))
}

// ParseString parses document from string
func ParseString(text string) (Node, error) {
	return Parse(strings.NewReader(text))
}
