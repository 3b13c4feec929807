package corpus

import _ "embed"

//go:embed components.txt
var componentsText []byte

//go:embed concepts.txt
var conceptsText []byte

// Components returns the embedded component documentation text.
func Components() []byte {
	return componentsText
}

// Concepts returns the embedded design-concept text.
func Concepts() []byte {
	return conceptsText
}
