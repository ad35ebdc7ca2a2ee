package operators

// AttributeInt is the ONNX AttributeProto type code for INT, the only
// attribute kind the supported operators read.
const AttributeInt = 2

// Node is one operator application in a graph.
type Node struct {
	Name       string      `json:"name,omitempty"`
	OpType     string      `json:"op_type"`
	Inputs     []string    `json:"inputs"` // "" marks an omitted optional input
	Outputs    []string    `json:"outputs"`
	Attributes []Attribute `json:"attributes,omitempty"`
	Domain     string      `json:"domain,omitempty"` // empty for the default ONNX domain
}

// Attribute is an INT node attribute such as LogSoftmax's axis.
type Attribute struct {
	Name string `json:"name"`
	Type int32  `json:"type"`
	I    int64  `json:"i"`
}

// IntAttr builds an INT attribute.
func IntAttr(name string, v int64) Attribute {
	return Attribute{Name: name, Type: AttributeInt, I: v}
}

// GetAttrInt returns the named attribute's value, or defaultVal when absent.
func GetAttrInt(node *Node, name string, defaultVal int64) int64 {
	for i := range node.Attributes {
		if node.Attributes[i].Name == name {
			return node.Attributes[i].I
		}
	}
	return defaultVal
}
