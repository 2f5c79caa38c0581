package interpreter

import (
	"bytes"
	"strconv"

	"gopkg.in/yaml.v3"
)

// MarshalAST renders the tree rooted at n as a YAML document. Each node
// becomes a mapping with a "node" key naming its variant.
func MarshalAST(n Node) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	doc := &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{nodeToYAML(n)}}
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type yamlMap struct {
	node *yaml.Node
}

func newYAMLMap(kind string, line int) *yamlMap {
	m := &yamlMap{node: &yaml.Node{Kind: yaml.MappingNode}}
	m.setStr("node", kind)
	m.setInt("line", int64(line))
	return m
}

func (m *yamlMap) add(key string, value *yaml.Node) {
	m.node.Content = append(m.node.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}, value)
}

func (m *yamlMap) setStr(key, value string) {
	m.add(key, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value})
}

func (m *yamlMap) setInt(key string, value int64) {
	m.add(key, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(value, 10)})
}

func (m *yamlMap) setBool(key string, value bool) {
	m.add(key, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(value)})
}

func nodeToYAML(n Node) *yaml.Node {
	switch n := n.(type) {
	case *IntVal:
		m := newYAMLMap("IntVal", n.Line)
		m.setInt("value", n.Value)
		return m.node
	case *BoolVal:
		m := newYAMLMap("BoolVal", n.Line)
		m.setBool("value", n.Value)
		return m.node
	case *StrVal:
		m := newYAMLMap("StrVal", n.Line)
		m.setStr("value", n.Value)
		return m.node
	case *Identifier:
		m := newYAMLMap("Identifier", n.Line)
		m.setStr("name", n.Name)
		return m.node
	case *UnOp:
		m := newYAMLMap("UnOp", n.Line)
		m.setStr("op", n.Op.Symbol())
		m.add("operand", nodeToYAML(n.Operand))
		return m.node
	case *BinOp:
		m := newYAMLMap("BinOp", n.Line)
		m.setStr("op", n.Op.Symbol())
		m.add("left", nodeToYAML(n.Left))
		m.add("right", nodeToYAML(n.Right))
		return m.node
	case *Read:
		return newYAMLMap("Read", n.Line).node
	case *VarDeclaration:
		m := newYAMLMap("VarDeclaration", n.Line)
		m.setStr("name", n.Name)
		m.setStr("type", n.Type.String())
		if n.Init != nil {
			m.add("init", nodeToYAML(n.Init))
		}
		return m.node
	case *Assignment:
		m := newYAMLMap("Assignment", n.Line)
		m.setStr("name", n.Name)
		m.add("value", nodeToYAML(n.Value))
		return m.node
	case *Print:
		m := newYAMLMap("Print", n.Line)
		m.add("expr", nodeToYAML(n.Expr))
		return m.node
	case *If:
		m := newYAMLMap("If", n.Line)
		m.add("condition", nodeToYAML(n.Condition))
		m.add("then", nodeToYAML(n.Then))
		if n.Else != nil {
			m.add("else", nodeToYAML(n.Else))
		}
		return m.node
	case *While:
		m := newYAMLMap("While", n.Line)
		m.add("condition", nodeToYAML(n.Condition))
		m.add("body", nodeToYAML(n.Body))
		return m.node
	case *Block:
		m := newYAMLMap("Block", n.Line)
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		for _, s := range n.Stmts {
			seq.Content = append(seq.Content, nodeToYAML(s))
		}
		m.add("stmts", seq)
		return m.node
	case *NoOp:
		return newYAMLMap("NoOp", n.Line).node
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
}
