package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/niber/internal/errors"
	"github.com/vango-dev/niber/pkg/vdom"
)

// TreeNode is one node of a tree file. Exactly one of Tag, Text, Component
// or Fragment must be set.
type TreeNode struct {
	Tag       string         `json:"tag,omitempty" yaml:"tag,omitempty"`
	Text      *string        `json:"text,omitempty" yaml:"text,omitempty"`
	Component string         `json:"component,omitempty" yaml:"component,omitempty"`
	Fragment  bool           `json:"fragment,omitempty" yaml:"fragment,omitempty"`
	Key       *string        `json:"key,omitempty" yaml:"key,omitempty"`
	Props     map[string]any `json:"props,omitempty" yaml:"props,omitempty"`
	Children  []TreeNode     `json:"children,omitempty" yaml:"children,omitempty"`
}

// readTree decodes a tree file. Files ending in .yaml or .yml are YAML,
// everything else is JSON.
func readTree(path string) (*TreeNode, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("E160").Wrap(err)
	}

	var root TreeNode
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &root)
	default:
		err = json.Unmarshal(data, &root)
	}
	if err != nil {
		return nil, errors.New("E160").Wrap(err).WithDetail(fmt.Sprintf("Could not decode %s.", path))
	}
	return &root, nil
}

// Build converts the tree into a description. Component references are
// resolved against components.
func (n *TreeNode) Build(components map[string]*vdom.Component) (*vdom.VNode, error) {
	return n.build(components, "root")
}

func (n *TreeNode) build(components map[string]*vdom.Component, at string) (*vdom.VNode, error) {
	set := 0
	for _, ok := range []bool{n.Tag != "", n.Text != nil, n.Component != "", n.Fragment} {
		if ok {
			set++
		}
	}
	if set != 1 {
		return nil, errors.New("E160").WithDetail(fmt.Sprintf(
			"Node at %s must set exactly one of tag, text, component or fragment.", at))
	}

	if n.Text != nil {
		return vdom.Text(*n.Text), nil
	}

	args := n.attrs()
	for i := range n.Children {
		child, err := n.Children[i].build(components, fmt.Sprintf("%s.%d", at, i))
		if err != nil {
			return nil, err
		}
		args = append(args, child)
	}

	switch {
	case n.Tag != "":
		return vdom.Element(n.Tag, args...), nil
	case n.Fragment:
		return vdom.Fragment(args...), nil
	}

	comp, ok := components[n.Component]
	if !ok {
		return nil, errors.New("E161").
			WithDetail(fmt.Sprintf("Node at %s references %q.", at, n.Component)).
			WithSuggestion("Available components: " + strings.Join(componentNames(components), ", "))
	}
	return vdom.C(comp, args...), nil
}

func (n *TreeNode) attrs() []any {
	keys := make([]string, 0, len(n.Props))
	for k := range n.Props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]any, 0, len(keys)+len(n.Children)+1)
	if n.Key != nil {
		args = append(args, vdom.Key(*n.Key))
	}
	for _, k := range keys {
		args = append(args, vdom.Prop(k, n.Props[k]))
	}
	return args
}

func componentNames(components map[string]*vdom.Component) []string {
	names := make([]string, 0, len(components))
	for name := range components {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// loadTree reads and builds a tree file against the built-in components.
func loadTree(path string) (*vdom.VNode, error) {
	root, err := readTree(path)
	if err != nil {
		return nil, err
	}
	return root.Build(builtins)
}
