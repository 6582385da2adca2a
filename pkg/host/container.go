package host

import (
	"log/slog"

	"github.com/vango-dev/niber/pkg/niber"
)

// Container is a niber.Container backed by an in-memory root node.
type Container struct {
	root   *Node
	logger *slog.Logger
}

var _ niber.Container = (*Container)(nil)

// ContainerOption configures a Container.
type ContainerOption func(*Container)

// WithLogger sets the container's logger. Default: slog.Default().
func WithLogger(logger *slog.Logger) ContainerOption {
	return func(c *Container) {
		c.logger = logger
	}
}

// NewContainer creates a container with an empty root element.
func NewContainer(opts ...ContainerOption) *Container {
	c := &Container{root: NewElement("root")}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c
}

// Commit replaces the container's content with the materialized tree.
func (c *Container) Commit(root *niber.Instance) error {
	return commit(c.logger, root, c.root)
}

// Root returns the container node. Its children are the committed output.
func (c *Container) Root() *Node {
	return c.root
}
