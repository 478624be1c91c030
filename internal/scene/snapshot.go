package scene

import "github.com/grindlemire/go-flex"

// Snapshot is the computed frame of one node and its subtree.
type Snapshot struct {
	Name     string     `json:"name" yaml:"name" toml:"name"`
	X        float32    `json:"x" yaml:"x" toml:"x"`
	Y        float32    `json:"y" yaml:"y" toml:"y"`
	Width    float32    `json:"width" yaml:"width" toml:"width"`
	Height   float32    `json:"height" yaml:"height" toml:"height"`
	Children []Snapshot `json:"children,omitempty" yaml:"children,omitempty" toml:"children,omitempty"`
}

// Frame returns the node's own frame without its children.
func (s *Snapshot) Frame() flex.Frame {
	return flex.Frame{X: s.X, Y: s.Y, Width: s.Width, Height: s.Height}
}

// Capture reads the frames of the whole tree. Call it after Layout.
func Capture(t *Tree) (Snapshot, error) {
	return t.capture(t.Root)
}

func (t *Tree) capture(n *flex.Node) (Snapshot, error) {
	f, err := n.Frame()
	if err != nil {
		return Snapshot{}, err
	}
	s := Snapshot{
		Name:   t.Name(n),
		X:      f.X,
		Y:      f.Y,
		Width:  f.Width,
		Height: f.Height,
	}

	children, err := n.Children()
	if err != nil {
		return Snapshot{}, err
	}
	for _, c := range children {
		cs, err := t.capture(c)
		if err != nil {
			return Snapshot{}, err
		}
		s.Children = append(s.Children, cs)
	}
	return s, nil
}

// Find returns the snapshot with the given name, searching depth-first.
func (s *Snapshot) Find(name string) (*Snapshot, bool) {
	if s.Name == name {
		return s, true
	}
	for i := range s.Children {
		if found, ok := s.Children[i].Find(name); ok {
			return found, true
		}
	}
	return nil, false
}
