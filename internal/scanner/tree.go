package scanner

import (
	"sort"
	"strings"
)

// dirNode is one level of the rendered directory hierarchy.
type dirNode struct {
	files []string
	dirs  map[string]*dirNode
}

func newDirNode() *dirNode {
	return &dirNode{dirs: make(map[string]*dirNode)}
}

// Render returns the project tree as an indented listing with box-drawing
// connectors, files before subdirectories at each level, both sorted.
func (t *ProjectTree) Render() string {
	root := newDirNode()
	for _, f := range t.Files {
		parts := strings.Split(f.Path, "/")
		node := root
		for _, dir := range parts[:len(parts)-1] {
			child, ok := node.dirs[dir]
			if !ok {
				child = newDirNode()
				node.dirs[dir] = child
			}
			node = child
		}
		node.files = append(node.files, parts[len(parts)-1])
	}

	var sb strings.Builder
	renderDir(&sb, root, "")
	return sb.String()
}

func renderDir(sb *strings.Builder, node *dirNode, prefix string) {
	files := append([]string(nil), node.files...)
	sort.Strings(files)
	for _, f := range files {
		sb.WriteString(prefix)
		sb.WriteString("├── ")
		sb.WriteString(f)
		sb.WriteString("\n")
	}

	dirs := make([]string, 0, len(node.dirs))
	for name := range node.dirs {
		dirs = append(dirs, name)
	}
	sort.Strings(dirs)
	for i, name := range dirs {
		last := i == len(dirs)-1
		sb.WriteString(prefix)
		if last {
			sb.WriteString("└── ")
		} else {
			sb.WriteString("├── ")
		}
		sb.WriteString(name)
		sb.WriteString("/\n")

		childPrefix := prefix + "│   "
		if last {
			childPrefix = prefix + "    "
		}
		renderDir(sb, node.dirs[name], childPrefix)
	}
}
