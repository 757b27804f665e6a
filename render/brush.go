// SPDX-FileCopyrightText : © 2022-2025 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package render

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed brush.yaml
var brushDescriptorYAML []byte

// brushProgramSource is one named GLSL vertex/fragment pair, mirroring
// the teacher's load/shd.go shader-description records (there keyed by
// render pass and full attribute/uniform layout; here narrowed to the
// two fixed-function programs this 2D renderer needs).
type brushProgramSource struct {
	Name     string `yaml:"name"`
	Vertex   string `yaml:"vertex"`
	Fragment string `yaml:"fragment"`
}

type brushDescriptorFile struct {
	Programs []brushProgramSource `yaml:"programs"`
}

// loadBrushSources parses brush.yaml into a name-keyed lookup, the way
// load.Shd turns a yaml shader description into a *Shader.
func loadBrushSources(data []byte) (map[string]brushProgramSource, error) {
	var f brushDescriptorFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("render: brush descriptor: %w", err)
	}
	out := make(map[string]brushProgramSource, len(f.Programs))
	for _, p := range f.Programs {
		out[p.Name] = p
	}
	return out, nil
}

// brushSources is resolved once at package init; a malformed embedded
// descriptor is a build-time programming error, so it halts init rather
// than surfacing as a runtime error path.
var brushSources = func() map[string]brushProgramSource {
	m, err := loadBrushSources(brushDescriptorYAML)
	if err != nil {
		panic(err)
	}
	return m
}()

func brushSource(name string) brushProgramSource {
	s, ok := brushSources[name]
	if !ok {
		panic(fmt.Sprintf("render: no brush program descriptor named %q", name))
	}
	return s
}
