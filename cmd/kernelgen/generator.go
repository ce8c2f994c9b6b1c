// Copyright 2025 go-linalg Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"
)

// nativeTypes are the element types with a native entry point, in BLAS
// prefix order (S, D, C, Z).
var nativeTypes = []string{"float32", "float64", "complex64", "complex128"}

// Kernel describes a generic entry point to specialize.
type Kernel struct {
	// Name is the exported generic function, e.g. "Trmv".
	Name string

	// Package is the package the output belongs to.
	Package string

	// params and args render the wrapper signature and call for one
	// element type.
	params func(elem string) string
	args   string
}

// Params returns the wrapper parameter list for elem.
func (k Kernel) Params(elem string) string { return k.params(elem) }

// Args returns the argument list forwarded to the generic function.
func (k Kernel) Args() string { return k.args }

var kernels = map[string]Kernel{
	"trmv": {
		Name:    "Trmv",
		Package: "trmv",
		params: func(e string) string {
			return fmt.Sprintf("a la.Triangular[%[1]s, *la.Dense[%[1]s]], x *la.Strided[%[1]s]", e)
		},
		args: "a, x",
	},
	"diagmv": {
		Name:    "Diagmv",
		Package: "diagmv",
		params: func(e string) string {
			return fmt.Sprintf("d, x *la.Strided[%s]", e)
		},
		args: "d, x",
	},
}

// KernelNames returns the names accepted by -kernel, sorted.
func KernelNames() []string {
	names := make([]string, 0, len(kernels))
	for name := range kernels {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Specialization is one element type of a kernel.
type Specialization struct {
	Elem   string
	Suffix string
}

var wrapperTemplate = template.Must(template.New("wrappers").Parse(`// Code generated by kernelgen. DO NOT EDIT.

package {{.Kernel.Package}}

import "github.com/ajroetker/go-linalg/la"
{{range .Specs}}
// {{$.Kernel.Name}}{{.Suffix}} is {{$.Kernel.Name}} for dense {{.Elem}} operands.
func {{$.Kernel.Name}}{{.Suffix}}({{$.Kernel.Params .Elem}}) {
	{{$.Kernel.Name}}[{{.Elem}}]({{$.Kernel.Args}})
}
{{end}}`))

// Generator emits typed wrappers around one generic kernel.
type Generator struct {
	Kernel string
	Output string
	Types  []string
}

// Generate renders and formats the wrapper file.
func (g *Generator) Generate() ([]byte, error) {
	k, ok := kernels[strings.ToLower(g.Kernel)]
	if !ok {
		return nil, fmt.Errorf("unknown kernel %q (known: %s)", g.Kernel, strings.Join(KernelNames(), ", "))
	}
	types := g.Types
	if len(types) == 0 {
		types = nativeTypes
	}

	title := cases.Title(language.English)
	specs := make([]Specialization, 0, len(types))
	for _, elem := range types {
		if !slices.Contains(nativeTypes, elem) {
			return nil, fmt.Errorf("element type %q has no native entry point", elem)
		}
		specs = append(specs, Specialization{Elem: elem, Suffix: title.String(elem)})
	}

	var buf bytes.Buffer
	if err := wrapperTemplate.Execute(&buf, struct {
		Kernel Kernel
		Specs  []Specialization
	}{k, specs}); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	name := g.Output
	if name == "" {
		name = "zz_" + strings.ToLower(k.Name) + "_gen.go"
	}
	src, err := imports.Process(name, buf.Bytes(), &imports.Options{Comments: true, TabIndent: true, TabWidth: 8})
	if err != nil {
		return nil, fmt.Errorf("formatting %s: %w\n%s", name, err, buf.Bytes())
	}
	return src, nil
}

// Run generates the wrappers and writes them to g.Output.
func (g *Generator) Run() error {
	src, err := g.Generate()
	if err != nil {
		return err
	}
	out := g.Output
	if out == "" {
		out = "zz_" + strings.ToLower(g.Kernel) + "_gen.go"
	}
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return err
	}
	return os.WriteFile(out, src, 0o644)
}
