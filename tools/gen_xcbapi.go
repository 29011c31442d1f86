// Package main generates the XcbApi symbol table from the libxcb C headers.
//
// Usage:
//
//	go run ./tools/gen_xcbapi.go [-o api_gen.go] header.h[=regexp] ...
//
// Every function declared in a header whose name starts with xcb_ becomes a
// uintptr field of XcbApi and an entry of xcbSymbols, in declaration order.
// Every #define XCB_* with an integer value becomes a constant.
// A regexp after '=' keeps only the matching functions and constants of that
// header.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"text/template"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/c"
)

// keyFunctions must survive filtering or the generated table is useless.
var keyFunctions = []string{"xcb_connect", "xcb_disconnect", "xcb_connection_has_error"}

type headerSpec struct {
	path    string
	pattern *regexp.Regexp
}

type headerGroup struct {
	Source    string
	Filter    string
	Functions []function
	Defines   []define
}

type function struct {
	Name  string
	Field string
}

type define struct {
	Name  string
	Value string
}

type declarations struct {
	functions []string
	defines   []define
}

func main() {
	output := flag.String("o", "", "output file (default: stdout)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [-o file] header.h[=regexp] ...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(context.Background(), flag.Args(), *output); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, output string) error {
	var groups []headerGroup
	for _, arg := range args {
		spec, err := parseHeaderArg(arg)
		if err != nil {
			return err
		}

		src, err := os.ReadFile(spec.path)
		if err != nil {
			return fmt.Errorf("failed to read header: %w", err)
		}

		decls, err := collectDeclarations(ctx, src)
		if err != nil {
			return fmt.Errorf("%s: %w", spec.path, err)
		}

		group := headerGroup{Source: headerName(spec.path)}
		if spec.pattern != nil {
			group.Filter = spec.pattern.String()
		}
		for _, name := range decls.functions {
			if spec.pattern != nil && !spec.pattern.MatchString(name) {
				continue
			}
			group.Functions = append(group.Functions, function{Name: name, Field: fieldName(name)})
		}
		for _, def := range decls.defines {
			if spec.pattern != nil && !spec.pattern.MatchString(def.Name) {
				continue
			}
			group.Defines = append(group.Defines, def)
		}
		fmt.Fprintf(os.Stderr, "%s: parsed %d functions and %d constants, kept %d and %d\n",
			spec.path, len(decls.functions), len(decls.defines), len(group.Functions), len(group.Defines))
		groups = append(groups, group)
	}

	if err := validate(groups); err != nil {
		return err
	}

	code, err := render(groups)
	if err != nil {
		return err
	}

	if output == "" {
		_, err = os.Stdout.Write(code)
		return err
	}
	return os.WriteFile(output, code, 0o644)
}

func parseHeaderArg(arg string) (headerSpec, error) {
	path, expr, hasFilter := strings.Cut(arg, "=")
	path = strings.TrimSpace(path)
	if path == "" {
		return headerSpec{}, fmt.Errorf("empty header path in %q", arg)
	}
	spec := headerSpec{path: path}
	if hasFilter {
		pattern, err := regexp.Compile(expr)
		if err != nil {
			return headerSpec{}, fmt.Errorf("invalid filter for %s: %w", path, err)
		}
		spec.pattern = pattern
	}
	return spec, nil
}

// headerName keeps the include-relative part of a header path, e.g. xcb/xcb.h.
func headerName(path string) string {
	return filepath.ToSlash(filepath.Join(filepath.Base(filepath.Dir(path)), filepath.Base(path)))
}

// collectDeclarations returns the xcb_ functions and the integer XCB_ macros
// of a C header, in declaration order. Function pointer typedefs, parameters,
// inline definitions and function-like macros are skipped.
func collectDeclarations(ctx context.Context, src []byte) (declarations, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(c.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return declarations{}, fmt.Errorf("failed to parse header: %w", err)
	}
	if tree == nil {
		return declarations{}, fmt.Errorf("failed to parse header: nil tree")
	}

	var decls declarations
	seen := make(map[string]bool)

	var walk func(node *sitter.Node)
	walk = func(node *sitter.Node) {
		switch node.Type() {
		case "type_definition", "parameter_list", "function_definition",
			"field_declaration_list", "preproc_function_def", "comment":
			return
		case "preproc_def":
			name := node.ChildByFieldName("name")
			value := node.ChildByFieldName("value")
			if name == nil || value == nil {
				return
			}
			macro := name.Content(src)
			if !strings.HasPrefix(macro, "XCB_") || seen[macro] {
				return
			}
			if literal, ok := intLiteral(value.Content(src)); ok {
				seen[macro] = true
				decls.defines = append(decls.defines, define{Name: macro, Value: literal})
			}
			return
		case "function_declarator":
			decl := node.ChildByFieldName("declarator")
			if decl != nil && decl.Type() == "identifier" {
				name := decl.Content(src)
				if strings.HasPrefix(name, "xcb_") && !seen[name] {
					seen[name] = true
					decls.functions = append(decls.functions, name)
				}
			}
			return
		}
		for i := 0; i < int(node.NamedChildCount()); i++ {
			if child := node.NamedChild(i); child != nil {
				walk(child)
			}
		}
	}
	walk(tree.RootNode())

	return decls, nil
}

// intLiteral turns a C integer macro body such as 0L or 0x10u into a Go
// literal. Anything else is rejected.
func intLiteral(body string) (string, bool) {
	literal := strings.TrimRight(strings.TrimSpace(body), "uUlL")
	if literal == "" {
		return "", false
	}
	if _, err := strconv.ParseInt(literal, 0, 64); err != nil {
		return "", false
	}
	return literal, true
}

var initialisms = map[string]string{
	"id":  "ID",
	"fd":  "FD",
	"xge": "XGE",
}

// fieldName turns xcb_connect_to_fd into ConnectToFD.
func fieldName(name string) string {
	var b strings.Builder
	for _, part := range strings.Split(strings.TrimPrefix(name, "xcb_"), "_") {
		if part == "" {
			continue
		}
		if upper, ok := initialisms[part]; ok {
			b.WriteString(upper)
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}

func validate(groups []headerGroup) error {
	names := make(map[string]string)
	fields := make(map[string]string)
	defines := make(map[string]string)
	for _, group := range groups {
		for _, def := range group.Defines {
			if prev, ok := defines[def.Name]; ok {
				return fmt.Errorf("duplicate constant %s in %s and %s", def.Name, prev, group.Source)
			}
			defines[def.Name] = group.Source
		}
		for _, fn := range group.Functions {
			if prev, ok := names[fn.Name]; ok {
				return fmt.Errorf("duplicate function %s in %s and %s", fn.Name, prev, group.Source)
			}
			names[fn.Name] = group.Source
			if prev, ok := fields[fn.Field]; ok {
				return fmt.Errorf("functions %s and %s map to the same field %s", prev, fn.Name, fn.Field)
			}
			fields[fn.Field] = fn.Name
		}
	}

	for _, name := range keyFunctions {
		if _, ok := names[name]; !ok {
			return fmt.Errorf("key function %s not found, the header or filter is wrong", name)
		}
	}
	return nil
}

var apiTemplate = template.Must(template.New("api").Parse(`// Code generated by tools/gen_xcbapi.go; DO NOT EDIT.
//
// Sources:
{{- range .Groups}}
//	{{.Source}}{{if .Filter}} (filter: {{.Filter}}){{end}}
{{- end}}

package xcbew
{{if .Defines}}
// Integer constants of the libxcb headers, in declaration order.
const (
{{- range .Defines}}
	{{.Name}} = {{.Value}}
{{- end}}
)
{{end}}
// XcbApi holds the resolved address of every libxcb export the loader requires.
// The fields are in resolution order.
type XcbApi struct {
{{- range $i, $g := .Groups}}
{{- if $i}}
{{end}}
	// {{$g.Source}}
{{- range $g.Functions}}
	{{.Field}} uintptr // {{.Name}}
{{- end}}
{{- end}}
}

var xcbSymbols = []symbol{
{{- range .Groups}}
{{- range .Functions}}
	{"{{.Name}}", func(api *XcbApi) *uintptr { return &api.{{.Field}} }},
{{- end}}
{{- end}}
}
`))

type templateData struct {
	Groups  []headerGroup
	Defines []define
}

func render(groups []headerGroup) ([]byte, error) {
	data := templateData{Groups: groups}
	for _, group := range groups {
		data.Defines = append(data.Defines, group.Defines...)
	}

	var buf bytes.Buffer
	if err := apiTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render symbol table: %w", err)
	}
	code, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format generated code: %w", err)
	}
	return code, nil
}
