// Command fallbackgen writes zz_generated.fallback.go: value types that
// satisfy go-nvml's generated interfaces without a driver. Handle-bound
// nvml.Interface methods forward to the handle; every other method returns
// ERROR_NOT_SUPPORTED.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
)

const nvmlModule = "github.com/NVIDIA/go-nvml"

// handlePrefixes maps a handle interface to the prefix its methods carry on
// nvml.Interface.
var handlePrefixes = map[string]string{
	"ComputeInstance": "ComputeInstance",
	"Device":          "Device",
	"EventSet":        "EventSet",
	"GpmSample":       "GpmSample",
	"GpuInstance":     "GpuInstance",
	"Unit":            "Unit",
	"VgpuInstance":    "VgpuInstance",
	"VgpuTypeId":      "VgpuType",
}

type method struct {
	name    string
	params  []string
	results []string
}

func main() {
	api := flag.String("api", "", "path to go-nvml pkg/nvml/zz_generated.api.go (default: resolved with go list)")
	out := flag.String("out", "zz_generated.fallback.go", "output file")
	types := flag.String("types", "Interface,Device,GpuInstance,EventSet", "interfaces to emit fallbacks for")
	flag.Parse()

	path := *api
	if path == "" {
		dir, err := exec.Command("go", "list", "-m", "-f", "{{.Dir}}", nvmlModule).Output()
		if err != nil {
			log.Fatalf("failed to locate %s: %v", nvmlModule, err)
		}
		path = filepath.Join(strings.TrimSpace(string(dir)), "pkg", "nvml", "zz_generated.api.go")
	}

	ifaces, err := parseInterfaces(path)
	if err != nil {
		log.Fatal(err)
	}

	src, err := render(ifaces, strings.Split(*types, ","))
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(*out, src, 0o644); err != nil {
		log.Fatalf("failed to write %s: %v", *out, err)
	}
}

func parseInterfaces(path string) (map[string][]method, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, nil, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	ifaces := make(map[string][]method)
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}
		for _, spec := range gen.Specs {
			ts := spec.(*ast.TypeSpec)
			it, ok := ts.Type.(*ast.InterfaceType)
			if !ok {
				continue
			}
			var methods []method
			for _, field := range it.Methods.List {
				fn, ok := field.Type.(*ast.FuncType)
				if !ok || len(field.Names) == 0 {
					continue
				}
				methods = append(methods, method{
					name:    field.Names[0].Name,
					params:  fieldTypes(fn.Params),
					results: fieldTypes(fn.Results),
				})
			}
			ifaces[ts.Name.Name] = methods
		}
	}
	return ifaces, nil
}

func fieldTypes(list *ast.FieldList) []string {
	if list == nil {
		return nil
	}
	var out []string
	for _, f := range list.List {
		n := max(len(f.Names), 1)
		for i := 0; i < n; i++ {
			out = append(out, qualify(f.Type))
		}
	}
	return out
}

// qualify renders expr with exported identifiers prefixed by nvml.
func qualify(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.Ident:
		if ast.IsExported(e.Name) {
			return "nvml." + e.Name
		}
		return e.Name
	case *ast.StarExpr:
		return "*" + qualify(e.X)
	case *ast.ArrayType:
		if e.Len == nil {
			return "[]" + qualify(e.Elt)
		}
		return "[" + qualify(e.Len) + "]" + qualify(e.Elt)
	case *ast.BasicLit:
		return e.Value
	case *ast.SelectorExpr:
		return qualify(e.X) + "." + e.Sel.Name
	default:
		log.Fatalf("unsupported type expression %T", expr)
		return ""
	}
}

func render(ifaces map[string][]method, types []string) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by fallbackgen from %s. DO NOT EDIT.\n\n", nvmlModule)
	buf.WriteString("package mocknvml\n\n")
	buf.WriteString("import \"github.com/NVIDIA/go-nvml/pkg/nvml\"\n")

	handles := make(map[string]map[string]method)
	for name := range handlePrefixes {
		handles[name] = make(map[string]method)
		for _, m := range ifaces[name] {
			handles[name][m.name] = m
		}
	}
	// Longest prefix first so VgpuInstance wins over shorter matches.
	names := make([]string, 0, len(handlePrefixes))
	for name := range handlePrefixes {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return len(handlePrefixes[names[i]]) > len(handlePrefixes[names[j]])
	})

	for _, t := range types {
		methods, ok := ifaces[t]
		if !ok {
			return nil, fmt.Errorf("interface %s not found", t)
		}
		recv := "fallback" + t
		fmt.Fprintf(&buf, "\n// %s implements nvml.%s without a driver.\ntype %s struct{}\n", recv, t, recv)

		for _, m := range methods {
			forward := ""
			if t == "Interface" {
				forward = forwardTarget(m, names, handles)
			}
			writeMethod(&buf, recv, m, forward)
		}
	}

	buf.WriteString("\n// fallbackExtensions resolves no symbols.\ntype fallbackExtensions struct{}\n\n")
	buf.WriteString("func (fallbackExtensions) LookupSymbol(string) error {\n\treturn nvml.ERROR_NOT_SUPPORTED\n}\n")

	return format.Source(buf.Bytes())
}

// forwardTarget returns the handle method m maps to, or "".
func forwardTarget(m method, names []string, handles map[string]map[string]method) string {
	for _, h := range names {
		prefix := handlePrefixes[h]
		if !strings.HasPrefix(m.name, prefix) || len(m.params) == 0 || m.params[0] != "nvml."+h {
			continue
		}
		target, ok := handles[h][strings.TrimPrefix(m.name, prefix)]
		if ok && equal(target.params, m.params[1:]) && equal(target.results, m.results) {
			return target.name
		}
		return ""
	}
	return ""
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func writeMethod(buf *bytes.Buffer, recv string, m method, forward string) {
	params := make([]string, len(m.params))
	args := make([]string, len(m.params))
	for i, p := range m.params {
		args[i] = fmt.Sprintf("a%d", i)
		params[i] = args[i] + " " + p
	}

	results := make([]string, len(m.results))
	zeros := make([]string, len(m.results))
	failed := make([]string, len(m.results))
	hasReturn := false
	for i, r := range m.results {
		zeros[i] = fmt.Sprintf("r%d", i)
		failed[i] = zeros[i]
		if r == "nvml.Return" {
			hasReturn = true
			zeros[i] = "nvml.ERROR_NOT_SUPPORTED"
			failed[i] = "nvml.ERROR_INVALID_ARGUMENT"
		}
		results[i] = fmt.Sprintf("r%d %s", i, r)
	}

	fmt.Fprintf(buf, "\nfunc (%s) %s(%s)", recv, m.name, strings.Join(params, ", "))
	switch {
	case len(m.results) == 0:
	case len(m.results) == 1 && hasReturn:
		buf.WriteString(" nvml.Return")
	default:
		fmt.Fprintf(buf, " (%s)", strings.Join(results, ", "))
	}
	buf.WriteString(" {\n")

	switch {
	case forward != "":
		fmt.Fprintf(buf, "\tif a0 == nil {\n\t\treturn %s\n\t}\n", strings.Join(failed, ", "))
		fmt.Fprintf(buf, "\treturn a0.%s(%s)\n", forward, strings.Join(args[1:], ", "))
	case m.name == "Extensions":
		buf.WriteString("\treturn fallbackExtensions{}\n")
	case len(m.results) > 0:
		fmt.Fprintf(buf, "\treturn %s\n", strings.Join(zeros, ", "))
	}
	buf.WriteString("}\n")
}
