package main

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// we do it the scripting way, instead of having types support from Go stdlib
var expressionTypes = []string{
	"IntLit: Value int64",
	"Var: Name string, Offset int",
	"BinOp: Left Expr, Op BinaryOperator, Right Expr, Offset int",
	"UnaryOp: Op UnaryOperator, Operand Expr",
}

func main() {
	if len(os.Args) != 2 {
		fmt.Println("Usage: ast_codegen <output directory>")
		os.Exit(64)
	}

	outputDir, err := filepath.Abs(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	src, err := defineAst(filepath.Base(outputDir), "Expr", expressionTypes)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fpath := filepath.Join(outputDir, "expr.go")
	if err := os.WriteFile(fpath, src, 0644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// defineAst returns the formatted source of the sealed base interface, its
// visitor, the dispatch function and one struct per node type.
func defineAst(packageName string, baseName string, types []string) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by ast_codegen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", packageName)
	fmt.Fprintf(&buf, "import \"fmt\"\n\n")

	fmt.Fprintf(&buf, "// %s is implemented by every %s node.\n", baseName, strings.ToLower(baseName))
	fmt.Fprintf(&buf, "type %s interface {\n", baseName)
	fmt.Fprintf(&buf, "\tNode\n")
	fmt.Fprintf(&buf, "\t%sNode()\n", strings.ToLower(baseName))
	fmt.Fprintf(&buf, "}\n\n")

	defineVisitor(&buf, baseName, types)
	defineAccept(&buf, baseName, types)

	for _, t := range types {
		typeName := strings.TrimSpace(strings.Split(t, ":")[0])
		fields := strings.TrimSpace(strings.Split(t, ":")[1])
		defineType(&buf, baseName, typeName, fields)
	}
	return format.Source(buf.Bytes())
}

func defineVisitor(writer io.Writer, baseName string, types []string) {
	// We have one method for each AST type
	fmt.Fprintf(writer, "// %sVisitor has one method for each %s node.\n", baseName, strings.ToLower(baseName))
	fmt.Fprintf(writer, "type %sVisitor[T any] interface {\n", baseName)
	for _, t := range types {
		typeName := strings.TrimSpace(strings.Split(t, ":")[0])
		fmt.Fprintf(
			writer,
			"\tVisit%s(%s *%s) (T, error)\n",
			typeName,
			strings.ToLower(baseName),
			typeName,
		)
	}
	fmt.Fprintf(writer, "}\n\n")
}

func defineAccept(writer io.Writer, baseName string, types []string) {
	param := strings.ToLower(baseName)
	fmt.Fprintf(writer, "// Accept%s dispatches %s to the matching method of visitor.\n", baseName, param)
	fmt.Fprintf(
		writer,
		"func Accept%s[T any](%s %s, visitor %sVisitor[T]) (T, error) {\n",
		baseName, param, baseName, baseName,
	)
	fmt.Fprintf(writer, "\tswitch %s := %s.(type) {\n", param, param)
	for _, t := range types {
		typeName := strings.TrimSpace(strings.Split(t, ":")[0])
		fmt.Fprintf(writer, "\tcase *%s:\n", typeName)
		fmt.Fprintf(writer, "\t\treturn visitor.Visit%s(%s)\n", typeName, param)
	}
	fmt.Fprintf(writer, "\t}\n")
	fmt.Fprintf(
		writer,
		"\tpanic(fmt.Sprintf(\"ast: unknown %s %%T\", %s))\n",
		param, param,
	)
	fmt.Fprintf(writer, "}\n")
}

func defineType(
	writer io.Writer,
	baseName string,
	typeName string,
	fieldList string,
) {
	var fields []string
	for _, f := range strings.Split(fieldList, ",") {
		field := strings.TrimSpace(f)
		fields = append(fields, field)
	}

	// Struct definition
	fmt.Fprintf(writer, "\ntype %s struct {\n", typeName)
	for _, f := range fields {
		fmt.Fprintf(writer, "\t%s\n", f)
	}
	fmt.Fprintf(writer, "}\n\n")

	// Constructor
	var params []string
	var paramNames []string
	for _, f := range fields {
		parts := strings.Fields(f)
		name := strings.ToLower(parts[0][:1]) + parts[0][1:]
		params = append(params, name+" "+parts[1])
		paramNames = append(paramNames, name)
	}
	fmt.Fprintf(
		writer,
		"func New%s(%s) *%s {\n",
		typeName,
		strings.Join(params, ", "),
		typeName,
	)
	fmt.Fprintf(
		writer,
		"\treturn &%s{%s}\n",
		typeName,
		strings.Join(paramNames, ", "),
	)
	fmt.Fprintf(writer, "}\n\n")

	// Marker methods sealing the interface
	fmt.Fprintf(writer, "func (*%s) node() {}\n", typeName)
	fmt.Fprintf(writer, "func (*%s) %sNode() {}\n", typeName, strings.ToLower(baseName))
}
