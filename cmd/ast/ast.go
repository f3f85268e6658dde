package main

import (
	"fmt"
	"os"
	"strings"
)

//go:generate sh -c "go run . Stmt > ../../internal/stmt.go && go run . Expr > ../../internal/expr.go && gofmt -w ../../internal/stmt.go ../../internal/expr.go"

var nodes = map[string][]string{
	"Stmt": {
		"Let: Name *Token, Value Expr",
		"Print: Keyword *Token, Value Expr",
		"If: Keyword *Token, Condition Expr, ThenBranch []Stmt, ElseBranch []Stmt",
		"While: Keyword *Token, Condition Expr, Body []Stmt",
	},
	"Expr": {
		"Integer: Token *Token, Value int64",
		"String: Token *Token, Value string",
		"Variable: Name *Token",
		"Binary: Left Expr, Operator *Token, Right Expr",
	},
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: ast Stmt|Expr")
		os.Exit(2)
	}
	types, ok := nodes[os.Args[1]]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown node family %q\n", os.Args[1])
		os.Exit(2)
	}
	fmt.Print(generateAst(os.Args[1], types))
}

func generateAst(baseName string, types []string) string {
	lowerBase := strings.ToLower(baseName)

	out := "// Code generated by cmd/ast; DO NOT EDIT.\n\n"
	out += "package internal\n\n"

	// Start base interface
	out += "type " + baseName + " interface {\n"
	out += "\taccept(" + lowerBase + "Visitor) R\n"
	out += "}\n\n"
	// End base interface

	// Start Visitor interface
	out += fmt.Sprintf("type %sVisitor interface {\n", lowerBase)
	for _, t := range types {
		typeDef := strings.Split(t, ":")
		name := strings.TrimSpace(typeDef[0])
		out += "\tvisit" + name + baseName + "(" + lowerBase + " *" + name + baseName + ") R\n"
	}
	out += "}\n\n"
	// End Visitor interface

	// Start structs
	for _, t := range types {
		typeDef := strings.Split(t, ":")
		structName := strings.TrimSpace(typeDef[0])
		structFields := strings.TrimSpace(typeDef[1])
		out += generateType(baseName, structName, structFields)
	}
	// End structs

	return strings.TrimSuffix(out, "\n")
}

func generateType(baseName, name, fields string) string {
	// Start Structure Definition
	structName := name + baseName
	out := "type " + structName + " struct {\n"
	for _, field := range strings.Split(fields, ",") {
		out += "\t" + strings.TrimSpace(field) + "\n"
	}
	out += "}\n\n"
	// End Structure Definition

	// Start Method Definition
	out += "func (s *" + structName + ") accept(visitor " + strings.ToLower(baseName) + "Visitor) R {\n"
	out += "\treturn visitor.visit" + name + baseName + "(s)\n"
	out += "}\n\n"
	// End Method Definition

	return out
}
