package codefmt

import (
	"go/ast"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// UpperFirst upper-cases the first letter of the name and keeps the rest.
//
// e.g., UpperFirst("token") => "Token"
func UpperFirst(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}

// LowerFirst lower-cases the first letter of the name and keeps the rest.
//
// e.g., LowerFirst("Token") => "token"
func LowerFirst(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToLower(r)) + name[size:]
}

// TypeSuffix derives a method name suffix from a type expression. It is used
// to name accessors for target types, e.g., AsRefBytes for []byte.
//
//	[]byte        => Bytes
//	io.Reader     => Reader
//	*Node         => NodePtr
//	[]string      => StringSlice
//	[4]int        => IntArray
//	map[string]V  => StringVMap
//	List[int]     => ListInt
func TypeSuffix(expr ast.Expr) string {
	switch expr := ast.Unparen(expr).(type) {
	case *ast.Ident:
		return title(expr.Name)

	case *ast.SelectorExpr:
		return title(expr.Sel.Name)

	case *ast.StarExpr:
		return TypeSuffix(expr.X) + "Ptr"

	case *ast.ArrayType:
		elem := TypeSuffix(expr.Elt)
		if expr.Len != nil {
			return elem + "Array"
		}
		switch elem {
		case "Byte", "Rune":
			return elem + "s"
		}
		return elem + "Slice"

	case *ast.MapType:
		return TypeSuffix(expr.Key) + TypeSuffix(expr.Value) + "Map"

	case *ast.ChanType:
		return TypeSuffix(expr.Value) + "Chan"

	case *ast.FuncType:
		return "Func"

	case *ast.InterfaceType:
		if expr.Methods == nil || len(expr.Methods.List) == 0 {
			return "Any"
		}
		return "Interface"

	case *ast.StructType:
		return "Struct"

	case *ast.IndexExpr:
		return TypeSuffix(expr.X) + TypeSuffix(expr.Index)

	case *ast.IndexListExpr:
		s := TypeSuffix(expr.X)
		for _, index := range expr.Indices {
			s += TypeSuffix(index)
		}
		return s
	}
	return "Target"
}

func title(name string) string {
	return cases.Title(language.Und, cases.NoLower).String(name)
}
