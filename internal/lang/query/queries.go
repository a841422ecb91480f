package query

// builtinQueries holds a modest tag query per query-driven language: enough
// definition kinds to exercise every component described in SPEC_FULL.md
// without attempting to replicate a full upstream tags.scm. Capture names
// follow the universal `@definition.<kind>` / `@name` convention; kinds are
// single words (not ctags single-letter codes), matching spec.md §4.5's
// "simpler address format" — these walkers never emit a Kind at all.
var builtinQueries = map[string]string{
	"ruby": `
(method name: (identifier) @name) @definition.method
(singleton_method name: (identifier) @name) @definition.method
(class name: (constant) @name) @definition.class
(module name: (constant) @name) @definition.module
`,
	"php": `
(function_definition name: (name) @name) @definition.function
(method_declaration name: (name) @name) @definition.method
(class_declaration name: (name) @name) @definition.class
(interface_declaration name: (name) @name) @definition.interface
(trait_declaration name: (name) @name) @definition.trait
`,
	"java": `
(class_declaration name: (identifier) @name) @definition.class
(interface_declaration name: (identifier) @name) @definition.interface
(enum_declaration name: (identifier) @name) @definition.enum
(method_declaration name: (identifier) @name) @definition.method
(constructor_declaration name: (identifier) @name) @definition.constructor
`,
	"c": `
(function_definition declarator: (function_declarator declarator: (identifier) @name)) @definition.function
(struct_specifier name: (type_identifier) @name) @definition.struct
(enum_specifier name: (type_identifier) @name) @definition.enum
(union_specifier name: (type_identifier) @name) @definition.union
(type_definition declarator: (type_identifier) @name) @definition.typedef
`,
	"ocaml": `
(value_definition (let_binding pattern: (value_name) @name)) @definition.value
(type_definition (type_binding name: (type_constructor) @name)) @definition.type
(module_definition (module_binding name: (module_name) @name)) @definition.module
`,
	"elixir": `
(call target: (identifier) @_kw (arguments (identifier) @name) @_ignore (#eq? @_kw "def")) @definition.function
(call target: (identifier) @_kw (arguments (identifier) @name) (#eq? @_kw "defmodule")) @definition.module
`,
	"lua": `
(function_declaration name: (identifier) @name) @definition.function
(function_declaration name: (dot_index_expression field: (identifier) @name)) @definition.function
(local_function name: (identifier) @name) @definition.function
`,
	"bash": `
(function_definition name: (word) @name) @definition.function
`,
	"csharp": `
(class_declaration name: (identifier) @name) @definition.class
(interface_declaration name: (identifier) @name) @definition.interface
(struct_declaration name: (identifier) @name) @definition.struct
(enum_declaration name: (identifier) @name) @definition.enum
(method_declaration name: (identifier) @name) @definition.method
`,
	"scala": `
(class_definition name: (identifier) @name) @definition.class
(object_definition name: (identifier) @name) @definition.object
(trait_definition name: (identifier) @name) @definition.trait
(function_definition name: (identifier) @name) @definition.function
`,
	"julia": `
(function_definition name: (identifier) @name) @definition.function
(struct_definition name: (identifier) @name) @definition.struct
(module_definition name: (identifier) @name) @definition.module
`,
}

// BuiltinQuery returns the built-in tag query for language name, if any.
func BuiltinQuery(name string) (string, bool) {
	q, ok := builtinQueries[name]
	return q, ok
}
