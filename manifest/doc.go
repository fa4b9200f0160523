// Package manifest describes which interfaces a program expects to be
// castable and which concrete types must implement them, and checks a
// frozen registry against that description.
//
// Registration is scattered across init() functions, so nothing in the
// build notices when an import is dropped or a Register call is deleted.
// A manifest kept next to the program turns that drift into diagnostics:
//
//	version: "1"
//	strict: true
//	duplicates: error
//	interfaces:
//	  - name: plugins.Foo
//	    implementations: [plugins.A]
//	  - name: plugins.Baz
//	    allow_empty: true
//
// Names may be short (plugins.Foo) or fully qualified
// (example.com/app/plugins.Foo). The same schema can be written as TOML.
package manifest
