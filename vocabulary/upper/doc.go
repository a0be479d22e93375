// Package upper defines the upper ontology vocabulary for diagram
// compilation. Every statement the triple generator emits uses the
// qualified names declared here; the serializers use the same constants
// to impose the fixed predicate ordering inside a subject block.
package upper
