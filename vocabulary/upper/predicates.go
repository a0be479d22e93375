package upper

import "github.com/c360studio/semstreams/vocabulary"

// Class qualified names identify the kinds of subjects the generator
// produces.
const (
	// DirectClass marks a diamond explicitly declared as an ontology class.
	DirectClass = "upper:DirectClass"

	// Attribute marks a generated subject for a scalar-valued property.
	Attribute = "upper:Attribute"

	// Relationship marks a generated subject for a class-valued property.
	Relationship = "upper:Relationship"

	// DomainModel marks the subject representing the diagram's domain.
	DomainModel = "upper:DomainModel"
)

// Predicate qualified names connect generated subjects.
const (
	// RDFType is the standard rdf:type predicate.
	RDFType = "rdf:type"

	// Class links a relationship to its target class.
	Class = "upper:class"

	// Datatype links an attribute to its datatype qualified name.
	Datatype = "upper:datatype"

	// MinCount is the declared minimum occurrence count of a property.
	MinCount = "upper:minCount"

	// MaxCount is the declared maximum occurrence count of a property.
	// Absent when the cardinality is unbounded.
	MaxCount = "upper:maxCount"

	// PrimaryKey links a class to the ordered list of attributes forming
	// its primary key.
	PrimaryKey = "upper:primaryKey"

	// Property links a class to one of its properties.
	Property = "upper:property"

	// Domain carries the domain label as a string literal.
	Domain = "upper:domain"
)

// PredicateOrder is the fixed ontology ordering of predicates inside a
// subject block. Predicates outside this list sort after it by their
// full qualified form.
var PredicateOrder = []string{
	RDFType,
	Class,
	Datatype,
	MinCount,
	MaxCount,
	PrimaryKey,
	Property,
}

func init() {
	vocabulary.Register("upper.class",
		vocabulary.WithDescription("Target class of a relationship property"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"class"))

	vocabulary.Register("upper.datatype",
		vocabulary.WithDescription("Datatype of an attribute property"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"datatype"))

	vocabulary.Register("upper.min_count",
		vocabulary.WithDescription("Minimum occurrence count of a property"),
		vocabulary.WithDataType("integer"),
		vocabulary.WithIRI(Namespace+"minCount"))

	vocabulary.Register("upper.max_count",
		vocabulary.WithDescription("Maximum occurrence count of a property"),
		vocabulary.WithDataType("integer"),
		vocabulary.WithIRI(Namespace+"maxCount"))

	vocabulary.Register("upper.primary_key",
		vocabulary.WithDescription("Ordered attribute list forming a class primary key"),
		vocabulary.WithDataType("array"),
		vocabulary.WithIRI(Namespace+"primaryKey"))

	vocabulary.Register("upper.property",
		vocabulary.WithDescription("Property owned by a class"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"property"))

	vocabulary.Register("upper.domain",
		vocabulary.WithDescription("Domain label of a diagram"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"domain"))
}
