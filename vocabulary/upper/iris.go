package upper

// Namespace is the base IRI for upper ontology terms.
const Namespace = "https://semsketch.dev/upper#"

// RDFNamespace is the RDF syntax namespace.
const RDFNamespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

// XSDNamespace is the XML Schema datatypes namespace.
const XSDNamespace = "http://www.w3.org/2001/XMLSchema#"

// Prefix labels for the namespaces the serializers know about without a
// document-level declaration.
const (
	PrefixUpper = "upper"
	PrefixRDF   = "rdf"
	PrefixXSD   = "xsd"
)

// BuiltinPrefixes returns the prefix map every exporter starts from.
// Document prefixes are merged over these, so a document may rebind a
// label to its own namespace.
func BuiltinPrefixes() map[string]string {
	return map[string]string{
		PrefixRDF:   RDFNamespace,
		PrefixUpper: Namespace,
		PrefixXSD:   XSDNamespace,
	}
}
