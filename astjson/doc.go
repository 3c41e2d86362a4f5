// Package astjson serializes ASTs to JSON and back.
//
// Every node serializes to an object whose "@type" property is the node's
// Kind and whose remaining properties are the node's own fields, children
// inline. Locations serialize as a four-element [startLine, startColumn,
// endLine, endColumn] array and can be omitted wholesale for output meant
// to be diffed across reformatting.
//
// Unmarshal rebuilds the node tree and links it, so parent references on
// the returned root are valid. Rebuilt trees are not counted; node-count
// integrity is a property of translation, not of transport.
package astjson
