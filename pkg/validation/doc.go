// Package validation implements the rule evaluation and transformation
// engine applied to harvested record metadata.
//
// The engine is built from three layers:
//
//   - Content rules: stateless-per-call validators over a single field value
//     (regex, controlled vocabulary, length bounds, URL reachability, dynamic
//     year range) and node-occurrence checks over XPath node sets. Every
//     content rule follows a uniform edge policy: a missing value reports
//     receivedValue "NULL" and is invalid; values longer than 100 characters
//     are truncated to 100 + "..." for display while the full value is used
//     for the actual check.
//
//   - Quantifiers: a pure policy reducing an occurrence count to a rule-level
//     verdict (ONE_ONLY, ONE_OR_MORE, ZERO_OR_MORE, ZERO_ONLY, ALL).
//
//   - Aggregates: Validator runs every rule against a record and ANDs the
//     mandatory rule verdicts into the record verdict; Transformer applies
//     mutation rules in ascending run order and stamps the document's
//     datestamp once when anything changed.
//
// Rules are persisted as rows carrying a polymorphic JSON config blob plus
// relational identity (id, mandatory, quantifier, run order). The serializer
// reconstructs concrete rule values from the blob via a closed registry of
// type discriminators and overlays the identity fields afterwards; the
// variant itself never persists them.
//
// ValidationWorker in this package is the composition point: it drives a
// batch worker run that loads each record's metadata, transforms it,
// validates it, persists status and buffers statistics observations per page.
package validation
