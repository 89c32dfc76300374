package report

// Schema is the JSON Schema (Draft 2020-12) for one line of
// `aliquot --format=json` output. Every line is one record.
const Schema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://github.com/unbound-force/aliquot/record.schema.json",
  "title": "Aliquot Record",
  "description": "One line of aliquot --format=json output",
  "type": "object",
  "required": ["n"],
  "additionalProperties": false,
  "properties": {
    "n": {
      "type": "integer",
      "minimum": 0,
      "description": "Starting number"
    },
    "kind": {
      "type": "string",
      "enum": [
        "PerfectNumber",
        "PrimeNumber",
        "Convergent",
        "AspiringNumber",
        "AmicableNumber",
        "SociableNumber",
        "IntoCycle",
        "Unknown"
      ],
      "description": "Classification of the sequence starting at n"
    },
    "name": {
      "type": "string",
      "description": "Human-readable kind name"
    },
    "length": {
      "type": "integer",
      "minimum": 1,
      "description": "Number of elements in the sequence"
    },
    "sequence": {
      "type": "array",
      "minItems": 1,
      "items": { "type": "integer", "minimum": 0 },
      "description": "Flattened sequence; the first element is n"
    },
    "cycle": {
      "type": "array",
      "minItems": 1,
      "items": { "type": "integer", "minimum": 0 },
      "description": "Periodic part for cycling kinds"
    },
    "sum": {
      "type": "integer",
      "minimum": 0,
      "description": "Sum of the proper divisors of n (sum mode only)"
    }
  }
}`
