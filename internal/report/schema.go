package report

// Schema is the JSON Schema (Draft 2020-12) for the pygauge JSON
// output. It documents the structure written by WriteJSON.
const Schema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://github.com/redhouse-labs/pygauge/quality-report.schema.json",
  "title": "Pygauge Quality Report",
  "description": "Output schema for pygauge scan --format=json",
  "type": "object",
  "required": ["version", "project"],
  "properties": {
    "version": {
      "type": "string",
      "description": "Schema version (semver)"
    },
    "project": { "$ref": "#/$defs/Project" },
    "dead_code": {
      "type": "array",
      "items": { "type": "string" }
    },
    "coverage": { "$ref": "#/$defs/CheckOutcome" },
    "ruff": { "$ref": "#/$defs/CheckOutcome" },
    "mypy": { "$ref": "#/$defs/CheckOutcome" }
  },
  "$defs": {
    "Project": {
      "type": "object",
      "required": [
        "files", "total_files", "total_lines",
        "total_code_lines", "total_functions"
      ],
      "properties": {
        "files": {
          "type": "array",
          "items": { "$ref": "#/$defs/File" }
        },
        "total_files": { "type": "integer", "minimum": 0 },
        "total_lines": { "type": "integer", "minimum": 0 },
        "total_code_lines": { "type": "integer", "minimum": 0 },
        "total_functions": { "type": "integer", "minimum": 0 },
        "violations": {
          "type": ["array", "null"],
          "items": { "type": "string" }
        },
        "warnings": {
          "type": ["array", "null"],
          "items": { "type": "string" }
        }
      }
    },
    "File": {
      "type": "object",
      "required": ["path", "total_lines", "code_lines", "imports"],
      "properties": {
        "path": {
          "type": "string",
          "description": "Path relative to the scan root"
        },
        "total_lines": { "type": "integer", "minimum": 0 },
        "code_lines": { "type": "integer", "minimum": 0 },
        "functions": {
          "type": ["array", "null"],
          "items": { "$ref": "#/$defs/Function" }
        },
        "classes": {
          "type": ["array", "null"],
          "items": { "type": "string" }
        },
        "imports": { "type": "integer", "minimum": 0 }
      }
    },
    "Function": {
      "type": "object",
      "required": ["name", "file", "start_line", "end_line", "lines", "complexity"],
      "properties": {
        "name": {
          "type": "string",
          "description": "Function name, qualified as Class.method for methods"
        },
        "file": { "type": "string" },
        "start_line": { "type": "integer", "minimum": 1 },
        "end_line": { "type": "integer", "minimum": 1 },
        "lines": { "type": "integer", "minimum": 1 },
        "complexity": { "type": "integer", "minimum": 1 }
      }
    },
    "CheckOutcome": {
      "type": "object",
      "required": ["passed"],
      "properties": {
        "passed": { "type": "boolean" },
        "errors": { "type": "integer", "minimum": 0 },
        "output": { "type": "string" }
      }
    }
  }
}`
