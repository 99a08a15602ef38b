package schema

// Rule is an optional cross-field validation rule attached to an entity.
// The expression is evaluated against {record, action}; a true result
// means the rule is violated. Neither shipped variant declares any,
// since every constraint in those schemas is per-field, but deployments
// can attach rules without touching the engine.
type Rule struct {
	Field      string // field the violation is reported against (may be empty)
	Expression string
	Message    string

	// Compiled caches the expr program after first evaluation.
	Compiled any
}
