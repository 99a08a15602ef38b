package engine

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"candidate-backend/internal/schema"
)

// EvaluateRules runs the entity's expression rules against the record.
// A rule whose expression evaluates to true is violated. Rules run in the
// same pass as the field checks so all violations surface together.
func EvaluateRules(entity *schema.Entity, fields map[string]any, isCreate bool) []FieldError {
	if len(entity.Rules) == 0 {
		return nil
	}

	action := "update"
	if isCreate {
		action = "create"
	}
	env := map[string]any{
		"record": fields,
		"action": action,
	}

	var errs []FieldError
	for i := range entity.Rules {
		if fe := evaluateRule(&entity.Rules[i], env); fe != nil {
			errs = append(errs, *fe)
		}
	}
	return errs
}

func evaluateRule(rule *schema.Rule, env map[string]any) *FieldError {
	prog, ok := rule.Compiled.(*vm.Program)
	if !ok || prog == nil {
		compiled, err := CompileRule(rule.Expression)
		if err != nil {
			return &FieldError{Field: rule.Field, Message: fmt.Sprintf("rule compile error: %v", err)}
		}
		rule.Compiled = compiled
		prog = compiled
	}

	result, err := expr.Run(prog, env)
	if err != nil {
		return &FieldError{Field: rule.Field, Message: fmt.Sprintf("rule evaluation error: %v", err)}
	}

	violated, ok := result.(bool)
	if !ok || !violated {
		return nil
	}

	msg := rule.Message
	if msg == "" {
		msg = "Rule violated"
	}
	return &FieldError{Field: rule.Field, Message: msg}
}

// CompileRule compiles a rule expression into an expr program.
func CompileRule(expression string) (*vm.Program, error) {
	prog, err := expr.Compile(expression, expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile rule: %w", err)
	}
	return prog, nil
}
