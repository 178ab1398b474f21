// Package operators implements the engine's operator-tree execution
// model: an abstract operator node with zero, one, or two inputs, and the
// concrete GetTable, TableScan, and Print operators. Operators form a DAG
// built eagerly by the caller; execution is explicit and pull-based,
// driven from the root by calling Execute on each child before its
// parent.
package operators

import (
	"colstore/internal/engineerr"
	"colstore/internal/storage"
)

// Operator is a node in a query plan. It consumes zero to two input
// tables and produces one output table the first time Execute is called.
type Operator interface {
	Execute() (*storage.Table, error)
	// Output returns the memoized result of a prior Execute call, failing
	// with engineerr.PrematureAccess if the operator has not executed yet.
	Output() (*storage.Table, error)
}

// base is embedded by every concrete operator. It holds the operator's
// input(s) and memoizes the output of Execute so a query can be re-pulled
// from its root without double-running any operator twice, and so a
// second top-level Execute call on the same operator fails loudly instead
// of silently recomputing.
type base struct {
	inputLeft  Operator
	inputRight Operator
	output     *storage.Table
	executed   bool
}

func (b *base) Output() (*storage.Table, error) {
	if !b.executed {
		return nil, engineerr.New(engineerr.PrematureAccess, "operator has not executed yet")
	}
	return b.output, nil
}

// checkNotExecuted is called at the top of every concrete Execute
// implementation.
func (b *base) checkNotExecuted() error {
	if b.executed {
		return engineerr.New(engineerr.DoubleExecute, "operator has already executed")
	}
	return nil
}

func (b *base) markExecuted(out *storage.Table) {
	b.output = out
	b.executed = true
}

// inputTableLeft returns the memoized output of the left input operator.
func (b *base) inputTableLeft() (*storage.Table, error) {
	return b.inputLeft.Output()
}

// inputTableRight returns the memoized output of the right input
// operator. Only two-input operators call this.
func (b *base) inputTableRight() (*storage.Table, error) {
	return b.inputRight.Output()
}
