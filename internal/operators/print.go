package operators

import (
	"fmt"
	"io"
	"strings"

	"colstore/internal/storage"
)

const (
	printMinWidth = 8
	printMaxWidth = 20
)

// Print is a one-input collaborator operator: it formats its input table
// as an aligned, "|"-delimited ASCII table on out and returns the input
// table unchanged, so a Print node can sit anywhere in a pipeline without
// affecting downstream operators.
type Print struct {
	base
	out io.Writer
}

// NewPrint builds a Print operator writing to out.
func NewPrint(input Operator, out io.Writer) *Print {
	return &Print{base: base{inputLeft: input}, out: out}
}

func (op *Print) Execute() (*storage.Table, error) {
	if err := op.checkNotExecuted(); err != nil {
		return nil, err
	}
	table, err := op.inputTableLeft()
	if err != nil {
		return nil, err
	}

	if err := render(op.out, table); err != nil {
		return nil, err
	}

	op.markExecuted(table)
	return table, nil
}

// render writes table's "=== Columns" header, a name row, a type row, and
// one "=== Chunk N ===" section per chunk, to out.
func render(out io.Writer, table *storage.Table) error {
	widths, err := columnWidths(table)
	if err != nil {
		return err
	}
	schema := table.Schema()

	var sb strings.Builder
	sb.WriteString("=== Columns\n")

	for i, def := range schema {
		fmt.Fprintf(&sb, "|%-*s", widths[i], def.Name)
	}
	sb.WriteString("|\n")

	for i, def := range schema {
		fmt.Fprintf(&sb, "|%-*s", widths[i], string(def.Type))
	}
	sb.WriteString("|\n")

	for chunkID := 0; chunkID < table.ChunkCount(); chunkID++ {
		chunk, err := table.Chunk(chunkID)
		if err != nil {
			return err
		}
		fmt.Fprintf(&sb, "=== Chunk %d ===\n", chunkID)

		if chunk.Size() == 0 {
			sb.WriteString("Empty chunk.\n")
			continue
		}

		for row := 0; row < chunk.Size(); row++ {
			sb.WriteString("|")
			for col := range schema {
				column, err := chunk.Column(col)
				if err != nil {
					return err
				}
				value, err := column.ElementAt(row)
				if err != nil {
					return err
				}
				fmt.Fprintf(&sb, "%-*s|", widths[col], value.Cell())
			}
			sb.WriteString("\n")
		}
	}

	_, err = io.WriteString(out, sb.String())
	return err
}

// columnWidths computes max(min_width, name length, max(cell length
// capped at max_width)) for every schema column.
func columnWidths(table *storage.Table) ([]int, error) {
	schema := table.Schema()
	widths := make([]int, len(schema))
	for i, def := range schema {
		widths[i] = maxInt(printMinWidth, len(def.Name))
	}

	for chunkID := 0; chunkID < table.ChunkCount(); chunkID++ {
		chunk, err := table.Chunk(chunkID)
		if err != nil {
			return nil, err
		}
		for col := range schema {
			column, err := chunk.Column(col)
			if err != nil {
				return nil, err
			}
			for row := 0; row < chunk.Size(); row++ {
				value, err := column.ElementAt(row)
				if err != nil {
					return nil, err
				}
				cellLen := len(value.Cell())
				if cellLen > printMaxWidth {
					cellLen = printMaxWidth
				}
				widths[col] = maxInt(widths[col], cellLen)
			}
		}
	}
	return widths, nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
