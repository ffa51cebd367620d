package manifest

import (
	"fmt"
	"strings"

	"github.com/parquet-go/parquet-go"
)

// requiredColumns must be present for a file to be read as a manifest.
var requiredColumns = []string{
	"batch_id", "index", "file_name", "message_type", "interchange_ref", "message_ref", "seed",
}

// ValidateSchema checks that the Parquet schema carries every manifest column
// the summary relies on.
func ValidateSchema(schema *parquet.Schema) error {
	columns := make(map[string]bool)
	for _, field := range schema.Fields() {
		columns[strings.ToLower(field.Name())] = true
	}

	var missing []string
	for _, col := range requiredColumns {
		if !columns[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("not a manifest: missing columns %s", strings.Join(missing, ", "))
	}
	return nil
}
