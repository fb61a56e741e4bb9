package paynow

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateReference produces a merchant reference unique enough to use
// as-is for a new transaction. Merchants with their own invoice
// numbering should use that instead.
func GenerateReference() string {
	datePart := time.Now().UTC().Format("20060102-150405")
	idPart := strings.Split(uuid.New().String(), "-")[0]

	return fmt.Sprintf("INV-%s-%s", datePart, idPart)
}
