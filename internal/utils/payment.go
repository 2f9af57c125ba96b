package utils

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// GeneratePaymentReference builds the simulated payment QR token. Format:
// qr_payment_<8 hex chars>_<integer total>. Collision resistance comes from
// the uuid; the total suffix keeps the token human-checkable.
func GeneratePaymentReference(total float64) string {
	token := strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
	return fmt.Sprintf("qr_payment_%s_%d", token, int(total))
}
