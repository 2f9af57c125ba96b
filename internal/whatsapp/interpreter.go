package whatsapp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tambar-be/internal/product"
)

// ProductFinder resolves a product by a case-insensitive name fragment.
// product.Repository satisfies it.
type ProductFinder interface {
	FindByName(ctx context.Context, fragment string) (*product.Product, error)
}

// SalesReporter aggregates non-cancelled orders since a point in time.
// order.Repository satisfies it.
type SalesReporter interface {
	SalesSince(ctx context.Context, since time.Time) (int, float64, error)
}

const menuText = `🍺 TAMBAR EXPRESS - MENÚ DE COMANDOS

📦 INVENTARIO:
/stock [producto] - Consultar stock
/productos - Ver catálogo completo

🛒 PEDIDOS:
/pedido [producto] [cantidad] - Hacer pedido
/mis_pedidos - Ver mis pedidos

📊 REPORTES:
/reporte ventas - Ventas del día
/reporte inventario - Estado de inventario

📞 CONTACTO:
/contacto - Información de contacto
/horarios - Horarios de atención`

const (
	orderUsageText = "🛒 Para hacer un pedido, use: /pedido [producto] [cantidad]\nEjemplo: /pedido Cerveza Pilsener 6"
	reportListText = "📊 Reportes disponibles:\n- /reporte ventas\n- /reporte inventario"
	unknownText    = "❓ Comando no reconocido. Escriba /menu para ver comandos disponibles."
	greetingText   = "¡Hola! 👋 Bienvenido a Tambar Express.\nEscriba /menu para ver los comandos disponibles."
)

// overridable in tests
var timeNow = time.Now

// Interpreter classifies free text into commands and renders the response.
// It holds no conversation state: every call is independent.
type Interpreter struct {
	products ProductFinder
	sales    SalesReporter
}

func NewInterpreter(products ProductFinder, sales SalesReporter) *Interpreter {
	return &Interpreter{products: products, sales: sales}
}

// Interpret produces the reply for a raw incoming text plus the command that
// matched, empty when the text is not a slash command. Lookup misses render
// as user-facing messages; only storage failures surface as errors.
func (i *Interpreter) Interpret(ctx context.Context, message string) (response, command string, err error) {
	if !strings.HasPrefix(message, "/") {
		return greetingText, "", nil
	}

	parts := strings.Fields(message)
	command = parts[0]

	switch {
	case command == "/stock" && len(parts) > 1:
		response, err = i.stockResponse(ctx, strings.Join(parts[1:], " "))

	case command == "/pedido":
		response = orderUsageText

	case command == "/reporte" && len(parts) > 1:
		if parts[1] == "ventas" {
			response, err = i.salesReportResponse(ctx)
		} else {
			response = reportListText
		}

	case command == "/menu":
		response = menuText

	default:
		response = unknownText
	}

	return response, command, err
}

func (i *Interpreter) stockResponse(ctx context.Context, fragment string) (string, error) {
	p, err := i.products.FindByName(ctx, fragment)
	if errors.Is(err, product.ErrProductNotFound) {
		return fmt.Sprintf("❌ Producto '%s' no encontrado", fragment), nil
	}
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(
		"📦 Stock de %s: %d unidades\n💰 Precio: Bs. %.2f",
		p.Name, p.Stock, p.SalePrice,
	), nil
}

func (i *Interpreter) salesReportResponse(ctx context.Context) (string, error) {
	now := timeNow()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	count, revenue, err := i.sales.SalesSince(ctx, midnight)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(
		"📊 Reporte de Ventas de Hoy:\n🛍️ Pedidos: %d\n💰 Ingresos: Bs. %.2f",
		count, revenue,
	), nil
}
