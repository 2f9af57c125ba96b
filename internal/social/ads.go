package social

import (
	"fmt"

	"tambar-be/internal/product"
)

const genericAdText = `🍺 TAMBAR EXPRESS 🥃

¡La mejor licorería de Bolivia!
🚚 Delivery 24/7
💳 Aceptamos todos los métodos de pago
📱 Pedidos por WhatsApp

#TambarExpress #Licoreria #Bolivia`

// RenderProductAd builds the promotional text for a single product.
func RenderProductAd(p *product.Product) string {
	return fmt.Sprintf(`🔥 ¡OFERTA ESPECIAL! 🔥

%s
💰 Solo Bs. %.2f
📦 Stock limitado: %d unidades

🚚 Delivery gratis en La Paz
📱 Pedidos por WhatsApp: 70000000

#TambarExpress #Licoreria #Bolivia #Delivery`,
		p.Name, p.SalePrice, p.Stock,
	)
}

// RenderGenericAd builds the brand-level promotional text.
func RenderGenericAd() string {
	return genericAdText
}
