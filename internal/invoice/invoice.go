package invoice

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/ariefcatur/larana-store/internal/orders"
	"github.com/shopspring/decimal"
)

//go:embed templates/invoice.html.tmpl
var templates embed.FS

type Company struct {
	Name         string
	Address      string
	Phone        string
	Email        string
	SupportEmail string
}

var Larana = Company{
	Name:         "Larana Jewelry",
	Address:      "123 Luxury Avenue, New York, NY 10001",
	Phone:        "+1 (212) 555-1234",
	Email:        "sales@larana.com",
	SupportEmail: "support@larana.com",
}

var tmpl = template.Must(template.New("invoice.html.tmpl").Funcs(template.FuncMap{
	"money": func(d decimal.Decimal) string { return "$" + d.StringFixed(2) },
	"upper": strings.ToUpper,
}).ParseFS(templates, "templates/invoice.html.tmpl"))

// Filename is Invoice_<order id>_<YYYYMMDD>.pdf, dated by order creation.
func Filename(o orders.Order) string {
	return fmt.Sprintf("Invoice_%s_%s.pdf", o.ID, o.CreatedAt.Format("20060102"))
}

// HTML renders the printable invoice for o.
func HTML(o orders.Order) (string, error) {
	var buf bytes.Buffer
	err := tmpl.Execute(&buf, struct {
		Order   orders.Order
		Company Company
		Date    string
	}{o, Larana, o.CreatedAt.Format("1/2/2006")})
	if err != nil {
		return "", fmt.Errorf("render invoice %s: %w", o.ID, err)
	}
	return buf.String(), nil
}
