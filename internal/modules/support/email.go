package support

import (
	"strings"
	"text/template"

	"warrantly/internal/domain"
)

// Email is the rendered manufacturer message for a support request.
type Email struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

var emailTmpl = template.Must(template.New("support_email").Parse(`Dear {{.Brand.Name}} support team,

I am writing regarding a {{.Request.Severity}} {{.Request.Category}} issue with my product.

Product: {{.Product.Name}}{{if .Product.Model}} ({{.Product.Model}}){{end}}
{{- if .Product.SerialNumber}}
Serial number: {{.Product.SerialNumber}}{{end}}
Purchase date: {{.Product.PurchaseDate.Format "2006-01-02"}}
Warranty valid until: {{.Product.WarrantyExpiration.Format "2006-01-02"}}

Issue description:
{{.Request.IssueDescription}}

Please advise on the next steps under the product warranty.

Kind regards
`))

// renderEmail builds the support e-mail for the brand's support address,
// honoring the brand's per-country address override when the request names a
// country.
func renderEmail(b *domain.Brand, p *domain.Product, req *domain.SupportRequest) (Email, error) {
	var body strings.Builder
	err := emailTmpl.Execute(&body, struct {
		Brand   *domain.Brand
		Product *domain.Product
		Request *domain.SupportRequest
	}{b, p, req})
	if err != nil {
		return Email{}, err
	}

	return Email{
		To:      b.SupportEmailFor(req.Country),
		Subject: "Warranty support request: " + p.Name,
		Body:    body.String(),
	}, nil
}
